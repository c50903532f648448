package quiz

import (
	"strconv"
	"strings"
)

// Tokens of the tab-delimited question file.
const (
	TypeMultipleAnswer = "MA"
	VerdictCorrect     = "CORRECT"
	VerdictIncorrect   = "INCORRECT"

	fieldSeparator = "\t"
	lineSeparator  = "\n"
)

// Serialize renders questions as one MA line each for the grading tool.
// Validation stops at the first bad field and no output is produced.
func Serialize(groupNum int, questions []Question) (string, error) {
	lines := make([]string, 0, len(questions))
	for qi, question := range questions {
		line, err := serializeQuestion(groupNum, qi+1, question)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, lineSeparator) + lineSeparator, nil
}

func serializeQuestion(groupNum, position int, question Question) (string, error) {
	text := Normalize(question.Text)
	if text == "" {
		return "", &ValidationError{Kind: ErrQuestionEmpty, Question: position}
	}
	if ContainsAngleTag(text) {
		return "", &ValidationError{Kind: ErrForbiddenMarkup, Question: position}
	}
	if len(question.Answers) != AnswersPerQuestion {
		return "", &ValidationError{Kind: ErrAnswerCount, Question: position}
	}

	fields := make([]string, 0, 2+2*AnswersPerQuestion)
	fields = append(fields, TypeMultipleAnswer, groupPrefix(groupNum)+text)
	for ai, answer := range question.Answers {
		answerText := Normalize(answer.Text)
		if answerText == "" {
			return "", &ValidationError{Kind: ErrAnswerEmpty, Question: position, Answer: ai + 1}
		}
		if ContainsAngleTag(answerText) {
			return "", &ValidationError{Kind: ErrForbiddenMarkup, Question: position, Answer: ai + 1}
		}
		fields = append(fields, answerText, verdict(answer.IsCorrect))
	}
	return strings.Join(fields, fieldSeparator), nil
}

func groupPrefix(groupNum int) string {
	return "(g" + strconv.Itoa(groupNum) + ") "
}

func verdict(correct bool) string {
	if correct {
		return VerdictCorrect
	}
	return VerdictIncorrect
}
