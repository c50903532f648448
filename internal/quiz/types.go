package quiz

import "github.com/google/uuid"

// AnswersPerQuestion is the fixed number of answer choices on every question.
const AnswersPerQuestion = 4

// Answer is a single answer choice. Any number of answers may be correct.
type Answer struct {
	ID        string
	Text      string
	IsCorrect bool
}

// Question holds the question text and its answer choices.
type Question struct {
	ID      string
	Text    string
	Answers []Answer
}

// newID is a test seam for record identifiers.
var newID = uuid.NewString

// NewAnswer returns a blank, incorrect answer with a fresh identifier.
func NewAnswer() Answer {
	return Answer{ID: newID()}
}

// NewQuestion returns a blank question with four blank answers.
func NewQuestion() Question {
	answers := make([]Answer, AnswersPerQuestion)
	for i := range answers {
		answers[i] = NewAnswer()
	}
	return Question{ID: newID(), Answers: answers}
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	q.Answers = append([]Answer(nil), q.Answers...)
	return q
}

// CloneQuestions deep-copies a question list.
func CloneQuestions(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = q.Clone()
	}
	return out
}
