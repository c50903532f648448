package tui

import (
	"quizmaker/internal/form"
	"quizmaker/internal/quiz"
)

// State is the terminal editor state: the form plus the focused field.
type State struct {
	Form      form.Form
	Focus     int
	Status    string
	StatusErr bool
}

// Field identifies an editable text field. Answer is -1 for question text.
type Field struct {
	Question int
	Answer   int
}

// fieldsPerQuestion counts the question text plus its answers.
const fieldsPerQuestion = 1 + quiz.AnswersPerQuestion

// FieldCount returns the number of focusable fields.
func (s State) FieldCount() int {
	return len(s.Form.Questions) * fieldsPerQuestion
}

// FocusedField resolves the focus index into question and answer positions.
func (s State) FocusedField() Field {
	if s.FieldCount() == 0 {
		return Field{Question: -1, Answer: -1}
	}
	focus := clampFocus(s.Focus, s.FieldCount())
	return Field{
		Question: focus / fieldsPerQuestion,
		Answer:   focus%fieldsPerQuestion - 1,
	}
}

// FocusedText returns the text of the focused field.
func (s State) FocusedText() string {
	field := s.FocusedField()
	if field.Question < 0 {
		return ""
	}
	q := s.Form.Questions[field.Question]
	if field.Answer < 0 {
		return q.Text
	}
	return q.Answers[field.Answer].Text
}

func clampFocus(focus, count int) int {
	if count <= 0 {
		return 0
	}
	if focus < 0 {
		return 0
	}
	if focus >= count {
		return count - 1
	}
	return focus
}
