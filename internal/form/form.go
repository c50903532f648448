package form

import (
	"errors"
	"fmt"
	"time"

	"quizmaker/internal/quiz"
)

// ErrOutOfRange marks a selector value outside its allowed range.
var ErrOutOfRange = errors.New("value out of range")

// RangeError reports a rejected selector value.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

// Error returns a readable message for the rejected value.
func (err *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", err.Field, err.Min, err.Max, err.Value)
}

// Unwrap exposes ErrOutOfRange to errors.Is.
func (err *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Form is the editor state: export parameters plus the question list.
// Every method returns a new Form and leaves the receiver untouched.
type Form struct {
	GroupNum  int
	DueDate   time.Time
	Questions []quiz.Question
}

// New returns the initial editor state: group 1 and one blank question.
func New(due time.Time) Form {
	return Form{
		GroupNum:  quiz.MinGroup,
		DueDate:   dateOnly(due),
		Questions: []quiz.Question{quiz.NewQuestion()},
	}
}

// FromQuestions builds a form around existing questions.
func FromQuestions(groupNum int, due time.Time, questions []quiz.Question) (Form, error) {
	if err := checkRange("group", groupNum, quiz.MinGroup, quiz.MaxGroup); err != nil {
		return Form{}, err
	}
	if err := checkRange("question count", len(questions), quiz.MinQuestions, quiz.MaxQuestions); err != nil {
		return Form{}, err
	}
	return Form{
		GroupNum:  groupNum,
		DueDate:   dateOnly(due),
		Questions: quiz.CloneQuestions(questions),
	}, nil
}

// QuestionAmt mirrors the question list length.
func (f Form) QuestionAmt() int {
	return len(f.Questions)
}

// Export serializes the current questions with the current group number.
func (f Form) Export() (string, error) {
	return quiz.Serialize(f.GroupNum, f.Questions)
}

// FileName returns the suggested export file name for the current state.
func (f Form) FileName() string {
	return quiz.FileName(f.GroupNum, f.DueDate)
}

// AddQuestion appends a blank question.
func (f Form) AddQuestion() (Form, error) {
	return f.Resize(len(f.Questions) + 1)
}

// Resize grows the list with blank questions or truncates it from the end.
// Retained questions are never reordered or modified.
func (f Form) Resize(n int) (Form, error) {
	if err := checkRange("question count", n, quiz.MinQuestions, quiz.MaxQuestions); err != nil {
		return f, err
	}
	next := f.clone()
	if n <= len(next.Questions) {
		next.Questions = next.Questions[:n]
		return next, nil
	}
	for len(next.Questions) < n {
		next.Questions = append(next.Questions, quiz.NewQuestion())
	}
	return next, nil
}

// SetGroupNum changes the group number.
func (f Form) SetGroupNum(n int) (Form, error) {
	if err := checkRange("group", n, quiz.MinGroup, quiz.MaxGroup); err != nil {
		return f, err
	}
	next := f.clone()
	next.GroupNum = n
	return next, nil
}

// SetDueDate changes the due date used for the export file name.
func (f Form) SetDueDate(due time.Time) Form {
	next := f.clone()
	next.DueDate = dateOnly(due)
	return next
}

// UpdateQuestionText replaces the text of the question with the given ID.
func (f Form) UpdateQuestionText(questionID, text string) Form {
	return f.mapQuestion(questionID, func(q quiz.Question) quiz.Question {
		q.Text = text
		return q
	})
}

// UpdateAnswerText replaces the text of one answer.
func (f Form) UpdateAnswerText(questionID, answerID, text string) Form {
	return f.mapAnswer(questionID, answerID, func(a quiz.Answer) quiz.Answer {
		a.Text = text
		return a
	})
}

// ToggleAnswerCorrect flips the correctness flag of one answer only.
func (f Form) ToggleAnswerCorrect(questionID, answerID string) Form {
	return f.mapAnswer(questionID, answerID, func(a quiz.Answer) quiz.Answer {
		a.IsCorrect = !a.IsCorrect
		return a
	})
}

func (f Form) mapQuestion(questionID string, fn func(quiz.Question) quiz.Question) Form {
	next := f.clone()
	for i, q := range next.Questions {
		if q.ID == questionID {
			next.Questions[i] = fn(q)
		}
	}
	return next
}

func (f Form) mapAnswer(questionID, answerID string, fn func(quiz.Answer) quiz.Answer) Form {
	return f.mapQuestion(questionID, func(q quiz.Question) quiz.Question {
		for i, a := range q.Answers {
			if a.ID == answerID {
				q.Answers[i] = fn(a)
			}
		}
		return q
	})
}

func (f Form) clone() Form {
	f.Questions = quiz.CloneQuestions(f.Questions)
	return f
}

func checkRange(field string, value, minValue, maxValue int) error {
	if value < minValue || value > maxValue {
		return &RangeError{Field: field, Value: value, Min: minValue, Max: maxValue}
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
