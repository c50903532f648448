package quiz

import (
	"errors"
	"fmt"
)

// Validation failure kinds reported by Serialize.
var (
	ErrQuestionEmpty   = errors.New("question is empty")
	ErrAnswerEmpty     = errors.New("answer is empty")
	ErrAnswerCount     = errors.New("wrong answer count")
	ErrForbiddenMarkup = errors.New("forbidden markup")
)

// ValidationError identifies the first field that blocked an export.
// Positions are 1-based; Answer is 0 for question-level failures.
type ValidationError struct {
	Kind     error
	Question int
	Answer   int
}

// Error returns the message shown to the user.
func (err *ValidationError) Error() string {
	if err == nil {
		return ""
	}
	switch {
	case err.Answer > 0 && errors.Is(err.Kind, ErrAnswerEmpty):
		return fmt.Sprintf("Question %d, Answer %d is empty.", err.Question, err.Answer)
	case err.Answer > 0 && errors.Is(err.Kind, ErrForbiddenMarkup):
		return fmt.Sprintf("Question %d, Answer %d contains \"<...>\" which is not allowed.", err.Question, err.Answer)
	case errors.Is(err.Kind, ErrQuestionEmpty):
		return fmt.Sprintf("Question %d is empty.", err.Question)
	case errors.Is(err.Kind, ErrForbiddenMarkup):
		return fmt.Sprintf("Question %d contains \"<...>\" which is not allowed (e.g., \"<stdio.h>\").", err.Question)
	case errors.Is(err.Kind, ErrAnswerCount):
		return fmt.Sprintf("Question %d must have exactly %d answers.", err.Question, AnswersPerQuestion)
	default:
		return fmt.Sprintf("Question %d: %v", err.Question, err.Kind)
	}
}

// Unwrap exposes the failure kind to errors.Is.
func (err *ValidationError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Kind
}
