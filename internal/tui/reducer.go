package tui

import (
	"time"

	"quizmaker/internal/quiz"
)

// MoveFocus moves focus by delta fields, wrapping at both ends.
func MoveFocus(state State, delta int) State {
	count := state.FieldCount()
	if count == 0 {
		return state
	}
	state.Focus = ((clampFocus(state.Focus, count)+delta)%count + count) % count
	return state
}

// SetFocusedText replaces the text of the focused field.
func SetFocusedText(state State, text string) State {
	field := state.FocusedField()
	if field.Question < 0 {
		return state
	}
	q := state.Form.Questions[field.Question]
	if field.Answer < 0 {
		state.Form = state.Form.UpdateQuestionText(q.ID, text)
		return state
	}
	state.Form = state.Form.UpdateAnswerText(q.ID, q.Answers[field.Answer].ID, text)
	return state
}

// ToggleFocused flips the correctness of the focused answer. Question text
// fields have no verdict and are left alone.
func ToggleFocused(state State) State {
	field := state.FocusedField()
	if field.Question < 0 || field.Answer < 0 {
		return withStatus(state, "Move to an answer to mark it correct.", false)
	}
	q := state.Form.Questions[field.Question]
	state.Form = state.Form.ToggleAnswerCorrect(q.ID, q.Answers[field.Answer].ID)
	return state
}

// CycleGroup advances the group number, wrapping from the last to the first.
func CycleGroup(state State) State {
	next := state.Form.GroupNum + 1
	if next > quiz.MaxGroup {
		next = quiz.MinGroup
	}
	f, err := state.Form.SetGroupNum(next)
	if err != nil {
		return withStatus(state, err.Error(), true)
	}
	state.Form = f
	return state
}

// CycleCount advances the question count, wrapping from four back to one.
func CycleCount(state State) State {
	next := state.Form.QuestionAmt() + 1
	if next > quiz.MaxQuestions {
		next = quiz.MinQuestions
	}
	f, err := state.Form.Resize(next)
	if err != nil {
		return withStatus(state, err.Error(), true)
	}
	state.Form = f
	state.Focus = clampFocus(state.Focus, state.FieldCount())
	return state
}

// ShiftDueDate moves the due date by days.
func ShiftDueDate(state State, days int) State {
	state.Form = state.Form.SetDueDate(state.Form.DueDate.Add(time.Duration(days) * 24 * time.Hour))
	return state
}

func withStatus(state State, message string, isErr bool) State {
	state.Status = message
	state.StatusErr = isErr
	return state
}
