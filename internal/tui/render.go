package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizmaker/internal/quiz"
)

var answerLetters = [quiz.AnswersPerQuestion]string{"a", "b", "c", "d"}

// renderHeader renders the export parameters line.
func renderHeader(state State, noColor bool) string {
	f := state.Form
	line := "Group " + strconv.Itoa(f.GroupNum) +
		" | " + strconv.Itoa(f.QuestionAmt()) + " question(s)" +
		" | Due " + quiz.FormatDate(f.DueDate) +
		" | " + f.FileName()
	return stylize(line, noColor, lipgloss.Color("135"))
}

// renderQuestions renders every field, substituting the live input for the
// focused one.
func renderQuestions(state State, inputView string, noColor bool) string {
	focused := state.FocusedField()
	var b strings.Builder
	for qi, q := range state.Form.Questions {
		b.WriteString("\n")
		b.WriteString(stylize("Question "+strconv.Itoa(qi+1), noColor, lipgloss.Color("135")))
		b.WriteString("\n  ")
		b.WriteString(fieldView(q.Text, inputView, focused == Field{Question: qi, Answer: -1}))
		b.WriteString("\n")
		for ai, a := range q.Answers {
			letter := strconv.Itoa(ai + 1)
			if ai < len(answerLetters) {
				letter = answerLetters[ai]
			}
			b.WriteString("  " + letter + ". ")
			b.WriteString(fieldView(a.Text, inputView, focused == Field{Question: qi, Answer: ai}))
			b.WriteString("  ")
			b.WriteString(verdictView(a.IsCorrect, noColor))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func fieldView(text, inputView string, focused bool) string {
	if focused {
		return "> " + inputView
	}
	if text == "" {
		return "  _"
	}
	return "  " + text
}

func verdictView(correct bool, noColor bool) string {
	if correct {
		return stylize("[Correct]", noColor, lipgloss.Color("42"))
	}
	return stylize("[Incorrect]", noColor, lipgloss.Color("244"))
}

// renderStatus renders the last export outcome or hint.
func renderStatus(state State, noColor bool) string {
	if state.Status == "" {
		return ""
	}
	color := lipgloss.Color("42")
	if state.StatusErr {
		color = lipgloss.Color("196")
	}
	return stylize(state.Status, noColor, color)
}

func renderHelp(noColor bool) string {
	return stylize("tab/shift+tab move | ctrl+t toggle correct | ctrl+g group | ctrl+n count | pgup/pgdown due date | ctrl+s save | esc quit", noColor, lipgloss.Color("240"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
