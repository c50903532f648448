package quiz

import (
	"fmt"
	"strings"
	"time"
)

// Group number bounds accepted by the editors and draft files.
const (
	MinGroup     = 1
	MaxGroup     = 10
	MinQuestions = 1
	MaxQuestions = 4
)

// Draft is a question set authored outside the editors, loaded from JSON or YAML.
type Draft struct {
	Version   int             `json:"version" yaml:"version"`
	Group     int             `json:"group,omitempty" yaml:"group,omitempty"`
	Due       string          `json:"due,omitempty" yaml:"due,omitempty"`
	Questions []DraftQuestion `json:"questions" yaml:"questions"`
}

// DraftQuestion is one question of a draft.
type DraftQuestion struct {
	Question string        `json:"question" yaml:"question"`
	Answers  []DraftAnswer `json:"answers" yaml:"answers"`
}

// DraftAnswer is one answer choice of a draft question.
type DraftAnswer struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct,omitempty" yaml:"correct,omitempty"`
}

// Issue captures a structural problem in a draft.
type Issue struct {
	Field   string
	Message string
}

// DraftError reports every structural issue found in a draft.
type DraftError struct {
	Issues []Issue
}

// Error returns a readable message for draft failures.
func (err *DraftError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question draft validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &DraftError{Issues: collector.issues}
}

// CheckDraft validates draft structure. Question and answer text is left to
// Serialize so export failures keep their fail-fast messages.
func CheckDraft(draft Draft) error {
	collector := &issueCollector{}
	if draft.Version == 0 {
		collector.add("version", "is required")
	} else if draft.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", draft.Version))
	}
	if draft.Group != 0 && (draft.Group < MinGroup || draft.Group > MaxGroup) {
		collector.add("group", fmt.Sprintf("must be between %d and %d", MinGroup, MaxGroup))
	}
	if strings.TrimSpace(draft.Due) != "" {
		if _, err := ParseDate(draft.Due); err != nil {
			collector.add("due", err.Error())
		}
	}
	switch {
	case len(draft.Questions) < MinQuestions:
		collector.add("questions", "must include at least one entry")
	case len(draft.Questions) > MaxQuestions:
		collector.add("questions", fmt.Sprintf("must include at most %d entries", MaxQuestions))
	}
	for i, question := range draft.Questions {
		if len(question.Answers) != AnswersPerQuestion {
			collector.add(fmt.Sprintf("questions[%d].answers", i), fmt.Sprintf("must include exactly %d entries", AnswersPerQuestion))
		}
	}
	return collector.result()
}

// Records converts the draft into editor records with fresh identifiers.
func (draft Draft) Records() []Question {
	questions := make([]Question, 0, len(draft.Questions))
	for _, dq := range draft.Questions {
		question := Question{ID: newID(), Text: dq.Question}
		question.Answers = make([]Answer, 0, len(dq.Answers))
		for _, da := range dq.Answers {
			question.Answers = append(question.Answers, Answer{ID: newID(), Text: da.Text, IsCorrect: da.Correct})
		}
		questions = append(questions, question)
	}
	return questions
}

// DueDate parses the draft due date, falling back when none is set.
func (draft Draft) DueDate(fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(draft.Due) == "" {
		return fallback, nil
	}
	return ParseDate(draft.Due)
}

// DraftFromQuestions converts editor records back into a draft document.
func DraftFromQuestions(groupNum int, due time.Time, questions []Question) Draft {
	draft := Draft{Version: 1, Group: groupNum, Due: FormatDate(due)}
	for _, q := range questions {
		dq := DraftQuestion{Question: q.Text}
		for _, a := range q.Answers {
			dq.Answers = append(dq.Answers, DraftAnswer{Text: a.Text, Correct: a.IsCorrect})
		}
		draft.Questions = append(draft.Questions, dq)
	}
	return draft
}
