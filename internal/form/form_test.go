package form

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"quizmaker/internal/quiz"
)

var testDue = time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

// TestNewForm verifies the initial editor state.
func TestNewForm(t *testing.T) {
	f := New(testDue.Add(13 * time.Hour))
	if f.GroupNum != 1 || f.QuestionAmt() != 1 {
		t.Fatalf("unexpected initial form: %+v", f)
	}
	if !f.DueDate.Equal(testDue) {
		t.Fatalf("expected due date truncated to day, got %v", f.DueDate)
	}
	if f.FileName() != "group-1-Jan5.txt" {
		t.Fatalf("unexpected file name %q", f.FileName())
	}
}

// TestResizeGrowPreservesExisting verifies growth appends blank questions only.
func TestResizeGrowPreservesExisting(t *testing.T) {
	f := New(testDue)
	first := f.Questions[0].ID
	f = f.UpdateQuestionText(first, "kept")
	grown, err := f.Resize(4)
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	if grown.QuestionAmt() != 4 {
		t.Fatalf("expected 4 questions, got %d", grown.QuestionAmt())
	}
	if !reflect.DeepEqual(grown.Questions[0], f.Questions[0]) {
		t.Fatalf("first question changed: %+v", grown.Questions[0])
	}
	for _, q := range grown.Questions[1:] {
		if q.Text != "" || len(q.Answers) != quiz.AnswersPerQuestion {
			t.Fatalf("expected blank question, got %+v", q)
		}
	}
	if f.QuestionAmt() != 1 {
		t.Fatalf("receiver mutated: %d questions", f.QuestionAmt())
	}
}

// TestResizeShrinkTruncatesTail verifies shrinking drops questions from the end.
func TestResizeShrinkTruncatesTail(t *testing.T) {
	f, err := New(testDue).Resize(4)
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	shrunk, err := f.Resize(2)
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	if !reflect.DeepEqual(shrunk.Questions, f.Questions[:2]) {
		t.Fatalf("expected first two questions retained")
	}
	regrown, err := shrunk.Resize(3)
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	if regrown.Questions[2].ID == f.Questions[2].ID {
		t.Fatalf("expected discarded question to be replaced by a fresh one")
	}
}

// TestResizeRejectsOutOfRange verifies count bounds.
func TestResizeRejectsOutOfRange(t *testing.T) {
	f := New(testDue)
	for _, n := range []int{0, 5, -1} {
		got, err := f.Resize(n)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected range error for %d, got %v", n, err)
		}
		if got.QuestionAmt() != 1 {
			t.Fatalf("expected form unchanged on error")
		}
	}
	full, _ := f.Resize(4)
	if _, err := full.AddQuestion(); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected add beyond max to fail, got %v", err)
	}
}

// TestSetGroupNum verifies group bounds.
func TestSetGroupNum(t *testing.T) {
	f := New(testDue)
	next, err := f.SetGroupNum(10)
	if err != nil || next.GroupNum != 10 {
		t.Fatalf("expected group 10, got %d (%v)", next.GroupNum, err)
	}
	var rangeErr *RangeError
	if _, err := f.SetGroupNum(11); !errors.As(err, &rangeErr) || rangeErr.Field != "group" {
		t.Fatalf("expected group range error, got %v", err)
	}
}

// TestToggleAnswerIsIndependent verifies toggling touches a single answer.
func TestToggleAnswerIsIndependent(t *testing.T) {
	f, _ := New(testDue).Resize(2)
	q := f.Questions[0]
	toggled := f.ToggleAnswerCorrect(q.ID, q.Answers[1].ID)
	for qi, question := range toggled.Questions {
		for ai, a := range question.Answers {
			want := qi == 0 && ai == 1
			if a.IsCorrect != want {
				t.Fatalf("question %d answer %d: expected correct=%v", qi+1, ai+1, want)
			}
		}
	}
	twice := toggled.ToggleAnswerCorrect(q.ID, q.Answers[3].ID)
	if !twice.Questions[0].Answers[1].IsCorrect || !twice.Questions[0].Answers[3].IsCorrect {
		t.Fatalf("expected multiple correct answers allowed")
	}
	back := twice.ToggleAnswerCorrect(q.ID, q.Answers[1].ID)
	if back.Questions[0].Answers[1].IsCorrect {
		t.Fatalf("expected second toggle to clear the flag")
	}
	if f.Questions[0].Answers[1].IsCorrect {
		t.Fatalf("receiver mutated by toggle")
	}
}

// TestUpdateTexts verifies text updates by identifier without aliasing.
func TestUpdateTexts(t *testing.T) {
	f := New(testDue)
	q := f.Questions[0]
	next := f.UpdateQuestionText(q.ID, "What is 2+2?")
	next = next.UpdateAnswerText(q.ID, q.Answers[2].ID, "5")
	if next.Questions[0].Text != "What is 2+2?" || next.Questions[0].Answers[2].Text != "5" {
		t.Fatalf("unexpected texts: %+v", next.Questions[0])
	}
	if f.Questions[0].Text != "" || f.Questions[0].Answers[2].Text != "" {
		t.Fatalf("receiver mutated by update")
	}
	same := next.UpdateAnswerText("missing", q.Answers[0].ID, "x")
	if !reflect.DeepEqual(same, next) {
		t.Fatalf("unknown id should leave form unchanged")
	}
}

// TestFormExport verifies the form serializes with its group number.
func TestFormExport(t *testing.T) {
	f, _ := New(testDue).SetGroupNum(3)
	q := f.Questions[0]
	f = f.UpdateQuestionText(q.ID, "What is 2+2?")
	for i, text := range []string{"3", "4", "5", "6"} {
		f = f.UpdateAnswerText(q.ID, q.Answers[i].ID, text)
	}
	f = f.ToggleAnswerCorrect(q.ID, q.Answers[1].ID)
	got, err := f.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if got != "MA\t(g3) What is 2+2?\t3\tINCORRECT\t4\tCORRECT\t5\tINCORRECT\t6\tINCORRECT\n" {
		t.Fatalf("unexpected export %q", got)
	}
}

// TestFromQuestionsCopies verifies the form does not alias caller records.
func TestFromQuestionsCopies(t *testing.T) {
	questions := []quiz.Question{quiz.NewQuestion()}
	f, err := FromQuestions(2, testDue, questions)
	if err != nil {
		t.Fatalf("from questions: %v", err)
	}
	questions[0].Answers[0].Text = "changed"
	if f.Questions[0].Answers[0].Text != "" {
		t.Fatalf("form aliased caller questions")
	}
	if _, err := FromQuestions(2, testDue, nil); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected empty list to be rejected, got %v", err)
	}
}
