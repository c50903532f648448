package quiz

import (
	"errors"
	"strings"
	"testing"
)

func question(text string, answers ...Answer) Question {
	return Question{ID: "q-" + text, Text: text, Answers: answers}
}

func answer(text string, correct bool) Answer {
	return Answer{ID: "a-" + text, Text: text, IsCorrect: correct}
}

func validQuestion(text string) Question {
	return question(text,
		answer("one", false),
		answer("two", true),
		answer("three", false),
		answer("four", true),
	)
}

// TestSerializeExample verifies the reference single-question output.
func TestSerializeExample(t *testing.T) {
	q := question("What is 2+2?",
		answer("3", false),
		answer("4", true),
		answer("5", false),
		answer("6", false),
	)
	got, err := Serialize(3, []Question{q})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := "MA\t(g3) What is 2+2?\t3\tINCORRECT\t4\tCORRECT\t5\tINCORRECT\t6\tINCORRECT\n"
	if got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

// TestSerializeLineShape verifies one line of nine tab separators per question.
func TestSerializeLineShape(t *testing.T) {
	questions := []Question{validQuestion("First?"), validQuestion("Second?"), validQuestion("Third?")}
	got, err := Serialize(10, questions)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("expected trailing newline, got %q", got)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != len(questions) {
		t.Fatalf("expected %d lines, got %d", len(questions), len(lines))
	}
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) != 10 {
			t.Fatalf("line %d: expected 10 fields, got %d", i+1, len(fields))
		}
		if fields[0] != "MA" {
			t.Fatalf("line %d: expected MA tag, got %q", i+1, fields[0])
		}
		if !strings.HasPrefix(fields[1], "(g10) ") {
			t.Fatalf("line %d: expected group prefix, got %q", i+1, fields[1])
		}
		if fields[3] != "INCORRECT" || fields[5] != "CORRECT" || fields[7] != "INCORRECT" || fields[9] != "CORRECT" {
			t.Fatalf("line %d: unexpected verdicts %v", i+1, fields)
		}
	}
}

// TestSerializeNormalizesFields verifies every field is normalized before output.
func TestSerializeNormalizesFields(t *testing.T) {
	q := question("  “Smart”\r\nquestion — here ",
		answer("it’s", true),
		answer("a\nb", false),
		answer("1–2", false),
		answer(" spaced   out ", false),
	)
	got, err := Serialize(1, []Question{q})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := "MA\t(g1) \"Smart\" question - here\tit's\tCORRECT\ta b\tINCORRECT\t1-2\tINCORRECT\tspaced out\tINCORRECT\n"
	if got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

// TestSerializeEmptyQuestion verifies the empty question position is reported.
func TestSerializeEmptyQuestion(t *testing.T) {
	questions := []Question{validQuestion("ok"), validQuestion(" \n "), validQuestion("")}
	_, err := Serialize(1, questions)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !errors.Is(err, ErrQuestionEmpty) {
		t.Fatalf("expected empty question error, got %v", err)
	}
	if validationErr.Question != 2 || validationErr.Answer != 0 {
		t.Fatalf("expected question 2, got %+v", validationErr)
	}
	if err.Error() != "Question 2 is empty." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

// TestSerializeEmptyAnswer verifies question and answer positions are reported.
func TestSerializeEmptyAnswer(t *testing.T) {
	bad := validQuestion("second")
	bad.Answers[2].Text = "   "
	_, err := Serialize(1, []Question{validQuestion("first"), bad})
	if !errors.Is(err, ErrAnswerEmpty) {
		t.Fatalf("expected empty answer error, got %v", err)
	}
	if err.Error() != "Question 2, Answer 3 is empty." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

// TestSerializeForbiddenMarkupInQuestion verifies tags in question text fail first.
func TestSerializeForbiddenMarkupInQuestion(t *testing.T) {
	q := question("Which header declares printf? <stdio.h>",
		answer("", false), answer("", false), answer("", false), answer("", false))
	_, err := Serialize(2, []Question{q})
	if !errors.Is(err, ErrForbiddenMarkup) {
		t.Fatalf("expected forbidden markup error, got %v", err)
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) || validationErr.Question != 1 || validationErr.Answer != 0 {
		t.Fatalf("expected question 1 position, got %+v", validationErr)
	}
	want := `Question 1 contains "<...>" which is not allowed (e.g., "<stdio.h>").`
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

// TestSerializeForbiddenMarkupInAnswer verifies tags in answers are rejected.
func TestSerializeForbiddenMarkupInAnswer(t *testing.T) {
	q := validQuestion("Pick a tag")
	q.Answers[3].Text = "<b>bold</b>"
	_, err := Serialize(2, []Question{q})
	if !errors.Is(err, ErrForbiddenMarkup) {
		t.Fatalf("expected forbidden markup error, got %v", err)
	}
	if err.Error() != `Question 1, Answer 4 contains "<...>" which is not allowed.` {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

// TestSerializeAnswerCount verifies corrupted records are rejected.
func TestSerializeAnswerCount(t *testing.T) {
	q := validQuestion("short")
	q.Answers = q.Answers[:3]
	_, err := Serialize(1, []Question{q})
	if !errors.Is(err, ErrAnswerCount) {
		t.Fatalf("expected answer count error, got %v", err)
	}
	if err.Error() != "Question 1 must have exactly 4 answers." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

// TestSerializeFailFastOrder verifies the question check runs before its answers.
func TestSerializeFailFastOrder(t *testing.T) {
	first := validQuestion("")
	first.Answers[0].Text = "<x>"
	second := validQuestion("<y>")
	_, err := Serialize(1, []Question{first, second})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validationErr.Question != 1 || !errors.Is(err, ErrQuestionEmpty) {
		t.Fatalf("expected question 1 empty, got %v", err)
	}
}

// TestSerializeTabsCollapse verifies pasted tabs cannot add fields.
func TestSerializeTabsCollapse(t *testing.T) {
	q := validQuestion("tab\tinside")
	got, err := Serialize(1, []Question{q})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if fields := strings.Split(strings.TrimSuffix(got, "\n"), "\t"); len(fields) != 10 {
		t.Fatalf("expected 10 fields, got %d", len(fields))
	}
}

// TestSerializeEmptyList verifies an empty list yields a lone newline.
func TestSerializeEmptyList(t *testing.T) {
	got, err := Serialize(1, nil)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if got != "\n" {
		t.Fatalf("expected lone newline, got %q", got)
	}
}
