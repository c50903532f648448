package web

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"quizmaker/internal/form"
	"quizmaker/internal/quiz"
)

// answerLetters labels answer rows a. through d.
var answerLetters = [quiz.AnswersPerQuestion]string{"a", "b", "c", "d"}

// pageData is everything the editor page renders.
type pageData struct {
	Title string
	Form  form.Form
	Alert string
}

// htmlWriter keeps the first write error so components can write freely.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) printf(format string, args ...any) {
	hw.raw(fmt.Sprintf(format, args...))
}

func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// editorPage renders the full editor document.
func editorPage(data pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		hw.text(data.Title)
		hw.raw(`</title><style>` + pageStyle + `</style></head><body><main class="stack">`)
		hw.component(ctx, intro(data.Title))
		if data.Alert != "" {
			hw.component(ctx, alert(data.Alert))
		}
		hw.raw(`<form method="post" action="/questions" class="stack">`)
		hw.component(ctx, optionsSection(data.Form))
		hw.component(ctx, questionSection(data.Form))
		hw.raw(`<button type="submit" formaction="/export" class="export">Download .txt File</button>`)
		hw.raw(`</form></main></body></html>`)
		return hw.err
	})
}

func intro(title string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="card"><h1>`)
		hw.text("Welcome to " + title + "!")
		hw.raw(`</h1><p>Write up to four multiple-answer questions, mark every correct answer, then download the tab-delimited file for the grader.</p></section>`)
		return hw.err
	})
}

// alert shows an export failure message. The script mirrors it in a
// blocking dialog so the message cannot be missed.
func alert(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="card alert" role="alert" id="export-error">`)
		hw.text(message)
		hw.raw(`</section><script>window.alert(document.getElementById("export-error").textContent);</script>`)
		return hw.err
	})
}

func optionsSection(f form.Form) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="card row"><h2>Question Options:</h2>`)
		hw.raw(`<select name="group" title="Group number">`)
		for n := quiz.MinGroup; n <= quiz.MaxGroup; n++ {
			hw.printf(`<option value="%d"%s>Group %d</option>`, n, selected(n == f.GroupNum), n)
		}
		hw.raw(`</select><select name="count" title="Question count">`)
		for n := quiz.MinQuestions; n <= quiz.MaxQuestions; n++ {
			label := "Questions"
			if n == 1 {
				label = "Question"
			}
			hw.printf(`<option value="%d"%s>%d %s</option>`, n, selected(n == f.QuestionAmt()), n, label)
		}
		hw.raw(`</select><label>Date Due: <input type="date" name="due" value="`)
		hw.text(quiz.FormatDate(f.DueDate))
		hw.raw(`"></label><button type="submit" formaction="/options">Apply</button></section>`)
		return hw.err
	})
}

func questionSection(f form.Form) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="stack">`)
		for qi, q := range f.Questions {
			hw.raw(`<div class="card question"><h3>Question ` + strconv.Itoa(qi+1) + `</h3>`)
			hw.raw(`<input class="wide" placeholder="Enter question text..." name="`)
			hw.text(questionField(q.ID))
			hw.raw(`" value="`)
			hw.text(q.Text)
			hw.raw(`">`)
			for ai, a := range q.Answers {
				letter := strconv.Itoa(ai + 1)
				if ai < len(answerLetters) {
					letter = answerLetters[ai]
				}
				hw.raw(`<div class="row"><span>` + letter + `.</span><input class="wide" placeholder="Answer ` + letter + `" name="`)
				hw.text(answerField(q.ID, a.ID))
				hw.raw(`" value="`)
				hw.text(a.Text)
				hw.raw(`"><button type="submit" formaction="`)
				hw.text(togglePath(q.ID, a.ID))
				if a.IsCorrect {
					hw.raw(`" class="verdict correct">Correct</button></div>`)
				} else {
					hw.raw(`" class="verdict">Incorrect</button></div>`)
				}
			}
			hw.raw(`</div>`)
		}
		hw.raw(`</section>`)
		return hw.err
	})
}

func selected(ok bool) string {
	if ok {
		return " selected"
	}
	return ""
}

func questionField(questionID string) string {
	return "q:" + questionID
}

func answerField(questionID, answerID string) string {
	return "a:" + questionID + ":" + answerID
}

func togglePath(questionID, answerID string) string {
	return "/questions/" + questionID + "/answers/" + answerID + "/toggle"
}

const pageStyle = `
body{font-family:system-ui,sans-serif;background:#f4f2fa;margin:0;padding:40px 12px}
.stack{display:flex;flex-direction:column;gap:16px;max-width:56rem;margin:0 auto}
.row{display:flex;flex-wrap:wrap;align-items:center;gap:8px;margin-top:8px}
.card{background:#fff;border-radius:30px;padding:20px}
.alert{background:#fde8e8;color:#9b1c1c}
.wide{flex:1;width:100%;box-sizing:border-box;border-radius:16px;border:0;background:#eee;padding:12px 16px}
.verdict{width:10rem;border-radius:999px;border:0;padding:8px 12px;background:#eee;cursor:pointer}
.verdict.correct{background:#16a34a;color:#fff}
.export{align-self:center;width:14rem;border-radius:999px;border:0;padding:12px 20px;background:#9333ea;color:#fff;font-weight:600;cursor:pointer}
`
