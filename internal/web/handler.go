package web

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"quizmaker/internal/export"
	"quizmaker/internal/form"
	"quizmaker/internal/quiz"
)

// DefaultTitle is the editor page title.
const DefaultTitle = "Question Maker"

// Config captures the settings for hosting the editor.
type Config struct {
	Addr         string
	Title        string
	DefaultGroup int
	Recorder     export.Recorder
	AccessLog    io.Writer
	Now          func() time.Time
}

type handler struct {
	title        string
	store        *form.Store
	exporter     export.Exporter
	defaultGroup int
	now          func() time.Time
}

// NewHandler builds the HTTP handler for the editor and its JSON API.
func NewHandler(cfg Config) (http.Handler, error) {
	_, out, err := newHandler(cfg)
	return out, err
}

func newHandler(cfg Config) (*handler, http.Handler, error) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	group := cfg.DefaultGroup
	if group == 0 {
		group = quiz.MinGroup
	}
	initial, err := form.New(now()).SetGroupNum(group)
	if err != nil {
		return nil, nil, fmt.Errorf("web: default group: %w", err)
	}
	title := cfg.Title
	if title == "" {
		title = DefaultTitle
	}
	h := &handler{
		title:        title,
		store:        form.NewStore(initial),
		exporter:     export.Exporter{Recorder: cfg.Recorder, Now: now},
		defaultGroup: group,
		now:          now,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", h.page).Methods(http.MethodGet)
	r.HandleFunc("/questions", h.handleSave).Methods(http.MethodPost)
	r.HandleFunc("/options", h.handleSave).Methods(http.MethodPost)
	r.HandleFunc("/questions/{qid}/answers/{aid}/toggle", h.handleToggle).Methods(http.MethodPost)
	r.HandleFunc("/export", h.handleExport).Methods(http.MethodPost)
	r.HandleFunc("/api/draft", h.handleDraft).Methods(http.MethodGet)
	r.HandleFunc("/api/export", h.handleAPIExport).Methods(http.MethodPost)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	var out http.Handler = r
	if cfg.AccessLog != nil {
		out = handlers.CombinedLoggingHandler(cfg.AccessLog, out)
	}
	out = handlers.RecoveryHandler(handlers.RecoveryLogger(glogRecovery{}))(out)
	return h, out, nil
}

// page renders the editor with the current state.
func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "")
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, status int, message string) {
	page := editorPage(pageData{Title: h.title, Form: h.store.Snapshot(), Alert: message})
	templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
}

// handleSave applies every posted field, then shows the editor again.
func (h *handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if !h.applyPosted(w, r) {
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	if !h.applyPosted(w, r) {
		return
	}
	vars := mux.Vars(r)
	_, _ = h.store.Apply(func(f form.Form) (form.Form, error) {
		return f.ToggleAnswerCorrect(vars["qid"], vars["aid"]), nil
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleExport saves the posted fields and offers the file for download.
// A validation failure re-renders the editor with the message.
func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if !h.applyPosted(w, r) {
		return
	}
	file, err := h.exporter.Export(r.Context(), h.store.Snapshot())
	exportErr, recordErr := export.SplitError(err)
	if recordErr != nil {
		glog.Warningf("export history: %v", recordErr)
	}
	if exportErr != nil {
		var validationErr *quiz.ValidationError
		if errors.As(exportErr, &validationErr) {
			glog.V(1).Infof("export rejected: %v", exportErr)
			h.render(w, r, http.StatusUnprocessableEntity, exportErr.Error())
			return
		}
		glog.Errorf("export failed: %v", exportErr)
		h.render(w, r, http.StatusInternalServerError, "Export failed: "+exportErr.Error())
		return
	}
	writeDownload(w, file)
}

// applyPosted copies the submitted form fields into the store. It writes an
// error page and returns false when a selector value is rejected.
func (h *handler) applyPosted(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "Invalid form submission.")
		return false
	}
	_, err := h.store.Apply(func(f form.Form) (form.Form, error) {
		return applyValues(f, r.PostForm)
	})
	if err != nil {
		h.render(w, r, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// applyValues maps posted fields onto the form: texts first, then the
// group, due date and question count selectors.
func applyValues(f form.Form, values url.Values) (form.Form, error) {
	for _, q := range f.Questions {
		if text, ok := postedValue(values, questionField(q.ID)); ok {
			f = f.UpdateQuestionText(q.ID, text)
		}
		for _, a := range q.Answers {
			if text, ok := postedValue(values, answerField(q.ID, a.ID)); ok {
				f = f.UpdateAnswerText(q.ID, a.ID, text)
			}
		}
	}
	var err error
	if raw, ok := postedValue(values, "group"); ok {
		group, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil {
			return f, fmt.Errorf("invalid group %q", raw)
		}
		if f, err = f.SetGroupNum(group); err != nil {
			return f, err
		}
	}
	if raw, ok := postedValue(values, "due"); ok && strings.TrimSpace(raw) != "" {
		due, parseErr := quiz.ParseDate(raw)
		if parseErr != nil {
			return f, parseErr
		}
		f = f.SetDueDate(due)
	}
	if raw, ok := postedValue(values, "count"); ok {
		count, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil {
			return f, fmt.Errorf("invalid question count %q", raw)
		}
		if f, err = f.Resize(count); err != nil {
			return f, err
		}
	}
	return f, nil
}

func postedValue(values url.Values, key string) (string, bool) {
	list, ok := values[key]
	if !ok || len(list) == 0 {
		return "", false
	}
	return list[0], true
}

func writeDownload(w http.ResponseWriter, file export.File) {
	w.Header().Set("Content-Type", file.MediaType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

// glogRecovery routes recovered panics to glog.
type glogRecovery struct{}

func (glogRecovery) Println(args ...interface{}) {
	glog.Error(args...)
}
