package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/golang/glog"

	"quizmaker/internal/export"
	"quizmaker/internal/form"
	"quizmaker/internal/quiz"
)

// maxDraftBytes bounds JSON request bodies.
const maxDraftBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// handleDraft returns the current editor state as a draft document.
func (h *handler) handleDraft(w http.ResponseWriter, _ *http.Request) {
	f := h.store.Snapshot()
	writeJSON(w, http.StatusOK, quiz.DraftFromQuestions(f.GroupNum, f.DueDate, f.Questions))
}

// handleAPIExport exports a posted JSON draft without touching editor state.
func (h *handler) handleAPIExport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDraftBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	draft, err := quiz.ParseDraftJSON(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := quiz.CheckDraft(draft); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	group := draft.Group
	if group == 0 {
		group = h.defaultGroup
	}
	due, err := draft.DueDate(h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f, err := form.FromQuestions(group, due, draft.Records())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	file, err := h.exporter.Export(r.Context(), f)
	exportErr, recordErr := export.SplitError(err)
	if recordErr != nil {
		glog.Warningf("export history: %v", recordErr)
	}
	if exportErr != nil {
		var validationErr *quiz.ValidationError
		if errors.As(exportErr, &validationErr) {
			writeError(w, http.StatusUnprocessableEntity, exportErr.Error())
			return
		}
		glog.Errorf("api export failed: %v", exportErr)
		writeError(w, http.StatusInternalServerError, exportErr.Error())
		return
	}
	writeDownload(w, file)
}
