package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mikey/safe-inbox/internal/core"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

type healthResponse struct {
	Status       string `json:"status"`
	MessageCount int    `json:"message_count"`
	StoreVersion uint64 `json:"store_version"`
}

type sessionUpdate struct {
	View   *string `json:"view"`
	Search *string `json:"search"`
}

type openResponse struct {
	Message   core.Message `json:"message"`
	Analyzing bool         `json:"analyzing"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	store := s.service.Store()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		MessageCount: store.Len(),
		StoreVersion: store.Version(),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.State())
}

func (s *Server) handlePutSession(w http.ResponseWriter, r *http.Request) {
	var body sessionUpdate
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.View != nil {
		view, err := core.ParseView(*body.View)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.session.SetView(view)
	}
	if body.Search != nil {
		s.session.SetSearch(*body.Search)
	}

	writeJSON(w, http.StatusOK, s.session.State())
}

func (s *Server) handleCloseSelection(w http.ResponseWriter, r *http.Request) {
	s.session.CloseSelection()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	vc := s.session.ViewContext()

	q := r.URL.Query()
	if v := q.Get("view"); v != "" {
		view, err := core.ParseView(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		vc.View = view
	}
	if q.Has("q") {
		vc.Search = q.Get("q")
	}

	msgs := s.service.Messages(vc)
	if msgs == nil {
		msgs = []core.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	m, err := s.service.Message(chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleOpenMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	done, err := s.service.OpenMessage(s.baseCtx, s.session, id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if done != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			<-done
		}()
	}

	m, err := s.service.Message(id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if done != nil {
		status = http.StatusAccepted
	}
	writeJSON(w, status, openResponse{Message: m, Analyzing: done != nil})
}

func (s *Server) handleAnalyzeMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.service.Message(id); err != nil {
		s.writeServiceError(w, err)
		return
	}

	var override core.EnvelopeOverride
	if err := decodeBody(r, &override); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.session.Select(id)
	m, err := s.service.AnalyzeMessage(r.Context(), s.session, id, &override)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleScanDraft(w http.ResponseWriter, r *http.Request) {
	var draft core.EmailPayload
	if err := decodeBody(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.service.ScanDraft(r.Context(), s.session, draft)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Dashboard())
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Patterns())
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := s.service.Journal(r.Context(), limit)
	if err != nil {
		s.logger.Error("Failed to read journal", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to read journal")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// writeServiceError maps core errors onto status codes
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case core.IsAnalysisFailure(err):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, core.ErrMessageNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrEmptyDraft):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrStaleResult):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("Unhandled service error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeBody decodes an optional JSON body into v; an empty body leaves v
// untouched
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
