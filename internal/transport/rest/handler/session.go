package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/phanindra-max/FrameworkLens/internal/collector"
	"github.com/phanindra-max/FrameworkLens/internal/model"
	"github.com/phanindra-max/FrameworkLens/internal/service"
	"github.com/phanindra-max/FrameworkLens/internal/transport/rest/middleware"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreateSessionResponse is returned when a session starts
type CreateSessionResponse struct {
	Session *model.Session `json:"session"`
	Token   string         `json:"token"`
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, token, err := h.sessionSvc.Create(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, CreateSessionResponse{
		Session: session,
		Token:   token,
	})
}

// Get handles GET /v1/sessions/{sessionId}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if middleware.GetSessionID(r.Context()) != sessionID {
		writeError(w, http.StatusForbidden, "token not valid for this session")
		return
	}

	session, err := h.sessionSvc.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// End handles POST /v1/sessions/{sessionId}/end
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if middleware.GetSessionID(r.Context()) != sessionID {
		writeError(w, http.StatusForbidden, "token not valid for this session")
		return
	}

	session, err := h.sessionSvc.End(r.Context(), sessionID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Completeness handles GET /v1/sessions/{sessionId}/completeness. With
// ?area= it reports one area, otherwise all of them.
func (h *SessionHandler) Completeness(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if middleware.GetSessionID(r.Context()) != sessionID {
		writeError(w, http.StatusForbidden, "token not valid for this session")
		return
	}

	col, err := h.sessionSvc.CollectorFor(r.Context(), sessionID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	if areaParam := r.URL.Query().Get("area"); areaParam != "" {
		area := model.FrameworkArea(areaParam)
		if !area.Valid() {
			writeError(w, http.StatusBadRequest, "unknown framework area")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{string(area): col.IsComplete(area)})
		return
	}

	out := make(map[string]bool)
	for _, area := range h.sessionSvc.Catalog().AllAreas() {
		out[string(area)] = col.IsComplete(area)
	}
	writeJSON(w, http.StatusOK, out)
}

// List handles GET /v1/admin/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// statusForError maps service and collector errors onto status codes at
// the transport boundary.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSessionEnded):
		return http.StatusConflict
	case errors.Is(err, collector.ErrUnknownQuestion):
		return http.StatusNotFound
	case errors.Is(err, collector.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
