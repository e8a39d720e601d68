package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/phanindra-max/FrameworkLens/internal/model"
	"github.com/phanindra-max/FrameworkLens/internal/service"
	"github.com/phanindra-max/FrameworkLens/internal/transport/rest/middleware"
)

// AnswerHandler handles answer submission endpoints
type AnswerHandler struct {
	answerSvc *service.AnswerService
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerSvc *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerSvc: answerSvc}
}

// Record handles PUT /v1/sessions/{sessionId}/answers. Re-submitting a
// question overwrites the previous answer.
func (h *AnswerHandler) Record(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if middleware.GetSessionID(r.Context()) != sessionID {
		writeError(w, http.StatusForbidden, "token not valid for this session")
		return
	}

	var req model.RecordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	resp, err := h.answerSvc.Record(r.Context(), sessionID, &req)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
