package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/phanindra-max/FrameworkLens/internal/service"
	"github.com/phanindra-max/FrameworkLens/internal/transport/rest/middleware"
)

// ReportHandler handles score report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetReport handles GET /v1/sessions/{sessionId}/report
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if middleware.GetSessionID(r.Context()) != sessionID {
		writeError(w, http.StatusForbidden, "token not valid for this session")
		return
	}

	report, err := h.reportSvc.GetReport(r.Context(), sessionID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetSessionReport handles GET /v1/admin/sessions/{sessionId}/report
func (h *ReportHandler) GetSessionReport(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	report, err := h.reportSvc.GetReport(r.Context(), sessionID)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetSummary handles GET /v1/admin/summary
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportSvc.GetSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summary == nil {
		writeError(w, http.StatusNotFound, "summary not built yet")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// BuildSummary handles POST /v1/admin/summary
func (h *ReportHandler) BuildSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportSvc.BuildSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
