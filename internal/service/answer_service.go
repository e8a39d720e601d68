package service

import (
	"context"
	"fmt"
	"log"

	"github.com/phanindra-max/FrameworkLens/internal/cache"
	"github.com/phanindra-max/FrameworkLens/internal/catalog"
	"github.com/phanindra-max/FrameworkLens/internal/model"
	"github.com/phanindra-max/FrameworkLens/internal/repository"
	"github.com/phanindra-max/FrameworkLens/internal/scoring"
)

// MsgScoreUpdate is pushed to live viewers after every accepted answer
const MsgScoreUpdate = "score_update"

// AnswerService handles answer recording: collector validation, Mongo
// write-through, report refresh, and live broadcast.
type AnswerService struct {
	sessionSvc  *SessionService
	answerRepo  repository.AnswerRepo
	reportCache cache.ReportCache
	catalog     *catalog.Catalog
	broadcaster Broadcaster
}

// NewAnswerService creates a new answer service
func NewAnswerService(
	sessionSvc *SessionService,
	answerRepo repository.AnswerRepo,
	reportCache cache.ReportCache,
	cat *catalog.Catalog,
) *AnswerService {
	return &AnswerService{
		sessionSvc:  sessionSvc,
		answerRepo:  answerRepo,
		reportCache: reportCache,
		catalog:     cat,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AnswerService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Record validates and stores one answer. Collector errors
// (collector.ErrUnknownQuestion, collector.ErrOutOfRange) pass through
// unchanged for the transport layer to map onto status codes.
func (s *AnswerService) Record(ctx context.Context, sessionID string, req *model.RecordAnswerRequest) (*model.RecordAnswerResponse, error) {
	col, err := s.sessionSvc.CollectorFor(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := col.Record(req.QuestionID, req.Value, req.NotApplicable); err != nil {
		return nil, err
	}

	answer := &model.Answer{
		SessionID:     sessionID,
		QuestionID:    req.QuestionID,
		Value:         req.Value,
		NotApplicable: req.NotApplicable,
	}
	if err := s.answerRepo.Upsert(ctx, answer); err != nil {
		return nil, fmt.Errorf("failed to persist answer: %w", err)
	}

	report := scoring.Score(s.catalog, col.Snapshot())
	report.SessionID = sessionID

	if err := s.reportCache.Set(ctx, sessionID, report); err != nil {
		// Derived data; the next report request recomputes it.
		log.Printf("failed to cache report for session %s: %v", sessionID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, MsgScoreUpdate, report)
	}

	return &model.RecordAnswerResponse{
		QuestionID: req.QuestionID,
		Answered:   col.Len(),
	}, nil
}
