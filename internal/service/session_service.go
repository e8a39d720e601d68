package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phanindra-max/FrameworkLens/internal/cache"
	"github.com/phanindra-max/FrameworkLens/internal/catalog"
	"github.com/phanindra-max/FrameworkLens/internal/collector"
	"github.com/phanindra-max/FrameworkLens/internal/model"
	"github.com/phanindra-max/FrameworkLens/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionEnded    = errors.New("session has ended")
)

// SessionService handles session lifecycle. Each active session owns an
// in-memory collector; answers are written through to MongoDB so a
// restarted server can rehydrate the collector on first access.
type SessionService struct {
	sessionRepo  repository.SessionRepo
	answerRepo   repository.AnswerRepo
	sessionCache cache.SessionCache
	catalog      *catalog.Catalog
	authSvc      *AuthService

	mu         sync.Mutex
	collectors map[string]*collector.Collector
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo repository.SessionRepo,
	answerRepo repository.AnswerRepo,
	sessionCache cache.SessionCache,
	cat *catalog.Catalog,
	authSvc *AuthService,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		answerRepo:   answerRepo,
		sessionCache: sessionCache,
		catalog:      cat,
		authSvc:      authSvc,
		collectors:   make(map[string]*collector.Collector),
	}
}

// Create starts a new session and returns it with a respondent token
func (s *SessionService) Create(ctx context.Context) (*model.Session, string, error) {
	session := &model.Session{
		ID:        uuid.New().String(),
		Status:    model.SessionActive,
		StartedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	if err := s.sessionCache.Set(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to cache session: %w", err)
	}

	token, err := s.authSvc.GenerateRespondentToken(session.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.mu.Lock()
	s.collectors[session.ID] = collector.New(s.catalog)
	s.mu.Unlock()

	return session, token, nil
}

// Get retrieves a session, preferring the Redis cache
func (s *SessionService) Get(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.sessionCache.Get(ctx, id)
	if err == nil && session != nil {
		return session, nil
	}

	session, err = s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.Status == model.SessionActive {
		_ = s.sessionCache.Set(ctx, session)
	}
	return session, nil
}

// End transitions a session to ended and discards its collector
func (s *SessionService) End(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionEnded {
		return nil, ErrSessionEnded
	}

	now := time.Now()
	if err := s.sessionRepo.SetEnded(ctx, id, now); err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	_ = s.sessionCache.Delete(ctx, id)

	s.mu.Lock()
	delete(s.collectors, id)
	s.mu.Unlock()

	session.Status = model.SessionEnded
	session.EndedAt = &now
	return session, nil
}

// Catalog returns the shared read-only question catalog
func (s *SessionService) Catalog() *catalog.Catalog {
	return s.catalog
}

// List returns all sessions for the admin surface
func (s *SessionService) List(ctx context.Context) ([]*model.Session, error) {
	return s.sessionRepo.List(ctx)
}

// CollectorFor returns the session's in-memory collector, rehydrating
// it from persisted answers if the server restarted since the session
// began. Only active sessions still accept answers.
func (s *SessionService) CollectorFor(ctx context.Context, id string) (*collector.Collector, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionActive {
		return nil, ErrSessionEnded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if col, ok := s.collectors[id]; ok {
		return col, nil
	}

	col := collector.New(s.catalog)
	answers, err := s.answerRepo.GetBySessionID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	for _, a := range answers {
		// Answers recorded under an older catalog are dropped.
		_ = col.Record(a.QuestionID, a.Value, a.NotApplicable)
	}

	s.collectors[id] = col
	return col, nil
}

// IsComplete reports whether every question in the area has an answer
func (s *SessionService) IsComplete(ctx context.Context, id string, area model.FrameworkArea) (bool, error) {
	col, err := s.CollectorFor(ctx, id)
	if err != nil {
		return false, err
	}
	return col.IsComplete(area), nil
}
