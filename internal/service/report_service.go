package service

import (
	"context"
	"fmt"
	"time"

	"github.com/phanindra-max/FrameworkLens/internal/cache"
	"github.com/phanindra-max/FrameworkLens/internal/catalog"
	"github.com/phanindra-max/FrameworkLens/internal/model"
	"github.com/phanindra-max/FrameworkLens/internal/repository"
	"github.com/phanindra-max/FrameworkLens/internal/scoring"
)

// ReportService produces score reports for single sessions and the
// cross-session readiness summary for the admin surface.
type ReportService struct {
	sessionSvc  *SessionService
	sessionRepo repository.SessionRepo
	answerRepo  repository.AnswerRepo
	reportRepo  repository.ReportRepo
	reportCache cache.ReportCache
	catalog     *catalog.Catalog
}

// NewReportService creates a new report service
func NewReportService(
	sessionSvc *SessionService,
	sessionRepo repository.SessionRepo,
	answerRepo repository.AnswerRepo,
	reportRepo repository.ReportRepo,
	reportCache cache.ReportCache,
	cat *catalog.Catalog,
) *ReportService {
	return &ReportService{
		sessionSvc:  sessionSvc,
		sessionRepo: sessionRepo,
		answerRepo:  answerRepo,
		reportRepo:  reportRepo,
		reportCache: reportCache,
		catalog:     cat,
	}
}

// GetReport returns the score report for a session, from cache when
// fresh, otherwise recomputed from the session's answers.
func (s *ReportService) GetReport(ctx context.Context, sessionID string) (*model.ScoreReport, error) {
	if report, err := s.reportCache.Get(ctx, sessionID); err == nil && report != nil {
		return report, nil
	}

	session, err := s.sessionSvc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var snap model.ResponseSnapshot
	if session.Status == model.SessionActive {
		col, err := s.sessionSvc.CollectorFor(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		snap = col.Snapshot()
	} else {
		snap, err = s.snapshotFromStore(ctx, sessionID)
		if err != nil {
			return nil, err
		}
	}

	report := scoring.Score(s.catalog, snap)
	report.SessionID = sessionID
	_ = s.reportCache.Set(ctx, sessionID, report)
	return report, nil
}

// BuildSummary recomputes the cross-session summary over ended sessions
// and persists it.
func (s *ReportService) BuildSummary(ctx context.Context) (*model.ReadinessSummary, error) {
	sessions, err := s.sessionRepo.ListEnded(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	type areaAcc struct {
		sum   float64
		count int
	}
	accs := make(map[model.FrameworkArea]*areaAcc)
	for _, area := range s.catalog.AllAreas() {
		accs[area] = &areaAcc{}
	}

	for _, session := range sessions {
		snap, err := s.snapshotFromStore(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		report := scoring.Score(s.catalog, snap)
		for _, as := range report.Areas {
			if as.Score != nil {
				accs[as.Area].sum += *as.Score
				accs[as.Area].count++
			}
		}
	}

	summary := &model.ReadinessSummary{
		Sessions:    len(sessions),
		GeneratedAt: time.Now(),
	}

	var overallNum, overallDen float64
	for _, fw := range s.catalog.Frameworks() {
		agg := model.AreaAggregate{
			Area:     fw.Area,
			Name:     fw.Name,
			Sessions: accs[fw.Area].count,
		}
		if acc := accs[fw.Area]; acc.count > 0 {
			mean := acc.sum / float64(acc.count)
			agg.MeanScore = &mean

			areaWeight := s.catalog.TotalWeight(fw.Area)
			overallNum += mean * areaWeight
			overallDen += areaWeight
		}
		summary.Areas = append(summary.Areas, agg)
	}
	if overallDen > 0 {
		overall := overallNum / overallDen
		summary.Overall = &overall
	}

	if err := s.reportRepo.SaveSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}
	return summary, nil
}

// GetSummary returns the last built summary, or nil if none exists yet
func (s *ReportService) GetSummary(ctx context.Context) (*model.ReadinessSummary, error) {
	return s.reportRepo.GetSummary(ctx)
}

func (s *ReportService) snapshotFromStore(ctx context.Context, sessionID string) (model.ResponseSnapshot, error) {
	answers, err := s.answerRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	snap := make(model.ResponseSnapshot, len(answers))
	for _, a := range answers {
		if _, ok := s.catalog.Lookup(a.QuestionID); !ok {
			continue
		}
		snap[a.QuestionID] = model.AnswerValue{Value: a.Value, NotApplicable: a.NotApplicable}
	}
	return snap, nil
}
