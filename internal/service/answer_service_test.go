package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanindra-max/FrameworkLens/internal/catalog"
	"github.com/phanindra-max/FrameworkLens/internal/collector"
	"github.com/phanindra-max/FrameworkLens/internal/model"
)

// In-memory fakes standing in for MongoDB and Redis.

type fakeSessionRepo struct {
	sessions map[string]*model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *model.Session) error {
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *session
	return &cp, nil
}

func (r *fakeSessionRepo) SetEnded(ctx context.Context, id string, endedAt time.Time) error {
	if session, ok := r.sessions[id]; ok {
		session.Status = model.SessionEnded
		session.EndedAt = &endedAt
	}
	return nil
}

func (r *fakeSessionRepo) List(ctx context.Context) ([]*model.Session, error) {
	var out []*model.Session
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSessionRepo) ListEnded(ctx context.Context) ([]*model.Session, error) {
	var out []*model.Session
	for _, s := range r.sessions {
		if s.Status == model.SessionEnded {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeAnswerRepo struct {
	answers map[string]map[string]*model.Answer // sessionID -> questionID -> answer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[string]map[string]*model.Answer)}
}

func (r *fakeAnswerRepo) Upsert(ctx context.Context, answer *model.Answer) error {
	if r.answers[answer.SessionID] == nil {
		r.answers[answer.SessionID] = make(map[string]*model.Answer)
	}
	cp := *answer
	r.answers[answer.SessionID][answer.QuestionID] = &cp
	return nil
}

func (r *fakeAnswerRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.Answer, error) {
	var out []*model.Answer
	for _, a := range r.answers[sessionID] {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAnswerRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	delete(r.answers, sessionID)
	return nil
}

type fakeSessionCache struct {
	sessions map[string]*model.Session
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: make(map[string]*model.Session)}
}

func (c *fakeSessionCache) Set(ctx context.Context, session *model.Session) error {
	cp := *session
	c.sessions[session.ID] = &cp
	return nil
}

func (c *fakeSessionCache) Get(ctx context.Context, id string) (*model.Session, error) {
	session, ok := c.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *session
	return &cp, nil
}

func (c *fakeSessionCache) Delete(ctx context.Context, id string) error {
	delete(c.sessions, id)
	return nil
}

type fakeReportCache struct {
	reports map[string]*model.ScoreReport
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{reports: make(map[string]*model.ScoreReport)}
}

func (c *fakeReportCache) Set(ctx context.Context, sessionID string, report *model.ScoreReport) error {
	c.reports[sessionID] = report
	return nil
}

func (c *fakeReportCache) Get(ctx context.Context, sessionID string) (*model.ScoreReport, error) {
	return c.reports[sessionID], nil
}

func (c *fakeReportCache) Delete(ctx context.Context, sessionID string) error {
	delete(c.reports, sessionID)
	return nil
}

type broadcastEvent struct {
	sessionID string
	msgType   string
}

type fakeBroadcaster struct {
	events []broadcastEvent
}

func (b *fakeBroadcaster) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	b.events = append(b.events, broadcastEvent{sessionID: sessionID, msgType: msgType})
}

type testEnv struct {
	sessionRepo  *fakeSessionRepo
	answerRepo   *fakeAnswerRepo
	reportRepo   *fakeReportRepo
	sessionCache *fakeSessionCache
	reportCache  *fakeReportCache
	broadcaster  *fakeBroadcaster
	sessionSvc   *SessionService
	answerSvc    *AnswerService
	reportSvc    *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cat, err := catalog.New(catalog.Builtin())
	require.NoError(t, err)

	env := &testEnv{
		sessionRepo:  newFakeSessionRepo(),
		answerRepo:   newFakeAnswerRepo(),
		reportRepo:   &fakeReportRepo{},
		sessionCache: newFakeSessionCache(),
		reportCache:  newFakeReportCache(),
		broadcaster:  &fakeBroadcaster{},
	}
	env.sessionSvc = NewSessionService(env.sessionRepo, env.answerRepo, env.sessionCache, cat, NewAuthService())
	env.answerSvc = NewAnswerService(env.sessionSvc, env.answerRepo, env.reportCache, cat)
	env.answerSvc.SetBroadcaster(env.broadcaster)
	env.reportSvc = NewReportService(env.sessionSvc, env.sessionRepo, env.answerRepo, env.reportRepo, env.reportCache, cat)
	return env
}

func TestRecordFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session, token, err := env.sessionSvc.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, model.SessionActive, session.Status)

	resp, err := env.answerSvc.Record(ctx, session.ID, &model.RecordAnswerRequest{
		QuestionID: "nist-ai-rmf-govern-0",
		Value:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Answered)

	// Write-through to the answer store.
	answers, err := env.answerRepo.GetBySessionID(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, 3, answers[0].Value)

	// Fresh report cached and broadcast to live viewers.
	cached := env.reportCache.reports[session.ID]
	require.NotNil(t, cached)
	assert.Equal(t, session.ID, cached.SessionID)
	require.Len(t, env.broadcaster.events, 1)
	assert.Equal(t, MsgScoreUpdate, env.broadcaster.events[0].msgType)
}

func TestRecordRejectsUnknownQuestion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session, _, err := env.sessionSvc.Create(ctx)
	require.NoError(t, err)

	_, err = env.answerSvc.Record(ctx, session.ID, &model.RecordAnswerRequest{
		QuestionID: "no-such-question",
		Value:      2,
	})
	assert.ErrorIs(t, err, collector.ErrUnknownQuestion)
	assert.Empty(t, env.answerRepo.answers[session.ID])
	assert.Empty(t, env.broadcaster.events)
}

func TestRecordRejectsOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session, _, err := env.sessionSvc.Create(ctx)
	require.NoError(t, err)

	_, err = env.answerSvc.Record(ctx, session.ID, &model.RecordAnswerRequest{
		QuestionID: "nist-ai-rmf-govern-0",
		Value:      5,
	})
	assert.ErrorIs(t, err, collector.ErrOutOfRange)
	assert.Empty(t, env.answerRepo.answers[session.ID])
}

func TestRecordOverwritesInStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session, _, err := env.sessionSvc.Create(ctx)
	require.NoError(t, err)

	for _, v := range []int{1, 4} {
		_, err = env.answerSvc.Record(ctx, session.ID, &model.RecordAnswerRequest{
			QuestionID: "nist-ai-rmf-govern-0",
			Value:      v,
		})
		require.NoError(t, err)
	}

	answers, err := env.answerRepo.GetBySessionID(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, 4, answers[0].Value)
}

func TestRecordOnEndedSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session, _, err := env.sessionSvc.Create(ctx)
	require.NoError(t, err)
	_, err = env.sessionSvc.End(ctx, session.ID)
	require.NoError(t, err)

	_, err = env.answerSvc.Record(ctx, session.ID, &model.RecordAnswerRequest{
		QuestionID: "nist-ai-rmf-govern-0",
		Value:      2,
	})
	assert.ErrorIs(t, err, ErrSessionEnded)
}

func TestRecordOnMissingSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.answerSvc.Record(context.Background(), "missing", &model.RecordAnswerRequest{
		QuestionID: "nist-ai-rmf-govern-0",
		Value:      2,
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCollectorRehydratesAfterRestart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session, _, err := env.sessionSvc.Create(ctx)
	require.NoError(t, err)
	_, err = env.answerSvc.Record(ctx, session.ID, &model.RecordAnswerRequest{
		QuestionID: "coso-erm-performance-0",
		Value:      3,
	})
	require.NoError(t, err)

	// Simulate a restart: new services over the same stores, empty
	// collector map.
	restarted := NewSessionService(env.sessionRepo, env.answerRepo, env.sessionCache, env.sessionSvc.Catalog(), NewAuthService())

	col, err := restarted.CollectorFor(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, col.Len())
	assert.Equal(t, 3, col.Snapshot()["coso-erm-performance-0"].Value)
}

func TestGetReportForEndedSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session, _, err := env.sessionSvc.Create(ctx)
	require.NoError(t, err)

	_, err = env.answerSvc.Record(ctx, session.ID, &model.RecordAnswerRequest{
		QuestionID: "grc-tools-and-practices-risk-register-0",
		Value:      4,
	})
	require.NoError(t, err)

	_, err = env.sessionSvc.End(ctx, session.ID)
	require.NoError(t, err)
	// Drop the cached copy to force recompute from the store.
	require.NoError(t, env.reportCache.Delete(ctx, session.ID))

	report, err := env.reportSvc.GetReport(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, report.Overall)
	assert.InDelta(t, 1.0, *report.Overall, 1e-9)
}

func TestBuildSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	scores := []int{0, 4}
	for _, v := range scores {
		session, _, err := env.sessionSvc.Create(ctx)
		require.NoError(t, err)
		_, err = env.answerSvc.Record(ctx, session.ID, &model.RecordAnswerRequest{
			QuestionID: "nist-ai-rmf-govern-0",
			Value:      v,
		})
		require.NoError(t, err)
		_, err = env.sessionSvc.End(ctx, session.ID)
		require.NoError(t, err)
	}

	summary, err := env.reportSvc.BuildSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Sessions)
	require.NotNil(t, env.reportRepo.saved)

	for _, agg := range summary.Areas {
		if agg.Area == model.AreaNISTAIRMF {
			require.NotNil(t, agg.MeanScore)
			assert.InDelta(t, 0.5, *agg.MeanScore, 1e-9)
			assert.Equal(t, 2, agg.Sessions)
		} else {
			assert.Nil(t, agg.MeanScore)
		}
	}
}

type fakeReportRepo struct {
	saved *model.ReadinessSummary
}

func (r *fakeReportRepo) SaveSummary(ctx context.Context, summary *model.ReadinessSummary) error {
	r.saved = summary
	return nil
}

func (r *fakeReportRepo) GetSummary(ctx context.Context) (*model.ReadinessSummary, error) {
	return r.saved, nil
}
