package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phanindra-max/FrameworkLens/internal/model"
)

const reportTTL = 10 * time.Minute

// ReportCache holds the latest score report per session so repeated
// result views don't recompute. Writers overwrite on every accepted
// answer; scoring is deterministic so a stale miss is always safe to
// recompute.
type ReportCache interface {
	Set(ctx context.Context, sessionID string, report *model.ScoreReport) error
	Get(ctx context.Context, sessionID string) (*model.ScoreReport, error)
	Delete(ctx context.Context, sessionID string) error
}

type reportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
	}
}

func (c *reportCache) key(sessionID string) string {
	return fmt.Sprintf("session:%s:report", sessionID)
}

func (c *reportCache) Set(ctx context.Context, sessionID string, report *model.ScoreReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(sessionID), data, reportTTL).Err()
}

func (c *reportCache) Get(ctx context.Context, sessionID string) (*model.ScoreReport, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.ScoreReport
	err = json.Unmarshal([]byte(data), &report)
	return &report, err
}

func (c *reportCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID)).Err()
}
