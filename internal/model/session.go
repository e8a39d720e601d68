package model

import "time"

type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionEnded  SessionStatus = "ended"
)

// Session is one respondent's pass through the questionnaire
type Session struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Status    SessionStatus `json:"status" bson:"status"`
	StartedAt time.Time     `json:"startedAt" bson:"startedAt"`
	EndedAt   *time.Time    `json:"endedAt,omitempty" bson:"endedAt,omitempty"`
}

// ReadinessSummary aggregates scores across ended sessions for the
// admin dashboard.
type ReadinessSummary struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Sessions    int             `json:"sessions" bson:"sessions"`
	Areas       []AreaAggregate `json:"areas" bson:"areas"`
	Overall     *float64        `json:"overall" bson:"overall"`
	GeneratedAt time.Time       `json:"generatedAt" bson:"generatedAt"`
}
