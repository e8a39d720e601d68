package model

// SectionScore is the scorecard for one section of a framework.
// Earned and Max are weighted points over answered, applicable questions.
type SectionScore struct {
	Name     string  `json:"name"`
	Earned   float64 `json:"earned"`
	Max      float64 `json:"max"`
	Percent  float64 `json:"percent"`
	Answered int     `json:"answered"`
	Total    int     `json:"total"`
}

// AreaScore is the readiness result for one framework area. Score is the
// weighted mean over answered questions, normalized to [0,1]; it is nil
// when the area has no scoring answers so "no data" is never mistaken
// for "worst score".
type AreaScore struct {
	Area     FrameworkArea  `json:"area"`
	Name     string         `json:"name"`
	Score    *float64       `json:"score"`
	Answered int            `json:"answered"`
	Total    int            `json:"total"`
	Sections []SectionScore `json:"sections"`
}

// GapItem flags a low-scoring answered question for remediation
type GapItem struct {
	Area       FrameworkArea `json:"area"`
	Section    string        `json:"section"`
	QuestionID string        `json:"questionId"`
	Prompt     string        `json:"prompt"`
	Value      int           `json:"value"`
}

// ScoreReport is the full scoring output for one session. Overall is the
// weighted mean of per-area scores, weighted by each area's total
// question weight; areas without answers are excluded, and Overall is
// nil when no area has any.
type ScoreReport struct {
	SessionID string      `json:"sessionId,omitempty"`
	Areas     []AreaScore `json:"areas"`
	Overall   *float64    `json:"overall"`
	Gaps      []GapItem   `json:"gaps"`
}

// AreaAggregate is the cross-session mean for one area
type AreaAggregate struct {
	Area      FrameworkArea `json:"area" bson:"area"`
	Name      string        `json:"name" bson:"name"`
	MeanScore *float64      `json:"meanScore" bson:"meanScore"`
	Sessions  int           `json:"sessions" bson:"sessions"`
}
