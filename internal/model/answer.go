package model

import "time"

// Answer is a persisted response to a single question. One answer per
// question per session; re-submission replaces the previous value.
type Answer struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	SessionID     string    `json:"sessionId" bson:"sessionId"`
	QuestionID    string    `json:"questionId" bson:"questionId"`
	Value         int       `json:"value" bson:"value"`
	NotApplicable bool      `json:"notApplicable" bson:"notApplicable"`
	AnsweredAt    time.Time `json:"answeredAt" bson:"answeredAt"`
}

// AnswerValue is the recorded value for one question inside a snapshot
type AnswerValue struct {
	Value         int  `json:"value"`
	NotApplicable bool `json:"notApplicable"`
}

// ResponseSnapshot is an immutable copy of a session's answers keyed by
// question ID, safe to hand to the scorer while recording continues.
type ResponseSnapshot map[string]AnswerValue

// RecordAnswerRequest is the request body for submitting an answer
type RecordAnswerRequest struct {
	QuestionID    string `json:"questionId"`
	Value         int    `json:"value"`
	NotApplicable bool   `json:"notApplicable,omitempty"`
}

// RecordAnswerResponse acknowledges a recorded answer
type RecordAnswerResponse struct {
	QuestionID string `json:"questionId"`
	Answered   int    `json:"answered"` // total answers recorded in the session
}
