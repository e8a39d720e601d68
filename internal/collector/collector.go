package collector

import (
	"errors"
	"fmt"
	"sync"

	"github.com/phanindra-max/FrameworkLens/internal/catalog"
	"github.com/phanindra-max/FrameworkLens/internal/model"
)

var (
	// ErrUnknownQuestion means the question ID is not in the catalog
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrOutOfRange means the value is outside the question's scale;
	// values are rejected, never clamped.
	ErrOutOfRange = errors.New("answer value out of range")
)

// Collector holds one session's answers. Each session gets its own
// collector; the only state shared between sessions is the read-only
// catalog.
type Collector struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	answers map[string]model.AnswerValue
}

// New creates an empty collector bound to the catalog
func New(cat *catalog.Catalog) *Collector {
	return &Collector{
		catalog: cat,
		answers: make(map[string]model.AnswerValue),
	}
}

// Record stores the answer for a question, overwriting any previous
// value. A notApplicable answer skips range validation and is excluded
// from scoring weight but still counts toward completeness.
func (c *Collector) Record(questionID string, value int, notApplicable bool) error {
	q, ok := c.catalog.Lookup(questionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if !notApplicable && (value < q.ScaleMin || value > q.ScaleMax) {
		return fmt.Errorf("%w: %d not in [%d,%d] for %s", ErrOutOfRange, value, q.ScaleMin, q.ScaleMax, questionID)
	}

	c.mu.Lock()
	c.answers[questionID] = model.AnswerValue{Value: value, NotApplicable: notApplicable}
	c.mu.Unlock()
	return nil
}

// IsComplete reports whether every question in the area has an answer
func (c *Collector) IsComplete(area model.FrameworkArea) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, q := range c.catalog.QuestionsFor(area) {
		if _, ok := c.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Snapshot returns an immutable copy of the answers. Later Record calls
// do not affect a snapshot already handed out.
func (c *Collector) Snapshot() model.ResponseSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap := make(model.ResponseSnapshot, len(c.answers))
	for id, v := range c.answers {
		snap[id] = v
	}
	return snap
}

// Len returns the number of answered questions
func (c *Collector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.answers)
}
