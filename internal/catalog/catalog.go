package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/phanindra-max/FrameworkLens/internal/model"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure.
// Catalog construction happens once at startup and is fatal on error.
var ErrInvalidCatalog = errors.New("invalid catalog")

const (
	defaultScaleMax = 4
	defaultWeight   = 1.0
)

// Catalog is the immutable set of frameworks, sections, and questions.
// It is built once at startup and safe for concurrent readers without
// locking.
type Catalog struct {
	frameworks []model.Framework
	areas      []model.FrameworkArea
	byID       map[string]model.Question
	byArea     map[model.FrameworkArea][]model.Question
}

// New validates the framework definitions and builds a catalog.
// Question IDs default to the <framework>-<section>-<index> slug scheme;
// zero weights and scales get the defaults before validation.
func New(frameworks []model.Framework) (*Catalog, error) {
	c := &Catalog{
		byID:   make(map[string]model.Question),
		byArea: make(map[model.FrameworkArea][]model.Question),
	}

	for _, fw := range frameworks {
		if !fw.Area.Valid() {
			return nil, fmt.Errorf("%w: unknown framework area %q", ErrInvalidCatalog, fw.Area)
		}
		if fw.Name == "" {
			return nil, fmt.Errorf("%w: framework %s has no name", ErrInvalidCatalog, fw.Area)
		}
		if _, ok := c.byArea[fw.Area]; ok {
			return nil, fmt.Errorf("%w: duplicate framework area %q", ErrInvalidCatalog, fw.Area)
		}

		for si := range fw.Sections {
			sec := &fw.Sections[si]
			if sec.Name == "" {
				return nil, fmt.Errorf("%w: framework %s has an unnamed section", ErrInvalidCatalog, fw.Area)
			}
			for qi := range sec.Questions {
				q := &sec.Questions[qi]
				q.Area = fw.Area
				q.Section = sec.Name
				if q.ID == "" {
					q.ID = fmt.Sprintf("%s-%s-%d", Slug(fw.Name), Slug(sec.Name), qi)
				}
				if q.Weight == 0 {
					q.Weight = defaultWeight
				}
				if q.ScaleMin == 0 && q.ScaleMax == 0 {
					q.ScaleMax = defaultScaleMax
				}

				if q.Prompt == "" {
					return nil, fmt.Errorf("%w: question %s has an empty prompt", ErrInvalidCatalog, q.ID)
				}
				if q.Weight <= 0 {
					return nil, fmt.Errorf("%w: question %s has non-positive weight %v", ErrInvalidCatalog, q.ID, q.Weight)
				}
				if q.ScaleMax <= q.ScaleMin {
					return nil, fmt.Errorf("%w: question %s has invalid scale [%d,%d]", ErrInvalidCatalog, q.ID, q.ScaleMin, q.ScaleMax)
				}
				if _, ok := c.byID[q.ID]; ok {
					return nil, fmt.Errorf("%w: duplicate question id %s", ErrInvalidCatalog, q.ID)
				}

				c.byID[q.ID] = *q
				c.byArea[fw.Area] = append(c.byArea[fw.Area], *q)
			}
		}

		c.frameworks = append(c.frameworks, fw)
		c.areas = append(c.areas, fw.Area)
	}

	if len(c.byID) == 0 {
		return nil, fmt.Errorf("%w: no questions defined", ErrInvalidCatalog)
	}

	return c, nil
}

// Frameworks returns the frameworks in author-defined order
func (c *Catalog) Frameworks() []model.Framework {
	out := make([]model.Framework, len(c.frameworks))
	copy(out, c.frameworks)
	return out
}

// AllAreas returns the framework areas in author-defined order
func (c *Catalog) AllAreas() []model.FrameworkArea {
	out := make([]model.FrameworkArea, len(c.areas))
	copy(out, c.areas)
	return out
}

// QuestionsFor returns the questions of one area in author-defined order
func (c *Catalog) QuestionsFor(area model.FrameworkArea) []model.Question {
	qs := c.byArea[area]
	out := make([]model.Question, len(qs))
	copy(out, qs)
	return out
}

// Lookup finds a question by ID
func (c *Catalog) Lookup(id string) (model.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Len returns the total number of questions
func (c *Catalog) Len() int {
	return len(c.byID)
}

// TotalWeight sums the weights of all questions in an area
func (c *Catalog) TotalWeight(area model.FrameworkArea) float64 {
	var sum float64
	for _, q := range c.byArea[area] {
		sum += q.Weight
	}
	return sum
}

// Slug lowercases text and replaces every non-alphanumeric character
// with a dash, matching the question key scheme of the questionnaire.
func Slug(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
