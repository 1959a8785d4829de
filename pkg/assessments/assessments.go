// Package assessments serves the self-assessment test catalog: a fixed set
// of tests, category and free-text filtering, and submission scoring.
package assessments

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups assessments by the trait they measure.
type Category string

const (
	CategoryAttention           Category = "Attention"
	CategoryExecutiveFunction   Category = "Executive Function"
	CategoryEmotionalRegulation Category = "Emotional Regulation"
	CategoryBehavior            Category = "Behavior"
	CategoryLearning            Category = "Learning"
)

// Categories returns every assessment category in display order.
func Categories() []Category {
	return []Category{
		CategoryAttention,
		CategoryExecutiveFunction,
		CategoryEmotionalRegulation,
		CategoryBehavior,
		CategoryLearning,
	}
}

// IsValid checks the category against the known set.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Band summarizes a score range.
type Band string

const (
	BandLow      Band = "low"
	BandModerate Band = "moderate"
	BandHigh     Band = "high"
)

// Answers use a four-point frequency scale.
const (
	AnswerNever     = 0
	AnswerSometimes = 1
	AnswerOften     = 2
	AnswerVeryOften = 3
)

var (
	// ErrAssessmentNotFound indicates an unknown assessment ID.
	ErrAssessmentNotFound = errors.New("assessment not found")
	// ErrAnswerCount indicates a submission whose answer count does not
	// match the assessment's question count.
	ErrAnswerCount = errors.New("answer count mismatch")
	// ErrAnswerOutOfRange indicates an answer outside the frequency scale.
	ErrAnswerOutOfRange = errors.New("answer out of range")
)

// Assessment is one self-assessment test. Questions share a single
// frequency scale, so QuestionCount alone fixes the maximum score.
type Assessment struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Duration        string   `json:"duration"`
	QuestionCount   int      `json:"questions"`
	Category        Category `json:"category"`
	QuestionPrompts []string `json:"questionPrompts,omitempty"`
}

// MaxScore returns the highest score a full submission can reach.
func (a Assessment) MaxScore() int {
	return a.QuestionCount * AnswerVeryOften
}

// Result is the outcome of a scored submission.
type Result struct {
	AssessmentID string `json:"assessmentId"`
	Score        int    `json:"score"`
	MaxScore     int    `json:"maxScore"`
	Band         Band   `json:"band"`
}

// Catalog holds the fixed assessment set. It is immutable after
// construction and safe for concurrent readers.
type Catalog struct {
	tests []Assessment
	byID  map[string]Assessment
}

// NewCatalog builds the built-in assessment catalog.
func NewCatalog() *Catalog {
	tests := builtinAssessments()
	byID := make(map[string]Assessment, len(tests))
	for _, t := range tests {
		byID[t.ID] = t
	}
	return &Catalog{tests: tests, byID: byID}
}

// List returns the assessments matching the category and free-text query.
// An empty category matches every test; the query matches title or
// description, case-insensitively. Prompts are omitted from listings.
func (c *Catalog) List(category Category, query string) []Assessment {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []Assessment
	for _, t := range c.tests {
		if category != "" && t.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		t.QuestionPrompts = nil
		out = append(out, t)
	}
	return out
}

// Get returns a single assessment with its question prompts.
func (c *Catalog) Get(id string) (Assessment, error) {
	t, ok := c.byID[id]
	if !ok {
		return Assessment{}, fmt.Errorf("%w: %s", ErrAssessmentNotFound, id)
	}
	return t, nil
}

// Score validates and scores a submission. Every question needs exactly
// one answer on the 0..3 frequency scale.
func (c *Catalog) Score(id string, answers []int) (Result, error) {
	t, ok := c.byID[id]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrAssessmentNotFound, id)
	}
	if len(answers) != t.QuestionCount {
		return Result{}, fmt.Errorf("%w: got %d, want %d", ErrAnswerCount, len(answers), t.QuestionCount)
	}

	total := 0
	for i, a := range answers {
		if a < AnswerNever || a > AnswerVeryOften {
			return Result{}, fmt.Errorf("%w: answer %d is %d", ErrAnswerOutOfRange, i, a)
		}
		total += a
	}

	return Result{
		AssessmentID: id,
		Score:        total,
		MaxScore:     t.MaxScore(),
		Band:         bandFor(total, t.MaxScore()),
	}, nil
}

// bandFor cuts the score range into thirds.
func bandFor(score, maxScore int) Band {
	switch {
	case score*3 < maxScore:
		return BandLow
	case score*3 < maxScore*2:
		return BandModerate
	default:
		return BandHigh
	}
}
