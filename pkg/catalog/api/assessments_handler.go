package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yesigotthis/adhd-hub/pkg/assessments"
)

// AssessmentsHandler serves the self-assessment catalog.
type AssessmentsHandler struct {
	catalog *assessments.Catalog
}

// NewAssessmentsHandler creates a handler over the assessment catalog.
func NewAssessmentsHandler(catalog *assessments.Catalog) *AssessmentsHandler {
	return &AssessmentsHandler{catalog: catalog}
}

// Routes returns the assessment routes.
func (h *AssessmentsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListAssessments)
	r.Get("/{id}", h.GetAssessment)
	r.Post("/{id}/submit", h.SubmitAnswers)

	return r
}

// ListAssessments filters the catalog by category and free-text query.
func (h *AssessmentsHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	category := assessments.Category(q.Get("category"))
	if category != "" && !category.IsValid() {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	tests := h.catalog.List(category, q.Get("q"))
	if tests == nil {
		tests = []assessments.Assessment{}
	}
	render.JSON(w, r, tests)
}

// GetAssessment returns one test with its question prompts.
func (h *AssessmentsHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	test, err := h.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	render.JSON(w, r, test)
}

// SubmitRequest carries one completed answer sheet.
type SubmitRequest struct {
	Answers []int `json:"answers"`
}

// SubmitAnswers scores a submission and returns the band.
func (h *AssessmentsHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.catalog.Score(chi.URLParam(r, "id"), req.Answers)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, assessments.ErrAssessmentNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	render.JSON(w, r, result)
}
