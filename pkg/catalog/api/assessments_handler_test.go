package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yesigotthis/adhd-hub/pkg/assessments"
	"github.com/yesigotthis/adhd-hub/pkg/catalog/api"
)

func TestListAssessments(t *testing.T) {
	ts := newTestServer(t)

	t.Run("all tests", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/assessments", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var tests []assessments.Assessment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tests))
		assert.Len(t, tests, 6)
	})

	t.Run("category filter", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/assessments?category=Attention", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var tests []assessments.Assessment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tests))
		assert.Len(t, tests, 2)
	})

	t.Run("free text query", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/assessments?q=learning+style", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var tests []assessments.Assessment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tests))
		require.Len(t, tests, 1)
		assert.Equal(t, "learning-style-analysis", tests[0].ID)
	})

	t.Run("unknown category is 400", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/assessments?category=Astrology", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAssessment(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/assessments/focus-concentration-test", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var test assessments.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &test))
	assert.Len(t, test.QuestionPrompts, test.QuestionCount)

	rec = ts.do(t, http.MethodGet, "/assessments/no-such-test", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitAssessment(t *testing.T) {
	ts := newTestServer(t)

	answers := make([]int, 10)
	for i := range answers {
		answers[i] = assessments.AnswerVeryOften
	}

	rec := ts.do(t, http.MethodPost, "/assessments/focus-concentration-test/submit", "", api.SubmitRequest{Answers: answers})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result assessments.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 30, result.Score)
	assert.Equal(t, assessments.BandHigh, result.Band)

	t.Run("wrong answer count is 400", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/assessments/focus-concentration-test/submit", "", api.SubmitRequest{Answers: answers[:3]})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown test is 404", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/assessments/no-such-test/submit", "", api.SubmitRequest{Answers: answers})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
