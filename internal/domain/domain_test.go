package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GVarya/MA-homework-service/internal/domain"
	"github.com/GVarya/MA-homework-service/internal/errdefs"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestNewHomework(t *testing.T) {
	now := time.Now()
	courseID := uuid.New()

	hw, err := domain.NewHomework(courseID, "Limits", "chapter 2", now)
	require.NoError(t, err)
	assert.Equal(t, domain.HomeworkStatusCreated, hw.Status)
	assert.Equal(t, courseID, hw.CourseID)
	assert.Nil(t, hw.PublishedAt)
	assert.Equal(t, uuid.Version(7), hw.ID.Version())

	_, err = domain.NewHomework(uuid.Nil, "Limits", "", now)
	assert.ErrorIs(t, err, errdefs.ErrValidation)

	_, err = domain.NewHomework(courseID, "   ", "", now)
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

func TestHomeworkPublish(t *testing.T) {
	created := time.Now()
	hw, err := domain.NewHomework(uuid.New(), "Limits", "", created)
	require.NoError(t, err)

	// a clock behind creation time still yields published_at >= created_at
	require.NoError(t, hw.Publish(created.Add(-time.Minute)))
	assert.True(t, hw.IsActive())
	require.NotNil(t, hw.PublishedAt)
	assert.False(t, hw.PublishedAt.Before(hw.CreatedAt))

	err = hw.Publish(time.Now())
	assert.ErrorIs(t, err, errdefs.ErrInvalidTransition)

	hw.Status = domain.HomeworkStatusClosed
	assert.ErrorIs(t, hw.Publish(time.Now()), errdefs.ErrInvalidTransition)
}

func TestSolutionTransitions(t *testing.T) {
	cases := []struct {
		from, to domain.SolutionStatus
		ok       bool
	}{
		{domain.SolutionStatusDraft, domain.SolutionStatusSubmitted, true},
		{domain.SolutionStatusDraft, domain.SolutionStatusGraded, false},
		{domain.SolutionStatusSubmitted, domain.SolutionStatusReturned, true},
		{domain.SolutionStatusSubmitted, domain.SolutionStatusGraded, true},
		{domain.SolutionStatusSubmitted, domain.SolutionStatusDraft, false},
		{domain.SolutionStatusReturned, domain.SolutionStatusGraded, true},
		{domain.SolutionStatusReturned, domain.SolutionStatusSubmitted, false},
		{domain.SolutionStatusGraded, domain.SolutionStatusReturned, true},
		{domain.SolutionStatusGraded, domain.SolutionStatusGraded, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestSolutionLifecycle(t *testing.T) {
	sol, err := domain.NewDraftSolution(uuid.New(), uuid.New(), "x = 2", time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.SolutionStatusDraft, sol.Status)

	assert.ErrorIs(t, sol.ApplyGrade(50, nil), errdefs.ErrInvalidTransition)
	assert.ErrorIs(t, sol.ReturnForRework("no"), errdefs.ErrInvalidTransition)

	require.NoError(t, sol.Submit(time.Now()))
	require.NotNil(t, sol.SubmittedAt)
	assert.ErrorIs(t, sol.Submit(time.Now()), errdefs.ErrInvalidTransition)

	require.NoError(t, sol.ApplyGrade(80, strPtr("good")))
	assert.Equal(t, 80, *sol.Grade)
	assert.Equal(t, "good", *sol.Feedback)

	require.NoError(t, sol.ReturnForRework("show the steps"))
	assert.Equal(t, domain.SolutionStatusReturned, sol.Status)
	assert.Equal(t, 80, *sol.Grade, "grade survives a return")
	assert.Equal(t, "show the steps", *sol.Feedback)

	require.NoError(t, sol.ApplyGrade(95, strPtr("")))
	assert.Equal(t, 95, *sol.Grade)
	assert.Equal(t, "show the steps", *sol.Feedback, "empty feedback keeps the previous one")
}

func TestSolutionGradeBounds(t *testing.T) {
	for _, grade := range []int{-1, 101} {
		sol, err := domain.NewDraftSolution(uuid.New(), uuid.New(), "a", time.Now())
		require.NoError(t, err)
		require.NoError(t, sol.Submit(time.Now()))

		err = sol.ApplyGrade(grade, nil)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
		assert.Equal(t, domain.SolutionStatusSubmitted, sol.Status)
		assert.Nil(t, sol.Grade)
	}

	for _, grade := range []int{domain.MinGrade, domain.MaxGrade} {
		sol, err := domain.NewDraftSolution(uuid.New(), uuid.New(), "a", time.Now())
		require.NoError(t, err)
		require.NoError(t, sol.Submit(time.Now()))
		assert.NoError(t, sol.ApplyGrade(grade, nil))
	}
}

func TestNewDraftSolution_Validation(t *testing.T) {
	_, err := domain.NewDraftSolution(uuid.New(), uuid.Nil, "a", time.Now())
	assert.ErrorIs(t, err, errdefs.ErrValidation)

	_, err = domain.NewDraftSolution(uuid.New(), uuid.New(), " \n", time.Now())
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

func TestProgressRecompute(t *testing.T) {
	p, err := domain.NewProgress(uuid.New(), uuid.New(), 4)
	require.NoError(t, err)

	p.Recompute([]*domain.Solution{
		{Status: domain.SolutionStatusGraded, Grade: intPtr(80)},
		{Status: domain.SolutionStatusGraded, Grade: intPtr(100)},
		{Status: domain.SolutionStatusReturned, Grade: intPtr(60)},
		{Status: domain.SolutionStatusSubmitted},
	})

	assert.Equal(t, 4, p.TotalHomeworks)
	assert.Equal(t, 2, p.CompletedHomeworks)
	require.NotNil(t, p.AverageGrade)
	assert.InDelta(t, 80.0, *p.AverageGrade, 1e-9)

	p.Recompute(nil)
	assert.Zero(t, p.CompletedHomeworks)
	assert.Nil(t, p.AverageGrade)
}

func TestStatusCodecs(t *testing.T) {
	var hs domain.HomeworkStatus
	require.NoError(t, json.Unmarshal([]byte(`"active"`), &hs))
	assert.Equal(t, domain.HomeworkStatusActive, hs)
	assert.Error(t, json.Unmarshal([]byte(`"archived"`), &hs))

	var ss domain.SolutionStatus
	require.NoError(t, ss.Scan([]byte("graded")))
	assert.Equal(t, domain.SolutionStatusGraded, ss)
	assert.Error(t, ss.Scan(nil))
	assert.Error(t, ss.Scan(42))
	assert.Error(t, ss.Scan("pending"))

	v, err := domain.HomeworkStatusClosed.Value()
	require.NoError(t, err)
	assert.Equal(t, "closed", v)

	_, err = domain.SolutionStatus("bogus").Value()
	assert.Error(t, err)

	assert.True(t, domain.HomeworkStatusClosed.IsPublished())
	assert.False(t, domain.HomeworkStatusCreated.IsPublished())
}

func TestEvents(t *testing.T) {
	at := time.Now()
	hw, err := domain.NewHomework(uuid.New(), "Limits", "", at)
	require.NoError(t, err)

	ev := domain.HomeworkEvent(domain.EventHomeworkActivated, hw, at)
	assert.Equal(t, hw.ID, ev.EntityID)
	require.NotNil(t, ev.CourseID)
	assert.Equal(t, hw.CourseID, *ev.CourseID)
	assert.Nil(t, ev.StudentID)

	sol, err := domain.NewDraftSolution(hw.ID, uuid.New(), "a", at)
	require.NoError(t, err)
	sol.Grade = intPtr(70)

	ev = domain.SolutionEvent(domain.EventSolutionGraded, sol, at)
	assert.Equal(t, sol.ID, ev.EntityID)
	assert.Equal(t, hw.ID, *ev.HomeworkID)
	assert.Equal(t, 70, *ev.Grade)

	data, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"solution.graded"`)
	assert.NotContains(t, string(data), "course_id")
}

func TestErrorKinds(t *testing.T) {
	assert.Equal(t, "validation_error", errdefs.Kind(errdefs.ErrValidation))
	assert.Equal(t, "invalid_transition", errdefs.Kind(
		(&domain.Homework{Status: domain.HomeworkStatusActive}).Publish(time.Now())))
	assert.Equal(t, "internal", errdefs.Kind(assert.AnError))
	assert.False(t, errdefs.IsDomain(assert.AnError))
	assert.True(t, errdefs.IsDomain(errdefs.ErrNotFound))
}
