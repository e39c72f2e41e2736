package student

import (
	"context"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testForm(t *testing.T) (*RegistrationForm, *fakeCourseRepo, *fakeSessionRepo) {
	t.Helper()
	ctx := context.Background()
	courses, sessions := testCatalog()

	crss, err := courses.QueryAllCourses(ctx)
	require.NoError(t, err)
	sess, err := sessions.QueryAllSessions(ctx)
	require.NoError(t, err)
	return NewRegistrationForm(crss, sess), courses, sessions
}

func TestRegistrationForm_courseSelectionGatesSessions(t *testing.T) {
	form, _, _ := testForm(t)

	// nothing selected yet: no sessions offered
	assert.Empty(t, slices.Collect(form.AvailableSessions()))

	form.SelectCourse("Welding Basics")
	offered := slices.Collect(form.AvailableSessions())
	require.Len(t, offered, 1)
	assert.Equal(t, "Welding Basics", offered[0].CourseTitle)
}

func TestRegistrationForm_courseChangeResetsSession(t *testing.T) {
	form, _, _ := testForm(t)

	form.SelectCourse("Welding Basics")
	form.SelectSession("2025-03-09 09:00 AM - 05:00 PM")
	require.Equal(t, "2025-03-09 09:00 AM - 05:00 PM", form.Session)

	form.SelectCourse("Forklift Safety")
	assert.Empty(t, form.Session)

	// re-selecting the same course also clears: the user must re-pick
	form.SelectSession("2025-03-10 09:00 AM - 01:00 PM")
	form.SelectCourse("Forklift Safety")
	assert.Empty(t, form.Session)
}

func TestRegistrationForm_Submit(t *testing.T) {
	ctx := context.Background()
	form, courses, sessions := testForm(t)
	repo := &countingStudentRepo{}
	svc := NewService(repo, courses, sessions, nil)

	reg := validRegistration()
	form.Registration = reg
	form.SelectCourse("Welding Basics")
	form.SelectSession("2025-03-09 09:00 AM - 05:00 PM")

	stu, err := form.Submit(ctx, svc)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "Welding Basics", stu.CourseEnrolled)
}

func TestRegistrationForm_failedSubmitKeepsValues(t *testing.T) {
	ctx := context.Background()
	form, courses, sessions := testForm(t)
	repo := &countingStudentRepo{createErr: errors.New("boom")}
	svc := NewService(repo, courses, sessions, nil)

	form.Registration = validRegistration()

	_, err := form.Submit(ctx, svc)
	assert.Error(t, err)

	// the entered values survive for a corrected retry
	assert.Equal(t, "Aisha Rahman", form.Name)
	assert.Equal(t, "Welding Basics", form.Course)
	assert.Equal(t, "2025-03-09 09:00 AM - 05:00 PM", form.Session)

	repo.createErr = nil
	_, err = form.Submit(ctx, svc)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.createCalls)
}
