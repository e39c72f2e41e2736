package student

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/course"
	"github.com/zulkitech/traindesk/core/session"
)

type fakeCourseRepo struct {
	courses []course.Course
}

func (r *fakeCourseRepo) CreateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	r.courses = append(r.courses, crs)
	return crs, nil
}
func (r *fakeCourseRepo) QueryAllCourses(context.Context) ([]course.Course, error) {
	return r.courses, nil
}
func (r *fakeCourseRepo) GetCourseByID(_ context.Context, id string) (course.Course, error) {
	for _, crs := range r.courses {
		if crs.ID == id {
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}
func (r *fakeCourseRepo) GetCourseByName(_ context.Context, name string) (course.Course, error) {
	for _, crs := range r.courses {
		if crs.Name == name {
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}
func (r *fakeCourseRepo) UpdateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	return crs, nil
}
func (r *fakeCourseRepo) DeleteCoursesByID(context.Context, ...string) error { return nil }

type fakeSessionRepo struct {
	sessions []session.Session
}

func (r *fakeSessionRepo) CreateSession(_ context.Context, ses session.Session) (session.Session, error) {
	r.sessions = append(r.sessions, ses)
	return ses, nil
}
func (r *fakeSessionRepo) QueryAllSessions(context.Context) ([]session.Session, error) {
	return r.sessions, nil
}
func (r *fakeSessionRepo) GetSessionByID(_ context.Context, id string) (session.Session, error) {
	for _, ses := range r.sessions {
		if ses.ID == id {
			return ses, nil
		}
	}
	return session.Session{}, session.ErrNotFound
}
func (r *fakeSessionRepo) UpdateSession(_ context.Context, ses session.Session) (session.Session, error) {
	return ses, nil
}
func (r *fakeSessionRepo) DeleteSessionsByID(context.Context, ...string) error { return nil }

// countingStudentRepo asserts how many inserts a registration attempt issued.
type countingStudentRepo struct {
	students    []Student
	createCalls int
	createErr   error
}

func (r *countingStudentRepo) CreateStudent(_ context.Context, stu Student) (Student, error) {
	r.createCalls++
	if r.createErr != nil {
		return Student{}, r.createErr
	}
	stu.ID = "stu-1"
	r.students = append(r.students, stu)
	return stu, nil
}
func (r *countingStudentRepo) QueryAllStudents(context.Context) ([]Student, error) {
	return r.students, nil
}
func (r *countingStudentRepo) GetStudentByID(_ context.Context, id string) (Student, error) {
	for _, stu := range r.students {
		if stu.ID == id {
			return stu, nil
		}
	}
	return Student{}, ErrNotFound
}
func (r *countingStudentRepo) UpdateStudent(_ context.Context, stu Student) (Student, error) {
	return stu, nil
}
func (r *countingStudentRepo) DeleteStudentsByID(context.Context, ...string) error { return nil }

type mailRecorder struct {
	sent []*core.EmailMessage
}

func (m *mailRecorder) SendMessages(messages ...*core.EmailMessage) {
	m.sent = append(m.sent, messages...)
}

func testCatalog() (*fakeCourseRepo, *fakeSessionRepo) {
	courses := &fakeCourseRepo{courses: []course.Course{
		{ID: "c1", Name: "Welding Basics", Price: 1500, Duration: "2 Days"},
		{ID: "c2", Name: "Forklift Safety", Price: 800, Duration: "1 Day"},
	}}
	sessions := &fakeSessionRepo{sessions: []session.Session{
		{ID: "s1", CourseTitle: "Welding Basics", Date: core.NewDate(2025, time.March, 9), Time: "09:00 AM - 05:00 PM"},
		{ID: "s2", CourseTitle: "Forklift Safety", Date: core.NewDate(2025, time.March, 10), Time: "09:00 AM - 01:00 PM"},
	}}
	return courses, sessions
}

func validRegistration() Registration {
	return Registration{
		Name:        "Aisha Rahman",
		ICPassport:  "A1234567",
		DOB:         core.NewDate(1995, time.July, 14),
		Gender:      "Female",
		Nationality: "Malaysian",
		Mobile:      "+60123456789",
		Email:       "aisha@example.com",
		Address:     "12 Jalan Besar, Kuala Lumpur",
		Course:      "Welding Basics",
		Session:     "2025-03-09 09:00 AM - 05:00 PM",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		courses, sessions := testCatalog()
		repo := &countingStudentRepo{}
		mails := &mailRecorder{}
		svc := NewService(repo, courses, sessions, mails)

		stu, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)

		assert.Equal(t, 1, repo.createCalls)
		assert.Equal(t, "stu-1", stu.ID)
		assert.Equal(t, "Welding Basics", stu.CourseEnrolled)
		assert.Equal(t, "2025-03-09 09:00 AM - 05:00 PM", stu.SessionDate)

		require.Len(t, mails.sent, 1)
		assert.Equal(t, "Registration confirmed", mails.sent[0].Subject)
		assert.Equal(t, "aisha@example.com", mails.sent[0].To[0].Address)
	})

	t.Run("missing field blocks the write", func(t *testing.T) {
		courses, sessions := testCatalog()
		repo := &countingStudentRepo{}
		svc := NewService(repo, courses, sessions, nil)

		reg := validRegistration()
		reg.Mobile = ""
		_, err := svc.Register(ctx, reg)
		assert.Error(t, err)
		assert.Equal(t, 0, repo.createCalls)
	})

	t.Run("invalid email blocks the write", func(t *testing.T) {
		courses, sessions := testCatalog()
		repo := &countingStudentRepo{}
		svc := NewService(repo, courses, sessions, nil)

		reg := validRegistration()
		reg.Email = "not-an-email"
		_, err := svc.Register(ctx, reg)
		assert.Error(t, err)
		assert.Equal(t, 0, repo.createCalls)
	})

	t.Run("unknown course", func(t *testing.T) {
		courses, sessions := testCatalog()
		repo := &countingStudentRepo{}
		svc := NewService(repo, courses, sessions, nil)

		reg := validRegistration()
		reg.Course = "Scuba Diving"
		_, err := svc.Register(ctx, reg)

		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "selected_course", vErr.Fields[0].Field)
		assert.Equal(t, 0, repo.createCalls)
	})

	t.Run("session of another course", func(t *testing.T) {
		courses, sessions := testCatalog()
		repo := &countingStudentRepo{}
		svc := NewService(repo, courses, sessions, nil)

		reg := validRegistration()
		reg.Session = "2025-03-10 09:00 AM - 01:00 PM" // Forklift Safety's slot
		_, err := svc.Register(ctx, reg)

		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "selected_session", vErr.Fields[0].Field)
		assert.Equal(t, 0, repo.createCalls)
	})

	t.Run("rejected write is terminal and surfaced", func(t *testing.T) {
		courses, sessions := testCatalog()
		wantErr := errors.New("connection reset")
		repo := &countingStudentRepo{createErr: wantErr}
		mails := &mailRecorder{}
		svc := NewService(repo, courses, sessions, mails)

		_, err := svc.Register(ctx, validRegistration())
		assert.Equal(t, wantErr, err)
		assert.Equal(t, 1, repo.createCalls) // exactly one attempt, no retry
		assert.Empty(t, mails.sent)          // no confirmation for a failed write
	})
}

func TestService_Update_fillsBlanks(t *testing.T) {
	ctx := context.Background()
	courses, sessions := testCatalog()
	repo := &countingStudentRepo{}
	svc := NewService(repo, courses, sessions, nil)

	created, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	us := UpdateStudent{Mobile: "+60198765432"}
	require.NoError(t, us.Validate(created))
	assert.Equal(t, "+60198765432", us.Mobile)
	assert.Equal(t, created.Name, us.Name)
	assert.Equal(t, created.Email, us.Email)
	assert.Equal(t, created.CourseEnrolled, us.CourseEnrolled)
	assert.True(t, us.DOB.Equal(created.DOB))
}
