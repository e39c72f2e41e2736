package student

import (
	"context"
	"iter"

	"github.com/zulkitech/traindesk/core/course"
	"github.com/zulkitech/traindesk/core/session"
)

// RegistrationForm is the screen-side state of the enrollment form: the course
// catalogue and session calendar fetched on mount, plus the candidate
// Registration being typed in.
type RegistrationForm struct {
	Registration

	courses  []course.Course
	sessions []session.Session
}

func NewRegistrationForm(courses []course.Course, sessions []session.Session) *RegistrationForm {
	return &RegistrationForm{courses: courses, sessions: sessions}
}

func (f *RegistrationForm) Courses() []course.Course { return f.courses }

// SelectCourse records the course choice. It always clears the session
// selection: a session picked under another course is no longer valid.
func (f *RegistrationForm) SelectCourse(title string) {
	f.Course = title
	f.Session = ""
}

// SelectSession records the session choice by its "date time" descriptor.
func (f *RegistrationForm) SelectSession(descriptor string) {
	f.Session = descriptor
}

// AvailableSessions lists the sessions offered for the selected course; empty
// until a course is chosen.
func (f *RegistrationForm) AvailableSessions() iter.Seq[session.Session] {
	return session.MatchingCourse(f.sessions, f.Course)
}

// Submit registers the candidate. On failure the form keeps its entered
// values so the user may correct and retry without re-entering data.
func (f *RegistrationForm) Submit(ctx context.Context, svc *Service) (Student, error) {
	return svc.Register(ctx, f.Registration)
}
