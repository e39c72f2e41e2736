package session

import (
	"time"

	"github.com/zulkitech/traindesk/core"
)

// Session is a scheduled training session (a Calendar entry). Sessions reference
// their course by title string rather than by id; several sessions may share a
// title, and renaming a course orphans its sessions. Preserved as-is from the
// upstream data model.
type Session struct {
	ID          string    `json:"id"`
	CourseTitle string    `json:"course_title"`
	Date        core.Date `json:"date"`
	Time        string    `json:"time"` // e.g. "09:00 AM - 05:00 PM"
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

// Descriptor is the "date time" string a Student stores as session_date when
// enrolling into this session.
func (s Session) Descriptor() string {
	return s.Date.String() + " " + s.Time
}

// NewSession contains information needed to schedule a new Session.
type NewSession struct {
	CourseTitle string    `json:"course_title" validate:"required"`
	Date        core.Date `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
}

func (ns *NewSession) Validate() error {
	ns.CourseTitle = core.CleanString(ns.CourseTitle)
	ns.Time = core.CleanString(ns.Time)
	return core.Validate.Struct(ns)
}

// UpdateSession defines what information may be provided to modify an existing
// Session. Blank fields keep their current values.
type UpdateSession struct {
	CourseTitle string    `json:"course_title"`
	Date        core.Date `json:"date"`
	Time        string    `json:"time"`
}

func (us *UpdateSession) Validate(orig Session) error {
	title := core.CleanString(us.CourseTitle)
	if title != "" {
		us.CourseTitle = title
	} else {
		us.CourseTitle = orig.CourseTitle
	}

	tm := core.CleanString(us.Time)
	if tm != "" {
		us.Time = tm
	} else {
		us.Time = orig.Time
	}

	if us.Date.IsZero() {
		us.Date = orig.Date
	}

	return core.Validate.Struct(us)
}
