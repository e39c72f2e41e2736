package student

import (
	"time"

	"github.com/zulkitech/traindesk/core"
)

type Student struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ICPassport  string    `json:"ic_passport"`
	DOB         core.Date `json:"dob"`
	Gender      string    `json:"gender"`
	Nationality string    `json:"nationality"`
	Mobile      string    `json:"mobile"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`

	// denormalized enrollment: the course name and the session descriptor
	// ("date time") as selected at registration, not foreign keys
	CourseEnrolled string `json:"course_enrolled"`
	SessionDate    string `json:"session_date"`

	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// Registration is a candidate enrollment as captured by the registration form.
type Registration struct {
	Name        string    `json:"name" validate:"required"`
	ICPassport  string    `json:"ic_passport" validate:"required"`
	DOB         core.Date `json:"dob" validate:"required"`
	Gender      string    `json:"gender" validate:"required"`
	Nationality string    `json:"nationality" validate:"required"`
	Mobile      string    `json:"mobile" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Address     string    `json:"address" validate:"required"`
	Course      string    `json:"selected_course" validate:"required"`
	Session     string    `json:"selected_session" validate:"required"`
}

func (r *Registration) Validate() error {
	r.Name = core.CleanString(r.Name)
	r.ICPassport = core.CleanString(r.ICPassport)
	r.Gender = core.CleanString(r.Gender)
	r.Nationality = core.CleanString(r.Nationality)
	r.Mobile = core.CleanString(r.Mobile)
	r.Email = core.CleanString(r.Email, true /* lower */)
	r.Address = core.CleanString(r.Address)
	return core.Validate.Struct(r)
}

// UpdateStudent defines what information may be provided to modify an existing
// Student. Blank fields keep their current values.
type UpdateStudent struct {
	Name           string    `json:"name"`
	ICPassport     string    `json:"ic_passport"`
	DOB            core.Date `json:"dob"`
	Gender         string    `json:"gender"`
	Nationality    string    `json:"nationality"`
	Mobile         string    `json:"mobile"`
	Email          string    `json:"email" validate:"omitempty,email"`
	Address        string    `json:"address"`
	CourseEnrolled string    `json:"course_enrolled"`
	SessionDate    string    `json:"session_date"`
}

func (us *UpdateStudent) Validate(orig Student) error {
	fill := func(dst *string, val, fallback string) {
		if v := core.CleanString(val); v != "" {
			*dst = v
		} else {
			*dst = fallback
		}
	}
	fill(&us.Name, us.Name, orig.Name)
	fill(&us.ICPassport, us.ICPassport, orig.ICPassport)
	fill(&us.Gender, us.Gender, orig.Gender)
	fill(&us.Nationality, us.Nationality, orig.Nationality)
	fill(&us.Mobile, us.Mobile, orig.Mobile)
	fill(&us.Email, core.CleanString(us.Email, true /* lower */), orig.Email)
	fill(&us.Address, us.Address, orig.Address)
	fill(&us.CourseEnrolled, us.CourseEnrolled, orig.CourseEnrolled)
	fill(&us.SessionDate, us.SessionDate, orig.SessionDate)
	if us.DOB.IsZero() {
		us.DOB = orig.DOB
	}
	return core.Validate.Struct(us)
}
