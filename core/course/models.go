package course

import (
	"time"

	"github.com/zulkitech/traindesk/core"
)

type Course struct {
	ID        string    `json:"id"`
	Name      string    `json:"course_name"`
	Price     float64   `json:"course_price"`
	Duration  string    `json:"course_duration"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name     string  `json:"course_name" validate:"required"`
	Price    float64 `json:"course_price" validate:"gte=0"`
	Duration string  `json:"course_duration" validate:"required"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Duration = core.CleanString(nc.Duration)
	return core.Validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing Course.
// Blank fields keep their current values.
type UpdateCourse struct {
	Name     string   `json:"course_name"`
	Price    *float64 `json:"course_price" validate:"omitempty,gte=0"`
	Duration string   `json:"course_duration"`
}

func (uc *UpdateCourse) Validate(orig Course) error {
	name := core.CleanString(uc.Name)
	if name != "" {
		uc.Name = name
	} else {
		uc.Name = orig.Name
	}

	duration := core.CleanString(uc.Duration)
	if duration != "" {
		uc.Duration = duration
	} else {
		uc.Duration = orig.Duration
	}

	if uc.Price == nil {
		price := orig.Price
		uc.Price = &price
	}

	return core.Validate.Struct(uc)
}
