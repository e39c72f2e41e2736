package certification

import (
	"time"

	"github.com/zulkitech/traindesk/core"
)

type Status string

const (
	StatusActive  Status = "Active"
	StatusExpired Status = "Expired"
)

type Certification struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	HolderName string    `json:"holder_name"` // joined from the student record at read time
	CertName   string    `json:"cert_name"`
	IssueDate  core.Date `json:"issue_date"`
	ExpiryDate core.Date `json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"` // UTC
	UpdatedAt  time.Time `json:"updated_at"` // UTC
}

// Status derives the display status at the evaluation instant: Expired iff the
// expiry date is strictly before now's calendar date, Active otherwise. It is
// recomputed on every read and never stored, so the same record can flip from
// Active to Expired between two renders without any write occurring.
func (c Certification) Status(now time.Time) Status {
	if c.ExpiryDate.Before(core.DateOf(now)) {
		return StatusExpired
	}
	return StatusActive
}

// NewCertification contains information needed to record a new Certification.
type NewCertification struct {
	StudentID  string    `json:"student_id" validate:"required"`
	CertName   string    `json:"cert_name" validate:"required"`
	IssueDate  core.Date `json:"issue_date" validate:"required"`
	ExpiryDate core.Date `json:"expiry_date" validate:"required"`
}

func (nc *NewCertification) Validate() error {
	nc.StudentID = core.CleanString(nc.StudentID)
	nc.CertName = core.CleanString(nc.CertName)
	return core.Validate.Struct(nc)
}

// UpdateCertification defines what information may be provided to modify an
// existing Certification. Blank fields keep their current values.
type UpdateCertification struct {
	StudentID  string    `json:"student_id"`
	CertName   string    `json:"cert_name"`
	IssueDate  core.Date `json:"issue_date"`
	ExpiryDate core.Date `json:"expiry_date"`
}

func (uc *UpdateCertification) Validate(orig Certification) error {
	sid := core.CleanString(uc.StudentID)
	if sid != "" {
		uc.StudentID = sid
	} else {
		uc.StudentID = orig.StudentID
	}

	name := core.CleanString(uc.CertName)
	if name != "" {
		uc.CertName = name
	} else {
		uc.CertName = orig.CertName
	}

	if uc.IssueDate.IsZero() {
		uc.IssueDate = orig.IssueDate
	}
	if uc.ExpiryDate.IsZero() {
		uc.ExpiryDate = orig.ExpiryDate
	}

	return core.Validate.Struct(uc)
}
