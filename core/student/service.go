package student

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/course"
	"github.com/zulkitech/traindesk/core/session"
)

var (
	ErrNotFound = errors.New("student not found")

	errUnknownCourse     = errors.New("selected course does not exist")
	errNoMatchingSession = errors.New("selected session is not offered for this course")
)

type (
	Repository interface {
		CreateStudent(ctx context.Context, stu Student) (Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
		UpdateStudent(ctx context.Context, stu Student) (Student, error)
		DeleteStudentsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo     Repository
		courses  course.Repository
		sessions session.Repository
		mailSvc  core.EmailService
	}
)

func NewService(repo Repository, courses course.Repository, sessions session.Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, courses: courses, sessions: sessions, mailSvc: mailSvc}
}

// Register validates a candidate enrollment and issues exactly one insert.
// At-most-once: a rejected write is terminal for this attempt and the caller's
// form state is left intact for a retry. The enrolled course must exist and
// the selected session must be offered for it at submission time.
func (svc *Service) Register(ctx context.Context, reg Registration) (Student, error) {
	if err := reg.Validate(); err != nil {
		return Student{}, err
	}

	if _, err := svc.courses.GetCourseByName(ctx, reg.Course); err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return Student{}, core.NewValidationError(errUnknownCourse,
				core.FieldError{Field: "selected_course", Error: errUnknownCourse.Error()})
		}
		return Student{}, errors.Wrap(err, "checking enrolled course")
	}

	all, err := svc.sessions.QueryAllSessions(ctx)
	if err != nil {
		return Student{}, errors.Wrap(err, "querying sessions")
	}
	var offered bool
	for ses := range session.MatchingCourse(all, reg.Course) {
		if ses.Descriptor() == reg.Session {
			offered = true
			break
		}
	}
	if !offered {
		return Student{}, core.NewValidationError(errNoMatchingSession,
			core.FieldError{Field: "selected_session", Error: errNoMatchingSession.Error()})
	}

	now := time.Now().UTC()
	stu := Student{
		Name:           reg.Name,
		ICPassport:     reg.ICPassport,
		DOB:            reg.DOB,
		Gender:         reg.Gender,
		Nationality:    reg.Nationality,
		Mobile:         reg.Mobile,
		Email:          reg.Email,
		Address:        reg.Address,
		CourseEnrolled: reg.Course,
		SessionDate:    reg.Session,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := svc.repo.CreateStudent(ctx, stu)
	if err != nil {
		return Student{}, err
	}

	svc.sendConfirmation(created)
	return created, nil
}

// sendConfirmation is best-effort; a lost email never fails a registration.
func (svc *Service) sendConfirmation(stu Student) {
	if svc.mailSvc == nil || stu.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYour registration for %s has been received.\nSession: %s\n\nSee you there!",
		stu.Name, stu.CourseEnrolled, stu.SessionDate,
	)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:          []mail.Address{{Name: stu.Name, Address: stu.Email}},
		Subject:     "Registration confirmed",
		TextContent: body,
	})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateStudent) (Student, error) {
	stu := Student{
		ID:             id,
		Name:           us.Name,
		ICPassport:     us.ICPassport,
		DOB:            us.DOB,
		Gender:         us.Gender,
		Nationality:    us.Nationality,
		Mobile:         us.Mobile,
		Email:          us.Email,
		Address:        us.Address,
		CourseEnrolled: us.CourseEnrolled,
		SessionDate:    us.SessionDate,
		UpdatedAt:      time.Now().UTC(),
	}
	return svc.repo.UpdateStudent(ctx, stu)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteStudentsByID(ctx, ids...)
}
