package session

import (
	"context"
	"errors"
	"slices"
	"time"
)

var ErrNotFound = errors.New("session not found")

type (
	Repository interface {
		CreateSession(ctx context.Context, ses Session) (Session, error)
		// QueryAllSessions returns all sessions ordered by date ascending.
		QueryAllSessions(ctx context.Context) ([]Session, error)
		GetSessionByID(ctx context.Context, id string) (Session, error)
		UpdateSession(ctx context.Context, ses Session) (Session, error)
		DeleteSessionsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewSession) (Session, error) {
	now := time.Now().UTC()
	ses := Session{
		CourseTitle: ns.CourseTitle,
		Date:        ns.Date,
		Time:        ns.Time,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateSession(ctx, ses)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Session, error) {
	return svc.repo.QueryAllSessions(ctx)
}

// QueryByCourse returns the sessions available for the selected course title,
// per the MatchingCourse contract.
func (svc *Service) QueryByCourse(ctx context.Context, courseTitle string) ([]Session, error) {
	all, err := svc.repo.QueryAllSessions(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Collect(MatchingCourse(all, courseTitle)), nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Session, error) {
	return svc.repo.GetSessionByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateSession) (Session, error) {
	ses := Session{
		ID:          id,
		CourseTitle: us.CourseTitle,
		Date:        us.Date,
		Time:        us.Time,
		UpdatedAt:   time.Now().UTC(),
	}
	return svc.repo.UpdateSession(ctx, ses)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteSessionsByID(ctx, ids...)
}
