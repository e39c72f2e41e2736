package certification

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("certification not found")

type (
	Repository interface {
		CreateCertification(ctx context.Context, cert Certification) (Certification, error)
		// QueryAllCertifications returns all certifications with the holder's
		// name joined from the student table.
		QueryAllCertifications(ctx context.Context) ([]Certification, error)
		GetCertificationByID(ctx context.Context, id string) (Certification, error)
		UpdateCertification(ctx context.Context, cert Certification) (Certification, error)
		DeleteCertificationsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewCertification) (Certification, error) {
	now := time.Now().UTC()
	cert := Certification{
		StudentID:  nc.StudentID,
		CertName:   nc.CertName,
		IssueDate:  nc.IssueDate,
		ExpiryDate: nc.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return svc.repo.CreateCertification(ctx, cert)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Certification, error) {
	return svc.repo.QueryAllCertifications(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Certification, error) {
	return svc.repo.GetCertificationByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateCertification) (Certification, error) {
	cert := Certification{
		ID:         id,
		StudentID:  uc.StudentID,
		CertName:   uc.CertName,
		IssueDate:  uc.IssueDate,
		ExpiryDate: uc.ExpiryDate,
		UpdatedAt:  time.Now().UTC(),
	}
	return svc.repo.UpdateCertification(ctx, cert)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteCertificationsByID(ctx, ids...)
}
