package inmemdb

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/zulkitech/traindesk/core/certification"
)

type certificationRepository struct {
	db *DB
}

var _ certification.Repository = (*certificationRepository)(nil)

func NewCertificationRepository(db *DB) *certificationRepository {
	return &certificationRepository{db: db}
}

func (repo certificationRepository) CreateCertification(_ context.Context, cert certification.Certification) (certification.Certification, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	cert.ID = uuid.New().String()
	if name, ok := repo.db.studentName(cert.StudentID); ok {
		cert.HolderName = name
	}
	repo.db.certifications = append(repo.db.certifications, cert)
	return cert, nil
}

func (repo certificationRepository) QueryAllCertifications(_ context.Context) ([]certification.Certification, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	certs := make([]certification.Certification, 0, len(repo.db.certifications))
	for _, cert := range repo.db.certifications {
		if name, ok := repo.db.studentName(cert.StudentID); ok {
			cert.HolderName = name
		}
		certs = append(certs, cert)
	}
	return certs, nil
}

func (repo certificationRepository) GetCertificationByID(_ context.Context, id string) (certification.Certification, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, cert := range repo.db.certifications {
		if cert.ID == id {
			if name, ok := repo.db.studentName(cert.StudentID); ok {
				cert.HolderName = name
			}
			return cert, nil
		}
	}
	return certification.Certification{}, certification.ErrNotFound
}

func (repo certificationRepository) UpdateCertification(_ context.Context, cert certification.Certification) (certification.Certification, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, existing := range repo.db.certifications {
		if existing.ID == cert.ID {
			if name, ok := repo.db.studentName(cert.StudentID); ok {
				cert.HolderName = name
			}
			repo.db.certifications[i] = cert
			return cert, nil
		}
	}
	return certification.Certification{}, certification.ErrNotFound
}

func (repo certificationRepository) DeleteCertificationsByID(_ context.Context, ids ...string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.certifications = slices.DeleteFunc(repo.db.certifications, func(cert certification.Certification) bool {
		return slices.Contains(ids, cert.ID)
	})
	return nil
}
