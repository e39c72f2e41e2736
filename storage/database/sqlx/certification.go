package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/certification"
)

type certificationRepository struct {
	db *sqlx.DB
}

var _ certification.Repository = (*certificationRepository)(nil) // interface compliance check

func NewCertificationRepository(db *sql.DB) *certificationRepository {
	return &certificationRepository{db: newDB(db)}
}

type certificationRow struct {
	ID         string    `db:"id"`
	StudentID  string    `db:"student_id"`
	HolderName string    `db:"holder_name"`
	CertName   string    `db:"cert_name"`
	IssueDate  core.Date `db:"issue_date"`
	ExpiryDate core.Date `db:"expiry_date"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r certificationRow) unpack() certification.Certification {
	return certification.Certification{
		ID:         r.ID,
		StudentID:  r.StudentID,
		HolderName: r.HolderName,
		CertName:   r.CertName,
		IssueDate:  r.IssueDate,
		ExpiryDate: r.ExpiryDate,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func packCertification(cert certification.Certification) certificationRow {
	return certificationRow{
		ID:         cert.ID,
		StudentID:  cert.StudentID,
		CertName:   cert.CertName,
		IssueDate:  cert.IssueDate,
		ExpiryDate: cert.ExpiryDate,
		CreatedAt:  cert.CreatedAt.UTC(),
		UpdatedAt:  cert.UpdatedAt.UTC(),
	}
}

func (repo certificationRepository) CreateCertification(ctx context.Context, cert certification.Certification) (certification.Certification, error) {
	cert.ID = uuid.New().String()
	row := packCertification(cert)
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO certification (id, student_id, cert_name, issue_date, expiry_date, created_at, updated_at)
		VALUES (:id, :student_id, :cert_name, :issue_date, :expiry_date, :created_at, :updated_at)`, row)
	if err != nil {
		return certification.Certification{}, errors.Wrap(err, "inserting certification")
	}
	return repo.GetCertificationByID(ctx, cert.ID)
}

func (repo certificationRepository) QueryAllCertifications(ctx context.Context) ([]certification.Certification, error) {
	var rows []certificationRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT c.id, c.student_id, s.name AS holder_name, c.cert_name, c.issue_date, c.expiry_date,
		       c.created_at, c.updated_at
		FROM certification c
		JOIN student s ON s.id = c.student_id
		ORDER BY c.created_at`)
	if err != nil {
		return nil, errors.Wrap(err, "querying certifications")
	}
	certs := make([]certification.Certification, 0, len(rows))
	for _, r := range rows {
		certs = append(certs, r.unpack())
	}
	return certs, nil
}

func (repo certificationRepository) GetCertificationByID(ctx context.Context, id string) (certification.Certification, error) {
	var row certificationRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT c.id, c.student_id, s.name AS holder_name, c.cert_name, c.issue_date, c.expiry_date,
		       c.created_at, c.updated_at
		FROM certification c
		JOIN student s ON s.id = c.student_id
		WHERE c.id = $1`, id)
	if err != nil {
		return certification.Certification{}, trapNoRowsErr(err, certification.ErrNotFound, "getting certification by ID")
	}
	return row.unpack(), nil
}

func (repo certificationRepository) UpdateCertification(ctx context.Context, cert certification.Certification) (certification.Certification, error) {
	row := packCertification(cert)
	res, err := repo.db.NamedExecContext(ctx, `
		UPDATE certification SET student_id = :student_id, cert_name = :cert_name,
		       issue_date = :issue_date, expiry_date = :expiry_date, updated_at = :updated_at
		WHERE id = :id`, row)
	if err != nil {
		return certification.Certification{}, errors.Wrap(err, "updating certification")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return certification.Certification{}, certification.ErrNotFound
	}
	return repo.GetCertificationByID(ctx, cert.ID)
}

func (repo certificationRepository) DeleteCertificationsByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM certification WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "building certification delete")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting certifications")
	}
	return nil
}
