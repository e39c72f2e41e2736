package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/session"
)

type sessionRepository struct {
	db *sqlx.DB
}

var _ session.Repository = (*sessionRepository)(nil) // interface compliance check

// the calendar is always rendered soonest first
var sessionOrdering = core.DBOrdering{Field: "date", Ascending: true}

func NewSessionRepository(db *sql.DB) *sessionRepository {
	return &sessionRepository{db: newDB(db)}
}

type sessionRow struct {
	ID          string    `db:"id"`
	CourseTitle string    `db:"course_title"`
	Date        core.Date `db:"date"`
	Time        string    `db:"time"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r sessionRow) unpack() session.Session {
	return session.Session{
		ID:          r.ID,
		CourseTitle: r.CourseTitle,
		Date:        r.Date,
		Time:        r.Time,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func packSession(ses session.Session) sessionRow {
	return sessionRow{
		ID:          ses.ID,
		CourseTitle: ses.CourseTitle,
		Date:        ses.Date,
		Time:        ses.Time,
		CreatedAt:   ses.CreatedAt.UTC(),
		UpdatedAt:   ses.UpdatedAt.UTC(),
	}
}

func (repo sessionRepository) CreateSession(ctx context.Context, ses session.Session) (session.Session, error) {
	ses.ID = uuid.New().String()
	row := packSession(ses)
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO calendar (id, course_title, date, time, created_at, updated_at)
		VALUES (:id, :course_title, :date, :time, :created_at, :updated_at)`, row)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "inserting session")
	}
	return ses, nil
}

func (repo sessionRepository) QueryAllSessions(ctx context.Context) ([]session.Session, error) {
	var rows []sessionRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT id, course_title, date, time, created_at, updated_at FROM calendar ORDER BY `+sessionOrdering.String())
	if err != nil {
		return nil, errors.Wrap(err, "querying sessions")
	}
	sessions := make([]session.Session, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, r.unpack())
	}
	return sessions, nil
}

func (repo sessionRepository) GetSessionByID(ctx context.Context, id string) (session.Session, error) {
	var row sessionRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT id, course_title, date, time, created_at, updated_at FROM calendar WHERE id = $1`, id)
	if err != nil {
		return session.Session{}, trapNoRowsErr(err, session.ErrNotFound, "getting session by ID")
	}
	return row.unpack(), nil
}

func (repo sessionRepository) UpdateSession(ctx context.Context, ses session.Session) (session.Session, error) {
	row := packSession(ses)
	res, err := repo.db.NamedExecContext(ctx, `
		UPDATE calendar SET course_title = :course_title, date = :date, time = :time, updated_at = :updated_at
		WHERE id = :id`, row)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "updating session")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return session.Session{}, session.ErrNotFound
	}
	return repo.GetSessionByID(ctx, ses.ID)
}

func (repo sessionRepository) DeleteSessionsByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM calendar WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "building session delete")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting sessions")
	}
	return nil
}
