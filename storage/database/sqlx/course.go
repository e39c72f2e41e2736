package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/course"
)

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

var courseOrdering = core.DBOrdering{Field: "name", Ascending: true}

func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{db: newDB(db)}
}

type courseRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	Duration  string    `db:"duration"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r courseRow) unpack() course.Course {
	return course.Course{
		ID:        r.ID,
		Name:      r.Name,
		Price:     r.Price,
		Duration:  r.Duration,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func packCourse(crs course.Course) courseRow {
	return courseRow{
		ID:        crs.ID,
		Name:      crs.Name,
		Price:     crs.Price,
		Duration:  crs.Duration,
		CreatedAt: crs.CreatedAt.UTC(),
		UpdatedAt: crs.UpdatedAt.UTC(),
	}
}

func unpackCourses(rows []courseRow) []course.Course {
	courses := make([]course.Course, 0, len(rows))
	for _, r := range rows {
		courses = append(courses, r.unpack())
	}
	return courses
}

func (repo courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	crs.ID = uuid.New().String()
	row := packCourse(crs)
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO course (id, name, price, duration, created_at, updated_at)
		VALUES (:id, :name, :price, :duration, :created_at, :updated_at)`, row)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return crs, nil
}

func (repo courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	var rows []courseRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT id, name, price, duration, created_at, updated_at FROM course ORDER BY `+courseOrdering.String())
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return unpackCourses(rows), nil
}

func (repo courseRepository) GetCourseByID(ctx context.Context, id string) (course.Course, error) {
	var row courseRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT id, name, price, duration, created_at, updated_at FROM course WHERE id = $1`, id)
	if err != nil {
		return course.Course{}, trapNoRowsErr(err, course.ErrNotFound, "getting course by ID")
	}
	return row.unpack(), nil
}

func (repo courseRepository) GetCourseByName(ctx context.Context, name string) (course.Course, error) {
	var row courseRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT id, name, price, duration, created_at, updated_at FROM course WHERE name = $1`, name)
	if err != nil {
		return course.Course{}, trapNoRowsErr(err, course.ErrNotFound, "getting course by name")
	}
	return row.unpack(), nil
}

func (repo courseRepository) UpdateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	row := packCourse(crs)
	res, err := repo.db.NamedExecContext(ctx, `
		UPDATE course SET name = :name, price = :price, duration = :duration, updated_at = :updated_at
		WHERE id = :id`, row)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "updating course")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return course.Course{}, course.ErrNotFound
	}
	return repo.GetCourseByID(ctx, crs.ID)
}

func (repo courseRepository) DeleteCoursesByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM course WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "building course delete")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting courses")
	}
	return nil
}
