package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sql.DB) *studentRepository {
	return &studentRepository{db: newDB(db)}
}

type studentRow struct {
	ID             string      `db:"id"`
	Name           string      `db:"name"`
	ICPassport     string      `db:"ic_passport"`
	DOB            core.Date   `db:"dob"`
	Gender         string      `db:"gender"`
	Nationality    string      `db:"nationality"`
	Mobile         string      `db:"mobile"`
	Email          string      `db:"email"`
	Address        string      `db:"address"`
	CourseEnrolled null.String `db:"course_enrolled"`
	SessionDate    null.String `db:"session_date"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

func (r studentRow) unpack() student.Student {
	return student.Student{
		ID:             r.ID,
		Name:           r.Name,
		ICPassport:     r.ICPassport,
		DOB:            r.DOB,
		Gender:         r.Gender,
		Nationality:    r.Nationality,
		Mobile:         r.Mobile,
		Email:          r.Email,
		Address:        r.Address,
		CourseEnrolled: r.CourseEnrolled.String,
		SessionDate:    r.SessionDate.String,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func packStudent(stu student.Student) studentRow {
	return studentRow{
		ID:             stu.ID,
		Name:           stu.Name,
		ICPassport:     stu.ICPassport,
		DOB:            stu.DOB,
		Gender:         stu.Gender,
		Nationality:    stu.Nationality,
		Mobile:         stu.Mobile,
		Email:          stu.Email,
		Address:        stu.Address,
		CourseEnrolled: null.NewString(stu.CourseEnrolled, stu.CourseEnrolled != ""),
		SessionDate:    null.NewString(stu.SessionDate, stu.SessionDate != ""),
		CreatedAt:      stu.CreatedAt.UTC(),
		UpdatedAt:      stu.UpdatedAt.UTC(),
	}
}

func (repo studentRepository) CreateStudent(ctx context.Context, stu student.Student) (student.Student, error) {
	stu.ID = uuid.New().String()
	row := packStudent(stu)
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO student (id, name, ic_passport, dob, gender, nationality, mobile, email, address,
		                     course_enrolled, session_date, created_at, updated_at)
		VALUES (:id, :name, :ic_passport, :dob, :gender, :nationality, :mobile, :email, :address,
		        :course_enrolled, :session_date, :created_at, :updated_at)`, row)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "inserting student")
	}
	return stu, nil
}

func (repo studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var rows []studentRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT id, name, ic_passport, dob, gender, nationality, mobile, email, address,
		       course_enrolled, session_date, created_at, updated_at
		FROM student ORDER BY created_at`)
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	students := make([]student.Student, 0, len(rows))
	for _, r := range rows {
		students = append(students, r.unpack())
	}
	return students, nil
}

func (repo studentRepository) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	var row studentRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT id, name, ic_passport, dob, gender, nationality, mobile, email, address,
		       course_enrolled, session_date, created_at, updated_at
		FROM student WHERE id = $1`, id)
	if err != nil {
		return student.Student{}, trapNoRowsErr(err, student.ErrNotFound, "getting student by ID")
	}
	return row.unpack(), nil
}

func (repo studentRepository) UpdateStudent(ctx context.Context, stu student.Student) (student.Student, error) {
	row := packStudent(stu)
	res, err := repo.db.NamedExecContext(ctx, `
		UPDATE student SET name = :name, ic_passport = :ic_passport, dob = :dob, gender = :gender,
		       nationality = :nationality, mobile = :mobile, email = :email, address = :address,
		       course_enrolled = :course_enrolled, session_date = :session_date, updated_at = :updated_at
		WHERE id = :id`, row)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "updating student")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return student.Student{}, student.ErrNotFound
	}
	return repo.GetStudentByID(ctx, stu.ID)
}

func (repo studentRepository) DeleteStudentsByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM student WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "building student delete")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting students")
	}
	return nil
}
