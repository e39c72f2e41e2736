package inmemdb

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/zulkitech/traindesk/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) *studentRepository {
	return &studentRepository{db: db}
}

func (repo studentRepository) CreateStudent(_ context.Context, stu student.Student) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	stu.ID = uuid.New().String()
	repo.db.students = append(repo.db.students, stu)
	return stu, nil
}

func (repo studentRepository) QueryAllStudents(_ context.Context) ([]student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	return slices.Clone(repo.db.students), nil
}

func (repo studentRepository) GetStudentByID(_ context.Context, id string) (student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, stu := range repo.db.students {
		if stu.ID == id {
			return stu, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo studentRepository) UpdateStudent(_ context.Context, stu student.Student) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, existing := range repo.db.students {
		if existing.ID == stu.ID {
			repo.db.students[i] = stu
			return stu, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo studentRepository) DeleteStudentsByID(_ context.Context, ids ...string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.students = slices.DeleteFunc(repo.db.students, func(stu student.Student) bool {
		return slices.Contains(ids, stu.ID)
	})
	return nil
}
