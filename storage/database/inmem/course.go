package inmemdb

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/zulkitech/traindesk/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo courseRepository) CreateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs.ID = uuid.New().String()
	repo.db.courses = append(repo.db.courses, crs)
	return crs, nil
}

func (repo courseRepository) QueryAllCourses(_ context.Context) ([]course.Course, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	return slices.Clone(repo.db.courses), nil
}

func (repo courseRepository) GetCourseByID(_ context.Context, id string) (course.Course, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, crs := range repo.db.courses {
		if crs.ID == id {
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo courseRepository) GetCourseByName(_ context.Context, name string) (course.Course, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, crs := range repo.db.courses {
		if crs.Name == name {
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo courseRepository) UpdateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, existing := range repo.db.courses {
		if existing.ID == crs.ID {
			repo.db.courses[i] = crs
			return crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo courseRepository) DeleteCoursesByID(_ context.Context, ids ...string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.courses = slices.DeleteFunc(repo.db.courses, func(crs course.Course) bool {
		return slices.Contains(ids, crs.ID)
	})
	return nil
}
