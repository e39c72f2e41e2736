package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/zulkitech/traindesk/core/course"
)

// seedCourses loads the course catalog from a JSON file. Courses that already
// exist (matched by name) are left untouched.
func (cli *commandLine) seedCourses(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading courses file")
	}

	var newCourses []course.NewCourse
	if err = json.Unmarshal(data, &newCourses); err != nil {
		return errors.Wrap(err, "parsing courses file")
	}

	ctx := context.Background()
	var created int
	for _, nc := range newCourses {
		if err = nc.Validate(); err != nil {
			return errors.Wrapf(err, "invalid course %q", nc.Name)
		}
		if _, err = cli.courseSvc.GetByName(ctx, nc.Name); err == nil {
			continue // already seeded
		} else if errors.Cause(err) != course.ErrNotFound {
			return errors.Wrapf(err, "checking course %q", nc.Name)
		}
		if _, err = cli.courseSvc.Create(ctx, nc); err != nil {
			return errors.Wrapf(err, "creating course %q", nc.Name)
		}
		created++
	}

	logger.Printf("seeded %d of %d courses", created, len(newCourses))
	return nil
}
