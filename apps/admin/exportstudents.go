package main

import (
	"context"
	"os"

	"github.com/pkg/errors"

	exportsvc "github.com/zulkitech/traindesk/services/export"
)

func (cli *commandLine) exportStudents(path string) error {
	students, err := cli.studentSvc.QueryAll(context.Background())
	if err != nil {
		return errors.Wrap(err, "querying students")
	}

	buf, err := exportsvc.StudentsWorkbook(students)
	if err != nil {
		return errors.Wrap(err, "rendering workbook")
	}

	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "writing xlsx file")
	}

	logger.Printf("exported %d students to %s", len(students), path)
	return nil
}
