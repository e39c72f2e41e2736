// Package exportsvc renders entity lists into downloadable spreadsheets.
package exportsvc

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/zulkitech/traindesk/core/student"
)

const studentSheet = "Registered Students"

var studentHeaders = []string{
	"Name", "IC / Passport", "Date of Birth", "Gender", "Nationality",
	"Mobile", "Email", "Address", "Course Enrolled", "Session Date",
}

// StudentsWorkbook renders the given students into an xlsx workbook, one row
// per student in the order given.
func StudentsWorkbook(students []student.Student) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(studentSheet)
	if err != nil {
		return nil, errors.Wrap(err, "creating sheet")
	}
	f.SetActiveSheet(idx)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "dropping default sheet")
	}

	for col, header := range studentHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "locating header cell")
		}
		if err = f.SetCellValue(studentSheet, cell, header); err != nil {
			return nil, errors.Wrap(err, "writing header")
		}
	}

	for i, stu := range students {
		values := []interface{}{
			stu.Name, stu.ICPassport, stu.DOB.String(), stu.Gender, stu.Nationality,
			stu.Mobile, stu.Email, stu.Address, stu.CourseEnrolled, stu.SessionDate,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "locating row cell")
		}
		if err = f.SetSheetRow(studentSheet, cell, &values); err != nil {
			return nil, errors.Wrapf(err, "writing row %d", i+2)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "serializing workbook")
	}
	return buf, nil
}

// StudentsFilename returns the download name for a students export.
func StudentsFilename(appName string) string {
	return fmt.Sprintf("%s-students.xlsx", appName)
}
