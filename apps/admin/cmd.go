package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/zulkitech/traindesk/core/course"
	"github.com/zulkitech/traindesk/core/student"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db         *sql.DB
	courseSvc  *course.Service
	studentSvc *student.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS...] - run DB migrations (up, down, status, ...)")
	fmt.Println("  seedcourses -file FILE - load the course catalog from a JSON file")
	fmt.Println("  exportstudents -out FILE - export registered students to an xlsx file")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCoursesCmd := flag.NewFlagSet("seedcourses", flag.ExitOnError)
	seedCoursesFile := seedCoursesCmd.String("file", "", "Path to a JSON file holding an array of courses.")

	exportStudentsCmd := flag.NewFlagSet("exportstudents", flag.ExitOnError)
	exportStudentsOut := exportStudentsCmd.String("out", "students.xlsx", "Path of the xlsx file to write.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "seedcourses":
		if err := seedCoursesCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedCoursesFile == "" {
			seedCoursesCmd.Usage()
			return errHelp
		}
		return cli.seedCourses(*seedCoursesFile)
	case "exportstudents":
		if err := exportStudentsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportStudentsOut == "" {
			exportStudentsCmd.Usage()
			return errHelp
		}
		return cli.exportStudents(*exportStudentsOut)
	default:
		cli.printUsage()
		return errHelp
	}
}
