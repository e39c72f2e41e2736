package main

import (
	"log"
	"os"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/course"
	"github.com/zulkitech/traindesk/core/student"
	"github.com/zulkitech/traindesk/storage/database"
	"github.com/zulkitech/traindesk/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	// set up DB
	errAndDie(database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(db.Ping())

	courseRepo := sqlxrepos.NewCourseRepository(db)
	sessionRepo := sqlxrepos.NewSessionRepository(db)
	studentRepo := sqlxrepos.NewStudentRepository(db)

	// start CLI
	cli := commandLine{
		db:         db,
		courseSvc:  course.NewService(courseRepo),
		studentSvc: student.NewService(studentRepo, courseRepo, sessionRepo, nil),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
