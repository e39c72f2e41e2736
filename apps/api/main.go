package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/zulkitech/traindesk/apps/api/echo"
	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/certification"
	"github.com/zulkitech/traindesk/core/course"
	"github.com/zulkitech/traindesk/core/payment"
	"github.com/zulkitech/traindesk/core/session"
	"github.com/zulkitech/traindesk/core/student"
	"github.com/zulkitech/traindesk/services/email"
	"github.com/zulkitech/traindesk/services/logger"
	"github.com/zulkitech/traindesk/storage/database"
	"github.com/zulkitech/traindesk/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatalf("loading config: %+v", err)
	}

	var appLogger core.Logger
	if conf.RollbarToken != "" {
		appLogger = logsvc.NewRollbarLogger(std, conf)
	} else {
		appLogger = logsvc.NewConsoleLogger(std)
	}
	appLogger.Enable(!(conf.Debug || conf.TestMode))

	if err := run(conf, std, appLogger); err != nil {
		std.Fatalf("%+v", err)
	}
}

func run(conf *core.Config, std *log.Logger, appLogger core.Logger) error {
	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		return err
	}
	db, err := database.Open(conf)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	if err = database.Migrate(db); err != nil {
		return err
	}

	// set up repos
	courseRepo := sqlxrepos.NewCourseRepository(db)
	sessionRepo := sqlxrepos.NewSessionRepository(db)
	studentRepo := sqlxrepos.NewStudentRepository(db)
	certRepo := sqlxrepos.NewCertificationRepository(db)
	paymentRepo := sqlxrepos.NewPaymentRepository(db)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, appLogger)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Address:          conf.Server.Address(),
		Conf:             conf,
		Logger:           appLogger,
		CourseSvc:        course.NewService(courseRepo),
		SessionSvc:       session.NewService(sessionRepo),
		StudentSvc:       student.NewService(studentRepo, courseRepo, sessionRepo, mailSvc),
		CertificationSvc: certification.NewService(certRepo),
		PaymentSvc:       payment.NewService(paymentRepo),
		SignalShutdown:   func() { shutdown <- syscall.SIGTERM },
	})

	serverErrors := make(chan error, 1)
	go func() {
		std.Printf("API server listening on %s", conf.Server.Address())
		serverErrors <- app.Start()
	}()

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		std.Printf("shutting down: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := app.Stop(ctx); err != nil {
			std.Printf("graceful shutdown failed: %v", err)
			return err
		}
	}
	return nil
}
