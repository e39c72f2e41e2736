package echoapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	echoapi "github.com/zulkitech/traindesk/apps/api/echo"
	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/certification"
	"github.com/zulkitech/traindesk/core/course"
	"github.com/zulkitech/traindesk/core/payment"
	"github.com/zulkitech/traindesk/core/session"
	"github.com/zulkitech/traindesk/core/student"
	emailsvc "github.com/zulkitech/traindesk/services/email"
	logsvc "github.com/zulkitech/traindesk/services/logger"
	inmemdb "github.com/zulkitech/traindesk/storage/database/inmem"
)

type testApp struct {
	server echoapi.Server
	db     *inmemdb.DB

	courseRepo  course.Repository
	sessionRepo session.Repository
	studentRepo student.Repository
	certRepo    certification.Repository
}

func testConfig() *core.Config {
	return &core.Config{
		Env:      "TEST",
		TestMode: true,
		AppName:  "TrainDesk",
		Server:   core.ServerConfig{Host: "127.0.0.1", Port: 8000},
	}
}

func setup(t *testing.T) *testApp {
	t.Helper()

	conf := testConfig()
	db := inmemdb.NewDB()

	courseRepo := inmemdb.NewCourseRepository(db)
	sessionRepo := inmemdb.NewSessionRepository(db)
	studentRepo := inmemdb.NewStudentRepository(db)
	certRepo := inmemdb.NewCertificationRepository(db)
	paymentRepo := inmemdb.NewPaymentRepository(db)

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))
	logger.Enable(false)

	server := echoapi.NewServer(&echoapi.Options{
		Address:          conf.Server.Address(),
		DisableReqLogs:   true,
		Conf:             conf,
		Logger:           logger,
		CourseSvc:        course.NewService(courseRepo),
		SessionSvc:       session.NewService(sessionRepo),
		StudentSvc:       student.NewService(studentRepo, courseRepo, sessionRepo, mailSvc),
		CertificationSvc: certification.NewService(certRepo),
		PaymentSvc:       payment.NewService(paymentRepo),
	})

	return &testApp{
		server:      server,
		db:          db,
		courseRepo:  courseRepo,
		sessionRepo: sessionRepo,
		studentRepo: studentRepo,
		certRepo:    certRepo,
	}
}

func (app *testApp) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into), "body: %s", rec.Body.String())
}

func fieldErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", rec.Body.String())
	var fldErrs map[string]string
	decode(t, rec, &fldErrs)
	return fldErrs
}

func (app *testApp) seedCourse(t *testing.T, name string, price float64, duration string) course.Course {
	t.Helper()
	crs, err := app.courseRepo.CreateCourse(context.Background(), course.Course{
		Name: name, Price: price, Duration: duration,
	})
	require.NoError(t, err)
	return crs
}

func (app *testApp) seedSession(t *testing.T, courseTitle string, date core.Date, tm string) session.Session {
	t.Helper()
	ses, err := app.sessionRepo.CreateSession(context.Background(), session.Session{
		CourseTitle: courseTitle, Date: date, Time: tm,
	})
	require.NoError(t, err)
	return ses
}

func (app *testApp) seedStudent(t *testing.T, name, email string) student.Student {
	t.Helper()
	stu, err := app.studentRepo.CreateStudent(context.Background(), student.Student{
		Name:        name,
		ICPassport:  "X0000000",
		DOB:         core.NewDate(1990, time.January, 1),
		Gender:      "Other",
		Nationality: "Malaysian",
		Mobile:      "+60100000000",
		Email:       email,
		Address:     "1 Test Street",
	})
	require.NoError(t, err)
	return stu
}
