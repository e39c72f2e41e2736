package echoapi_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulkitech/traindesk/core"
	"github.com/zulkitech/traindesk/core/session"
)

func seedCalendar(t *testing.T, app *testApp) {
	t.Helper()
	// seeded out of date order on purpose
	app.seedSession(t, "Welding Basics", core.NewDate(2025, time.April, 2), "09:00 AM - 05:00 PM")
	app.seedSession(t, "Forklift Safety", core.NewDate(2025, time.March, 10), "09:00 AM - 01:00 PM")
	app.seedSession(t, "Welding Basics", core.NewDate(2025, time.March, 9), "09:00 AM - 05:00 PM")
}

func Test_sessionAPI_create(t *testing.T) {
	app := setup(t)

	rec := app.request(t, http.MethodPost, "/v1/sessions", map[string]interface{}{
		"course_title": "Welding Basics",
		"date":         "2025-03-09",
		"time":         "09:00 AM - 05:00 PM",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var ses session.Session
	decode(t, rec, &ses)
	assert.NotEmpty(t, ses.ID)
	assert.Equal(t, "2025-03-09 09:00 AM - 05:00 PM", ses.Descriptor())

	fldErrs := fieldErrors(t, app.request(t, http.MethodPost, "/v1/sessions", map[string]interface{}{
		"course_title": "Welding Basics",
	}))
	assert.Contains(t, fldErrs, "date")
	assert.Contains(t, fldErrs, "time")
}

func Test_sessionAPI_query_orderedByDate(t *testing.T) {
	app := setup(t)
	seedCalendar(t, app)

	rec := app.request(t, http.MethodGet, "/v1/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sessions []session.Session
	decode(t, rec, &sessions)
	require.Len(t, sessions, 3)
	assert.Equal(t, "2025-03-09", sessions[0].Date.String())
	assert.Equal(t, "2025-03-10", sessions[1].Date.String())
	assert.Equal(t, "2025-04-02", sessions[2].Date.String())
}

func Test_sessionAPI_query_courseFilter(t *testing.T) {
	app := setup(t)
	seedCalendar(t, app)

	rec := app.request(t, http.MethodGet, "/v1/sessions?course="+url.QueryEscape("Welding Basics"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sessions []session.Session
	decode(t, rec, &sessions)
	require.Len(t, sessions, 2)
	for _, ses := range sessions {
		assert.Equal(t, "Welding Basics", ses.CourseTitle)
	}

	// unknown title matches nothing
	rec = app.request(t, http.MethodGet, "/v1/sessions?course=Scaffolding", nil)
	decode(t, rec, &sessions)
	assert.Empty(t, sessions)

	// an explicitly empty selection also matches nothing
	rec = app.request(t, http.MethodGet, "/v1/sessions?course=", nil)
	decode(t, rec, &sessions)
	assert.Empty(t, sessions)
}

func Test_sessionAPI_updateAndDestroy(t *testing.T) {
	app := setup(t)
	ses := app.seedSession(t, "Welding Basics", core.NewDate(2025, time.March, 9), "09:00 AM - 05:00 PM")

	rec := app.request(t, http.MethodPut, "/v1/sessions/"+ses.ID, map[string]interface{}{
		"time": "10:00 AM - 04:00 PM",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	var got session.Session
	decode(t, rec, &got)
	assert.Equal(t, "10:00 AM - 04:00 PM", got.Time)
	assert.Equal(t, "Welding Basics", got.CourseTitle) // untouched
	assert.Equal(t, "2025-03-09", got.Date.String())

	rec = app.request(t, http.MethodDelete, "/v1/sessions/"+ses.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.request(t, http.MethodGet, "/v1/sessions/"+ses.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
