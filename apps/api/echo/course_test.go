package echoapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulkitech/traindesk/core/course"
)

func Test_courseAPI_create(t *testing.T) {
	app := setup(t)

	rec := app.request(t, http.MethodPost, "/v1/courses", map[string]interface{}{
		"course_name":     "Welding Basics",
		"course_price":    1500,
		"course_duration": "2 Days",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var crs course.Course
	decode(t, rec, &crs)
	assert.NotEmpty(t, crs.ID)
	assert.Equal(t, "Welding Basics", crs.Name)
	assert.Equal(t, 1500.0, crs.Price)
}

func Test_courseAPI_create_validation(t *testing.T) {
	app := setup(t)

	fldErrs := fieldErrors(t, app.request(t, http.MethodPost, "/v1/courses", map[string]interface{}{
		"course_price": 100,
	}))
	assert.Contains(t, fldErrs, "course_name")
	assert.Contains(t, fldErrs, "course_duration")
}

func Test_courseAPI_queryAndRetrieve(t *testing.T) {
	app := setup(t)
	crs := app.seedCourse(t, "Welding Basics", 1500, "2 Days")
	app.seedCourse(t, "Forklift Safety", 800, "1 Day")

	rec := app.request(t, http.MethodGet, "/v1/courses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var courses []course.Course
	decode(t, rec, &courses)
	assert.Len(t, courses, 2)

	rec = app.request(t, http.MethodGet, "/v1/courses/"+crs.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got course.Course
	decode(t, rec, &got)
	assert.Equal(t, crs.ID, got.ID)

	rec = app.request(t, http.MethodGet, "/v1/courses/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_courseAPI_update_keepsBlankFields(t *testing.T) {
	app := setup(t)
	crs := app.seedCourse(t, "Welding Basics", 1500, "2 Days")

	rec := app.request(t, http.MethodPut, "/v1/courses/"+crs.ID, map[string]interface{}{
		"course_name": "Advanced Welding",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var got course.Course
	decode(t, rec, &got)
	assert.Equal(t, "Advanced Welding", got.Name)
	assert.Equal(t, 1500.0, got.Price) // untouched
	assert.Equal(t, "2 Days", got.Duration)

	rec = app.request(t, http.MethodPut, "/v1/courses/nope", map[string]interface{}{"course_name": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_courseAPI_destroy(t *testing.T) {
	app := setup(t)
	crs1 := app.seedCourse(t, "Welding Basics", 1500, "2 Days")
	crs2 := app.seedCourse(t, "Forklift Safety", 800, "1 Day")
	crs3 := app.seedCourse(t, "Scaffolding", 1200, "3 Days")

	rec := app.request(t, http.MethodDelete, "/v1/courses/"+crs1.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.request(t, http.MethodDelete, "/v1/courses", DestroyBody{IDs: []string{crs2.ID, crs3.ID}})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.request(t, http.MethodGet, "/v1/courses", nil)
	var courses []course.Course
	decode(t, rec, &courses)
	assert.Empty(t, courses)
}

type DestroyBody struct {
	IDs []string `json:"ids"`
}
