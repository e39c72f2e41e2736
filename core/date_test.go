package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_ParseAndString(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", d.String())

	_, err = ParseDate("09/03/2025")
	assert.Error(t, err)

	assert.Equal(t, "", Date{}.String())
}

func TestDate_Of(t *testing.T) {
	at := time.Date(2025, time.March, 9, 23, 45, 12, 0, time.UTC)
	assert.True(t, DateOf(at).Equal(NewDate(2025, time.March, 9)))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(payload{Date: NewDate(2025, time.March, 9)})
	require.NoError(t, err)
	assert.Equal(t, `{"date":"2025-03-09"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-12-31"}`), &p))
	assert.True(t, p.Date.Equal(NewDate(2024, time.December, 31)))

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &p))
	assert.True(t, p.Date.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"date":""}`), &p))
	assert.True(t, p.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"not-a-date"}`), &p))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, time.March, 9, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2025-03-09", d.String())

	require.NoError(t, d.Scan("2026-01-02"))
	assert.Equal(t, "2026-01-02", d.String())

	require.NoError(t, d.Scan([]byte("2026-01-03")))
	assert.Equal(t, "2026-01-03", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Ordering(t *testing.T) {
	early := NewDate(2025, time.January, 1)
	late := NewDate(2025, time.June, 1)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Before(early))
}
