package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := ParseDate("2024-07-04")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-04", d.String())
}

func TestParseDate_RejectsWrongLayout(t *testing.T) {
	_, err := ParseDate("07/04/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-7-4")
	assert.Error(t, err)

	_, err = ParseDate("2024-07-04T00:00:00Z")
	assert.Error(t, err)
}

func TestParseDate_RejectsImpossibleDays(t *testing.T) {
	_, err := ParseDate("2024-02-30")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestParseDate_LeapDay(t *testing.T) {
	_, err := ParseDate("2024-02-29")
	assert.NoError(t, err)

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
}

func TestDate_MarshalsToLiteralISOString(t *testing.T) {
	d := NewDate(2024, time.July, 4)
	gson, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-04"`, string(gson))
}

func TestDate_UnmarshalRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-07-04"`), &d))

	gson, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-04"`, string(gson))
}

func TestDate_UnmarshalRejectsNonString(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`20240704`), &d))
}

func TestDate_Before(t *testing.T) {
	early := NewDate(2024, time.March, 1)
	late := NewDate(2024, time.October, 15)
	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.False(t, early.Before(early))
}

func TestDate_DisplayFormat(t *testing.T) {
	d := NewDate(2024, time.July, 4)
	assert.Equal(t, "Jul 04, 2024", d.Format("Jan 02, 2006"))
}
