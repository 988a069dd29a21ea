package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func validInput(species string) *CatchInput {
	return &CatchInput{
		Species:    species,
		Weight:     floatPtr(4.5),
		Location:   "Lake Erie",
		DateCaught: "2024-07-04",
	}
}

func TestCatchStore_AddAssignsId(t *testing.T) {
	s := NewCatchStore()

	rec, err := s.Add(validInput("bass"))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Id)
	assert.Equal(t, "bass", rec.Species)
	assert.Equal(t, 4.5, rec.Weight)
	assert.Equal(t, "2024-07-04", rec.DateCaught.String())
}

func TestCatchStore_AddUniqueIds(t *testing.T) {
	s := NewCatchStore()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec, err := s.Add(validInput("bass"))
		require.NoError(t, err)
		assert.False(t, seen[rec.Id])
		seen[rec.Id] = true
	}
}

func TestCatchStore_AddRejectsBadDate(t *testing.T) {
	s := NewCatchStore()
	in := validInput("bass")
	in.DateCaught = "2024-02-30"

	_, err := s.Add(in)
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestCatchStore_ListPreservesInsertionOrder(t *testing.T) {
	s := NewCatchStore()
	for _, species := range []string{"bass", "pike", "carp"} {
		_, err := s.Add(validInput(species))
		require.NoError(t, err)
	}

	records := s.List()
	require.Len(t, records, 3)
	assert.Equal(t, "bass", records[0].Species)
	assert.Equal(t, "pike", records[1].Species)
	assert.Equal(t, "carp", records[2].Species)
}

func TestCatchStore_ListReturnsCopy(t *testing.T) {
	s := NewCatchStore()
	_, err := s.Add(validInput("bass"))
	require.NoError(t, err)

	records := s.List()
	records[0].Species = "mutated"

	assert.Equal(t, "bass", s.List()[0].Species)
}

func TestCatchStore_ListNeverNil(t *testing.T) {
	s := NewCatchStore()
	records := s.List()
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCatchStore_OptionalLengthCopied(t *testing.T) {
	s := NewCatchStore()
	in := validInput("bass")
	in.Length = floatPtr(17)

	rec, err := s.Add(in)
	require.NoError(t, err)
	require.NotNil(t, rec.Length)
	assert.Equal(t, 17.0, *rec.Length)

	// The stored record must not alias the caller's pointer.
	*in.Length = 99
	assert.Equal(t, 17.0, *s.List()[0].Length)
}

func TestCatchStore_PutDataReplacesWholesale(t *testing.T) {
	s := NewCatchStore()
	_, err := s.Add(validInput("bass"))
	require.NoError(t, err)

	replacement := []CatchRecord{
		{Id: "x", Species: "trout", Weight: 2, Location: "river", DateCaught: NewDate(2024, 5, 1)},
		{Id: "y", Species: "perch", Weight: 1, Location: "river", DateCaught: NewDate(2024, 5, 2)},
	}
	s.PutData(replacement)

	records := s.List()
	require.Len(t, records, 2)
	assert.Equal(t, "trout", records[0].Species)
	assert.Equal(t, "perch", records[1].Species)
}
