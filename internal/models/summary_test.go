package models

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(species string, weight float64) CatchRecord {
	return CatchRecord{
		Id:         species + "-id",
		Species:    species,
		Weight:     weight,
		Location:   "lake",
		DateCaught: NewDate(2024, time.June, 1),
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalCatches)
	assert.Equal(t, 0.0, s.TotalWeight)
	assert.Equal(t, 0.0, s.AverageWeight)
	assert.Nil(t, s.BiggestFish)

	s = Summarize([]CatchRecord{})
	assert.Equal(t, 0.0, s.AverageWeight)
	assert.Nil(t, s.BiggestFish)
}

func TestSummarize_Totals(t *testing.T) {
	s := Summarize([]CatchRecord{rec("bass", 5), rec("pike", 2), rec("carp", 8)})
	assert.Equal(t, 3, s.TotalCatches)
	assert.Equal(t, 15.0, s.TotalWeight)
	assert.Equal(t, 5.0, s.AverageWeight)
	require.NotNil(t, s.BiggestFish)
	assert.Equal(t, "carp", s.BiggestFish.Species)
}

func TestSummarize_AverageRoundsToTwoDecimals(t *testing.T) {
	s := Summarize([]CatchRecord{rec("a", 1), rec("b", 1), rec("c", 1)})
	assert.Equal(t, 3.0, s.TotalWeight)
	assert.Equal(t, 0.33, Summarize([]CatchRecord{rec("a", 0.5), rec("b", 0.25), rec("c", 0.25)}).AverageWeight)
	assert.Equal(t, 1.0, s.AverageWeight)
}

func TestSummarize_ReorderInvariant(t *testing.T) {
	records := []CatchRecord{rec("a", 1.25), rec("b", 7), rec("c", 0), rec("d", 3.5)}
	want := Summarize(records)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]CatchRecord, len(records))
		copy(shuffled, records)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Summarize(shuffled)
		assert.Equal(t, want.TotalCatches, got.TotalCatches)
		assert.Equal(t, want.TotalWeight, got.TotalWeight)
		assert.Equal(t, want.AverageWeight, got.AverageWeight)
	}
}

func TestSummarize_BiggestIsMaximal(t *testing.T) {
	records := []CatchRecord{rec("a", 2), rec("b", 9), rec("c", 9), rec("d", 4)}
	s := Summarize(records)
	require.NotNil(t, s.BiggestFish)
	for _, r := range records {
		assert.GreaterOrEqual(t, s.BiggestFish.Weight, r.Weight)
	}
}

func TestSummarize_AllZeroWeights(t *testing.T) {
	s := Summarize([]CatchRecord{rec("a", 0), rec("b", 0)})
	assert.Equal(t, 2, s.TotalCatches)
	assert.Equal(t, 0.0, s.TotalWeight)
	assert.Equal(t, 0.0, s.AverageWeight)
	// Two records exist, so there is a biggest fish even at weight 0.
	require.NotNil(t, s.BiggestFish)
}
