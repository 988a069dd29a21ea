package models

import "math"

// Summary holds the derived statistics over a record list. Computed fresh
// from the records on every request, never persisted.
type Summary struct {
	TotalCatches  int          `json:"totalCatches"`
	TotalWeight   float64      `json:"totalWeight"`
	AverageWeight float64      `json:"averageWeight"`
	BiggestFish   *CatchRecord `json:"biggestFish,omitempty"`
}

// Summarize computes the four aggregate statistics. AverageWeight is
// rounded to two decimals and is 0 for an empty list; BiggestFish is nil
// for an empty list. Reordering the input does not change the result.
func Summarize(records []CatchRecord) Summary {
	s := Summary{TotalCatches: len(records)}
	if len(records) == 0 {
		return s
	}

	biggest := 0
	for i, rec := range records {
		s.TotalWeight += rec.Weight
		if rec.Weight > records[biggest].Weight {
			biggest = i
		}
	}
	s.AverageWeight = round2(s.TotalWeight / float64(s.TotalCatches))

	rec := records[biggest]
	s.BiggestFish = &rec
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
