package view

import (
	"sort"
	"strconv"
	"strings"

	"catchlog/internal/models"
)

// PageSize is the fixed number of table rows per page.
const PageSize = 10

var timeOfDayRank = map[models.TimeOfDay]int{
	models.TimeMorning:   0,
	models.TimeAfternoon: 1,
	models.TimeEvening:   2,
	models.TimeNight:     3,
}

// SortRecords returns a stably sorted copy of records. The input order is
// never mutated, so toggling back to fetch order stays possible. Missing
// lengths sort as 0; dates sort by their underlying value, not the display
// string.
func SortRecords(records []models.CatchRecord, s SortState) []models.CatchRecord {
	out := make([]models.CatchRecord, len(records))
	copy(out, records)
	if !s.Active {
		return out
	}

	less := lessFunc(s.Col)
	sort.SliceStable(out, func(i, j int) bool {
		if s.Dir == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(col Column) func(a, b models.CatchRecord) bool {
	switch col {
	case ColWeight:
		return func(a, b models.CatchRecord) bool { return a.Weight < b.Weight }
	case ColLength:
		return func(a, b models.CatchRecord) bool { return lengthOrZero(a) < lengthOrZero(b) }
	case ColDate:
		return func(a, b models.CatchRecord) bool { return a.DateCaught.Before(b.DateCaught) }
	case ColTimeOfDay:
		return func(a, b models.CatchRecord) bool { return timeOfDayRank[a.TimeOfDay] < timeOfDayRank[b.TimeOfDay] }
	case ColLocation:
		return func(a, b models.CatchRecord) bool { return strings.ToLower(a.Location) < strings.ToLower(b.Location) }
	case ColBait:
		return func(a, b models.CatchRecord) bool { return strings.ToLower(a.Bait) < strings.ToLower(b.Bait) }
	default:
		return func(a, b models.CatchRecord) bool { return strings.ToLower(a.Species) < strings.ToLower(b.Species) }
	}
}

func lengthOrZero(rec models.CatchRecord) float64 {
	if rec.Length == nil {
		return 0
	}
	return *rec.Length
}

// PageOf slices out one 1-based page of PageSize records.
func PageOf(records []models.CatchRecord, page int) []models.CatchRecord {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(records) {
		return []models.CatchRecord{}
	}
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

func lastPage(records int) int {
	if records <= 0 {
		return 1
	}
	return (records + PageSize - 1) / PageSize
}

// Placeholder shown for absent optional cells.
const emptyCell = "-"

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func FormatWeight(w float64) string {
	return formatNumber(w) + " lbs"
}

func FormatLength(l *float64) string {
	if l == nil {
		return emptyCell
	}
	return formatNumber(*l) + " in"
}

func FormatDate(d models.Date) string {
	return d.Format("Jan 02, 2006")
}

// FormatSpeciesTag renders the species column's tagged label.
func FormatSpeciesTag(species string) string {
	return "[" + species + "]"
}

func FormatTimeOfDay(t models.TimeOfDay) string {
	if t == "" {
		return emptyCell
	}
	return "[" + string(t) + "]"
}

// BiggestFishCard renders the fourth statistic card. An empty log shows
// "no data yet" rather than a zero-weight fish.
func BiggestFishCard(s models.Summary) string {
	if s.BiggestFish == nil {
		return "no data yet"
	}
	return FormatWeight(s.BiggestFish.Weight) + " " + s.BiggestFish.Species
}
