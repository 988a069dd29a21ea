package view

import (
	"sort"

	"github.com/gookit/validate"

	"catchlog/internal/models"
)

// FormValues holds the in-flight creation form. Pointer fields are nil
// until the user touches the corresponding input.
type FormValues struct {
	Species    string
	Weight     *float64
	Length     *float64
	Location   string
	DateCaught *models.Date
	TimeOfDay  string
	Weather    string
	Bait       string
	Notes      string
}

// WithWeight mirrors the numeric input widget: values are clamped to a
// minimum of 0.
func (f FormValues) WithWeight(v float64) FormValues {
	if v < 0 {
		v = 0
	}
	f.Weight = &v
	return f
}

// WithLength mirrors the numeric input widget: values are clamped to a
// minimum of 0.
func (f FormValues) WithLength(v float64) FormValues {
	if v < 0 {
		v = 0
	}
	f.Length = &v
	return f
}

// FieldError is one inline validation message attached to a form field.
type FieldError struct {
	Field   string
	Message string
}

// Validate runs the required-field and range checks the form layer applies
// before any collaborator call. The result is sorted by field name so
// rendering is deterministic.
func (f FormValues) Validate() []FieldError {
	data := map[string]any{
		"species":  f.Species,
		"location": f.Location,
	}
	if f.Weight != nil {
		data["weight"] = *f.Weight
	}
	if f.Length != nil {
		data["length"] = *f.Length
	}
	if f.DateCaught != nil {
		data["dateCaught"] = f.DateCaught.String()
	}
	if f.TimeOfDay != "" {
		data["timeOfDay"] = f.TimeOfDay
	}
	if f.Weather != "" {
		data["weather"] = f.Weather
	}

	// The required rule treats a numeric 0 as empty, and a zero-weight
	// catch is legal, so weight presence is checked on the pointer instead.
	v := validate.Map(data)
	v.StringRule("species", "required")
	v.StringRule("weight", "min:0")
	v.StringRule("length", "min:0")
	v.StringRule("location", "required")
	v.StringRule("dateCaught", "required")
	v.StringRule("timeOfDay", "in:morning,afternoon,evening,night")
	v.StringRule("weather", "in:sunny,cloudy,rainy,overcast,windy")

	errs := make([]FieldError, 0, 4)
	if !v.Validate() {
		for field, ms := range v.Errors {
			errs = append(errs, FieldError{Field: field, Message: ms.One()})
		}
	}
	if f.Weight == nil {
		errs = append(errs, FieldError{Field: "weight", Message: "weight is required"})
	}
	if len(errs) == 0 {
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

// Payload builds the creation request. The date serializes to its ISO
// string here, at the submission boundary; empty optional fields are
// omitted entirely.
func (f FormValues) Payload() models.CatchInput {
	in := models.CatchInput{
		Species:   f.Species,
		Location:  f.Location,
		TimeOfDay: f.TimeOfDay,
		Weather:   f.Weather,
		Bait:      f.Bait,
		Notes:     f.Notes,
	}
	if f.Weight != nil {
		w := *f.Weight
		in.Weight = &w
	}
	if f.Length != nil {
		l := *f.Length
		in.Length = &l
	}
	if f.DateCaught != nil {
		in.DateCaught = f.DateCaught.String()
	}
	return in
}
