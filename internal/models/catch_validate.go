package models

import (
	"github.com/gookit/validate"
)

// Validate checks a creation payload and returns one message per failing
// field, keyed by the wire field name. An empty map means the payload is
// acceptable.
func (in *CatchInput) Validate() map[string]string {
	data := map[string]any{
		"species":  in.Species,
		"location": in.Location,
	}
	if in.Weight != nil {
		data["weight"] = *in.Weight
	}
	if in.Length != nil {
		data["length"] = *in.Length
	}
	if in.DateCaught != "" {
		data["dateCaught"] = in.DateCaught
	}
	if in.TimeOfDay != "" {
		data["timeOfDay"] = in.TimeOfDay
	}
	if in.Weather != "" {
		data["weather"] = in.Weather
	}

	v := validate.Map(data)
	v.AddValidator("isoDate", func(val any) bool {
		s, ok := val.(string)
		if !ok {
			return false
		}
		_, err := ParseDate(s)
		return err == nil
	})
	v.AddMessages(map[string]string{
		"isoDate": "{field} must be a YYYY-MM-DD calendar date",
	})

	// The required rule treats a numeric 0 as empty, and a zero-weight
	// catch is legal, so weight presence is checked on the pointer instead.
	v.StringRule("species", "required")
	v.StringRule("weight", "min:0")
	v.StringRule("length", "min:0")
	v.StringRule("location", "required")
	v.StringRule("dateCaught", "required|isoDate")
	v.StringRule("timeOfDay", "in:morning,afternoon,evening,night")
	v.StringRule("weather", "in:sunny,cloudy,rainy,overcast,windy")

	errs := make(map[string]string)
	if !v.Validate() {
		for field, ms := range v.Errors {
			errs[field] = ms.One()
		}
	}
	if in.Weight == nil {
		errs["weight"] = "weight is required"
	}
	return errs
}
