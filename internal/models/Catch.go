package models

// TimeOfDay is the rough part of the day a catch was made.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeNight:
		return true
	}
	return false
}

// Weather is the reported condition at the time of the catch.
type Weather string

const (
	WeatherSunny    Weather = "sunny"
	WeatherCloudy   Weather = "cloudy"
	WeatherRainy    Weather = "rainy"
	WeatherOvercast Weather = "overcast"
	WeatherWindy    Weather = "windy"
)

func (w Weather) Valid() bool {
	switch w {
	case WeatherSunny, WeatherCloudy, WeatherRainy, WeatherOvercast, WeatherWindy:
		return true
	}
	return false
}

// CatchRecord is one logged fishing event. Records are immutable once
// created; the id is assigned by the store.
type CatchRecord struct {
	Id         string    `json:"id"`
	Species    string    `json:"species"`
	Weight     float64   `json:"weight"`
	Length     *float64  `json:"length,omitempty"`
	Location   string    `json:"location"`
	DateCaught Date      `json:"dateCaught"`
	TimeOfDay  TimeOfDay `json:"timeOfDay,omitempty"`
	Weather    Weather   `json:"weather,omitempty"`
	Bait       string    `json:"bait,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// CatchInput is the creation payload: a CatchRecord without an id, with
// the date still in its wire form.
type CatchInput struct {
	Species    string   `json:"species"`
	Weight     *float64 `json:"weight"`
	Length     *float64 `json:"length,omitempty"`
	Location   string   `json:"location"`
	DateCaught string   `json:"dateCaught"`
	TimeOfDay  string   `json:"timeOfDay,omitempty"`
	Weather    string   `json:"weather,omitempty"`
	Bait       string   `json:"bait,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}
