package world

import (
	"fmt"
)

const (
	DaysPerMonth   = 30
	MonthsPerYear  = 12
	MinutesPerHour = 60
	HoursPerDay    = 24
	MinutesPerDay  = MinutesPerHour * HoursPerDay
)

// GameTime is the in-world calendar. Months are all 30 days long.
type GameTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewGameTime starts a campaign on the first morning of year
func NewGameTime(year int) GameTime {
	return GameTime{Year: year, Month: 1, Day: 1, Hour: 8}
}

// Advance moves the clock forward, carrying into hours, days, months and years
func (t *GameTime) Advance(minutes int) {
	if minutes <= 0 {
		return
	}
	total := t.Minute + minutes
	t.Minute = total % MinutesPerHour

	hours := t.Hour + total/MinutesPerHour
	t.Hour = hours % HoursPerDay

	days := t.Day - 1 + hours/HoursPerDay
	t.Day = days%DaysPerMonth + 1

	months := t.Month - 1 + days/DaysPerMonth
	t.Month = months%MonthsPerYear + 1
	t.Year += months / MonthsPerYear
}

// TotalMinutes counts minutes since the start of year zero
func (t GameTime) TotalMinutes() int {
	days := (t.Year*MonthsPerYear+(t.Month-1))*DaysPerMonth + (t.Day - 1)
	return days*MinutesPerDay + t.Hour*MinutesPerHour + t.Minute
}

func (t GameTime) IsDaytime() bool {
	return t.Hour >= 6 && t.Hour < 20
}

func (t GameTime) TimeOfDay() string {
	switch {
	case t.Hour < 5:
		return "night"
	case t.Hour < 7:
		return "dawn"
	case t.Hour < 12:
		return "morning"
	case t.Hour < 17:
		return "afternoon"
	case t.Hour < 20:
		return "evening"
	default:
		return "night"
	}
}

func (t GameTime) String() string {
	return fmt.Sprintf("%d/%d/%d %02d:%02d", t.Month, t.Day, t.Year, t.Hour, t.Minute)
}
