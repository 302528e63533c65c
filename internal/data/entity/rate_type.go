package entity

import "time"

type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

func (d DayType) IsValid() bool {
	return d == DayTypeWeekday || d == DayTypeWeekend
}

// DayTypeOf classifies a check-in time; Saturday and Sunday are weekend.
func DayTypeOf(t time.Time) DayType {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	}
	return DayTypeWeekday
}

const DurationUnitHours = "hours"

type RateType struct {
	Base
	Name         string  `db:"name"`
	Duration     int     `db:"duration"`
	DurationUnit string  `db:"duration_unit"`
	DayType      DayType `db:"day_type"`
	Description  string  `db:"description"`
}

// Length is the stay length this rate type prices.
func (t *RateType) Length() time.Duration {
	return time.Duration(t.Duration) * time.Hour
}

// Matches is the exact lookup key used by rate resolution.
func (t *RateType) Matches(dayType DayType, duration int) bool {
	return t.DayType == dayType && t.Duration == duration
}
