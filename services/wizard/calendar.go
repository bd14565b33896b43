package wizard

import "time"

// MonthGrid describes the calendar layout for one month: LeadingBlanks is
// the day-of-week of the 1st (Sunday = 0) and Days the number of day cells.
type MonthGrid struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leadingBlanks"`
	Days          int        `json:"days"`
}

// GridFor computes the grid for the month containing the given date under
// standard Gregorian rules (leap years included).
func GridFor(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return MonthGrid{
		Year:          first.Year(),
		Month:         first.Month(),
		LeadingBlanks: int(first.Weekday()),
		Days:          last.Day(),
	}
}

// sameDay reports date equality by year, month and day; time of day and
// location offsets within the dates are ignored.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// dateOnly truncates a moment to its calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPastDay reports whether the given calendar day falls strictly before
// today. The comparison is date-only.
func IsPastDay(year int, month time.Month, day int, today time.Time) bool {
	d := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	return d.Before(dateOnly(today))
}
