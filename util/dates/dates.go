package dates

import "time"

// StartOfDay returns midnight of the calendar day t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
