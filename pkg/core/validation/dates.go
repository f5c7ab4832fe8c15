package validation

import "time"

const dateLayout = "2006-01-02"

// addDays shifts an ISO date by whole days. Unparseable input is returned
// unchanged so a bad date can never silently match a real one.
func addDays(date string, days int) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(dateLayout)
}

func isWeekend(date string) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

func yearMonth(date string) (year, month int, ok bool) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

func inMonth(date string, year, month int) bool {
	y, m, ok := yearMonth(date)
	return ok && y == year && m == month
}
