package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// BuildHolidayCalendar compiles the configured public-holiday RRULE strings
// into a date predicate for the auto-off resolver. Occurrences are expanded
// over [from, to] with a one-week buffer on both ends for scans that start
// near the boundary.
func BuildHolidayCalendar(rules []string, from, to time.Time) (func(time.Time) bool, error) {
	searchStart := from.AddDate(0, 0, -7)
	searchEnd := to.AddDate(0, 0, 7)

	holidays := make(map[string]bool)
	for i, raw := range rules {
		rule, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse holiday rule %d: %w", i, err)
		}
		rule.DTStart(searchStart)

		for _, occurrence := range rule.Between(searchStart, searchEnd, true) {
			holidays[occurrence.Format("2006-01-02")] = true
		}
	}

	return func(date time.Time) bool {
		return holidays[date.Format("2006-01-02")]
	}, nil
}
