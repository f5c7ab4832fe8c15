package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avoelker/radplan/pkg/core/model"
)

const minutesPerDay = 24 * 60

// EffectiveSlot is a time-of-day interval in minutes since midnight.
// EndMinutes may exceed one day to represent a slot crossing midnight.
type EffectiveSlot struct {
	StartMinutes int
	EndMinutes   int
	Label        string
}

// fullDaySlot stands in for positions without timeslot support
func fullDaySlot() EffectiveSlot {
	return EffectiveSlot{StartMinutes: 0, EndMinutes: minutesPerDay, Label: "ganztägig"}
}

// SlotsOverlap reports whether two slots conflict. A gap of up to
// toleranceMinutes between the end of one slot and the start of the other
// does not count as overlap.
func SlotsOverlap(a, b EffectiveSlot, toleranceMinutes int) bool {
	return a.StartMinutes < b.EndMinutes-toleranceMinutes &&
		b.StartMinutes < a.EndMinutes-toleranceMinutes
}

// TimeRange renders the slot for conflict messages, e.g. "08:00–16:30"
func (s EffectiveSlot) TimeRange() string {
	end := s.EndMinutes % minutesPerDay
	if end == 0 && s.EndMinutes > 0 {
		end = minutesPerDay
	}
	return fmt.Sprintf("%s–%s", formatMinutes(s.StartMinutes), formatMinutes(end))
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// slotFromTimeslot converts an HH:MM:SS timeslot row into an effective slot.
// An end at or before the start is read as crossing midnight.
func slotFromTimeslot(ts *model.Timeslot) EffectiveSlot {
	start := parseClock(ts.StartTime)
	end := parseClock(ts.EndTime)
	if end <= start {
		end += minutesPerDay
	}
	label := ts.Label
	if label == "" {
		label = fmt.Sprintf("%s–%s", ts.StartTime, ts.EndTime)
	}
	return EffectiveSlot{StartMinutes: start, EndMinutes: end, Label: label}
}

// parseClock reads "HH:MM" or "HH:MM:SS" into minutes since midnight,
// treating unparseable values as midnight
func parseClock(value string) int {
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}
