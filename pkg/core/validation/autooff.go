package validation

import (
	"strings"
	"time"

	"github.com/avoelker/radplan/pkg/core/model"
)

// autoOffScanDays bounds the forward search for the compensatory day off.
// Seven days always contain a workday unless every one is a holiday.
const autoOffScanDays = 7

// Note fragments marking a "Frei" entry as system-generated. Manually
// entered days off never carry these and must never be cleaned up.
var autoOffNoteMarkers = []string{"Autom.", "Freizeitausgleich"}

// AutoOffNote is written onto compensatory entries created by this system
const AutoOffNote = "Autom. Freizeitausgleich"

// IsAutoOffPosition reports whether assigning the position triggers an
// automatic compensatory day off
func (v *ShiftValidator) IsAutoOffPosition(position string) bool {
	workplace := v.workplacesByName[position]
	return workplace != nil && workplace.AutoOff
}

// ShouldCreateAutoOff returns the date for the automatic compensatory day
// off after a shift on the given date: the first day after it that is
// neither a weekend nor a public holiday. Returns empty when the position
// does not trigger auto-off, or when no eligible day exists within the scan
// window (no day off is created then; not an error).
func (v *ShiftValidator) ShouldCreateAutoOff(position, date string, isPublicHoliday func(time.Time) bool) string {
	if !v.IsAutoOffPosition(position) {
		return ""
	}

	start, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	for i := 1; i <= autoOffScanDays; i++ {
		day := start.AddDate(0, 0, i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		if isPublicHoliday != nil && isPublicHoliday(day) {
			continue
		}
		return day.Format(dateLayout)
	}
	return ""
}

// FindAutoOffToCleanup locates the system-generated "Frei" entry on the day
// after an auto-off shift, for removal when the shift itself is removed.
// Returns nil when the position does not trigger auto-off or no generated
// entry exists on that day.
func (v *ShiftValidator) FindAutoOffToCleanup(doctorID, date, position string) *model.ShiftEntry {
	if !v.IsAutoOffPosition(position) {
		return nil
	}

	nextDay := addDays(date, 1)
	for i := range v.snapshot.Shifts {
		s := &v.snapshot.Shifts[i]
		if s.Date != nextDay || s.DoctorID != doctorID || s.Position != model.AbsenceFrei {
			continue
		}
		for _, marker := range autoOffNoteMarkers {
			if strings.Contains(s.Note, marker) {
				return s
			}
		}
	}
	return nil
}
