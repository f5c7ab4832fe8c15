package validation

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/avoelker/radplan/pkg/core/model"
)

// Snapshot is the read-only state the validator works on. Callers fetch all
// collections at one point in time and hand them over; the validator never
// mutates them, so one snapshot may back concurrent validations.
type Snapshot struct {
	Doctors         []model.Doctor
	Shifts          []model.ShiftEntry
	Workplaces      []model.Workplace
	Wishes          []model.WishRequest
	SystemSettings  []model.SystemSetting
	StaffingEntries []model.StaffingPlanEntry
	TeamRoles       []model.TeamRole
	Timeslots       []model.Timeslot
}

// Options tunes a single validation run
type Options struct {
	// ExcludeShiftID leaves one existing shift out of all conflict checks,
	// so an update does not collide with the record it replaces.
	ExcludeShiftID string
	// SkipLimits suppresses the monthly service-limit warnings. Used by
	// bulk import paths where limits are expected to be exceeded.
	SkipLimits bool
	// TimeslotID is the timeslot the candidate assignment would use, for
	// positions with timeslots enabled.
	TimeslotID string
}

// Result is the structured verdict for one candidate assignment. The
// pipeline always returns a Result, never an error: every issue is either a
// blocker (assignment must not happen) or a warning (assignment may happen,
// humans are alerted).
type Result struct {
	CanProceed bool
	Blockers   []string
	Warnings   []string
}

// ShiftValidator runs the rule pipeline for candidate (doctor, date,
// position) assignments against one snapshot.
type ShiftValidator struct {
	snapshot Snapshot

	roles            *RoleCatalog
	absenceRules     map[string]bool
	limits           ServiceLimits
	staffingMinimums StaffingMinimums

	workplacesByName map[string]*model.Workplace
	timeslotsByID    map[string]*model.Timeslot
	doctorsByID      map[string]*model.Doctor
}

// NewShiftValidator builds a validator over the snapshot, resolving the
// settings store and team role catalog once up front.
func NewShiftValidator(snapshot Snapshot) *ShiftValidator {
	v := &ShiftValidator{
		snapshot:         snapshot,
		roles:            NewRoleCatalog(snapshot.TeamRoles),
		absenceRules:     ParseAbsenceBlockingRules(snapshot.SystemSettings),
		limits:           ParseServiceLimits(snapshot.SystemSettings),
		staffingMinimums: ParseStaffingMinimums(snapshot.SystemSettings),
		workplacesByName: make(map[string]*model.Workplace, len(snapshot.Workplaces)),
		timeslotsByID:    make(map[string]*model.Timeslot, len(snapshot.Timeslots)),
		doctorsByID:      make(map[string]*model.Doctor, len(snapshot.Doctors)),
	}
	for i := range snapshot.Workplaces {
		v.workplacesByName[snapshot.Workplaces[i].Name] = &snapshot.Workplaces[i]
	}
	for i := range snapshot.Timeslots {
		v.timeslotsByID[snapshot.Timeslots[i].ID] = &snapshot.Timeslots[i]
	}
	for i := range snapshot.Doctors {
		v.doctorsByID[snapshot.Doctors[i].ID] = &snapshot.Doctors[i]
	}
	return v
}

// Validate runs all checks for one candidate assignment. Blockers from any
// check clear CanProceed but later checks still run and may append their own
// findings, so the caller can surface every issue in one pass.
func (v *ShiftValidator) Validate(doctorID, date, position string, opts Options) Result {
	result := Result{CanProceed: true}

	doctor, ok := v.doctorsByID[doctorID]
	if !ok {
		result.CanProceed = false
		result.Blockers = append(result.Blockers, "Person nicht gefunden")
		return result
	}

	v.checkAbsenceConflict(&result, doctorID, date, opts)
	v.checkCategoryConflict(&result, doctorID, date, position, opts)
	v.checkConsecutiveDays(&result, doctorID, date, position, opts)
	if !opts.SkipLimits {
		v.checkServiceLimits(&result, doctor, date, position, opts)
	}
	v.checkStaffingPresence(&result, doctor, date, position, opts)
	v.checkTimeslotOverlap(&result, doctorID, date, position, opts)

	return result
}

// otherShiftsOn lists the doctor's shifts on a date, minus the excluded one
func (v *ShiftValidator) otherShiftsOn(doctorID, date, excludeShiftID string) []model.ShiftEntry {
	var shifts []model.ShiftEntry
	for _, s := range v.snapshot.Shifts {
		if s.DoctorID != doctorID || s.Date != date {
			continue
		}
		if excludeShiftID != "" && s.ID == excludeShiftID {
			continue
		}
		shifts = append(shifts, s)
	}
	return shifts
}

// checkAbsenceConflict applies the configured absence-blocking rules to the
// first other shift the doctor already holds that day. Only the first match
// is reported; rows without a rule entry have no effect.
func (v *ShiftValidator) checkAbsenceConflict(result *Result, doctorID, date string, opts Options) {
	existing := v.otherShiftsOn(doctorID, date, opts.ExcludeShiftID)
	if len(existing) == 0 {
		return
	}

	first := existing[0]
	blocks, ok := v.absenceRules[first.Position]
	if !ok {
		return
	}
	message := fmt.Sprintf("Die Person ist an diesem Tag bereits als \"%s\" eingetragen.", first.Position)
	if blocks {
		result.CanProceed = false
		result.Blockers = append(result.Blockers, message)
	} else {
		result.Warnings = append(result.Warnings, message)
	}
}

// checkCategoryConflict blocks mixing a rotation with an exclusive service
// on the same day. Positions that do not affect availability are exempt in
// both directions.
func (v *ShiftValidator) checkCategoryConflict(result *Result, doctorID, date, position string, opts Options) {
	newWorkplace := v.workplacesByName[position]
	if newWorkplace != nil && !newWorkplace.AvailabilityAffected() {
		return
	}

	newIsRotation := newWorkplace != nil && newWorkplace.Category == model.CategoryRotation
	newIsExclusiveService := newWorkplace != nil &&
		newWorkplace.Category == model.CategoryService &&
		!newWorkplace.AllowsRotationConcurrently
	if !newIsRotation && !newIsExclusiveService {
		return
	}

	for _, existing := range v.otherShiftsOn(doctorID, date, opts.ExcludeShiftID) {
		existingWorkplace := v.workplacesByName[existing.Position]
		if existingWorkplace == nil || !existingWorkplace.AvailabilityAffected() {
			continue
		}

		if newIsRotation &&
			existingWorkplace.Category == model.CategoryService &&
			!existingWorkplace.AllowsRotationConcurrently {
			result.CanProceed = false
			result.Blockers = append(result.Blockers, fmt.Sprintf(
				"Rotation nicht möglich: An diesem Tag ist bereits der Dienst \"%s\" eingetragen.", existing.Position))
			return
		}

		if newIsExclusiveService && existingWorkplace.Category == model.CategoryRotation {
			result.CanProceed = false
			result.Blockers = append(result.Blockers, fmt.Sprintf(
				"Dienst nicht möglich: An diesem Tag ist bereits die Rotation \"%s\" eingetragen.", existing.Position))
			return
		}
	}
}

// checkConsecutiveDays blocks the same service on back-to-back days when the
// workplace disallows it. Workplaces without the flag are permissive.
func (v *ShiftValidator) checkConsecutiveDays(result *Result, doctorID, date, position string, opts Options) {
	workplace := v.workplacesByName[position]
	if workplace == nil || workplace.Category != model.CategoryService || workplace.ConsecutiveDaysAllowed() {
		return
	}

	for _, neighbor := range []string{addDays(date, -1), addDays(date, 1)} {
		for _, existing := range v.otherShiftsOn(doctorID, neighbor, opts.ExcludeShiftID) {
			if existing.Position == position {
				result.CanProceed = false
				result.Blockers = append(result.Blockers, fmt.Sprintf(
					"\"%s\" ist nicht an aufeinanderfolgenden Tagen erlaubt.", position))
				return
			}
		}
	}
}

// checkServiceLimits warns when the candidate pushes the doctor past the
// FTE-scaled monthly limits for foreground, background or weekend services.
func (v *ShiftValidator) checkServiceLimits(result *Result, doctor *model.Doctor, date, position string, opts Options) {
	workplace := v.workplacesByName[position]
	if workplace == nil || workplace.Category != model.CategoryService {
		return
	}

	foreground, background := v.serviceDesignations()
	if foreground == "" {
		return
	}

	year, month, ok := yearMonth(date)
	if !ok {
		return
	}

	var foreCount, backCount, weekendCount int
	for _, s := range v.snapshot.Shifts {
		if s.DoctorID != doctor.ID || !inMonth(s.Date, year, month) {
			continue
		}
		if opts.ExcludeShiftID != "" && s.ID == opts.ExcludeShiftID {
			continue
		}
		switch s.Position {
		case foreground:
			foreCount++
			if isWeekend(s.Date) {
				weekendCount++
			}
		case background:
			backCount++
		}
	}
	switch position {
	case foreground:
		foreCount++
		if isWeekend(date) {
			weekendCount++
		}
	case background:
		backCount++
	}

	fte := v.resolveFTE(doctor, year, month)
	foreLimit := scaledLimit(v.limits.Foreground, fte)
	backLimit := scaledLimit(v.limits.Background, fte)
	weekendLimit := scaledLimit(v.limits.Weekend, fte)

	var exceeded []string
	if foreCount > foreLimit {
		exceeded = append(exceeded, fmt.Sprintf("%d Vordergrunddienste (Limit: %d)", foreCount, foreLimit))
	}
	if background != "" && backCount > backLimit {
		exceeded = append(exceeded, fmt.Sprintf("%d Hintergrunddienste (Limit: %d)", backCount, backLimit))
	}
	if weekendCount > weekendLimit {
		exceeded = append(exceeded, fmt.Sprintf("%d Wochenenddienste (Limit: %d)", weekendCount, weekendLimit))
	}
	if len(exceeded) > 0 {
		result.Warnings = append(result.Warnings, "Dienstlimit überschritten: "+strings.Join(exceeded, ", "))
	}
}

// checkStaffingPresence warns when marking the doctor absent would drop the
// present specialist or assistant headcount below the configured minimum.
// Only absence positions trigger the check.
func (v *ShiftValidator) checkStaffingPresence(result *Result, doctor *model.Doctor, date, position string, opts Options) {
	if !model.IsAbsenceLabel(position) {
		return
	}

	absent := map[string]bool{doctor.ID: true}
	for _, s := range v.snapshot.Shifts {
		if s.Date != date || !model.IsAbsenceLabel(s.Position) {
			continue
		}
		if opts.ExcludeShiftID != "" && s.ID == opts.ExcludeShiftID {
			continue
		}
		absent[s.DoctorID] = true
	}

	var totalSpecialists, totalAssistants, absentSpecialists, absentAssistants int
	for _, d := range v.snapshot.Doctors {
		if d.ExcludeFromStaffingPlan || v.roles.IsExcludedFromStatistics(d.Role) {
			continue
		}
		if d.ContractEndDate != "" && d.ContractEndDate < date {
			continue
		}
		if v.roles.IsSpecialist(d.Role) {
			totalSpecialists++
			if absent[d.ID] {
				absentSpecialists++
			}
		} else {
			totalAssistants++
			if absent[d.ID] {
				absentAssistants++
			}
		}
	}

	if present := totalSpecialists - absentSpecialists; present < v.staffingMinimums.Specialists {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Nur %d Fachärzte anwesend (Min: %d)", present, v.staffingMinimums.Specialists))
	}
	if present := totalAssistants - absentAssistants; present < v.staffingMinimums.Assistants {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Nur %d Assistenzärzte anwesend (Min: %d)", present, v.staffingMinimums.Assistants))
	}
}

// checkTimeslotOverlap blocks assignments whose effective time window
// collides with another shift of the same doctor on the same day. A position
// that requires a timeslot but has none selected yields a warning instead of
// a geometric check.
func (v *ShiftValidator) checkTimeslotOverlap(result *Result, doctorID, date, position string, opts Options) {
	workplace := v.workplacesByName[position]
	timeslotsEnabled := workplace != nil && workplace.TimeslotsEnabled
	if opts.TimeslotID == "" && !timeslotsEnabled {
		return
	}

	tolerance := 0
	if workplace != nil {
		tolerance = workplace.DefaultOverlapToleranceMin
	}

	var candidateSlot *EffectiveSlot
	if opts.TimeslotID != "" {
		if ts, ok := v.timeslotsByID[opts.TimeslotID]; ok {
			slot := slotFromTimeslot(ts)
			candidateSlot = &slot
			if ts.OverlapToleranceMin > tolerance {
				tolerance = ts.OverlapToleranceMin
			}
		}
	}
	if candidateSlot == nil && timeslotsEnabled {
		result.Warnings = append(result.Warnings, "Bitte wählen Sie ein Zeitfenster aus.")
		return
	}
	if candidateSlot == nil {
		slot := fullDaySlot()
		candidateSlot = &slot
	}

	for _, existing := range v.otherShiftsOn(doctorID, date, opts.ExcludeShiftID) {
		existingWorkplace := v.workplacesByName[existing.Position]
		if existingWorkplace == nil || !existingWorkplace.AvailabilityAffected() {
			continue
		}

		existingSlot, ok := v.resolveShiftSlot(existing, existingWorkplace)
		if !ok {
			result.Warnings = append(result.Warnings, "Bitte wählen Sie ein Zeitfenster aus.")
			continue
		}

		if SlotsOverlap(*candidateSlot, existingSlot, tolerance) {
			result.CanProceed = false
			result.Blockers = append(result.Blockers, fmt.Sprintf(
				"Zeitliche Überschneidung mit \"%s\" (%s, %s)",
				existing.Position, existingSlot.Label, existingSlot.TimeRange()))
		}
	}
}

// resolveShiftSlot finds the effective window of an existing shift. The
// second return is false when the position requires a timeslot but the shift
// has none.
func (v *ShiftValidator) resolveShiftSlot(shift model.ShiftEntry, workplace *model.Workplace) (EffectiveSlot, bool) {
	if shift.TimeslotID != "" {
		if ts, ok := v.timeslotsByID[shift.TimeslotID]; ok {
			return slotFromTimeslot(ts), true
		}
	}
	if workplace.TimeslotsEnabled {
		return EffectiveSlot{}, false
	}
	return fullDaySlot(), true
}

// serviceDesignations names the foreground and background services: the two
// services with the lowest order values. With fewer than two services the
// background designation stays empty and background limits are inert.
func (v *ShiftValidator) serviceDesignations() (foreground, background string) {
	var services []model.Workplace
	for _, w := range v.snapshot.Workplaces {
		if w.Category == model.CategoryService {
			services = append(services, w)
		}
	}
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Order < services[j].Order
	})
	if len(services) > 0 {
		foreground = services[0].Name
	}
	if len(services) > 1 {
		background = services[1].Name
	}
	return foreground, background
}

// resolveFTE looks up the doctor's effective FTE for a month: the staffing
// plan entry wins, the contractual FTE is the fallback, full time the last
// resort. Special staffing codes (EZ, KO) and unparseable values count as 0.
func (v *ShiftValidator) resolveFTE(doctor *model.Doctor, year, month int) float64 {
	for _, e := range v.snapshot.StaffingEntries {
		if e.DoctorID == doctor.ID && e.Year == year && e.Month == month {
			return parseFTEValue(e.Value)
		}
	}
	if doctor.FTE > 0 {
		return doctor.FTE
	}
	return 1.0
}

func parseFTEValue(value string) float64 {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	fte, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return fte
}

func scaledLimit(limit int, fte float64) int {
	return int(math.Round(float64(limit) * fte))
}
