package services

import (
	"context"
	"fmt"

	"github.com/avoelker/radplan/pkg/core/model"
	"github.com/avoelker/radplan/pkg/core/validation"
	"github.com/avoelker/radplan/pkg/db"
)

// SnapshotStore defines the read operations needed to build a validation
// snapshot
type SnapshotStore interface {
	GetDoctors(ctx context.Context) ([]db.Doctor, error)
	GetWorkplaces(ctx context.Context) ([]db.Workplace, error)
	GetTimeslots(ctx context.Context) ([]db.Timeslot, error)
	GetShiftEntries(ctx context.Context) ([]db.ShiftEntry, error)
	GetWishRequests(ctx context.Context) ([]db.WishRequest, error)
	GetSystemSettings(ctx context.Context) ([]db.SystemSetting, error)
	GetStaffingPlanEntries(ctx context.Context) ([]db.StaffingPlanEntry, error)
	GetTeamRoles(ctx context.Context) ([]db.TeamRole, error)
}

// LoadSnapshot reads all collections the validator works on. The result is
// handed to the validator as-is and never written back.
func LoadSnapshot(ctx context.Context, database SnapshotStore) (validation.Snapshot, error) {
	var snapshot validation.Snapshot

	doctors, err := database.GetDoctors(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	workplaces, err := database.GetWorkplaces(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("failed to fetch workplaces: %w", err)
	}
	timeslots, err := database.GetTimeslots(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("failed to fetch timeslots: %w", err)
	}
	shifts, err := database.GetShiftEntries(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("failed to fetch shift entries: %w", err)
	}
	wishes, err := database.GetWishRequests(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("failed to fetch wish requests: %w", err)
	}
	settings, err := database.GetSystemSettings(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("failed to fetch system settings: %w", err)
	}
	staffing, err := database.GetStaffingPlanEntries(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("failed to fetch staffing plan entries: %w", err)
	}
	teamRoles, err := database.GetTeamRoles(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("failed to fetch team roles: %w", err)
	}

	snapshot.Doctors = make([]model.Doctor, len(doctors))
	for i, d := range doctors {
		snapshot.Doctors[i] = model.Doctor{
			ID:                      d.ID,
			Name:                    d.Name,
			Role:                    d.Role,
			FTE:                     d.FTE,
			ContractEndDate:         d.ContractEndDate,
			ExcludeFromStaffingPlan: d.ExcludeFromStaffingPlan,
		}
	}
	snapshot.Workplaces = make([]model.Workplace, len(workplaces))
	for i, w := range workplaces {
		snapshot.Workplaces[i] = model.Workplace{
			ID:                         w.ID,
			Name:                       w.Name,
			Category:                   model.WorkplaceCategory(w.Category),
			AllowsRotationConcurrently: w.AllowsRotationConcurrently,
			AllowsConsecutiveDays:      w.AllowsConsecutiveDays,
			AutoOff:                    w.AutoOff,
			AffectsAvailability:        w.AffectsAvailability,
			TimeslotsEnabled:           w.TimeslotsEnabled,
			DefaultOverlapToleranceMin: w.DefaultOverlapToleranceMin,
			Order:                      w.DisplayOrder,
		}
	}
	snapshot.Timeslots = make([]model.Timeslot, len(timeslots))
	for i, ts := range timeslots {
		snapshot.Timeslots[i] = model.Timeslot{
			ID:                  ts.ID,
			WorkplaceID:         ts.WorkplaceID,
			StartTime:           ts.StartTime,
			EndTime:             ts.EndTime,
			Label:               ts.Label,
			OverlapToleranceMin: ts.OverlapToleranceMin,
		}
	}
	snapshot.Shifts = make([]model.ShiftEntry, len(shifts))
	for i, s := range shifts {
		snapshot.Shifts[i] = model.ShiftEntry{
			ID:         s.ID,
			Date:       s.Date,
			DoctorID:   s.DoctorID,
			Position:   s.Position,
			TimeslotID: s.TimeslotID,
			Note:       s.Note,
		}
	}
	snapshot.Wishes = make([]model.WishRequest, len(wishes))
	for i, w := range wishes {
		snapshot.Wishes[i] = model.WishRequest{
			ID:       w.ID,
			DoctorID: w.DoctorID,
			Date:     w.Date,
			Type:     model.WishRequestType(w.Type),
			Position: w.Position,
			Status:   model.WishRequestStatus(w.Status),
		}
	}
	snapshot.SystemSettings = make([]model.SystemSetting, len(settings))
	for i, s := range settings {
		snapshot.SystemSettings[i] = model.SystemSetting{Key: s.Key, Value: s.Value}
	}
	snapshot.StaffingEntries = make([]model.StaffingPlanEntry, len(staffing))
	for i, e := range staffing {
		snapshot.StaffingEntries[i] = model.StaffingPlanEntry{
			DoctorID: e.DoctorID,
			Year:     e.Year,
			Month:    e.Month,
			Value:    e.Value,
		}
	}
	snapshot.TeamRoles = make([]model.TeamRole, len(teamRoles))
	for i, r := range teamRoles {
		snapshot.TeamRoles[i] = model.TeamRole{
			Name:                   r.Name,
			IsSpecialist:           r.IsSpecialist,
			CanDoForegroundDuty:    r.CanDoForegroundDuty,
			CanDoBackgroundDuty:    r.CanDoBackgroundDuty,
			ExcludedFromStatistics: r.ExcludedFromStatistics,
			Priority:               r.Priority,
		}
	}

	return snapshot, nil
}
