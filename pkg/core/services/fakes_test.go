package services

import (
	"context"

	"github.com/avoelker/radplan/pkg/db"
)

// fakeStore is an in-memory Database stand-in for service tests
type fakeStore struct {
	doctors    []db.Doctor
	workplaces []db.Workplace
	timeslots  []db.Timeslot
	shifts     []db.ShiftEntry
	wishes     []db.WishRequest
	settings   []db.SystemSetting
	staffing   []db.StaffingPlanEntry
	teamRoles  []db.TeamRole

	inserted        []db.ShiftEntry
	deleted         []string
	wishUpdates     []string
	positionUpdates []string

	insertErr         error
	wishUpdateErr     error
	positionUpdateErr error
}

func (f *fakeStore) GetDoctors(context.Context) ([]db.Doctor, error)       { return f.doctors, nil }
func (f *fakeStore) GetWorkplaces(context.Context) ([]db.Workplace, error) { return f.workplaces, nil }
func (f *fakeStore) GetTimeslots(context.Context) ([]db.Timeslot, error)   { return f.timeslots, nil }
func (f *fakeStore) GetShiftEntries(context.Context) ([]db.ShiftEntry, error) {
	return f.shifts, nil
}
func (f *fakeStore) GetWishRequests(context.Context) ([]db.WishRequest, error) {
	return f.wishes, nil
}
func (f *fakeStore) GetSystemSettings(context.Context) ([]db.SystemSetting, error) {
	return f.settings, nil
}
func (f *fakeStore) GetStaffingPlanEntries(context.Context) ([]db.StaffingPlanEntry, error) {
	return f.staffing, nil
}
func (f *fakeStore) GetTeamRoles(context.Context) ([]db.TeamRole, error) { return f.teamRoles, nil }

func (f *fakeStore) InsertShiftEntry(_ context.Context, entry *db.ShiftEntry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, *entry)
	return nil
}

func (f *fakeStore) DeleteShiftEntry(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) UpdateShiftPositionChecked(_ context.Context, id, expectedPosition, newPosition string) error {
	if f.positionUpdateErr != nil {
		return f.positionUpdateErr
	}
	f.positionUpdates = append(f.positionUpdates, id+":"+expectedPosition+"->"+newPosition)
	return nil
}

func (f *fakeStore) UpdateWishStatusChecked(_ context.Context, id, expectedStatus, newStatus string) error {
	if f.wishUpdateErr != nil {
		return f.wishUpdateErr
	}
	f.wishUpdates = append(f.wishUpdates, id+":"+expectedStatus+"->"+newStatus)
	return nil
}

// departmentStore builds a small department with an auto-off foreground
// service, a rotation and two doctors
func departmentStore() *fakeStore {
	return &fakeStore{
		doctors: []db.Doctor{
			{ID: "d1", Name: "Dr. Sommer", Role: "Facharzt", FTE: 1.0},
			{ID: "d2", Name: "Dr. Berg", Role: "Assistenzarzt", FTE: 1.0},
		},
		workplaces: []db.Workplace{
			{ID: "w1", Name: "Dienst Vordergrund", Category: "Dienste", AutoOff: true, DisplayOrder: 0},
			{ID: "w2", Name: "Dienst Hintergrund", Category: "Dienste", DisplayOrder: 1},
			{ID: "w3", Name: "CT", Category: "Rotationen"},
		},
		teamRoles: []db.TeamRole{
			{Name: "Facharzt", IsSpecialist: true},
			{Name: "Assistenzarzt"},
		},
	}
}
