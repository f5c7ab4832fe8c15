package db

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned by checked updates when the record no longer
// carries the expected previous value. The caller reloads its snapshot,
// re-validates and retries.
var ErrConflict = errors.New("record changed since it was read")

// Database defines all database operations used by the services layer.
// The postgres package implements it.
type Database interface {
	GetDoctors(ctx context.Context) ([]Doctor, error)
	GetWorkplaces(ctx context.Context) ([]Workplace, error)
	GetTimeslots(ctx context.Context) ([]Timeslot, error)
	GetShiftEntries(ctx context.Context) ([]ShiftEntry, error)
	GetWishRequests(ctx context.Context) ([]WishRequest, error)
	GetSystemSettings(ctx context.Context) ([]SystemSetting, error)
	GetStaffingPlanEntries(ctx context.Context) ([]StaffingPlanEntry, error)
	GetTeamRoles(ctx context.Context) ([]TeamRole, error)

	InsertShiftEntry(ctx context.Context, entry *ShiftEntry) error
	DeleteShiftEntry(ctx context.Context, id string) error
	// UpdateShiftPositionChecked moves a shift to a new position only if it
	// still holds the expected one; otherwise ErrConflict.
	UpdateShiftPositionChecked(ctx context.Context, id, expectedPosition, newPosition string) error
	// UpdateWishStatusChecked advances a wish only from the expected status;
	// otherwise ErrConflict.
	UpdateWishStatusChecked(ctx context.Context, id, expectedStatus, newStatus string) error
}
