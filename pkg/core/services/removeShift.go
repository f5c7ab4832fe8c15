package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/avoelker/radplan/pkg/core/validation"
	"github.com/avoelker/radplan/pkg/db"
)

// RemoveShiftStore defines the database operations needed to remove a shift
type RemoveShiftStore interface {
	SnapshotStore
	DeleteShiftEntry(ctx context.Context, id string) error
}

// RemoveShiftResult reports what was removed
type RemoveShiftResult struct {
	Removed *db.ShiftEntry
	// AutoOffRemoved is the system-generated day off cleaned up alongside
	// the shift, nil if there was none
	AutoOffRemoved *db.ShiftEntry
}

// RemoveShift deletes a shift entry and cleans up the compensatory day off
// it created, if any. Manually entered days off on the following day are
// left alone.
func RemoveShift(
	ctx context.Context,
	database RemoveShiftStore,
	logger *zap.Logger,
	shiftID string,
) (*RemoveShiftResult, error) {
	logger.Debug("Starting removeShift", zap.String("shift_id", shiftID))

	snapshot, err := LoadSnapshot(ctx, database)
	if err != nil {
		return nil, err
	}

	var target *db.ShiftEntry
	for _, s := range snapshot.Shifts {
		if s.ID == shiftID {
			target = &db.ShiftEntry{
				ID: s.ID, Date: s.Date, DoctorID: s.DoctorID,
				Position: s.Position, TimeslotID: s.TimeslotID, Note: s.Note,
			}
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("shift entry %s: %w", shiftID, db.ErrNotFound)
	}

	if err := database.DeleteShiftEntry(ctx, shiftID); err != nil {
		return nil, fmt.Errorf("failed to delete shift entry: %w", err)
	}
	result := &RemoveShiftResult{Removed: target}
	logger.Info("Shift entry removed",
		zap.String("id", target.ID),
		zap.String("position", target.Position))

	validator := validation.NewShiftValidator(snapshot)
	if generated := validator.FindAutoOffToCleanup(target.DoctorID, target.Date, target.Position); generated != nil {
		if err := database.DeleteShiftEntry(ctx, generated.ID); err != nil {
			return nil, fmt.Errorf("failed to delete auto day off: %w", err)
		}
		result.AutoOffRemoved = &db.ShiftEntry{
			ID: generated.ID, Date: generated.Date, DoctorID: generated.DoctorID,
			Position: generated.Position, Note: generated.Note,
		}
		logger.Info("Auto day off removed", zap.String("id", generated.ID))
	}

	return result, nil
}
