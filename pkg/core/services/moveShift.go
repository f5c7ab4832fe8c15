package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avoelker/radplan/pkg/core/model"
	"github.com/avoelker/radplan/pkg/core/validation"
	"github.com/avoelker/radplan/pkg/db"
)

// MoveShiftStore defines the database operations needed to move a shift
type MoveShiftStore interface {
	SnapshotStore
	InsertShiftEntry(ctx context.Context, entry *db.ShiftEntry) error
	DeleteShiftEntry(ctx context.Context, id string) error
	UpdateShiftPositionChecked(ctx context.Context, id, expectedPosition, newPosition string) error
}

// MoveShiftResult reports the validation verdict and the entries touched
type MoveShiftResult struct {
	Validation validation.Result
	// Moved is the shift entry with its new position, nil when blocked
	Moved          *db.ShiftEntry
	AutoOffCreated *db.ShiftEntry
	AutoOffRemoved *db.ShiftEntry
}

// MoveShift changes an existing shift entry to a new position on the same
// day. The shift's own id is excluded from validation so it does not
// conflict with itself, and the position update is checked: if the entry
// changed since it was read, db.ErrConflict comes back and nothing is
// written. Compensatory days off follow the move in both directions.
func MoveShift(
	ctx context.Context,
	database MoveShiftStore,
	logger *zap.Logger,
	shiftID, newPosition string,
	opts validation.Options,
	isPublicHoliday func(time.Time) bool,
) (*MoveShiftResult, error) {
	logger.Debug("Starting moveShift",
		zap.String("shift_id", shiftID),
		zap.String("new_position", newPosition))

	snapshot, err := LoadSnapshot(ctx, database)
	if err != nil {
		return nil, err
	}

	var current *model.ShiftEntry
	for i := range snapshot.Shifts {
		if snapshot.Shifts[i].ID == shiftID {
			current = &snapshot.Shifts[i]
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("shift entry %s: %w", shiftID, db.ErrNotFound)
	}
	if current.Position == newPosition {
		return nil, fmt.Errorf("shift entry %s already holds position %q", shiftID, newPosition)
	}

	opts.ExcludeShiftID = shiftID
	if opts.TimeslotID == "" {
		opts.TimeslotID = current.TimeslotID
	}

	validator := validation.NewShiftValidator(snapshot)
	result := &MoveShiftResult{
		Validation: validator.Validate(current.DoctorID, current.Date, newPosition, opts),
	}

	for _, warning := range result.Validation.Warnings {
		logger.Warn("Validation warning", zap.String("message", warning))
	}
	if !result.Validation.CanProceed {
		logger.Info("Move blocked",
			zap.String("shift_id", shiftID),
			zap.String("new_position", newPosition),
			zap.Strings("blockers", result.Validation.Blockers))
		return result, nil
	}

	if err := database.UpdateShiftPositionChecked(ctx, shiftID, current.Position, newPosition); err != nil {
		return nil, fmt.Errorf("failed to update shift entry: %w", err)
	}
	result.Moved = &db.ShiftEntry{
		ID:         current.ID,
		Date:       current.Date,
		DoctorID:   current.DoctorID,
		Position:   newPosition,
		TimeslotID: current.TimeslotID,
		Note:       current.Note,
	}
	logger.Info("Shift entry moved",
		zap.String("id", shiftID),
		zap.String("from", current.Position),
		zap.String("to", newPosition))

	// The day off generated for the old position no longer has a reason
	if generated := validator.FindAutoOffToCleanup(current.DoctorID, current.Date, current.Position); generated != nil {
		if err := database.DeleteShiftEntry(ctx, generated.ID); err != nil {
			return nil, fmt.Errorf("failed to delete auto day off: %w", err)
		}
		result.AutoOffRemoved = &db.ShiftEntry{
			ID: generated.ID, Date: generated.Date, DoctorID: generated.DoctorID,
			Position: generated.Position, TimeslotID: generated.TimeslotID, Note: generated.Note,
		}
		logger.Info("Auto day off removed", zap.String("id", generated.ID))
	}

	if offDate := validator.ShouldCreateAutoOff(newPosition, current.Date, isPublicHoliday); offDate != "" {
		offEntry := &db.ShiftEntry{
			ID:       uuid.New().String(),
			Date:     offDate,
			DoctorID: current.DoctorID,
			Position: model.AbsenceFrei,
			Note:     validation.AutoOffNote,
		}
		if err := database.InsertShiftEntry(ctx, offEntry); err != nil {
			return nil, fmt.Errorf("failed to save auto day off: %w", err)
		}
		result.AutoOffCreated = offEntry
		logger.Info("Auto day off created",
			zap.String("id", offEntry.ID),
			zap.String("date", offDate))
	}

	return result, nil
}
