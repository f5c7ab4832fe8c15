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

// AssignShiftStore defines the database operations needed to assign a shift
type AssignShiftStore interface {
	SnapshotStore
	InsertShiftEntry(ctx context.Context, entry *db.ShiftEntry) error
}

// AssignShiftResult reports the validation verdict and any created entries
type AssignShiftResult struct {
	Validation validation.Result
	// Created is the new shift entry, nil on dry runs and blocked assignments
	Created *db.ShiftEntry
	// AutoOffCreated is the compensatory day-off entry, if one was due
	AutoOffCreated *db.ShiftEntry
}

// AssignShift validates one (doctor, date, position) assignment and, when it
// passes and dryRun is false, writes the shift entry plus the automatic
// compensatory day off for auto-off positions. A blocked assignment is not
// an error: the verdict carries the blockers for display.
func AssignShift(
	ctx context.Context,
	database AssignShiftStore,
	logger *zap.Logger,
	doctorID, date, position string,
	opts validation.Options,
	isPublicHoliday func(time.Time) bool,
	dryRun bool,
) (*AssignShiftResult, error) {
	logger.Debug("Starting assignShift",
		zap.String("doctor_id", doctorID),
		zap.String("date", date),
		zap.String("position", position),
		zap.Bool("dry_run", dryRun))

	snapshot, err := LoadSnapshot(ctx, database)
	if err != nil {
		return nil, err
	}

	validator := validation.NewShiftValidator(snapshot)
	result := &AssignShiftResult{Validation: validator.Validate(doctorID, date, position, opts)}

	for _, warning := range result.Validation.Warnings {
		logger.Warn("Validation warning", zap.String("message", warning))
	}
	if !result.Validation.CanProceed {
		logger.Info("Assignment blocked",
			zap.String("doctor_id", doctorID),
			zap.String("date", date),
			zap.String("position", position),
			zap.Strings("blockers", result.Validation.Blockers))
		return result, nil
	}
	if dryRun {
		return result, nil
	}

	entry := &db.ShiftEntry{
		ID:         uuid.New().String(),
		Date:       date,
		DoctorID:   doctorID,
		Position:   position,
		TimeslotID: opts.TimeslotID,
	}
	if err := database.InsertShiftEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save shift entry: %w", err)
	}
	result.Created = entry
	logger.Info("Shift entry created", zap.String("id", entry.ID))

	if offDate := validator.ShouldCreateAutoOff(position, date, isPublicHoliday); offDate != "" {
		offEntry := &db.ShiftEntry{
			ID:       uuid.New().String(),
			Date:     offDate,
			DoctorID: doctorID,
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
