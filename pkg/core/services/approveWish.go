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

// ApproveWishStore defines the database operations needed to approve a wish
type ApproveWishStore interface {
	SnapshotStore
	InsertShiftEntry(ctx context.Context, entry *db.ShiftEntry) error
	UpdateWishStatusChecked(ctx context.Context, id, expectedStatus, newStatus string) error
}

// ApproveWishResult reports the outcome of a wish approval
type ApproveWishResult struct {
	Validation     validation.Result
	Created        *db.ShiftEntry
	AutoOffCreated *db.ShiftEntry
}

// ApproveWish validates the wished assignment and, when it passes, flips the
// wish from pending to approved and writes the resulting shift entry. The
// status update is checked: if someone else decided the wish in the
// meantime, db.ErrConflict comes back and nothing is written.
func ApproveWish(
	ctx context.Context,
	database ApproveWishStore,
	logger *zap.Logger,
	wishID string,
	isPublicHoliday func(time.Time) bool,
) (*ApproveWishResult, error) {
	logger.Debug("Starting approveWish", zap.String("wish_id", wishID))

	snapshot, err := LoadSnapshot(ctx, database)
	if err != nil {
		return nil, err
	}

	var wish *model.WishRequest
	for i := range snapshot.Wishes {
		if snapshot.Wishes[i].ID == wishID {
			wish = &snapshot.Wishes[i]
			break
		}
	}
	if wish == nil {
		return nil, fmt.Errorf("wish request %s: %w", wishID, db.ErrNotFound)
	}
	if wish.Status != model.WishPending {
		return nil, fmt.Errorf("wish request %s is %s, not pending", wishID, wish.Status)
	}

	// A no-service wish books a day off, a service wish books its position
	position := wish.Position
	if wish.Type == model.WishNoService {
		position = model.AbsenceFrei
	}
	if position == "" {
		return nil, fmt.Errorf("wish request %s names no position", wishID)
	}

	validator := validation.NewShiftValidator(snapshot)
	result := &ApproveWishResult{Validation: validator.Validate(wish.DoctorID, wish.Date, position, validation.Options{})}
	if !result.Validation.CanProceed {
		logger.Info("Wish approval blocked",
			zap.String("wish_id", wishID),
			zap.Strings("blockers", result.Validation.Blockers))
		return result, nil
	}

	if err := database.UpdateWishStatusChecked(ctx, wishID,
		string(model.WishPending), string(model.WishApproved)); err != nil {
		return nil, fmt.Errorf("failed to approve wish: %w", err)
	}

	entry := &db.ShiftEntry{
		ID:       uuid.New().String(),
		Date:     wish.Date,
		DoctorID: wish.DoctorID,
		Position: position,
	}
	if err := database.InsertShiftEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save shift entry: %w", err)
	}
	result.Created = entry
	logger.Info("Wish approved",
		zap.String("wish_id", wishID),
		zap.String("shift_id", entry.ID),
		zap.String("position", position))

	if offDate := validator.ShouldCreateAutoOff(position, wish.Date, isPublicHoliday); offDate != "" {
		offEntry := &db.ShiftEntry{
			ID:       uuid.New().String(),
			Date:     offDate,
			DoctorID: wish.DoctorID,
			Position: model.AbsenceFrei,
			Note:     validation.AutoOffNote,
		}
		if err := database.InsertShiftEntry(ctx, offEntry); err != nil {
			return nil, fmt.Errorf("failed to save auto day off: %w", err)
		}
		result.AutoOffCreated = offEntry
		logger.Info("Auto day off created", zap.String("id", offEntry.ID), zap.String("date", offDate))
	}

	return result, nil
}
