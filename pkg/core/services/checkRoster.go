package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/avoelker/radplan/pkg/core/validation"
)

// RosterIssue is one finding from a roster check
type RosterIssue struct {
	ShiftID  string
	Date     string
	DoctorID string
	Position string
	Blockers []string
	Warnings []string
}

// CheckRosterResult summarizes a whole-month validation pass
type CheckRosterResult struct {
	Month        string // yyyy-MM
	ShiftsTotal  int
	Issues       []RosterIssue
	BlockerCount int
	WarningCount int
}

// CheckRoster re-validates every shift entry of one month against the
// current rules, each excluding its own id. Bulk imports run this with
// skipLimits, since exceeding limits is expected there.
func CheckRoster(
	ctx context.Context,
	database SnapshotStore,
	logger *zap.Logger,
	month string, // yyyy-MM
	skipLimits bool,
) (*CheckRosterResult, error) {
	logger.Debug("Starting checkRoster",
		zap.String("month", month),
		zap.Bool("skip_limits", skipLimits))

	if len(month) != 7 || month[4] != '-' {
		return nil, fmt.Errorf("invalid month %q, expected yyyy-MM", month)
	}

	snapshot, err := LoadSnapshot(ctx, database)
	if err != nil {
		return nil, err
	}

	validator := validation.NewShiftValidator(snapshot)
	result := &CheckRosterResult{Month: month}

	for _, shift := range snapshot.Shifts {
		if !strings.HasPrefix(shift.Date, month) {
			continue
		}
		result.ShiftsTotal++

		verdict := validator.Validate(shift.DoctorID, shift.Date, shift.Position, validation.Options{
			ExcludeShiftID: shift.ID,
			SkipLimits:     skipLimits,
			TimeslotID:     shift.TimeslotID,
		})
		if len(verdict.Blockers) == 0 && len(verdict.Warnings) == 0 {
			continue
		}

		result.Issues = append(result.Issues, RosterIssue{
			ShiftID:  shift.ID,
			Date:     shift.Date,
			DoctorID: shift.DoctorID,
			Position: shift.Position,
			Blockers: verdict.Blockers,
			Warnings: verdict.Warnings,
		})
		result.BlockerCount += len(verdict.Blockers)
		result.WarningCount += len(verdict.Warnings)
	}

	sort.Slice(result.Issues, func(i, j int) bool {
		if result.Issues[i].Date != result.Issues[j].Date {
			return result.Issues[i].Date < result.Issues[j].Date
		}
		return result.Issues[i].Position < result.Issues[j].Position
	})

	logger.Info("Roster check finished",
		zap.String("month", month),
		zap.Int("shifts", result.ShiftsTotal),
		zap.Int("blockers", result.BlockerCount),
		zap.Int("warnings", result.WarningCount))

	return result, nil
}
