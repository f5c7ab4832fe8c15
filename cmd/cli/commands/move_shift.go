package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avoelker/radplan/pkg/core/services"
	"github.com/avoelker/radplan/pkg/core/validation"
	"github.com/avoelker/radplan/pkg/db"
)

// MoveShiftCmd creates the moveShift command
func MoveShiftCmd(app *AppContext) *cobra.Command {
	var (
		timeslotID string
		skipLimits bool
	)

	cmd := &cobra.Command{
		Use:   "moveShift <shift_id> <new_position>",
		Short: "Move an existing shift entry to a different position on the same day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, newPosition := args[0], args[1]

			app.Logger.Debug("moveShift command",
				zap.String("shift_id", shiftID),
				zap.String("new_position", newPosition))

			opts := validation.Options{
				SkipLimits: skipLimits,
				TimeslotID: timeslotID,
			}
			result, err := services.MoveShift(
				app.Ctx, app.Database, app.Logger,
				shiftID, newPosition, opts, app.IsPublicHoliday,
			)
			if errors.Is(err, db.ErrConflict) {
				fmt.Println("✗ The shift changed in the meantime, nothing was written.")
				return nil
			}
			if err != nil {
				return err
			}

			printVerdict(result.Validation)
			if !result.Validation.CanProceed {
				return nil
			}

			fmt.Printf("\n✓ Shift moved to %s (%s on %s)\n",
				result.Moved.Position, result.Moved.DoctorID, result.Moved.Date)
			if result.AutoOffRemoved != nil {
				fmt.Printf("✓ Compensatory day off on %s removed\n", result.AutoOffRemoved.Date)
			}
			if result.AutoOffCreated != nil {
				fmt.Printf("✓ Compensatory day off booked on %s\n", result.AutoOffCreated.Date)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timeslotID, "timeslot", "", "Timeslot id for positions with timeslots enabled")
	cmd.Flags().BoolVar(&skipLimits, "skip-limits", false, "Suppress monthly service-limit warnings")

	return cmd
}
