package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avoelker/radplan/pkg/core/services"
)

// RemoveShiftCmd creates the removeShift command
func RemoveShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeShift <shift_id>",
		Short: "Delete a shift entry and its generated compensatory day off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID := args[0]

			app.Logger.Debug("removeShift command", zap.String("shift_id", shiftID))

			result, err := services.RemoveShift(app.Ctx, app.Database, app.Logger, shiftID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift removed: %s on %s as %s\n",
				result.Removed.DoctorID, result.Removed.Date, result.Removed.Position)
			if result.AutoOffRemoved != nil {
				fmt.Printf("✓ Compensatory day off on %s removed as well\n",
					result.AutoOffRemoved.Date)
			}
			return nil
		},
	}
}
