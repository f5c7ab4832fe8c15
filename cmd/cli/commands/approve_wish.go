package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avoelker/radplan/pkg/core/services"
	"github.com/avoelker/radplan/pkg/db"
)

// ApproveWishCmd creates the approveWish command
func ApproveWishCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approveWish <wish_id>",
		Short: "Approve a pending wish request and book the resulting shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wishID := args[0]

			app.Logger.Debug("approveWish command", zap.String("wish_id", wishID))

			result, err := services.ApproveWish(
				app.Ctx, app.Database, app.Logger, wishID, app.IsPublicHoliday,
			)
			if errors.Is(err, db.ErrConflict) {
				fmt.Println("✗ The wish was decided by someone else in the meantime, nothing was written.")
				return nil
			}
			if err != nil {
				return err
			}

			printVerdict(result.Validation)
			if !result.Validation.CanProceed {
				return nil
			}

			fmt.Printf("\n✓ Wish approved, shift booked: %s on %s as %s\n",
				result.Created.DoctorID, result.Created.Date, result.Created.Position)
			if result.AutoOffCreated != nil {
				fmt.Printf("✓ Compensatory day off booked on %s\n", result.AutoOffCreated.Date)
			}
			return nil
		},
	}
}
