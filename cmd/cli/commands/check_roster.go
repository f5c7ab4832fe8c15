package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avoelker/radplan/pkg/core/services"
)

// CheckRosterCmd creates the checkRoster command
func CheckRosterCmd(app *AppContext) *cobra.Command {
	var skipLimits bool

	cmd := &cobra.Command{
		Use:   "checkRoster <month>",
		Short: "Re-validate every shift of one month (month as yyyy-MM)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := args[0]

			app.Logger.Debug("checkRoster command",
				zap.String("month", month),
				zap.Bool("skip_limits", skipLimits))

			result, err := services.CheckRoster(app.Ctx, app.Database, app.Logger, month, skipLimits)
			if err != nil {
				return err
			}

			fmt.Printf("\nRoster check for %s: %d shifts, %d blockers, %d warnings\n\n",
				result.Month, result.ShiftsTotal, result.BlockerCount, result.WarningCount)

			if len(result.Issues) == 0 {
				fmt.Println("✓ No objections.")
				return nil
			}

			for _, issue := range result.Issues {
				fmt.Printf("%s  %s (%s, id %s)\n", issue.Date, issue.Position, issue.DoctorID, issue.ShiftID)
				for _, blocker := range issue.Blockers {
					fmt.Printf("  ✗ %s\n", blocker)
				}
				for _, warning := range issue.Warnings {
					fmt.Printf("  ⚠ %s\n", warning)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipLimits, "skip-limits", false, "Suppress monthly service-limit warnings")

	return cmd
}
