package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avoelker/radplan/pkg/core/services"
	"github.com/avoelker/radplan/pkg/core/validation"
)

// AssignShiftCmd creates the assignShift command
func AssignShiftCmd(app *AppContext) *cobra.Command {
	var (
		dryRun     bool
		timeslotID string
		skipLimits bool
	)

	cmd := &cobra.Command{
		Use:   "assignShift <doctor_id> <date> <position>",
		Short: "Validate and book one shift assignment (date as yyyy-MM-dd)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorID, date, position := args[0], args[1], args[2]

			app.Logger.Debug("assignShift command",
				zap.String("doctor_id", doctorID),
				zap.String("date", date),
				zap.String("position", position),
				zap.Bool("dry_run", dryRun))

			opts := validation.Options{
				SkipLimits: skipLimits,
				TimeslotID: timeslotID,
			}
			result, err := services.AssignShift(
				app.Ctx, app.Database, app.Logger,
				doctorID, date, position,
				opts, app.IsPublicHoliday, dryRun,
			)
			if err != nil {
				return err
			}

			printVerdict(result.Validation)
			if !result.Validation.CanProceed {
				return nil
			}
			if dryRun {
				fmt.Println("Dry run, nothing was written.")
				return nil
			}

			fmt.Printf("\n✓ Shift booked: %s on %s as %s (id %s)\n",
				doctorID, date, position, result.Created.ID)
			if result.AutoOffCreated != nil {
				fmt.Printf("✓ Compensatory day off booked on %s (id %s)\n",
					result.AutoOffCreated.Date, result.AutoOffCreated.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate only, do not write")
	cmd.Flags().StringVar(&timeslotID, "timeslot", "", "Timeslot id for positions with timeslots enabled")
	cmd.Flags().BoolVar(&skipLimits, "skip-limits", false, "Suppress monthly service-limit warnings")

	return cmd
}

func printVerdict(result validation.Result) {
	for _, blocker := range result.Blockers {
		fmt.Printf("✗ %s\n", blocker)
	}
	for _, warning := range result.Warnings {
		fmt.Printf("⚠ %s\n", warning)
	}
	if result.CanProceed && len(result.Warnings) == 0 {
		fmt.Println("✓ No objections.")
	}
}
