package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avoelker/radplan/cmd/cli/commands"
	"github.com/avoelker/radplan/internal/config"
	"github.com/avoelker/radplan/pkg/core/services"
	"github.com/avoelker/radplan/pkg/postgres"
	"github.com/avoelker/radplan/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
	db  *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "radplan",
		Short: "Radplan CLI - Validate and book radiology shift assignments",
		Long:  `A CLI tool for validating radiology shift assignments, approving wish requests and checking whole rosters against the department rules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if db != nil {
				db.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	app = &commands.AppContext{}
	rootCmd.AddCommand(commands.AssignShiftCmd(app))
	rootCmd.AddCommand(commands.MoveShiftCmd(app))
	rootCmd.AddCommand(commands.RemoveShiftCmd(app))
	rootCmd.AddCommand(commands.ApproveWishCmd(app))
	rootCmd.AddCommand(commands.CheckRosterCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database and the holiday calendar
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger(env, app.Cfg.LogDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	db, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = db
	app.Logger.Info("Database initialized successfully")

	// Auto-off scans reach at most one week past the booked date, so a
	// two-year window around today covers every assignment the CLI accepts.
	now := time.Now()
	app.IsPublicHoliday, err = services.BuildHolidayCalendar(
		app.Cfg.HolidayRules, now.AddDate(-1, 0, 0), now.AddDate(1, 0, 0),
	)
	if err != nil {
		return fmt.Errorf("failed to build holiday calendar: %w", err)
	}

	return nil
}
