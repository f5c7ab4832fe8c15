package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/avoelker/radplan/internal/config"
	"github.com/avoelker/radplan/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg             *config.Config
	Database        db.Database
	Logger          *zap.Logger
	IsPublicHoliday func(time.Time) bool
	Ctx             context.Context
}
