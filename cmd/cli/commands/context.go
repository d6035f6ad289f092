package commands

import (
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/contest-tally/internal/config"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Logger *zap.Logger
	Out    io.Writer
}
