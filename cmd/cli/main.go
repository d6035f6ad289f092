package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/contest-tally/cmd/cli/commands"
	"github.com/jakechorley/contest-tally/internal/config"
	"github.com/jakechorley/contest-tally/pkg/utils/logging"
)

var (
	env        string
	configPath string
	logDir     string
	app        = &commands.AppContext{Out: os.Stdout}
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tally-cli",
		Short:         "Contest tally CLI - score ranked country ballots",
		Long:          `A CLI tool that scores ranked ballots with the 12-10-8-7-...-1 point scale and prints the ranked countries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment, used for the config and log file names")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a contest config file (overrides the search)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", logging.DefaultLogDir, "Directory for log files")

	rootCmd.AddCommand(commands.TallyCmd(app))
	rootCmd.AddCommand(commands.CountriesCmd(app))
	rootCmd.AddCommand(commands.ScaleCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initApp sets up logger and config
func initApp() error {
	var err error

	app.Logger, err = logging.InitLogger(env, logDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.LoadWithEnv(env)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully",
		zap.String("source", app.Cfg.Source),
		zap.Int("countries", len(app.Cfg.Countries)))

	return nil
}
