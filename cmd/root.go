package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/config"
	"github.com/saptools/sapgui-cli/internal/logging"
	"github.com/saptools/sapgui-cli/internal/version"
)

// cfg and logger are initialized once in PersistentPreRunE and shared by all
// subcommands.
var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sapgui-cli",
	Short: "Automate the SAP GUI from the command line or over MCP",
	Long: `sapgui-cli drives a SAP GUI client as a black box: it locates the session
window, injects synthetic mouse/keyboard input, and returns a screenshot after
every action. Connection credentials are read from the environment
(SAP_SYSTEM, SAP_CLIENT, SAP_USER, SAP_PASSWORD).`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL)")
	rootCmd.PersistentFlags().Bool("log-dev", false, "Human-readable console logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel != "" {
			level = flagLevel
		}
		development := cfg.Logging.Development
		if dev, _ := cmd.Flags().GetBool("log-dev"); dev {
			development = true
		}

		logger, err = logging.New(logging.Config{Level: level, Development: development})
		if err != nil {
			return err
		}
		return nil
	}

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	}
}
