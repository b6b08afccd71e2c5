package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seshasai-1827/File-generation-proj/pkg/config"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "scfmerge",
	Short: "A tool to migrate site configuration plans between schema releases",
	Long: `scfmerge rebuilds a site configuration plan on top of a newer schema
release. It reads the currently deployed plan and the skeletal plan shipped
with the new software, keeps the deployed parameter values wherever the new
schema still knows them, and writes a merged plan plus a CSV report of what
changed between the two releases.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set up logger
		var level zapcore.Level
		if err := level.Set(logLevel); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}

		var cfg zap.Config
		if logFormat == "json" {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
			// More human-readable time format for text logs
			cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		}

		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		zap.ReplaceGlobals(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .scfmerge.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

// loadRunConfig loads the tool configuration, preferring the --config flag
// over the default file in the working directory.
func loadRunConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(".", cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
