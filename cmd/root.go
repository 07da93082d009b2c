package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tiliavir/dial/internal/config"
	"github.com/Tiliavir/dial/internal/logging"
)

var (
	configPath string
	logLevel   string

	// Loaded by the root command before any subcommand runs.
	cfg    = config.Default()
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "dial",
	Short: "dial – an analog clock face renderer",
	Long: `dial renders an analog clock face, optionally annotated with busy
intervals, as SVG or PNG. Settings live in ~/.dial/config.yaml.`,
	PersistentPreRunE: loadConfig,
}

// Execute is the entry point called from main.
func Execute() {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.dial/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(inspectCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	l, err := logging.New(c.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, logger = c, l
	logger.Debug("configuration loaded",
		zap.String("viewport", cfg.Render.Viewport),
		zap.String("format", cfg.Render.Format),
		zap.String("timezone_mode", cfg.Timezone.Mode),
	)
	return nil
}
