package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"tmxconv/internal/config"
)

var (
	verbose    bool
	quiet      bool
	logFormat  string
	configPath string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tmxconv",
	Short: "Convert TMX translation memories to tsv, csv, txt or bitext files",
	Long: `tmxconv extracts source/target segment pairs from TMX (Translation Memory
eXchange) files and writes them as tab-separated, comma-separated, plain text
or line-aligned bitext files, one pair per line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		setupLogging(cmd)
		return nil
	},
}

func setupLogging(cmd *cobra.Command) {
	level := parseLevel(cfg.Log.Level)
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	format := cfg.Log.Format
	if cmd.Flags().Changed("log-format") {
		format = logFormat
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaults := config.Default()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", defaults.Log.Format, "log format: text, json")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: $TMXCONV_CONFIG)")
}
