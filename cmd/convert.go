package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tmxconv/internal/config"
	"tmxconv/internal/worker"
)

var convertCmd = &cobra.Command{
	Use:   "convert [directory]",
	Short: "Convert every .tmx file under a directory",
	Long: `Convert walks the directory recursively, extracts source/target pairs from
every .tmx file and writes the requested formats to <directory>/output.
Values not given as flags, in the config file or in the environment are
prompted for.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

var (
	sourceLang      string
	targetLang      string
	formats         string
	outputDir       string
	sanitizeInPlace bool
	keepRawControls bool
)

func init() {
	convertCmd.Flags().StringVarP(&sourceLang, "source", "s", "", "source language code (prefix match, e.g. en)")
	convertCmd.Flags().StringVarP(&targetLang, "target", "t", "", "target language code (prefix match, e.g. fr)")
	convertCmd.Flags().StringVarP(&formats, "formats", "f", "", "comma-separated output formats: tsv, txt, csv, bitext")
	convertCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: <directory>/output)")
	convertCmd.Flags().BoolVar(&sanitizeInPlace, "sanitize-in-place", false, "write the control-character-stripped text back to each .tmx file")
	convertCmd.Flags().BoolVar(&keepRawControls, "keep-raw-controls", false, "strip only escaped control characters, not literal ones")

	rootCmd.AddCommand(convertCmd)
}

// prompts asked for settings that are still empty, in this order.
var prompts = []struct {
	label string
	field func(*config.ConvertSettings) *string
}{
	{"Enter the directory location of the .tmx files with the same source and target language: ", func(s *config.ConvertSettings) *string { return &s.RootDir }},
	{"Enter the source language code: ", func(s *config.ConvertSettings) *string { return &s.SourceLang }},
	{"Enter the target language code: ", func(s *config.ConvertSettings) *string { return &s.TargetLang }},
	{"Enter desired output format(s) separated by commas (e.g., tsv,txt,csv,bitext): ", func(s *config.ConvertSettings) *string { return &s.Formats }},
}

// promptMissing fills every empty setting from in, one line per answer.
func promptMissing(settings *config.ConvertSettings, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for _, p := range prompts {
		field := p.field(settings)
		if strings.TrimSpace(*field) != "" {
			continue
		}
		fmt.Fprint(out, p.label)
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return fmt.Errorf("read answer: %w", err)
		}
		*field = strings.TrimSpace(line)
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	settings := cfg.Convert
	if len(args) == 1 {
		settings.RootDir = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("source") {
		settings.SourceLang = sourceLang
	}
	if flags.Changed("target") {
		settings.TargetLang = targetLang
	}
	if flags.Changed("formats") {
		settings.Formats = formats
	}
	if flags.Changed("output") {
		settings.OutputDir = outputDir
	}
	inPlace := cfg.Sanitize.InPlace
	if flags.Changed("sanitize-in-place") {
		inPlace = sanitizeInPlace
	}
	keepRaw := cfg.Sanitize.KeepRawControls
	if flags.Changed("keep-raw-controls") {
		keepRaw = keepRawControls
	}

	if err := promptMissing(&settings, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return err
	}

	// Resolve to absolute path.
	absRoot, err := filepath.Abs(settings.RootDir)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return fmt.Errorf("directory not found: %s", settings.RootDir)
	}

	// Setup signal handling for graceful cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.Default().With("run_id", uuid.NewString())

	opts := worker.Options{
		RootDir:         absRoot,
		OutputDir:       settings.OutputDir,
		SourceLang:      config.NormalizeLangCode(settings.SourceLang),
		TargetLang:      config.NormalizeLangCode(settings.TargetLang),
		Formats:         config.ParseFormats(settings.Formats),
		SanitizeInPlace: inPlace,
		KeepRawControls: keepRaw,
		Logger:          logger,
	}

	summary, err := worker.Run(ctx, opts)
	if err != nil {
		return err
	}

	logger.Info("conversion finished",
		"files", summary.Files,
		"failed", summary.Failed,
		"pairs", summary.Pairs,
		"artifacts", len(summary.Artifacts),
		"skipped_formats", summary.Skipped)

	if !summary.OK() {
		return fmt.Errorf("%d of %d files failed, %d artifacts failed to write",
			summary.Failed, summary.Files, summary.WriteFailures)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Conversion completed successfully.")
	}
	return nil
}
