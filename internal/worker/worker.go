package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"tmxconv/internal/config"
	"tmxconv/internal/pipeline"
	"tmxconv/internal/tmx"
	"tmxconv/internal/writer"
)

// Options configures the worker.
type Options struct {
	RootDir    string   `validate:"required,dir"`
	OutputDir  string   // default: <RootDir>/output
	SourceLang string   `validate:"required,excludesall=/\\"`
	TargetLang string   `validate:"required,excludesall=/\\,nefield=SourceLang"`
	Formats    []string `validate:"min=1,dive,required"`
	// SanitizeInPlace writes the sanitized document back over the source file.
	SanitizeInPlace bool
	// KeepRawControls strips only the escaped control-character references.
	KeepRawControls bool
	Logger          *slog.Logger `validate:"-"`
}

// Summary reports the outcome of a batch.
type Summary struct {
	Files     int
	Failed    int
	Pairs     int
	Artifacts []string
	// Skipped counts format requests that were not written because the
	// format is unsupported.
	Skipped int
	// WriteFailures counts artifacts that failed to write.
	WriteFailures int
}

// OK reports whether every file converted and every supported format was
// written.
func (s *Summary) OK() bool {
	return s.Failed == 0 && s.WriteFailures == 0
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// Validate checks the options before a run.
func (o *Options) Validate() error {
	if err := getValidator().Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	// Matching folds case, so "en" and "EN" would claim the same variants.
	if tmx.FoldLang(o.SourceLang) == tmx.FoldLang(o.TargetLang) {
		return fmt.Errorf("invalid options: source and target language are both %q", o.SourceLang)
	}
	return nil
}

func (o *Options) outputDir() string {
	if o.OutputDir != "" {
		return o.OutputDir
	}
	return filepath.Join(o.RootDir, config.OutputDirName)
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Run converts every .tmx file below opts.RootDir. Files are processed one
// at a time; a file that cannot be sanitized or parsed is logged, counted in
// Summary.Failed, and the batch continues.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	outDir := opts.outputDir()
	sink, err := writer.NewDirSink(outDir)
	if err != nil {
		return nil, err
	}

	files, err := FindTMX(opts.RootDir, outDir)
	if err != nil {
		return nil, err
	}
	log.Info("found TMX files", "root", opts.RootDir, "count", len(files), "output", outDir)

	return processSequential(ctx, files, sink, opts)
}

// FindTMX walks root and returns every file with a .tmx extension (any
// case), sorted. The directory skip, usually the output directory, is not
// descended into.
func FindTMX(root, skip string) ([]string, error) {
	skipAbs, _ := filepath.Abs(skip)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skip != "" && path != root {
				if abs, _ := filepath.Abs(path); abs == skipAbs {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".tmx") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// sanitizeFile reads path and strips the forbidden substrings. When
// inPlace is set and the content changed, the result is written back
// atomically.
func sanitizeFile(path string, forbidden []string, inPlace bool) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &tmx.SanitizeError{Op: "read", Path: path, Err: err}
	}

	clean := tmx.Sanitize(string(raw), forbidden)
	if inPlace && clean != string(raw) {
		err := writer.WriteAtomic(path, func(w io.Writer) error {
			_, err := io.WriteString(w, clean)
			return err
		})
		if err != nil {
			return nil, &tmx.SanitizeError{Op: "write", Path: path, Err: err}
		}
	}
	return []byte(clean), nil
}

// convertFile runs the pipeline for one file and writes every requested
// format. Unsupported formats are logged and skipped.
func convertFile(path string, sink writer.Sink, opts Options, summary *Summary) error {
	log := opts.logger().With("file", filepath.Base(path))

	data, err := sanitizeFile(path, tmx.DefaultForbidden(!opts.KeepRawControls), opts.SanitizeInPlace)
	if err != nil {
		return err
	}

	corpus, err := pipeline.ProcessSanitized(data, pipeline.Options{
		SourceLang: opts.SourceLang,
		TargetLang: opts.TargetLang,
	})
	if err != nil {
		var perr *tmx.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return err
	}
	summary.Pairs += corpus.Len()
	log.Info("extracted pairs", "pairs", corpus.Len())

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, format := range opts.Formats {
		paths, err := writer.Write(sink, format, base, corpus)
		if err != nil {
			var uerr *writer.UnsupportedFormatError
			if errors.As(err, &uerr) {
				log.Warn("unsupported output format, skipping", "format", format)
				summary.Skipped++
				continue
			}
			log.Error("write failed", "format", format, "err", err)
			summary.WriteFailures++
			continue
		}
		summary.Artifacts = append(summary.Artifacts, paths...)
		for _, p := range paths {
			log.Info("output written", "format", format, "path", p)
		}
	}
	return nil
}
