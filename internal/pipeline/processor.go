package pipeline

import (
	"fmt"
	"log/slog"

	"tmxconv/internal/tmx"
)

// Process runs the extraction pipeline on the raw bytes of one TMX file and
// returns the cleaned, newline-escaped corpus.
//
// Stages: sanitize, parse, extract, clean, normalize. Only parsing can fail;
// the error is a *tmx.ParseError.
func Process(data []byte, opts Options) (*Corpus, error) {
	forbidden := opts.Forbidden
	if forbidden == nil {
		forbidden = tmx.ControlCharRefs
	}

	sanitized := tmx.Sanitize(string(data), forbidden)
	return ProcessSanitized([]byte(sanitized), opts)
}

// ProcessSanitized is Process for content that has already been sanitized.
func ProcessSanitized(data []byte, opts Options) (*Corpus, error) {
	doc, err := tmx.Parse(data)
	if err != nil {
		return nil, err
	}

	source, target := tmx.Extract(doc, opts.SourceLang, opts.TargetLang)
	units := len(source)

	source, target, err = Clean(source, target)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}

	corpus := &Corpus{
		SourceLang: opts.SourceLang,
		TargetLang: opts.TargetLang,
		Source:     source,
		Target:     target,
	}
	Normalize(corpus)

	slog.Debug("extracted corpus",
		"units", units,
		"pairs", corpus.Len(),
		"dropped", units-corpus.Len())

	return corpus, nil
}
