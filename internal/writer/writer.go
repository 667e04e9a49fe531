// Package writer serializes an extracted corpus into the supported flat
// formats. Writers emit values verbatim; cleaning and newline escaping
// happen upstream in the pipeline.
package writer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"tmxconv/internal/pipeline"
)

// ErrUnsupportedFormat is wrapped by every UnsupportedFormatError.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// UnsupportedFormatError reports an unknown format identifier.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format: %s", e.Format)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// formatFunc writes one format's artifacts for a file base name and returns
// their locations.
type formatFunc func(sink Sink, base string, c *pipeline.Corpus) ([]string, error)

var formats = map[string]formatFunc{
	"tsv":    writeTSV,
	"csv":    writeCSV,
	"txt":    writeTXT,
	"bitext": writeBitext,
}

// Formats returns the supported format identifiers, sorted.
func Formats() []string {
	ids := make([]string, 0, len(formats))
	for id := range formats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Supported reports whether format names a known writer.
func Supported(format string) bool {
	_, ok := formats[strings.ToLower(strings.TrimSpace(format))]
	return ok
}

// Write serializes c in the given format. base is the source file name
// without extension. It returns the artifact locations, or an
// *UnsupportedFormatError when the format is unknown.
func Write(sink Sink, format, base string, c *pipeline.Corpus) ([]string, error) {
	id := strings.ToLower(strings.TrimSpace(format))
	fn, ok := formats[id]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}
	if len(c.Source) != len(c.Target) {
		return nil, fmt.Errorf("write %s: misaligned corpus: %d source vs %d target", id, len(c.Source), len(c.Target))
	}
	return fn(sink, base, c)
}

func singleName(base, format string) string {
	return fmt.Sprintf("%s_%s.%s", base, format, format)
}

func writeTSV(sink Sink, base string, c *pipeline.Corpus) ([]string, error) {
	return writeDelimited(sink, singleName(base, "tsv"), '\t', c)
}

func writeCSV(sink Sink, base string, c *pipeline.Corpus) ([]string, error) {
	return writeDelimited(sink, singleName(base, "csv"), ',', c)
}

// writeDelimited writes one record per pair. encoding/csv quotes a field
// only when it contains the delimiter, a quote or a line break.
func writeDelimited(sink Sink, name string, comma rune, c *pipeline.Corpus) ([]string, error) {
	path, err := sink.WriteFile(name, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		cw.Comma = comma
		for i := range c.Source {
			if err := cw.Write([]string{c.Source[i], c.Target[i]}); err != nil {
				return fmt.Errorf("write record %d: %w", i+1, err)
			}
		}
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func writeTXT(sink Sink, base string, c *pipeline.Corpus) ([]string, error) {
	path, err := sink.WriteFile(singleName(base, "txt"), func(w io.Writer) error {
		for i := range c.Source {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", c.Source[i], c.Target[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// writeBitext writes one file per language. Line N of both files belongs
// to the same pair.
func writeBitext(sink Sink, base string, c *pipeline.Corpus) ([]string, error) {
	sides := []struct {
		lang  string
		lines []string
	}{
		{c.SourceLang, c.Source},
		{c.TargetLang, c.Target},
	}

	for _, side := range sides {
		if side.lang == "" || strings.ContainsAny(side.lang, `/\`) {
			return nil, fmt.Errorf("bitext: invalid language code %q", side.lang)
		}
	}

	var paths []string
	for _, side := range sides {
		name := fmt.Sprintf("%s.%s", base, side.lang)
		lines := side.lines
		path, err := sink.WriteFile(name, func(w io.Writer) error {
			for _, line := range lines {
				if _, err := io.WriteString(w, line+"\n"); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
