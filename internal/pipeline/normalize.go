package pipeline

import "strings"

// lineEscape replaces an embedded newline in serialized output.
const lineEscape = `\n`

// NormalizeLine escapes every newline so the value fits on one physical line.
func NormalizeLine(s string) string {
	return strings.ReplaceAll(s, "\n", lineEscape)
}

// NormalizeLinePtr is NormalizeLine for optional values; nil becomes "".
func NormalizeLinePtr(s *string) string {
	if s == nil {
		return ""
	}
	return NormalizeLine(*s)
}

// Normalize applies NormalizeLine to both sides of every pair in place.
func Normalize(c *Corpus) {
	for i := range c.Source {
		c.Source[i] = NormalizeLine(c.Source[i])
		c.Target[i] = NormalizeLine(c.Target[i])
	}
}
