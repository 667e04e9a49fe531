package config

import "strings"

// NormalizeLangCode trims a user-supplied language code. Case is kept
// because bitext artifacts are named after the code as entered.
func NormalizeLangCode(code string) string {
	return strings.TrimSpace(code)
}

// ParseFormats splits a comma-separated format list. Entries are trimmed
// and lower-cased; empty entries and repeats are dropped. Unknown
// identifiers are kept so they can be reported per file.
func ParseFormats(raw string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		f := strings.ToLower(strings.TrimSpace(part))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
