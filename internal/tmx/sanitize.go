package tmx

import (
	"bytes"
	"strings"
)

// ControlCharRefs lists the numeric character references for U+0000..U+001F.
// encoding/xml rejects these references even though TMX exporters emit them.
var ControlCharRefs = []string{
	"&#x0;", "&#x1;", "&#x2;", "&#x3;", "&#x4;", "&#x5;", "&#x6;", "&#x7;",
	"&#x8;", "&#x9;", "&#xA;", "&#xB;", "&#xC;", "&#xD;", "&#xE;", "&#xF;",
	"&#x10;", "&#x11;", "&#x12;", "&#x13;", "&#x14;", "&#x15;", "&#x16;", "&#x17;",
	"&#x18;", "&#x19;", "&#x1A;", "&#x1B;", "&#x1C;", "&#x1D;", "&#x1E;", "&#x1F;",
}

// RawControlChars lists the literal C0 control characters that are not
// legal XML characters (everything below U+0020 except TAB, LF and CR).
var RawControlChars = rawControlChars()

func rawControlChars() []string {
	var chars []string
	for r := rune(0); r < 0x20; r++ {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		chars = append(chars, string(r))
	}
	return chars
}

// DefaultForbidden returns the forbidden substring set used by the converter.
// The character references are always included; the raw control characters
// only when withRaw is set.
func DefaultForbidden(withRaw bool) []string {
	out := make([]string, 0, len(ControlCharRefs)+len(RawControlChars))
	out = append(out, ControlCharRefs...)
	if withRaw {
		out = append(out, RawControlChars...)
	}
	return out
}

// Sanitize deletes every occurrence of each forbidden substring from text.
// Substrings are removed in order, one full pass per substring.
func Sanitize(text string, forbidden []string) string {
	for _, s := range forbidden {
		if s == "" {
			continue
		}
		text = strings.ReplaceAll(text, s, "")
	}
	return text
}

var utf8BOM = []byte("\xef\xbb\xbf")

// stripBOM removes a leading UTF-8 byte order mark, if any. The rest of the
// document is passed through untouched so the XML decoder still rejects
// invalid UTF-8.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}
