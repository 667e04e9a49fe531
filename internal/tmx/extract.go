package tmx

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	tagUnit    = "tu"
	tagVariant = "tuv"
	tagSegment = "seg"
	attrLang   = "lang"
)

// FoldLang case-folds a language tag or code for comparison.
func FoldLang(tag string) string {
	return cases.Fold().String(strings.TrimSpace(tag))
}

// MatchLang reports whether the variant tag starts with the requested code,
// ignoring case. "EN-GB" matches "en".
func MatchLang(tag, code string) bool {
	return strings.HasPrefix(FoldLang(tag), FoldLang(code))
}

// Extract projects every translation unit of doc onto a (source, target)
// pair. The returned slices have one entry per TU, in document order; a side
// whose language is absent is the empty string.
//
// A variant tag that matches both codes is assigned to the source side.
func Extract(doc *Document, sourceLang, targetLang string) (source, target []string) {
	units := doc.Elements(tagUnit)
	source = make([]string, 0, len(units))
	target = make([]string, 0, len(units))

	for _, tu := range units {
		var src, tgt string
		for _, tuv := range tu.Children(tagVariant) {
			lang, ok := tuv.Attributes()[attrLang]
			if !ok {
				continue
			}
			text := segmentText(tuv)
			switch {
			case MatchLang(lang, sourceLang):
				src = text
			case MatchLang(lang, targetLang):
				tgt = text
			}
		}
		source = append(source, src)
		target = append(target, tgt)
	}
	return source, target
}

// segmentText returns the text of the variant's first seg element.
func segmentText(tuv *Node) string {
	segs := tuv.Children(tagSegment)
	if len(segs) == 0 {
		return ""
	}
	return segs[0].TextContent()
}
