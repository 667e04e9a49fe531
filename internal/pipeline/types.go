package pipeline

// Pair is one translation unit projected onto the requested languages.
type Pair struct {
	Source string
	Target string
}

// Corpus is the ordered pair list extracted from one TMX file. Source and
// Target are index-aligned and always the same length.
type Corpus struct {
	SourceLang string
	TargetLang string
	Source     []string
	Target     []string
}

// Len returns the number of pairs.
func (c *Corpus) Len() int {
	return len(c.Source)
}

// Pairs returns the corpus as a slice of pairs.
func (c *Corpus) Pairs() []Pair {
	pairs := make([]Pair, len(c.Source))
	for i := range c.Source {
		pairs[i] = Pair{Source: c.Source[i], Target: c.Target[i]}
	}
	return pairs
}

// Options controls a single pipeline run.
type Options struct {
	SourceLang string
	TargetLang string
	// Forbidden lists substrings deleted from the document before parsing.
	// Nil means tmx.ControlCharRefs.
	Forbidden []string
}
