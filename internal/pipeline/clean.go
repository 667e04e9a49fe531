package pipeline

import (
	"fmt"
	"strings"
)

// Clean keeps the indices where both sides are non-blank and trims the
// retained values. Order is preserved and the outputs stay aligned.
// Running Clean on its own output is a no-op.
func Clean(source, target []string) ([]string, []string, error) {
	if len(source) != len(target) {
		return nil, nil, fmt.Errorf("clean: misaligned input: %d source vs %d target", len(source), len(target))
	}

	outSrc := make([]string, 0, len(source))
	outTgt := make([]string, 0, len(target))
	for i := range source {
		src := strings.TrimSpace(source[i])
		tgt := strings.TrimSpace(target[i])
		if src == "" || tgt == "" {
			continue
		}
		outSrc = append(outSrc, src)
		outTgt = append(outTgt, tgt)
	}
	return outSrc, outTgt, nil
}
