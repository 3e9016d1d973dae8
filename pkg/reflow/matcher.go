package reflow

import "sort"

// DefaultMinOverlap is the minimum vertical overlap ratio a numeral token
// must share with a body line to be paired with it.
const DefaultMinOverlap = 0.5

// Matcher pairs the body lines of a page with its standalone line-number
// tokens. Implementations must preserve the reading order of lines and must
// assign each token to at most one line.
type Matcher interface {
	Pair(lines []SourceLine, tokens []LineNumberToken) []MatchedLine
}

// SpatialMatcher pairs lines and tokens by vertical bounding box overlap,
// greedily from the highest-overlap candidate down. The greedy pass is a
// heuristic, not a globally optimal assignment; it avoids double assignment
// and behaves well on the regular row layout of transcripts.
type SpatialMatcher struct {
	MinOverlap float64 // minimum overlap ratio; <= 0 means DefaultMinOverlap
}

// Pair returns one MatchedLine per input line, in the input order. A page
// with no lines yields an empty match set, which is valid, not an error.
func (m SpatialMatcher) Pair(lines []SourceLine, tokens []LineNumberToken) []MatchedLine {
	matched := make([]MatchedLine, len(lines))
	for i, line := range lines {
		matched[i] = MatchedLine{Line: line}
	}
	if len(lines) == 0 || len(tokens) == 0 {
		return matched
	}

	minOverlap := m.MinOverlap
	if minOverlap <= 0 {
		minOverlap = DefaultMinOverlap
	}

	type candidate struct {
		overlap     float64
		line, token int
	}
	var candidates []candidate
	for li, line := range lines {
		for ti, token := range tokens {
			if ov := line.BBox.VerticalOverlap(token.BBox); ov >= minOverlap {
				candidates = append(candidates, candidate{overlap: ov, line: li, token: ti})
			}
		}
	}

	// Highest overlap first; ties fall back to the token's reading order on
	// the page, then the line's.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].overlap != candidates[j].overlap {
			return candidates[i].overlap > candidates[j].overlap
		}
		if candidates[i].token != candidates[j].token {
			return candidates[i].token < candidates[j].token
		}
		return candidates[i].line < candidates[j].line
	})

	usedLine := make([]bool, len(lines))
	usedToken := make([]bool, len(tokens))
	for _, c := range candidates {
		if usedLine[c.line] || usedToken[c.token] {
			continue
		}
		usedLine[c.line] = true
		usedToken[c.token] = true
		token := tokens[c.token]
		matched[c.line].Number = &token
	}
	return matched
}
