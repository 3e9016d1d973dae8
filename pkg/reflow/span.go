package reflow

// Span is a half-open [Start, End) interval of byte offsets into the
// reflowed output text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Valid reports whether the span is non-negative and properly ordered.
func (s Span) Valid() bool {
	return s.Start >= 0 && s.Start <= s.End
}

// Contains reports whether inner lies entirely within s.
func (s Span) Contains(inner Span) bool {
	return inner.Start >= s.Start && inner.End <= s.End
}
