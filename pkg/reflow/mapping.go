package reflow

// OffsetMapping is the root of the offset hierarchy: one entry per emitted
// page, in page-number order. It is a pure data container; the engine builds
// it bottom-up and never mutates it afterwards.
type OffsetMapping struct {
	Pages []PageOffsetInfo `json:"pages"`
}

// PageOffsetInfo spans all of one page's content in the output text,
// including the page marker.
type PageOffsetInfo struct {
	PageNumber int              `json:"pageNumber"`
	Offset     Span             `json:"offset"`
	Lines      []LineOffsetInfo `json:"lines"`
}

// LineOffsetInfo spans one rendered output line, numeral and separator
// included, trailing terminator excluded.
type LineOffsetInfo struct {
	Content string           `json:"content"`
	Offset  Span             `json:"offset"`
	BBox    string           `json:"bbox"`
	Words   []WordOffsetInfo `json:"words"`
}

// WordOffsetInfo spans one output word. OriginalOffset carries the word's
// position in the source markdown when the OCR layer supplied one; it is nil
// for synthetic numeral words, which never existed as body text.
type WordOffsetInfo struct {
	Content        string `json:"content"`
	Offset         Span   `json:"offset"`
	BBox           string `json:"bbox"`
	OriginalOffset *int   `json:"originalOffset,omitempty"`
}

// Page returns the mapping for the given 1-based page number.
func (m *OffsetMapping) Page(number int) (*PageOffsetInfo, bool) {
	for i := range m.Pages {
		if m.Pages[i].PageNumber == number {
			return &m.Pages[i], true
		}
	}
	return nil, false
}

// Line returns the page's line at the given 0-based index.
func (p *PageOffsetInfo) Line(index int) (*LineOffsetInfo, bool) {
	if index < 0 || index >= len(p.Lines) {
		return nil, false
	}
	return &p.Lines[index], true
}

// Word returns the line's word at the given 0-based index. A matched line
// number counts as the line's first word.
func (l *LineOffsetInfo) Word(index int) (*WordOffsetInfo, bool) {
	if index < 0 || index >= len(l.Words) {
		return nil, false
	}
	return &l.Words[index], true
}
