package reflow

// Document is the engine input: an OCR result decomposed into per-page body
// lines and the standalone line-number tokens reported alongside them.
type Document struct {
	Pages []Page
}

// Page holds one page's elements in top-to-bottom reading order.
type Page struct {
	Number  int               // 1-based page number
	Lines   []SourceLine      // body text lines
	Numbers []LineNumberToken // margin numerals, detached from the body by the OCR layer
}

// SourceWord is a body-text token from the OCR result.
type SourceWord struct {
	Content        string
	BBox           BoundingBox
	OriginalOffset *int // character position in the source markdown, nil when unknown
}

// SourceLine is an OCR-detected body-text line: its words in left-to-right
// order and the region covering them.
type SourceLine struct {
	Words []SourceWord
	BBox  BoundingBox
}

// LineNumberToken is a standalone numeral element. Semantically it is a
// label for a body line, not body content.
type LineNumberToken struct {
	Content string
	BBox    BoundingBox
}

// MatchedLine pairs a body line with at most one numeral token. A nil Number
// means no token cleared the matching threshold; the line is still emitted,
// rendered without the numeral prefix.
type MatchedLine struct {
	Line   SourceLine
	Number *LineNumberToken
}
