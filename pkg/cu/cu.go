// Package cu models the Azure Content Understanding analysis result and
// decomposes it into the reflow engine's document form.
//
// The service reports each page's detected text as line elements with a
// bounding region serialized as D(page,x1,y1,...) in the source field, plus
// optional word elements carrying character spans into the service's own
// markdown rendition. Line numbers printed in the margin of transcripts and
// depositions arrive as elements separate from the body text; this package
// classifies them, filters structural noise, merges body elements sharing a
// row, and hands the result to pkg/reflow for matching and emission.
//
// Main Functions:
//
// - Decode: reads the analysis JSON, tolerating BOM and UTF-16 encodings
// - (*Result).Document: builds the per-page lines and numeral tokens
package cu

// Result is the root of a Content Understanding analysis response.
type Result struct {
	Result AnalyzeResult `json:"result"`
}

// AnalyzeResult holds the analyzed contents; document analysis produces a
// single content of kind "document".
type AnalyzeResult struct {
	Contents []Content `json:"contents"`
}

// Content is one analyzed content entry.
type Content struct {
	Kind     string `json:"kind"`
	Markdown string `json:"markdown,omitempty"`
	Pages    []Page `json:"pages"`
}

// Page is one document page with its detected elements.
type Page struct {
	PageNumber int     `json:"pageNumber"`
	Angle      float64 `json:"angle,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Lines      []Line  `json:"lines"`
	Words      []Word  `json:"words"`
}

// Line is a detected text line: content plus the serialized bounding region
// and, when the service supplies one, a span into its markdown output.
type Line struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Span    *Span  `json:"span,omitempty"`
}

// Word is a detected word with its own region and markdown span.
type Word struct {
	Content    string  `json:"content"`
	Source     string  `json:"source"`
	Span       *Span   `json:"span,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Span locates a piece of content inside the service's markdown output.
type Span struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// contains reports whether the other span lies entirely within s.
func (s Span) contains(other Span) bool {
	return other.Offset >= s.Offset && other.Offset+other.Length <= s.Offset+s.Length
}
