package cu

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/depoflow/depoflow/pkg/reflow"
)

// DefaultYTolerance is the vertical distance, in page units, within which
// two elements are considered to sit on the same row. Page units are inches
// for PDF sources.
const DefaultYTolerance = 0.15

// ConvertConfig holds options for turning an analysis result into the
// reflow document model.
type ConvertConfig struct {
	YTolerance  float64   // same-row grouping tolerance; <= 0 means DefaultYTolerance
	LogWarnings bool      // whether to print warnings
	Logger      io.Writer // warning destination (nil = stdout)
}

// DefaultConvertConfig returns a config with sensible defaults.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		YTolerance:  DefaultYTolerance,
		LogWarnings: true,
	}
}

func (cfg ConvertConfig) warnf(format string, args ...interface{}) {
	if !cfg.LogWarnings {
		return
	}
	w := cfg.Logger
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}

// element is one classified body element with its parsed region.
type element struct {
	bbox  reflow.BoundingBox
	words []reflow.SourceWord
}

// Document decomposes the analysis result into per-page body lines and
// line-number tokens for the reflow engine.
//
// Malformed bounding regions and schema violations abort the whole call
// before any reflow output can be produced. Structural noise (bullets, lone
// punctuation) and lines without content or region are dropped; body
// elements sharing a row merge left-to-right into a single line.
func (r *Result) Document(cfg ConvertConfig) (*reflow.Document, error) {
	if len(r.Result.Contents) == 0 {
		return nil, &reflow.SchemaError{Field: "result.contents", Reason: "no contents found"}
	}
	content := r.Result.Contents[0]
	if content.Kind != "document" {
		cfg.warnf("content kind is %q, expected \"document\"", content.Kind)
	}
	if len(content.Pages) == 0 {
		return nil, &reflow.SchemaError{Field: "result.contents[0].pages", Reason: "no pages found"}
	}

	tolerance := cfg.YTolerance
	if tolerance <= 0 {
		tolerance = DefaultYTolerance
	}

	doc := &reflow.Document{}
	for pi, page := range content.Pages {
		if page.PageNumber < 1 {
			return nil, &reflow.SchemaError{
				Field:  fmt.Sprintf("pages[%d].pageNumber", pi),
				Reason: "missing or non-positive page number",
			}
		}

		var body []element
		var numbers []reflow.LineNumberToken
		for li, line := range page.Lines {
			text := stripMarkup(line.Content)
			if text == "" || line.Source == "" {
				continue
			}

			bbox, err := reflow.ParseBoundingBox(line.Source)
			if err != nil {
				return nil, fmt.Errorf("page %d, line %d: %w", page.PageNumber, li, err)
			}

			switch {
			case isNoise(text):
				continue
			case isLineNumber(text):
				numbers = append(numbers, reflow.LineNumberToken{Content: text, BBox: bbox})
			default:
				words, err := lineWords(page, line, text, bbox)
				if err != nil {
					return nil, fmt.Errorf("page %d, line %d: %w", page.PageNumber, li, err)
				}
				body = append(body, element{bbox: bbox, words: words})
			}
		}

		sort.SliceStable(numbers, func(i, j int) bool {
			return numbers[i].BBox.MinY() < numbers[j].BBox.MinY()
		})

		doc.Pages = append(doc.Pages, reflow.Page{
			Number:  page.PageNumber,
			Lines:   mergeRows(body, tolerance),
			Numbers: numbers,
		})
	}
	return doc, nil
}

// lineWords resolves the words of one body line. Word elements from the
// service attach to their line by markdown span containment; when the
// service supplies none, words are synthesized by splitting the line content
// on spaces, deriving each original offset from the line's own span.
func lineWords(page Page, line Line, text string, lineBBox reflow.BoundingBox) ([]reflow.SourceWord, error) {
	if line.Span != nil && len(page.Words) > 0 {
		var words []reflow.SourceWord
		for _, w := range page.Words {
			if w.Span == nil || !line.Span.contains(*w.Span) {
				continue
			}
			bbox, err := reflow.ParseBoundingBox(w.Source)
			if err != nil {
				return nil, err
			}
			offset := w.Span.Offset
			words = append(words, reflow.SourceWord{
				Content:        w.Content,
				BBox:           bbox,
				OriginalOffset: &offset,
			})
		}
		if len(words) > 0 {
			// Left-to-right reading order.
			sort.SliceStable(words, func(i, j int) bool {
				return words[i].BBox.MinX() < words[j].BBox.MinX()
			})
			return words, nil
		}
	}

	// No word elements for this line; split the content. The synthesized
	// words share the line's region, and their original offsets anchor to
	// the line's span when the service supplied one.
	var words []reflow.SourceWord
	index := 0
	for _, w := range strings.Split(text, " ") {
		var offset *int
		if line.Span != nil {
			o := line.Span.Offset + index
			offset = &o
		}
		words = append(words, reflow.SourceWord{
			Content:        w,
			BBox:           lineBBox,
			OriginalOffset: offset,
		})
		index += len(w) + 1
	}
	return words, nil
}

// mergeRows groups body elements that share a vertical position into single
// lines, ordered top-to-bottom, each row's elements concatenated left to
// right. Transcripts occasionally split one printed line into several
// elements (speaker label and speech, or columns of an index page); the
// reflowed output treats them as one line.
func mergeRows(body []element, tolerance float64) []reflow.SourceLine {
	if len(body) == 0 {
		return nil
	}

	sorted := make([]element, len(body))
	copy(sorted, body)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].bbox.MinY() < sorted[j].bbox.MinY()
	})

	var lines []reflow.SourceLine
	row := []element{sorted[0]}
	rowY := sorted[0].bbox.MinY()
	flush := func() {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].bbox.MinX() < row[j].bbox.MinX()
		})
		line := reflow.SourceLine{BBox: row[0].bbox}
		for i, e := range row {
			if i > 0 {
				line.BBox = line.BBox.Union(e.bbox)
			}
			line.Words = append(line.Words, e.words...)
		}
		lines = append(lines, line)
	}

	for _, e := range sorted[1:] {
		if e.bbox.MinY()-rowY <= tolerance {
			row = append(row, e)
			continue
		}
		flush()
		row = []element{e}
		rowY = e.bbox.MinY()
	}
	flush()
	return lines
}
