package reflow

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultSeparator is inserted between a rendered line number and its body
// text.
const DefaultSeparator = " | "

// pageMarkerFormat is the literal delimiter emitted at the start of every
// page. The marker lies inside the page's offset span but is not attributed
// to any line or word.
const pageMarkerFormat = "<!-- Page %d -->\n"

// Options control a reflow pass.
type Options struct {
	// TargetPage limits output to one 1-based page. Zero processes the whole
	// document. A page number absent from the document is a
	// *PageNotFoundError.
	TargetPage int

	// Separator goes between a matched line number and the body text.
	// Empty means DefaultSeparator.
	Separator string

	// Matcher pairs numeral tokens with body lines. Nil means a
	// SpatialMatcher with DefaultMinOverlap.
	Matcher Matcher
}

// DefaultOptions returns options with the standard separator and matcher.
func DefaultOptions() Options {
	return Options{
		Separator: DefaultSeparator,
		Matcher:   SpatialMatcher{MinOverlap: DefaultMinOverlap},
	}
}

// Reflow rebuilds the document as a single text stream with inline line
// numbers and records the page/line/word offset hierarchy over the output.
//
// The pass is deterministic and purely functional: identical inputs produce
// byte-identical text and mapping, and either the whole call succeeds or no
// partial mapping is returned.
//
// Offset policy, held invariant across the engine and encoded in its tests:
// each page is emitted as "\n<!-- Page N -->\n" followed by its lines, each
// terminated by a single newline. The page span opens at the marker (the
// newline preceding it is unowned glue between pages) and closes at the last
// line's content end, so the final terminator is outside the page span.
// Line spans and line content exclude the trailing terminator. Inter-word
// spacing is exactly one space regardless of the original layout.
func Reflow(doc *Document, opts Options) (string, *OffsetMapping, error) {
	separator := opts.Separator
	if separator == "" {
		separator = DefaultSeparator
	}
	matcher := opts.Matcher
	if matcher == nil {
		matcher = SpatialMatcher{MinOverlap: DefaultMinOverlap}
	}

	var pages []Page
	if doc != nil {
		pages = append(pages, doc.Pages...)
	}
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Number < pages[j].Number
	})

	if opts.TargetPage > 0 {
		found := false
		for _, page := range pages {
			if page.Number == opts.TargetPage {
				pages = []Page{page}
				found = true
				break
			}
		}
		if !found {
			return "", nil, &PageNotFoundError{Page: opts.TargetPage}
		}
	}

	mapping := &OffsetMapping{}
	if len(pages) == 0 {
		return "", mapping, nil
	}

	var out strings.Builder
	cursor := 0
	for _, page := range pages {
		matched := matcher.Pair(page.Lines, page.Numbers)

		var info PageOffsetInfo
		info, cursor = appendPage(&out, cursor, page.Number, matched, separator)
		mapping.Pages = append(mapping.Pages, info)
	}
	return out.String(), mapping, nil
}

// appendPage emits one page and returns its offset record along with the
// advanced cursor. The cursor is threaded explicitly so each emission step
// is a pure function of the text length so far.
func appendPage(out *strings.Builder, cursor int, number int, lines []MatchedLine, separator string) (PageOffsetInfo, int) {
	// Glue newline before the marker, owned by no page.
	out.WriteString("\n")
	cursor++

	info := PageOffsetInfo{
		PageNumber: number,
		Lines:      make([]LineOffsetInfo, 0, len(lines)),
	}
	pageStart := cursor

	marker := fmt.Sprintf(pageMarkerFormat, number)
	out.WriteString(marker)
	cursor += len(marker)

	lastContentEnd := cursor
	for _, line := range lines {
		if len(line.Line.Words) == 0 && line.Number == nil {
			continue
		}
		var lineInfo LineOffsetInfo
		lineInfo, cursor = appendLine(out, cursor, line, separator)
		lastContentEnd = lineInfo.Offset.End
		info.Lines = append(info.Lines, lineInfo)
	}

	// A page with no lines spans only its marker.
	info.Offset = Span{Start: pageStart, End: lastContentEnd}
	return info, cursor
}

// appendLine renders one matched line, records its word offsets, and emits
// it followed by a single terminator. The terminator stays outside the line
// span so that text[start:end] equals the line content exactly.
func appendLine(out *strings.Builder, cursor int, line MatchedLine, separator string) (LineOffsetInfo, int) {
	lineStart := cursor

	var content strings.Builder
	words := make([]WordOffsetInfo, 0, len(line.Line.Words)+1)

	if line.Number != nil {
		wordStart := lineStart + content.Len()
		content.WriteString(line.Number.Content)
		words = append(words, WordOffsetInfo{
			Content: line.Number.Content,
			Offset:  Span{Start: wordStart, End: lineStart + content.Len()},
			BBox:    line.Number.BBox.String(),
		})
		content.WriteString(separator)
	}

	for i, word := range line.Line.Words {
		if i > 0 {
			content.WriteString(" ")
		}
		wordStart := lineStart + content.Len()
		content.WriteString(word.Content)
		words = append(words, WordOffsetInfo{
			Content:        word.Content,
			Offset:         Span{Start: wordStart, End: lineStart + content.Len()},
			BBox:           word.BBox.String(),
			OriginalOffset: word.OriginalOffset,
		})
	}

	rendered := content.String()
	out.WriteString(rendered)
	out.WriteString("\n")
	cursor = lineStart + len(rendered) + 1

	return LineOffsetInfo{
		Content: rendered,
		Offset:  Span{Start: lineStart, End: lineStart + len(rendered)},
		BBox:    line.Line.BBox.String(),
		Words:   words,
	}, cursor
}
