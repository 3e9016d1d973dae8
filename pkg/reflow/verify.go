package reflow

import "fmt"

// Report summarizes a verification run over a (text, mapping) pair.
type Report struct {
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
	Failures []Failure `json:"failures,omitempty"`
}

// Failure pinpoints one violated check: where it happened and what was
// expected against what the text or mapping actually held.
type Failure struct {
	Location string `json:"location"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// Ok reports whether no check failed.
func (r Report) Ok() bool { return r.Failed == 0 }

// Verify re-derives every recorded interval from the output text and checks
// the invariants the mapping promises: substring equality for line and word
// content, containment of words within lines and lines within pages, and
// non-overlapping, non-decreasing sibling order at every level.
//
// Verification never fails hard; mismatches are collected into the report
// and the caller decides whether they are acceptable. The walk is
// deterministic, so repeated runs over the same pair yield identical counts.
func Verify(text string, mapping *OffsetMapping) Report {
	var report Report
	if mapping == nil {
		return report
	}

	check := func(location string, ok bool, expected, actual string) {
		if ok {
			report.Passed++
			return
		}
		report.Failed++
		report.Failures = append(report.Failures, Failure{
			Location: location,
			Expected: expected,
			Actual:   actual,
		})
	}

	// slice extracts the substring for a span, reporting false when the span
	// cannot address the text at all.
	slice := func(s Span) (string, bool) {
		if !s.Valid() || s.End > len(text) {
			return "", false
		}
		return text[s.Start:s.End], true
	}

	prevPageEnd := 0
	for _, page := range mapping.Pages {
		pageLoc := fmt.Sprintf("page %d", page.PageNumber)

		_, pageOK := slice(page.Offset)
		check(pageLoc, pageOK,
			fmt.Sprintf("interval within text of length %d", len(text)),
			fmt.Sprintf("[%d, %d)", page.Offset.Start, page.Offset.End))

		check(pageLoc, page.Offset.Start >= prevPageEnd,
			fmt.Sprintf("start >= %d (end of previous page)", prevPageEnd),
			fmt.Sprintf("start %d", page.Offset.Start))
		prevPageEnd = page.Offset.End

		prevLineEnd := page.Offset.Start
		for li, line := range page.Lines {
			lineLoc := fmt.Sprintf("%s, line %d", pageLoc, li)

			got, ok := slice(line.Offset)
			check(lineLoc, ok && got == line.Content, line.Content, got)

			check(lineLoc, page.Offset.Contains(line.Offset),
				fmt.Sprintf("interval within page [%d, %d)", page.Offset.Start, page.Offset.End),
				fmt.Sprintf("[%d, %d)", line.Offset.Start, line.Offset.End))

			check(lineLoc, line.Offset.Start >= prevLineEnd,
				fmt.Sprintf("start >= %d (end of previous line)", prevLineEnd),
				fmt.Sprintf("start %d", line.Offset.Start))
			prevLineEnd = line.Offset.End

			prevWordEnd := line.Offset.Start
			for wi, word := range line.Words {
				wordLoc := fmt.Sprintf("%s, word %d", lineLoc, wi)

				got, ok := slice(word.Offset)
				check(wordLoc, ok && got == word.Content, word.Content, got)

				check(wordLoc, line.Offset.Contains(word.Offset),
					fmt.Sprintf("interval within line [%d, %d)", line.Offset.Start, line.Offset.End),
					fmt.Sprintf("[%d, %d)", word.Offset.Start, word.Offset.End))

				check(wordLoc, word.Offset.Start >= prevWordEnd,
					fmt.Sprintf("start >= %d (end of previous word)", prevWordEnd),
					fmt.Sprintf("start %d", word.Offset.Start))
				prevWordEnd = word.Offset.End
			}
		}
	}
	return report
}
