package reflow

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMappingLookups(t *testing.T) {
	_, mapping := verifiedPair(t)

	if _, ok := mapping.Page(2); ok {
		t.Error("Page(2) found, want missing")
	}

	page, ok := mapping.Page(4)
	if !ok {
		t.Fatal("Page(4) missing")
	}
	if _, ok := page.Line(len(page.Lines)); ok {
		t.Error("Line() out of range succeeded")
	}
	if _, ok := page.Line(-1); ok {
		t.Error("Line(-1) succeeded")
	}

	// Bounding box of word 2 on line 1 of page 4: the citation lookup path.
	line, ok := page.Line(1)
	if !ok {
		t.Fatal("page 4 line 1 missing")
	}
	word, ok := line.Word(2)
	if !ok {
		t.Fatal("page 4 line 1 word 2 missing")
	}
	if word.BBox == "" || !strings.HasPrefix(word.BBox, "D(4,") {
		t.Errorf("word bbox = %q, want a page 4 region descriptor", word.BBox)
	}
}

func TestMappingJSONShape(t *testing.T) {
	offset := 1005
	mapping := &OffsetMapping{Pages: []PageOffsetInfo{{
		PageNumber: 4,
		Offset:     Span{Start: 244, End: 500},
		Lines: []LineOffsetInfo{{
			Content: "1 | Susan",
			Offset:  Span{Start: 260, End: 269},
			BBox:    "D(4,0.1,0.5,2.1,0.5,2.1,0.9,0.1,0.9)",
			Words: []WordOffsetInfo{
				{Content: "1", Offset: Span{Start: 260, End: 261}, BBox: "D(4,0.1,0.5,0.4,0.5,0.4,0.9,0.1,0.9)"},
				{Content: "Susan", Offset: Span{Start: 264, End: 269}, BBox: "D(4,0.5,0.5,2.1,0.5,2.1,0.9,0.5,0.9)", OriginalOffset: &offset},
			},
		}},
	}}}

	data, err := json.Marshal(mapping)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	got := string(data)

	for _, want := range []string{
		`"pages":[`,
		`"pageNumber":4`,
		`"offset":{"start":244,"end":500}`,
		`"content":"1 | Susan"`,
		`"bbox":"D(4,0.1,0.5,2.1,0.5,2.1,0.9,0.1,0.9)"`,
		`"originalOffset":1005`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("mapping JSON missing %s:\n%s", want, got)
		}
	}

	// The numeral word has no original offset and the field must be absent,
	// not zero: offset zero is a real position.
	if strings.Contains(got, `"originalOffset":0`) {
		t.Errorf("absent original offset serialized as zero:\n%s", got)
	}
	if strings.Count(got, "originalOffset") != 1 {
		t.Errorf("originalOffset emitted %d times, want 1:\n%s", strings.Count(got, "originalOffset"), got)
	}
}
