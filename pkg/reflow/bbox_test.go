package reflow

import (
	"errors"
	"math"
	"testing"
)

func TestParseBoundingBoxPolygon(t *testing.T) {
	source := "D(3,0.1994,0.5888,2.1336,0.5585,2.1471,0.9648,0.2128,0.9951)"
	b, err := ParseBoundingBox(source)
	if err != nil {
		t.Fatalf("ParseBoundingBox() error: %v", err)
	}

	if b.Page() != 3 {
		t.Errorf("Page() = %d, want 3", b.Page())
	}
	if b.String() != source {
		t.Errorf("String() = %q, want the descriptor verbatim", b.String())
	}

	approx := func(got, want float64) bool { return math.Abs(got-want) < 1e-9 }
	if !approx(b.MinX(), 0.1994) || !approx(b.MaxX(), 2.1471) {
		t.Errorf("horizontal extent = [%v, %v], want [0.1994, 2.1471]", b.MinX(), b.MaxX())
	}
	if !approx(b.MinY(), 0.5585) || !approx(b.MaxY(), 0.9951) {
		t.Errorf("vertical extent = [%v, %v], want [0.5585, 0.9951]", b.MinY(), b.MaxY())
	}
}

func TestParseBoundingBoxRect(t *testing.T) {
	// left, top, width, height
	b, err := ParseBoundingBox("D(2,1.0,2.0,3.0,0.5)")
	if err != nil {
		t.Fatalf("ParseBoundingBox() error: %v", err)
	}
	if b.Page() != 2 {
		t.Errorf("Page() = %d, want 2", b.Page())
	}
	if b.MinX() != 1.0 || b.MaxX() != 4.0 || b.MinY() != 2.0 || b.MaxY() != 2.5 {
		t.Errorf("extents = [%v, %v] x [%v, %v], want [1, 4] x [2, 2.5]",
			b.MinX(), b.MaxX(), b.MinY(), b.MaxY())
	}
}

func TestParseBoundingBoxErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"no wrapper", "3,0.1,0.2,0.3,0.4"},
		{"unterminated", "D(3,0.1,0.2,0.3,0.4"},
		{"wrong coordinate count", "D(3,0.1,0.2,0.3)"},
		{"non-numeric page", "D(three,0.1,0.2,0.3,0.4)"},
		{"non-numeric coordinate", "D(3,0.1,zero,0.3,0.4)"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoundingBox(tt.source)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ParseBoundingBox(%q) error = %v, want *ParseError", tt.source, err)
			}
			if parseErr.Source != tt.source {
				t.Errorf("ParseError.Source = %q, want %q", parseErr.Source, tt.source)
			}
		})
	}
}

func TestVerticalOverlap(t *testing.T) {
	box := func(top, bottom float64) BoundingBox {
		return testBox(t, 1, 0, top, 1, bottom)
	}

	tests := []struct {
		name string
		a, b BoundingBox
		want float64
	}{
		{"identical", box(1.0, 2.0), box(1.0, 2.0), 1.0},
		{"disjoint", box(1.0, 2.0), box(3.0, 4.0), 0},
		{"touching", box(1.0, 2.0), box(2.0, 3.0), 0},
		{"half of smaller", box(1.0, 2.0), box(1.75, 2.25), 0.5},
		{"contained", box(1.0, 2.0), box(1.2, 1.4), 1.0},
		{"zero height", box(1.0, 2.0), box(1.5, 1.5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.VerticalOverlap(tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("VerticalOverlap() = %v, want %v", got, tt.want)
			}
			// Symmetric by construction.
			if rev := tt.b.VerticalOverlap(tt.a); math.Abs(rev-got) > 1e-9 {
				t.Errorf("VerticalOverlap() not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestBoundingBoxUnion(t *testing.T) {
	a := testBox(t, 4, 0.5, 1.0, 2.0, 1.5)
	b := testBox(t, 4, 3.0, 0.8, 5.0, 1.2)

	u := a.Union(b)
	if u.Page() != 4 {
		t.Errorf("Page() = %d, want 4", u.Page())
	}
	if u.MinX() != 0.5 || u.MaxX() != 5.0 || u.MinY() != 0.8 || u.MaxY() != 1.5 {
		t.Errorf("union extents = [%v, %v] x [%v, %v], want [0.5, 5] x [0.8, 1.5]",
			u.MinX(), u.MaxX(), u.MinY(), u.MaxY())
	}

	// The reserialized descriptor parses back to the same region.
	parsed, err := ParseBoundingBox(u.String())
	if err != nil {
		t.Fatalf("ParseBoundingBox(union) error: %v", err)
	}
	if parsed != u {
		t.Errorf("round-trip = %+v, want %+v", parsed, u)
	}
}
