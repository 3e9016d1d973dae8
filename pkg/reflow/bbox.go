package reflow

import (
	"math"
	"strconv"
	"strings"
)

// BoundingBox is a region descriptor parsed from the literal
// D(page,x1,y1,...) form used by the OCR service. The raw descriptor is kept
// verbatim so output mappings can carry it through without reprojection.
//
// Two coordinate layouts are accepted: eight values describing a
// quadrilateral (upper-left, upper-right, lower-right, lower-left) and four
// values describing an axis-aligned left, top, width, height rectangle.
type BoundingBox struct {
	raw  string
	page int

	minX, minY float64
	maxX, maxY float64
}

// ParseBoundingBox parses a D(page,coords...) region descriptor.
// It returns a *ParseError on malformed input: wrong token count,
// non-numeric fields, or a missing D(...) wrapper.
func ParseBoundingBox(source string) (BoundingBox, error) {
	inner, ok := strings.CutPrefix(source, "D(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	if !ok {
		return BoundingBox{}, &ParseError{Source: source, Reason: "expected D(...) wrapper"}
	}

	fields := strings.Split(inner, ",")
	if len(fields) < 1 {
		return BoundingBox{}, &ParseError{Source: source, Reason: "missing page index"}
	}

	page, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return BoundingBox{}, &ParseError{Source: source, Reason: "non-numeric page index"}
	}

	coords := make([]float64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return BoundingBox{}, &ParseError{Source: source, Reason: "non-numeric coordinate " + strconv.Quote(f)}
		}
		coords = append(coords, v)
	}

	b := BoundingBox{raw: source, page: page}
	switch len(coords) {
	case 8:
		// Quadrilateral: x1,y1,x2,y2,x3,y3,x4,y4
		b.minX = math.Min(coords[0], coords[6])
		b.minY = math.Min(coords[1], coords[3])
		b.maxX = math.Max(coords[2], coords[4])
		b.maxY = math.Max(coords[5], coords[7])
	case 4:
		// Rectangle: left, top, width, height
		b.minX = coords[0]
		b.minY = coords[1]
		b.maxX = coords[0] + coords[2]
		b.maxY = coords[1] + coords[3]
	default:
		return BoundingBox{}, &ParseError{Source: source, Reason: "expected 4 or 8 coordinates, got " + strconv.Itoa(len(coords))}
	}

	return b, nil
}

// String returns the original region descriptor verbatim.
func (b BoundingBox) String() string { return b.raw }

// Page returns the 1-based page index carried by the descriptor.
func (b BoundingBox) Page() int { return b.page }

// MinX returns the left extent of the region.
func (b BoundingBox) MinX() float64 { return b.minX }

// MaxX returns the right extent of the region.
func (b BoundingBox) MaxX() float64 { return b.maxX }

// MinY returns the top extent of the region.
func (b BoundingBox) MinY() float64 { return b.minY }

// MaxY returns the bottom extent of the region.
func (b BoundingBox) MaxY() float64 { return b.maxY }

// VerticalOverlap returns the ratio of the shared [MinY, MaxY] range to the
// smaller of the two vertical extents, between 0 and 1. Horizontal alignment
// plays no part; a margin numeral and its body line share a row, not a
// column.
func (b BoundingBox) VerticalOverlap(other BoundingBox) float64 {
	overlap := math.Min(b.maxY, other.maxY) - math.Max(b.minY, other.minY)
	if overlap <= 0 {
		return 0
	}
	minExtent := math.Min(b.maxY-b.minY, other.maxY-other.minY)
	if minExtent <= 0 {
		return 0
	}
	return overlap / minExtent
}

// Union returns the smallest axis-aligned region covering both boxes,
// serialized back into the eight-coordinate descriptor form. The page index
// of the receiver is kept.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	u := BoundingBox{
		page: b.page,
		minX: math.Min(b.minX, other.minX),
		minY: math.Min(b.minY, other.minY),
		maxX: math.Max(b.maxX, other.maxX),
		maxY: math.Max(b.maxY, other.maxY),
	}

	var sb strings.Builder
	sb.WriteString("D(")
	sb.WriteString(strconv.Itoa(u.page))
	for _, v := range []float64{u.minX, u.minY, u.maxX, u.minY, u.maxX, u.maxY, u.minX, u.maxY} {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(')')
	u.raw = sb.String()
	return u
}
