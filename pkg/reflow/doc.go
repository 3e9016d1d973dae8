// Package reflow reconstructs a linear text stream from a paginated,
// line-numbered OCR document while tracking exact character offsets.
//
// OCR services report the line-number glyphs printed in the margin of legal
// transcripts and depositions as elements separate from the body text they
// annotate. This package re-associates each numeral with its body line by
// vertical bounding box overlap, rebuilds the document as inline
// "<num> | <text>" lines, and records a half-open [start, end) interval for
// every page, line, and word of the output, so that downstream citation and
// highlighting systems can slice the output text and land on exactly the
// recorded content.
//
// Key Types:
//
// - Document: the OCR result decomposed into per-page body lines and numeral tokens
// - BoundingBox: a parsed D(page,x1,y1,...) region descriptor
// - Matcher / SpatialMatcher: pairs numeral tokens with body lines
// - OffsetMapping: the three-level page/line/word offset hierarchy
// - Report: result of verifying a mapping against its output text
//
// Main Functions:
//
// - Reflow: single-pass construction of the output text and offset mapping
// - Verify: re-derives every recorded interval and checks it against the text
package reflow
