package cu

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/depoflow/depoflow/pkg/reflow"
)

// Decode reads a Content Understanding analysis result from r. Result files
// saved by various tools arrive UTF-8, BOM-prefixed, or UTF-16; a byte order
// mark overrides the assumed UTF-8 encoding and is stripped before JSON
// decoding.
func Decode(r io.Reader) (*Result, error) {
	utf8 := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var result Result
	if err := json.NewDecoder(utf8).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}

	if len(result.Result.Contents) == 0 {
		return nil, &reflow.SchemaError{Field: "result.contents", Reason: "no contents found"}
	}
	return &result, nil
}
