package cu

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// isLineNumber reports whether content is a standalone margin numeral.
// Transcript line numbering runs 1-99 per page; anything longer is body
// content such as a Bates number or a year.
func isLineNumber(content string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil {
		return false
	}
	return n >= 1 && n <= 99
}

// isNoise reports whether content is a structural artifact the service emits
// for layout (bullets, lone punctuation) rather than document text.
func isNoise(content string) bool {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) != 1 {
		return false
	}
	switch runes[0] {
	case '·', '•', '∙':
		return true
	}
	return !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0])
}

// stripMarkup removes inline HTML fragments and comments that the service's
// markdown rendition can leave inside line content, keeping only the text
// nodes. Runs of whitespace left behind collapse to single spaces.
func stripMarkup(content string) string {
	if !strings.ContainsRune(content, '<') {
		return strings.TrimSpace(content)
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return strings.TrimSpace(content)
	}

	var text strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(text.String()), " ")
}
