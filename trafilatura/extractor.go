// Package trafilatura extracts main textual content from full HTML
// pages, used when the site-specific DOM heuristics find nothing.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/mbonnet/randoqa"
	"golang.org/x/net/html"
)

var _ randoqa.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura for boilerplate removal. When a
// converter is configured the extracted content node is converted to
// readable markdown text; otherwise trafilatura's plain text is used.
type Extractor struct {
	conv randoqa.Converter
}

// NewExtractor creates a new Extractor. conv may be nil.
func NewExtractor(conv randoqa.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// ExtractText pulls the title and main content text out of a page.
func (e *Extractor) ExtractText(rawHTML string) (string, string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", "", randoqa.Errorf(randoqa.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", "", err
	}

	text := result.ContentText
	if e.conv != nil && result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err == nil {
			if converted, err := e.conv.Convert(contentHTML); err == nil {
				text = converted
			}
		}
	}

	return result.Metadata.Title, strings.TrimSpace(text), nil
}

// renderNode converts an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
