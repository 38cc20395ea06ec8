package mock

import "github.com/mbonnet/randoqa"

var _ randoqa.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of randoqa.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*randoqa.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL string) (*randoqa.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}

var _ randoqa.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of randoqa.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL string) ([]randoqa.Link, error)
}

func (e *LinkExtractor) ExtractLinks(html, baseURL string) ([]randoqa.Link, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ randoqa.Converter = (*Converter)(nil)

// Converter is a mock implementation of randoqa.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ randoqa.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of randoqa.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (title, text string, err error)
}

func (e *TextExtractor) ExtractText(html string) (string, string, error) {
	return e.ExtractTextFn(html)
}
