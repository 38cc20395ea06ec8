package randoqa

// ExtractResult holds the cleaned title, plain-text content and
// structured metadata extracted from a rendered page. For project pages
// the content is a serialized ProjectEntry list instead of prose.
type ExtractResult struct {
	Title    string
	Content  string
	Metadata Metadata
}

// Extractor extracts content and structured facts from rendered HTML.
// Implementations never fail outward on DOM-read problems: they return a
// best-effort partial result with default metadata instead.
type Extractor interface {
	Extract(html, pageURL string) (*ExtractResult, error)
}

// LinkExtractor extracts hyperlinks from rendered HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns discovered links with their
	// anchor text. The baseURL is used to resolve relative URLs.
	ExtractLinks(html, baseURL string) ([]Link, error)
}

// Converter converts an HTML fragment into clean readable text.
type Converter interface {
	Convert(html string) (string, error)
}

// TextExtractor pulls the main textual content out of a full HTML page,
// removing boilerplate. Used as a fallback when the site-specific DOM
// heuristics find nothing.
type TextExtractor interface {
	ExtractText(html string) (title, text string, err error)
}
