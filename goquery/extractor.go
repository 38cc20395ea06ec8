// Package goquery implements DOM extraction for the hiking site's
// rendered pages: titles, descriptions, photo counts, project cards
// and the structured metadata derived from them.
package goquery

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mbonnet/randoqa"
)

var _ randoqa.Extractor = (*Extractor)(nil)

// Extractor extracts page content and metadata from rendered HTML.
// DOM-read problems never fail outward; the extractor returns a
// best-effort partial result with default metadata instead, so one
// malformed page cannot abort a crawl.
type Extractor struct {
	converter randoqa.Converter
	text      randoqa.TextExtractor
}

// NewExtractor creates an Extractor. The converter renders description
// blocks as readable text; the text extractor is the boilerplate-removal
// fallback. Either may be nil.
func NewExtractor(converter randoqa.Converter, text randoqa.TextExtractor) *Extractor {
	return &Extractor{converter: converter, text: text}
}

// descriptionSelectors locate the dedicated description block that
// gallery pages render under the photo grid.
const descriptionSelectors = ".description, #description, .texte, .commentaire, .recit"

// regionSelectors locate DOM fragments that name a region or place
// outside the prose, used as a location fallback.
const regionSelectors = ".region, .lieu, .localisation, .breadcrumb a, nav.breadcrumb a"

// hikeVocabRe recognizes paragraphs that talk about the outing itself
// rather than navigation or chrome.
var hikeVocabRe = regexp.MustCompile(`(?i)description|randonn[ée]e|ascension`)

// errorTextRe filters out error placeholders that the single-page app
// renders into otherwise empty routes.
var errorTextRe = regexp.MustCompile(`(?i)\b(404|erreur|not found|page introuvable)\b`)

// Extract parses the rendered page and returns its content and
// structured metadata.
func (e *Extractor) Extract(rawHTML, pageURL string) (*randoqa.ExtractResult, error) {
	meta := randoqa.Metadata{Features: []string{}}
	if u, err := url.Parse(pageURL); err == nil {
		meta.Path = strings.TrimSuffix(u.Path, "/")
		if meta.Path == "" {
			meta.Path = "/"
		}
	}

	result := &randoqa.ExtractResult{Metadata: meta}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return result, nil
	}

	result.Title = randoqa.CleanTitle(pageTitle(doc))
	result.Metadata.PhotoCount = doc.Find("img").Length()

	if randoqa.IsProjectPath(result.Metadata.Path) {
		e.extractProjects(doc, result)
	} else {
		result.Content = e.extractDescription(doc, rawHTML)
		result.Metadata.IsGalleryPage = result.Metadata.PhotoCount > 0
	}

	e.deriveMetadata(doc, result)
	return result, nil
}

// pageTitle prefers the document title and falls back to the first
// heading, which the app sometimes fills before updating the title tag.
func pageTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// extractDescription locates the outing's prose. It tries the dedicated
// description block, then the first paragraph using hike vocabulary,
// then boilerplate-removal over the whole page, then the raw body text.
func (e *Extractor) extractDescription(doc *goquery.Document, rawHTML string) string {
	if sel := doc.Find(descriptionSelectors).First(); sel.Length() > 0 {
		if blockHTML, err := sel.Html(); err == nil && e.converter != nil {
			if text, err := e.converter.Convert(blockHTML); err == nil && strings.TrimSpace(text) != "" {
				return strings.TrimSpace(text)
			}
		}
		if text := normalizeSpace(sel.Text()); text != "" {
			return text
		}
	}

	var paragraph string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := normalizeSpace(sel.Text())
		if text == "" || !hikeVocabRe.MatchString(text) || errorTextRe.MatchString(text) {
			return true
		}
		paragraph = text
		return false
	})
	if paragraph != "" {
		return paragraph
	}

	if e.text != nil {
		if _, text, err := e.text.ExtractText(rawHTML); err == nil && text != "" {
			return text
		}
	}

	return normalizeSpace(doc.Find("body").Text())
}

// projectCardSelectors locate one planned outing each on the projects
// page.
const projectCardSelectors = ".project-card, .projet, article.project"

// projectDateLineRe recognizes the date line that starts each project
// entry when the page carries no card markup.
var projectDateLineRe = regexp.MustCompile(`^\d{1,2}(?:er)?\s+\p{L}+\s+20\d{2}$`)

// extractProjects scrapes the planned outings and serializes them as
// the page content, so downstream consumers get structure instead of
// prose.
func (e *Extractor) extractProjects(doc *goquery.Document, result *randoqa.ExtractResult) {
	var entries []randoqa.ProjectEntry

	doc.Find(projectCardSelectors).Each(func(_ int, card *goquery.Selection) {
		entry := randoqa.ProjectEntry{
			Title:       normalizeSpace(card.Find(".project-title, h2, h3").First().Text()),
			Date:        normalizeSpace(card.Find(".project-date, .date, time").First().Text()),
			Description: normalizeSpace(card.Find(".project-description, p").First().Text()),
		}
		if src, ok := card.Find("img").First().Attr("src"); ok {
			entry.Image = src
		}
		if entry.Title != "" || entry.Date != "" {
			entries = append(entries, entry)
		}
	})

	if len(entries) == 0 {
		entries = projectsFromText(doc.Find("body").Text())
	}

	result.Metadata.IsProjectPage = true
	result.Metadata.ProjectsCount = len(entries)

	if data, err := json.Marshal(entries); err == nil {
		result.Content = string(data)
	} else {
		result.Content = "[]"
	}
}

// projectsFromText rebuilds project entries from plain text: a date
// line opens an entry, the next line is its title and the one after
// its description.
func projectsFromText(text string) []randoqa.ProjectEntry {
	var entries []randoqa.ProjectEntry
	var current *randoqa.ProjectEntry

	for _, line := range strings.Split(text, "\n") {
		line = normalizeSpace(line)
		if line == "" {
			continue
		}
		if projectDateLineRe.MatchString(line) {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &randoqa.ProjectEntry{Date: line}
			continue
		}
		if current == nil {
			continue
		}
		if current.Title == "" {
			current.Title = line
		} else if current.Description == "" {
			current.Description = line
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// deriveMetadata fills the structured facts from the title, content and
// DOM regions.
func (e *Extractor) deriveMetadata(doc *goquery.Document, result *randoqa.ExtractResult) {
	meta := &result.Metadata
	text := result.Title + "\n" + result.Content

	// Month index pages aggregate a whole month of outings; a single
	// date would misrepresent them.
	if !randoqa.IsMonthIndexPath(meta.Path) {
		if d, ok := randoqa.ParseFrenchDate(text); ok {
			meta.Date = &d
		} else if d, ok := randoqa.ParseDateFromPath(meta.Path); ok {
			meta.Date = &d
		}
	}

	if alt, ok := randoqa.ParseAltitude(result.Title, result.Content); ok {
		meta.Altitude = &alt
	}

	meta.Features = randoqa.TagFeatures(text)

	if loc, ok := randoqa.ParseLocation(text); ok {
		meta.Location = loc
	} else {
		var regions []string
		doc.Find(regionSelectors).Each(func(_ int, sel *goquery.Selection) {
			if r := normalizeSpace(sel.Text()); r != "" {
				regions = append(regions, r)
			}
		})
		if loc, ok := randoqa.LocationFromRegions(regions); ok {
			meta.Location = loc
		}
	}
}

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
