package answer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mbonnet/randoqa"
)

// maxSearchResults caps ranked full-text results.
const maxSearchResults = 5

// SearchResult is one ranked full-text hit.
type SearchResult struct {
	URL     string
	Title   string
	Content string
	Score   int
}

// capitalizedPhraseRe captures runs of capitalized words, the usual
// shape of place names in the questions ("Lac Blanc", "Mont Thabor").
var capitalizedPhraseRe = regexp.MustCompile(`\p{Lu}[\p{Ll}'’-]+(?:\s+\p{Lu}[\p{Ll}'’-]+)*`)

// stopwords are question scaffolding, never search terms.
var stopwords = map[string]bool{
	"les": true, "des": true, "une": true, "est": true, "sur": true,
	"sont": true, "avec": true, "pour": true, "dans": true, "que": true,
	"qui": true, "quel": true, "quels": true, "quelle": true, "quelles": true,
	"vous": true, "nous": true, "moi": true, "toi": true, "elle": true,
	"combien": true, "nombre": true, "comment": true, "quand": true,
	"sortie": true, "sorties": true, "randonnée": true, "randonnées": true,
	"randonnee": true, "randonnees": true, "raconte": true, "parle": true,
	"donne": true, "montre": true, "voir": true, "site": true,
}

// findHikesByKeywords extracts search terms from the query and returns
// pages whose title or content mentions any of them, deduplicated in
// first-match order.
func (r *Resolver) findHikesByKeywords(query string) []*randoqa.Page {
	keywords := extractKeywords(query)
	if len(keywords) == 0 {
		return nil
	}

	var matches []*randoqa.Page
	seen := make(map[string]bool)
	for _, kw := range keywords {
		for _, p := range r.store.Pages {
			if seen[p.URL] || !p.Metadata.IsGalleryPage {
				continue
			}
			if containsFold(p.Title, kw) || containsFold(p.Content, kw) {
				seen[p.URL] = true
				matches = append(matches, p)
			}
		}
	}
	return matches
}

// extractKeywords returns capitalized phrases first, then remaining
// lowercase words of three letters or more that are not stopwords.
func extractKeywords(query string) []string {
	var keywords []string
	seen := make(map[string]bool)

	for _, phrase := range capitalizedPhraseRe.FindAllString(query, -1) {
		key := strings.ToLower(phrase)
		if stopwords[key] || seen[key] {
			continue
		}
		seen[key] = true
		keywords = append(keywords, phrase)
	}

	for _, word := range strings.FieldsFunc(query, isWordBoundary) {
		lower := strings.ToLower(word)
		if len([]rune(lower)) < 3 || stopwords[lower] || seen[lower] {
			continue
		}
		seen[lower] = true
		keywords = append(keywords, word)
	}
	return keywords
}

func isWordBoundary(c rune) bool {
	switch c {
	case ' ', '\t', '\n', ',', '.', ';', ':', '!', '?', '(', ')', '"', '«', '»', '\'', '’', '-':
		return true
	}
	return false
}

// SearchContent ranks pages against the query by term frequency, with
// title occurrences weighted double. An empty result means nothing in
// the store is relevant; callers decide how to degrade.
func (r *Resolver) SearchContent(query string) []SearchResult {
	terms := extractKeywords(query)
	if len(terms) == 0 {
		return []SearchResult{}
	}

	var results []SearchResult
	for _, p := range r.store.Pages {
		score := 0
		title := strings.ToLower(p.Title)
		content := strings.ToLower(p.Content)
		for _, term := range terms {
			t := strings.ToLower(term)
			score += strings.Count(content, t) + 2*strings.Count(title, t)
		}
		if score > 0 {
			results = append(results, SearchResult{
				URL:     p.URL,
				Title:   p.Title,
				Content: p.Content,
				Score:   score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
