package randoqa

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Feature tags drawn from a fixed vocabulary.
const (
	FeatureLakes    = "lacs"
	FeatureSummits  = "sommets"
	FeatureGlaciers = "glaciers"
)

// titleBoilerplate lists known site suffixes stripped from page titles.
var titleBoilerplate = []string{
	" - Hiking Gallery",
	" | Hiking Gallery",
	" – Hiking Gallery",
	" - Galeries photos",
}

// CleanTitle strips site boilerplate suffixes and surrounding whitespace
// from a raw document title.
func CleanTitle(title string) string {
	t := strings.TrimSpace(title)
	for _, suffix := range titleBoilerplate {
		t = strings.TrimSuffix(t, suffix)
	}
	return strings.TrimSpace(t)
}

// Altitude mentions like "3842 m", "2 500 m" or "4,810m".
var altitudeRe = regexp.MustCompile(`(?i)\b(\d{1,2}[ ,.]\d{3}|\d{3,4})\s*m\b`)

// Plausible mountain altitude band in meters. Raw values outside this
// band never surface as a page altitude.
const (
	MinAltitude = 100
	MaxAltitude = 9000
)

// ParseAltitude scans text for altitude mentions and returns the maximum
// plausible value, preferring the summit figure over incidental mentions.
func ParseAltitude(texts ...string) (int, bool) {
	best := 0
	for _, text := range texts {
		for _, m := range altitudeRe.FindAllStringSubmatch(text, -1) {
			raw := strings.Map(func(r rune) rune {
				if r == ' ' || r == ',' || r == '.' {
					return -1
				}
				return r
			}, m[1])
			v, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			if v < MinAltitude || v > MaxAltitude {
				continue
			}
			if v > best {
				best = v
			}
		}
	}
	if best == 0 {
		return 0, false
	}
	return best, true
}

// featureWords maps vocabulary words to feature tags. Matching is done
// on whole words so that "glacier" never tags a page as "lacs".
var featureWords = map[string]string{
	"lac":      FeatureLakes,
	"étang":    FeatureLakes,
	"sommet":   FeatureSummits,
	"pic":      FeatureSummits,
	"pointe":   FeatureSummits,
	"aiguille": FeatureSummits,
	"cime":     FeatureSummits,
	"glacier":  FeatureGlaciers,
	"sérac":    FeatureGlaciers,
	"névé":     FeatureGlaciers,
}

// TagFeatures returns the sorted set of feature tags whose vocabulary
// appears in the text. A page may carry zero or more tags.
func TagFeatures(text string) []string {
	seen := make(map[string]bool)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		w = strings.TrimSuffix(w, "s")
		if tag, ok := featureWords[w]; ok {
			seen[tag] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Preposition-anchored place phrases, tried in order. Each captures the
// proper-noun phrase following the anchor.
var locationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:dans|vers) (?:la vallée|le vallon|le massif|les gorges|la réserve) (?:de la |de l'|des |du |de |d')([\p{Lu}][\p{L}'’ -]+)`),
	regexp.MustCompile(`au (?:pied|sommet|départ|bord|cœur) (?:de la |de l'|des |du |de |d')([\p{Lu}][\p{L}'’ -]+)`),
	regexp.MustCompile(`(?:près|autour|au-dessus) (?:de la |de l'|des |du |de |d')([\p{Lu}][\p{L}'’ -]+)`),
	regexp.MustCompile(`(?:à|en) ([\p{Lu}][\p{L}'’-]+(?:[ -][\p{Lu}][\p{L}'’-]+)*)`),
}

// Bare capitalized multi-word phrase, the last-resort pattern.
var capitalizedPhraseRe = regexp.MustCompile(`\b([\p{Lu}][\p{Ll}'’-]+(?:[ -][\p{Lu}][\p{Ll}'’-]+)+)\b`)

// locationNoise lists phrases stripped from extracted locations.
var locationNoise = []string{
	"retour aux galeries",
	"retour",
}

// CleanLocation strips navigation noise and stray punctuation from a
// candidate location phrase.
func CleanLocation(loc string) string {
	cleaned := loc
	lower := strings.ToLower(cleaned)
	for _, noise := range locationNoise {
		if idx := strings.Index(lower, noise); idx != -1 {
			cleaned = cleaned[:idx] + cleaned[idx+len(noise):]
			lower = strings.ToLower(cleaned)
		}
	}
	return strings.Trim(cleaned, " \t\n.,;:-")
}

// ParseLocation extracts a place phrase from text using a cascade of
// regex attempts: preposition-anchored patterns first, then a bare
// capitalized-phrase fallback. The first success wins.
func ParseLocation(text string) (string, bool) {
	for _, re := range locationRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if loc := CleanLocation(m[1]); loc != "" {
				return loc, true
			}
		}
	}
	if m := capitalizedPhraseRe.FindStringSubmatch(text); m != nil {
		if loc := CleanLocation(m[1]); loc != "" {
			return loc, true
		}
	}
	return "", false
}

// LocationFromRegions scans auxiliary DOM region texts (footer, nav,
// main) for place phrases, deduplicates them, and returns the first in
// sorted order. Used only when the body text yields nothing.
func LocationFromRegions(regions []string) (string, bool) {
	seen := make(map[string]bool)
	for _, region := range regions {
		for _, m := range capitalizedPhraseRe.FindAllStringSubmatch(region, -1) {
			if loc := CleanLocation(m[1]); loc != "" {
				seen[loc] = true
			}
		}
	}
	if len(seen) == 0 {
		return "", false
	}
	candidates := make([]string, 0, len(seen))
	for loc := range seen {
		candidates = append(candidates, loc)
	}
	sort.Strings(candidates)
	return candidates[0], true
}
