// Package answer resolves free-text French questions against the
// crawled document store. Specialized intent matchers are tried in
// priority order; only questions nothing structural can answer reach
// the generative model.
package answer

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mbonnet/randoqa"
)

// Apology is the user-facing degradation for any internal failure. The
// query boundary never surfaces a raw error.
const Apology = "Je suis désolé, je ne peux pas répondre à cette question pour le moment."

// Resolver answers questions from the store, treating it as read-only.
// The generator is optional; without it unresolved questions get the
// apology.
type Resolver struct {
	store     *randoqa.Store
	generator randoqa.Generator
	logger    *slog.Logger
	now       func() time.Time
	rules     []rule
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNow overrides the clock used by the time-of-day intent.
func WithNow(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store *randoqa.Store, generator randoqa.Generator, logger *slog.Logger, opts ...Option) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Resolver{
		store:     store,
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.rules = []rule{
		{name: "pages", match: matchPageCount, handle: r.answerPageCount},
		{name: "projects", match: matchProjects, handle: r.answerProjects},
		{name: "altitude", match: matchAltitude, handle: r.answerAltitude},
		{name: "outings", match: matchOutings, handle: r.answerOutings},
		{name: "time", match: matchTime, handle: r.answerTime},
		{name: "canned", match: matchCanned, handle: r.answerCanned},
		{name: "keywords", match: matchAnything, handle: r.answerKeywords},
	}
	return r
}

// rule couples an intent predicate with its handler. Handlers return
// ok=false to fall through to the next rule.
type rule struct {
	name   string
	match  func(query string) bool
	handle func(query string) (answer string, ok bool)
}

// Answer resolves the question. Structural intents are tried in order;
// when none produces an answer the generative fallback is consulted.
// Failures degrade to a polite French sentence, never an error.
func (r *Resolver) Answer(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return Apology
	}

	for _, rule := range r.rules {
		if !rule.match(query) {
			continue
		}
		if answer, ok := rule.handle(query); ok {
			r.logger.Info("question resolved",
				slog.String("rule", rule.name),
				slog.String("query", query))
			return answer
		}
	}

	return r.generate(ctx, query)
}

// Intent patterns, mirroring the site's historical question phrasing.
var (
	pagesRe    = regexp.MustCompile(`(?i)combien.*pages|nombre.*pages`)
	projectRe  = regexp.MustCompile(`(?i)\b(projets?|futures?|prévues?)\b`)
	countRe    = regexp.MustCompile(`(?i)\b(combien|nombre)\b`)
	outingRe   = regexp.MustCompile(`(?i)\b(sorties?|randonn[ée]es?)\b`)
	yearRe     = regexp.MustCompile(`\b(20\d{2})\b`)
	monthRe    = regexp.MustCompile(`(?i)\b(janvier|février|fevrier|mars|avril|mai|juin|juillet|août|aout|septembre|octobre|novembre|décembre|decembre)\b`)
	timeRe     = regexp.MustCompile(`(?i)quelle\s+heure`)
	altitudeRe = regexp.MustCompile(`(?i)(?:sorties?|randonn[ée]es?)\s*(?:à|au dessus de|au-dessus de|à plus de)\s+(\d{1,2}[ ,.]\d{3}|\d{3,4})\s*m`)

	// hikingVocabRe gates the canned non-hiking answers: a question
	// using hiking vocabulary never gets one.
	hikingVocabRe = regexp.MustCompile(`(?i)\b(sorties?|randonn[ée]es?|montagnes?|sommets?|lacs?|glaciers?|altitude|photos?|galeries?)\b`)
)

func matchPageCount(query string) bool { return pagesRe.MatchString(query) }
func matchProjects(query string) bool  { return projectRe.MatchString(query) }
func matchAltitude(query string) bool  { return altitudeRe.MatchString(query) }
func matchTime(query string) bool      { return timeRe.MatchString(query) }
func matchAnything(string) bool        { return true }

func matchOutings(query string) bool {
	return outingRe.MatchString(query) && yearRe.MatchString(query)
}

func matchCanned(query string) bool {
	if hikingVocabRe.MatchString(query) {
		return false
	}
	for _, c := range cannedAnswers {
		if c.re.MatchString(query) {
			return true
		}
	}
	return false
}

func (r *Resolver) answerPageCount(string) (string, bool) {
	stats := r.store.SiteStats
	return fmt.Sprintf("Le site contient %d pages au total, dont %d pages thématiques.",
		stats.TotalPages, stats.ThematicPages), true
}

func (r *Resolver) answerProjects(query string) (string, bool) {
	page := r.store.ProjectsPage()
	if page == nil {
		return "Je n'ai pas trouvé de projets.", true
	}
	entries, err := randoqa.ParseProjectEntries(page.Content)
	if err != nil || len(entries) == 0 {
		return "Je n'ai pas trouvé de projets.", true
	}

	sortProjectsByDate(entries)
	year := projectsYear(entries)

	if countRe.MatchString(query) {
		return fmt.Sprintf("Il y a %d projets prévus pour %d.", len(entries), year), true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Il y a actuellement %d projets prévus pour %d :\n\n", len(entries), year)
	for _, entry := range entries {
		fmt.Fprintf(&b, "📅 %s\n", entry.Date)
		fmt.Fprintf(&b, "📍 **%s**\n", entry.Title)
		if entry.Description != "" {
			fmt.Fprintf(&b, "📝 %s\n", entry.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), true
}

// sortProjectsByDate orders entries by parsed date ascending;
// unparseable dates sink to the end in their original order.
func sortProjectsByDate(entries []randoqa.ProjectEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, iok := randoqa.ParseFrenchDate(entries[i].Date)
		dj, jok := randoqa.ParseFrenchDate(entries[j].Date)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return di.Time().Before(dj.Time())
	})
}

// projectsYear returns the first parseable year among the entries,
// falling back to the current year.
func projectsYear(entries []randoqa.ProjectEntry) int {
	for _, entry := range entries {
		if d, ok := randoqa.ParseFrenchDate(entry.Date); ok {
			return d.Year
		}
		if m := yearRe.FindStringSubmatch(entry.Date); m != nil {
			if y, err := strconv.Atoi(m[1]); err == nil {
				return y
			}
		}
	}
	return time.Now().Year()
}

func (r *Resolver) answerAltitude(query string) (string, bool) {
	m := altitudeRe.FindStringSubmatch(query)
	raw := strings.Map(func(c rune) rune {
		if c == ' ' || c == ',' || c == '.' {
			return -1
		}
		return c
	}, m[1])
	threshold, err := strconv.Atoi(raw)
	if err != nil {
		return "", false
	}

	results := randoqa.SearchHikes(r.store, randoqa.HikeCriteria{MinAltitude: &threshold})
	if len(results) == 0 {
		return fmt.Sprintf("Aucune sortie trouvée au-dessus de %dm.", threshold), true
	}
	if countRe.MatchString(query) {
		return fmt.Sprintf("Il y a %d sortie%s à plus de %dm.", len(results), plural(len(results)), threshold), true
	}
	return fmt.Sprintf("🏔️ Sorties à plus de %dm :\n\n%s", threshold, randoqa.FormatHikeCards(results)), true
}

func (r *Resolver) answerOutings(query string) (string, bool) {
	year, _ := strconv.Atoi(yearRe.FindStringSubmatch(query)[1])

	month := 0
	monthName := ""
	if m := monthRe.FindStringSubmatch(query); m != nil {
		month = randoqa.MonthNumber(m[1])
		monthName = randoqa.MonthName(month)
	}

	if countRe.MatchString(query) {
		var count int
		var scope string
		if month != 0 {
			count = r.store.SiteStats.OutingsByMonth[year][month]
			scope = fmt.Sprintf("en %s %d", monthName, year)
		} else {
			count = r.store.SiteStats.OutingsByYear[year]
			scope = fmt.Sprintf("en %d", year)
		}
		return fmt.Sprintf("Il y a %d sortie%s %s.", count, plural(count), scope), true
	}

	var matches []*randoqa.Page
	for _, p := range r.store.Pages {
		d := p.Metadata.Date
		if d == nil || d.Year != year {
			continue
		}
		if month != 0 && d.MonthNumber() != month {
			continue
		}
		matches = append(matches, p)
	}

	scope := strconv.Itoa(year)
	if month != 0 {
		scope = monthName + " " + strconv.Itoa(year)
	}
	if len(matches) == 0 {
		return fmt.Sprintf("Aucune sortie trouvée pour %s.", scope), true
	}
	return fmt.Sprintf("Voici les sorties pour %s :\n\n%s", scope, randoqa.FormatHikeCards(matches)), true
}

func (r *Resolver) answerTime(string) (string, bool) {
	now := r.now()
	return fmt.Sprintf("Il est %dh%02d.", now.Hour(), now.Minute()), true
}

// cannedAnswers is the tiny fixed table of non-hiking factual answers.
var cannedAnswers = []struct {
	re     *regexp.Regexp
	answer string
}{
	{
		re:     regexp.MustCompile(`(?i)qui\s+est\s+thomas\s+pesquet`),
		answer: "Thomas Pesquet est un astronaute français de l'Agence spatiale européenne, célèbre pour ses missions à bord de la Station spatiale internationale.",
	},
	{
		re:     regexp.MustCompile(`(?i)qui\s+est\s+marie\s+curie`),
		answer: "Marie Curie était une physicienne et chimiste française d'origine polonaise, double lauréate du prix Nobel pour ses travaux sur la radioactivité.",
	},
}

func (r *Resolver) answerCanned(query string) (string, bool) {
	for _, c := range cannedAnswers {
		if c.re.MatchString(query) {
			return c.answer, true
		}
	}
	return "", false
}

func (r *Resolver) answerKeywords(query string) (string, bool) {
	matches := r.findHikesByKeywords(query)
	if len(matches) == 0 {
		return "", false
	}
	return "Voici les sorties correspondant à votre recherche :\n\n" + randoqa.FormatHikeCards(matches), true
}

// generate delegates to the hosted model; any failure degrades to the
// apology.
func (r *Resolver) generate(ctx context.Context, query string) string {
	if r.generator == nil {
		return Apology
	}

	prompt := fmt.Sprintf("Question : %s\n\nRappel : Ta réponse doit être EXCLUSIVEMENT en français.", query)
	text, err := r.generator.Generate(ctx, prompt, randoqa.GenerateParams{
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		r.logger.Warn("generative fallback failed",
			slog.String("query", query),
			slog.String("error", randoqa.ErrorMessage(err)))
		return Apology
	}
	return strings.TrimSpace(text)
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
