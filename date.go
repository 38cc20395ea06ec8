package randoqa

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date is a French calendar date as it appears on the site, with the
// month kept as its French name ("janvier".."décembre").
type Date struct {
	Day   int    `json:"day"`
	Month string `json:"month"`
	Year  int    `json:"year"`
}

// frenchMonths maps French month names (and common accentless spellings)
// to month numbers.
var frenchMonths = map[string]int{
	"janvier":   1,
	"février":   2,
	"fevrier":   2,
	"mars":      3,
	"avril":     4,
	"mai":       5,
	"juin":      6,
	"juillet":   7,
	"août":      8,
	"aout":      8,
	"septembre": 9,
	"octobre":   10,
	"novembre":  11,
	"décembre":  12,
	"decembre":  12,
}

// monthNames holds the canonical French month name for each month number.
var monthNames = [13]string{"",
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// MonthNumber returns the 1-based month number for a French month name,
// or 0 if the name is not a French month.
func MonthNumber(name string) int {
	return frenchMonths[strings.ToLower(strings.TrimSpace(name))]
}

// MonthName returns the canonical French name for a month number,
// or "" if n is out of range.
func MonthName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return monthNames[n]
}

// MonthNumber returns the date's 1-based month number, or 0 when the
// month name is unparseable.
func (d Date) MonthNumber() int {
	return MonthNumber(d.Month)
}

// String renders the date the way the site does: "2 février 2025".
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, d.Month, d.Year)
}

// Time converts the date to a time.Time for sorting. Dates with an
// unknown month sort to the start of their year.
func (d Date) Time() time.Time {
	month := d.MonthNumber()
	if month == 0 {
		month = 1
	}
	day := d.Day
	if day == 0 {
		day = 1
	}
	return time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// French long dates like "2 février 2025" or "1er janvier 2024".
var frenchDateRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:er|ère|ere)?\s*(janvier|février|fevrier|mars|avril|mai|juin|juillet|août|aout|septembre|octobre|novembre|décembre|decembre)\s*(\d{4})\b`)

// Year/month pairs embedded in URL paths, e.g. "/2024/3" or "/2024/3/lac-blanc".
var pathDateRe = regexp.MustCompile(`/(20\d{2})/(\d{1,2})(?:/|$)`)

// ParseFrenchDate finds the first French long date in text.
// The month is normalized to its canonical accented spelling.
func ParseFrenchDate(text string) (Date, bool) {
	m := frenchDateRe.FindStringSubmatch(text)
	if m == nil {
		return Date{}, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return Date{}, false
	}
	month := MonthNumber(m[2])
	if month == 0 {
		return Date{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return Date{}, false
	}
	return Date{Day: day, Month: MonthName(month), Year: year}, true
}

// ParseDateFromPath derives a date from a URL path that embeds a year and
// month segment. Only the year and month are known, so the day is assumed
// to be the 15th.
func ParseDateFromPath(path string) (Date, bool) {
	m := pathDateRe.FindStringSubmatch(path)
	if m == nil {
		return Date{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return Date{}, false
	}
	return Date{Day: 15, Month: MonthName(month), Year: year}, true
}
