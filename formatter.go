package randoqa

import (
	"fmt"
	"strings"
)

// FormatHikeCard renders one page as the uniform answer card used by
// every resolver stage: title, date, altitude, location, description.
// The altitude unit suffix appears only when the value is numeric.
func FormatHikeCard(p *Page) string {
	date := "Date non spécifiée"
	if p.Metadata.Date != nil {
		date = p.Metadata.Date.String()
	}

	altitude := "Non spécifiée"
	if p.Metadata.Altitude != nil {
		altitude = fmt.Sprintf("%dm", *p.Metadata.Altitude)
	}

	location := p.Metadata.Location
	if location == "" {
		location = "Non spécifié"
	}

	description := strings.ReplaceAll(p.Content, "**", "")
	if strings.TrimSpace(description) == "" {
		description = "Pas de description disponible"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**🏔️ %s**\n", p.Title)
	fmt.Fprintf(&b, "📅 %s\n", date)
	fmt.Fprintf(&b, "⛰️ Altitude : %s\n", altitude)
	fmt.Fprintf(&b, "📍 %s\n", location)
	fmt.Fprintf(&b, "📝 Description : %s\n", description)
	return b.String()
}

// FormatHikeCards renders pages as cards separated by blank lines.
func FormatHikeCards(pages []*Page) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, FormatHikeCard(p))
	}
	return strings.Join(parts, "\n")
}
