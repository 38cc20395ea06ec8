package randoqa_test

import (
	"testing"
	"time"

	"github.com/mbonnet/randoqa"
	"github.com/stretchr/testify/assert"
)

func TestParseFrenchDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want randoqa.Date
		ok   bool
	}{
		{
			name: "long date in prose",
			text: "Superbe sortie le 2 février 2025 au départ du village.",
			want: randoqa.Date{Day: 2, Month: "février", Year: 2025},
			ok:   true,
		},
		{
			name: "first of the month with ordinal suffix",
			text: "Randonnée du 1er janvier 2024",
			want: randoqa.Date{Day: 1, Month: "janvier", Year: 2024},
			ok:   true,
		},
		{
			name: "accentless month is normalized",
			text: "15 aout 2023, canicule",
			want: randoqa.Date{Day: 15, Month: "août", Year: 2023},
			ok:   true,
		},
		{
			name: "mixed case",
			text: "Le 28 Septembre 2022",
			want: randoqa.Date{Day: 28, Month: "septembre", Year: 2022},
			ok:   true,
		},
		{
			name: "no date",
			text: "Paysages de montagne et sentiers escarpés.",
			ok:   false,
		},
		{
			name: "day out of range",
			text: "42 janvier 2024",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := randoqa.ParseFrenchDate(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDateFromPath(t *testing.T) {
	t.Parallel()

	got, ok := randoqa.ParseDateFromPath("/2024/3/lac-blanc")
	assert.True(t, ok)
	assert.Equal(t, randoqa.Date{Day: 15, Month: "mars", Year: 2024}, got)

	_, ok = randoqa.ParseDateFromPath("/mountain_flowers")
	assert.False(t, ok)

	_, ok = randoqa.ParseDateFromPath("/2024/13")
	assert.False(t, ok, "month segment out of range")
}

func TestMonthNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, randoqa.MonthNumber("janvier"))
	assert.Equal(t, 2, randoqa.MonthNumber("Février"))
	assert.Equal(t, 8, randoqa.MonthNumber("aout"))
	assert.Equal(t, 12, randoqa.MonthNumber("décembre"))
	assert.Equal(t, 0, randoqa.MonthNumber("brumaire"))
}

func TestDate_Time_SortsChronologically(t *testing.T) {
	t.Parallel()

	earlier := randoqa.Date{Day: 3, Month: "mars", Year: 2025}
	later := randoqa.Date{Day: 12, Month: "juillet", Year: 2025}

	assert.True(t, earlier.Time().Before(later.Time()))
	assert.Equal(t, time.March, earlier.Time().Month())
}

func TestDate_String(t *testing.T) {
	t.Parallel()

	d := randoqa.Date{Day: 2, Month: "février", Year: 2025}
	assert.Equal(t, "2 février 2025", d.String())
}
