package trafilatura_test

import (
	"testing"

	"github.com/mbonnet/randoqa"
	"github.com/mbonnet/randoqa/htmltomarkdown"
	"github.com/mbonnet/randoqa/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Sortie du 2 février 2025 - Galerie</title></head>
<body>
<nav><a href="/">Accueil</a><a href="/years">Années</a></nav>
<article>
<h1>Lac Blanc</h1>
<p>Magnifique randonnée au lac Blanc, départ de Chamonix, sommet à 2352 m.
La montée traverse plusieurs alpages avant d'atteindre le lac.</p>
</article>
<footer>Retour aux galeries</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor(nil)
		title, text, err := ext.ExtractText(html)

		require.NoError(t, err)
		assert.NotEmpty(t, title)
		assert.Contains(t, text, "lac Blanc")
		assert.NotContains(t, text, "Accueil")
	})

	t.Run("uses converter when configured", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Essai</title></head>
<body>
<article>
<h1>Ascension</h1>
<p>Longue ascension du pic du Midi par la voie normale, avec une vue
imprenable sur toute la chaîne depuis le sommet à 2877 m.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor(htmltomarkdown.NewConverter())
		_, text, err := ext.ExtractText(html)

		require.NoError(t, err)
		assert.Contains(t, text, "ascension du pic du Midi")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor(nil)
		_, _, err := ext.ExtractText("   ")

		require.Error(t, err)
		assert.Equal(t, randoqa.EINVALID, randoqa.ErrorCode(err))
	})
}
