package htmltomarkdown_test

import (
	"testing"

	"github.com/mbonnet/randoqa"
	"github.com/mbonnet/randoqa/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Départ matinal sous la brume, arrivée au refuge vers midi.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Départ matinal sous la brume")
	})

	t.Run("converts headings and lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h2>Itinéraire</h2><ul><li>Montée par le vallon</li><li>Descente par la crête</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## Itinéraire")
		assert.Contains(t, md, "- Montée par le vallon")
		assert.Contains(t, md, "- Descente par la crête")
	})

	t.Run("strips markup down to text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<div><span>Altitude :</span> <strong>2352 m</strong></div>`)

		require.NoError(t, err)
		assert.Contains(t, md, "2352 m")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, randoqa.EINVALID, randoqa.ErrorCode(err))
	})
}
