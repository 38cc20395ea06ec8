package answer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbonnet/randoqa"
	"github.com/mbonnet/randoqa/answer"
)

func TestResolver_SearchContent(t *testing.T) {
	t.Parallel()

	t.Run("TitleMatchesOutrankContentMatches", func(t *testing.T) {
		t.Parallel()
		store := randoqa.NewStore()
		store.Pages = []*randoqa.Page{
			galleryPage("/2024/6", "Traversée sous le glacier", "Longue journée sur la moraine du glacier.", date(8, "juin", 2024), nil, ""),
			galleryPage("/2024/7", "Tour des Écrins", "Vue sur le glacier Blanc et le glacier Noir.", date(14, "juillet", 2024), nil, ""),
		}
		r := answer.NewResolver(store, nil, discardLogger())

		results := r.SearchContent("glacier")
		require.Len(t, results, 2)
		assert.Equal(t, "Traversée sous le glacier", results[0].Title)
		assert.Equal(t, 3, results[0].Score)
		assert.Equal(t, 2, results[1].Score)
	})

	t.Run("CapsResults", func(t *testing.T) {
		t.Parallel()
		store := randoqa.NewStore()
		for i := 0; i < 8; i++ {
			store.Pages = append(store.Pages,
				galleryPage(fmt.Sprintf("/2024/%d", i), "Sommet du jour", "Encore un sommet.", date(1, "mai", 2024), nil, ""))
		}
		r := answer.NewResolver(store, nil, discardLogger())

		results := r.SearchContent("sommet")
		assert.Len(t, results, 5)
	})

	t.Run("NoMatchReturnsEmptySlice", func(t *testing.T) {
		t.Parallel()
		r := answer.NewResolver(newTestStore(), nil, discardLogger())

		results := r.SearchContent("parapente")
		require.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("StopwordOnlyQueryReturnsEmptySlice", func(t *testing.T) {
		t.Parallel()
		r := answer.NewResolver(newTestStore(), nil, discardLogger())

		results := r.SearchContent("combien de les des")
		require.NotNil(t, results)
		assert.Empty(t, results)
	})
}
