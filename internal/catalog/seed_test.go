package catalog

import (
	"testing"

	"modernstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsWellFormed(t *testing.T) {
	products := Seed()
	require.Len(t, products, 32)

	ids := make(map[string]bool, len(products))
	for _, p := range products {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.ReviewCount, 0)
		assert.NotEmpty(t, p.Category)
	}
}

func TestSeedReturnsFreshSlice(t *testing.T) {
	first := Seed()
	first[0].Name = "mutated"

	second := Seed()
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestCategories(t *testing.T) {
	categories := Categories(Seed())
	assert.Equal(t, []string{domain.CategoryAll, "electronics", "clothing", "accessories", "home"}, categories)
}
