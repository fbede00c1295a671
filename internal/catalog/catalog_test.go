package catalog

import (
	"testing"

	"github.com/kmatsu/story-checker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	categories := cat.Categories()
	require.Len(t, categories, 6)

	// Categories come back in priority order, highest first.
	for i := 1; i < len(categories); i++ {
		assert.Less(t, categories[i-1].Priority, categories[i].Priority)
	}
	assert.Equal(t, "FULL_TEXT_RHETORIC", categories[0].ID)
	assert.Equal(t, types.ScopeFullDocument, categories[0].Scope)
	assert.Equal(t, "DETAIL_RHETORIC", categories[5].ID)
	assert.Equal(t, types.ScopeStoryAndBody, categories[5].Scope)
}

func TestLoad_CriteriaCrossReferences(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for _, category := range cat.Categories() {
		criteria := cat.Criteria(category)
		require.Len(t, criteria, len(category.CriteriaIDs), "category %s", category.ID)
		for _, crit := range criteria {
			assert.Equal(t, category.ID, crit.CategoryID)
			assert.NotEmpty(t, crit.Description)
		}
	}
}

func TestLoad_ExplicitWeightsRenormalize(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	category, ok := cat.Category("SUMMARY_LOGIC_FLOW")
	require.True(t, ok)

	// Explicit weights need not sum to 1; the aggregator renormalizes.
	assert.Equal(t, 8.0, category.Weight("前回の振り返りの有無"))
	assert.Equal(t, 7.0, category.Weight("転換の接続詞の重複利用"))
}

func TestCriterion_Lookup(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	crit, ok := cat.Criterion("SCQA有無")
	require.True(t, ok)
	assert.Equal(t, "SUMMARY_LOGIC_FLOW", crit.CategoryID)

	_, ok = cat.Criterion("存在しない基準")
	assert.False(t, ok)
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	first, err := Default()
	require.NoError(t, err)
	second, err := Default()
	require.NoError(t, err)

	assert.Same(t, first, second)
}
