package category_cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BassamElsayed2/e-commerceCp/models"
)

func TestListCache_SetGetInvalidate(t *testing.T) {
	Invalidate()

	_, _, ok := GetList()
	assert.False(t, ok, "empty cache must miss")

	categories := []models.Category{{NameAr: "أحذية", NameEn: "Shoes"}}
	counts := map[string]int{"some-id": 3}
	SetList(categories, counts)

	gotCategories, gotCounts, ok := GetList()
	require.True(t, ok)
	assert.Equal(t, categories, gotCategories)
	assert.Equal(t, counts, gotCounts)

	Invalidate()
	_, _, ok = GetList()
	assert.False(t, ok, "invalidated cache must miss")
}

func TestListCache_Expiry(t *testing.T) {
	Invalidate()
	SetList([]models.Category{{NameAr: "أحذية"}}, nil)

	listMu.Lock()
	listCache.fetchedAt = time.Now().Add(-TTL - time.Second)
	listMu.Unlock()

	_, _, ok := GetList()
	assert.False(t, ok, "expired entry must miss")

	Invalidate()
}
