package category_cache

import (
	"sync"
	"time"

	"github.com/BassamElsayed2/e-commerceCp/models"
)

const TTL = 5 * time.Minute

// ── Category list cache ──────────────────────────────────────────────────────
// The category set is tiny and changes rarely; every product form load reads
// it, so it is served from memory between writes.

type listEntry struct {
	categories    []models.Category
	productCounts map[string]int
	fetchedAt     time.Time
}

var (
	listMu    sync.RWMutex
	listCache *listEntry
)

func GetList() (categories []models.Category, productCounts map[string]int, ok bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache != nil && time.Since(listCache.fetchedAt) < TTL {
		return listCache.categories, listCache.productCounts, true
	}
	return nil, nil, false
}

func SetList(categories []models.Category, productCounts map[string]int) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache = &listEntry{
		categories:    categories,
		productCounts: productCounts,
		fetchedAt:     time.Now(),
	}
}

// ── Invalidate (call on any category create/update/delete) ───────────────────

func Invalidate() {
	listMu.Lock()
	listCache = nil
	listMu.Unlock()
}
