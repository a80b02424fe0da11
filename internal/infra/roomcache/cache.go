package roomcache

import (
	"time"

	"sweethomes-api/internal/domain/room"
	"sweethomes-api/internal/pkg/config"

	"github.com/karlseguin/ccache/v3"
)

const (
	catalogKey   = "rooms:catalog"
	summariesKey = "rooms:summaries"
)

// Cache keeps the upstream room catalog and the derived type summaries in
// process memory so repeated quote and listing calls do not hit the hotel API.
type Cache struct {
	cache *ccache.Cache[any]
	ttl   time.Duration
}

func New(cfg config.CacheConfig) *Cache {
	return &Cache{
		cache: ccache.New(ccache.Configure[any]().MaxSize(cfg.MaxSize)),
		ttl:   cfg.RoomSummaryTTL,
	}
}

func (c *Cache) GetCatalog() ([]room.Record, bool) {
	item := c.cache.Get(catalogKey)
	if item == nil || item.Expired() {
		return nil, false
	}
	records, ok := item.Value().([]room.Record)
	return records, ok
}

func (c *Cache) SetCatalog(records []room.Record) {
	c.cache.Set(catalogKey, records, c.ttl)
}

func (c *Cache) GetSummaries() ([]room.TypeSummary, bool) {
	item := c.cache.Get(summariesKey)
	if item == nil || item.Expired() {
		return nil, false
	}
	summaries, ok := item.Value().([]room.TypeSummary)
	return summaries, ok
}

func (c *Cache) SetSummaries(summaries []room.TypeSummary) {
	c.cache.Set(summariesKey, summaries, c.ttl)
}

// Invalidate drops both entries, forcing the next read to refetch.
func (c *Cache) Invalidate() {
	c.cache.Delete(catalogKey)
	c.cache.Delete(summariesKey)
}
