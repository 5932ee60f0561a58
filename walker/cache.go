package walker

import (
	"fmt"

	"github.com/hashicorp/golang-lru/simplelru"

	"github.com/dhamidi/introspect/element"
)

// DefaultCacheSize is the default bound of the conversion cache.
const DefaultCacheSize = 200

type cacheKey struct {
	kind element.Kind
	node element.Node
}

// conversionCache maps (requested kind, native node) to typed elements.
// Entries are evicted in insertion order; lookups go through Peek so reads
// never refresh an entry.
type conversionCache struct {
	entries   *simplelru.LRU
	evictions int
}

func newConversionCache(size int) (*conversionCache, error) {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		return nil, fmt.Errorf("create conversion cache: %w", err)
	}
	return &conversionCache{entries: lru}, nil
}

func (c *conversionCache) get(kind element.Kind, node element.Node) (element.Element, bool) {
	v, ok := c.entries.Peek(cacheKey{kind: kind, node: node})
	if !ok {
		return nil, false
	}
	return v.(element.Element), true
}

// put reports whether the oldest entry was evicted to make room.
func (c *conversionCache) put(kind element.Kind, node element.Node, el element.Element) bool {
	evicted := c.entries.Add(cacheKey{kind: kind, node: node}, el)
	if evicted {
		c.evictions++
	}
	return evicted
}

func (c *conversionCache) remove(kind element.Kind, node element.Node) {
	c.entries.Remove(cacheKey{kind: kind, node: node})
}

func (c *conversionCache) len() int {
	return c.entries.Len()
}
