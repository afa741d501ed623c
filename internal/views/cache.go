package views

import "sync"

// InvoiceListingPath keys the cached invoice listing view and doubles as the
// redirect target after create/update.
const InvoiceListingPath = "/dashboard/invoices"

// Invalidator drops the cached rendering of a view. Mutation handlers depend
// on this rather than on the concrete cache.
type Invalidator interface {
	Invalidate(path string)
}

// ViewCache is the full surface the read path needs.
type ViewCache interface {
	Invalidator
	Get(path string) ([]byte, bool)
	Put(path string, payload []byte)
}

// Cache holds rendered view payloads keyed by request path.
type Cache struct {
	entries sync.Map // path -> []byte
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) Get(path string) ([]byte, bool) {
	v, ok := c.entries.Load(path)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

func (c *Cache) Put(path string, payload []byte) {
	c.entries.Store(path, payload)
}

func (c *Cache) Invalidate(path string) {
	c.entries.Delete(path)
}
