package service

import (
	"sync"

	"github.com/MKhiriev/sealed-vitae/models"
)

// bundleCache holds the last successfully loaded bundle and public record.
// Readers get the slice itself; it is replaced, never mutated.
type bundleCache struct {
	mu     sync.RWMutex
	bundle []string
	public models.Record
	loaded bool
}

func (c *bundleCache) get() ([]string, models.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.bundle, c.public, c.loaded
}

func (c *bundleCache) set(bundle []string, public models.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bundle = bundle
	c.public = public
	c.loaded = true
}

func (c *bundleCache) publicRecord() models.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.public
}
