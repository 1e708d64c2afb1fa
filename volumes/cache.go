// SPDX-License-Identifier: MIT
package volumes

import (
	"sync"

	"github.com/arborgen/treesupport/geom"
	"github.com/golang/groupcache/lru"
	"github.com/im7mortal/kmutex"
	"golang.org/x/sync/singleflight"
)

// fieldCache memoizes one field kind's polygons, keyed by key. It mirrors
// core.Graph's per-concern sync.RWMutex split: values and the eviction
// list are guarded by mu, while per-key fill coalescing goes through group
// so concurrent requests for the same key share one computation and
// distinct keys proceed independently (spec.md §5).
type fieldCache struct {
	mu     sync.RWMutex
	values map[key]geom.Polygons
	lru    *lru.Cache
	pins   map[key]int

	group  singleflight.Group
	pinMtx *kmutex.Kmutex
}

func newFieldCache(maxEntries int) *fieldCache {
	fc := &fieldCache{
		values: make(map[key]geom.Polygons),
		pins:   make(map[key]int),
		pinMtx: kmutex.New(),
	}
	fc.lru = lru.New(maxEntries)
	fc.lru.OnEvicted = func(k lru.Key, _ interface{}) {
		// Runs inside fc.lru.Add, which get only calls with mu already
		// held for writing, so mu is not taken again here.
		kk := k.(key)
		if fc.pins[kk] == 0 {
			delete(fc.values, kk)
		} else {
			// Still referenced by a live element; re-insert so the next
			// touch keeps it warm instead of silently losing it.
			fc.lru.Add(kk, struct{}{})
		}
	}

	return fc
}

// get returns the cached value for k, computing it via fill on a miss.
// Concurrent calls with the same k share one fill (singleflight); calls
// with different keys run fill concurrently.
func (fc *fieldCache) get(k key, fill func() (geom.Polygons, error)) (geom.Polygons, error) {
	fc.mu.RLock()
	if v, ok := fc.values[k]; ok {
		fc.mu.RUnlock()
		return v, nil
	}
	fc.mu.RUnlock()

	v, err, _ := fc.group.Do(k.String(), func() (interface{}, error) {
		fc.mu.RLock()
		if cached, ok := fc.values[k]; ok {
			fc.mu.RUnlock()
			return cached, nil
		}
		fc.mu.RUnlock()

		computed, ferr := fill()
		if ferr != nil {
			return nil, ferr
		}

		fc.mu.Lock()
		fc.values[k] = computed
		fc.lru.Add(k, struct{}{})
		fc.mu.Unlock()

		return computed, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(geom.Polygons), nil
}

// reference pins k so LRU eviction skips it until a matching release.
// pinMtx serializes pin updates per key; the pin count itself is updated
// under the whole-cache mu, held only for that increment (spec.md §5:
// "entries never evicted mid-run if any element still references them").
func (fc *fieldCache) reference(k key) {
	fc.pinMtx.Lock(k.String())
	defer func() { _ = fc.pinMtx.Unlock(k.String()) }()

	fc.mu.Lock()
	fc.pins[k]++
	fc.mu.Unlock()
}

// release undoes one reference. Safe to call more times than reference
// was called; the pin count never goes negative.
func (fc *fieldCache) release(k key) {
	fc.pinMtx.Lock(k.String())
	defer func() { _ = fc.pinMtx.Unlock(k.String()) }()

	fc.mu.Lock()
	if fc.pins[k] > 0 {
		fc.pins[k]--
	}
	if fc.pins[k] == 0 {
		delete(fc.pins, k)
	}
	fc.mu.Unlock()
}
