package openaddr

import (
	"fmt"
	"math"
	"strings"

	"github.com/armon/go-metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scottcagno/hashmap/pkg/hash"
)

// ErrKeyNotFound is returned by Get and Del when no live bucket holds the key
var ErrKeyNotFound = errors.New("openaddr: key not found")

var (
	resizeKey   = []string{"hashmap", "resize"}
	capacityKey = []string{"hashmap", "capacity"}
)

// bucket represents a single slot in the Map table. A bucket that has
// never been written is not used; a deleted bucket is a tombstone that
// keeps its key so probe sequences running through it stay intact.
type bucket[V any] struct {
	used    bool
	deleted bool
	key     string
	val     V
}

// live reports whether the bucket holds a visible entry
func (b *bucket[V]) live() bool {
	return b.used && !b.deleted
}

// Map is an open addressing hash table with linear probing. Deleted
// entries are tombstoned and only reclaimed when the table is rebuilt
// on growth. A Map is not safe for concurrent use.
type Map[V any] struct {
	hash    hash.Func
	ratio   float64 // max load ratio
	growth  float64 // growth factor
	keys    int     // live entries
	deleted int     // tombstones
	buckets []bucket[V]
	log     *zap.Logger
	metrics *metrics.Metrics
}

// New returns a new Map configured by conf. A nil conf uses the
// defaults: capacity 8, max load ratio 0.5, growth factor 3, djb2.
func New[V any](conf *MapConfig) *Map[V] {
	conf = checkMapConfig(conf)
	return &Map[V]{
		hash:    conf.HashFunc,
		ratio:   conf.MaxLoadRatio,
		growth:  conf.GrowthFactor,
		buckets: make([]bucket[V], conf.InitialCapacity),
		log:     conf.Logger,
		metrics: conf.Metrics,
	}
}

// NewWithCapacity is shorthand for New with the three tunables set
func NewWithCapacity[V any](initialCapacity int, maxLoadRatio, growthFactor float64) *Map[V] {
	return New[V](&MapConfig{
		InitialCapacity: initialCapacity,
		MaxLoadRatio:    maxLoadRatio,
		GrowthFactor:    growthFactor,
	})
}

// lazyInit makes the zero value usable
func (m *Map[V]) lazyInit() {
	if len(m.buckets) == 0 {
		*m = *New[V](nil)
	}
}

func keyNotFound(key string) error {
	return errors.Wrapf(ErrKeyNotFound, "%q", key)
}

// findSlot probes linearly from the key's home bucket and returns the
// first bucket that is either unused or live with a matching key.
// Tombstones are stepped over even when their key matches. It returns
// false after a full sweep without a match.
func (m *Map[V]) findSlot(key string) (int, bool) {
	n := len(m.buckets)
	start := int(uint64(m.hash(key)) % uint64(n))
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		b := &m.buckets[idx]
		if !b.used || (!b.deleted && b.key == key) {
			return idx, true
		}
	}
	return 0, false
}

// Get returns the value stored for key. The error wraps ErrKeyNotFound
// when the key is absent or has been deleted.
func (m *Map[V]) Get(key string) (V, error) {
	var zero V
	if len(m.buckets) == 0 {
		return zero, keyNotFound(key)
	}
	i, ok := m.findSlot(key)
	if !ok || !m.buckets[i].used {
		return zero, keyNotFound(key)
	}
	return m.buckets[i].val, nil
}

// Has reports whether key is present
func (m *Map[V]) Has(key string) bool {
	_, err := m.Get(key)
	return err == nil
}

// Set inserts or overwrites the value for key. When the insertion could
// push the load ratio past its maximum the table is grown first.
func (m *Map[V]) Set(key string, val V) {
	m.lazyInit()
	if m.overloaded(m.keys+m.deleted+1, len(m.buckets)) {
		m.grow()
	}
	i, ok := m.findSlot(key)
	if !ok {
		// no unused bucket left; only reachable with a corrupted load ratio
		m.log.Debug("forced resize", zap.String("key", key), zap.Int("cap", len(m.buckets)))
		m.resize(m.nextCapacity(len(m.buckets)))
		i, _ = m.findSlot(key)
	}
	m.put(i, key, val)
}

// put writes the entry into bucket i
func (m *Map[V]) put(i int, key string, val V) {
	if !m.buckets[i].used {
		m.keys++
	}
	m.buckets[i] = bucket[V]{used: true, key: key, val: val}
}

// Del tombstones the entry for key. The error wraps ErrKeyNotFound when
// there is nothing to delete.
func (m *Map[V]) Del(key string) error {
	if len(m.buckets) == 0 {
		return keyNotFound(key)
	}
	i, ok := m.findSlot(key)
	if !ok || !m.buckets[i].used {
		return keyNotFound(key)
	}
	var zero V
	m.buckets[i].deleted = true
	m.buckets[i].val = zero
	m.keys--
	m.deleted++
	return nil
}

func (m *Map[V]) overloaded(used, capacity int) bool {
	return float64(used)/float64(capacity) > m.ratio
}

func (m *Map[V]) nextCapacity(capacity int) int {
	next := int(math.Ceil(float64(capacity) * m.growth))
	if next <= capacity {
		next = capacity + 1
	}
	return next
}

// grow picks a capacity large enough that the pending insertion fits
// under the max load ratio once tombstones are dropped, then rebuilds
func (m *Map[V]) grow() {
	capacity := m.nextCapacity(len(m.buckets))
	for m.overloaded(m.keys+1, capacity) {
		capacity = m.nextCapacity(capacity)
	}
	m.resize(capacity)
}

// resize makes a new table with the given capacity and reinserts every
// live entry. Tombstones are not carried over.
func (m *Map[V]) resize(capacity int) {
	old := m.buckets
	oldCap, dropped := len(old), m.deleted
	m.buckets = make([]bucket[V], capacity)
	m.keys, m.deleted = 0, 0
	for i := range old {
		if !old[i].live() {
			continue
		}
		j, _ := m.findSlot(old[i].key)
		m.put(j, old[i].key, old[i].val)
	}
	m.log.Debug("resized",
		zap.Int("old_cap", oldCap),
		zap.Int("new_cap", capacity),
		zap.Int("live", m.keys),
		zap.Int("dropped_tombstones", dropped))
	if m.metrics != nil {
		m.metrics.IncrCounter(resizeKey, 1)
		m.metrics.SetGauge(capacityKey, float32(capacity))
	}
}

// Iterator is an iterator function type
type Iterator[V any] func(key string, val V) bool

// Range calls it for every live entry in table order for as long as it
// returns true. Set and Del must not be called from inside it.
func (m *Map[V]) Range(it Iterator[V]) {
	for i := range m.buckets {
		if !m.buckets[i].live() {
			continue
		}
		if !it(m.buckets[i].key, m.buckets[i].val) {
			return
		}
	}
}

// Len returns the number of live entries
func (m *Map[V]) Len() int {
	return m.keys
}

// Cap returns the current number of buckets
func (m *Map[V]) Cap() int {
	return len(m.buckets)
}

// Tombstones returns the number of deleted entries still occupying buckets
func (m *Map[V]) Tombstones() int {
	return m.deleted
}

// LoadRatio returns the fraction of buckets holding live entries or tombstones
func (m *Map[V]) LoadRatio() float64 {
	if len(m.buckets) == 0 {
		return 0
	}
	return float64(m.keys+m.deleted) / float64(len(m.buckets))
}

// LongestProbe returns the largest distance any live entry sits from
// its home bucket. Zero means every entry is in its home bucket.
func (m *Map[V]) LongestProbe() int {
	n := len(m.buckets)
	var longest int
	for i := range m.buckets {
		if !m.buckets[i].live() {
			continue
		}
		home := int(uint64(m.hash(m.buckets[i].key)) % uint64(n))
		if dist := (i - home + n) % n; dist > longest {
			longest = dist
		}
	}
	return longest
}

// String renders the live entries in table order, e.g. map[Elf:Legolas Ent:Treebeard]
func (m *Map[V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	m.Range(func(key string, val V) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%s:%v", key, val)
		return true
	})
	sb.WriteString("]")
	return sb.String()
}
