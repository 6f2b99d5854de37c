package art

import (
	"github.com/corvidlabs/art/internal/arena"
	"github.com/corvidlabs/art/internal/arttree"
	"github.com/corvidlabs/art/keys"
)

// Tree maps keys of type K to values of type V using an adaptive radix
// tree. The zero value is not usable; construct one with New.
type Tree[K keys.Keyer, V any] struct {
	engine *arttree.Tree[V]
}

// New returns an empty Tree, configured by the given options.
func New[K keys.Keyer, V any](opts ...Option) *Tree[K, V] {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	a := cfg.allocator
	if cfg.initialCapacity > 0 {
		if sized, ok := a.(interface{ Reserve(int) }); ok {
			sized.Reserve(cfg.initialCapacity)
		}
	}

	return &Tree[K, V]{engine: arttree.New[V](a)}
}

// Get returns the value stored under key, if any.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	return t.engine.Get(key.Bytes())
}

// GetPtr returns a pointer to the value stored under key, or nil if key
// is absent. The pointer is invalidated by a later Remove of key.
func (t *Tree[K, V]) GetPtr(key K) *V {
	return t.engine.GetPtr(key.Bytes())
}

// GetKeyValue reports whether key is present alongside its value. Keyer
// exposes no inverse of Bytes, so the key returned on a hit is simply the
// query itself; this exists for symmetry with Get/Insert/Remove and for
// callers that want the pair in one call.
func (t *Tree[K, V]) GetKeyValue(key K) (K, V, bool) {
	v, ok := t.engine.Get(key.Bytes())
	if !ok {
		var zero K
		return zero, v, false
	}

	return key, v, true
}

// Insert associates key with value, returning the previous value and true
// if key was already present.
func (t *Tree[K, V]) Insert(key K, value V) (old V, replaced bool) {
	return t.engine.Insert(key.Bytes(), value)
}

// Remove deletes key, returning its value and true if it was present.
func (t *Tree[K, V]) Remove(key K) (removed V, found bool) {
	return t.engine.Remove(key.Bytes())
}

// Size reports the number of keys currently stored.
func (t *Tree[K, V]) Size() int { return t.engine.Size() }

// Close releases every node the tree holds back to its allocator. The
// tree is empty and reusable afterward.
func (t *Tree[K, V]) Close() { t.engine.Close() }

type config struct {
	allocator       arena.Allocator
	initialCapacity int
}

func newConfig() *config {
	return &config{allocator: &arena.Recycled{}}
}

// Option configures a Tree at construction time.
type Option func(*config)

// WithInitialCapacity reserves enough arena space up front for roughly n
// average-sized nodes, avoiding the early reallocations a tree grown from
// nothing would otherwise pay for a known, large insert workload.
func WithInitialCapacity(n int) Option {
	return func(c *config) { c.initialCapacity = n * approxNodeSize }
}

// WithAllocator overrides the tree's default recycling arena allocator.
func WithAllocator(a arena.Allocator) Option {
	return func(c *config) { c.allocator = a }
}

// approxNodeSize estimates bytes-per-key for WithInitialCapacity's sizing:
// a leaf plus its share of inner-node overhead, which in a radix tree is
// sublinear in key count but non-zero.
const approxNodeSize = 64
