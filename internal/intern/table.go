// Package intern implements the Hashlife engine's content-addressed node
// store: a fixed-bucket-count, open-chained hash table guaranteeing that
// structurally equal (nw, ne, sw, se) tuples always resolve to the same
// node.ID.
package intern

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/xDarkicex/hashlife/internal/node"
)

// DefaultBucketCount is the default prime bucket count.
const DefaultBucketCount = 196613

// Table is the interner. It owns the node.Store backing every node it has
// ever handed out.
type Table struct {
	mu      sync.RWMutex
	store   *node.Store
	buckets []node.ID
	count   int
}

// New creates an Interner with bucketCount buckets (DefaultBucketCount if
// bucketCount <= 0), backed by a fresh, empty node.Store.
func New(bucketCount int) *Table {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}
	return &Table{
		store:   node.NewStore(),
		buckets: make([]node.ID, bucketCount),
	}
}

// Store returns the arena this table interns into. Catalog construction
// and geometry helpers allocate/read nodes through it.
func (t *Table) Store() *node.Store { return t.store }

// Len returns the number of live nodes currently registered.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

func hashChildren(nw, ne, sw, se node.ID) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(nw))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(ne))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(sw))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(se))
	return xxhash.Sum64(buf[:])
}

func (t *Table) bucketOf(nw, ne, sw, se node.ID) int {
	return int(hashChildren(nw, ne, sw, se) % uint64(len(t.buckets)))
}

// Get returns the unique canonical node for (nw, ne, sw, se), constructing
// and registering one if no match exists yet. All four children must be
// non-Nil and of the same level; Get returns an error for a Nil child or
// for children at mismatched levels, and otherwise never fails short of an
// allocation failure, which is treated as a precondition violation
// elsewhere in the engine.
func (t *Table) Get(nw, ne, sw, se node.ID) (node.ID, error) {
	if nw == node.Nil || ne == node.Nil || sw == node.Nil || se == node.Nil {
		return node.Nil, fmt.Errorf("intern: Get requires four non-nil children")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.bucketOf(nw, ne, sw, se)
	for cur := t.buckets[idx]; cur != node.Nil; cur = t.store.Next(cur) {
		cnw, cne, csw, cse := t.store.Children(cur)
		if cnw == nw && cne == ne && csw == sw && cse == se {
			return cur, nil
		}
	}

	id, err := t.store.NewBranch(nw, ne, sw, se)
	if err != nil {
		return node.Nil, err
	}
	t.linkIntoBucket(idx, id)
	return id, nil
}

func (t *Table) linkIntoBucket(idx int, id node.ID) {
	t.store.SetNext(id, t.buckets[idx])
	t.buckets[idx] = id
	t.count++
}

// Add registers an already-constructed node at its hash bucket. Used only
// for seeding the base catalog's level 0-2 nodes, which are allocated
// directly in the Store rather than via Get.
func (t *Table) Add(id node.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	nw, ne, sw, se := t.store.Children(id)
	idx := t.bucketOf(nw, ne, sw, se)
	t.linkIntoBucket(idx, id)
}

// Clear frees every node in every bucket and resets the live count. The
// underlying Store's arena slots are not reused, so a fresh engine Start
// after Clear should build on a new Store rather than this one.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.buckets {
		t.buckets[i] = node.Nil
	}
	t.count = 0
}

// Clean retains exactly the nodes reachable from root and discards the
// rest. Each bucket is walked once and rebuilt independently; a kept
// node's chain link never bridges into another bucket.
func (t *Table) Clean(root node.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	reachable := t.reachableSet(root)

	kept := 0
	for i := range t.buckets {
		var head, tail node.ID
		for cur := t.buckets[i]; cur != node.Nil; {
			next := t.store.Next(cur)
			if reachable[cur] {
				t.store.SetNext(cur, node.Nil)
				if tail == node.Nil {
					head = cur
				} else {
					t.store.SetNext(tail, cur)
				}
				tail = cur
				kept++
			}
			cur = next
		}
		t.buckets[i] = head
	}
	t.count = kept
}

func (t *Table) reachableSet(root node.ID) map[node.ID]bool {
	seen := make(map[node.ID]bool)
	var walk func(id node.ID)
	walk = func(id node.ID) {
		if id == node.Nil || seen[id] {
			return
		}
		seen[id] = true
		if t.store.Level(id) == 0 {
			return
		}
		nw, ne, sw, se := t.store.Children(id)
		walk(nw)
		walk(ne)
		walk(sw)
		walk(se)
	}
	walk(root)
	return seen
}

// Report is a diagnostic summary of bucket occupancy.
type Report struct {
	Count        int
	Min          int
	Max          int
	EmptyPercent float64
}

// Report computes min/max bucket-chain length and the fraction of empty
// buckets.
func (t *Table) Report() Report {
	t.mu.RLock()
	defer t.mu.RUnlock()

	min, max, empty := t.count, 0, 0
	for _, head := range t.buckets {
		length := 0
		for cur := head; cur != node.Nil; cur = t.store.Next(cur) {
			length++
		}
		if head == node.Nil {
			empty++
			min = 0
			continue
		}
		if length < min {
			min = length
		}
		if length > max {
			max = length
		}
	}

	return Report{
		Count:        t.count,
		Min:          min,
		Max:          max,
		EmptyPercent: float64(empty) * 100 / float64(len(t.buckets)),
	}
}
