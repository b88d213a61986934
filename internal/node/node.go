// Package node implements the hash-consed quadtree cell used by the
// Hashlife engine: an immutable Node denoting a 2^level x 2^level square,
// stored in an arena (Store) and addressed by a stable, portable ID rather
// than by pointer.
package node

import "fmt"

// ID is an arena index identifying an interned Node. The zero value, Nil,
// never denotes a real node.
type ID uint32

// Nil is the sentinel "no node" ID, returned when a lookup or construction
// is given a missing child.
const Nil ID = 0

// Node denotes a square region of side length 2^Level. Level-0 nodes are
// leaves (NW..SE are Nil) and carry Alive directly; all other levels carry
// four same-level-minus-one children and derive Population from them.
//
// Children, Level, Alive and Population never change after construction.
// futures is append-only and next is owned by the interning Table that
// holds this node's hash-chain slot; both are mutated only through Store's
// exported methods, never by callers.
type Node struct {
	NW, NE, SW, SE ID
	Level          uint8
	Alive          bool
	Population     uint64

	futures futureList
	next    ID
}

// Store is the arena owning every Node. Index 0 is a permanently empty
// slot so that ID's zero value can serve as the Nil sentinel.
type Store struct {
	nodes []Node
}

// NewStore creates an empty arena with the Nil slot reserved.
func NewStore() *Store {
	return &Store{nodes: make([]Node, 1)}
}

// Len returns the number of real (non-Nil) nodes currently allocated.
// This is not the same as an interner's live hashcount once Clean has run;
// Store never reclaims slots, it only stops handing out fresh ones for
// already-canonical content.
func (s *Store) Len() int {
	return len(s.nodes) - 1
}

func (s *Store) at(id ID) *Node {
	return &s.nodes[id]
}

// NewLeaf allocates a level-0 node directly in the arena, bypassing the
// interner. Used only by catalog construction; every other node comes
// through an Interner.
func (s *Store) NewLeaf(alive bool) ID {
	pop := uint64(0)
	if alive {
		pop = 1
	}
	s.nodes = append(s.nodes, Node{Level: 0, Alive: alive, Population: pop})
	return ID(len(s.nodes) - 1)
}

// NewBranch allocates a non-leaf node directly in the arena, without any
// canonicalization check. Catalog construction calls it for levels 1 and 2,
// and an Interner's Get calls it once it has found no existing match; every
// other branch node must come from an Interner.Get call so canonicalization
// holds.
func (s *Store) NewBranch(nw, ne, sw, se ID) (ID, error) {
	if nw == Nil || ne == Nil || sw == Nil || se == Nil {
		return Nil, fmt.Errorf("node: NewBranch requires four non-nil children")
	}
	lv := s.at(nw).Level
	if s.at(ne).Level != lv || s.at(sw).Level != lv || s.at(se).Level != lv {
		return Nil, fmt.Errorf("node: NewBranch children at mismatched levels")
	}
	pop := s.at(nw).Population + s.at(ne).Population + s.at(sw).Population + s.at(se).Population
	s.nodes = append(s.nodes, Node{NW: nw, NE: ne, SW: sw, SE: se, Level: lv + 1, Population: pop})
	return ID(len(s.nodes) - 1), nil
}

// Level returns the level of id.
func (s *Store) Level(id ID) uint8 { return s.at(id).Level }

// Population returns the live-cell count within the region id denotes.
func (s *Store) Population(id ID) uint64 { return s.at(id).Population }

// IsAlive reports whether id is the level-0 alive leaf.
func (s *Store) IsAlive(id ID) bool { return s.at(id).Level == 0 && s.at(id).Alive }

// Children returns the four quadrants of a non-leaf node.
func (s *Store) Children(id ID) (nw, ne, sw, se ID) {
	n := s.at(id)
	return n.NW, n.NE, n.SW, n.SE
}

// Next returns the hash-chain link of id, owned by whichever intern.Table
// currently holds this node.
func (s *Store) Next(id ID) ID { return s.at(id).next }

// SetNext rewires the hash-chain link of id. Only an intern.Table should
// call this.
func (s *Store) SetNext(id, next ID) { s.at(id).next = next }

// GetFuture returns the memoized result of advancing id by 2^power
// generations, if one has been recorded.
func (s *Store) GetFuture(id ID, power int) (ID, bool) {
	return s.at(id).futures.get(power)
}

// AddFuture records the result of advancing id by 2^power generations.
// futures is append-only: calling this twice for the same power is a
// programmer error (it silently appends a duplicate linear-probe entry
// rather than overwriting).
func (s *Store) AddFuture(id ID, power int, future ID) {
	s.at(id).futures = s.at(id).futures.add(power, future)
}
