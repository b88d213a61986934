package node

import "fmt"

// Rule carries the outer-totalistic birth/survive bit masks the catalog is
// built for. Bit i of BirthFlags (SurviveFlags) is set iff a cell with i
// live neighbors is born (stays alive) next generation, 0 <= i <= 8.
type Rule struct {
	Name         string
	BirthFlags   uint16
	SurviveFlags uint16
}

// Catalog holds the precomputed canonical nodes of levels 0, 1 and 2 for
// one Rule. It is owned by a single engine instance, not a package-level
// global, so distinct engines can run distinct rules over the same
// process.
type Catalog struct {
	rule Rule

	lvl0 [2]ID     // DEAD, ALIVE
	lvl1 [16]ID    // indexed by (nw<<3|ne<<2|sw<<1|se)
	lvl2 [65536]ID // indexed by the 4x4 cell bitmap

	zeroAbove2 []ID // zeroAbove2[i] = zero_node(level 3+i), built lazily
}

// neighborCenterOffset locates, within a 16-bit LVL2 bitmap laid out
// row-major top-to-bottom, the bit offset of each of the four center
// cells: shifting the bitmap right by an offset aligns that center cell's
// eight neighbors at fixed deltas {10,9,8,6,4,2,1,0}, with the cell
// itself at delta 5.
var neighborCenterOffset = [4]uint{0, 1, 4, 5}

// NewCatalog builds the base catalog for rule and registers every level
// 0-2 node with interner, so later Get calls resolve onto the catalog's
// canonical instances.
func NewCatalog(store *Store, interner interface{ Add(ID) }, rule Rule) (*Catalog, error) {
	c := &Catalog{rule: rule}

	c.lvl0[0] = store.NewLeaf(false)
	c.lvl0[1] = store.NewLeaf(true)

	for i := 0; i < 16; i++ {
		nw := c.lvl0[(i>>3)&1]
		ne := c.lvl0[(i>>2)&1]
		sw := c.lvl0[(i>>1)&1]
		se := c.lvl0[i&1]
		id, err := store.NewBranch(nw, ne, sw, se)
		if err != nil {
			return nil, fmt.Errorf("node: building LVL1[%d]: %w", i, err)
		}
		c.lvl1[i] = id
	}

	for i := 0; i < 65536; i++ {
		nw := c.lvl1[(i>>12&12)|(i>>10&3)]
		ne := c.lvl1[(i>>10&12)|(i>>8&3)]
		sw := c.lvl1[(i>>4&12)|(i>>2&3)]
		se := c.lvl1[(i>>2&12)|(i&3)]
		id, err := store.NewBranch(nw, ne, sw, se)
		if err != nil {
			return nil, fmt.Errorf("node: building LVL2[%d]: %w", i, err)
		}
		c.lvl2[i] = id

		futureIdx := 0
		for j := 0; j < 4; j++ {
			o := neighborCenterOffset[j]
			count := (i>>(10+o)&1 + i>>(9+o)&1 + i>>(8+o)&1 + i>>(6+o)&1 +
				i>>(4+o)&1 + i>>(2+o)&1 + i>>(1+o)&1 + i>>o&1)
			var alive bool
			if i>>(5+o)&1 != 0 {
				alive = (rule.SurviveFlags>>uint(count))&1 != 0
			} else {
				alive = (rule.BirthFlags>>uint(count))&1 != 0
			}
			if alive {
				futureIdx |= 1 << uint(j)
			}
		}
		store.AddFuture(id, 0, c.lvl1[futureIdx])
	}

	for _, id := range c.lvl0 {
		interner.Add(id)
	}
	for _, id := range c.lvl1 {
		interner.Add(id)
	}
	for _, id := range c.lvl2 {
		interner.Add(id)
	}

	return c, nil
}

// Rule returns the birth/survive masks this catalog was built for.
func (c *Catalog) Rule() Rule { return c.rule }

// Dead returns the level-0 dead leaf.
func (c *Catalog) Dead() ID { return c.lvl0[0] }

// Alive returns the level-0 alive leaf.
func (c *Catalog) Alive() ID { return c.lvl0[1] }

// LVL2 returns the canonical level-2 node for a 16-bit cell bitmap, the
// only sanctioned way to obtain a level-2 replacement: an ad-hoc level-2
// node would carry no baked-in future and break canonicalization.
func (c *Catalog) LVL2(bitmap uint16) ID { return c.lvl2[bitmap] }

// ZeroNode returns the canonical all-dead node of the given level. Levels
// 0-2 are read directly from the catalog; higher levels are built
// bottom-up by interning (z,z,z,z) repeatedly and cached so repeated calls
// don't re-walk the chain.
func (c *Catalog) ZeroNode(store *Store, interner Interner, level int) (ID, error) {
	switch {
	case level == 0:
		return c.lvl0[0], nil
	case level == 1:
		return c.lvl1[0], nil
	case level == 2:
		return c.lvl2[0], nil
	}

	idx := level - 3
	if idx < len(c.zeroAbove2) && c.zeroAbove2[idx] != Nil {
		return c.zeroAbove2[idx], nil
	}

	below, err := c.ZeroNode(store, interner, level-1)
	if err != nil {
		return Nil, err
	}
	z, err := interner.Get(below, below, below, below)
	if err != nil {
		return Nil, err
	}

	if idx >= len(c.zeroAbove2) {
		grown := make([]ID, idx+1)
		copy(grown, c.zeroAbove2)
		c.zeroAbove2 = grown
	}
	c.zeroAbove2[idx] = z
	return z, nil
}
