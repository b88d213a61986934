package hashlife

import (
	"fmt"

	"github.com/xDarkicex/hashlife/internal/intern"
	"github.com/xDarkicex/hashlife/internal/node"
)

// setCellBitTable maps a level-2 node's (column, row) quadrant-of-quadrant
// offset, each in [-2, 1] and rebased to [0, 3], onto the bit position of
// that cell within the 16-bit signature bitmap16 builds.
var setCellBitTable = [4][4]int{
	{3, 7, 11, 15},
	{2, 6, 10, 14},
	{1, 5, 9, 13},
	{0, 4, 8, 12},
}

// bitmap16 packs a level-2 node's 16 level-0 descendants into the same bit
// layout the catalog indexes LVL2 by, most significant nibble first
// (nw.nw, nw.ne, ne.nw, ne.ne, nw.sw, ...).
func bitmap16(store *node.Store, n node.ID) uint16 {
	nw, ne, sw, se := store.Children(n)
	nwNW, nwNE, nwSW, nwSE := store.Children(nw)
	neNW, neNE, neSW, neSE := store.Children(ne)
	swNW, swNE, swSW, swSE := store.Children(sw)
	seNW, seNE, seSW, seSE := store.Children(se)

	bit := func(id node.ID) uint16 {
		if store.IsAlive(id) {
			return 1
		}
		return 0
	}

	return bit(nwNW)<<15 | bit(nwNE)<<14 | bit(neNW)<<13 | bit(neNE)<<12 |
		bit(nwSW)<<11 | bit(nwSE)<<10 | bit(neSW)<<9 | bit(neSE)<<8 |
		bit(swNW)<<7 | bit(swNE)<<6 | bit(seNW)<<5 | bit(seNE)<<4 |
		bit(swSW)<<3 | bit(swSE)<<2 | bit(seSW)<<1 | bit(seSE)
}

// GetCell reports whether the cell at (x, y) is alive under root.
// Coordinates outside root's region, or a root deeper than 63 levels,
// report dead rather than erroring: an out-of-bounds read is a valid "no
// information" answer, not a fault.
func (e *Engine) GetCell(root node.ID, x, y int64) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return getCellRecurs(e.table.Store(), root, x, y)
}

func getCellRecurs(store *node.Store, root node.ID, x, y int64) bool {
	level := int(store.Level(root))
	max := int64(1) << uint(level-1)
	if level > 63 || x < -max || x >= max || y < -max || y >= max {
		return false
	}

	if level < 2 {
		if level != 1 {
			return false
		}
		nw, ne, sw, se := store.Children(root)
		if x < 0 {
			if y < 0 {
				return store.IsAlive(sw)
			}
			return store.IsAlive(nw)
		}
		if y < 0 {
			return store.IsAlive(se)
		}
		return store.IsAlive(ne)
	}

	offset := int64(1) << uint(level-2)
	nw, ne, sw, se := store.Children(root)
	if x < 0 {
		if y < 0 {
			return getCellRecurs(store, sw, x+offset, y+offset)
		}
		return getCellRecurs(store, nw, x+offset, y-offset)
	}
	if y < 0 {
		return getCellRecurs(store, se, x-offset, y+offset)
	}
	return getCellRecurs(store, ne, x-offset, y-offset)
}

// SetCell returns a new root identical to root except that the cell at
// (x, y) is forced to state. root is expanded as
// many times as needed to bring (x, y) into range before the write, so
// SetCell never fails for an out-of-range coordinate the way GetCell
// silently reports dead for one.
func (e *Engine) SetCell(root node.ID, x, y int64, state bool) (node.ID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return node.Nil, ErrEngineClosed
	}
	if root == node.Nil {
		return node.Nil, fmt.Errorf("hashlife: SetCell requires a non-nil root")
	}

	store := e.table.Store()
	level := int(store.Level(root))
	max := int64(1) << uint(level-1)
	for level < 3 || x < -max || x >= max || y < -max || y >= max {
		expanded, err := node.Expand(store, e.table, e.catalog, root)
		if err != nil {
			return node.Nil, fmt.Errorf("hashlife: SetCell: expanding to fit (%d, %d): %w", x, y, err)
		}
		root = expanded
		level = int(store.Level(root))
		max = int64(1) << uint(level-1)
	}

	newRoot, err := setCellRecurs(store, e.table, e.catalog, root, x, y, state)
	if err != nil {
		return node.Nil, err
	}

	e.lastRoot = newRoot
	return newRoot, nil
}

func setCellRecurs(store *node.Store, interner *intern.Table, catalog *node.Catalog, root node.ID, x, y int64, state bool) (node.ID, error) {
	level := int(store.Level(root))
	if level < 4 {
		// SetCell expands every root to level 3 or more before recursing,
		// and the recursion stops at level 3, so lower levels never arrive
		// here.
		if level != 3 {
			return root, nil
		}

		nw, ne, sw, se := store.Children(root)

		var old2 node.ID
		var x2, y2 int64
		switch {
		case x < 0 && y < 0:
			old2, x2, y2 = sw, x+2, y+2
		case x < 0:
			old2, x2, y2 = nw, x+2, y-2
		case y < 0:
			old2, x2, y2 = se, x-2, y+2
		default:
			old2, x2, y2 = ne, x-2, y-2
		}

		sig := bitmap16(store, old2)
		bitPos := uint(setCellBitTable[x2+2][y2+2])
		if state {
			sig |= 1 << bitPos
		} else {
			sig &^= 1 << bitPos
		}
		replacement := catalog.LVL2(sig)

		switch {
		case x < 0 && y < 0:
			return interner.Get(nw, ne, replacement, se)
		case x < 0:
			return interner.Get(replacement, ne, sw, se)
		case y < 0:
			return interner.Get(nw, ne, sw, replacement)
		default:
			return interner.Get(nw, replacement, sw, se)
		}
	}

	offset := int64(1) << uint(level-2)
	nw, ne, sw, se := store.Children(root)

	switch {
	case x < 0 && y < 0:
		newSW, err := setCellRecurs(store, interner, catalog, sw, x+offset, y+offset, state)
		if err != nil {
			return node.Nil, err
		}
		return interner.Get(nw, ne, newSW, se)
	case x < 0:
		newNW, err := setCellRecurs(store, interner, catalog, nw, x+offset, y-offset, state)
		if err != nil {
			return node.Nil, err
		}
		return interner.Get(newNW, ne, sw, se)
	case y < 0:
		newSE, err := setCellRecurs(store, interner, catalog, se, x-offset, y+offset, state)
		if err != nil {
			return node.Nil, err
		}
		return interner.Get(nw, ne, sw, newSE)
	default:
		newNE, err := setCellRecurs(store, interner, catalog, ne, x-offset, y-offset, state)
		if err != nil {
			return node.Nil, err
		}
		return interner.Get(nw, newNE, sw, se)
	}
}
