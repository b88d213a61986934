package node

import "fmt"

// Center returns the level-1-lower node consisting of the four inner
// grandchildren of n: {nw.se, ne.sw, sw.ne, se.nw}.
func Center(store *Store, interner Interner, n ID) (ID, error) {
	nw, ne, sw, se := store.Children(n)
	_, _, _, nwSE := store.Children(nw)
	_, _, neSW, _ := store.Children(ne)
	_, swNE, _, _ := store.Children(sw)
	seNW, _, _, _ := store.Children(se)
	return interner.Get(nwSE, neSW, swNE, seNW)
}

// Horizontal returns the node spanning the shared vertical seam between
// two same-level horizontal neighbors: {L.ne, R.nw, L.se, R.sw}.
func Horizontal(store *Store, interner Interner, left, right ID) (ID, error) {
	_, lNE, _, lSE := store.Children(left)
	rNW, _, rSW, _ := store.Children(right)
	return interner.Get(lNE, rNW, lSE, rSW)
}

// Vertical returns the node spanning the shared horizontal seam between two
// same-level vertical neighbors: {U.sw, U.se, D.nw, D.ne}.
func Vertical(store *Store, interner Interner, up, down ID) (ID, error) {
	_, _, uSW, uSE := store.Children(up)
	dNW, dNE, _, _ := store.Children(down)
	return interner.Get(uSW, uSE, dNW, dNE)
}

// HorizontalCenter is Horizontal's one-level-deeper dual, used by the slow
// (non-maximum-speedup) turn branch.
func HorizontalCenter(store *Store, interner Interner, left, right ID) (ID, error) {
	_, lNE, _, lSE := store.Children(left)
	rNW, _, rSW, _ := store.Children(right)
	_, _, _, lNESE := store.Children(lNE)
	_, _, rNWSW, _ := store.Children(rNW)
	_, lSENE, _, _ := store.Children(lSE)
	rSWNW, _, _, _ := store.Children(rSW)
	return interner.Get(lNESE, rNWSW, lSENE, rSWNW)
}

// VerticalCenter is Vertical's dual.
func VerticalCenter(store *Store, interner Interner, up, down ID) (ID, error) {
	_, _, uSW, uSE := store.Children(up)
	dNW, dNE, _, _ := store.Children(down)
	_, _, _, uSWSE := store.Children(uSW)
	_, _, uSESW, _ := store.Children(uSE)
	_, dNWNE, _, _ := store.Children(dNW)
	dNENW, _, _, _ := store.Children(dNE)
	return interner.Get(uSWSE, uSESW, dNWNE, dNENW)
}

// Expand returns a node one level higher than n, with n centered and
// padded by zero_node(n.Level-1) on every side.
func Expand(store *Store, interner Interner, catalog *Catalog, n ID) (ID, error) {
	lvl := int(store.Level(n))
	if lvl == 0 {
		return Nil, fmt.Errorf("node: cannot Expand a level-0 node")
	}
	z, err := catalog.ZeroNode(store, interner, lvl-1)
	if err != nil {
		return Nil, err
	}
	nw, ne, sw, se := store.Children(n)

	newNW, err := interner.Get(z, z, z, nw)
	if err != nil {
		return Nil, err
	}
	newNE, err := interner.Get(z, z, ne, z)
	if err != nil {
		return Nil, err
	}
	newSW, err := interner.Get(z, sw, z, z)
	if err != nil {
		return Nil, err
	}
	newSE, err := interner.Get(se, z, z, z)
	if err != nil {
		return Nil, err
	}
	return interner.Get(newNW, newNE, newSW, newSE)
}

// Compact trims n down to the tightest level that still contains all of
// its live content, replacing it with Center(n) repeatedly while the outer
// ring of n is entirely dead. Nodes below level 3 are returned unchanged.
func Compact(store *Store, interner Interner, catalog *Catalog, n ID) (ID, error) {
	for {
		lvl := int(store.Level(n))
		if lvl < 3 {
			return n, nil
		}

		z, err := catalog.ZeroNode(store, interner, lvl-2)
		if err != nil {
			return Nil, err
		}

		nw, ne, sw, se := store.Children(n)
		nwNW, nwNE, nwSW, _ := store.Children(nw)
		neNW, neNE, _, neSE := store.Children(ne)
		swNW, _, swSW, swSE := store.Children(sw)
		_, seNE, seSW, seSE := store.Children(se)

		allZero := nwNW == z && nwNE == z && nwSW == z &&
			neNW == z && neNE == z && neSE == z &&
			swNW == z && swSW == z && swSE == z &&
			seNE == z && seSW == z && seSE == z

		if !allZero {
			return n, nil
		}

		centered, err := Center(store, interner, n)
		if err != nil {
			return Nil, err
		}
		n = centered
	}
}
