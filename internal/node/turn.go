package node

import "fmt"

// Turn advances the center 2^(level-1) x 2^(level-1) region of a level-k
// node n by exactly 2^power generations, returning a level-(k-1) node.
// It requires power <= level-2 and level >= 2.
//
// The result is memoized on n under key power via Store's future list, so
// repeated calls with the same n and power return the previously computed,
// canonical node instead of recomputing it.
func Turn(store *Store, interner Interner, n ID, power int) (ID, error) {
	level := int(store.Level(n))
	if level < 2 {
		return Nil, fmt.Errorf("node: Turn requires level >= 2, got %d", level)
	}
	if power < 0 {
		return Nil, fmt.Errorf("node: Turn requires power >= 0, got %d", power)
	}
	if power > level-2 {
		return Nil, fmt.Errorf("node: Turn power %d exceeds level-2 (level=%d)", power, level)
	}
	return turn(store, interner, n, power)
}

// turn is the recursion body. Unlike the exported entry point it accepts
// power >= level-2 and treats it as "maximum speedup here": the fast branch
// passes power through unchanged, so at every depth the sub-nodes clamp
// themselves to their own level-2 rather than rechecking the caller's
// contract.
func turn(store *Store, interner Interner, n ID, power int) (ID, error) {
	level := int(store.Level(n))
	if level == 2 {
		// The base case: the one-generation future was baked in during
		// catalog construction, and 2^power collapses to it whenever the
		// recursion reaches this depth.
		future, ok := store.GetFuture(n, 0)
		if !ok {
			return Nil, fmt.Errorf("node: level-2 node missing its baked-in future; was it built via the catalog?")
		}
		return future, nil
	}

	if power >= level-2 {
		return turnFast(store, interner, n, power)
	}
	return turnSlow(store, interner, n, power)
}

// turnFast is the maximum-speedup branch: evolve each of nine full-size
// level-(k-1) sub-regions by power, combine the four overlapping 2x2
// groups, and evolve each combination once more, netting 2^(k-2)
// generations.
func turnFast(store *Store, interner Interner, n ID, power int) (ID, error) {
	level := int(store.Level(n))
	if future, ok := store.GetFuture(n, level-2); ok {
		return future, nil
	}

	nw, ne, sw, se := store.Children(n)

	n01, err := Horizontal(store, interner, nw, ne)
	if err != nil {
		return Nil, err
	}
	n10, err := Vertical(store, interner, nw, sw)
	if err != nil {
		return Nil, err
	}
	n11, err := Center(store, interner, n)
	if err != nil {
		return Nil, err
	}
	n12, err := Vertical(store, interner, ne, se)
	if err != nil {
		return Nil, err
	}
	n21, err := Horizontal(store, interner, sw, se)
	if err != nil {
		return Nil, err
	}

	t00, err := turn(store, interner, nw, power)
	if err != nil {
		return Nil, err
	}
	t01, err := turn(store, interner, n01, power)
	if err != nil {
		return Nil, err
	}
	t02, err := turn(store, interner, ne, power)
	if err != nil {
		return Nil, err
	}
	t10, err := turn(store, interner, n10, power)
	if err != nil {
		return Nil, err
	}
	t11, err := turn(store, interner, n11, power)
	if err != nil {
		return Nil, err
	}
	t12, err := turn(store, interner, n12, power)
	if err != nil {
		return Nil, err
	}
	t20, err := turn(store, interner, sw, power)
	if err != nil {
		return Nil, err
	}
	t21, err := turn(store, interner, n21, power)
	if err != nil {
		return Nil, err
	}
	t22, err := turn(store, interner, se, power)
	if err != nil {
		return Nil, err
	}

	future, err := combineQuadrants(store, interner, t00, t01, t02, t10, t11, t12, t20, t21, t22, power)
	if err != nil {
		return Nil, err
	}

	store.AddFuture(n, level-2, future)
	return future, nil
}

// turnSlow is the reduced-speedup branch used when the caller asked for
// fewer generations than the maximum this level could deliver: the nine
// sub-regions are built one level deeper (centered forms) and evolved only
// once overall.
func turnSlow(store *Store, interner Interner, n ID, power int) (ID, error) {
	if future, ok := store.GetFuture(n, power); ok {
		return future, nil
	}

	nw, ne, sw, se := store.Children(n)

	n00, err := Center(store, interner, nw)
	if err != nil {
		return Nil, err
	}
	n01, err := HorizontalCenter(store, interner, nw, ne)
	if err != nil {
		return Nil, err
	}
	n02, err := Center(store, interner, ne)
	if err != nil {
		return Nil, err
	}
	n10, err := VerticalCenter(store, interner, nw, sw)
	if err != nil {
		return Nil, err
	}
	inner, err := Center(store, interner, n)
	if err != nil {
		return Nil, err
	}
	n11, err := Center(store, interner, inner)
	if err != nil {
		return Nil, err
	}
	n12, err := VerticalCenter(store, interner, ne, se)
	if err != nil {
		return Nil, err
	}
	n20, err := Center(store, interner, sw)
	if err != nil {
		return Nil, err
	}
	n21, err := HorizontalCenter(store, interner, sw, se)
	if err != nil {
		return Nil, err
	}
	n22, err := Center(store, interner, se)
	if err != nil {
		return Nil, err
	}

	future, err := combineQuadrants(store, interner, n00, n01, n02, n10, n11, n12, n20, n21, n22, power)
	if err != nil {
		return Nil, err
	}

	store.AddFuture(n, power, future)
	return future, nil
}

// combineQuadrants assembles the four overlapping 2x2 groups from a 3x3
// grid of same-level nodes, evolves each by power, and interns the
// resulting quadrant into a single node one level lower than the grid.
func combineQuadrants(store *Store, interner Interner, n00, n01, n02, n10, n11, n12, n20, n21, n22 ID, power int) (ID, error) {
	nw, err := interner.Get(n00, n01, n10, n11)
	if err != nil {
		return Nil, err
	}
	ne, err := interner.Get(n01, n02, n11, n12)
	if err != nil {
		return Nil, err
	}
	sw, err := interner.Get(n10, n11, n20, n21)
	if err != nil {
		return Nil, err
	}
	se, err := interner.Get(n11, n12, n21, n22)
	if err != nil {
		return Nil, err
	}

	tnw, err := turn(store, interner, nw, power)
	if err != nil {
		return Nil, err
	}
	tne, err := turn(store, interner, ne, power)
	if err != nil {
		return Nil, err
	}
	tsw, err := turn(store, interner, sw, power)
	if err != nil {
		return Nil, err
	}
	tse, err := turn(store, interner, se, power)
	if err != nil {
		return Nil, err
	}

	return interner.Get(tnw, tne, tsw, tse)
}
