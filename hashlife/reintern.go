package hashlife

import (
	"fmt"

	"github.com/xDarkicex/hashlife/internal/node"
)

// reinterner deep-copies nodes from one Store into a destination table,
// remapping every level-0 leaf onto the destination catalog's own
// Dead/Alive nodes rather than assuming shared catalog identities across
// engines (each catalog is owned per engine instance, so two engines never
// share node IDs even under the same rule). A per-call memo
// avoids re-walking shared subtrees, which is the entire point of the
// quadtree being a DAG rather than a tree.
type reinterner struct {
	srcStore *node.Store
	dstTable interface {
		Get(nw, ne, sw, se node.ID) (node.ID, error)
	}
	dstCatalog *node.Catalog
	memo       map[node.ID]node.ID
}

func newReinterner(srcStore *node.Store, dstTable interface {
	Get(nw, ne, sw, se node.ID) (node.ID, error)
}, dstCatalog *node.Catalog) *reinterner {
	return &reinterner{
		srcStore:   srcStore,
		dstTable:   dstTable,
		dstCatalog: dstCatalog,
		memo:       make(map[node.ID]node.ID),
	}
}

func (r *reinterner) intern(srcID node.ID) (node.ID, error) {
	if srcID == node.Nil {
		return node.Nil, fmt.Errorf("hashlife: cannot re-intern a nil node")
	}

	if r.srcStore.Level(srcID) == 0 {
		if r.srcStore.IsAlive(srcID) {
			return r.dstCatalog.Alive(), nil
		}
		return r.dstCatalog.Dead(), nil
	}

	if dst, ok := r.memo[srcID]; ok {
		return dst, nil
	}

	nw, ne, sw, se := r.srcStore.Children(srcID)

	dnw, err := r.intern(nw)
	if err != nil {
		return node.Nil, err
	}
	dne, err := r.intern(ne)
	if err != nil {
		return node.Nil, err
	}
	dsw, err := r.intern(sw)
	if err != nil {
		return node.Nil, err
	}
	dse, err := r.intern(se)
	if err != nil {
		return node.Nil, err
	}

	dst, err := r.dstTable.Get(dnw, dne, dsw, dse)
	if err != nil {
		return node.Nil, err
	}
	r.memo[srcID] = dst
	return dst, nil
}
