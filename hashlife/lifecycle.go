package hashlife

import (
	"fmt"

	"github.com/xDarkicex/hashlife/internal/intern"
	"github.com/xDarkicex/hashlife/internal/node"
)

// EmptyRoot returns the canonical level-3 all-dead node, a convenient
// starting point for building a field up by repeated SetCell calls.
func (e *Engine) EmptyRoot() (node.ID, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return node.Nil, ErrEngineClosed
	}

	return e.catalog.ZeroNode(e.table.Store(), e.table, 3)
}

// AddRoot re-interns a tree built against a foreign Store (most commonly
// one belonging to a different Engine) into this engine's own table and
// catalog, returning the equivalent canonical root here. Engines never
// share node IDs, even under an identical rule, so this is the only
// supported way to move a tree between them.
func (e *Engine) AddRoot(foreignStore *node.Store, foreignRoot node.ID) (node.ID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return node.Nil, ErrEngineClosed
	}

	r := newReinterner(foreignStore, e.table, e.catalog)
	root, err := r.intern(foreignRoot)
	if err != nil {
		return node.Nil, fmt.Errorf("hashlife: AddRoot: %w", err)
	}

	e.lastRoot = root
	return root, nil
}

// Start discards the engine's current interner and catalog, builds fresh
// ones for the same rule, and re-interns everything reachable from root
// into them. This is the engine's only reclamation
// mechanism: nodes unreachable from root are simply never re-created, so
// the old table (and the arena behind it) becomes garbage once this
// returns and the caller drops any IDs obtained before the call.
func (e *Engine) Start(root node.ID) (node.ID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return node.Nil, ErrEngineClosed
	}

	if root == node.Nil {
		return node.Nil, ErrNotStarted
	}

	oldStore := e.table.Store()

	newTable := intern.New(e.cfg.bucketCount)
	newCatalog, err := node.NewCatalog(newTable.Store(), newTable, e.rule)
	if err != nil {
		return node.Nil, fmt.Errorf("hashlife: Start: rebuilding catalog: %w", err)
	}

	r := newReinterner(oldStore, newTable, newCatalog)
	newRoot, err := r.intern(root)
	if err != nil {
		return node.Nil, fmt.Errorf("hashlife: Start: re-interning root: %w", err)
	}

	e.table = newTable
	e.catalog = newCatalog
	e.lastRoot = newRoot

	return newRoot, nil
}
