package hashlife

import (
	"context"
	"fmt"
	"time"

	"github.com/xDarkicex/hashlife/internal/node"
)

// Run advances root by exactly n generations and returns the resulting
// root. n is decomposed into its set bits,
// least significant first; each one is applied as a single Turn at the
// matching power, expanding root beforehand to give Turn enough room and
// compacting it back down afterward, so Run(root, a+b) == Run(Run(root,
// a), b) for any split of n into a+b.
//
// Run respects ctx cancellation between bits, not mid-Turn: a single
// Turn call is not interruptible, matching the engine's no-threading,
// no-reentrancy concurrency model.
func (e *Engine) Run(ctx context.Context, root node.ID, n uint64) (node.ID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return node.Nil, ErrEngineClosed
	}
	if root == node.Nil {
		return node.Nil, fmt.Errorf("hashlife: Run requires a non-nil root")
	}

	start := time.Now()
	store := e.table.Store()
	countBefore := e.table.Len()

	power := 0
	for n != 0 {
		if n&1 != 0 {
			select {
			case <-ctx.Done():
				e.lastRoot = root
				return root, ctx.Err()
			default:
			}

			// Turn at this power needs a node of level power+2 or more;
			// the two further expansions below keep the 2^power-generation
			// light cone of root's content inside the region Turn returns.
			for int(store.Level(root)) < power+2 {
				expanded, err := node.Expand(store, e.table, e.catalog, root)
				if err != nil {
					return node.Nil, fmt.Errorf("hashlife: Run: expanding for power %d: %w", power, err)
				}
				root = expanded
			}

			for i := 0; i < 2; i++ {
				expanded, err := node.Expand(store, e.table, e.catalog, root)
				if err != nil {
					return node.Nil, fmt.Errorf("hashlife: Run: padding for turn: %w", err)
				}
				root = expanded
			}

			advanced, err := node.Turn(store, e.table, root, power)
			if err != nil {
				return node.Nil, fmt.Errorf("hashlife: Run: turn at power %d: %w", power, err)
			}
			root = advanced

			compacted, err := node.Compact(store, e.table, e.catalog, root)
			if err != nil {
				return node.Nil, fmt.Errorf("hashlife: Run: compacting after power %d: %w", power, err)
			}
			root = compacted
		}
		n >>= 1
		power++
	}

	e.lastRoot = root
	if e.metrics != nil {
		e.metrics.ObserveTurn(time.Since(start))
		if grew := e.table.Len() - countBefore; grew > 0 {
			e.metrics.NodesInterned.Add(float64(grew))
		}
	}

	return root, nil
}
