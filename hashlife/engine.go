// Package hashlife is the public API for the Hashlife engine: a
// hash-consed quadtree representation of an unbounded two-dimensional
// outer-totalistic binary cellular automaton, together with the memoized
// recursive turn routine that advances it by arbitrarily large generation
// counts.
package hashlife

import (
	"sync"

	"github.com/xDarkicex/hashlife/internal/intern"
	"github.com/xDarkicex/hashlife/internal/node"
	"github.com/xDarkicex/hashlife/internal/obs"
	"github.com/xDarkicex/hashlife/internal/reclaim"
)

// Engine is one Hashlife session: an interner, a base catalog built for a
// fixed rule, and the instrumentation/reclamation wired around them.
type Engine struct {
	mu sync.RWMutex

	cfg     *config
	rule    node.Rule
	table   *intern.Table
	catalog *node.Catalog
	metrics *obs.Metrics
	monitor *reclaim.Monitor

	lastRoot node.ID
	closed   bool
}

// New builds an Engine for rule: it allocates a fresh interner and
// registers the level 0-2 base catalog, with the one-generation rule baked
// into every level-2 node's power-0 future.
func New(rule node.Rule, opts ...Option) (*Engine, error) {
	if rule.BirthFlags == 0 && rule.SurviveFlags == 0 && rule.Name == "" {
		return nil, ErrNilRule
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	table := intern.New(cfg.bucketCount)
	catalog, err := node.NewCatalog(table.Store(), table, rule)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		rule:    rule,
		table:   table,
		catalog: catalog,
	}

	if cfg.metricsEnabled {
		e.metrics = obs.NewMetricsFor(cfg.registerer)
	}

	if cfg.reclaimThreshold > 0 {
		// HashCount, not e.table.Len: Start swaps the table out, and the
		// monitor must follow it.
		e.monitor = reclaim.New(e.HashCount, e.reclaimAction, cfg.reclaimThreshold, cfg.reclaimInterval)
	}

	return e, nil
}

// Rule returns the birth/survive masks this engine was built for.
func (e *Engine) Rule() node.Rule { return e.rule }

// Level returns a node's quadtree level: the node covers a square region
// of side length 2^Level.
func (e *Engine) Level(id node.ID) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return int(e.table.Store().Level(id))
}

// Population returns a node's live-cell count.
func (e *Engine) Population(id node.ID) uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.table.Store().Population(id)
}

// HashCount returns the interner's live-node count.
func (e *Engine) HashCount() int {
	e.mu.RLock()
	t := e.table
	e.mu.RUnlock()
	return t.Len()
}

// Monitor returns the engine's reclamation monitor, or nil if WithReclaim
// was not supplied to New.
func (e *Engine) Monitor() *reclaim.Monitor { return e.monitor }

// reclaimAction is the Action the reclaim.Monitor invokes: it re-runs
// Start against the most recently supplied root, dropping every node the
// root can no longer reach along with its stale memoized futures.
func (e *Engine) reclaimAction() (before, after int, err error) {
	e.mu.RLock()
	root := e.lastRoot
	e.mu.RUnlock()

	before = e.HashCount()
	if _, err := e.Start(root); err != nil {
		return before, before, err
	}
	if e.metrics != nil {
		e.metrics.ReclaimRuns.Inc()
	}
	after = e.HashCount()
	if e.metrics != nil && before > after {
		e.metrics.ReclaimedNodes.Add(float64(before - after))
	}
	return before, after, nil
}

// Close dumps a diagnostic report and releases the engine's nodes. Once
// closed, EmptyRoot, AddRoot, Start, Run, SetCell and Close return
// ErrEngineClosed; the read-only accessors (Level, Population, HashCount,
// GetCell, Report) do not check for a closed engine.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	if e.monitor != nil {
		_ = e.monitor.Stop()
	}

	e.reportLocked().Print()
	e.table.Clear()
	e.closed = true
	return nil
}
