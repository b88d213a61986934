package hashlife

import "github.com/xDarkicex/hashlife/internal/obs"

// Report returns a diagnostic summary of the engine's interner. It does
// not require a root since the interner-wide bucket statistics are
// independent of any one tree; pass the root you care about to
// Level/Population for its specific figures.
func (e *Engine) Report() obs.Report {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reportLocked()
}

func (e *Engine) reportLocked() obs.Report {
	br := e.table.Report()

	level, pop := 0, uint64(0)
	if e.lastRoot != 0 {
		level = int(e.table.Store().Level(e.lastRoot))
		pop = e.table.Store().Population(e.lastRoot)
	}

	if e.metrics != nil {
		e.metrics.LiveNodes.Set(float64(br.Count))
	}

	return obs.Report{
		RootLevel:      level,
		RootPopulation: pop,
		Hashcount:      br.Count,
		BucketMin:      br.Min,
		BucketMax:      br.Max,
		EmptyPercent:   br.EmptyPercent,
	}
}
