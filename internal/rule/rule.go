// Package rule supplies named outer-totalistic birth/survive presets and a
// small registry for host-defined ones.
package rule

import (
	"fmt"
	"sync"

	"github.com/xDarkicex/hashlife/internal/node"
)

// Life is Conway's Game of Life: B3/S23.
func Life() node.Rule {
	return node.Rule{Name: "life", BirthFlags: 1 << 3, SurviveFlags: (1 << 2) | (1 << 3)}
}

// HighLife is B36/S23, notable for its self-replicator.
func HighLife() node.Rule {
	return node.Rule{Name: "highlife", BirthFlags: (1 << 3) | (1 << 6), SurviveFlags: (1 << 2) | (1 << 3)}
}

// Seeds is B2/S (everything dies after one generation except fresh births).
func Seeds() node.Rule {
	return node.Rule{Name: "seeds", BirthFlags: 1 << 2, SurviveFlags: 0}
}

// DayAndNight is B3678/S34678, symmetric under cell-state inversion.
func DayAndNight() node.Rule {
	b := uint16(1<<3 | 1<<6 | 1<<7 | 1<<8)
	s := uint16(1<<3 | 1<<4 | 1<<6 | 1<<7 | 1<<8)
	return node.Rule{Name: "daynight", BirthFlags: b, SurviveFlags: s}
}

// Mask truncates a birth/survive flag pair to the 9 meaningful bits
// (neighbor counts 0-8); no error is raised for wider input.
func Mask(birth, survive uint16) node.Rule {
	return node.Rule{BirthFlags: birth & 0x1FF, SurviveFlags: survive & 0x1FF}
}

// Registry lets a host register additional named presets at runtime.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]node.Rule
}

// NewRegistry creates a registry preloaded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]node.Rule)}
	for _, preset := range []node.Rule{Life(), HighLife(), Seeds(), DayAndNight()} {
		r.rules[preset.Name] = preset
	}
	return r
}

// Register adds or replaces a named rule.
func (r *Registry) Register(rule node.Rule) error {
	if rule.Name == "" {
		return fmt.Errorf("rule: name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.Name] = rule
	return nil
}

// Lookup returns the rule registered under name.
func (r *Registry) Lookup(name string) (node.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	if !ok {
		return node.Rule{}, fmt.Errorf("rule: no rule registered under %q", name)
	}
	return rule, nil
}

// Names returns every registered rule name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	return names
}
