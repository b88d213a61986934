// Package benchmark holds standalone Go benchmarks for the engine's
// generation-advancing hot path, separate from the package-level unit
// tests that live alongside the code they cover.
package benchmark

import (
	"context"
	"testing"

	"github.com/xDarkicex/hashlife/hashlife"
	"github.com/xDarkicex/hashlife/internal/rule"
)

func BenchmarkRunSmallAdvance(b *testing.B) {
	engine, err := hashlife.New(rule.Life(), hashlife.WithMetrics(false))
	if err != nil {
		b.Fatalf("hashlife.New: %v", err)
	}
	defer engine.Close()

	root, err := engine.EmptyRoot()
	if err != nil {
		b.Fatalf("EmptyRoot: %v", err)
	}
	glider := [][2]int64{{0, 1}, {1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	for _, c := range glider {
		root, err = engine.SetCell(root, c[0], c[1], true)
		if err != nil {
			b.Fatalf("SetCell: %v", err)
		}
	}

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if root, err = engine.Run(ctx, root, 4); err != nil {
			b.Fatalf("Run: %v", err)
		}
	}
}

func BenchmarkRunExponentialAdvance(b *testing.B) {
	engine, err := hashlife.New(rule.Life(), hashlife.WithMetrics(false))
	if err != nil {
		b.Fatalf("hashlife.New: %v", err)
	}
	defer engine.Close()

	root, err := engine.EmptyRoot()
	if err != nil {
		b.Fatalf("EmptyRoot: %v", err)
	}
	glider := [][2]int64{{0, 1}, {1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	for _, c := range glider {
		root, err = engine.SetCell(root, c[0], c[1], true)
		if err != nil {
			b.Fatalf("SetCell: %v", err)
		}
	}

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = engine.Run(ctx, root, 1<<30); err != nil {
			b.Fatalf("Run: %v", err)
		}
	}
}

func BenchmarkSetCellScattered(b *testing.B) {
	engine, err := hashlife.New(rule.Life(), hashlife.WithMetrics(false))
	if err != nil {
		b.Fatalf("hashlife.New: %v", err)
	}
	defer engine.Close()

	root, err := engine.EmptyRoot()
	if err != nil {
		b.Fatalf("EmptyRoot: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := int64(i%997) - 498
		y := int64((i*7)%997) - 498
		if root, err = engine.SetCell(root, x, y, i%2 == 0); err != nil {
			b.Fatalf("SetCell: %v", err)
		}
	}
}
