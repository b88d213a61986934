package hashlife

import (
	"context"
	"testing"

	"github.com/xDarkicex/hashlife/internal/node"
)

func blinkerRoot(t *testing.T, e *Engine) node.ID {
	t.Helper()
	root, err := e.EmptyRoot()
	if err != nil {
		t.Fatalf("EmptyRoot: %v", err)
	}
	for _, y := range []int64{-1, 0, 1} {
		root, err = e.SetCell(root, 0, y, true)
		if err != nil {
			t.Fatalf("SetCell: %v", err)
		}
	}
	return root
}

func TestRunBlinkerOneGenerationRotates(t *testing.T) {
	e := newTestEngine(t)
	root := blinkerRoot(t, e)

	next, err := e.Run(context.Background(), root, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, x := range []int64{-1, 0, 1} {
		if !e.GetCell(next, x, 0) {
			t.Errorf("GetCell(%d, 0) = false after one generation, want true (horizontal blinker)", x)
		}
	}
	if e.GetCell(next, 0, -1) || e.GetCell(next, 0, 1) {
		t.Error("vertical blinker cells should be dead after rotating to horizontal")
	}
	if e.Population(next) != 3 {
		t.Errorf("Population after one generation = %d, want 3", e.Population(next))
	}
}

func TestRunBlinkerTwoGenerationsReturnsToVertical(t *testing.T) {
	e := newTestEngine(t)
	root := blinkerRoot(t, e)

	next, err := e.Run(context.Background(), root, 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, y := range []int64{-1, 0, 1} {
		if !e.GetCell(next, 0, y) {
			t.Errorf("GetCell(0, %d) = false after two generations, want true (vertical blinker restored)", y)
		}
	}
	if e.Population(next) != 3 {
		t.Errorf("Population after two generations = %d, want 3", e.Population(next))
	}
}

func TestRunBinaryDecompositionEquivalence(t *testing.T) {
	e := newTestEngine(t)
	root := blinkerRoot(t, e)

	direct, err := e.Run(context.Background(), root, 5)
	if err != nil {
		t.Fatalf("Run(root, 5): %v", err)
	}

	step, err := e.Run(context.Background(), root, 2)
	if err != nil {
		t.Fatalf("Run(root, 2): %v", err)
	}
	step, err = e.Run(context.Background(), step, 3)
	if err != nil {
		t.Fatalf("Run(step, 3): %v", err)
	}

	if e.Population(direct) != e.Population(step) {
		t.Errorf("population mismatch: Run(root,5)=%d vs Run(Run(root,2),3)=%d", e.Population(direct), e.Population(step))
	}
	for _, x := range []int64{-2, -1, 0, 1, 2} {
		for _, y := range []int64{-2, -1, 0, 1, 2} {
			if e.GetCell(direct, x, y) != e.GetCell(step, x, y) {
				t.Errorf("cell (%d,%d) differs between Run(root,5) and Run(Run(root,2),3)", x, y)
			}
		}
	}
}

func TestRunZeroGenerationsIsIdentity(t *testing.T) {
	e := newTestEngine(t)
	root := blinkerRoot(t, e)

	same, err := e.Run(context.Background(), root, 0)
	if err != nil {
		t.Fatalf("Run(root, 0): %v", err)
	}
	if e.Population(same) != 3 {
		t.Errorf("Population after zero generations = %d, want 3", e.Population(same))
	}
	for _, y := range []int64{-1, 0, 1} {
		if !e.GetCell(same, 0, y) {
			t.Errorf("GetCell(0, %d) = false after zero generations, want true", y)
		}
	}
}
