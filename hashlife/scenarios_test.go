package hashlife

import (
	"context"
	"testing"
)

func TestRunBlockStillLifeIsUnchangedByAnyGenerationCount(t *testing.T) {
	e := newTestEngine(t)
	root, err := e.EmptyRoot()
	if err != nil {
		t.Fatalf("EmptyRoot: %v", err)
	}

	coords := [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, c := range coords {
		root, err = e.SetCell(root, c[0], c[1], true)
		if err != nil {
			t.Fatalf("SetCell(%d,%d): %v", c[0], c[1], err)
		}
	}

	for _, n := range []uint64{1, 10, 1000, 1_000_000} {
		next, err := e.Run(context.Background(), root, n)
		if err != nil {
			t.Fatalf("Run(root, %d): %v", n, err)
		}
		if e.Population(next) != 4 {
			t.Errorf("Run(root, %d): population = %d, want 4", n, e.Population(next))
		}
		for _, c := range coords {
			if !e.GetCell(next, c[0], c[1]) {
				t.Errorf("Run(root, %d): cell (%d,%d) should remain alive", n, c[0], c[1])
			}
		}
	}
}

func TestRunGliderTranslatesDiagonallyEveryFourGenerations(t *testing.T) {
	e := newTestEngine(t)
	root, err := e.EmptyRoot()
	if err != nil {
		t.Fatalf("EmptyRoot: %v", err)
	}

	// Standard five-cell glider, period 4, drifting toward +x,+y.
	glider := [][2]int64{{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	for _, c := range glider {
		root, err = e.SetCell(root, c[0], c[1], true)
		if err != nil {
			t.Fatalf("SetCell(%d,%d): %v", c[0], c[1], err)
		}
	}

	next, err := e.Run(context.Background(), root, 4)
	if err != nil {
		t.Fatalf("Run(root, 4): %v", err)
	}

	if e.Population(next) != 5 {
		t.Errorf("Population after 4 generations = %d, want 5", e.Population(next))
	}
	for _, c := range glider {
		tx, ty := c[0]+1, c[1]+1
		if !e.GetCell(next, tx, ty) {
			t.Errorf("GetCell(%d,%d) = false after translation, want true", tx, ty)
		}
	}
}

func TestRunEmptyFieldStaysEmptyAndCompactsToCatalogZero(t *testing.T) {
	e := newTestEngine(t)
	root, err := e.EmptyRoot()
	if err != nil {
		t.Fatalf("EmptyRoot: %v", err)
	}

	next, err := e.Run(context.Background(), root, 1<<20)
	if err != nil {
		t.Fatalf("Run(root, 2^20): %v", err)
	}
	if e.Population(next) != 0 {
		t.Errorf("Population of an always-empty field = %d, want 0", e.Population(next))
	}
	if e.Level(next) > e.Level(root) {
		t.Errorf("Level after running an empty field grew from %d to %d, compaction should trim it back", e.Level(root), e.Level(next))
	}
}

func TestRunExponentialAdvanceOnAStillLifeCompletes(t *testing.T) {
	e := newTestEngine(t)
	root, err := e.EmptyRoot()
	if err != nil {
		t.Fatalf("EmptyRoot: %v", err)
	}

	coords := [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, c := range coords {
		root, err = e.SetCell(root, c[0], c[1], true)
		if err != nil {
			t.Fatalf("SetCell(%d,%d): %v", c[0], c[1], err)
		}
	}

	root, err = e.Start(root)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	next, err := e.Run(context.Background(), root, 1<<40)
	if err != nil {
		t.Fatalf("Run(root, 2^40): %v", err)
	}
	if e.Population(next) != 4 {
		t.Errorf("Population after 2^40 generations = %d, want 4", e.Population(next))
	}
}

func TestRunTwiceFromSameRootReusesTheSamePointerIdentity(t *testing.T) {
	e := newTestEngine(t)
	root := blinkerRoot(t, e)

	first, err := e.Run(context.Background(), root, 1)
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	second, err := e.Run(context.Background(), root, 1)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	if first != second {
		t.Errorf("two Run(root, 1) calls from the same root returned different node IDs: %v vs %v", first, second)
	}
}
