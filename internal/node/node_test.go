package node

import "testing"

func TestNewLeafPopulation(t *testing.T) {
	s := NewStore()

	dead := s.NewLeaf(false)
	if s.Population(dead) != 0 {
		t.Errorf("dead leaf population = %d, want 0", s.Population(dead))
	}
	if s.IsAlive(dead) {
		t.Error("dead leaf reports alive")
	}

	alive := s.NewLeaf(true)
	if s.Population(alive) != 1 {
		t.Errorf("alive leaf population = %d, want 1", s.Population(alive))
	}
	if !s.IsAlive(alive) {
		t.Error("alive leaf reports dead")
	}
}

func TestNewBranchPopulationSum(t *testing.T) {
	s := NewStore()
	dead := s.NewLeaf(false)
	alive := s.NewLeaf(true)

	id, err := s.NewBranch(alive, dead, alive, alive)
	if err != nil {
		t.Fatalf("NewBranch: %v", err)
	}
	if got := s.Population(id); got != 3 {
		t.Errorf("branch population = %d, want 3", got)
	}
	if got := s.Level(id); got != 1 {
		t.Errorf("branch level = %d, want 1", got)
	}
}

func TestNewBranchRejectsNil(t *testing.T) {
	s := NewStore()
	alive := s.NewLeaf(true)
	if _, err := s.NewBranch(alive, Nil, alive, alive); err == nil {
		t.Error("NewBranch with a Nil child should error")
	}
}

func TestNewBranchRejectsMismatchedLevels(t *testing.T) {
	s := NewStore()
	dead := s.NewLeaf(false)
	alive := s.NewLeaf(true)
	lvl1, err := s.NewBranch(dead, dead, dead, alive)
	if err != nil {
		t.Fatalf("NewBranch: %v", err)
	}
	if _, err := s.NewBranch(lvl1, dead, dead, dead); err == nil {
		t.Error("NewBranch with mismatched child levels should error")
	}
}

func TestFutureListGetAdd(t *testing.T) {
	s := NewStore()
	n := s.NewLeaf(false)

	if _, ok := s.GetFuture(n, 0); ok {
		t.Error("fresh node should have no recorded future")
	}

	future := s.NewLeaf(true)
	s.AddFuture(n, 0, future)

	got, ok := s.GetFuture(n, 0)
	if !ok || got != future {
		t.Errorf("GetFuture(0) = (%v, %v), want (%v, true)", got, ok, future)
	}

	if _, ok := s.GetFuture(n, 1); ok {
		t.Error("GetFuture for an unrecorded power should miss")
	}
}

func TestChildrenRoundTrip(t *testing.T) {
	s := NewStore()
	a := s.NewLeaf(true)
	b := s.NewLeaf(false)
	c := s.NewLeaf(true)
	d := s.NewLeaf(false)

	id, err := s.NewBranch(a, b, c, d)
	if err != nil {
		t.Fatalf("NewBranch: %v", err)
	}

	nw, ne, sw, se := s.Children(id)
	if nw != a || ne != b || sw != c || se != d {
		t.Errorf("Children() = (%v,%v,%v,%v), want (%v,%v,%v,%v)", nw, ne, sw, se, a, b, c, d)
	}
}
