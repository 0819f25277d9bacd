package main

import (
	"strings"
	"testing"
)

func TestCheckFFTboxIncommensurate(t *testing.T) {
	c := NewCrystal(cubicBasis(1))
	c.Species = []Species{{Name: "X", Pos: []Vec3{{0, 0, 0}}}}
	c.Grid = Grid{S: [3]int{4, 6, 4}}
	rz90 := IntMat{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	s := &Symmetries{Mode: SymManual, Manual: []IntMat{Identity(), rz90}}
	if err := s.Setup(c); err != nil {
		t.Fatal(err)
	}
	err := s.SetupMesh()
	if err == nil {
		t.Fatal("wanted commensurability error, got nil")
	}
	if !strings.Contains(err.Error(), "not commensurate") {
		t.Errorf("got %q, wanted commensurability error", err)
	}
}

func TestSymmIndexPartition(t *testing.T) {
	c := singleAtomCrystal(Vec3{0, 0, 0})
	s := &Symmetries{}
	if err := s.Setup(c); err != nil {
		t.Fatal(err)
	}
	if err := s.SetupMesh(); err != nil {
		t.Fatal(err)
	}
	n := len(s.sym)
	if n != 48 {
		t.Fatalf("got %d operations, wanted 48", n)
	}
	if got, want := s.NClasses(), 10; got != want {
		t.Errorf("got %d classes, wanted %d", got, want)
	}
	if got, want := len(s.symmIndex), s.NClasses()*n; got != want {
		t.Fatalf("got %d index entries, wanted %d", got, want)
	}
	// every grid point appears, and only within a single class
	class := make([]int, c.Grid.N())
	for i := range class {
		class[i] = -1
	}
	for i, idx := range s.symmIndex {
		if idx < 0 || idx >= c.Grid.N() {
			t.Fatalf("index %d out of range", idx)
		}
		ic := i / n
		if class[idx] >= 0 && class[idx] != ic {
			t.Errorf("grid point %d in classes %d and %d", idx, class[idx], ic)
		}
		class[idx] = ic
	}
	for idx, ic := range class {
		if ic < 0 {
			t.Errorf("grid point %d not covered by any class", idx)
		}
	}
}

func TestEmbedCenterInvariant(t *testing.T) {
	c := singleAtomCrystal(Vec3{0.5, 0.5, 0.5})
	c.Truncated = [3]bool{false, false, true}
	c.Embed = true
	c.EmbedCenter = Vec3{0.5, 0.5, 0.5}
	s := &Symmetries{}
	if err := s.Setup(c); err != nil {
		t.Fatal(err)
	}
	if err := s.SetupMesh(); err != nil {
		t.Fatal(err)
	}
	want := Vec3{0.5, 0.5, 0.5}
	if c.EmbedCenter != want {
		t.Errorf("got embed center %v, wanted %v", c.EmbedCenter, want)
	}
}

func TestEmbedCenterRelocates(t *testing.T) {
	// a center invariant under the operations but off the grid moves
	// to the nearest invariant grid point
	c := NewCrystal(cubicBasis(1))
	c.Species = []Species{{Name: "X", Pos: []Vec3{{0.5, 0, 0.37}}}}
	c.Grid = Grid{S: [3]int{4, 4, 4}}
	c.Embed = true
	c.EmbedCenter = Vec3{0.5, 0, 0.37}
	c2z := IntMat{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	s := &Symmetries{Mode: SymManual, Manual: []IntMat{Identity(), c2z}}
	if err := s.Setup(c); err != nil {
		t.Fatal(err)
	}
	if err := s.SetupMesh(); err != nil {
		t.Fatal(err)
	}
	want := Vec3{0.5, 0, 0.25}
	if circDistSq(c.EmbedCenter, want) > 1e-12 {
		t.Errorf("got embed center %v, wanted %v", c.EmbedCenter, want)
	}
}

func TestEmbedCenterNotInvariant(t *testing.T) {
	c := singleAtomCrystal(Vec3{0, 0, 0})
	c.Embed = true
	c.EmbedCenter = Vec3{0.1, 0.2, 0.3}
	s := &Symmetries{}
	if err := s.Setup(c); err != nil {
		t.Fatal(err)
	}
	err := s.SetupMesh()
	if err == nil {
		t.Fatal("wanted invariance error, got nil")
	}
	if !strings.Contains(err.Error(), "not invariant") {
		t.Errorf("got %q, wanted invariance error", err)
	}
}
