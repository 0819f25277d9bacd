package main

import (
	"math"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFullSC(t *testing.T) {
	resetConf()
	ParseInfile("testfiles/sc.in")
	c, s := BuildCrystal()
	if err := s.Setup(c); err != nil {
		t.Fatal(err)
	}
	if err := s.SetupMesh(); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Matrices()); got != 48 {
		t.Errorf("got %d operations, wanted 48", got)
	}
	red := s.ReduceKmesh(c.KPoints)
	if got, want := len(red), 10; got != want {
		t.Errorf("got %d k-points, wanted %d", got, want)
	}
	if got := meshWeight(red); math.Abs(got-1) > 1e-12 {
		t.Errorf("got total weight %v, wanted 1", got)
	}
	if got, want := s.NClasses(), 10; got != want {
		t.Errorf("got %d classes, wanted %d", got, want)
	}

	dir := t.TempDir()
	if err := WriteSymDump(dir, s, red); err != nil {
		t.Fatal(err)
	}
	d, err := ReadSymDump(filepath.Join(dir, "symm.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d.Ops, s.Matrices()) {
		t.Error("operations did not survive the dump round trip")
	}
	if !reflect.DeepEqual(d.MeshOps, s.MeshMatrices()) {
		t.Error("mesh operations did not survive the dump round trip")
	}
	if !reflect.DeepEqual(d.AtomMap, s.AtomMap()) {
		t.Error("atom map did not survive the dump round trip")
	}
	if !reflect.DeepEqual(d.KPoints, red) {
		t.Error("k-points did not survive the dump round trip")
	}
	if d.NClasses != s.NClasses() {
		t.Errorf("got %d classes from dump, wanted %d", d.NClasses, s.NClasses())
	}
}

func TestFullNaCl(t *testing.T) {
	resetConf()
	ParseInfile("testfiles/nacl.in")
	c, s := BuildCrystal()
	if s.Mode != SymManual {
		t.Fatalf("got mode %v, wanted manual", s.Mode)
	}
	if err := s.Setup(c); err != nil {
		t.Fatal(err)
	}
	if err := s.SetupMesh(); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Matrices()); got != 1 {
		t.Errorf("got %d operations, wanted 1", got)
	}
	red := s.ReduceKmesh(c.KPoints)
	// the identity relates nothing, and gamma is not the negation of
	// the second point
	if got, want := len(red), 2; got != want {
		t.Errorf("got %d k-points, wanted %d", got, want)
	}
	if got := meshWeight(red); math.Abs(got-1) > 1e-12 {
		t.Errorf("got total weight %v, wanted 1", got)
	}
}
