package main

import (
	"reflect"
	"testing"
)

// resetConf clears any values left over from another test
func resetConf() {
	for k := range Conf {
		Conf[k].Value = nil
	}
}

func TestParseInfileSC(t *testing.T) {
	resetConf()
	ParseInfile("testfiles/sc.in")
	got := Conf.At(Lattice)
	want := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v", got, want)
	}
	if got, ok := Conf.Ints3(GridSize); !ok || got != [3]int{4, 4, 4} {
		t.Errorf("got %v, wanted [4 4 4]", got)
	}
	if got, ok := Conf.Ints3(KMesh); !ok || got != [3]int{4, 4, 4} {
		t.Errorf("got %v, wanted [4 4 4]", got)
	}
	species := Conf.At(Atoms).([]Species)
	if len(species) != 1 || species[0].Name != "X" {
		t.Fatalf("got %v, wanted one species X", species)
	}
	if species[0].Pos[0] != (Vec3{0, 0, 0}) {
		t.Errorf("got %v, wanted origin", species[0].Pos[0])
	}
}

func TestParseInfileNaCl(t *testing.T) {
	resetConf()
	ParseInfile("testfiles/nacl.in")
	species := Conf.At(Atoms).([]Species)
	if len(species) != 2 {
		t.Fatalf("got %d species, wanted 2", len(species))
	}
	na, cl := species[0], species[1]
	if na.Name != "Na" || len(na.Pos) != 2 {
		t.Errorf("got %s with %d atoms, wanted Na with 2", na.Name, len(na.Pos))
	}
	if cl.Name != "Cl" || len(cl.Pos) != 2 {
		t.Fatalf("got %s with %d atoms, wanted Cl with 2", cl.Name, len(cl.Pos))
	}
	if got := cl.Moment(0); got != 0.5 {
		t.Errorf("got moment %v, wanted 0.5", got)
	}
	if got := cl.Constraint(0); got.Kind != MoveFixed {
		t.Errorf("got constraint %v, wanted fixed", got)
	}
	con := cl.Constraint(1)
	if con.Kind != MoveLine || con.Dir != (Vec3{0, 0, 1}) || con.Scale != 0.5 {
		t.Errorf("got constraint %+v, wanted line along z with scale 0.5", con)
	}
	// na atoms default to free movement with unit scale
	if got := na.Constraint(0); got.Kind != MoveFree || got.Scale != 1 {
		t.Errorf("got constraint %+v, wanted free with scale 1", got)
	}
	kpts := Conf.At(KPts).([]KPoint)
	want := []KPoint{
		{K: Vec3{0, 0, 0}, Weight: 0.25},
		{K: Vec3{0.25, 0, 0}, Weight: 0.75},
	}
	if !reflect.DeepEqual(kpts, want) {
		t.Errorf("got %v, wanted %v", kpts, want)
	}
	if got := Conf.At(SymmetryMode); got != SymManual {
		t.Errorf("got mode %v, wanted manual", got)
	}
	mats := Conf.At(SymMats).([]IntMat)
	if len(mats) != 1 || mats[0] != Identity() {
		t.Errorf("got %v, wanted the identity", mats)
	}
	if Conf.Bool(MoveAtoms) {
		t.Error("got moveatoms true, wanted false")
	}
	if got := Conf.Float(Tolerance, 1e-4); got != 1e-5 {
		t.Errorf("got tolerance %v, wanted 1e-5", got)
	}
}

func TestProcessInputUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("wanted panic on unknown keyword, got none")
		}
	}()
	ProcessInput("nonsense", "1")
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"yes", true},
		{"1", true},
		{" False ", false},
		{"no", false},
		{"0", false},
	}
	for _, test := range tests {
		if got := parseBool(test.in).(bool); got != test.want {
			t.Errorf("parseBool(%q) = %v, wanted %v", test.in, got, test.want)
		}
	}
}
