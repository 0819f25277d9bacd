package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SymDump is the JSON form of the derived symmetry tables, written
// for downstream consumers that need the operation set without
// re-running the search
type SymDump struct {
	Ops        []IntMat  `json:"ops"`
	MeshOps    []IntMat  `json:"meshOps"`
	AtomMap    [][][]int `json:"atomMap"`
	InvertList []int     `json:"invertList"`
	NClasses   int       `json:"nClasses"`
	KPoints    []KPoint  `json:"kpoints"`
}

// WriteSymDump writes the derived tables of s and the reduced
// k-points to symm.json in dir
func WriteSymDump(dir string, s *Symmetries, kpts []KPoint) error {
	d := SymDump{
		Ops:        s.Matrices(),
		MeshOps:    s.MeshMatrices(),
		AtomMap:    s.AtomMap(),
		InvertList: s.KpointInvertList(),
		NClasses:   s.NClasses(),
		KPoints:    kpts,
	}
	buf, err := json.MarshalIndent(d, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "symm.json"), buf, 0644)
}

// ReadSymDump restores the derived tables from a symm.json
func ReadSymDump(path string) (*SymDump, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d SymDump
	if err := json.Unmarshal(buf, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
