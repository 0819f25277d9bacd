package main

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// symmetrizeClasses replaces the values of x at each equivalence
// class with their average. This is the narrow kernel a device-backed
// field buffer would provide; the host implementation gathers and
// scatters through the index directly.
func symmetrizeClasses(nClasses, groupSize int, index []int, x []float64) {
	buf := make([]float64, groupSize)
	for c := 0; c < nClasses; c++ {
		members := index[c*groupSize : (c+1)*groupSize]
		for i, idx := range members {
			buf[i] = x[idx]
		}
		avg := floats.Sum(buf) / float64(groupSize)
		for _, idx := range members {
			x[idx] = avg
		}
	}
}

// SymmetrizeField averages the scalar field x over the real-space
// equivalence classes in place
func (s *Symmetries) SymmetrizeField(x []float64) error {
	if len(s.sym) == 1 {
		return nil
	}
	if len(x) != s.cryst.Grid.N() {
		return fmt.Errorf("field length %d does not match grid size %d",
			len(x), s.cryst.Grid.N())
	}
	symmetrizeClasses(s.NClasses(), len(s.sym), s.symmIndex, x)
	return nil
}

// SymmetrizeForces averages the per-atom force vectors (lattice
// coordinates, indexed like the species list) over the operation set
// in place, pulling each contribution back through the transposed
// operation and the atom map
func (s *Symmetries) SymmetrizeForces(f [][]Vec3) {
	if len(s.sym) <= 1 {
		return
	}
	inv := 1 / float64(len(s.sym))
	for sp := range f {
		temp := make([]Vec3, len(f[sp]))
		for atom := range f[sp] {
			for iRot, m := range s.sym {
				temp[atom] = temp[atom].Add(
					m.Transpose().MulVec(f[sp][s.atomMap[sp][atom][iRot]]))
			}
		}
		for atom := range f[sp] {
			f[sp][atom] = temp[atom].Scale(inv)
		}
	}
}
