package main

import (
	"fmt"
	"math"
)

// ReduceKmesh merges symmetry-equivalent k-points, accumulating their
// weights onto the first occurrence. A first pass uses only the
// discovered operations; a second pass additionally negates the
// k-vectors, standing in for time reversal. If the second pass merged
// anything, the invert list is {+1,-1}, otherwise {+1}. Total weight
// is conserved.
func (s *Symmetries) ReduceKmesh(qnums []KPoint) []KPoint {
	out := append([]KPoint(nil), qnums...)
	if s.Mode == SymNone {
		s.invertList = []int{1}
		return out
	}
	removed := make([]bool, len(out))
	usedInversion := false
	for _, invert := range []int{1, -1} {
		for i := range out {
			if removed[i] {
				continue
			}
			// gobble up the weights of all subsequent equivalent points
			for j := i + 1; j < len(out); j++ {
				if removed[j] {
					continue
				}
				found := false
				for _, m := range s.sym {
					kj := out[j].K.Scale(float64(invert))
					if circDistSq(m.Transpose().MulVec(out[i].K), kj) < symmTolSq {
						found = true
						if invert < 0 {
							usedInversion = true
						}
						break
					}
				}
				if found {
					out[i].Weight += out[j].Weight
					removed[j] = true
				}
			}
		}
	}
	kept := out[:0]
	for i := range out {
		if !removed[i] {
			kept = append(kept, out[i])
		}
	}
	if usedInversion {
		fmt.Printf("adding inversion symmetry to k-mesh for non-inversion-symmetric unit cell\n")
		s.invertList = []int{1, -1}
	} else {
		s.invertList = []int{1}
	}
	return kept
}

// checkKmesh warns when the symmetries of the k-point mesh form a
// proper subgroup of the basis symmetries. The run continues: the
// effectively sampled mesh is then a superset of the specified one.
func (s *Symmetries) checkKmesh() {
	qnums := s.cryst.KPoints
	if len(qnums) == 0 {
		return
	}
	var symKmesh []IntMat
	for _, m := range s.sym {
		symmetric := true
		for _, q1 := range qnums {
			found := false
			for _, q2 := range qnums {
				if circDistSq(m.Transpose().MulVec(q1.K), q2.K) < symmTolSq &&
					math.Abs(q1.Weight-q2.Weight) < symmTol {
					found = true
					break
				}
			}
			if !found {
				symmetric = false
				break
			}
		}
		if symmetric {
			symKmesh = append(symKmesh, m)
		}
	}
	if len(symKmesh) < len(s.sym) {
		fmt.Printf("WARNING: k-mesh symmetries are a subgroup of size %d\n", len(symKmesh))
		if s.PrintMatrices {
			for _, m := range symKmesh {
				fmt.Printf("%v\n", m)
			}
		}
		fmt.Printf("the effectively sampled k-mesh is a superset of the specified one,\n" +
			"and the answers need not match those with symmetries turned off\n")
	}
}

// GammaCenteredMesh generates an n1 x n2 x n3 k-point mesh containing
// the origin, with components wrapped to [-1/2, 1/2) and uniform
// weights summing to 1
func GammaCenteredMesh(n [3]int) []KPoint {
	total := n[0] * n[1] * n[2]
	if total <= 0 {
		panic("empty k-point mesh")
	}
	w := 1 / float64(total)
	var ks []KPoint
	for i := 0; i < n[0]; i++ {
		for j := 0; j < n[1]; j++ {
			for k := 0; k < n[2]; k++ {
				v := Vec3{
					float64(i) / float64(n[0]),
					float64(j) / float64(n[1]),
					float64(k) / float64(n[2]),
				}
				for a := 0; a < 3; a++ {
					if v[a] >= 0.5 {
						v[a]--
					}
				}
				ks = append(ks, KPoint{K: v, Weight: w})
			}
		}
	}
	return ks
}
