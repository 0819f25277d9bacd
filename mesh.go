package main

import (
	"fmt"
	"math"
)

// checkFFTbox derives the integer grid-coordinate form of every
// operation, Diag(S)*m*Diag(S)⁻¹, failing if any entry does not
// divide exactly: such a grid cannot represent the symmetry. If a
// truncation embedding center is configured it must be invariant
// under every operation, and is then moved to the nearest invariant
// grid point.
func (s *Symmetries) checkFFTbox() error {
	S := s.cryst.Grid.S
	s.symMesh = make([]IntMat, len(s.sym))
	for iRot, m := range s.sym {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				e := S[i] * m[i][j]
				if e%S[j] != 0 {
					return fmt.Errorf("FFT box %v not commensurate with symmetry matrix:\n%v",
						S, m)
				}
				s.symMesh[iRot][i][j] = e / S[j]
			}
		}
	}
	if !s.cryst.Embed {
		return nil
	}
	c := s.cryst.EmbedCenter
	for _, m := range s.sym {
		if circDistSq(c, m.MulVec(c)) > symmTolSq {
			return fmt.Errorf("truncation embedding center is not invariant under symmetry matrix:\n%v", m)
		}
	}
	// relocate the center to the nearest symmetry-invariant grid
	// point, searching outward over Manhattan-distance shells
	var iv0 [3]int
	for k := 0; k < 3; k++ {
		iv0[k] = int(math.Round(c[k] * float64(S[k])))
	}
	var dv [3]int
	for d := 0; d <= (S[0]+S[1]+S[2])/2+1; d++ {
		for dv[0] = -d; dv[0] <= d; dv[0]++ {
			d0 := d - IntAbs(dv[0])
			for dv[1] = -d0; dv[1] <= d0; dv[1]++ {
				d1 := d0 - IntAbs(dv[1])
				// only points with |dv0|+|dv1|+|dv2| == d
				for dv[2] = -d1; dv[2] <= d1; dv[2] += 2 * IntMax(1, d1) {
					var x Vec3
					for k := 0; k < 3; k++ {
						x[k] = float64(iv0[k]+dv[k]) / float64(S[k])
					}
					valid := true
					for _, m := range s.sym {
						if circDistSq(x, m.MulVec(x)) > symmTolSq {
							valid = false
							break
						}
					}
					if valid {
						s.cryst.EmbedCenter = x
						return nil
					}
				}
			}
		}
	}
	return fmt.Errorf("no grid point invariant under symmetries found near the " +
		"truncation embedding center; center on the origin or disable symmetries")
}

// initSymmIndex partitions the grid points into equivalence classes
// under the mesh-space operations. The flat index sequence stores,
// per class, the image of its seed point under every operation in
// operation order, so len(symmIndex) = nClasses * len(sym). Skipped
// when the identity is the only operation.
func (s *Symmetries) initSymmIndex() {
	if len(s.sym) == 1 {
		return
	}
	g := s.cryst.Grid
	done := make([]bool, g.N())
	s.symmIndex = make([]int, 0, g.N())
	var r [3]int
	for r[0] = 0; r[0] < g.S[0]; r[0]++ {
		for r[1] = 0; r[1] < g.S[1]; r[1]++ {
			for r[2] = 0; r[2] < g.S[2]; r[2]++ {
				if done[g.Index(r)] {
					continue
				}
				for _, m := range s.symMesh {
					idx := g.WrapIndex(m.MulIntVec(r))
					s.symmIndex = append(s.symmIndex, idx)
					done[idx] = true
				}
			}
		}
	}
}
