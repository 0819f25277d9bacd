package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// reduceBasis performs a unimodular pair reduction of the lattice
// vectors (the columns of R), shortening each vector against the
// others until stable. It returns the reduced basis and the integer
// transmission matrix T with Rred = R*T.
func reduceBasis(R *mat.Dense) (*mat.Dense, IntMat) {
	cols := [3]Vec3{}
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			cols[j][i] = R.At(i, j)
		}
	}
	T := Identity()
	for changed := true; changed; {
		changed = false
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if i == j {
					continue
				}
				k := int(math.Round(cols[i].Dot(cols[j]) / cols[j].Dot(cols[j])))
				if k == 0 {
					continue
				}
				// apply only when the vector strictly shortens: at a
				// projection ratio of exactly 1/2 (fcc, hexagonal) the
				// rounded coefficient swaps between equal-norm vectors
				// and the sweep would never settle
				cand := cols[i].Sub(cols[j].Scale(float64(k)))
				if cand.Dot(cand) >= cols[i].Dot(cols[i]) {
					continue
				}
				cols[i] = cand
				// column op on T: T_i -= k*T_j
				for row := 0; row < 3; row++ {
					T[row][i] -= k * T[row][j]
				}
				changed = true
			}
		}
	}
	Rred := mat.NewDense(3, 3, nil)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			Rred.Set(i, j, cols[j][i])
		}
	}
	return Rred, T
}

// metric returns G = Rᵀ*R
func metric(R *mat.Dense) *mat.Dense {
	G := mat.NewDense(3, 3, nil)
	G.Mul(R.T(), R)
	return G
}

// preservesMetric reports whether mᵀ*G*m == G within tolerance,
// relative to the largest metric entry
func preservesMetric(m IntMat, G *mat.Dense) bool {
	scale := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a := math.Abs(G.At(i, j)); a > scale {
				scale = a
			}
		}
	}
	tol := symmTol * scale
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var g float64
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					g += float64(m[a][i]) * G.At(a, b) * float64(m[b][j])
				}
			}
			if math.Abs(g-G.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

// mixesTruncated reports whether m couples a truncated lattice
// direction to a periodic one. Such operations cannot be symmetries
// of a truncated system.
func mixesTruncated(m IntMat, truncated [3]bool) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if truncated[i] != truncated[j] && m[i][j] != 0 {
				return true
			}
		}
	}
	return false
}

// LatticeSymmetries enumerates the integer point-group operations of
// the Bravais lattice with basis R, excluding operations that mix
// truncated and periodic directions. The search runs on the reduced
// basis, where every point-group operation has entries in {-1,0,1},
// and the results are transformed back to the input basis. The
// reduced basis and the transmission matrix relating it to R are
// returned alongside the operations.
func LatticeSymmetries(R *mat.Dense, truncated [3]bool) ([]IntMat, *mat.Dense, IntMat) {
	Rred, T := reduceBasis(R)
	if T != Identity() {
		fmt.Printf("non-trivial transmission matrix:\n%v"+
			"with reduced lattice vectors:\n%v\n", T, mat.Formatted(Rred))
	}
	G := metric(Rred)
	Tinv := T.Inv()
	var sym []IntMat
	var m IntMat
	// 9 entries, each in {-1,0,1}
	for n := 0; n < 19683; n++ {
		v := n
		for e := 0; e < 9; e++ {
			m[e/3][e%3] = v%3 - 1
			v /= 3
		}
		if d := m.Det(); d != 1 && d != -1 {
			continue
		}
		if !preservesMetric(m, G) {
			continue
		}
		// back to the input basis: x' = T*m*T⁻¹*x
		mOrig := T.Mul(m).Mul(Tinv)
		if mixesTruncated(mOrig, truncated) {
			continue
		}
		sym = append(sym, mOrig)
	}
	return sym, Rred, T
}
