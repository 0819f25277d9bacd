package main

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Numerical tolerance for all symmetry comparisons in lattice
// coordinates. Overridden by the tolerance keyword.
var (
	symmTol   = 1e-4
	symmTolSq = symmTol * symmTol
)

// SetTolerance sets the global symmetry tolerance and its square
func SetTolerance(tol float64) {
	symmTol = tol
	symmTolSq = tol * tol
}

// Vec3 is a point or direction in lattice or cartesian coordinates
type Vec3 [3]float64

// Add returns v + w
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns a*v
func (v Vec3) Scale(a float64) Vec3 {
	return Vec3{a * v[0], a * v[1], a * v[2]}
}

// Dot returns the dot product of v and w
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Norm returns the euclidean length of v
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// circDistSq returns the squared distance between a and b in
// fractional coordinates, wrapping each component to the shortest
// periodic image
func circDistSq(a, b Vec3) (d float64) {
	for i := 0; i < 3; i++ {
		x := a[i] - b[i]
		x -= math.Round(x)
		d += x * x
	}
	return
}

// IntMat is an integer 3x3 matrix acting on lattice coordinates. The
// rotation/reflection part of a symmetry operation is always exactly
// integral in this basis.
type IntMat [3][3]int

// Identity returns the identity matrix
func Identity() IntMat {
	return IntMat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mul returns the matrix product m*n
func (m IntMat) Mul(n IntMat) (p IntMat) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				p[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return
}

// MulVec returns m*v
func (m IntMat) MulVec(v Vec3) (w Vec3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w[i] += float64(m[i][j]) * v[j]
		}
	}
	return
}

// MulIntVec returns m*v for an integer vector
func (m IntMat) MulIntVec(v [3]int) (w [3]int) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w[i] += m[i][j] * v[j]
		}
	}
	return
}

// Transpose returns the transpose of m
func (m IntMat) Transpose() (t IntMat) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return
}

// Det returns the determinant of m
func (m IntMat) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inv returns the inverse of a unimodular m. It panics if
// det(m) is not +/-1 since the inverse is not integral otherwise.
func (m IntMat) Inv() (inv IntMat) {
	d := m.Det()
	if d != 1 && d != -1 {
		panic("Inv called on non-unimodular matrix")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// adjugate: transposed cofactors
			a, b := (i+1)%3, (i+2)%3
			c, e := (j+1)%3, (j+2)%3
			inv[j][i] = d * (m[a][c]*m[b][e] - m[a][e]*m[b][c])
		}
	}
	return
}

// String formats m in rows of right-aligned entries
func (m IntMat) String() string {
	var buf strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&buf, " %2d %2d %2d\n", m[i][0], m[i][1], m[i][2])
	}
	return buf.String()
}

// mulVecDense returns r*v for a dense 3x3 matrix
func mulVecDense(r *mat.Dense, v Vec3) (w Vec3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w[i] += r.At(i, j) * v[j]
		}
	}
	return
}

// cartRot expresses the lattice-coordinate operation m as a cartesian
// rotation matrix R*m*inv(R)
func cartRot(R, invR *mat.Dense, m IntMat) *mat.Dense {
	md := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			md.Set(i, j, float64(m[i][j]))
		}
	}
	tmp := mat.NewDense(3, 3, nil)
	tmp.Mul(R, md)
	out := mat.NewDense(3, 3, nil)
	out.Mul(tmp, invR)
	return out
}
