package main

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// lMaxSpherical is the highest angular momentum with a spherical
// rotation matrix table
const lMaxSpherical = 3

// Ylm evaluates the complex spherical harmonic of degree l and order
// m at the direction n, for l up to lMaxSpherical
func Ylm(l, m int, n Vec3) complex128 {
	if r := n.Norm(); r > 0 {
		n = n.Scale(1 / r)
	}
	x, y, z := n[0], n[1], n[2]
	am := IntAbs(m)
	var rad float64
	switch {
	case l == 0:
		rad = 0.28209479177387814
	case l == 1 && am == 0:
		rad = 0.48860251190291992 * z
	case l == 1 && am == 1:
		rad = 0.34549414947133548
	case l == 2 && am == 0:
		rad = 0.31539156525252005 * (3*z*z - 1)
	case l == 2 && am == 1:
		rad = 0.77254840404637908 * z
	case l == 2 && am == 2:
		rad = 0.38627420202318954
	case l == 3 && am == 0:
		rad = 0.37317633259011546 * z * (5*z*z - 3)
	case l == 3 && am == 1:
		rad = 0.32318018411415065 * (5*z*z - 1)
	case l == 3 && am == 2:
		rad = 1.02198547643328236 * z
	case l == 3 && am == 3:
		rad = 0.41722382363278409
	default:
		panic(fmt.Sprintf("Ylm: l=%d m=%d out of range", l, m))
	}
	// e^{imφ} sin^|m|θ carried by (x±iy)^|m|; Condon-Shortley sign
	// for positive m
	phase := cmplx.Pow(complex(x, math.Copysign(1, float64(m))*y), complex(float64(am), 0))
	if m > 0 && am%2 == 1 {
		phase = -phase
	}
	return complex(rad, 0) * phase
}

// cMul returns the complex matrix product a*b. mat.CDense carries no
// arithmetic of its own, and the matrices here are at most
// (2*lMaxSpherical+1)*nAtoms square, so a direct triple loop serves.
func cMul(a, b mat.CMatrix) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != rb {
		panic("cMul: dimension mismatch")
	}
	out := mat.NewCDense(ra, cb, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < cb; j++ {
			var sum complex128
			for k := 0; k < ca; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// invertCMatrix inverts a complex matrix through its real 2n x 2n
// embedding [[Re,-Im],[Im,Re]]
func invertCMatrix(b *mat.CDense) (*mat.CDense, error) {
	n, _ := b.Dims()
	big := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := b.At(i, j)
			big.Set(i, j, real(v))
			big.Set(i, j+n, -imag(v))
			big.Set(i+n, j, imag(v))
			big.Set(i+n, j+n, real(v))
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(big); err != nil {
		return nil, fmt.Errorf("singular spherical basis matrix: %w", err)
	}
	out := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, complex(inv.At(i, j), inv.At(i+n, j)))
		}
	}
	return out, nil
}

// SphericalMatrices returns, per operation, the (2l+1)x(2l+1) matrix
// rotating spherical-harmonic coefficients of angular momentum l.
// Matrices are built on first request and cached; the cache is the
// only mutable state after setup, so it carries its own lock.
func (s *Symmetries) SphericalMatrices(l int) ([]*mat.CDense, error) {
	if l > lMaxSpherical {
		return nil, fmt.Errorf("l=%d > lMax=%d supported for density matrix symmetrization",
			l, lMaxSpherical)
	}
	s.sphMu.Lock()
	defer s.sphMu.Unlock()
	if out, ok := s.sphCache[l]; ok {
		return out, nil
	}
	// sample directions at which the Ylm are linearly independent;
	// angles chosen for small basis-matrix condition numbers at l<=3
	nHat := make([]Vec3, 2*l+1)
	nHat[0] = Vec3{0, 0, 1}
	for m := 1; m <= l; m++ {
		phi := 2 / float64(l)
		theta := 2 * float64(m) / float64(l)
		st, ct := math.Sin(theta), math.Cos(theta)
		nHat[2*m-1] = Vec3{st, 0, ct}
		nHat[2*m] = Vec3{st * math.Cos(phi), st * math.Sin(phi), ct}
	}
	nm := 2*l + 1
	bOrig := mat.NewCDense(nm, nm, nil)
	for n, dir := range nHat {
		for m := -l; m <= l; m++ {
			bOrig.Set(l+m, n, Ylm(l, m, dir))
		}
	}
	bInv, err := invertCMatrix(bOrig)
	if err != nil {
		return nil, err
	}
	out := make([]*mat.CDense, len(s.sym))
	for iRot, op := range s.sym {
		rot := cartRot(s.cryst.R, s.cryst.invR, op)
		bRot := mat.NewCDense(nm, nm, nil)
		for n, dir := range nHat {
			rdir := mulVecDense(rot, dir)
			for m := -l; m <= l; m++ {
				bRot.Set(l+m, n, Ylm(l, m, rdir))
			}
		}
		out[iRot] = cMul(bRot, bInv)
	}
	s.sphCache[l] = out
	return out, nil
}

// SymmetrizeSpherical averages the Ylm-basis density matrix X of
// species sp over the operation set in place. X has dimension
// (2l+1)*nAtoms with orbital-major, atom-minor indexing; each
// operation acts as a block permutation from the atom map combined
// with the spherical rotation matrix for l.
func (s *Symmetries) SymmetrizeSpherical(X *mat.CDense, sp int) error {
	nAtoms := len(s.atomMap[sp])
	rows, cols := X.Dims()
	l := (rows/nAtoms - 1) / 2
	nm := 2*l + 1
	nTot := nm * nAtoms
	if rows != nTot || cols != nTot {
		return fmt.Errorf("density matrix is %dx%d, want %dx%d for l=%d with %d atoms",
			rows, cols, nTot, nTot, l, nAtoms)
	}
	if l == 0 || len(s.sym) == 1 {
		return nil
	}
	symL, err := s.SphericalMatrices(l)
	if err != nil {
		return err
	}
	result := mat.NewCDense(nTot, nTot, nil)
	for iRot := range symL {
		m := mat.NewCDense(nTot, nTot, nil)
		for atom := 0; atom < nAtoms; atom++ {
			img := s.atomMap[sp][atom][iRot]
			for i := 0; i < nm; i++ {
				for j := 0; j < nm; j++ {
					m.Set(i*nAtoms+img, j*nAtoms+atom, symL[iRot].At(i, j))
				}
			}
		}
		t := cMul(cMul(m, X), m.H())
		cmplxs.Add(result.RawCMatrix().Data, t.RawCMatrix().Data)
	}
	cmplxs.Scale(complex(1/float64(len(symL)), 0), result.RawCMatrix().Data)
	copy(X.RawCMatrix().Data, result.RawCMatrix().Data)
	return nil
}
