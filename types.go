package main

import (
	"gonum.org/v1/gonum/mat"
)

// Species groups the atoms of one chemical species in lattice
// coordinates, with optional per-atom magnetic moments and movement
// constraints. Moments and Constraints are either empty or the same
// length as Pos.
type Species struct {
	Name        string
	Pos         []Vec3
	Moments     []float64
	Constraints []Constraint
}

// Moment returns the magnetic moment tag of atom i, or 0 if no
// moments were specified for the species
func (s *Species) Moment(i int) float64 {
	if len(s.Moments) == 0 {
		return 0
	}
	return s.Moments[i]
}

// Constraint returns the movement constraint of atom i, free by
// default
func (s *Species) Constraint(i int) Constraint {
	if len(s.Constraints) == 0 {
		return Constraint{Kind: MoveFree, Scale: 1}
	}
	return s.Constraints[i]
}

// KPoint is a wavevector in lattice coordinates with a sampling
// weight
type KPoint struct {
	K      Vec3    `json:"k"`
	Weight float64 `json:"weight"`
}

// Grid describes the real-space sample grid with per-axis counts
type Grid struct {
	S [3]int
}

// N returns the total number of grid points
func (g Grid) N() int { return g.S[0] * g.S[1] * g.S[2] }

// Index converts in-range grid coordinates to a flat index
func (g Grid) Index(r [3]int) int {
	return (r[0]*g.S[1]+r[1])*g.S[2] + r[2]
}

// WrapIndex converts arbitrary integer grid coordinates to a flat
// index, wrapping each coordinate to its canonical non-negative
// representative
func (g Grid) WrapIndex(r [3]int) int {
	for i := 0; i < 3; i++ {
		r[i] %= g.S[i]
		if r[i] < 0 {
			r[i] += g.S[i]
		}
	}
	return g.Index(r)
}

// Crystal collects the inputs the symmetry engine consumes: the
// lattice basis (columns of R), atomic basis, sample grid, k-point
// mesh, and truncation parameters. EmbedCenter may be relocated in
// place by SetupMesh.
type Crystal struct {
	R    *mat.Dense
	invR *mat.Dense

	Species []Species
	Grid    Grid
	KPoints []KPoint

	Truncated   [3]bool
	Embed       bool
	EmbedCenter Vec3
}

// NewCrystal builds a Crystal from a lattice basis, precomputing the
// inverse used for cartesian transforms
func NewCrystal(R *mat.Dense) *Crystal {
	var inv mat.Dense
	if err := inv.Inverse(R); err != nil {
		panic("singular lattice basis")
	}
	return &Crystal{R: R, invR: &inv}
}
