package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// ErrBetterCenter reports that translating the atomic basis would
// admit more symmetry operations. The wrapped message carries the
// suggested translation and atom positions.
var ErrBetterCenter = errors.New("translating the atoms would increase the symmetry count")

// SymMode selects how the operation set is obtained
type SymMode int

const (
	SymAutomatic SymMode = iota
	SymManual
	SymNone
)

func (m SymMode) String() string {
	return []string{"auto", "manual", "none"}[m]
}

// Symmetries discovers and holds the point-group operations of a
// crystal and every table derived from them. All derived state is
// written once by Setup/SetupMesh and read-only afterward.
type Symmetries struct {
	Mode          SymMode
	MoveAtoms     bool
	PrintMatrices bool
	Manual        []IntMat // operation set for SymManual

	cryst      *Crystal
	sym        []IntMat
	symMesh    []IntMat
	atomMap    [][][]int
	symmIndex  []int
	invertList []int

	sphMu    sync.Mutex
	sphCache map[int][]*mat.CDense
}

// Setup determines the operation set for the crystal c and builds the
// atom maps. Every configuration or geometry inconsistency is
// reported here, before any derived table can be observed.
func (s *Symmetries) Setup(c *Crystal) error {
	s.cryst = c
	s.sphCache = make(map[int][]*mat.CDense)
	if s.Mode != SymNone {
		fmt.Printf("\n---------- Setting up symmetries ----------\n")
	}
	switch s.Mode {
	case SymAutomatic:
		if err := s.calcSymmetries(); err != nil {
			return err
		}
	case SymManual:
		if len(s.Manual) == 0 {
			return fmt.Errorf("manual symmetries specified without any symmetry matrices")
		}
		s.sym = append([]IntMat(nil), s.Manual...)
		s.sortSymmetries()
		if err := s.checkSymmetries(); err != nil {
			return err
		}
	default:
		s.sym = []IntMat{Identity()}
	}
	return s.initAtomMaps()
}

// SetupMesh verifies that the sample grid is commensurate with the
// operation set, checks (and if needed relocates) the truncation
// embedding center, warns when the k-mesh breaks basis symmetries,
// and builds the real-space equivalence classes.
func (s *Symmetries) SetupMesh() error {
	if err := s.checkFFTbox(); err != nil {
		return err
	}
	s.checkKmesh()
	s.initSymmIndex()
	return nil
}

// calcSymmetries finds the operations of the Bravais lattice, reduces
// them against the atomic basis, and optionally searches for a center
// admitting more of them
func (s *Symmetries) calcSymmetries() error {
	c := s.cryst
	fmt.Printf("searching for point group symmetries:\n")
	symLattice, _, _ := LatticeSymmetries(c.R, c.Truncated)
	fmt.Printf("%d symmetries of the bravais lattice\n", len(symLattice))

	var rCenter Vec3
	s.sym = s.basisReduce(symLattice, rCenter)
	fmt.Printf("reduced to %d symmetries with basis\n", len(s.sym))
	s.sortSymmetries()
	if s.PrintMatrices {
		for _, m := range s.sym {
			fmt.Printf("%v\n", m)
		}
	}

	if !s.MoveAtoms {
		return nil
	}
	// candidate centers: all atoms and all same-species pair midpoints
	var candidates []Vec3
	for sp := range c.Species {
		pos := c.Species[sp].Pos
		for n1 := range pos {
			candidates = append(candidates, pos[n1])
			for n2 := 0; n2 < n1; n2++ {
				candidates = append(candidates, pos[n1].Add(pos[n2]).Scale(0.5))
			}
		}
	}
	origCount := len(s.sym)
	best := s.sym
	for _, r := range candidates {
		if symTemp := s.basisReduce(symLattice, r); len(symTemp) > len(best) {
			rCenter = r
			best = symTemp
		}
	}
	if len(best) == origCount {
		return nil
	}
	// a better center exists: adopting it means physically moving the
	// atoms, which only the operator can decide to do
	var buf strings.Builder
	fmt.Fprintf(&buf,
		"translating atoms by [ %g %g %g ] (in lattice coordinates) will\n"+
			"increase symmetry count from %d to %d; translated atom positions follow:\n",
		-rCenter[0], -rCenter[1], -rCenter[2], origCount, len(best))
	for sp := range c.Species {
		spec := &c.Species[sp]
		for _, p := range spec.Pos {
			q := p.Sub(rCenter)
			fmt.Fprintf(&buf, "%s %12.8f %12.8f %12.8f\n", spec.Name, q[0], q[1], q[2])
		}
	}
	buf.WriteString("use the suggested positions, or set moveatoms=false")
	return fmt.Errorf("%w:\n%s", ErrBetterCenter, buf.String())
}

// basisReduce filters lattice operations down to those under which
// every atom maps onto an atom of the same species with the same
// magnetic moment, applying each operation about the given center
func (s *Symmetries) basisReduce(symLattice []IntMat, center Vec3) []IntMat {
	var out []IntMat
	for _, m := range symLattice {
		symmetric := true
	species:
		for sp := range s.cryst.Species {
			spec := &s.cryst.Species[sp]
			for a1 := range spec.Pos {
				mapped := center.Add(m.MulVec(spec.Pos[a1].Sub(center)))
				found := false
				for a2 := range spec.Pos {
					if circDistSq(mapped, spec.Pos[a2]) < symmTolSq &&
						spec.Moment(a1) == spec.Moment(a2) {
						found = true
						break
					}
				}
				if !found {
					symmetric = false
					break species
				}
			}
		}
		if symmetric {
			out = append(out, m)
		}
	}
	return out
}

// sortSymmetries moves the identity operation to the front
func (s *Symmetries) sortSymmetries() {
	ident := Identity()
	for i := 1; i < len(s.sym); i++ {
		if s.sym[i] == ident {
			s.sym[0], s.sym[i] = s.sym[i], s.sym[0]
		}
	}
}

// checkSymmetries verifies that manually specified operations map
// every atom onto an atom of the same species
func (s *Symmetries) checkSymmetries() error {
	fmt.Printf("checking manually specified symmetry matrices\n")
	for _, m := range s.sym {
		for sp := range s.cryst.Species {
			spec := &s.cryst.Species[sp]
			for _, p1 := range spec.Pos {
				found := false
				mapped := m.MulVec(p1)
				for _, p2 := range spec.Pos {
					if circDistSq(mapped, p2) < symmTolSq {
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("symmetries do not agree with atomic positions")
				}
			}
		}
	}
	return nil
}

// Matrices returns the operation set in lattice coordinates,
// identity first
func (s *Symmetries) Matrices() []IntMat { return s.sym }

// MeshMatrices returns the operation set in integer grid coordinates
func (s *Symmetries) MeshMatrices() []IntMat { return s.symMesh }

// AtomMap returns, per species, per atom, per operation, the index of
// the image atom
func (s *Symmetries) AtomMap() [][][]int { return s.atomMap }

// KpointInvertList reports whether inversion was needed to reduce the
// k-mesh: {+1} if not, {+1,-1} if so
func (s *Symmetries) KpointInvertList() []int { return s.invertList }

// NClasses returns the number of real-space equivalence classes
func (s *Symmetries) NClasses() int {
	if len(s.sym) == 0 {
		return 0
	}
	return len(s.symmIndex) / len(s.sym)
}
