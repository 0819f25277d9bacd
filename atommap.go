package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ConstraintKind is the type of a movement constraint
type ConstraintKind int

const (
	MoveFree ConstraintKind = iota
	MoveFixed
	MoveLine  // movement along Dir only
	MovePlane // movement within the plane normal to Dir
)

func (k ConstraintKind) String() string {
	return []string{"free", "fixed", "line", "plane"}[k]
}

// Constraint restricts how an atom may move during relaxation. Dir is
// a unit vector in cartesian coordinates for the line and plane
// kinds.
type Constraint struct {
	Kind  ConstraintKind
	Dir   Vec3
	Scale float64
}

// IsEquivalent reports whether c transformed by the cartesian
// rotation rot is the same constraint as o. Atoms related by a
// symmetry operation must have equivalent constraints or forces on
// them cannot be symmetrized consistently.
func (c Constraint) IsEquivalent(o Constraint, rot *mat.Dense) bool {
	if c.Kind != o.Kind || math.Abs(c.Scale-o.Scale) > symmTol {
		return false
	}
	if c.Kind == MoveFree || c.Kind == MoveFixed {
		return true
	}
	// a direction and its negation describe the same line or plane
	d := mulVecDense(rot, c.Dir)
	return math.Abs(math.Abs(d.Dot(o.Dir))-1) < symmTol
}

// initAtomMaps finds, for every atom and every symmetry operation,
// the atom it is carried onto, and verifies that symmetry-related
// atoms carry compatible movement constraints. The operation set is
// already guaranteed compatible with the basis, so a missing image
// means the tolerance and the geometry disagree.
func (s *Symmetries) initAtomMaps() error {
	c := s.cryst
	if s.PrintMatrices {
		fmt.Printf("\nmapping of atoms according to symmetries:\n")
	}
	s.atomMap = make([][][]int, len(c.Species))
	for sp := range c.Species {
		spec := &c.Species[sp]
		s.atomMap[sp] = make([][]int, len(spec.Pos))
		for a1 := range spec.Pos {
			if s.PrintMatrices {
				fmt.Printf("%s %3d:", spec.Name, a1)
			}
			s.atomMap[sp][a1] = make([]int, len(s.sym))
			for iRot, m := range s.sym {
				mapped := m.MulVec(spec.Pos[a1])
				found := false
				for a2 := range spec.Pos {
					if circDistSq(mapped, spec.Pos[a2]) >= symmTolSq {
						continue
					}
					s.atomMap[sp][a1][iRot] = a2
					found = true
					rot := cartRot(c.R, c.invR, m)
					if !spec.Constraint(a1).IsEquivalent(spec.Constraint(a2), rot) {
						return fmt.Errorf(
							"species %s atoms %d and %d are related by symmetry "+
								"but have different move scale factors or inconsistent move constraints",
							spec.Name, a1, a2)
					}
					break
				}
				if !found {
					return fmt.Errorf(
						"no symmetric image of species %s atom %d under operation\n%v",
						spec.Name, a1, m)
				}
				if s.PrintMatrices {
					fmt.Printf(" %3d", s.atomMap[sp][a1][iRot])
				}
			}
			if s.PrintMatrices {
				fmt.Printf("\n")
			}
		}
	}
	return nil
}
