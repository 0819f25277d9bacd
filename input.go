package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ProcessInput stores one keyword and its raw value in Conf
func ProcessInput(key, val string) {
	key = strings.ToLower(strings.TrimSpace(key))
	for k := range Conf {
		if Conf[k].Name == key {
			Conf[k].Value = Conf[k].Extract(val)
			return
		}
	}
	panic(fmt.Sprintf("unrecognized keyword %q in input file", key))
}

// ParseInfile parses the input file specified by filename and stores
// the results in Conf. Lines are either keyword=value pairs or
// keyword{...} blocks; # starts a comment.
func ParseInfile(filename string) {
	f, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	var (
		block   strings.Builder
		blockKw string
		inblock bool
	)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		switch {
		case strings.TrimSpace(line) == "":
		case inblock && strings.Contains(line, "}"):
			inblock = false
			ProcessInput(blockKw, block.String())
			block.Reset()
		case inblock:
			block.WriteString(line + "\n")
		case strings.Contains(line, "{"):
			blockKw = strings.SplitN(line, "{", 2)[0]
			inblock = true
		case strings.Contains(line, "="):
			split := strings.SplitN(line, "=", 2)
			ProcessInput(split[0], split[1])
		default:
			panic(fmt.Sprintf("malformed input line %q", line))
		}
	}
}

// BuildCrystal assembles the parsed keywords into a Crystal and a
// configured Symmetries engine
func BuildCrystal() (*Crystal, *Symmetries) {
	if Conf.At(Lattice) == nil {
		panic("no lattice given")
	}
	rows := Conf.At(Lattice).([3][3]float64)
	R := mat.NewDense(3, 3, nil)
	// input rows are lattice vectors, stored as the columns of R
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.Set(j, i, rows[i][j])
		}
	}
	c := NewCrystal(R)
	if Conf.At(Atoms) != nil {
		c.Species = Conf.At(Atoms).([]Species)
	}
	S, ok := Conf.Ints3(GridSize)
	if !ok {
		panic("no grid given")
	}
	c.Grid = Grid{S: S}
	if Conf.At(KPts) != nil {
		c.KPoints = Conf.At(KPts).([]KPoint)
	} else if n, ok := Conf.Ints3(KMesh); ok {
		c.KPoints = GammaCenteredMesh(n)
	}
	if Conf.At(Truncated) != nil {
		c.Truncated = Conf.At(Truncated).([3]bool)
	}
	if Conf.At(EmbedCenter) != nil {
		c.Embed = true
		c.EmbedCenter = Conf.At(EmbedCenter).(Vec3)
	}
	SetTolerance(Conf.Float(Tolerance, 1e-4))

	s := &Symmetries{
		MoveAtoms:     Conf.Bool(MoveAtoms),
		PrintMatrices: Conf.Bool(PrintSym),
	}
	if Conf.At(SymmetryMode) != nil {
		s.Mode = Conf.At(SymmetryMode).(SymMode)
	}
	if Conf.At(SymMats) != nil {
		s.Manual = Conf.At(SymMats).([]IntMat)
	}
	return c, s
}
