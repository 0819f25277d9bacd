package main

import (
	"fmt"
	"strings"
)

// Key is a type for input keyword indices
type Key int

// Keys in the configuration array. To add a new keyword, add a Key
// here and its name and Extract function to the Conf initializer
// below.
const (
	Lattice Key = iota
	Atoms
	GridSize
	KMesh
	KPts
	SymmetryMode
	SymMats
	MoveAtoms
	PrintSym
	Tolerance
	Truncated
	EmbedCenter
	NumKeys
)

// Keyword pairs an input-file keyword name with its value extractor
type Keyword struct {
	Name    string
	Extract func(string) interface{}
	Value   interface{}
}

type Config [NumKeys]Keyword

// At returns the Value of c at k
func (c *Config) At(k Key) interface{} {
	return (*c)[k].Value
}

// Set sets the Value of c at k
func (c *Config) Set(k Key, val interface{}) {
	(*c)[k].Value = val
}

func (c *Config) Bool(k Key) bool {
	if c.At(k) == nil {
		return false
	}
	return c.At(k).(bool)
}

func (c *Config) Float(k Key, def float64) float64 {
	if c.At(k) == nil {
		return def
	}
	return c.At(k).(float64)
}

func (c *Config) Ints3(k Key) ([3]int, bool) {
	if c.At(k) == nil {
		return [3]int{}, false
	}
	return c.At(k).([3]int), true
}

func (c Config) String() string {
	var buf strings.Builder
	for _, kw := range c {
		fmt.Fprintf(&buf, "%s: %v\n", kw.Name, kw.Value)
	}
	return buf.String()
}

// kwpanic reports a fatal problem parsing an input line
func kwpanic(str string, err error) {
	panic(fmt.Sprintf("%v parsing input line %q\n", err, str))
}

var Conf = Config{
	Lattice:      {"lattice", parseLattice, nil},
	Atoms:        {"atoms", parseAtoms, nil},
	GridSize:     {"grid", parseInts3, nil},
	KMesh:        {"kmesh", parseInts3, nil},
	KPts:         {"kpoints", parseKPoints, nil},
	SymmetryMode: {"symmetry", parseSymMode, nil},
	SymMats:      {"symmetries", parseSymMats, nil},
	MoveAtoms:    {"moveatoms", parseBool, nil},
	PrintSym:     {"printsym", parseBool, nil},
	Tolerance:    {"tolerance", parseFloat, nil},
	Truncated:    {"truncated", parseBools3, nil},
	EmbedCenter:  {"embedcenter", parseVec3, nil},
}

func parseFloat(str string) interface{} { return atof(str) }

func parseBool(str string) interface{} {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "yes", "1":
		return true
	case "false", "no", "0":
		return false
	}
	kwpanic(str, fmt.Errorf("invalid boolean"))
	return nil
}

func parseInts3(str string) interface{} {
	fields := strings.Fields(str)
	if len(fields) != 3 {
		kwpanic(str, fmt.Errorf("want 3 integers"))
	}
	var out [3]int
	for i, f := range fields {
		out[i] = atoi(f)
	}
	return out
}

func parseBools3(str string) interface{} {
	fields := strings.Fields(str)
	if len(fields) != 3 {
		kwpanic(str, fmt.Errorf("want 3 booleans"))
	}
	var out [3]bool
	for i, f := range fields {
		out[i] = parseBool(f).(bool)
	}
	return out
}

func parseVec3(str string) interface{} {
	fields := strings.Fields(str)
	if len(fields) != 3 {
		kwpanic(str, fmt.Errorf("want 3 floats"))
	}
	var out Vec3
	for i, f := range fields {
		out[i] = atof(f)
	}
	return out
}

// parseLattice reads three lines of three floats; line i is lattice
// vector i
func parseLattice(block string) interface{} {
	lines := CleanSplit(block, "\n")
	if len(lines) != 3 {
		kwpanic(block, fmt.Errorf("want 3 lattice vectors"))
	}
	var out [3][3]float64
	for i, line := range lines {
		out[i] = parseVec3(line).(Vec3)
	}
	return out
}

func parseSymMode(str string) interface{} {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "auto", "automatic", "":
		return SymAutomatic
	case "manual":
		return SymManual
	case "none":
		return SymNone
	}
	kwpanic(str, fmt.Errorf("unsupported option for keyword symmetry"))
	return nil
}

// parseSymMats reads one operation per line as 9 integers, row-major
func parseSymMats(block string) interface{} {
	var out []IntMat
	for _, line := range CleanSplit(block, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 9 {
			kwpanic(line, fmt.Errorf("want 9 integers per symmetry matrix"))
		}
		var m IntMat
		for e, f := range fields {
			m[e/3][e%3] = atoi(f)
		}
		out = append(out, m)
	}
	return out
}

// parseKPoints reads one k-point per line: kx ky kz weight
func parseKPoints(block string) interface{} {
	var out []KPoint
	for _, line := range CleanSplit(block, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 4 {
			kwpanic(line, fmt.Errorf("want kx ky kz weight"))
		}
		out = append(out, KPoint{
			K:      Vec3{atof(fields[0]), atof(fields[1]), atof(fields[2])},
			Weight: atof(fields[3]),
		})
	}
	return out
}

// parseAtoms reads one atom per line:
//
//	name x y z [moment] [fixed|line dx dy dz|plane dx dy dz] [scale f]
//
// positions are in lattice coordinates, constraint directions in
// cartesian coordinates. Atoms are grouped into species by name,
// preserving first-occurrence order.
func parseAtoms(block string) interface{} {
	var species []Species
	index := make(map[string]int)
	for _, line := range CleanSplit(block, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			kwpanic(line, fmt.Errorf("want name x y z"))
		}
		name := fields[0]
		pos := Vec3{atof(fields[1]), atof(fields[2]), atof(fields[3])}
		moment := 0.0
		rest := fields[4:]
		if len(rest) > 0 {
			if _, err := fmt.Sscanf(rest[0], "%f", &moment); err == nil {
				rest = rest[1:]
			}
		}
		con := Constraint{Kind: MoveFree, Scale: 1}
		for len(rest) > 0 {
			switch rest[0] {
			case "fixed":
				con.Kind = MoveFixed
				rest = rest[1:]
			case "line", "plane":
				if len(rest) < 4 {
					kwpanic(line, fmt.Errorf("constraint %s wants a direction", rest[0]))
				}
				con.Kind = MoveLine
				if rest[0] == "plane" {
					con.Kind = MovePlane
				}
				con.Dir = Vec3{atof(rest[1]), atof(rest[2]), atof(rest[3])}
				if n := con.Dir.Norm(); n > 0 {
					con.Dir = con.Dir.Scale(1 / n)
				}
				rest = rest[4:]
			case "scale":
				if len(rest) < 2 {
					kwpanic(line, fmt.Errorf("scale wants a factor"))
				}
				con.Scale = atof(rest[1])
				rest = rest[2:]
			default:
				kwpanic(line, fmt.Errorf("unknown atom option %q", rest[0]))
			}
		}
		i, ok := index[name]
		if !ok {
			i = len(species)
			index[name] = i
			species = append(species, Species{Name: name})
		}
		species[i].Pos = append(species[i].Pos, pos)
		species[i].Moments = append(species[i].Moments, moment)
		species[i].Constraints = append(species[i].Constraints, con)
	}
	return species
}
