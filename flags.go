package main

import (
	"flag"
	"fmt"
	"os"
)

const VERSION = "0.1.0"

const help = `Requirements:
- an input file specifying at least the lattice vectors and the
  real-space grid
  - lattice{...} holds three lattice vectors, one per line
  - atoms{...} holds one atom per line: name, fractional position,
    optional magnetic moment and movement constraint
  - k-points come from an explicit kpoints{...} block or a
    kmesh=n1 n2 n3 sampling specification
  - symmetry=manual requires a symmetries{...} block of integer
    matrices, 9 entries per line
Flags:
`

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	dump       = flag.Bool("dump", false, "write the derived symmetry tables to symm.json")
	nosym      = flag.Bool("nosym", false, "disable symmetries (identity only)")
	verbose    = flag.Bool("v", false, "print symmetry matrices and atom maps")
	version    = flag.Bool("version", false, "print the version and exit")
)

// ParseFlags parses command line flags and returns a slice of the
// remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("xsym version: %s\n", VERSION)
		os.Exit(0)
	}
	return flag.Args()
}
