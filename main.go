/*
xsym
----
Point-group symmetry analysis for periodic crystals. Given a lattice,
an atomic basis, a real-space sample grid, and a k-point mesh, xsym
finds the space-group point operations consistent with the geometry,
reduces the k-mesh to its irreducible wedge, and builds the
equivalence tables used to symmetrize scalar fields, forces, and
angular-momentum density matrices.
*/

package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
)

func main() {
	args := ParseFlags()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	if len(args) < 1 {
		log.Fatal("xsym: no input file supplied")
	}
	ParseInfile(args[0])
	cryst, syms := BuildCrystal()
	if *nosym {
		syms.Mode = SymNone
	}
	if *verbose {
		syms.PrintMatrices = true
	}

	if err := syms.Setup(cryst); err != nil {
		log.Fatal(err)
	}
	if err := syms.SetupMesh(); err != nil {
		log.Fatal(err)
	}
	reduced := syms.ReduceKmesh(cryst.KPoints)

	fmt.Printf("\n%d symmetry operations\n", len(syms.Matrices()))
	if len(syms.Matrices()) > 1 {
		fmt.Printf("%d real-space equivalence classes of group size %d\n",
			syms.NClasses(), len(syms.Matrices()))
	}
	if len(cryst.KPoints) > 0 {
		fmt.Printf("reduced %d k-points to %d:\n", len(cryst.KPoints), len(reduced))
		for _, q := range reduced {
			fmt.Printf(" %12.8f %12.8f %12.8f %10.6f\n",
				q.K[0], q.K[1], q.K[2], q.Weight)
		}
		if len(syms.KpointInvertList()) > 1 {
			fmt.Printf("inversion symmetry was used to reduce the k-mesh\n")
		}
	}
	if cryst.Embed {
		fmt.Printf("truncation embedding center: %v\n", cryst.EmbedCenter)
	}
	if *dump {
		if err := WriteSymDump(".", syms, reduced); err != nil {
			log.Fatal(err)
		}
	}
}
