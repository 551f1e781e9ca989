package compound_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbuild/compound"
	"github.com/katalvlaran/lvbuild/vecmath"
)

// ExampleNewPort attaches a port to an anchor particle and reads back the
// contract used by fragment fusion.
func ExampleNewPort() {
	ch2 := compound.NewCompound("CH2")
	carbon := compound.NewParticle("C", vecmath.Vec3{})
	_ = ch2.Add(carbon, "C")

	port, err := compound.NewPort(
		compound.WithAnchor(carbon),
		compound.WithOrientation(vecmath.New(1, 0, 0)),
		compound.WithSeparation(0.5),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = ch2.Add(port, "up")

	d, _ := port.Direction()
	c := port.Center()
	fmt.Printf("direction: (%.3f, %.3f, %.3f)\n", round3(d.X), round3(d.Y), round3(d.Z))
	fmt.Printf("center:    (%.3f, %.3f, %.3f)\n", round3(c.X), round3(c.Y), round3(c.Z))
	fmt.Println("labels:", ch2.Labels())
	fmt.Println("ports available:", len(ch2.AvailablePorts()))

	// Output:
	// direction: (1.000, 0.000, 0.000)
	// center:    (0.500, 0.000, 0.000)
	// labels: [C up]
	// ports available: 1
}

// ExampleClone shows that anchors are remapped into the copy.
func ExampleClone() {
	frag := compound.NewCompound("frag")
	carbon := compound.NewParticle("C", vecmath.Vec3{})
	_ = frag.Add(carbon, "C")
	port, _ := compound.NewPort(compound.WithAnchor(carbon))
	_ = frag.Add(port, "up")

	cp, _ := compound.CloneCompound(frag)
	cc, _ := cp.FindParticle("C")
	fmt.Println("anchor remapped:", cp.Ports()[0].Anchor == cc)
	fmt.Println("original untouched:", port.Anchor == carbon)

	// Output:
	// anchor remapped: true
	// original untouched: true
}

// round3 rounds to three decimals and folds -0 into +0 for stable output.
func round3(x float64) float64 {
	r := math.Round(x*1000) / 1000
	if r == 0 {
		return 0
	}

	return r
}
