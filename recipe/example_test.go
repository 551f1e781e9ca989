package recipe_test

import (
	"fmt"

	"github.com/katalvlaran/lvbuild/recipe"
)

func ExampleParse() {
	r, err := recipe.Parse([]byte(`
name: cell
lattice: {kind: bcc, spacing: [1], repeat: [2, 2, 2]}
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	root, err := r.Build(nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(root.Name(), root.NParticles(false))
	// Output: cell 16
}
