package fractal

import (
	"fmt"
	"sort"
)

// Landmark is a named point on the complex plane worth zooming into.
type Landmark struct {
	Name  string
	Title string
	Focus complex128
}

// Well known structures in the set. Names double as CLI arguments, so they
// stay short and lowercase.
var landmarks = map[string]Landmark{
	"seahorse": {
		Name:  "seahorse",
		Title: "Seahorse Valley",
		Focus: complex(-0.75, 0.1),
	},
	"elephant": {
		Name:  "elephant",
		Title: "Elephant Valley",
		Focus: complex(-1.8, -0.06),
	},
	"spiral-minibrot": {
		Name:  "spiral-minibrot",
		Title: "Spiral Minibrot",
		Focus: complex(-0.74275, 0.13175),
	},
	"triple-spiral": {
		Name:  "triple-spiral",
		Title: "Triple Spiral",
		Focus: complex(-0.7465, 0.0965),
	},
	"dragon": {
		Name:  "dragon",
		Title: "Valley of the Dragon",
		Focus: complex(-0.7375, 0.1825),
	},
	"minibrot": {
		Name:  "minibrot",
		Title: "Minibrot in a Mini-Spiral",
		Focus: complex(-1.73825, -0.02275),
	},
}

// LookupLandmark returns the landmark with the given name.
func LookupLandmark(name string) (Landmark, error) {
	lm, ok := landmarks[name]
	if !ok {
		return Landmark{}, fmt.Errorf("fractal: unknown landmark %q", name)
	}
	return lm, nil
}

// Landmarks returns every known landmark, sorted by name.
func Landmarks() []Landmark {
	result := make([]Landmark, 0, len(landmarks))
	for _, lm := range landmarks {
		result = append(result, lm)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
