package memory

import (
	"fmt"
	"strings"
)

// Generator names a random number generator implementation.
type Generator string

// Supported generators. XorMin is the usual GPU choice, AlpakaRand the CPU one.
const (
	XorMin      Generator = "XorMin"
	MRG32k3aMin Generator = "MRG32k3aMin"
	AlpakaRand  Generator = "AlpakaRand"

	DefaultGenerator = XorMin
)

// generatorStateBytes is the state size per cell of each generator.
var generatorStateBytes = map[Generator]int64{
	XorMin:      6 * 4,
	MRG32k3aMin: 6 * 8,
	AlpakaRand:  7 * 4,
}

// Generators returns the supported generator names.
func Generators() []Generator {
	return []Generator{XorMin, MRG32k3aMin, AlpakaRand}
}

// ParseGenerator maps a generator name to a Generator. An empty name selects
// DefaultGenerator.
func ParseGenerator(name string) (Generator, error) {
	if name == "" {
		return DefaultGenerator, nil
	}
	g := Generator(name)
	if _, ok := generatorStateBytes[g]; !ok {
		return "", unknownGenerator(g)
	}
	return g, nil
}

func unknownGenerator(g Generator) error {
	names := make([]string, 0, len(generatorStateBytes))
	for _, known := range Generators() {
		names = append(names, string(known))
	}
	return fmt.Errorf("%w: %q, choose one of %s", ErrUnknownGenerator, string(g), strings.Join(names, ", "))
}

// RNGMemory returns the bytes one device reserves for random number generator
// state. State exists for core and border cells only; guard cells have none.
//
// Large states (beyond a few hundred MB) need a matching increase of the
// simulation's reserved device memory.
func (c *SimulationConfig) RNGMemory(cellExtent []int, generator Generator) (int64, error) {
	if err := c.ValidateCellExtent(cellExtent); err != nil {
		return 0, err
	}
	stateBytes, ok := generatorStateBytes[generator]
	if !ok {
		return 0, unknownGenerator(generator)
	}
	cells, err := product(cellExtent)
	if err != nil {
		return 0, err
	}
	return mulBytes(cells, stateBytes)
}
