package memory

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Attributes every particle carries regardless of the species definition.
const (
	sizeMultiMask = 1
	sizeCellIndex = 2
)

// ParticleMemory returns the bytes one device needs for the macro-particles
// of a single species.
//
// filledCells is the extent of the cells filled by the species, or their
// count as a one-entry slice. To pass a macro-particle count directly use a
// one-entry slice with particlesPerCell set to 1.
//
// Attribute sizes are taken from the predefined table first and from custom
// second; an attribute found in neither fails with ErrUnknownAttribute.
// Species flags are compiled in and take no device memory.
func (c *SimulationConfig) ParticleMemory(filledCells []int, particlesPerCell int, attributes []string, custom AttributeSizeTable) (int64, error) {
	if len(filledCells) == 0 {
		return 0, fmt.Errorf("%w: particle filled cells must have at least one entry", ErrRankMismatch)
	}
	for _, n := range filledCells {
		if n <= 0 {
			return 0, fmt.Errorf("%w: particle filled cells %v must be > 0 on every axis", ErrNonPositiveExtent, filledCells)
		}
	}
	if particlesPerCell < 0 {
		return 0, fmt.Errorf("%w: particles per cell must be >= 0, got %d", ErrInvalidParameter, particlesPerCell)
	}

	bytesPerParticle, err := c.BytesPerParticle(attributes, custom)
	if err != nil {
		return 0, err
	}
	cells, err := product(filledCells)
	if err != nil {
		return 0, err
	}
	particles, err := mulBytes(cells, int64(particlesPerCell))
	if err != nil {
		return 0, err
	}
	// particle counts are integral, so the byte count needs no rounding
	total, err := mulBytes(particles, bytesPerParticle)
	if err != nil {
		return 0, err
	}
	logrus.Debugf("particle memory: %d particles x %d bytes = %d bytes", particles, bytesPerParticle, total)
	return total, nil
}

// BytesPerParticle returns the size of one macro-particle carrying the given
// attributes, including the attributes every particle has.
func (c *SimulationConfig) BytesPerParticle(attributes []string, custom AttributeSizeTable) (int64, error) {
	predefined, err := PredefinedAttributeSizes(c.dimension, c.precision)
	if err != nil {
		return 0, err
	}

	size := int64(sizeMultiMask + sizeCellIndex)
	for _, name := range attributes {
		n, ok := predefined[name]
		if !ok {
			if n, ok = custom[name]; !ok {
				return 0, fmt.Errorf("%w: %q is neither predefined nor given a custom size", ErrUnknownAttribute, name)
			}
			if n < 0 {
				return 0, fmt.Errorf("%w: custom attribute %q has negative size %d", ErrInvalidParameter, name, n)
			}
		}
		if size, err = addBytes(size, int64(n)); err != nil {
			return 0, err
		}
	}
	return size, nil
}
