package memory

import (
	"fmt"
	"slices"
)

// Fixed-width sizes in bytes. Booleans are assumed to occupy one byte.
const (
	sizeBool   = 1
	sizeUint8  = 1
	sizeUint32 = 4
	sizeUint64 = 8
)

// Predefined particle attribute names, as used in the simulation's species
// definitions.
const (
	AttrMomentum                      = "momentum"
	AttrPosition                      = "position"
	AttrMomentumPrev1                 = "momentumPrev1"
	AttrWeighting                     = "weighting"
	AttrParticleID                    = "particleId"
	AttrWeightingDampningFactor       = "weightingDampningFactor"
	AttrProbeE                        = "probeE"
	AttrProbeB                        = "probeB"
	AttrRadiationMask                 = "radiationMask"
	AttrTransitionRadiationMask       = "transitionRadiationMask"
	AttrBoundElectrons                = "boundElectrons"
	AttrAtomicStateCollectionIndex    = "atomicStateCollectionIndex"
	AttrProcessClass                  = "processClass"
	AttrTransitionIndex               = "transitionIndex"
	AttrBinIndex                      = "binIndex"
	AttrAccepted                      = "accepted"
	AttrAtomicPhysicsIonParticleAttrs = "atomicPhysicsIonParticleAttributes"
	AttrTotalCellIdx                  = "totalCellIdx"
)

// AttributeSizeTable maps a particle attribute name to its size in bytes per
// particle.
type AttributeSizeTable map[string]int

// ScalarByteSize returns the byte width of one floating point value for the
// given precision in bits.
func ScalarByteSize(precision int) (int, error) {
	switch precision {
	case 32:
		return 4, nil
	case 64:
		return 8, nil
	default:
		return 0, fmt.Errorf("%w: only 32 or 64 bit precision is supported, got %d", ErrUnsupportedPrecision, precision)
	}
}

// PredefinedAttributeSizes returns the per-particle size of every predefined
// attribute. The returned table is a fresh map owned by the caller.
func PredefinedAttributeSizes(dimension, precision int) (AttributeSizeTable, error) {
	if dimension != 2 && dimension != 3 {
		return nil, fmt.Errorf("%w: only 2D or 3D simulations are supported, got %d", ErrUnsupportedDimension, dimension)
	}
	f, err := ScalarByteSize(precision)
	if err != nil {
		return nil, err
	}

	return AttributeSizeTable{
		AttrMomentum:                      3 * f,
		AttrPosition:                      dimension * f,
		AttrMomentumPrev1:                 3 * f,
		AttrWeighting:                     f,
		AttrParticleID:                    sizeUint64,
		AttrWeightingDampningFactor:       f,
		AttrProbeE:                        3 * f,
		AttrProbeB:                        3 * f,
		AttrRadiationMask:                 sizeBool,
		AttrTransitionRadiationMask:       sizeBool,
		AttrBoundElectrons:                f,
		AttrAtomicStateCollectionIndex:    sizeUint32,
		AttrProcessClass:                  sizeUint8,
		AttrTransitionIndex:               sizeUint32,
		AttrBinIndex:                      sizeUint32,
		AttrAccepted:                      sizeBool,
		AttrAtomicPhysicsIonParticleAttrs: f + 3*sizeUint32 + sizeUint8 + sizeBool,
		AttrTotalCellIdx:                  dimension * sizeUint32,
	}, nil
}

// PredefinedAttributeNames returns the predefined attribute names in sorted
// order.
func PredefinedAttributeNames() []string {
	table, _ := PredefinedAttributeSizes(3, 32)
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
