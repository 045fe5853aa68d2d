package memory

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarByteSize(t *testing.T) {
	n, err := ScalarByteSize(32)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = ScalarByteSize(64)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	for _, bits := range []int{0, 16, 128, -32} {
		_, err := ScalarByteSize(bits)
		assert.True(t, errors.Is(err, ErrUnsupportedPrecision), "precision %d: %v", bits, err)
	}
}

func TestPredefinedAttributeSizes_TotalAndPositive(t *testing.T) {
	for _, dim := range []int{2, 3} {
		for _, prec := range []int{32, 64} {
			table, err := PredefinedAttributeSizes(dim, prec)
			require.NoError(t, err)
			assert.Len(t, table, len(PredefinedAttributeNames()))
			for name, size := range table {
				assert.Positive(t, size, "dim=%d prec=%d attribute %s", dim, prec, name)
			}
		}
	}
}

func TestPredefinedAttributeSizes_Values(t *testing.T) {
	table, err := PredefinedAttributeSizes(2, 64)
	require.NoError(t, err)

	assert.Equal(t, 24, table[AttrMomentum])
	assert.Equal(t, 16, table[AttrPosition])
	assert.Equal(t, 8, table[AttrWeighting])
	assert.Equal(t, 8, table[AttrParticleID])
	assert.Equal(t, 1, table[AttrRadiationMask])
	assert.Equal(t, 4, table[AttrAtomicStateCollectionIndex])
	assert.Equal(t, 1, table[AttrProcessClass])
	assert.Equal(t, 8+12+1+1, table[AttrAtomicPhysicsIonParticleAttrs])
	assert.Equal(t, 8, table[AttrTotalCellIdx])

	table3, err := PredefinedAttributeSizes(3, 32)
	require.NoError(t, err)
	assert.Equal(t, 12, table3[AttrPosition])
	assert.Equal(t, 12, table3[AttrTotalCellIdx])
	assert.Equal(t, 12, table3[AttrProbeE])
}

func TestPredefinedAttributeSizes_Invalid(t *testing.T) {
	_, err := PredefinedAttributeSizes(1, 32)
	assert.True(t, errors.Is(err, ErrUnsupportedDimension))
	_, err = PredefinedAttributeSizes(3, 48)
	assert.True(t, errors.Is(err, ErrUnsupportedPrecision))
}

func TestPredefinedAttributeSizes_FreshMap(t *testing.T) {
	a, _ := PredefinedAttributeSizes(3, 32)
	a[AttrMomentum] = 0
	b, _ := PredefinedAttributeSizes(3, 32)
	assert.Equal(t, 12, b[AttrMomentum])
}

func TestPredefinedAttributeNames_Sorted(t *testing.T) {
	names := PredefinedAttributeNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, AttrParticleID)
	assert.Contains(t, names, AttrAtomicStateCollectionIndex)
}
