package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalorimeterMemory(t *testing.T) {
	got, err := mustConfig(t, 3).CalorimeterMemory(10, 8, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(3840), got)

	got, err = mustConfig(t, 2, WithPrecision(64)).CalorimeterMemory(10, 8, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(7680), got)
}

func TestCalorimeterMemory_ZeroBins(t *testing.T) {
	got, err := mustConfig(t, 3).CalorimeterMemory(0, 8, 6)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCalorimeterMemory_NegativeBins(t *testing.T) {
	_, err := mustConfig(t, 3).CalorimeterMemory(10, -8, 6)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestCalorimeterMemory_Monotonic(t *testing.T) {
	c := mustConfig(t, 3)
	base, err := c.CalorimeterMemory(10, 8, 6)
	require.NoError(t, err)
	for _, bins := range [][3]int{{11, 8, 6}, {10, 9, 6}, {10, 8, 7}} {
		got, err := c.CalorimeterMemory(bins[0], bins[1], bins[2])
		require.NoError(t, err)
		assert.Greater(t, got, base)
	}
}
