package memory

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperCellMemory_KnownValue(t *testing.T) {
	c := mustConfig(t, 3)

	// per super cell, float32, 256 cells, 20 bins, one species with 10 states:
	//   rate cache       10 * (5*4 + 4)  = 240
	//   rejection cell   4 * 256         = 1024
	//   rejection bin    4 * 20          = 80
	//   field energy     4 * 256         = 1024
	//   histogram        3*4*20 + 4      = 244
	//   shared counters  2 * 4           = 8
	//   timers           2 * 4           = 8
	//   IPD              8 * 4           = 32
	got, err := c.SuperCellMemory([]int{2, 2, 2}, []int{10}, 20, true)
	require.NoError(t, err)
	assert.Equal(t, int64(8*2660), got)

	withoutIPD, err := c.SuperCellMemory([]int{2, 2, 2}, []int{10}, 20, false)
	require.NoError(t, err)
	assert.Equal(t, int64(8*32), got-withoutIPD)
}

func TestSuperCellMemory_SpeciesAddUp(t *testing.T) {
	c := mustConfig(t, 2)
	none, err := c.SuperCellMemory([]int{4, 4}, nil, 10, true)
	require.NoError(t, err)
	both, err := c.SuperCellMemory([]int{4, 4}, []int{3, 7}, 10, true)
	require.NoError(t, err)
	assert.Equal(t, int64(16*10*(5*4+4)), both-none)
}

func TestSuperCellMemory_Errors(t *testing.T) {
	c := mustConfig(t, 3)
	_, err := c.SuperCellMemory([]int{2, 2}, nil, 10, true)
	assert.True(t, errors.Is(err, ErrRankMismatch))
	_, err = c.SuperCellMemory([]int{2, 0, 2}, nil, 10, true)
	assert.True(t, errors.Is(err, ErrNonPositiveExtent))
	_, err = c.SuperCellMemory([]int{2, 2, 2}, []int{-1}, 10, true)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = c.SuperCellMemory([]int{2, 2, 2}, nil, -10, true)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestSuperCellMemory_Monotonic(t *testing.T) {
	c := mustConfig(t, 3)
	base, err := c.SuperCellMemory([]int{2, 2, 2}, []int{10}, 20, true)
	require.NoError(t, err)

	moreCells, err := c.SuperCellMemory([]int{3, 2, 2}, []int{10}, 20, true)
	require.NoError(t, err)
	moreBins, err := c.SuperCellMemory([]int{2, 2, 2}, []int{10}, 21, true)
	require.NoError(t, err)
	moreStates, err := c.SuperCellMemory([]int{2, 2, 2}, []int{11}, 20, true)
	require.NoError(t, err)

	assert.Greater(t, moreCells, base)
	assert.Greater(t, moreBins, base)
	assert.Greater(t, moreStates, base)
}

func TestSuperCellMemory_Overflow(t *testing.T) {
	c := mustConfig(t, 3)
	tests := []struct {
		name            string
		superCellExtent []int
		atomicStates    []int
		histogramBins   int
	}{
		{"histogram bins", []int{1, 1, 1}, nil, math.MaxInt64 / 8},
		{"atomic states", []int{1, 1, 1}, []int{math.MaxInt64 / 4}, 20},
		{"cell extent", []int{math.MaxInt64/4 + 1, 1, 1}, nil, 20},
		{"super cell count", []int{1 << 20, 1 << 20, 1 << 20}, []int{100}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.SuperCellMemory(tt.superCellExtent, tt.atomicStates, tt.histogramBins, true)
			assert.True(t, errors.Is(err, ErrOverflow), "got %d, %v", got, err)
		})
	}
}
