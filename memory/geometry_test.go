package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCellExtent(t *testing.T) {
	c := mustConfig(t, 3)
	tests := []struct {
		name   string
		extent []int
		want   error
	}{
		{"aligned", []int{16, 16, 16}, nil},
		{"single super cell", []int{8, 8, 4}, nil},
		{"large", []int{256, 512, 1024}, nil},
		{"too few axes", []int{16, 16}, ErrRankMismatch},
		{"too many axes", []int{16, 16, 16, 16}, ErrRankMismatch},
		{"empty", nil, ErrRankMismatch},
		{"zero", []int{16, 0, 16}, ErrNonPositiveExtent},
		{"negative", []int{-8, 16, 16}, ErrNonPositiveExtent},
		{"misaligned x", []int{12, 16, 16}, ErrNotSuperCellAligned},
		{"misaligned z", []int{16, 16, 6}, ErrNotSuperCellAligned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.ValidateCellExtent(tt.extent)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestValidateCellExtent_2D(t *testing.T) {
	c := mustConfig(t, 2)
	assert.NoError(t, c.ValidateCellExtent([]int{64, 8}))
	assert.True(t, errors.Is(c.ValidateCellExtent([]int{64, 8, 4}), ErrRankMismatch))
}

func TestSuperCellExtent(t *testing.T) {
	c := mustConfig(t, 3)
	got, err := c.SuperCellExtent([]int{128, 64, 32})
	require.NoError(t, err)
	assert.Equal(t, []int{16, 8, 8}, got)

	_, err = c.SuperCellExtent([]int{100, 64, 32})
	assert.True(t, errors.Is(err, ErrNotSuperCellAligned))
}
