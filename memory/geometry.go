package memory

import "fmt"

// ValidateCellExtent checks that extent is a usable device cell extent: one
// positive entry per simulation axis, each a multiple of the super cell size
// on that axis.
func (c *SimulationConfig) ValidateCellExtent(extent []int) error {
	if len(extent) != c.dimension {
		return fmt.Errorf("%w: cell extent %v has %d axes, simulation is %dD",
			ErrRankMismatch, extent, len(extent), c.dimension)
	}
	for i, n := range extent {
		if n <= 0 {
			return fmt.Errorf("%w: cell extent %v must be > 0 on every axis", ErrNonPositiveExtent, extent)
		}
		if n%c.superCellSize[i] != 0 {
			return fmt.Errorf("%w: cell extent %v is not a multiple of super_cell_size %v on axis %d",
				ErrNotSuperCellAligned, extent, c.superCellSize, i)
		}
	}
	return nil
}

// SuperCellExtent converts a validated cell extent into super cells.
func (c *SimulationConfig) SuperCellExtent(cellExtent []int) ([]int, error) {
	if err := c.ValidateCellExtent(cellExtent); err != nil {
		return nil, err
	}
	out := make([]int, c.dimension)
	for i, n := range cellExtent {
		out[i] = n / c.superCellSize[i]
	}
	return out, nil
}
