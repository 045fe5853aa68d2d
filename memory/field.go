package memory

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultTemporaryFieldSlots is the number of temporary field slots reserved
// by a default simulation setup.
const DefaultTemporaryFieldSlots = 1

const (
	// one scalar per component of E, B and J
	vectorFieldComponents = 3 * 3
	// with PML enabled, 2 additional scalars per component of E and B
	pmlFieldComponents = 2 * 2 * 3
)

// FieldMemory returns the bytes one device needs for its cell fields.
//
// The estimate covers E, B, J and the temporary slots on the local grid
// including guard cells, the double-buffer region written by the particle
// shape beyond the core, and the auxiliary PML components inside the
// absorbing border. cellExtent is the device's cell extent, not the global
// grid.
func (c *SimulationConfig) FieldMemory(cellExtent []int, temporarySlots int) (int64, error) {
	if err := c.ValidateCellExtent(cellExtent); err != nil {
		return 0, err
	}
	if temporarySlots < 0 {
		return 0, fmt.Errorf("%w: temporary field slots must be >= 0, got %d", ErrInvalidParameter, temporarySlots)
	}

	local := make([]int, c.dimension)
	inner := make([]int, c.dimension)
	padded := make([]int, c.dimension)
	for i, n := range cellExtent {
		local[i] = n + 2*c.guardSize[i]*c.superCellSize[i]
		padded[i] = n + c.particleShapeOrder

		// a device smaller than the configured PML only hosts part of it
		low := min(c.pmlBorderSize[i][0], n)
		high := min(c.pmlBorderSize[i][1], n)
		if low != c.pmlBorderSize[i][0] || high != c.pmlBorderSize[i][1] {
			logrus.Debugf("pml border on axis %d clamped from %v to [%d %d] by local extent %d",
				i, c.pmlBorderSize[i], low, high, n)
		}
		inner[i] = max(n-low-high, 0)
	}

	coreCells, err := product(cellExtent)
	if err != nil {
		return 0, err
	}
	localCells, err := product(local)
	if err != nil {
		return 0, err
	}
	innerCells, err := product(inner)
	if err != nil {
		return 0, err
	}
	paddedCells, err := product(padded)
	if err != nil {
		return 0, err
	}
	pmlCells := coreCells - innerCells
	doubleBufferCells := paddedCells - coreCells

	numberFields := int64(vectorFieldComponents + temporarySlots)
	scalars, err := weightedSum(
		[]int64{localCells, doubleBufferCells, pmlCells},
		[]int64{numberFields, numberFields, pmlFieldComponents},
	)
	if err != nil {
		return 0, err
	}
	total, err := mulBytes(scalars, int64(c.ScalarByteSize()))
	if err != nil {
		return 0, err
	}
	logrus.Debugf("field memory: local=%d double_buffer=%d pml=%d cells, %d bytes",
		localCells, doubleBufferCells, pmlCells, total)
	return total, nil
}
