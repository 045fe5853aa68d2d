package memory

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	// process class groups cached per atomic state in the rate cache
	rateCacheProcessClassGroups = 5
	// electron histogram channels besides the bin weights
	electronHistogramChannels = 3
	// scalar accumulators kept per super cell when ionization potential
	// depression is active: weight sums (all, electrons), temperature
	// functional, charge number sum and squared sum, Debye length, Z*,
	// temperature energy
	ipdAccumulators = 8
)

// SuperCellMemory returns the bytes one device needs for the per-super-cell
// state of the atomic physics plugin.
//
// atomicStates lists the number of atomic states of each atomic physics ion
// species; histogramBins is the number of electron histogram bins.
func (c *SimulationConfig) SuperCellMemory(superCellExtent []int, atomicStates []int, histogramBins int, ipdActive bool) (int64, error) {
	if len(superCellExtent) != c.dimension {
		return 0, fmt.Errorf("%w: super cell extent %v has %d axes, simulation is %dD",
			ErrRankMismatch, superCellExtent, len(superCellExtent), c.dimension)
	}
	cellExtent := make([]int, c.dimension)
	for i, n := range superCellExtent {
		if n <= 0 {
			cellExtent[i] = n
			continue
		}
		cells, err := mulBytes(int64(n), int64(c.superCellSize[i]))
		if err != nil {
			return 0, fmt.Errorf("super cell extent %v: %w", superCellExtent, err)
		}
		cellExtent[i] = int(cells)
	}
	if err := c.ValidateCellExtent(cellExtent); err != nil {
		return 0, err
	}
	if histogramBins < 0 {
		return 0, fmt.Errorf("%w: electron histogram bins must be >= 0, got %d", ErrInvalidParameter, histogramBins)
	}

	f := int64(c.ScalarByteSize())
	cellsPerSuperCell, err := product(c.superCellSize)
	if err != nil {
		return 0, err
	}

	var rateCaches int64
	for i, states := range atomicStates {
		if states < 0 {
			return 0, fmt.Errorf("%w: atomic state count of species %d must be >= 0, got %d",
				ErrInvalidParameter, i, states)
		}
		cache, err := mulBytes(int64(states), f*rateCacheProcessClassGroups+sizeUint32)
		if err != nil {
			return 0, err
		}
		if rateCaches, err = addBytes(rateCaches, cache); err != nil {
			return 0, err
		}
	}

	fixed := 2*sizeUint32 + // shared over-subscription and found-unbound flags
		2*f + // time remaining, time step
		f // electron histogram total weight
	if ipdActive {
		fixed += ipdAccumulators * f
	}
	perSuperCell, err := weightedSum(
		[]int64{rateCaches, cellsPerSuperCell, int64(histogramBins), 1},
		[]int64{
			1,
			2 * f, // rejection probability and field energy use caches per cell
			(1 + electronHistogramChannels) * f, // rejection probability per bin, electron histogram
			fixed,
		})
	if err != nil {
		return 0, err
	}

	superCells, err := product(superCellExtent)
	if err != nil {
		return 0, err
	}
	total, err := mulBytes(superCells, perSuperCell)
	if err != nil {
		return 0, err
	}
	logrus.Debugf("super cell memory: %d super cells x %d bytes = %d bytes", superCells, perSuperCell, total)
	return total, nil
}
