package memory

import "fmt"

// calorimeterCopies counts the calorimeter instances per device: one for
// particles inside the box, one for particles that left it.
const calorimeterCopies = 2

// CalorimeterMemory returns the bytes one device needs for a particle
// calorimeter with the given number of energy, yaw and pitch bins. Each bin
// holds one floating point value.
func (c *SimulationConfig) CalorimeterMemory(energyBins, yawBins, pitchBins int) (int64, error) {
	if energyBins < 0 || yawBins < 0 || pitchBins < 0 {
		return 0, fmt.Errorf("%w: calorimeter bins must be >= 0, got energy=%d yaw=%d pitch=%d",
			ErrInvalidParameter, energyBins, yawBins, pitchBins)
	}
	bins, err := product([]int{energyBins, yawBins, pitchBins, calorimeterCopies})
	if err != nil {
		return 0, err
	}
	return mulBytes(bins, int64(c.ScalarByteSize()))
}
