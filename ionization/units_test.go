package ionization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicUnits(t *testing.T) {
	assert.InEpsilon(t, 5.14220674763e11, AU.ElectricField, 1e-8)
	assert.InEpsilon(t, 3.50944758e20, AU.Intensity, 1e-6)
	assert.InEpsilon(t, 4.3597447222071e-18, AU.Energy, 1e-8)
	assert.InEpsilon(t, 2.4188843265857e-17, AU.Time, 1e-8)
}

func TestElectronVoltsToAU(t *testing.T) {
	// one Hartree is 27.211386 eV
	assert.InEpsilon(t, 1.0, ElectronVoltsToAU(27.211386245988), 1e-8)
	// hydrogen ground state
	assert.InEpsilon(t, 0.5, ElectronVoltsToAU(13.605693122994), 1e-8)
}

func TestFieldAndRateConversions(t *testing.T) {
	assert.InEpsilon(t, 2.0, FieldToAU(2*AU.ElectricField), 1e-12)
	assert.InEpsilon(t, 1/AU.Time, RateToSI(1), 1e-12)
}

func TestA0ToIntensity(t *testing.T) {
	// a0 = 1 at 800 nm is about 2.14e18 W/cm^2
	assert.InEpsilon(t, 2.1377613e22, A0ToIntensity(1, DefaultWavelength), 1e-6)
	// intensity scales with a0^2
	assert.InEpsilon(t, 4*A0ToIntensity(1, DefaultWavelength), A0ToIntensity(2, DefaultWavelength), 1e-12)
	assert.Zero(t, A0ToIntensity(0, DefaultWavelength))
}

func TestIntensityToA0_InvertsA0ToIntensity(t *testing.T) {
	for _, a0 := range []float64{0.01, 0.5, 1, 3.7, 42} {
		for _, lambda := range []float64{DefaultWavelength, 1.03e-6, 10.6e-6} {
			got := IntensityToA0(A0ToIntensity(a0, lambda), lambda)
			assert.InEpsilon(t, a0, got, 1e-12, "a0=%g lambda=%g", a0, lambda)
		}
	}
}
