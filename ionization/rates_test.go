package ionization

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarrierSuppressionField_Hydrogen(t *testing.T) {
	assert.InDelta(t, 0.0625, BarrierSuppressionField(1, 0.5), 1e-15)
	assert.InDelta(t, (math.Sqrt2-1)*math.Pow(0.5, 1.5), StarkShiftedBarrierSuppressionField(0.5), 1e-15)
}

func TestEffectiveQuantumNumber(t *testing.T) {
	assert.InDelta(t, 1.0, EffectiveQuantumNumber(1, 0.5), 1e-15)
	assert.InDelta(t, 2.0, EffectiveQuantumNumber(2, 0.5), 1e-15)
}

func TestADKRate_KnownValues(t *testing.T) {
	linear, err := ADKRate(1, 0.5, 0.05, Linear)
	require.NoError(t, err)
	assert.InEpsilon(t, 3.329482093881455e-05, linear, 1e-9)

	circular, err := ADKRate(1, 0.5, 0.05, Circular)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.00015237228852533, circular, 1e-9)
}

func TestADKRate_ZeroFieldIsZero(t *testing.T) {
	for _, pol := range []Polarization{Linear, Circular} {
		rate, err := ADKRate(1, 0.5, 0, pol)
		require.NoError(t, err)
		assert.Zero(t, rate, "polarization %s", pol)
	}
}

func TestADKRate_IncreasesWithField(t *testing.T) {
	prev := 0.0
	for _, f := range []float64{0.01, 0.02, 0.04, 0.06, 0.08} {
		rate, err := ADKRate(1, 0.5, f, Linear)
		require.NoError(t, err)
		assert.Greater(t, rate, prev, "field %g", f)
		prev = rate
	}
}

func TestADKRate_UnknownPolarization(t *testing.T) {
	_, err := ADKRate(1, 0.5, 0.05, Polarization("elliptical"))
	assert.True(t, errors.Is(err, ErrUnknownPolarization))
}

func TestKeldyshRate(t *testing.T) {
	assert.InEpsilon(t, 3.305407296355463e-07, KeldyshRate(0.5, 0.05), 1e-9)
	assert.Zero(t, KeldyshRate(0.5, 0))
	assert.Greater(t, KeldyshRate(0.5, 0.1), KeldyshRate(0.5, 0.05))
}

func TestParsePolarization(t *testing.T) {
	p, err := ParsePolarization("circular")
	require.NoError(t, err)
	assert.Equal(t, Circular, p)

	_, err = ParsePolarization("Linear")
	assert.True(t, errors.Is(err, ErrUnknownPolarization))
}
