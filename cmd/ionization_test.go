package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picongpu-tools/memcalc/ionization"
)

func TestPrintSweep(t *testing.T) {
	oldMin, oldMax, oldPoints, oldLog := fieldMin, fieldMax, sweepPoints, logScale
	t.Cleanup(func() { fieldMin, fieldMax, sweepPoints, logScale = oldMin, oldMax, oldPoints, oldLog })
	fieldMin, fieldMax, sweepPoints, logScale = 1e10, 1e12, 3, true

	var buf bytes.Buffer
	require.NoError(t, printSweep(&buf, ionization.KeldyshModel(0.5)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "rate[1/s]")
	assert.True(t, strings.HasPrefix(lines[2], "1.000000e+11"), "got %q", lines[2])
}

func TestPrintConversion(t *testing.T) {
	oldA0, oldI, oldL := a0Value, intensityValue, wavelength
	t.Cleanup(func() { a0Value, intensityValue, wavelength = oldA0, oldI, oldL })
	a0Value, wavelength = 1, ionization.DefaultWavelength
	intensityValue = ionization.A0ToIntensity(2, ionization.DefaultWavelength)

	var buf bytes.Buffer
	require.NoError(t, printConversion(&buf, true, false))
	assert.Contains(t, buf.String(), "intensity: 2.137761e+22 W/m^2")

	buf.Reset()
	require.NoError(t, printConversion(&buf, false, true))
	assert.Equal(t, "a0: 2\n", buf.String())

	assert.Error(t, printConversion(&buf, true, true))
	assert.Error(t, printConversion(&buf, false, false))
}
