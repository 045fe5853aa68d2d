package ionization

import "math"

// CODATA 2018 values in SI units.
const (
	ElectronMass       = 9.1093837015e-31 // kg
	ElementaryCharge   = 1.602176634e-19  // C
	ReducedPlanck      = 1.054571817e-34  // J s
	VacuumPermittivity = 8.8541878128e-12 // F/m
	SpeedOfLight       = 299792458.0      // m/s
	FineStructure      = 7.2973525693e-3
)

// DefaultWavelength is the laser wavelength assumed by the a0 conversions
// (Ti:sapphire, 800 nm), in m.
const DefaultWavelength = 800.0e-9

// AtomicUnits holds the SI value of one atomic unit of each quantity.
type AtomicUnits struct {
	ElectricField float64 // V/m
	Intensity     float64 // W/m^2
	Energy        float64 // J
	Time          float64 // s
}

// AU is the atomic unit system in SI.
var AU = newAtomicUnits()

func newAtomicUnits() AtomicUnits {
	coulomb := 4 * math.Pi * VacuumPermittivity
	me, e, hbar := ElectronMass, ElementaryCharge, ReducedPlanck
	return AtomicUnits{
		ElectricField: me * me * math.Pow(e, 5) / (math.Pow(hbar, 4) * math.Pow(coulomb, 3)),
		Intensity:     math.Pow(me, 4) / (8 * math.Pi * FineStructure * math.Pow(hbar, 9)) * math.Pow(e, 12) / math.Pow(coulomb, 6),
		Energy:        me * math.Pow(e, 4) / (hbar * hbar * coulomb * coulomb),
		Time:          math.Pow(hbar, 3) * coulomb * coulomb / me / math.Pow(e, 4),
	}
}

// ElectronVoltsToAU converts an energy in eV to atomic units.
func ElectronVoltsToAU(ev float64) float64 {
	return ev * ElementaryCharge / AU.Energy
}

// FieldToAU converts an electric field in V/m to atomic units.
func FieldToAU(field float64) float64 {
	return field / AU.ElectricField
}

// RateToSI converts a rate in 1/AU(time) to 1/s.
func RateToSI(rate float64) float64 {
	return rate / AU.Time
}

// a0Field is the SI field strength corresponding to a0 = 1.
func a0Field(wavelength float64) float64 {
	return ElectronMass * SpeedOfLight * 2 * math.Pi * SpeedOfLight / (wavelength * ElementaryCharge)
}

// A0ToIntensity converts a normalized laser amplitude a0 to the
// cycle-averaged intensity in W/m^2 of a laser with the given wavelength (m).
func A0ToIntensity(a0, wavelength float64) float64 {
	field := a0 * a0Field(wavelength)
	return 0.5 * SpeedOfLight * VacuumPermittivity * field * field
}

// IntensityToA0 converts an intensity in W/m^2 to the normalized laser
// amplitude a0. It is the inverse of A0ToIntensity.
func IntensityToA0(intensity, wavelength float64) float64 {
	field := math.Sqrt(intensity / (0.5 * SpeedOfLight * VacuumPermittivity))
	return field / a0Field(wavelength)
}
