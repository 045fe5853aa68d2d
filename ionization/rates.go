package ionization

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownPolarization is returned for a laser polarization other than
// Linear or Circular.
var ErrUnknownPolarization = errors.New("unknown polarization")

// Polarization of the ionizing laser.
type Polarization string

const (
	Linear   Polarization = "linear"
	Circular Polarization = "circular"
)

// ParsePolarization maps "linear" or "circular" to a Polarization.
func ParsePolarization(name string) (Polarization, error) {
	switch p := Polarization(name); p {
	case Linear, Circular:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q, implemented are linear and circular", ErrUnknownPolarization, name)
	}
}

// BarrierSuppressionField returns the classical barrier suppression field
// for an ion of resulting charge state z and ionization potential ip.
func BarrierSuppressionField(z, ip float64) float64 {
	return ip * ip / (4 * z)
}

// StarkShiftedBarrierSuppressionField returns the barrier suppression field
// including the Stark shift of the bound level (Bauer 2010, eq. 7.45).
func StarkShiftedBarrierSuppressionField(ip float64) float64 {
	return (math.Sqrt2 - 1) * math.Pow(ip, 1.5)
}

// EffectiveQuantumNumber returns the effective principal quantum number used
// by the ADK model.
func EffectiveQuantumNumber(z, ip float64) float64 {
	return z / math.Sqrt(2*ip)
}

// ADKRate returns the Ammosov-Delone-Krainov tunnelling rate, simplified by
// Stirling's approximation with magnetic quantum number m = 0.
// A non-finite result, as produced by near-zero fields, is reported as 0.
func ADKRate(z, ip, f float64, pol Polarization) (float64, error) {
	if pol != Linear && pol != Circular {
		return 0, fmt.Errorf("%w: %q, implemented are linear and circular", ErrUnknownPolarization, string(pol))
	}
	nEff := EffectiveQuantumNumber(z, ip)
	z3 := z * z * z
	n3 := nEff * nEff * nEff
	d := math.Pow(4*math.E*z3/(f*n3*nEff), nEff)

	rate := f * d * d / (8 * math.Pi * z) * math.Exp(-2*z3/(3*n3*f))
	if pol == Linear {
		rate *= math.Sqrt(3 * n3 * f / (math.Pi * z3))
	}
	return finiteOrZero(rate), nil
}

// KeldyshRate returns the Keldysh tunnelling rate.
// A non-finite result is reported as 0.
func KeldyshRate(ip, f float64) float64 {
	arg := math.Sqrt(math.Pow(2*ip, 3)) / f
	rate := math.Sqrt(6*math.Pi) / math.Pow(2, 5.0/4.0) * ip * math.Sqrt(1/arg) * math.Exp(-2.0/3.0*arg)
	return finiteOrZero(rate)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
