package ionization

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// RateModel evaluates an ionization rate at field strength f.
type RateModel func(f float64) float64

// ADKModel binds the ADK rate to one ion and polarization.
func ADKModel(z, ip float64, pol Polarization) (RateModel, error) {
	if _, err := ADKRate(z, ip, 1, pol); err != nil {
		return nil, err
	}
	return func(f float64) float64 {
		rate, _ := ADKRate(z, ip, f, pol)
		return rate
	}, nil
}

// KeldyshModel binds the Keldysh rate to one ionization potential.
func KeldyshModel(ip float64) RateModel {
	return func(f float64) float64 { return KeldyshRate(ip, f) }
}

// RatePoint is a rate sampled at one field strength.
type RatePoint struct {
	Field float64
	Rate  float64
}

// Sweep samples model at points field strengths from fMin to fMax inclusive,
// evenly spaced or, with logScale, evenly spaced in log10.
func Sweep(model RateModel, fMin, fMax float64, points int, logScale bool) ([]RatePoint, error) {
	if points < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points, got %d", points)
	}
	if fMin < 0 || fMax <= fMin {
		return nil, fmt.Errorf("sweep range must satisfy 0 <= min < max, got [%g, %g]", fMin, fMax)
	}

	fields := make([]float64, points)
	if logScale {
		if fMin == 0 {
			return nil, fmt.Errorf("log-scale sweep needs a positive minimum field")
		}
		floats.LogSpan(fields, fMin, fMax)
	} else {
		floats.Span(fields, fMin, fMax)
	}

	out := make([]RatePoint, points)
	for i, f := range fields {
		out[i] = RatePoint{Field: f, Rate: model(f)}
	}
	return out, nil
}
