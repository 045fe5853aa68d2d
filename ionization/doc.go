// Package ionization implements the field ionization models used by
// particle-in-cell simulations: barrier suppression thresholds, the
// Ammosov-Delone-Krainov (ADK) and Keldysh tunnelling rates, and conversions
// between laser amplitude, intensity and atomic units.
//
// Unless stated otherwise charge states are dimensionless, ionization
// potentials and field strengths are in atomic units and rates are in
// 1/AU(time).
package ionization
