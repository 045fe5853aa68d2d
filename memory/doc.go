// Package memory estimates the device memory a particle-in-cell simulation
// needs before it is launched.
//
// # Reading Guide
//
// Start with config.go: SimulationConfig carries the dimensionality, precision,
// super-cell tiling, guard and PML settings every estimator shares. It is
// validated once by NewSimulationConfig and is read-only afterwards.
//
// Each estimator is a method on *SimulationConfig and returns bytes for one
// device:
//   - field.go: E, B, J and temporary field slots, PML auxiliary fields and
//     the particle-shape double-buffer region
//   - supercell.go: per-super-cell atomic physics caches and histograms
//   - particle.go: one species' macro-particles, from its attribute list
//   - rng.go: per-cell random number generator state
//   - calorimeter.go: the particle calorimeter plugin
//
// The estimates are independent; callers sum them. breakdown.go does that
// for a whole device, and scenario.go loads a complete query from YAML or
// INI and runs every estimator (Estimate).
//
// All errors wrap one of the sentinel kinds declared in errors.go and can be
// matched with errors.Is.
package memory
