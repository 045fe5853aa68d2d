package memory

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scenario is a complete memory query for one device: the simulation
// settings, the device's domain and every memory consumer placed on it.
// Loaded from YAML via LoadScenario or from INI via LoadScenarioINI.
type Scenario struct {
	Simulation    SimulationSpec     `yaml:"simulation"`
	Device        DomainSpec         `yaml:"device"`
	AtomicPhysics *AtomicPhysicsSpec `yaml:"atomic_physics,omitempty"` // nil = plugin disabled
	Species       []SpeciesSpec      `yaml:"species,omitempty"`
	Calorimeters  []CalorimeterSpec  `yaml:"calorimeters,omitempty"`
}

// SimulationSpec mirrors SimulationConfig. Unset fields take the defaults of
// NewSimulationConfig.
type SimulationSpec struct {
	Dimension          int     `yaml:"dimension"`
	ParticleShapeOrder *int    `yaml:"particle_shape_order,omitempty"`
	Precision          *int    `yaml:"precision,omitempty"`
	SuperCellSize      []int   `yaml:"super_cell_size,omitempty"`
	GuardSize          []int   `yaml:"guard_size,omitempty"`
	PMLBorderSize      [][]int `yaml:"pml_border_size,omitempty"`
}

// DomainSpec describes the cells handled by the device.
type DomainSpec struct {
	CellExtent          []int  `yaml:"cell_extent"`
	TemporaryFieldSlots *int   `yaml:"temporary_field_slots,omitempty"` // default 1
	RNGGenerator        string `yaml:"rng_generator,omitempty"`         // default XorMin
}

// AtomicPhysicsSpec configures the atomic physics plugin's super cell state.
type AtomicPhysicsSpec struct {
	AtomicStates          []int `yaml:"atomic_states"`
	ElectronHistogramBins int   `yaml:"electron_histogram_bins"`
	IPDActive             *bool `yaml:"ipd_active,omitempty"` // default true
}

// SpeciesSpec describes one particle species on the device.
type SpeciesSpec struct {
	Name             string             `yaml:"name"`
	ParticlesPerCell int                `yaml:"particles_per_cell"`
	FilledCells      []int              `yaml:"filled_cells,omitempty"` // default: device cell extent
	Attributes       []string           `yaml:"attributes"`
	CustomAttributes AttributeSizeTable `yaml:"custom_attributes,omitempty"`
}

// CalorimeterSpec describes one calorimeter plugin instance.
type CalorimeterSpec struct {
	Name       string `yaml:"name"`
	EnergyBins int    `yaml:"energy_bins"`
	YawBins    int    `yaml:"yaw_bins"`
	PitchBins  int    `yaml:"pitch_bins"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &s, nil
}

// LoadScenarioFile loads a scenario in the format given by the file
// extension: .ini and .cfg are read as INI, everything else as YAML.
func LoadScenarioFile(path string) (*Scenario, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".cfg":
		return LoadScenarioINI(path)
	default:
		return LoadScenario(path)
	}
}

// Validate checks the structure of the scenario. Geometry and precision are
// validated by Config and the estimators.
func (s *Scenario) Validate() error {
	if len(s.Device.CellExtent) == 0 {
		return fmt.Errorf("%w: device.cell_extent is required", ErrRankMismatch)
	}
	if _, err := ParseGenerator(s.Device.RNGGenerator); err != nil {
		return fmt.Errorf("device.rng_generator: %w", err)
	}
	seen := make(map[string]bool, len(s.Species))
	for i, sp := range s.Species {
		if sp.Name == "" {
			return fmt.Errorf("%w: species[%d] has no name", ErrInvalidParameter, i)
		}
		if seen[sp.Name] {
			return fmt.Errorf("%w: duplicate species %q", ErrInvalidParameter, sp.Name)
		}
		seen[sp.Name] = true
	}
	seen = make(map[string]bool, len(s.Calorimeters))
	for i, cal := range s.Calorimeters {
		if cal.Name == "" {
			return fmt.Errorf("%w: calorimeters[%d] has no name", ErrInvalidParameter, i)
		}
		if seen[cal.Name] {
			return fmt.Errorf("%w: duplicate calorimeter %q", ErrInvalidParameter, cal.Name)
		}
		seen[cal.Name] = true
	}
	return nil
}

// Config builds the SimulationConfig described by the scenario.
func (s *Scenario) Config() (*SimulationConfig, error) {
	var opts []Option
	sim := s.Simulation
	if sim.ParticleShapeOrder != nil {
		opts = append(opts, WithParticleShapeOrder(*sim.ParticleShapeOrder))
	}
	if sim.Precision != nil {
		opts = append(opts, WithPrecision(*sim.Precision))
	}
	if sim.SuperCellSize != nil {
		opts = append(opts, WithSuperCellSize(sim.SuperCellSize))
	}
	if sim.GuardSize != nil {
		opts = append(opts, WithGuardSize(sim.GuardSize))
	}
	if sim.PMLBorderSize != nil {
		opts = append(opts, WithPMLBorderSize(sim.PMLBorderSize))
	}
	return NewSimulationConfig(sim.Dimension, opts...)
}

// Estimate runs every estimator the scenario asks for and returns the device
// breakdown. Errors name the failing component and keep their kind.
func Estimate(s *Scenario) (*Breakdown, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	cfg, err := s.Config()
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	logrus.Debugf("estimating device memory for %s", cfg)

	extent := s.Device.CellExtent
	slots := DefaultTemporaryFieldSlots
	if s.Device.TemporaryFieldSlots != nil {
		slots = *s.Device.TemporaryFieldSlots
	}
	generator, err := ParseGenerator(s.Device.RNGGenerator)
	if err != nil {
		return nil, fmt.Errorf("rng: %w", err)
	}

	b := &Breakdown{}
	if b.Fields, err = cfg.FieldMemory(extent, slots); err != nil {
		return nil, fmt.Errorf("fields: %w", err)
	}

	if ap := s.AtomicPhysics; ap != nil {
		superCells, err := cfg.SuperCellExtent(extent)
		if err != nil {
			return nil, fmt.Errorf("super cells: %w", err)
		}
		ipd := true
		if ap.IPDActive != nil {
			ipd = *ap.IPDActive
		}
		if b.SuperCells, err = cfg.SuperCellMemory(superCells, ap.AtomicStates, ap.ElectronHistogramBins, ipd); err != nil {
			return nil, fmt.Errorf("super cells: %w", err)
		}
	}

	for _, sp := range s.Species {
		filled := sp.FilledCells
		if len(filled) == 0 {
			filled = extent
		}
		n, err := cfg.ParticleMemory(filled, sp.ParticlesPerCell, sp.Attributes, sp.CustomAttributes)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", sp.Name, err)
		}
		b.Particles = append(b.Particles, Component{Name: sp.Name, Bytes: n})
	}

	if b.RNG, err = cfg.RNGMemory(extent, generator); err != nil {
		return nil, fmt.Errorf("rng: %w", err)
	}

	for _, cal := range s.Calorimeters {
		n, err := cfg.CalorimeterMemory(cal.EnergyBins, cal.YawBins, cal.PitchBins)
		if err != nil {
			return nil, fmt.Errorf("calorimeter %q: %w", cal.Name, err)
		}
		b.Calorimeters = append(b.Calorimeters, Component{Name: cal.Name, Bytes: n})
	}
	return b, nil
}
