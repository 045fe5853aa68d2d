package memory

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"
)

// optionalInt and optionalBool tell an absent INI variable apart from an
// explicit zero value.
type optionalInt struct {
	set   bool
	value int
}

func (o *optionalInt) UnmarshalText(text []byte) error {
	v, err := strconv.Atoi(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	o.set, o.value = true, v
	return nil
}

func (o optionalInt) ptr() *int {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

type optionalBool struct {
	set   bool
	value bool
}

func (o *optionalBool) UnmarshalText(text []byte) error {
	v, err := strconv.ParseBool(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	o.set, o.value = true, v
	return nil
}

// scenarioINI is the INI layout of a Scenario:
//
//	[simulation]
//	dimension = 3
//	superCellSize = 8
//	superCellSize = 8
//	superCellSize = 4
//	pmlLow = 12
//	pmlHigh = 12
//
//	[device]
//	cellExtent = 128
//
//	[atomicPhysics]
//	enabled = true
//	atomicStates = 100
//
//	[species "electrons"]
//	particlesPerCell = 2
//	attribute = momentum
//	customAttribute = spin:4
//
//	[calorimeter "forward"]
//	energyBins = 64
//
// List values are given by repeating the variable.
type scenarioINI struct {
	Simulation struct {
		Dimension          int
		ParticleShapeOrder optionalInt
		Precision          optionalInt
		SuperCellSize      []int
		GuardSize          []int
		PmlLow             []int
		PmlHigh            []int
	}
	Device struct {
		CellExtent          []int
		TemporaryFieldSlots optionalInt
		RngGenerator        string
	}
	AtomicPhysics struct {
		Enabled               bool
		AtomicStates          []int
		ElectronHistogramBins int
		IpdActive             optionalBool
	}
	Species     map[string]*speciesINI
	Calorimeter map[string]*calorimeterINI
}

type speciesINI struct {
	ParticlesPerCell int
	FilledCells      []int
	Attribute        []string
	CustomAttribute  []string
}

type calorimeterINI struct {
	EnergyBins int
	YawBins    int
	PitchBins  int
}

// LoadScenarioINI reads an INI scenario file. Unknown sections and variables
// are rejected. Species and calorimeters are ordered by name.
func LoadScenarioINI(path string) (*Scenario, error) {
	var raw scenarioINI
	if err := gcfg.ReadFileInto(&raw, path); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return raw.scenario()
}

func (raw *scenarioINI) scenario() (*Scenario, error) {
	sim := raw.Simulation
	s := &Scenario{
		Simulation: SimulationSpec{
			Dimension:          sim.Dimension,
			ParticleShapeOrder: sim.ParticleShapeOrder.ptr(),
			Precision:          sim.Precision.ptr(),
			SuperCellSize:      sim.SuperCellSize,
			GuardSize:          sim.GuardSize,
		},
		Device: DomainSpec{
			CellExtent:          raw.Device.CellExtent,
			TemporaryFieldSlots: raw.Device.TemporaryFieldSlots.ptr(),
			RNGGenerator:        raw.Device.RngGenerator,
		},
	}

	if sim.PmlLow != nil || sim.PmlHigh != nil {
		if len(sim.PmlLow) != len(sim.PmlHigh) {
			return nil, fmt.Errorf("%w: pmlLow has %d axes but pmlHigh has %d",
				ErrRankMismatch, len(sim.PmlLow), len(sim.PmlHigh))
		}
		s.Simulation.PMLBorderSize = make([][]int, len(sim.PmlLow))
		for i := range sim.PmlLow {
			s.Simulation.PMLBorderSize[i] = []int{sim.PmlLow[i], sim.PmlHigh[i]}
		}
	}

	if ap := raw.AtomicPhysics; ap.Enabled {
		s.AtomicPhysics = &AtomicPhysicsSpec{
			AtomicStates:          ap.AtomicStates,
			ElectronHistogramBins: ap.ElectronHistogramBins,
		}
		if ap.IpdActive.set {
			ipd := ap.IpdActive.value
			s.AtomicPhysics.IPDActive = &ipd
		}
	}

	for _, name := range sortedKeys(raw.Species) {
		sp := raw.Species[name]
		custom, err := parseCustomAttributes(sp.CustomAttribute)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", name, err)
		}
		s.Species = append(s.Species, SpeciesSpec{
			Name:             name,
			ParticlesPerCell: sp.ParticlesPerCell,
			FilledCells:      sp.FilledCells,
			Attributes:       sp.Attribute,
			CustomAttributes: custom,
		})
	}
	for _, name := range sortedKeys(raw.Calorimeter) {
		cal := raw.Calorimeter[name]
		s.Calorimeters = append(s.Calorimeters, CalorimeterSpec{
			Name:       name,
			EnergyBins: cal.EnergyBins,
			YawBins:    cal.YawBins,
			PitchBins:  cal.PitchBins,
		})
	}
	return s, nil
}

// parseCustomAttributes turns "name:bytes" entries into a size table.
func parseCustomAttributes(entries []string) (AttributeSizeTable, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	table := make(AttributeSizeTable, len(entries))
	for _, e := range entries {
		name, size, ok := strings.Cut(e, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: custom attribute %q must be name:bytes", ErrInvalidParameter, e)
		}
		n, err := strconv.Atoi(strings.TrimSpace(size))
		if err != nil {
			return nil, fmt.Errorf("%w: custom attribute %q: %v", ErrInvalidParameter, e, err)
		}
		table[name] = n
	}
	return table, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
