package memory

import (
	"fmt"
	"slices"
)

// Defaults applied by NewSimulationConfig when the matching option is absent.
// Three-axis defaults are truncated for 2D simulations.
const (
	DefaultParticleShapeOrder = 2
	DefaultPrecision          = 32
)

var (
	defaultSuperCellSize = []int{8, 8, 4}
	defaultGuardSize     = []int{1, 1, 1}
	defaultPMLBorderSize = [][]int{{12, 12}, {12, 12}, {12, 12}}
)

// SimulationConfig holds the settings shared by every estimator.
// It is immutable once NewSimulationConfig returns and may be shared freely
// between goroutines.
type SimulationConfig struct {
	dimension          int
	particleShapeOrder int
	precision          int
	superCellSize      []int
	guardSize          []int
	pmlBorderSize      [][2]int
}

type configParams struct {
	particleShapeOrder int
	precision          int
	superCellSize      []int
	guardSize          []int
	pmlBorderSize      [][]int
}

// Option overrides one default of NewSimulationConfig.
type Option func(*configParams)

// WithParticleShapeOrder sets the assignment-function order of the particle
// shape (CIC 1, TSC 2, PQS 3, PCS 4).
func WithParticleShapeOrder(order int) Option {
	return func(p *configParams) { p.particleShapeOrder = order }
}

// WithPrecision sets the floating point precision in bits (32 or 64).
func WithPrecision(bits int) Option {
	return func(p *configParams) { p.precision = bits }
}

// WithSuperCellSize sets the number of cells per super cell on each axis.
func WithSuperCellSize(size []int) Option {
	return func(p *configParams) { p.superCellSize = slices.Clone(size) }
}

// WithGuardSize sets the guard width in super cells on each axis. Zero is
// accepted and means no halo on that axis; negative widths are rejected.
func WithGuardSize(size []int) Option {
	return func(p *configParams) { p.guardSize = slices.Clone(size) }
}

// WithPMLBorderSize sets the absorbing layer thickness in cells, one
// {low, high} pair per axis.
func WithPMLBorderSize(border [][]int) Option {
	return func(p *configParams) {
		p.pmlBorderSize = make([][]int, len(border))
		for i, row := range border {
			p.pmlBorderSize[i] = slices.Clone(row)
		}
	}
}

// NewSimulationConfig validates the settings and returns an immutable config.
// Arrays given for three axes are truncated when dimension is 2.
func NewSimulationConfig(dimension int, opts ...Option) (*SimulationConfig, error) {
	p := configParams{
		particleShapeOrder: DefaultParticleShapeOrder,
		precision:          DefaultPrecision,
		superCellSize:      slices.Clone(defaultSuperCellSize),
		guardSize:          slices.Clone(defaultGuardSize),
	}
	WithPMLBorderSize(defaultPMLBorderSize)(&p)
	for _, opt := range opts {
		opt(&p)
	}

	for i, row := range p.pmlBorderSize {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: pml_border_size[%d] must hold {low, high}, got %d entries",
				ErrRankMismatch, i, len(row))
		}
	}
	if dimension != 2 && dimension != 3 {
		return nil, fmt.Errorf("%w: only 2D or 3D simulations are supported, got %d", ErrUnsupportedDimension, dimension)
	}
	if dimension == 2 {
		p.superCellSize = truncateAxes(p.superCellSize)
		p.guardSize = truncateAxes(p.guardSize)
		if len(p.pmlBorderSize) == 3 {
			p.pmlBorderSize = p.pmlBorderSize[:2]
		}
	}
	if _, err := ScalarByteSize(p.precision); err != nil {
		return nil, err
	}
	if p.particleShapeOrder < 1 {
		return nil, fmt.Errorf("%w: particle_shape_order must be >= 1, got %d", ErrInvalidParameter, p.particleShapeOrder)
	}

	if err := checkAxisCount("super_cell_size", len(p.superCellSize), dimension); err != nil {
		return nil, err
	}
	if err := checkAxisCount("guard_size", len(p.guardSize), dimension); err != nil {
		return nil, err
	}
	if err := checkAxisCount("pml_border_size", len(p.pmlBorderSize), dimension); err != nil {
		return nil, err
	}
	for i, s := range p.superCellSize {
		if s <= 0 {
			return nil, fmt.Errorf("%w: super_cell_size[%d] must be > 0, got %d", ErrNonPositiveExtent, i, s)
		}
	}
	for i, g := range p.guardSize {
		if g < 0 {
			return nil, fmt.Errorf("%w: guard_size[%d] must be >= 0, got %d", ErrInvalidParameter, i, g)
		}
	}

	c := &SimulationConfig{
		dimension:          dimension,
		particleShapeOrder: p.particleShapeOrder,
		precision:          p.precision,
		superCellSize:      p.superCellSize,
		guardSize:          p.guardSize,
		pmlBorderSize:      make([][2]int, dimension),
	}
	for i, row := range p.pmlBorderSize {
		if row[0] < 0 || row[1] < 0 {
			return nil, fmt.Errorf("%w: pml_border_size[%d] must be >= 0, got %v", ErrInvalidParameter, i, row)
		}
		c.pmlBorderSize[i] = [2]int{row[0], row[1]}
	}
	return c, nil
}

func truncateAxes(values []int) []int {
	if len(values) == 3 {
		return values[:2]
	}
	return values
}

func checkAxisCount(name string, got, dimension int) error {
	if got != dimension {
		return fmt.Errorf("%w: %s has %d axes, simulation is %dD", ErrRankMismatch, name, got, dimension)
	}
	return nil
}

// Dimension returns 2 or 3.
func (c *SimulationConfig) Dimension() int { return c.dimension }

// ParticleShapeOrder returns the assignment-function order.
func (c *SimulationConfig) ParticleShapeOrder() int { return c.particleShapeOrder }

// Precision returns the floating point precision in bits.
func (c *SimulationConfig) Precision() int { return c.precision }

// ScalarByteSize returns the size of one floating point value in bytes.
func (c *SimulationConfig) ScalarByteSize() int {
	if c.precision == 64 {
		return 8
	}
	return 4
}

// SuperCellSize returns a copy of the cells per super cell.
func (c *SimulationConfig) SuperCellSize() []int { return slices.Clone(c.superCellSize) }

// GuardSize returns a copy of the guard width in super cells.
func (c *SimulationConfig) GuardSize() []int { return slices.Clone(c.guardSize) }

// PMLBorderSize returns a copy of the {low, high} PML thickness per axis.
func (c *SimulationConfig) PMLBorderSize() [][2]int { return slices.Clone(c.pmlBorderSize) }

// String implements fmt.Stringer for log output.
func (c *SimulationConfig) String() string {
	return fmt.Sprintf("%dD precision=%d shape_order=%d super_cell=%v guard=%v pml=%v",
		c.dimension, c.precision, c.particleShapeOrder, c.superCellSize, c.guardSize, c.pmlBorderSize)
}
