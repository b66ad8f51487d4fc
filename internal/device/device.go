// Package device assembles composite quantum systems: an ordered set of
// subsystems, their pairwise interactions, and the machinery to lift
// local operators into the joint Hilbert space.
//
// The subsystem registration order defines the canonical tensor-product
// basis; every expanded operator is expressed against it.
package device

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qsim/internal/hilbert"
	"github.com/san-kum/qsim/internal/linalg"
	"github.com/san-kum/qsim/internal/operator"
	"github.com/san-kum/qsim/internal/quantum"
)

// Domain errors for device assembly.
var (
	// ErrUnknownSubsystem indicates a name with no registered subsystem.
	ErrUnknownSubsystem = errors.New("device: unknown subsystem")

	// ErrDuplicateSubsystem indicates a name registered twice.
	ErrDuplicateSubsystem = errors.New("device: subsystem already registered")

	// ErrEmptyDevice indicates an operation requiring at least one
	// subsystem.
	ErrEmptyDevice = errors.New("device: no subsystems registered")
)

// ControlHam is an in-phase/quadrature pair of drive Hamiltonians in the
// full space.
type ControlHam struct {
	InPhase    *operator.Hamiltonian
	Quadrature *operator.Hamiltonian
}

// Device is a composite quantum system under construction.
type Device struct {
	subsystems   []*quantum.Subsystem
	index        map[string]int
	interactions []*operator.Interaction
	controls     []ControlHam
	dissipators  []*operator.Dissipator
	measurement  *mat.CDense
}

// New returns an empty device.
func New() *Device {
	return &Device{index: make(map[string]int)}
}

// AddSubsystem appends a subsystem; its position fixes its place in the
// canonical tensor-product ordering.
func (d *Device) AddSubsystem(s *quantum.Subsystem) error {
	if _, ok := d.index[s.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSubsystem, s.Name)
	}
	d.index[s.Name] = len(d.subsystems)
	d.subsystems = append(d.subsystems, s)
	return nil
}

// Subsystem returns a registered subsystem by name.
func (d *Device) Subsystem(name string) (*quantum.Subsystem, error) {
	idx, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubsystem, name)
	}
	return d.subsystems[idx], nil
}

// Subsystems returns the subsystems in canonical order.
func (d *Device) Subsystems() []*quantum.Subsystem {
	return d.subsystems
}

// Dimensions returns the per-subsystem dimension vector in canonical
// order.
func (d *Device) Dimensions() []int {
	dims := make([]int, len(d.subsystems))
	for i, s := range d.subsystems {
		dims[i] = s.Dim
	}
	return dims
}

// FullDimension returns the joint-space dimension.
func (d *Device) FullDimension() int {
	dim := 1
	for _, s := range d.subsystems {
		dim *= s.Dim
	}
	return dim
}

// AddInteraction couples two registered subsystems. The returned
// Interaction may be kept to retune Strength later (followed by
// Recompute and a fresh FullHamiltonian).
func (d *Device) AddInteraction(nameA, nameB string, kind operator.InteractionKind, strength float64) (*operator.Interaction, error) {
	a, err := d.Subsystem(nameA)
	if err != nil {
		return nil, err
	}
	b, err := d.Subsystem(nameB)
	if err != nil {
		return nil, err
	}
	inter, err := operator.NewInteraction(a, b, kind, strength)
	if err != nil {
		return nil, err
	}
	d.interactions = append(d.interactions, inter)
	return inter, nil
}

// Interactions returns the registered interactions.
func (d *Device) Interactions() []*operator.Interaction {
	return d.interactions
}

// ExpandOperator lifts a single-subsystem operator into the full space.
func (d *Device) ExpandOperator(name string, op *mat.CDense) (*mat.CDense, error) {
	idx, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubsystem, name)
	}
	return hilbert.Expand(op, []int{idx}, d.passive(idx), d.Dimensions())
}

// ExpandPair lifts an operator on the local product space of two
// subsystems (factors ordered nameA ⊗ nameB) into the full space.
func (d *Device) ExpandPair(nameA, nameB string, op *mat.CDense) (*mat.CDense, error) {
	ia, ok := d.index[nameA]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubsystem, nameA)
	}
	ib, ok := d.index[nameB]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubsystem, nameB)
	}
	return hilbert.Expand(op, []int{ia, ib}, d.passive(ia, ib), d.Dimensions())
}

// FullHamiltonian sums the expanded natural Hamiltonians of every
// subsystem with the expanded interaction matrices.
func (d *Device) FullHamiltonian() (*operator.Hamiltonian, error) {
	if len(d.subsystems) == 0 {
		return nil, ErrEmptyDevice
	}

	total := operator.NewHamiltonian(linalg.Zeros(d.FullDimension()))
	for _, s := range d.subsystems {
		expanded, err := d.ExpandOperator(s.Name, s.Natural())
		if err != nil {
			return nil, fmt.Errorf("device: natural Hamiltonian of %q: %w", s.Name, err)
		}
		if err := total.AccumulateMatrix(expanded); err != nil {
			return nil, err
		}
	}

	for _, inter := range d.interactions {
		expanded, err := d.ExpandPair(inter.A.Name, inter.B.Name, inter.Matrix())
		if err != nil {
			return nil, fmt.Errorf("device: interaction %s-%s: %w", inter.A.Name, inter.B.Name, err)
		}
		if err := total.AccumulateMatrix(expanded); err != nil {
			return nil, err
		}
	}

	return total, nil
}

// AddControlHam registers an in-phase/quadrature drive pair.
func (d *Device) AddControlHam(inPhase, quadrature *operator.Hamiltonian) {
	d.controls = append(d.controls, ControlHam{InPhase: inPhase, Quadrature: quadrature})
}

// Controls returns the registered drive pairs.
func (d *Device) Controls() []ControlHam {
	return d.controls
}

// AddDissipator registers a full-space Lindblad dissipator.
func (d *Device) AddDissipator(diss *operator.Dissipator) {
	d.dissipators = append(d.dissipators, diss)
}

// Dissipators returns the registered dissipators.
func (d *Device) Dissipators() []*operator.Dissipator {
	return d.dissipators
}

// AddT1Dissipators expands and registers the amplitude-damping channel of
// every subsystem with a finite T1. Subsystems without decay contribute
// nothing.
func (d *Device) AddT1Dissipators() error {
	for _, s := range d.subsystems {
		l := s.T1Dissipator()
		if linalg.NormInf(l) == 0 {
			continue
		}
		expanded, err := d.ExpandOperator(s.Name, l)
		if err != nil {
			return fmt.Errorf("device: T1 dissipator of %q: %w", s.Name, err)
		}
		d.dissipators = append(d.dissipators, operator.NewDissipator(expanded))
	}
	return nil
}

// SetMeasurement registers the full-space measurement operator.
func (d *Device) SetMeasurement(m *mat.CDense) error {
	n, _ := m.Dims()
	if n != d.FullDimension() {
		return fmt.Errorf("device: measurement operator is %dx%d, full space is %d: %w",
			n, n, d.FullDimension(), operator.ErrDimensionMismatch)
	}
	d.measurement = m
	return nil
}

// Measurement returns the measurement operator, or nil when unset.
func (d *Device) Measurement() *mat.CDense {
	return d.measurement
}

// passive returns all subsystem indices except the given acting ones.
func (d *Device) passive(acting ...int) []int {
	out := make([]int, 0, len(d.subsystems))
	for i := range d.subsystems {
		skip := false
		for _, a := range acting {
			if i == a {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, i)
		}
	}
	return out
}
