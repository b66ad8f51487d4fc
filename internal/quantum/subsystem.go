package quantum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qsim/internal/linalg"
)

// Kind selects the subsystem variant.
type Kind int

const (
	// Oscillator is a standard non-linear oscillator.
	Oscillator Kind = iota
	// Qubit is a superconducting qubit: an oscillator with decay times.
	Qubit
)

func (k Kind) String() string {
	switch k {
	case Oscillator:
		return "oscillator"
	case Qubit:
		return "qubit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Subsystem is an immutable descriptor of a single finite-level system.
// Omega is the 0->1 level splitting in Hz, Delta the anharmonicity. T1 and
// T2 are decay/dephasing times in seconds; +Inf means no decay channel.
type Subsystem struct {
	Name  string
	Dim   int
	Kind  Kind
	Omega float64
	Delta float64
	T1    float64
	T2    float64
}

// NewOscillator returns an anharmonic oscillator subsystem with no decay.
func NewOscillator(name string, dim int, omega, delta float64) (*Subsystem, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}
	return &Subsystem{
		Name:  name,
		Dim:   dim,
		Kind:  Oscillator,
		Omega: omega,
		Delta: delta,
		T1:    math.Inf(1),
		T2:    math.Inf(1),
	}, nil
}

// NewQubit returns a superconducting qubit subsystem. Non-positive t1/t2
// mean "no decay" and are stored as +Inf.
func NewQubit(name string, dim int, omega, delta, t1, t2 float64) (*Subsystem, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}
	if t1 <= 0 {
		t1 = math.Inf(1)
	}
	if t2 <= 0 {
		t2 = math.Inf(1)
	}
	return &Subsystem{
		Name:  name,
		Dim:   dim,
		Kind:  Qubit,
		Omega: omega,
		Delta: delta,
		T1:    t1,
		T2:    t2,
	}, nil
}

// Natural returns the diagonal natural Hamiltonian built from the level
// splitting and anharmonicity: entry k is k*Omega + Delta*(k-1)*k/2.
func (s *Subsystem) Natural() *mat.CDense {
	h := linalg.Zeros(s.Dim)
	for k := 1; k < s.Dim; k++ {
		v := float64(k)*s.Omega + s.Delta*float64((k-1)*k)/2
		h.Set(k, k, complex(v, 0))
	}
	return h
}

// Raising returns the harmonic-oscillator raising operator: sqrt(k) at
// (k, k-1).
func (s *Subsystem) Raising() *mat.CDense {
	m := linalg.Zeros(s.Dim)
	for k := 1; k < s.Dim; k++ {
		m.Set(k, k-1, complex(math.Sqrt(float64(k)), 0))
	}
	return m
}

// Lowering returns the harmonic-oscillator lowering operator: sqrt(k) at
// (k-1, k).
func (s *Subsystem) Lowering() *mat.CDense {
	m := linalg.Zeros(s.Dim)
	for k := 1; k < s.Dim; k++ {
		m.Set(k-1, k, complex(math.Sqrt(float64(k)), 0))
	}
	return m
}

// Number returns the number operator diag(0, 1, ..., Dim-1).
func (s *Subsystem) Number() *mat.CDense {
	m := linalg.Zeros(s.Dim)
	for k := 0; k < s.Dim; k++ {
		m.Set(k, k, complex(float64(k), 0))
	}
	return m
}

// LevelProjector returns the rank-1 projector onto an energy eigenstate.
func (s *Subsystem) LevelProjector(level int) (*mat.CDense, error) {
	if level < 0 || level >= s.Dim {
		return nil, fmt.Errorf("%w: level %d, dimension %d", ErrLevelOutOfRange, level, s.Dim)
	}
	m := linalg.Zeros(s.Dim)
	m.Set(level, level, 1)
	return m, nil
}

// PauliZ returns the effective spin-Z operator on the qubit manifold
// (the lowest two levels): diag(1, -1, 0, ...).
func (s *Subsystem) PauliZ() (*mat.CDense, error) {
	if s.Dim < 2 {
		return nil, fmt.Errorf("%w: pauli Z on %q (dim %d)", ErrInsufficientDim, s.Name, s.Dim)
	}
	m := linalg.Zeros(s.Dim)
	m.Set(0, 0, 1)
	m.Set(1, 1, -1)
	return m, nil
}

// PauliX returns the effective spin-X operator on the qubit manifold.
func (s *Subsystem) PauliX() (*mat.CDense, error) {
	if s.Dim < 2 {
		return nil, fmt.Errorf("%w: pauli X on %q (dim %d)", ErrInsufficientDim, s.Name, s.Dim)
	}
	m := linalg.Zeros(s.Dim)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)
	return m, nil
}

// PauliY returns the effective spin-Y operator on the qubit manifold.
func (s *Subsystem) PauliY() (*mat.CDense, error) {
	if s.Dim < 2 {
		return nil, fmt.Errorf("%w: pauli Y on %q (dim %d)", ErrInsufficientDim, s.Name, s.Dim)
	}
	m := linalg.Zeros(s.Dim)
	m.Set(0, 1, -1i)
	m.Set(1, 0, 1i)
	return m, nil
}

// T1Dissipator returns the Lindblad operator for amplitude damping,
// lowering/sqrt(T1). With T1 = +Inf the prefactor is exactly zero and the
// channel vanishes.
func (s *Subsystem) T1Dissipator() *mat.CDense {
	rate := complex(1/math.Sqrt(s.T1), 0)
	return linalg.Scale(rate, s.Lowering())
}
