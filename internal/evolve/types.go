package evolve

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qsim/internal/linalg"
)

// State is a column-stacked density matrix.
type State []complex128

// Clone returns an independent copy.
func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether the state is free of NaN and Inf components.
func (s State) IsValid() bool {
	for _, v := range s {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// Trace returns the trace of the density matrix for an n-dimensional
// system.
func (s State) Trace(n int) complex128 {
	var tr complex128
	for k := 0; k < n; k++ {
		tr += s[k*n+k]
	}
	return tr
}

// Population returns the real occupation of full-space basis state k.
func (s State) Population(n, k int) float64 {
	return real(s[k*n+k])
}

// Matrix reshapes the state back into an n×n density matrix.
func (s State) Matrix(n int) *mat.CDense {
	return linalg.Unvec(s, n)
}

// BasisDensity returns the density matrix |k><k| in an n-dimensional
// space, column-stacked.
func BasisDensity(n, k int) State {
	s := make(State, n*n)
	s[k*n+k] = 1
	return s
}

// DensityState column-stacks a density matrix.
func DensityState(rho *mat.CDense) State {
	return State(linalg.Vec(rho))
}

// Metric accumulates a scalar over an evolution.
type Metric interface {
	Name() string
	Observe(s State, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every accepted step.
type Observer interface {
	OnStep(s State, t float64)
}

// Config holds fixed-step evolution parameters.
type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

// DefaultConfig returns step settings suitable for MHz-scale dynamics.
func DefaultConfig() Config {
	return Config{
		Dt:            1e-9,
		Duration:      1e-6,
		ValidateState: true,
	}
}

// Result collects an evolution run.
type Result struct {
	Times       []float64
	Populations [][]float64
	Metrics     map[string]float64
	TraceDrift  float64
	StepsTaken  int
}

// PopulationSeries extracts the time series of one basis state's
// occupation.
func (r *Result) PopulationSeries(k int) []float64 {
	out := make([]float64, len(r.Populations))
	for i, pops := range r.Populations {
		out[i] = pops[k]
	}
	return out
}
