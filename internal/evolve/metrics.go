package evolve

import (
	"fmt"
	"math"
	"math/cmplx"
)

// TraceDrift tracks the worst deviation of Tr(ρ) from one.
type TraceDrift struct {
	n     int
	worst float64
}

// NewTraceDrift returns a trace-drift metric for an n-dimensional system.
func NewTraceDrift(n int) *TraceDrift {
	return &TraceDrift{n: n}
}

func (m *TraceDrift) Name() string {
	return "trace_drift"
}

func (m *TraceDrift) Observe(s State, t float64) {
	if d := cmplx.Abs(s.Trace(m.n) - 1); d > m.worst {
		m.worst = d
	}
}

func (m *TraceDrift) Value() float64 {
	return m.worst
}

func (m *TraceDrift) Reset() {
	m.worst = 0
}

// Purity tracks Tr(ρ²), one for pure states and 1/n for the maximally
// mixed state. The value reported is the last observation.
type Purity struct {
	n    int
	last float64
}

// NewPurity returns a purity metric for an n-dimensional system.
func NewPurity(n int) *Purity {
	return &Purity{n: n}
}

func (m *Purity) Name() string {
	return "purity"
}

func (m *Purity) Observe(s State, t float64) {
	// Tr(ρ²) = Σ_{ij} ρ_ij ρ_ji.
	p := 0.0
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			p += real(s[j*m.n+i] * s[i*m.n+j])
		}
	}
	m.last = p
}

func (m *Purity) Value() float64 {
	return m.last
}

func (m *Purity) Reset() {
	m.last = math.NaN()
}

// Population tracks the final occupation of one full-space basis state.
type Population struct {
	n, k int
	last float64
}

// NewPopulation returns a population metric for basis state k of an
// n-dimensional system.
func NewPopulation(n, k int) *Population {
	return &Population{n: n, k: k}
}

func (m *Population) Name() string {
	return fmt.Sprintf("population_%d", m.k)
}

func (m *Population) Observe(s State, t float64) {
	m.last = s.Population(m.n, m.k)
}

func (m *Population) Value() float64 {
	return m.last
}

func (m *Population) Reset() {
	m.last = 0
}
