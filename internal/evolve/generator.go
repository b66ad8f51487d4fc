package evolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qsim/internal/linalg"
	"github.com/san-kum/qsim/internal/operator"
)

// GeneratorConfig controls Lindbladian assembly.
type GeneratorConfig struct {
	// AngularScale multiplies the Hamiltonian superoperator; 2π converts
	// Hamiltonians specified in Hz into angular phase. The operator layer
	// deliberately leaves this factor out, so it is applied exactly once,
	// here.
	AngularScale float64

	// UseFrame selects the interaction-frame Hamiltonian representation.
	UseFrame bool
}

// DefaultGeneratorConfig returns the Hz convention.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{AngularScale: 2 * math.Pi}
}

// Generator is the assembled Lindbladian superoperator acting on
// column-stacked density matrices.
type Generator struct {
	matrix *mat.CDense
	n      int
}

// NewGenerator builds i·scale·S_H + Σ D_k from a Hamiltonian and its
// dissipators.
func NewGenerator(h *operator.Hamiltonian, diss []*operator.Dissipator, cfg GeneratorConfig) (*Generator, error) {
	s, err := h.Superoperator(cfg.UseFrame)
	if err != nil {
		return nil, err
	}

	total := linalg.Scale(complex(0, cfg.AngularScale), s)
	for i, d := range diss {
		if d.Dim() != h.Dim() {
			return nil, fmt.Errorf("%w: dissipator %d is %d-dimensional, Hamiltonian is %d",
				operator.ErrDimensionMismatch, i, d.Dim(), h.Dim())
		}
		linalg.AddInPlace(total, d.Superoperator())
	}

	return &Generator{matrix: total, n: h.Dim()}, nil
}

// Dim returns the density-matrix dimension n; states have length n².
func (g *Generator) Dim() int {
	return g.n
}

// Matrix returns the n²×n² superoperator matrix.
func (g *Generator) Matrix() *mat.CDense {
	return g.matrix
}

// Derive computes d vec(ρ)/dt = L·vec(ρ) into dst. dst and s must both
// have length n².
func (g *Generator) Derive(dst, s State) {
	size := g.n * g.n
	for i := 0; i < size; i++ {
		var acc complex128
		for j := 0; j < size; j++ {
			acc += g.matrix.At(i, j) * s[j]
		}
		dst[i] = acc
	}
}
