package operator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qsim/internal/linalg"
)

// unitarityTol bounds ‖U·U† − I‖_max for an acceptable frame transform.
const unitarityTol = 1e-9

// Hamiltonian wraps a dense complex matrix with utilities for changing
// representations. The zero-valued interaction frame is absent until
// IntoInteractionFrame populates it.
type Hamiltonian struct {
	matrix *mat.CDense
	frame  *mat.CDense
}

// NewHamiltonian wraps an independent copy of m.
func NewHamiltonian(m *mat.CDense) *Hamiltonian {
	return &Hamiltonian{matrix: linalg.Clone(m)}
}

// Dim returns the matrix dimension.
func (h *Hamiltonian) Dim() int {
	n, _ := h.matrix.Dims()
	return n
}

// Matrix returns the lab-frame matrix. The matrix is owned by the
// Hamiltonian; callers must not mutate it.
func (h *Hamiltonian) Matrix() *mat.CDense {
	return h.matrix
}

// InteractionFrame returns the interaction-frame matrix, or an error when
// no frame transform has been performed.
func (h *Hamiltonian) InteractionFrame() (*mat.CDense, error) {
	if h.frame == nil {
		return nil, ErrFrameNotComputed
	}
	return h.frame, nil
}

// Add returns a new Hamiltonian holding the sum of the two matrices.
func (h *Hamiltonian) Add(other *Hamiltonian) (*Hamiltonian, error) {
	return h.AddMatrix(other.matrix)
}

// AddMatrix returns a new Hamiltonian holding h + m.
func (h *Hamiltonian) AddMatrix(m *mat.CDense) (*Hamiltonian, error) {
	if err := h.checkDim(m); err != nil {
		return nil, err
	}
	return &Hamiltonian{matrix: linalg.Add(h.matrix, m)}, nil
}

// AccumulateInPlace adds another Hamiltonian into this one.
func (h *Hamiltonian) AccumulateInPlace(other *Hamiltonian) error {
	return h.AccumulateMatrix(other.matrix)
}

// AccumulateMatrix adds m into the owned matrix.
func (h *Hamiltonian) AccumulateMatrix(m *mat.CDense) error {
	if err := h.checkDim(m); err != nil {
		return err
	}
	linalg.AddInPlace(h.matrix, m)
	return nil
}

// IntoInteractionFrame moves the Hamiltonian into the rotating frame of
// hInt at the given elapsed time: with U = exp(i·2π·t·H_int), the frame
// matrix becomes U·H·U† − H_int. The transform fails with ErrNotUnitary
// when the computed U drifts from unitarity beyond tolerance.
func (h *Hamiltonian) IntoInteractionFrame(hInt *Hamiltonian, time float64) error {
	if err := h.checkDim(hInt.matrix); err != nil {
		return err
	}

	gen := linalg.Scale(complex(0, 2*math.Pi*time), hInt.matrix)
	u, err := linalg.Expm(gen)
	if err != nil {
		return fmt.Errorf("operator: interaction frame exponential: %w", err)
	}
	if drift := linalg.UnitarityError(u); drift > unitarityTol {
		return fmt.Errorf("%w: ‖U·U†−I‖ = %.3g at t=%g", ErrNotUnitary, drift, time)
	}

	rotated := linalg.Mul(linalg.Mul(u, h.matrix), linalg.Dagger(u))
	h.frame = linalg.Sub(rotated, hInt.matrix)
	return nil
}

// Superoperator returns the column-stacked Lindbladian superoperator for
// the unitary part, conj(M)⊗I − I⊗M, over the lab-frame matrix or the
// interaction-frame matrix per the selector. The -i·2π generator
// prefactor is deliberately left to the propagation layer.
func (h *Hamiltonian) Superoperator(useFrame bool) (*mat.CDense, error) {
	m := h.matrix
	if useFrame {
		var err error
		if m, err = h.InteractionFrame(); err != nil {
			return nil, err
		}
	}
	n, _ := m.Dims()
	eye := linalg.Eye(n)
	return linalg.Sub(linalg.Kron(linalg.Conj(m), eye), linalg.Kron(eye, m)), nil
}

func (h *Hamiltonian) checkDim(m *mat.CDense) error {
	hr, _ := h.matrix.Dims()
	mr, _ := m.Dims()
	if hr != mr {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, hr, mr)
	}
	return nil
}
