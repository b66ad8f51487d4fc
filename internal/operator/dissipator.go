package operator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qsim/internal/linalg"
)

// Dissipator wraps a Lindblad collapse operator, e.g. an expanded
// lowering operator scaled by 1/sqrt(T1).
type Dissipator struct {
	matrix *mat.CDense
}

// NewDissipator wraps an independent copy of the collapse operator.
func NewDissipator(l *mat.CDense) *Dissipator {
	return &Dissipator{matrix: linalg.Clone(l)}
}

// Dim returns the matrix dimension.
func (d *Dissipator) Dim() int {
	n, _ := d.matrix.Dims()
	return n
}

// Matrix returns the collapse operator. Owned by the Dissipator; callers
// must not mutate it.
func (d *Dissipator) Matrix() *mat.CDense {
	return d.matrix
}

// Superoperator returns the column-stacked Lindblad dissipator term
//
//	conj(L)⊗L − ½·I⊗(L†L) − ½·(Lᵀ·conj(L))⊗I
//
// which preserves the trace of the evolved density matrix.
func (d *Dissipator) Superoperator() *mat.CDense {
	l := d.matrix
	n, _ := l.Dims()
	eye := linalg.Eye(n)

	lDag := linalg.Dagger(l)
	jump := linalg.Kron(linalg.Conj(l), l)
	anticommL := linalg.Kron(eye, linalg.Mul(lDag, l))
	anticommR := linalg.Kron(linalg.Mul(linalg.Transpose(l), linalg.Conj(l)), eye)

	out := linalg.Sub(jump, linalg.Scale(0.5, anticommL))
	return linalg.Sub(out, linalg.Scale(0.5, anticommR))
}
