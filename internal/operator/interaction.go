package operator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qsim/internal/linalg"
	"github.com/san-kum/qsim/internal/quantum"
)

// InteractionKind enumerates the supported pairwise couplings.
type InteractionKind string

const (
	// ZZ is an Ising-type coupling 0.25·J·(Z⊗Z).
	ZZ InteractionKind = "ZZ"
	// FlipFlop is an exchange coupling J·(σ⁻⊗σ⁺ + σ⁺⊗σ⁻).
	FlipFlop InteractionKind = "FlipFlop"
)

// Interaction couples two subsystems. The matrix lives in the local
// product space A⊗B and must still be expanded into the full Hilbert
// space before being summed into a Hamiltonian.
//
// Mutating Strength does not update the matrix; call Recompute afterward.
// The recomputation is explicit to keep the cost visible to the caller.
type Interaction struct {
	A, B     *quantum.Subsystem
	Kind     InteractionKind
	Strength float64

	matrix *mat.CDense
}

// NewInteraction builds the coupling between two subsystems. An
// unrecognized kind fails up front; no partial matrix is produced.
func NewInteraction(a, b *quantum.Subsystem, kind InteractionKind, strength float64) (*Interaction, error) {
	i := &Interaction{A: a, B: b, Kind: kind, Strength: strength}
	if err := i.Recompute(); err != nil {
		return nil, err
	}
	return i, nil
}

// Matrix returns the local-space coupling matrix as of the last
// Recompute.
func (i *Interaction) Matrix() *mat.CDense {
	return i.matrix
}

// Recompute rebuilds the coupling matrix from the current strength.
func (i *Interaction) Recompute() error {
	switch i.Kind {
	case ZZ:
		za, err := i.A.PauliZ()
		if err != nil {
			return fmt.Errorf("operator: ZZ coupling: %w", err)
		}
		zb, err := i.B.PauliZ()
		if err != nil {
			return fmt.Errorf("operator: ZZ coupling: %w", err)
		}
		i.matrix = linalg.Scale(complex(0.25*i.Strength, 0), linalg.Kron(za, zb))
		return nil

	case FlipFlop:
		lowerRaise := linalg.Kron(i.A.Lowering(), i.B.Raising())
		raiseLower := linalg.Kron(i.A.Raising(), i.B.Lowering())
		i.matrix = linalg.Scale(complex(i.Strength, 0), linalg.Add(lowerRaise, raiseLower))
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownInteraction, i.Kind)
	}
}
