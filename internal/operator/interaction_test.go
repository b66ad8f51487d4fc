package operator

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/qsim/internal/linalg"
	"github.com/san-kum/qsim/internal/quantum"
)

func makePair(t *testing.T, dim int) (*quantum.Subsystem, *quantum.Subsystem) {
	t.Helper()
	a, err := quantum.NewQubit("q1", dim, 4.863e9, -300e6, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := quantum.NewQubit("q2", dim, 5.193e9, -313.656e6, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return a, b
}

func TestZZInteraction(t *testing.T) {
	a, b := makePair(t, 2)

	inter, err := NewInteraction(a, b, ZZ, 2e6)
	if err != nil {
		t.Fatal(err)
	}

	m := inter.Matrix()
	// 0.25*J*(Z⊗Z) is diagonal with signs +,-,-,+.
	want := 0.25 * 2e6
	signs := []float64{1, -1, -1, 1}
	for k, sgn := range signs {
		if got := real(m.At(k, k)); math.Abs(got-sgn*want) > 1 {
			t.Errorf("diagonal %d: got %g, want %g", k, got, sgn*want)
		}
	}
}

func TestFlipFlopInteraction(t *testing.T) {
	a, b := makePair(t, 2)

	j := -4.25e6
	inter, err := NewInteraction(a, b, FlipFlop, j)
	if err != nil {
		t.Fatal(err)
	}

	m := inter.Matrix()
	// Exchange coupling connects |01> and |10> only.
	if got := real(m.At(1, 2)); math.Abs(got-j) > math.Abs(j)*1e-12 {
		t.Errorf("(01|H|10): got %g, want %g", got, j)
	}
	if got := real(m.At(2, 1)); math.Abs(got-j) > math.Abs(j)*1e-12 {
		t.Errorf("(10|H|01): got %g, want %g", got, j)
	}
	for _, k := range []int{0, 3} {
		if m.At(k, k) != 0 {
			t.Errorf("diagonal %d should be zero, got %v", k, m.At(k, k))
		}
	}

	if !linalg.IsHermitian(m, 0) {
		t.Errorf("flip-flop matrix not Hermitian")
	}
}

func TestFlipFlopThreeLevel(t *testing.T) {
	a, b := makePair(t, 3)

	j := -4.25e6
	inter, err := NewInteraction(a, b, FlipFlop, j)
	if err != nil {
		t.Fatal(err)
	}

	m := inter.Matrix()
	// |11> couples to |02> and |20> with sqrt(2) ladder elements.
	want := j * math.Sqrt(2)
	if got := real(m.At(4, 2)); math.Abs(got-want) > math.Abs(j)*1e-12 {
		t.Errorf("(11|H|02): got %g, want %g", got, want)
	}
	if got := real(m.At(4, 6)); math.Abs(got-want) > math.Abs(j)*1e-12 {
		t.Errorf("(11|H|20): got %g, want %g", got, want)
	}
}

func TestUnknownInteractionKind(t *testing.T) {
	a, b := makePair(t, 2)

	if _, err := NewInteraction(a, b, InteractionKind("XX"), 1e6); !errors.Is(err, ErrUnknownInteraction) {
		t.Errorf("expected ErrUnknownInteraction, got %v", err)
	}
}

func TestRecomputeAfterStrengthChange(t *testing.T) {
	a, b := makePair(t, 2)

	inter, err := NewInteraction(a, b, FlipFlop, 1e6)
	if err != nil {
		t.Fatal(err)
	}

	inter.Strength = 3e6
	// Matrix is not auto-synced with strength.
	if got := real(inter.Matrix().At(1, 2)); got != 1e6 {
		t.Errorf("matrix changed without Recompute: %g", got)
	}

	if err := inter.Recompute(); err != nil {
		t.Fatal(err)
	}
	if got := real(inter.Matrix().At(1, 2)); got != 3e6 {
		t.Errorf("after Recompute: got %g, want 3e6", got)
	}
}
