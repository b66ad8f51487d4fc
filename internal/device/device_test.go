package device

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/qsim/internal/linalg"
	"github.com/san-kum/qsim/internal/operator"
	"github.com/san-kum/qsim/internal/quantum"
)

func twoTransmons(t *testing.T) *Device {
	t.Helper()

	d := New()
	q1, err := quantum.NewQubit("Q1", 3, 4.863e9, -300e6, 5.2e-6, 0)
	if err != nil {
		t.Fatal(err)
	}
	q2, err := quantum.NewQubit("Q2", 3, 5.193e9, -313.656e6, 4.4e-6, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.AddSubsystem(q1); err != nil {
		t.Fatal(err)
	}
	if err := d.AddSubsystem(q2); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestFullHamiltonianTwoTransmonFlipFlop(t *testing.T) {
	d := twoTransmons(t)
	j := -4.25e6
	if _, err := d.AddInteraction("Q1", "Q2", operator.FlipFlop, j); err != nil {
		t.Fatal(err)
	}

	h, err := d.FullHamiltonian()
	if err != nil {
		t.Fatal(err)
	}
	if h.Dim() != 9 {
		t.Fatalf("expected 9-dimensional joint space, got %d", h.Dim())
	}

	m := h.Matrix()
	if !linalg.IsHermitian(m, 1e-3) {
		t.Errorf("full Hamiltonian not Hermitian")
	}

	// Diagonal is the direct sum of the two natural spectra; the
	// interaction is purely off-diagonal in the bare basis.
	e1 := []float64{0, 4.863e9, 2*4.863e9 - 300e6}
	e2 := []float64{0, 5.193e9, 2*5.193e9 - 313.656e6}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			idx := a*3 + b
			want := e1[a] + e2[b]
			if got := real(m.At(idx, idx)); math.Abs(got-want) > 1 {
				t.Errorf("diagonal |%d%d>: got %g, want %g", a, b, got, want)
			}
		}
	}

	// Flip-flop entries appear exactly at basis pairs exchanging one
	// quantum: |a,b> <-> |a-1,b+1>.
	type pair struct{ r, c int }
	coupled := map[pair]float64{
		{1, 3}: j,
		{2, 4}: j * math.Sqrt(2),
		{4, 6}: j * math.Sqrt(2),
		{5, 7}: j * 2,
	}
	for r := 0; r < 9; r++ {
		for c := r + 1; c < 9; c++ {
			want := coupled[pair{r, c}]
			if got := real(m.At(r, c)); math.Abs(got-want) > 1e-3 {
				t.Errorf("off-diagonal (%d,%d): got %g, want %g", r, c, got, want)
			}
		}
	}
}

func TestFullHamiltonianRetunedInteraction(t *testing.T) {
	d := twoTransmons(t)
	inter, err := d.AddInteraction("Q1", "Q2", operator.FlipFlop, -1e6)
	if err != nil {
		t.Fatal(err)
	}

	inter.Strength = -3e6
	if err := inter.Recompute(); err != nil {
		t.Fatal(err)
	}

	h, err := d.FullHamiltonian()
	if err != nil {
		t.Fatal(err)
	}
	if got := real(h.Matrix().At(1, 3)); math.Abs(got+3e6) > 1 {
		t.Errorf("retuned coupling: got %g, want -3e6", got)
	}
}

func TestExpandOperatorByName(t *testing.T) {
	d := twoTransmons(t)

	q2, _ := d.Subsystem("Q2")
	num, err := d.ExpandOperator("Q2", q2.Number())
	if err != nil {
		t.Fatal(err)
	}

	// I ⊗ number: diagonal b at every |a,b>.
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			idx := a*3 + b
			if got := real(num.At(idx, idx)); got != float64(b) {
				t.Errorf("|%d%d>: got %g, want %d", a, b, got, b)
			}
		}
	}

	if _, err := d.ExpandOperator("Q9", q2.Number()); !errors.Is(err, ErrUnknownSubsystem) {
		t.Errorf("expected ErrUnknownSubsystem, got %v", err)
	}
}

func TestDuplicateSubsystem(t *testing.T) {
	d := twoTransmons(t)
	q, err := quantum.NewQubit("Q1", 2, 1e9, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.AddSubsystem(q); !errors.Is(err, ErrDuplicateSubsystem) {
		t.Errorf("expected ErrDuplicateSubsystem, got %v", err)
	}
}

func TestAddT1Dissipators(t *testing.T) {
	d := twoTransmons(t)
	if err := d.AddT1Dissipators(); err != nil {
		t.Fatal(err)
	}
	if len(d.Dissipators()) != 2 {
		t.Fatalf("expected 2 dissipators, got %d", len(d.Dissipators()))
	}

	// An oscillator without decay contributes no channel.
	d2 := New()
	osc, err := quantum.NewOscillator("cav", 3, 6e9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := d2.AddSubsystem(osc); err != nil {
		t.Fatal(err)
	}
	if err := d2.AddT1Dissipators(); err != nil {
		t.Fatal(err)
	}
	if len(d2.Dissipators()) != 0 {
		t.Errorf("expected no dissipators for infinite T1, got %d", len(d2.Dissipators()))
	}
}

func TestEmptyDevice(t *testing.T) {
	d := New()
	if _, err := d.FullHamiltonian(); !errors.Is(err, ErrEmptyDevice) {
		t.Errorf("expected ErrEmptyDevice, got %v", err)
	}
}

func TestExpandPair(t *testing.T) {
	d := twoTransmons(t)
	q1, err := d.Subsystem("Q1")
	if err != nil {
		t.Fatal(err)
	}
	q2, err := d.Subsystem("Q2")
	if err != nil {
		t.Fatal(err)
	}

	// Both subsystems act, so the pair expansion of their product
	// operator is the plain Kronecker product.
	local := linalg.Kron(q1.Number(), q2.Number())
	expanded, err := d.ExpandPair("Q1", "Q2", local)
	if err != nil {
		t.Fatal(err)
	}
	if diff := linalg.MaxAbsDiff(expanded, local); diff > 0 {
		t.Errorf("two-subsystem pair expansion should be a no-op, diff %v", diff)
	}

	if _, err := d.ExpandPair("Q1", "Q9", local); !errors.Is(err, ErrUnknownSubsystem) {
		t.Errorf("expected ErrUnknownSubsystem, got %v", err)
	}
}

func TestControlsAndMeasurement(t *testing.T) {
	d := twoTransmons(t)
	q1, err := d.Subsystem("Q1")
	if err != nil {
		t.Fatal(err)
	}

	x, err := q1.PauliX()
	if err != nil {
		t.Fatal(err)
	}
	y, err := q1.PauliY()
	if err != nil {
		t.Fatal(err)
	}
	xFull, err := d.ExpandOperator("Q1", x)
	if err != nil {
		t.Fatal(err)
	}
	yFull, err := d.ExpandOperator("Q1", y)
	if err != nil {
		t.Fatal(err)
	}

	d.AddControlHam(operator.NewHamiltonian(xFull), operator.NewHamiltonian(yFull))
	if len(d.Controls()) != 1 {
		t.Fatalf("expected 1 control pair, got %d", len(d.Controls()))
	}
	if d.Controls()[0].InPhase.Dim() != 9 {
		t.Errorf("control dim: got %d, want 9", d.Controls()[0].InPhase.Dim())
	}

	if d.Measurement() != nil {
		t.Error("measurement should be unset")
	}
	if err := d.SetMeasurement(linalg.Eye(3)); !errors.Is(err, operator.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	proj, err := q1.LevelProjector(1)
	if err != nil {
		t.Fatal(err)
	}
	projFull, err := d.ExpandOperator("Q1", proj)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetMeasurement(projFull); err != nil {
		t.Fatal(err)
	}
	if d.Measurement() == nil {
		t.Error("measurement should be set")
	}
}
