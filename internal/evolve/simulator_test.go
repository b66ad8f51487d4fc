package evolve

import (
	"context"
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/rs/zerolog"

	"github.com/san-kum/qsim/internal/linalg"
	"github.com/san-kum/qsim/internal/operator"
	"github.com/san-kum/qsim/internal/quantum"
)

func hamiltonianFromDiag(levels ...float64) *operator.Hamiltonian {
	n := len(levels)
	m := linalg.Zeros(n)
	for i, e := range levels {
		m.Set(i, i, complex(e, 0))
	}
	return operator.NewHamiltonian(m)
}

func TestRunT1Decay(t *testing.T) {
	const t1 = 1e-6

	q, err := quantum.NewQubit("q0", 2, 0, 0, t1, 0)
	if err != nil {
		t.Fatalf("NewQubit: %v", err)
	}

	h := hamiltonianFromDiag(0, 0)
	diss := []*operator.Dissipator{operator.NewDissipator(q.T1Dissipator())}

	gen, err := NewGenerator(h, diss, DefaultGeneratorConfig())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	sim := New(gen, NewRK4(), zerolog.Nop())
	res, err := sim.Run(context.Background(), BasisDensity(2, 1), Config{
		Dt:            1e-9,
		Duration:      t1,
		ValidateState: true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	tEnd := res.Times[len(res.Times)-1]
	want := math.Exp(-tEnd / t1)
	got := res.Populations[len(res.Populations)-1][1]
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("excited population after t=%g: got %v, want %v", tEnd, got, want)
	}

	ground := res.Populations[len(res.Populations)-1][0]
	if math.Abs(ground-(1-want)) > 1e-6 {
		t.Errorf("ground population: got %v, want %v", ground, 1-want)
	}

	if res.TraceDrift > 1e-9 {
		t.Errorf("trace drift %v exceeds tolerance", res.TraceDrift)
	}
}

func TestRunCoherencePhase(t *testing.T) {
	// A detuned qubit, H = diag(0, f) in Hz, rotates the coherence as
	// ρ01(t) = ρ01(0)·e^{i·2π·f·t}. With f = 250 Hz and t = 1 ms the
	// accumulated phase is π/2.
	const f = 250.0

	h := hamiltonianFromDiag(0, f)
	gen, err := NewGenerator(h, nil, DefaultGeneratorConfig())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	plus := linalg.Zeros(2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			plus.Set(i, j, 0.5)
		}
	}

	sim := New(gen, NewRK4(), zerolog.Nop())
	res, err := sim.Run(context.Background(), DensityState(plus), Config{
		Dt:            1e-6,
		Duration:      1e-3,
		ValidateState: true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	tEnd := res.Times[len(res.Times)-1]
	want := 0.5 * cmplx.Exp(complex(0, 2*math.Pi*f*tEnd))

	// Rerun manually to inspect the final off-diagonal element.
	state := DensityState(plus)
	stepper := NewRK4()
	for i := 0; i < res.StepsTaken; i++ {
		state = stepper.Step(gen, state, float64(i)*1e-6, 1e-6)
	}
	got := state[1*2+0] // ρ[0,1], column-stacked
	if cmplx.Abs(got-want) > 1e-8 {
		t.Errorf("coherence after t=%g: got %v, want %v", tEnd, got, want)
	}

	if res.Populations[len(res.Populations)-1][0] < 0.499 {
		t.Errorf("diagonal should be untouched by a diagonal Hamiltonian")
	}
}

func TestRunMetrics(t *testing.T) {
	const t1 = 1e-6

	q, err := quantum.NewQubit("q0", 2, 0, 0, t1, 0)
	if err != nil {
		t.Fatalf("NewQubit: %v", err)
	}
	gen, err := NewGenerator(hamiltonianFromDiag(0, 0),
		[]*operator.Dissipator{operator.NewDissipator(q.T1Dissipator())},
		DefaultGeneratorConfig())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	sim := New(gen, NewRK4(), zerolog.Nop())
	sim.AddMetric(NewTraceDrift(2))
	sim.AddMetric(NewPurity(2))
	sim.AddMetric(NewPopulation(2, 1))

	res, err := sim.Run(context.Background(), BasisDensity(2, 1), Config{
		Dt:            2e-9,
		Duration:      5e-7,
		ValidateState: true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if drift, ok := res.Metrics["trace_drift"]; !ok || drift > 1e-9 {
		t.Errorf("trace_drift metric: got %v (present=%v)", drift, ok)
	}

	// Decay from |1><1| passes through a mixed state; purity must have
	// dropped below one but stay above the 2-level floor of 1/2.
	purity := res.Metrics["purity"]
	if purity >= 1 || purity < 0.5 {
		t.Errorf("purity after partial decay: got %v", purity)
	}

	tEnd := res.Times[len(res.Times)-1]
	want := math.Exp(-tEnd / t1)
	if got := res.Metrics["population_1"]; math.Abs(got-want) > 1e-6 {
		t.Errorf("population_1 metric: got %v, want %v", got, want)
	}
}

func TestRunCancellation(t *testing.T) {
	gen, err := NewGenerator(hamiltonianFromDiag(0, 1), nil, DefaultGeneratorConfig())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(gen, NewEuler(), zerolog.Nop())
	_, err = sim.Run(ctx, BasisDensity(2, 0), Config{Dt: 1e-9, Duration: 1e-6})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunValidation(t *testing.T) {
	gen, err := NewGenerator(hamiltonianFromDiag(0, 1), nil, DefaultGeneratorConfig())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	sim := New(gen, NewRK4(), zerolog.Nop())

	if _, err := sim.Run(context.Background(), BasisDensity(2, 0), Config{Dt: 0, Duration: 1}); err == nil {
		t.Error("expected error for zero dt")
	}
	if _, err := sim.Run(context.Background(), BasisDensity(2, 0), Config{Dt: 1e-9, Duration: 0}); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := sim.Run(context.Background(), BasisDensity(3, 0), Config{Dt: 1e-9, Duration: 1e-6}); err == nil {
		t.Error("expected error for mismatched state size")
	}
}

func TestEulerMatchesRK4Slowly(t *testing.T) {
	const t1 = 1e-6
	q, err := quantum.NewQubit("q0", 2, 0, 0, t1, 0)
	if err != nil {
		t.Fatalf("NewQubit: %v", err)
	}
	gen, err := NewGenerator(hamiltonianFromDiag(0, 0),
		[]*operator.Dissipator{operator.NewDissipator(q.T1Dissipator())},
		DefaultGeneratorConfig())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	cfg := Config{Dt: 1e-10, Duration: 1e-7, ValidateState: true}

	rkRes, err := New(gen, NewRK4(), zerolog.Nop()).Run(context.Background(), BasisDensity(2, 1), cfg)
	if err != nil {
		t.Fatalf("RK4 run: %v", err)
	}
	euRes, err := New(gen, NewEuler(), zerolog.Nop()).Run(context.Background(), BasisDensity(2, 1), cfg)
	if err != nil {
		t.Fatalf("Euler run: %v", err)
	}

	rk := rkRes.Populations[len(rkRes.Populations)-1][1]
	eu := euRes.Populations[len(euRes.Populations)-1][1]
	if math.Abs(rk-eu) > 1e-4 {
		t.Errorf("steppers diverge: RK4 %v vs Euler %v", rk, eu)
	}
}

func TestStateHelpers(t *testing.T) {
	s := BasisDensity(3, 2)
	if got := s.Trace(3); cmplx.Abs(got-1) > 0 {
		t.Errorf("trace of basis density: got %v", got)
	}
	if got := s.Population(3, 2); got != 1 {
		t.Errorf("population of occupied level: got %v", got)
	}
	if got := s.Population(3, 0); got != 0 {
		t.Errorf("population of empty level: got %v", got)
	}

	m := s.Matrix(3)
	if m.At(2, 2) != 1 {
		t.Errorf("Matrix round trip lost the occupied element")
	}
	if !DensityState(m).IsValid() {
		t.Error("round-tripped state should be valid")
	}

	bad := State{complex(math.NaN(), 0)}
	if bad.IsValid() {
		t.Error("NaN state reported valid")
	}
}
