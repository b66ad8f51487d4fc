package evolve

import (
	"context"
	"fmt"
	"math/cmplx"

	"github.com/rs/zerolog"
)

// Simulator runs fixed-step Lindblad evolution.
type Simulator struct {
	gen       *Generator
	stepper   Stepper
	metrics   []Metric
	observers []Observer
	log       zerolog.Logger
}

// New returns a simulator for the given generator and stepper.
func New(gen *Generator, stepper Stepper, log zerolog.Logger) *Simulator {
	return &Simulator{
		gen:     gen,
		stepper: stepper,
		log:     log,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run evolves the initial density state over cfg.Duration and records the
// per-step basis populations. The trace drift of the whole run is
// reported in the result.
func (s *Simulator) Run(ctx context.Context, rho0 State, cfg Config) (*Result, error) {
	if err := s.validate(rho0, cfg); err != nil {
		return nil, err
	}

	n := s.gen.Dim()
	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:       make([]float64, 0, steps+1),
		Populations: make([][]float64, 0, steps+1),
		Metrics:     make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	state := rho0.Clone()
	t := 0.0
	record := func() {
		pops := make([]float64, n)
		for k := 0; k < n; k++ {
			pops[k] = state.Population(n, k)
		}
		result.Times = append(result.Times, t)
		result.Populations = append(result.Populations, pops)

		if d := cmplx.Abs(state.Trace(n) - 1); d > result.TraceDrift {
			result.TraceDrift = d
		}
	}
	record()

	logEvery := steps / 10
	if logEvery == 0 {
		logEvery = 1
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(state, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(state, t)
		}

		state = s.stepper.Step(s.gen, state, t, cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		if cfg.ValidateState && !state.IsValid() {
			return result, fmt.Errorf("evolve: invalid state (NaN/Inf) at step %d, t=%g", i, t)
		}

		record()

		if (i+1)%logEvery == 0 {
			s.log.Debug().
				Int("step", i+1).
				Float64("t", t).
				Float64("trace_drift", result.TraceDrift).
				Msg("evolution progress")
		}
	}

	for _, m := range s.metrics {
		m.Observe(state, t)
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validate(rho0 State, cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("evolve: dt must be positive, got %g", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("evolve: duration must be positive, got %g", cfg.Duration)
	}
	n := s.gen.Dim()
	if len(rho0) != n*n {
		return fmt.Errorf("evolve: initial state has %d components, generator needs %d", len(rho0), n*n)
	}
	return nil
}
