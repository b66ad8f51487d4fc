package evolve

import "gonum.org/v1/gonum/cmplxs"

// Stepper advances a vectorized density matrix by one timestep.
type Stepper interface {
	Step(g *Generator, s State, t, dt float64) State
}

// Euler is the first-order explicit stepper. Useful for sanity checks;
// RK4 is the default.
type Euler struct {
	deriv State
}

// NewEuler returns an explicit Euler stepper.
func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(g *Generator, s State, t, dt float64) State {
	if len(e.deriv) != len(s) {
		e.deriv = make(State, len(s))
	}
	g.Derive(e.deriv, s)

	out := s.Clone()
	cmplxs.AddScaled(out, complex(dt, 0), e.deriv)
	return out
}

// RK4 is the classic fourth-order Runge-Kutta stepper with reusable
// scratch buffers.
type RK4 struct {
	k1, k2, k3, k4 State
	scratch        State
}

// NewRK4 returns a fourth-order Runge-Kutta stepper.
func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(State, n)
		r.k2 = make(State, n)
		r.k3 = make(State, n)
		r.k4 = make(State, n)
		r.scratch = make(State, n)
	}
}

func (r *RK4) Step(g *Generator, s State, t, dt float64) State {
	n := len(s)
	r.ensureScratch(n)

	g.Derive(r.k1, s)

	copy(r.scratch, s)
	cmplxs.AddScaled(r.scratch, complex(dt*0.5, 0), r.k1)
	g.Derive(r.k2, r.scratch)

	copy(r.scratch, s)
	cmplxs.AddScaled(r.scratch, complex(dt*0.5, 0), r.k2)
	g.Derive(r.k3, r.scratch)

	copy(r.scratch, s)
	cmplxs.AddScaled(r.scratch, complex(dt, 0), r.k3)
	g.Derive(r.k4, r.scratch)

	out := s.Clone()
	dt6 := complex(dt/6.0, 0)
	cmplxs.AddScaled(out, dt6, r.k1)
	cmplxs.AddScaled(out, 2*dt6, r.k2)
	cmplxs.AddScaled(out, 2*dt6, r.k3)
	cmplxs.AddScaled(out, dt6, r.k4)
	return out
}
