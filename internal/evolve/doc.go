// Package evolve propagates density matrices under Lindblad dynamics.
//
// The density matrix is column-stacked into a [State] vector and driven
// by a [Generator], the full Lindbladian superoperator
//
//	L = i·scale·(conj(H)⊗I − I⊗H) + Σ D_k
//
// where scale is the explicit angular prefactor (2π for Hamiltonians in
// Hz) and D_k are dissipator superoperators. [Simulator] runs fixed-step
// time evolution with [RK4] or [Euler] steppers and reports trace drift
// alongside any registered metrics.
//
// Simulator instances are not safe for concurrent use; run independent
// evolutions on independent instances.
package evolve
