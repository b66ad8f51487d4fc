// Package operator provides the Hamiltonian, dissipator, and interaction
// algebra for composite quantum systems.
//
// A [Hamiltonian] wraps a dense Hermitian matrix and supports additive
// composition, transformation into an interaction (rotating) frame, and
// conversion to column-stacked Lindbladian superoperator form. A
// [Dissipator] wraps a Lindblad collapse operator. An [Interaction]
// builds pairwise coupling matrices between two subsystems.
//
// Superoperators here carry no -i·2π prefactor; the propagation layer
// applies the angular factor explicitly (see evolve.Generator).
package operator
