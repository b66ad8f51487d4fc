// Package quantum models single finite-level quantum subsystems and their
// operators.
//
// A [Subsystem] describes one anharmonic oscillator or superconducting
// qubit: its dimension, level splitting and anharmonicity, and (for
// qubits) T1/T2 decay times. Operator accessors are pure functions of the
// descriptor and recompute on every call; callers that are hot may cache:
//
//	q, err := quantum.NewQubit("q0", 3, 4.863e9, -300e6, 5.2e-6, 0)
//	h := q.Natural()
//	sz, err := q.PauliZ()
//
// Pauli accessors are defined on the lowest two levels only and fail with
// [ErrInsufficientDim] when the subsystem has fewer than two levels.
package quantum
