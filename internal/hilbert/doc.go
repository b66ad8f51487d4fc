// Package hilbert embeds subsystem operators into the joint tensor-product
// space of a composite quantum system.
//
// The difficulty is that an operator may act on a subset of subsystems
// that is neither contiguous nor in canonical order. [Expand] first forms
// the naive product operator ⊗ I over the passive subsystems, then sorts
// the implied subsystem ordering back to canonical order with a sequence
// of adjacent-pair swap permutations. Permutation matrices contain only
// zeros and ones, so the reordering is numerically exact.
//
// The permutation algebra costs O(D²)–O(D³) per swap in the full-space
// dimension D; this is intended for a handful of few-level subsystems,
// not for large qubit counts.
package hilbert
