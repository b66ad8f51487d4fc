package hilbert

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qsim/internal/linalg"
)

// Domain errors for Hilbert-space expansion.
var (
	// ErrBadPartition indicates acting and passive indices that do not
	// cover every subsystem exactly once.
	ErrBadPartition = errors.New("hilbert: acting and passive indices must partition the subsystems")

	// ErrDimensionMismatch indicates an operator whose size does not match
	// the product of its acting subsystem dimensions.
	ErrDimensionMismatch = errors.New("hilbert: operator size does not match acting dimensions")

	// ErrBadDimension indicates a non-positive subsystem dimension.
	ErrBadDimension = errors.New("hilbert: subsystem dimensions must be positive")
)

// Expand embeds an operator acting on the subsystems listed in acting into
// the full tensor-product space described by dims. The operator's own
// tensor factors must follow the order given in acting; passive lists the
// remaining subsystems, on which an identity is tensored. The result is
// expressed in the canonical ordering dims[0] ⊗ dims[1] ⊗ ... regardless
// of the order or contiguity of acting.
func Expand(op *mat.CDense, acting, passive, dims []int) (*mat.CDense, error) {
	n := len(dims)
	for _, d := range dims {
		if d < 1 {
			return nil, fmt.Errorf("%w: %v", ErrBadDimension, dims)
		}
	}

	seen := make([]bool, n)
	mark := func(indices []int) error {
		for _, idx := range indices {
			if idx < 0 || idx >= n || seen[idx] {
				return fmt.Errorf("%w: index %d in acting=%v passive=%v (n=%d)",
					ErrBadPartition, idx, acting, passive, n)
			}
			seen[idx] = true
		}
		return nil
	}
	if err := mark(acting); err != nil {
		return nil, err
	}
	if err := mark(passive); err != nil {
		return nil, err
	}
	for idx, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: subsystem %d unassigned", ErrBadPartition, idx)
		}
	}

	actDim := 1
	for _, idx := range acting {
		actDim *= dims[idx]
	}
	passDim := 1
	for _, idx := range passive {
		passDim *= dims[idx]
	}

	r, c := op.Dims()
	if r != c || r != actDim {
		return nil, fmt.Errorf("%w: operator is %dx%d, acting dimensions multiply to %d",
			ErrDimensionMismatch, r, c, actDim)
	}

	// Naive embedding: acting block first, identity block second.
	full := linalg.Kron(op, linalg.Eye(passDim))

	// Left-to-right subsystem ordering implied by the naive embedding.
	order := make([]int, 0, n)
	order = append(order, acting...)
	order = append(order, passive...)

	perm := totalPermutation(order, dims)

	tmp := linalg.Mul(perm, full)
	return linalg.Mul(tmp, linalg.Transpose(perm)), nil
}

// totalPermutation accumulates the adjacent-swap permutations that take
// the given subsystem ordering to canonical order. order is rearranged in
// place as swaps are applied.
func totalPermutation(order, dims []int) *mat.CDense {
	fullDim := 1
	for _, idx := range order {
		fullDim *= dims[idx]
	}
	total := linalg.Eye(fullDim)

	for target := 0; target < len(order); target++ {
		// Bubble subsystem `target` left until it sits at its canonical
		// position. Each step depends on the ordering left by the last.
		pos := indexOf(order, target)
		for ; pos > target; pos-- {
			left := dims[order[pos-1]]
			right := dims[order[pos]]

			pre := 1
			for k := 0; k < pos-1; k++ {
				pre *= dims[order[k]]
			}
			post := 1
			for k := pos + 1; k < len(order); k++ {
				post *= dims[order[k]]
			}

			step := linalg.Kron(linalg.Kron(linalg.Eye(pre), swapMatrix(left, right)), linalg.Eye(post))
			total = linalg.Mul(step, total)

			order[pos-1], order[pos] = order[pos], order[pos-1]
		}
	}
	return total
}

// swapMatrix returns the permutation exchanging two adjacent tensor
// factors of the given dimensions: basis state a*dimRight+b of
// (left ⊗ right) maps to b*dimLeft+a of (right ⊗ left).
func swapMatrix(dimLeft, dimRight int) *mat.CDense {
	p := linalg.Zeros(dimLeft * dimRight)
	for a := 0; a < dimLeft; a++ {
		for b := 0; b < dimRight; b++ {
			p.Set(b*dimLeft+a, a*dimRight+b, 1)
		}
	}
	return p
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
