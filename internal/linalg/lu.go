package linalg

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular indicates a matrix with no usable pivot during factorization.
var ErrSingular = errors.New("linalg: matrix is singular to working precision")

// luSolve solves A·X = B for square complex A via LU factorization with
// partial pivoting. A and B are left untouched.
func luSolve(a, b *mat.CDense) (*mat.CDense, error) {
	n, nc := a.Dims()
	if n != nc {
		panic(mat.ErrShape)
	}
	br, bc := b.Dims()
	if br != n {
		panic(mat.ErrShape)
	}

	lu := Clone(a)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		// Pivot on the largest remaining entry in column k.
		pivot := k
		maxAbs := cmplx.Abs(lu.At(k, k))
		for i := k + 1; i < n; i++ {
			if v := cmplx.Abs(lu.At(i, k)); v > maxAbs {
				maxAbs = v
				pivot = i
			}
		}
		if maxAbs == 0 {
			return nil, ErrSingular
		}
		if pivot != k {
			for j := 0; j < n; j++ {
				tmp := lu.At(k, j)
				lu.Set(k, j, lu.At(pivot, j))
				lu.Set(pivot, j, tmp)
			}
			perm[k], perm[pivot] = perm[pivot], perm[k]
		}

		inv := 1 / lu.At(k, k)
		for i := k + 1; i < n; i++ {
			f := lu.At(i, k) * inv
			lu.Set(i, k, f)
			for j := k + 1; j < n; j++ {
				lu.Set(i, j, lu.At(i, j)-f*lu.At(k, j))
			}
		}
	}

	x := mat.NewCDense(n, bc, nil)
	for j := 0; j < bc; j++ {
		for i := 0; i < n; i++ {
			x.Set(i, j, b.At(perm[i], j))
		}
	}

	// Forward substitution with unit-diagonal L.
	for j := 0; j < bc; j++ {
		for i := 1; i < n; i++ {
			s := x.At(i, j)
			for k := 0; k < i; k++ {
				s -= lu.At(i, k) * x.At(k, j)
			}
			x.Set(i, j, s)
		}
	}

	// Back substitution with U.
	for j := 0; j < bc; j++ {
		for i := n - 1; i >= 0; i-- {
			s := x.At(i, j)
			for k := i + 1; k < n; k++ {
				s -= lu.At(i, k) * x.At(k, j)
			}
			x.Set(i, j, s/lu.At(i, i))
		}
	}

	return x, nil
}
