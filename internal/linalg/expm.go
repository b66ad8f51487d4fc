package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// expmPadeOrder is the diagonal Padé order used by Expm. Order 6 with the
// norm scaled below 0.5 keeps the approximant error under double-precision
// roundoff (Golub & Van Loan, Algorithm 11.3-1).
const expmPadeOrder = 6

// Expm returns the matrix exponential exp(a) computed by scaling-and-
// squaring with a diagonal Padé approximant. The input is unchanged.
func Expm(a *mat.CDense) (*mat.CDense, error) {
	n, nc := a.Dims()
	if n != nc {
		panic(mat.ErrShape)
	}

	// Scale so ‖A/2^s‖∞ < 0.5 before forming the approximant.
	norm := NormInf(a)
	s := 0
	if norm > 0.5 {
		s = int(math.Ceil(math.Log2(norm/0.5))) + 1
	}
	scaled := Scale(complex(math.Ldexp(1, -s), 0), a)

	// Diagonal Padé: N = Σ cₖ Aᵏ, D = Σ (−1)ᵏ cₖ Aᵏ.
	q := expmPadeOrder
	num := Eye(n)
	den := Eye(n)
	pow := Eye(n)
	c := 1.0
	for k := 1; k <= q; k++ {
		c = c * float64(q-k+1) / (float64(k) * float64(2*q-k+1))
		pow = Mul(pow, scaled)
		term := Scale(complex(c, 0), pow)
		AddInPlace(num, term)
		if k%2 == 0 {
			AddInPlace(den, term)
		} else {
			AddInPlace(den, Scale(-1, term))
		}
	}

	f, err := luSolve(den, num)
	if err != nil {
		return nil, err
	}

	for k := 0; k < s; k++ {
		f = Mul(f, f)
	}
	return f, nil
}
