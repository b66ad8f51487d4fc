package linalg

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Zeros returns an n×n zero matrix.
func Zeros(n int) *mat.CDense {
	return mat.NewCDense(n, n, nil)
}

// Eye returns the n×n identity matrix.
func Eye(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Clone returns an independent copy of a.
func Clone(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, a.At(i, j))
		}
	}
	return out
}

// Add returns a + b.
func Add(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(mat.ErrShape)
	}
	out := mat.NewCDense(ar, ac, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			out.Set(i, j, a.At(i, j)+b.At(i, j))
		}
	}
	return out
}

// AddInPlace accumulates a into dst.
func AddInPlace(dst, a *mat.CDense) {
	dr, dc := dst.Dims()
	ar, ac := a.Dims()
	if dr != ar || dc != ac {
		panic(mat.ErrShape)
	}
	for i := 0; i < dr; i++ {
		for j := 0; j < dc; j++ {
			dst.Set(i, j, dst.At(i, j)+a.At(i, j))
		}
	}
}

// Sub returns a - b.
func Sub(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(mat.ErrShape)
	}
	out := mat.NewCDense(ar, ac, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			out.Set(i, j, a.At(i, j)-b.At(i, j))
		}
	}
	return out
}

// Scale returns c * a.
func Scale(c complex128, a *mat.CDense) *mat.CDense {
	r, cols := a.Dims()
	out := mat.NewCDense(r, cols, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, c*a.At(i, j))
		}
	}
	return out
}

// Mul returns the matrix product a·b. gonum's CDense has no complex
// multiply, so the loop is written out here.
func Mul(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic(mat.ErrShape)
	}
	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var acc complex128
			for k := 0; k < ac; k++ {
				acc += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, acc)
		}
	}
	return out
}

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			av := a.At(i, j)
			if av == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, av*b.At(k, l))
				}
			}
		}
	}
	return out
}

// Transpose returns aᵀ as a new matrix.
func Transpose(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, a.At(i, j))
		}
	}
	return out
}

// Conj returns the element-wise complex conjugate of a.
func Conj(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, cmplx.Conj(a.At(i, j)))
		}
	}
	return out
}

// Dagger returns the conjugate transpose a†.
func Dagger(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(a.At(i, j)))
		}
	}
	return out
}

// Vec returns the column-stacked vectorization of a square matrix:
// element (i,j) lands at index j*n+i.
func Vec(a *mat.CDense) []complex128 {
	r, c := a.Dims()
	v := make([]complex128, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v[j*r+i] = a.At(i, j)
		}
	}
	return v
}

// Unvec is the inverse of [Vec] for an n×n matrix.
func Unvec(v []complex128, n int) *mat.CDense {
	if len(v) != n*n {
		panic(mat.ErrShape)
	}
	out := mat.NewCDense(n, n, nil)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			out.Set(i, j, v[j*n+i])
		}
	}
	return out
}

// MaxAbsDiff returns the largest element-wise |a-b|.
func MaxAbsDiff(a, b *mat.CDense) float64 {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(mat.ErrShape)
	}
	max := 0.0
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if d := cmplx.Abs(a.At(i, j) - b.At(i, j)); d > max {
				max = d
			}
		}
	}
	return max
}

// IsHermitian reports whether a equals its conjugate transpose within tol.
func IsHermitian(a *mat.CDense, tol float64) bool {
	r, c := a.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i; j < c; j++ {
			if cmplx.Abs(a.At(i, j)-cmplx.Conj(a.At(j, i))) > tol {
				return false
			}
		}
	}
	return true
}

// UnitarityError returns ‖U·U† − I‖_max, zero for an exactly unitary U.
func UnitarityError(u *mat.CDense) float64 {
	n, _ := u.Dims()
	prod := Mul(u, Dagger(u))
	return MaxAbsDiff(prod, Eye(n))
}

// NormInf returns the infinity (max absolute row sum) norm of a.
func NormInf(a *mat.CDense) float64 {
	r, c := a.Dims()
	max := 0.0
	for i := 0; i < r; i++ {
		sum := 0.0
		for j := 0; j < c; j++ {
			sum += cmplx.Abs(a.At(i, j))
		}
		if sum > max {
			max = sum
		}
	}
	return max
}

// Diagonal returns the real parts of the diagonal of a square matrix.
// Useful for reading spectra off Hermitian matrices in the bare basis.
func Diagonal(a *mat.CDense) []float64 {
	n, _ := a.Dims()
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = real(a.At(i, i))
	}
	return d
}
