package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// truncatePow2 returns the longest power-of-two prefix of data.
func truncatePow2(data []float64) []float64 {
	n := 1
	for n*2 <= len(data) {
		n *= 2
	}
	return data[:n]
}

// PowerSpectrum returns the one-sided FFT magnitude spectrum of the
// signal, after subtracting its mean so the DC bin does not swamp the
// dynamics. Input longer than a power of two is truncated.
func PowerSpectrum(data []float64) []float64 {
	trimmed := truncatePow2(data)

	centered := make([]float64, len(trimmed))
	copy(centered, trimmed)
	floats.AddConst(-floats.Sum(trimmed)/float64(len(trimmed)), centered)

	fft := FFT(centered)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// Frequencies returns the frequency axis matching PowerSpectrum for a
// trace of the given original length sampled every dt seconds.
func Frequencies(sampleCount int, dt float64) []float64 {
	n := 1
	for n*2 <= sampleCount {
		n *= 2
	}
	freqs := make([]float64, n/2)
	for i := range freqs {
		freqs[i] = float64(i) / (float64(n) * dt)
	}
	return freqs
}

// DominantFrequency returns the frequency of the strongest non-DC
// spectral component of the trace, in Hz. A flat trace returns zero.
func DominantFrequency(data []float64, dt float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}

	// Skip the DC bin; mean removal leaves it near zero anyway.
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	if ps[best] == 0 {
		return 0
	}

	freqs := Frequencies(len(data), dt)
	return freqs[best]
}
