package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrTooFewSamples = errors.New("analysis: too few samples")
	ErrBadTimeAxis   = errors.New("analysis: time axis must be uniform and increasing")
)

// RamseyDetuning extracts the fringe frequency of a Ramsey trace, the
// detuning between drive and qubit. The trace is the excited-state
// population sampled on a uniform time axis.
func RamseyDetuning(times, populations []float64) (float64, error) {
	dt, err := uniformStep(times)
	if err != nil {
		return 0, err
	}
	if len(populations) != len(times) {
		return 0, ErrTooFewSamples
	}
	return DominantFrequency(populations, dt), nil
}

// FitExponentialDecay fits values ≈ amplitude·exp(−t/tau) by linear
// regression on the logarithm, weighting all samples equally. Samples
// at or below zero are skipped; at least four positive samples are
// required. Used for T1 extraction from an excited-population trace.
func FitExponentialDecay(times, values []float64) (amplitude, tau float64, err error) {
	if len(times) != len(values) {
		return 0, 0, ErrTooFewSamples
	}

	var ts, logs []float64
	for i, v := range values {
		if v > 0 {
			ts = append(ts, times[i])
			logs = append(logs, math.Log(v))
		}
	}
	if len(ts) < 4 {
		return 0, 0, ErrTooFewSamples
	}

	n := float64(len(ts))
	meanT := floats.Sum(ts) / n
	meanL := floats.Sum(logs) / n

	var cov, varT float64
	for i := range ts {
		dtI := ts[i] - meanT
		cov += dtI * (logs[i] - meanL)
		varT += dtI * dtI
	}
	if varT == 0 {
		return 0, 0, ErrBadTimeAxis
	}

	slope := cov / varT
	if slope >= 0 {
		return 0, 0, errors.New("analysis: trace is not decaying")
	}

	amplitude = math.Exp(meanL - slope*meanT)
	tau = -1 / slope
	return amplitude, tau, nil
}

func uniformStep(times []float64) (float64, error) {
	if len(times) < 4 {
		return 0, ErrTooFewSamples
	}
	dt := times[1] - times[0]
	if dt <= 0 {
		return 0, ErrBadTimeAxis
	}
	for i := 2; i < len(times); i++ {
		if math.Abs((times[i]-times[i-1])-dt) > 1e-6*dt {
			return 0, ErrBadTimeAxis
		}
	}
	return dt, nil
}
