// Package analysis provides post-processing for evolution traces.
//
// The package includes tools for characterizing simulated dynamics:
//
//   - [PowerSpectrum]: FFT magnitude spectrum of a population trace
//   - [DominantFrequency]: strongest non-DC spectral component
//   - [RamseyDetuning]: oscillation frequency of a Ramsey fringe
//   - [FitExponentialDecay]: relaxation-time extraction from a decay curve
package analysis
