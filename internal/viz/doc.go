// Package viz renders evolution traces and spectra as terminal plots.
//
//   - [Populations]: stacked level-occupation traces
//   - [Spectrum]: FFT magnitude plot
//   - [RunSummary]: styled metadata box for a finished run
package viz
