package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
)

var seriesPalette = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Magenta,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Blue,
}

// Populations plots the level-occupation traces of a run on a shared
// axis. Every series is downsampled to at most width points.
func Populations(times []float64, populations [][]float64, height, width int) string {
	if len(populations) == 0 || len(populations[0]) == 0 {
		return ""
	}

	dim := len(populations[0])
	series := make([][]float64, dim)
	for k := 0; k < dim; k++ {
		full := make([]float64, len(populations))
		for i, row := range populations {
			full[i] = row[k]
		}
		series[k] = downsample(full, width)
	}

	colors := make([]asciigraph.AnsiColor, dim)
	for k := range colors {
		colors[k] = seriesPalette[k%len(seriesPalette)]
	}

	caption := fmt.Sprintf("populations p0..p%d over %s", dim-1, timeSpan(times))
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)

	legend := make([]string, dim)
	for k := range legend {
		legend[k] = fmt.Sprintf("p%d", k)
	}
	return graph + "\n" + Subtle.Render("series: "+strings.Join(legend, " "))
}

// SingleTrace plots one population series with its own caption.
func SingleTrace(times, values []float64, label string, height, width int) string {
	if len(values) == 0 {
		return ""
	}
	caption := fmt.Sprintf("%s over %s (max %.4f)", label, timeSpan(times), floats.Max(values))
	return asciigraph.Plot(downsample(values, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Spectrum plots an FFT magnitude spectrum against its frequency axis.
func Spectrum(freqs, power []float64, height, width int) string {
	if len(power) == 0 {
		return ""
	}
	n := len(power)
	if len(freqs) < n {
		n = len(freqs)
	}
	caption := fmt.Sprintf("power spectrum, 0..%s", formatFreq(freqs[n-1]))
	return asciigraph.Plot(downsample(power[:n], width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

func downsample(data []float64, width int) []float64 {
	if width <= 0 || len(data) <= width {
		return data
	}
	out := make([]float64, width)
	for i := range out {
		out[i] = data[i*len(data)/width]
	}
	return out
}

func timeSpan(times []float64) string {
	if len(times) == 0 {
		return "0s"
	}
	return formatTime(times[len(times)-1] - times[0])
}

func formatTime(t float64) string {
	switch {
	case t >= 1:
		return fmt.Sprintf("%.3gs", t)
	case t >= 1e-3:
		return fmt.Sprintf("%.3gms", t*1e3)
	case t >= 1e-6:
		return fmt.Sprintf("%.3gus", t*1e6)
	default:
		return fmt.Sprintf("%.3gns", t*1e9)
	}
}

func formatFreq(f float64) string {
	switch {
	case f >= 1e9:
		return fmt.Sprintf("%.3gGHz", f/1e9)
	case f >= 1e6:
		return fmt.Sprintf("%.3gMHz", f/1e6)
	case f >= 1e3:
		return fmt.Sprintf("%.3gkHz", f/1e3)
	default:
		return fmt.Sprintf("%.3gHz", f)
	}
}
