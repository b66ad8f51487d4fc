package viz

import (
	"strings"
	"testing"
)

func TestPopulationsPlot(t *testing.T) {
	times := make([]float64, 100)
	pops := make([][]float64, 100)
	for i := range times {
		times[i] = float64(i) * 1e-9
		pops[i] = []float64{float64(i) / 100, 1 - float64(i)/100}
	}

	out := Populations(times, pops, 8, 40)
	if out == "" {
		t.Fatal("expected non-empty plot")
	}
	if !strings.Contains(out, "populations p0..p1") {
		t.Errorf("caption missing: %q", out)
	}
	if !strings.Contains(out, "p0 p1") {
		t.Errorf("legend missing: %q", out)
	}
}

func TestPopulationsEmpty(t *testing.T) {
	if out := Populations(nil, nil, 8, 40); out != "" {
		t.Errorf("expected empty plot, got %q", out)
	}
}

func TestSpectrumPlot(t *testing.T) {
	freqs := []float64{0, 1e6, 2e6, 3e6}
	power := []float64{0, 0.2, 1.0, 0.1}

	out := Spectrum(freqs, power, 6, 30)
	if !strings.Contains(out, "3MHz") {
		t.Errorf("frequency axis missing from caption: %q", out)
	}
}

func TestDownsample(t *testing.T) {
	data := make([]float64, 1000)
	for i := range data {
		data[i] = float64(i)
	}
	out := downsample(data, 100)
	if len(out) != 100 {
		t.Fatalf("expected 100 points, got %d", len(out))
	}

	short := []float64{1, 2, 3}
	if got := downsample(short, 100); len(got) != 3 {
		t.Errorf("short input should pass through, got %d points", len(got))
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatTime(2.5e-6); got != "2.5us" {
		t.Errorf("formatTime: got %q", got)
	}
	if got := formatFreq(4.863e9); !strings.HasSuffix(got, "GHz") {
		t.Errorf("formatFreq: got %q", got)
	}
}

func TestRunSummary(t *testing.T) {
	out := RunSummary("two_transmon", 9, 20000, 3e-13, map[string]float64{"purity": 0.98})
	if !strings.Contains(out, "two_transmon") {
		t.Errorf("system name missing: %q", out)
	}
	if !strings.Contains(out, "purity") {
		t.Errorf("metric missing: %q", out)
	}
}
