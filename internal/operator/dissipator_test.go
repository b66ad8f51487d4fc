package operator

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/qsim/internal/quantum"
)

func TestDissipatorDecayRate(t *testing.T) {
	t1 := 5.2e-6
	q, err := quantum.NewQubit("q1", 2, 4.863e9, -300e6, t1, 0)
	if err != nil {
		t.Fatal(err)
	}

	d := NewDissipator(q.T1Dissipator())
	s := d.Superoperator()

	// Column-stacked vec(|1><1|) sits at index 3; its own decay rate is
	// -1/T1 and the population flows into vec(|0><0|) at index 0.
	gamma := 1 / t1
	if got := real(s.At(3, 3)); math.Abs(got+gamma) > gamma*1e-12 {
		t.Errorf("d rho11/dt coefficient: got %g, want %g", got, -gamma)
	}
	if got := real(s.At(0, 3)); math.Abs(got-gamma) > gamma*1e-12 {
		t.Errorf("d rho00/dt coefficient: got %g, want %g", got, gamma)
	}

	// Coherences decay at half the population rate.
	if got := real(s.At(1, 1)); math.Abs(got+gamma/2) > gamma*1e-12 {
		t.Errorf("d rho10/dt coefficient: got %g, want %g", got, -gamma/2)
	}
}

func TestDissipatorTracePreserving(t *testing.T) {
	q, err := quantum.NewQubit("q", 3, 5e9, -3e8, 4.4e-6, 0)
	if err != nil {
		t.Fatal(err)
	}

	d := NewDissipator(q.T1Dissipator())
	s := d.Superoperator()

	// Summing the rows that feed diagonal density-matrix entries must
	// give zero for every column: the generated dynamics moves
	// population around without creating or destroying it.
	n := 3
	for col := 0; col < n*n; col++ {
		sum := complex(0, 0)
		for k := 0; k < n; k++ {
			sum += s.At(k*n+k, col)
		}
		if cmplx.Abs(sum) > 1e-6 {
			t.Errorf("column %d: diagonal row sum %v, want 0", col, sum)
		}
	}
}
