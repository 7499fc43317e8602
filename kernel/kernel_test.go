package kernel

import "testing"

func almostEqual(a, b, tolerance float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func TestLinear(t *testing.T) {
	l := Linear{}
	got := l.Eval([]float64{1, 2, 3}, []float64{4, 5, 6})
	if want := 32.0; got != want {
		t.Fatalf("Linear.Eval = %v, want %v", got, want)
	}
}

func TestGaussianRejectsNonPositiveSigma(t *testing.T) {
	if _, err := NewGaussian(0); err == nil {
		t.Fatal("expected error for sigma = 0")
	}
	if _, err := NewGaussian(-1); err == nil {
		t.Fatal("expected error for negative sigma")
	}
}

func TestGaussianSelfSimilarity(t *testing.T) {
	g, err := NewGaussian(1)
	if err != nil {
		t.Fatal(err)
	}
	x := []float64{1, 2, 3}
	if got := g.Eval(x, x); !almostEqual(got, 1.0, 1e-12) {
		t.Fatalf("Gaussian.Eval(x, x) = %v, want 1.0", got)
	}
}

func TestIntersection(t *testing.T) {
	i := Intersection{}
	got := i.Eval([]float64{1, 5, 2}, []float64{3, 1, 2})
	if want := 1.0 + 1.0 + 2.0; got != want {
		t.Fatalf("Intersection.Eval = %v, want %v", got, want)
	}
}

func TestChi2SelfSimilarity(t *testing.T) {
	c := Chi2{}
	x := []float64{1, 2, 3}
	if got := c.Eval(x, x); !almostEqual(got, 1.0, 1e-12) {
		t.Fatalf("Chi2.Eval(x, x) = %v, want 1.0", got)
	}
}

func TestComposite(t *testing.T) {
	comp := Composite{
		Kernels: []Function{Linear{}, Intersection{}},
		Sizes:   []int{2, 2},
	}
	a := []float64{1, 2, 1, 5}
	b := []float64{3, 4, 3, 1}

	want := Linear{}.Eval(a[:2], b[:2]) + Intersection{}.Eval(a[2:], b[2:])
	if got := comp.Eval(a, b); got != want {
		t.Fatalf("Composite.Eval = %v, want %v", got, want)
	}
}
