package geometry

import "testing"

func TestIoUSelf(t *testing.T) {
	b := New(0, 0, 10, 10)
	if got := b.IoU(b); got != 1.0 {
		t.Fatalf("IoU(A, A) = %v, want 1.0", got)
	}
}

func TestIoUSymmetric(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(5, 5, 10, 10)

	if a.IoU(b) != b.IoU(a) {
		t.Fatalf("IoU(A, B) = %v, IoU(B, A) = %v, want equal", a.IoU(b), b.IoU(a))
	}
}

func TestIoUDisjoint(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(100, 100, 10, 10)

	if got := a.IoU(b); got != 0 {
		t.Fatalf("IoU(disjoint) = %v, want 0", got)
	}
}

func TestIoUPartialOverlap(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(5, 5, 10, 10)

	// intersection is 5x5 = 25, union is 100+100-25 = 175
	want := 25.0 / 175.0
	if got := a.IoU(b); got != want {
		t.Fatalf("IoU = %v, want %v", got, want)
	}
}

func TestDiagonal(t *testing.T) {
	b := New(0, 0, 3, 4)
	if got := b.Diagonal(); got != 5 {
		t.Fatalf("Diagonal() = %v, want 5", got)
	}
}
