package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{10, 0, 0.25, 7.5},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.t); got != c.want {
			t.Fatalf("Lerp(%v, %v, %v) = %v, expected %v", c.a, c.b, c.t, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(5, 0, 10); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := ClampInt(-1, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ClampInt(11, 0, 10); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}
