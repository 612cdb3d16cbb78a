package pairhmm

import (
	"math"
	"testing"
)

func TestLogAddIdentity(t *testing.T) {
	for _, x := range []float64{-100, -1, 0, 5, 1000} {
		if got := LogAdd(x, LogZero); got != x {
			t.Errorf("LogAdd(%v, LogZero) = %v, want %v", x, got, x)
		}
		if got := LogAdd(LogZero, x); got != x {
			t.Errorf("LogAdd(LogZero, %v) = %v, want %v", x, got, x)
		}
	}
}

func TestLogAddCommutative(t *testing.T) {
	pairs := [][2]float64{{-3, -7}, {0, 0}, {-1e10, -1e10}, {2, -2}}
	for _, p := range pairs {
		a := LogAdd(p[0], p[1])
		b := LogAdd(p[1], p[0])
		if a != b {
			t.Errorf("LogAdd(%v, %v) = %v, LogAdd(%v, %v) = %v: not commutative", p[0], p[1], a, p[1], p[0], b)
		}
	}
}

func TestLogAddAgainstMath(t *testing.T) {
	cases := []struct{ x, y float64 }{
		{-1, -2}, {-0.5, -0.5}, {-10, -0.001}, {-50, -50}, {-0.0001, -20},
	}
	for _, c := range cases {
		want := math.Log(math.Exp(c.x) + math.Exp(c.y))
		got := LogAdd(c.x, c.y)
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("LogAdd(%v, %v) = %v, want ~%v", c.x, c.y, got, want)
		}
	}
}

func TestLogAddMonotonic(t *testing.T) {
	// LogAdd(x, y) must never be less than max(x, y): adding a second
	// probability cannot decrease the total.
	cases := []struct{ x, y float64 }{
		{-3, -7}, {-1, -1}, {-0.1, -9}, {-1e9, -1},
	}
	for _, c := range cases {
		got := LogAdd(c.x, c.y)
		if got < math.Max(c.x, c.y)-1e-9 {
			t.Errorf("LogAdd(%v, %v) = %v, less than max %v", c.x, c.y, got, math.Max(c.x, c.y))
		}
	}
}
