package geom

import (
	"math"
	"testing"
)

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		name         string
		t1, t2       float64
		x, y, vx, vy float64
		wantX, wantY float64
	}{
		{"forward", 0, 10, 1, 2, 0.5, -0.25, 6, -0.5},
		{"zero dt", 5, 5, 3, 4, 100, 100, 3, 4},
		{"backward", 10, 0, 0, 0, 1, 1, -10, -10},
		{"at rest", 0, 1000, 7, 8, 0, 0, 7, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extrapolate(tt.t1, tt.t2, tt.x, tt.y, tt.vx, tt.vy)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("Extrapolate() = %+v, want (%v, %v)", got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestExtrapolate1MatchesExtrapolate(t *testing.T) {
	got := Extrapolate1(2, 7, 100, -0.38)
	want := Extrapolate(2, 7, 0, 100, 0, -0.38).Y
	if got != want {
		t.Errorf("Extrapolate1() = %v, want %v", got, want)
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name                    string
		x1, x2, lower, upper, t float64
		want                    float64
	}{
		{"midpoint", 0, 10, 50, 100, 75, 5},
		{"lower end", 3, 9, 0, 1, 0, 3},
		{"upper end", 3, 9, 0, 1, 1, 9},
		{"reversed ranges", 10, 0, 100, 50, 75, 5},
		{"beyond range", 0, 10, 0, 10, 20, 20},
		{"flat target", 4, 4, 0, 8, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(tt.x1, tt.x2, tt.lower, tt.upper, tt.t)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Interpolate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterpolateDegenerateRange(t *testing.T) {
	got := Interpolate(0, 1, 5, 5, 6)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("Interpolate() = %v, want a finite value", got)
	}
	if want := 1.0 / epsilon; math.Abs(got-want) > 1e-6 {
		t.Errorf("Interpolate() = %v, want %v", got, want)
	}

	// Segmento parado no próprio ponto: o resultado continua sendo x1.
	if got := Interpolate(10, 10, 5, 5, 5); got != 10 {
		t.Errorf("Interpolate() = %v, want 10", got)
	}
}
