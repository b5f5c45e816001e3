package models

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "player over enemy",
			a:        NewRect(100, 100, 50, 80),
			b:        NewRect(100, 150, 50, 80),
			expected: true,
		},
		{
			name:     "player clear of enemy",
			a:        NewRect(100, 100, 50, 80),
			b:        NewRect(300, 400, 50, 80),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %g, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %g, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%g, %g, %g) = %g, expected %g", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestPlayerRect(t *testing.T) {
	p := Player{X: 375, Y: 400, Width: 50, Height: 80, LateralSpeed: 10}
	if p.Rect() != NewRect(375, 400, 50, 80) {
		t.Errorf("Rect() = %+v", p.Rect())
	}
	if p.CenterX() != 400 {
		t.Errorf("CenterX() = %g, expected 400", p.CenterX())
	}
}
