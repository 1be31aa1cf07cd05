package core

import "testing"

func TestBoxOverlapsX(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(V(0, 0), 10, 10),
			b:        NewBox(V(5, 5), 10, 10),
			expected: true,
		},
		{
			name:     "separate horizontally",
			a:        NewBox(V(0, 0), 10, 10),
			b:        NewBox(V(20, 0), 10, 10),
			expected: false,
		},
		{
			name:     "separate vertically only",
			a:        NewBox(V(0, 0), 10, 10),
			b:        NewBox(V(0, 20), 10, 10),
			expected: true,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(V(0, 0), 10, 10),
			b:        NewBox(V(10, 0), 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(V(0, 0), 20, 20),
			b:        NewBox(V(1, 1), 2, 2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.OverlapsX(tc.b); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.OverlapsX(tc.a); got != tc.expected {
				t.Errorf("OverlapsX() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(V(10, -4), 6, 8)

	if b.Left() != 7 || b.Right() != 13 {
		t.Errorf("horizontal edges = (%v, %v), expected (7, 13)", b.Left(), b.Right())
	}
	if b.Bottom() != -8 || b.Top() != 0 {
		t.Errorf("vertical edges = (%v, %v), expected (-8, 0)", b.Bottom(), b.Top())
	}
}

func TestVec2(t *testing.T) {
	v := V(1, 2).Add(V(3, -4)).Scale(0.5)
	if v != V(2, -1) {
		t.Errorf("vector math = %+v, expected {2 -1}", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
