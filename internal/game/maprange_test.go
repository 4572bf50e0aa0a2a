package game

import "testing"

func TestMapRangeClamps(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{-9, -10},
		{9, 10},
		{-100, -10}, // below range clamps to the low boundary
		{100, 10},   // above range clamps to the high boundary
		{0, 0},
		{4.5, 5},
	}
	for _, c := range cases {
		if got := MapRange(c.x, -9, 9, -10, 10); got != c.want {
			t.Errorf("MapRange(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestMapRangeDegenerateInput(t *testing.T) {
	for _, x := range []float64{-50, 0, 3, 50} {
		if got := MapRange(x, 5, 5, -10, 10); got != -10 {
			t.Errorf("MapRange(%v, 5, 5, -10, 10) = %v, want -10", x, got)
		}
	}
}

func TestMapRangePure(t *testing.T) {
	a := MapRange(2.5, -9, 9, 0, 88)
	b := MapRange(2.5, -9, 9, 0, 88)
	if a != b {
		t.Errorf("MapRange not deterministic: %v vs %v", a, b)
	}
}
