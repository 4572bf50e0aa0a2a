package scores

import "testing"

func TestBoardCapsAndSorts(t *testing.T) {
	b := NewBoard(nil)
	for _, s := range []int{10, 50, 30, 20, 40} {
		b.Add(Record{Initials: "AAA", Score: s})
		recs := b.Records()
		if len(recs) > MaxEntries {
			t.Fatalf("board grew to %d entries", len(recs))
		}
		for i := 1; i < len(recs); i++ {
			if recs[i-1].Score < recs[i].Score {
				t.Fatalf("board not sorted descending: %v", recs)
			}
		}
	}

	recs := b.Records()
	want := []int{50, 40, 30}
	for i, w := range want {
		if recs[i].Score != w {
			t.Errorf("recs[%d].Score = %d, want %d", i, recs[i].Score, w)
		}
	}
}

func TestIsHighScore(t *testing.T) {
	b := NewBoard(nil)
	if !b.IsHighScore(0) {
		t.Error("empty board should accept any score")
	}
	b.Add(Record{"AAA", 50})
	b.Add(Record{"BBB", 30})
	if !b.IsHighScore(1) {
		t.Error("board with 2 entries should accept any score")
	}
	b.Add(Record{"CCC", 10})

	cases := []struct {
		score int
		want  bool
	}{
		{10, false},
		{11, true},
		{50, true}, // beats the 10 in third place
		{51, true},
		{0, false},
	}
	for _, c := range cases {
		if got := b.IsHighScore(c.score); got != c.want {
			t.Errorf("IsHighScore(%d) = %v, want %v", c.score, got, c.want)
		}
	}
}

func TestLowestEntryBoundary(t *testing.T) {
	// Strictly-greater rule at the exact third-place value.
	b := NewBoard([]Record{{"AAA", 50}, {"BBB", 30}, {"CCC", 30}})
	if b.IsHighScore(30) {
		t.Error("score equal to third place must not qualify")
	}
	if !b.IsHighScore(31) {
		t.Error("score above third place must qualify")
	}
}
