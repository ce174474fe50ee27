package synth

import "testing"

func TestSourceReproducible(t *testing.T) {
	a := NewSource(7)
	b := NewSource(7)

	sa := a.States(5, 3)
	sb := b.States(5, 3)
	for i := range sa {
		for j := range sa[i] {
			if sa[i][j] != sb[i][j] {
				t.Fatalf("states diverge at [%d][%d]", i, j)
			}
		}
	}

	ha := a.Shift(4)
	hb := b.Shift(4)
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("shift diverges at %d", i)
		}
	}
}

func TestSourceSeedsDiffer(t *testing.T) {
	a := NewSource(1).Intent(8)
	b := NewSource(2).Intent(8)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical intent vectors")
	}
}

func TestStatesNeverDegenerate(t *testing.T) {
	states := NewSource(99).States(100, 4)
	for i, v := range states {
		if norm2(v) == 0 {
			t.Fatalf("state %d has zero magnitude", i)
		}
	}
}

func TestShapes(t *testing.T) {
	s := NewSource(3)

	if got := s.States(10, 6); len(got) != 10 || len(got[0]) != 6 {
		t.Fatalf("unexpected states shape: %d x %d", len(got), len(got[0]))
	}
	if got := s.Shift(7); len(got) != 7 {
		t.Fatalf("unexpected shift length: %d", len(got))
	}
	if got := s.Intent(5); len(got) != 5 {
		t.Fatalf("unexpected intent length: %d", len(got))
	}
}
