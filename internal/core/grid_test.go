package core

import "testing"

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid[int](7, 5)
	n := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.Set(x, y, n)
			n++
		}
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != g.Cells()[g.Index(x, y)] {
				t.Fatalf("At and Index disagree at (%d,%d)", x, y)
			}
		}
	}
	if g.Cells()[1] != 1 || g.Cells()[g.W] != g.W {
		t.Fatal("grid is not row-major")
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid[bool](4, 3)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestDirectionOffsetsClockwise(t *testing.T) {
	if DirOffsets[North] != (Point{0, -1}) {
		t.Fatal("north offset wrong")
	}
	if DirOffsets[East] != (Point{1, 0}) {
		t.Fatal("east offset wrong")
	}
	for d := North; d <= Northwest; d++ {
		opp := d.Opposite()
		o1 := DirOffsets[d]
		o2 := DirOffsets[opp]
		if o1.X != -o2.X || o1.Y != -o2.Y {
			t.Fatalf("opposite of %v should negate the offset", d)
		}
	}
	if NoDirection.Opposite() != NoDirection {
		t.Fatal("NoDirection has no opposite")
	}
}
