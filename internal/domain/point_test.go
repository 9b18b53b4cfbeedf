package domain

import (
	"errors"
	"slices"
	"testing"
)

func TestNewPoint(t *testing.T) {
	if _, err := NewPoint(1, 1, 1); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("expected ErrInvalidCoordinate, got %v", err)
	}
	p, err := NewPoint(2, -3, 1)
	if err != nil || p != Axial(2, -3) {
		t.Errorf("NewPoint = %v, %v", p, err)
	}
}

func TestDistance(t *testing.T) {
	origin := Axial(4, 5)
	tests := []struct {
		name string
		b    Point
		want int
	}{
		{"same", origin, 0},
		{"neighbour", Axial(5, 4), 1},
		{"two along r", Axial(4, 7), 2},
		{"off axis", Axial(6, 6), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(origin, tt.b); got != tt.want {
				t.Errorf("Distance = %d, want %d", got, tt.want)
			}
			if Distance(tt.b, origin) != Distance(origin, tt.b) {
				t.Error("distance must be symmetric")
			}
		})
	}
}

func TestNeighborsAndDirections(t *testing.T) {
	p := Axial(4, 5)
	for i, n := range p.Neighbors() {
		if !n.Valid() || !p.IsAdjacent(n) {
			t.Errorf("neighbour %d = %s is not adjacent", i, n)
		}
		dir, ok := DirectionIndex(p, n)
		if !ok || dir != i {
			t.Errorf("DirectionIndex to neighbour %d = %d, %v", i, dir, ok)
		}
		if p.Neighbor(i).Neighbor((i + 3) % 6) != p {
			t.Errorf("opposite of %d does not return", i)
		}
	}
	if Direction(-1) != Directions[5] || Direction(7) != Directions[1] {
		t.Error("Direction must wrap modulo 6")
	}
}

func TestAxialLine(t *testing.T) {
	line, ok := AxialLine(Axial(4, 8), Axial(4, 5))
	if !ok || !slices.Equal(line, []Point{Axial(4, 7), Axial(4, 6), Axial(4, 5)}) {
		t.Errorf("AxialLine = %v, %v", line, ok)
	}
	if _, ok := AxialLine(Axial(4, 8), Axial(5, 6)); ok {
		t.Error("non-axial pair must be rejected")
	}
	if _, ok := DirectionIndex(Axial(4, 8), Axial(4, 8)); ok {
		t.Error("a point has no direction to itself")
	}
}

func TestLine(t *testing.T) {
	a, b := Axial(2, 8), Axial(6, 3)
	line := Line(a, b)
	if len(line) != Distance(a, b)+1 || line[0] != a || line[len(line)-1] != b {
		t.Fatalf("Line = %v", line)
	}
	for i := 1; i < len(line); i++ {
		if !line[i-1].IsAdjacent(line[i]) || !line[i].Valid() {
			t.Errorf("step %d is not a hex step: %s -> %s", i, line[i-1], line[i])
		}
	}
	if !slices.Equal(Line(a, a), []Point{a}) {
		t.Error("line to itself is a single point")
	}
}

func TestComparePoints(t *testing.T) {
	pts := []Point{Axial(3, 6), Axial(2, 9), Axial(3, 4), Axial(2, 5)}
	slices.SortFunc(pts, ComparePoints)
	want := []Point{Axial(2, 5), Axial(2, 9), Axial(3, 4), Axial(3, 6)}
	if !slices.Equal(pts, want) {
		t.Errorf("sorted = %v", pts)
	}
}
