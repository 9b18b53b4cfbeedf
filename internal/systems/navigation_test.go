package systems

import (
	"hop-core/internal/domain"
	"hop-core/pkg/utils"
	"slices"
	"testing"
)

func TestReachableTiles_OpenField(t *testing.T) {
	s := newTestState()
	mover := addActor(s, "p", domain.FactionPlayer, domain.Axial(4, 5))

	tiles := ReachableTiles(s, mover, 1, ReachOptions{})
	if len(tiles) != 6 {
		t.Fatalf("expected 6 neighbours, got %d", len(tiles))
	}
	for i := 1; i < len(tiles); i++ {
		if domain.ComparePoints(tiles[i-1].Point, tiles[i].Point) >= 0 {
			t.Errorf("result is not sorted: %s before %s", tiles[i-1].Point, tiles[i].Point)
		}
	}
	if got := ReachableTiles(s, mover, 0, ReachOptions{}); got != nil {
		t.Errorf("zero move points must give nothing, got %v", got)
	}
}

func TestReachableTiles_Obstacles(t *testing.T) {
	origin := domain.Axial(4, 5)
	mid := domain.Axial(4, 4)
	far := domain.Axial(4, 3) // дистанция 2, единственный путь через mid

	tests := []struct {
		name    string
		setup   func(s *domain.GameState)
		opts    ReachOptions
		midIn   bool
		farIn   bool
		farPath []domain.Point
	}{
		{"open", func(s *domain.GameState) {}, ReachOptions{}, true, true, []domain.Point{mid, far}},
		{"wall", func(s *domain.GameState) { setTile(s, mid, domain.BaseWall) }, ReachOptions{}, false, false, nil},
		{"enemy blocks", func(s *domain.GameState) { addActor(s, "e1", domain.FactionEnemy, mid) }, ReachOptions{}, false, false, nil},
		{"ally can be passed, not occupied", func(s *domain.GameState) { addActor(s, "a1", domain.FactionPlayer, mid) }, ReachOptions{}, false, true, []domain.Point{mid, far}},
		{"lava ends the path", func(s *domain.GameState) { setTile(s, mid, domain.BaseLava) }, ReachOptions{}, true, false, nil},
		{"lava avoided", func(s *domain.GameState) { setTile(s, mid, domain.BaseLava) }, ReachOptions{AvoidHazards: true}, false, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			mover := addActor(s, "p", domain.FactionPlayer, origin)
			tt.setup(s)

			tiles := ReachableTiles(s, mover, 2, tt.opts)
			if _, ok := FindReachable(tiles, mid); ok != tt.midIn {
				t.Errorf("mid reachable = %v, want %v", ok, tt.midIn)
			}
			r, ok := FindReachable(tiles, far)
			if ok != tt.farIn {
				t.Fatalf("far reachable = %v, want %v", ok, tt.farIn)
			}
			if ok && !slices.Equal(r.Path, tt.farPath) {
				t.Errorf("path = %v, want %v", r.Path, tt.farPath)
			}
		})
	}
}

func TestCastAxialRay(t *testing.T) {
	origin := domain.Axial(4, 8)

	t.Run("wall stops the ray", func(t *testing.T) {
		s := newTestState()
		setTile(s, domain.Axial(4, 5), domain.BaseWall)
		hit := CastAxialRay(s, origin, north, RayOptions{})
		if !hit.HitWall || hit.BlockedAt != domain.Axial(4, 5) {
			t.Fatalf("unexpected hit %+v", hit)
		}
		if !slices.Equal(hit.Points, []domain.Point{domain.Axial(4, 7), domain.Axial(4, 6)}) {
			t.Errorf("points = %v", hit.Points)
		}
	})

	t.Run("actor stops the ray", func(t *testing.T) {
		s := newTestState()
		shooter := addActor(s, "p", domain.FactionPlayer, origin)
		target := addActor(s, "e1", domain.FactionEnemy, domain.Axial(4, 6))
		hit := CastAxialRay(s, origin, north, RayOptions{StopAtActors: true, IgnoreActorID: shooter.ID, IncludeBlocking: true})
		if hit.HitActor != target || hit.HitWall {
			t.Fatalf("unexpected hit %+v", hit)
		}
		if !slices.Equal(hit.Points, []domain.Point{domain.Axial(4, 7), domain.Axial(4, 6)}) {
			t.Errorf("points = %v", hit.Points)
		}
	})

	t.Run("max distance", func(t *testing.T) {
		hit := CastAxialRay(newTestState(), origin, north, RayOptions{MaxDistance: 1})
		if hit.Blocked || len(hit.Points) != 1 {
			t.Errorf("unexpected hit %+v", hit)
		}
	})

	t.Run("map edge", func(t *testing.T) {
		hit := CastAxialRay(newTestState(), domain.Axial(4, 1), north, RayOptions{})
		if !hit.HitWall || !slices.Equal(hit.Points, []domain.Point{domain.Axial(4, 0)}) {
			t.Errorf("unexpected hit %+v", hit)
		}
	})
}

func TestPickDeterministic(t *testing.T) {
	candidates := []domain.Point{domain.Axial(4, 5), domain.Axial(3, 6), domain.Axial(5, 4), domain.Axial(4, 6)}
	shuffled := []domain.Point{candidates[2], candidates[0], candidates[3], candidates[1], candidates[0]}

	a := utils.NewSeededRNG(42)
	b := utils.NewSeededRNG(42)
	pa, _ := PickDeterministic(a, candidates)
	pb, _ := PickDeterministic(b, shuffled)
	if pa != pb {
		t.Errorf("input order changed the pick: %s vs %s", pa, pb)
	}
	if a.Counter != 1 || b.Counter != 1 {
		t.Errorf("a real choice consumes exactly one value, counters %d/%d", a.Counter, b.Counter)
	}

	single := utils.NewSeededRNG(1)
	if p, ok := PickDeterministic(single, []domain.Point{candidates[0], candidates[0]}); !ok || p != candidates[0] || single.Counter != 0 {
		t.Errorf("single candidate must not consume the stream: %s %d", p, single.Counter)
	}
	if _, ok := PickDeterministic(single, nil); ok {
		t.Error("no candidates, no pick")
	}
}

func TestClosestTo(t *testing.T) {
	goal := domain.Axial(4, 2)
	candidates := []domain.Point{domain.Axial(4, 6), domain.Axial(4, 4), domain.Axial(3, 5)}
	p, ok := ClosestTo(nil, candidates, goal)
	if !ok || p != domain.Axial(4, 4) {
		t.Errorf("ClosestTo() = %s, %v", p, ok)
	}
}
