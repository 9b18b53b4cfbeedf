package systems

import (
	"hop-core/internal/domain"
	"testing"
)

func TestHasLineOfSight(t *testing.T) {
	// Игрок смотрит вдоль оси r с (4,8) на (4,4)
	from, to := domain.Axial(4, 8), domain.Axial(4, 4)

	tests := []struct {
		name  string
		setup func(s *domain.GameState)
		want  bool
	}{
		{"open field", func(s *domain.GameState) {}, true},
		{"wall in between", func(s *domain.GameState) { setTile(s, domain.Axial(4, 6), domain.BaseWall) }, false},
		{"legacy wall in between", func(s *domain.GameState) { s.Walls = append(s.Walls, domain.Axial(4, 6)) }, false},
		{"smoke blocks sight", func(s *domain.GameState) {
			setTile(s, domain.Axial(4, 6), domain.BaseFloor).AddEffect(domain.TileEffect{ID: domain.TileEffectSmoke, Duration: 2})
		}, false},
		{"actors do not block sight", func(s *domain.GameState) { addActor(s, "e1", domain.FactionEnemy, domain.Axial(4, 6)) }, true},
		{"lava does not block sight", func(s *domain.GameState) { setTile(s, domain.Axial(4, 6), domain.BaseLava) }, true},
		{"wall at the target itself is visible", func(s *domain.GameState) { setTile(s, to, domain.BaseWall) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			tt.setup(s)
			if got := HasLineOfSight(s, from, to); got != tt.want {
				t.Errorf("HasLineOfSight() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("same point", func(t *testing.T) {
		if !HasLineOfSight(newTestState(), from, from) {
			t.Error("a point always sees itself")
		}
	})
}
