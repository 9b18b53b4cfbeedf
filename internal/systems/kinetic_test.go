package systems

import (
	"hop-core/internal/domain"
	"slices"
	"testing"
)

const north = 5

func TestChainTravel(t *testing.T) {
	tests := []struct {
		momentum, n, i, want int
	}{
		{3, 3, 2, 3}, // голова
		{3, 3, 1, 2},
		{3, 3, 0, 1},
		{1, 3, 2, 1},
		{1, 3, 0, 1}, // не меньше одной клетки
		{4, 1, 0, 4},
	}
	for _, tt := range tests {
		if got := ChainTravel(tt.momentum, tt.n, tt.i); got != tt.want {
			t.Errorf("ChainTravel(%d,%d,%d) = %d, want %d", tt.momentum, tt.n, tt.i, got, tt.want)
		}
	}
}

func TestBuildChain(t *testing.T) {
	s := newTestState()
	addActor(s, "src", domain.FactionPlayer, domain.Axial(4, 8))
	addActor(s, "a", domain.FactionEnemy, domain.Axial(4, 7))
	addActor(s, "b", domain.FactionEnemy, domain.Axial(4, 6))
	addActor(s, "c", domain.FactionEnemy, domain.Axial(4, 4)) // за разрывом

	chain := BuildChain(s, domain.Axial(4, 7), north, "src")
	var ids []string
	for _, a := range chain {
		ids = append(ids, a.ID)
	}
	if !slices.Equal(ids, []string{"a", "b"}) {
		t.Errorf("chain = %v", ids)
	}
}

func TestResolveKinetic(t *testing.T) {
	src := domain.Axial(4, 8)
	impact := domain.Axial(4, 7)

	t.Run("whole chain moves", func(t *testing.T) {
		s := newTestState()
		addActor(s, "src", domain.FactionPlayer, src)
		addActor(s, "a", domain.FactionEnemy, impact)
		addActor(s, "b", domain.FactionEnemy, domain.Axial(4, 6))

		plan := ResolveKinetic(s, KineticRequest{SourceID: "src", Impact: impact, Direction: north, Momentum: 2, InstigatorFollows: true})
		if plan.HardStop || len(plan.Moves) != 2 {
			t.Fatalf("unexpected plan %+v", plan)
		}
		// Голова применяется первой
		if plan.Moves[0].ActorID != "b" || plan.Moves[0].To != domain.Axial(4, 4) {
			t.Errorf("head move = %+v", plan.Moves[0])
		}
		if plan.Moves[1].ActorID != "a" || plan.Moves[1].To != domain.Axial(4, 6) {
			t.Errorf("tail move = %+v", plan.Moves[1])
		}
		if plan.InstigatorTo == nil || *plan.InstigatorTo != impact {
			t.Errorf("instigator should follow into %s", impact)
		}
		if s.Actor("b").Pos != domain.Axial(4, 6) {
			t.Error("resolver must not mutate the state")
		}
	})

	tests := []struct {
		name   string
		setup  func(s *domain.GameState)
		reason string
		at     domain.Point
	}{
		{"wall", func(s *domain.GameState) { setTile(s, domain.Axial(4, 5), domain.BaseWall) }, ReasonWall, domain.Axial(4, 5)},
		{"bystander", func(s *domain.GameState) { addActor(s, "x", domain.FactionEnemy, domain.Axial(4, 4)) }, ReasonOccupied, domain.Axial(4, 4)},
	}
	for _, tt := range tests {
		t.Run("hard stop on "+tt.name, func(t *testing.T) {
			s := newTestState()
			addActor(s, "src", domain.FactionPlayer, src)
			addActor(s, "a", domain.FactionEnemy, impact)
			addActor(s, "b", domain.FactionEnemy, domain.Axial(4, 6))
			tt.setup(s)

			plan := ResolveKinetic(s, KineticRequest{SourceID: "src", Impact: impact, Direction: north, Momentum: 2})
			if !plan.HardStop || plan.Reason != tt.reason || plan.BlockedAt != tt.at {
				t.Fatalf("unexpected plan %+v", plan)
			}
			if plan.Moves != nil || !slices.Equal(plan.Chain, []string{"a", "b"}) {
				t.Errorf("hard stop keeps the chain and drops the moves: %+v", plan)
			}
		})
	}

	t.Run("map edge is a wall", func(t *testing.T) {
		s := newTestState()
		addActor(s, "src", domain.FactionPlayer, domain.Axial(4, 2))
		addActor(s, "a", domain.FactionEnemy, domain.Axial(4, 1))
		plan := ResolveKinetic(s, KineticRequest{SourceID: "src", Impact: domain.Axial(4, 1), Direction: north, Momentum: 3})
		if !plan.HardStop || plan.Reason != ReasonWall {
			t.Errorf("unexpected plan %+v", plan)
		}
	})

	t.Run("hazard sinks and halts", func(t *testing.T) {
		s := newTestState()
		addActor(s, "src", domain.FactionPlayer, src)
		addActor(s, "a", domain.FactionEnemy, impact)
		setTile(s, domain.Axial(4, 6), domain.BaseLava)

		plan := ResolveKinetic(s, KineticRequest{SourceID: "src", Impact: impact, Direction: north, Momentum: 3})
		if plan.HardStop || len(plan.Moves) != 1 {
			t.Fatalf("unexpected plan %+v", plan)
		}
		m := plan.Moves[0]
		if !m.Sinks || m.To != domain.Axial(4, 6) || len(m.Path) != 1 {
			t.Errorf("unit should sink at the first hazard: %+v", m)
		}
	})

	t.Run("nothing to push", func(t *testing.T) {
		s := newTestState()
		addActor(s, "src", domain.FactionPlayer, src)
		plan := ResolveKinetic(s, KineticRequest{SourceID: "src", Impact: impact, Direction: north, Momentum: 1})
		if plan.HardStop || plan.Reason != ReasonNoChain || len(plan.Moves) != 0 {
			t.Errorf("unexpected plan %+v", plan)
		}
	})
}
