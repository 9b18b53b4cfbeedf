package effects

import (
	"hop-core/internal/domain"
	"hop-core/pkg/utils"
	"slices"
	"strings"
	"testing"
)

func TestApply_DoesNotMutateInput(t *testing.T) {
	s := newState()
	spawn(s, "a", domain.FactionEnemy, domain.Axial(4, 5))

	res := Apply(s, []domain.Effect{
		domain.Damage{Target: domain.ByID("a"), Amount: 1},
		nil,
		domain.Message{Text: "hello"},
	})
	if s.Actor("a").HP != 2 {
		t.Error("input state was mutated")
	}
	if res.State.Actor("a").HP != 1 {
		t.Errorf("HP = %d", res.State.Actor("a").HP)
	}
	if !slices.Equal(statuses(res), []StepStatus{StepApplied, StepNoOp, StepApplied}) {
		t.Errorf("steps = %v", statuses(res))
	}
	if res.Steps[1].Kind != domain.EffectUnknown || !slices.Equal(res.Messages, []string{"hello"}) {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestDisplacement(t *testing.T) {
	start := domain.Axial(4, 8)
	tests := []struct {
		name    string
		setup   func(s *domain.GameState)
		eff     domain.Displacement
		want    StepStatus
		wantPos domain.Point
		stunned bool
	}{
		{
			name:    "plain move",
			eff:     domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 6)},
			want:    StepApplied,
			wantPos: domain.Axial(4, 6),
		},
		{
			name:    "wall at destination stuns",
			setup:   func(s *domain.GameState) { place(s, domain.Axial(4, 7), domain.BaseWall) },
			eff:     domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 7), Forced: true},
			want:    StepBlocked,
			wantPos: start,
			stunned: true,
		},
		{
			name:    "wall on the path stuns",
			setup:   func(s *domain.GameState) { place(s, domain.Axial(4, 7), domain.BaseWall) },
			eff:     domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 6), Path: []domain.Point{domain.Axial(4, 7)}},
			want:    StepBlocked,
			wantPos: start,
			stunned: true,
		},
		{
			name:    "jump clears walls",
			setup:   func(s *domain.GameState) { place(s, domain.Axial(4, 7), domain.BaseWall) },
			eff:     domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 6), Path: []domain.Point{domain.Axial(4, 7)}, IgnoreWalls: true},
			want:    StepApplied,
			wantPos: domain.Axial(4, 6),
		},
		{
			name:    "occupied destination ignores IgnoreCollision",
			setup:   func(s *domain.GameState) { spawn(s, "b", domain.FactionEnemy, domain.Axial(4, 6)) },
			eff:     domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 6), IgnoreCollision: true},
			want:    StepBlocked,
			wantPos: start,
		},
		{
			name:    "actor on the path",
			setup:   func(s *domain.GameState) { spawn(s, "b", domain.FactionEnemy, domain.Axial(4, 7)) },
			eff:     domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 6), Path: []domain.Point{domain.Axial(4, 7)}},
			want:    StepBlocked,
			wantPos: start,
		},
		{
			name:    "ally on the path is passed",
			setup:   func(s *domain.GameState) { spawn(s, "b", domain.FactionPlayer, domain.Axial(4, 7)) },
			eff:     domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 6), Path: []domain.Point{domain.Axial(4, 7)}},
			want:    StepApplied,
			wantPos: domain.Axial(4, 6),
		},
		{
			name:    "forced move does not pass allies",
			setup:   func(s *domain.GameState) { spawn(s, "b", domain.FactionPlayer, domain.Axial(4, 7)) },
			eff:     domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 6), Path: []domain.Point{domain.Axial(4, 7)}, Forced: true},
			want:    StepBlocked,
			wantPos: start,
		},
		{
			name:    "broken coordinate",
			eff:     domain.Displacement{Target: domain.ByID("a"), Destination: domain.Point{Q: 1, R: 1, S: 1}},
			want:    StepNoOp,
			wantPos: start,
		},
		{
			name:    "missing actor",
			eff:     domain.Displacement{Target: domain.ByID("ghost"), Destination: domain.Axial(4, 6)},
			want:    StepNoOp,
			wantPos: start,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState()
			spawn(s, "a", domain.FactionPlayer, start)
			if tt.setup != nil {
				tt.setup(s)
			}
			res := Apply(s, []domain.Effect{tt.eff})
			if res.Steps[0].Status != tt.want {
				t.Errorf("status = %v, want %v (%s)", res.Steps[0].Status, tt.want, res.Steps[0].Note)
			}
			a := res.State.Actor("a")
			if a.Pos != tt.wantPos {
				t.Errorf("pos = %s, want %s", a.Pos, tt.wantPos)
			}
			if a.HasStatus(domain.StatusStunned) != tt.stunned {
				t.Errorf("stunned = %v, want %v", a.HasStatus(domain.StatusStunned), tt.stunned)
			}
		})
	}
}

func TestDisplacement_LavaInterruptsChain(t *testing.T) {
	s := newState()
	spawn(s, domain.PlayerID, domain.FactionPlayer, domain.Axial(4, 8))
	place(s, domain.Axial(4, 6), domain.BaseLava)

	res := Apply(s, []domain.Effect{
		domain.Displacement{
			Target:       domain.ByID(domain.PlayerID),
			Destination:  domain.Axial(4, 5),
			Path:         []domain.Point{domain.Axial(4, 7), domain.Axial(4, 6), domain.Axial(4, 5)},
			SimulatePath: true,
		},
		domain.Damage{Target: domain.ByID(domain.PlayerID), Amount: 1},
		domain.ApplyStatus{Target: domain.ByID(domain.PlayerID), Status: domain.StatusMarked, Duration: 1},
	})

	if !slices.Equal(statuses(res), []StepStatus{StepInterrupted, StepInterrupted, StepInterrupted}) {
		t.Errorf("steps = %v", statuses(res))
	}
	if !res.Interrupted || !slices.Equal(res.InterruptedActors, []string{domain.PlayerID}) {
		t.Errorf("interrupted = %v %v", res.Interrupted, res.InterruptedActors)
	}
	if res.State.Player() != nil {
		t.Fatal("player should be removed")
	}
	want := []domain.PendingStatus{
		{Kind: domain.PendingHazardSink, ActorID: domain.PlayerID, At: domain.Axial(4, 6)},
		{Kind: domain.PendingPlayerLost, ActorID: domain.PlayerID, At: domain.Axial(4, 6)},
	}
	if !slices.Equal(res.State.Pending, want) {
		t.Errorf("pending = %+v", res.State.Pending)
	}
}

func TestDisplacement_FireScorches(t *testing.T) {
	s := newState()
	a := spawn(s, "a", domain.FactionEnemy, domain.Axial(4, 8))
	a.ActiveSkills = []domain.SkillSlot{{ID: "DASH"}}
	tile := domain.NewTile(domain.Axial(4, 7), domain.BaseFloor)
	tile.AddEffect(domain.TileEffect{ID: domain.TileEffectFire, Duration: 2})
	_ = s.SetTile(tile)

	res := Apply(s, []domain.Effect{
		domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 6), Path: []domain.Point{domain.Axial(4, 7)}, SimulatePath: true},
		domain.Damage{Target: domain.ByID("a"), Amount: 1},
		domain.ModifyCooldown{ActorID: "a", SkillID: "DASH", Amount: 2, SetExact: true},
	})
	if !slices.Equal(statuses(res), []StepStatus{StepInterrupted, StepInterrupted, StepApplied}) {
		t.Errorf("steps = %v", statuses(res))
	}
	got := res.State.Actor("a")
	if got == nil || got.HP != 1 || got.Pos != domain.Axial(4, 7) {
		t.Fatalf("actor = %+v", got)
	}
	if !res.Interrupted || !slices.Equal(res.InterruptedActors, []string{"a"}) {
		t.Errorf("interrupted = %v %v", res.Interrupted, res.InterruptedActors)
	}
	// Цена умения списывается и с прерванного актора
	if cd := got.Skill("DASH").CurrentCooldown; cd != 2 {
		t.Errorf("cooldown = %d, want 2", cd)
	}
	if len(res.Messages) != 1 || !strings.Contains(res.Messages[0], "scorched") {
		t.Errorf("messages = %v", res.Messages)
	}
}

func TestDisplacement_PitIsLethal(t *testing.T) {
	s := newState()
	a := spawn(s, "a", domain.FactionEnemy, domain.Axial(3, 6))
	a.HP, a.MaxHP = 3, 3
	place(s, domain.Axial(3, 5), domain.BasePit)

	res := Apply(s, []domain.Effect{
		domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(3, 5)},
		domain.ApplyStatus{Target: domain.ByID("a"), Status: domain.StatusMarked, Duration: 2},
		domain.ModifyCooldown{ActorID: "a", SkillID: "DASH", Amount: 2},
	})
	if !slices.Equal(statuses(res), []StepStatus{StepInterrupted, StepInterrupted, StepInterrupted}) {
		t.Errorf("steps = %v", statuses(res))
	}
	if res.State.Actor("a") != nil {
		t.Fatal("actor should fall into the pit")
	}
	if len(res.State.Pending) != 1 || res.State.Pending[0].Kind != domain.PendingHazardSink {
		t.Errorf("pending = %+v", res.State.Pending)
	}
}

func TestDisplacement_ForcedSimulatesPath(t *testing.T) {
	s := newState()
	spawn(s, "a", domain.FactionEnemy, domain.Axial(3, 6))
	place(s, domain.Axial(3, 5), domain.BaseLava)

	res := Apply(s, []domain.Effect{
		domain.Displacement{
			Target:      domain.ByID("a"),
			Destination: domain.Axial(3, 4),
			Path:        []domain.Point{domain.Axial(3, 5), domain.Axial(3, 4)},
			Forced:      true,
		},
		domain.Damage{Target: domain.ByID("a"), Amount: 1},
	})
	if !slices.Equal(statuses(res), []StepStatus{StepInterrupted, StepInterrupted}) {
		t.Errorf("steps = %v", statuses(res))
	}
	if res.State.Actor("a") != nil {
		t.Fatal("a forced move across lava must sink the actor")
	}
	if len(res.State.Pending) != 1 || res.State.Pending[0].At != domain.Axial(3, 5) {
		t.Errorf("pending = %+v", res.State.Pending)
	}
}

func TestDamage_TargetResolution(t *testing.T) {
	s := newState()
	spawn(s, "a", domain.FactionEnemy, domain.Axial(4, 8))

	res := Apply(s, []domain.Effect{
		domain.Displacement{Target: domain.ByID("a"), Destination: domain.Axial(4, 6)},
		// Точка разрешается после сдвига
		domain.Damage{Target: domain.AtPoint(domain.Axial(4, 8)), Amount: 1},
		domain.Damage{Target: domain.AtPoint(domain.Axial(4, 6)), Amount: 2},
		domain.Damage{Target: domain.ByID("a"), Amount: 1},
	})
	if !slices.Equal(statuses(res), []StepStatus{StepApplied, StepNoOp, StepApplied, StepNoOp}) {
		t.Errorf("steps = %v", statuses(res))
	}
	if res.State.Actor("a") != nil || len(res.State.Pending) != 1 || res.State.Pending[0].Kind != domain.PendingDeath {
		t.Errorf("dead actor must be removed and queued: %+v", res.State.Pending)
	}
	if res.Interrupted {
		t.Error("an ordinary death is not an interruption")
	}
}

func TestApplyStatus_Stacks(t *testing.T) {
	s := newState()
	spawn(s, "a", domain.FactionEnemy, domain.Axial(4, 5))
	res := Apply(s, []domain.Effect{
		domain.ApplyStatus{Target: domain.ByID("a"), Status: domain.StatusStunned, Duration: 1},
		domain.ApplyStatus{Target: domain.ByID("a"), Status: domain.StatusStunned, Duration: 2},
		domain.ApplyStatus{Target: domain.ByID("a")},
	})
	a := res.State.Actor("a")
	if len(a.StatusEffects) != 2 || !a.HasStatus(domain.StatusStunned) {
		t.Errorf("statuses = %+v", a.StatusEffects)
	}
	if a.StatusEffects[0].ID != "a-stunned" {
		t.Errorf("id = %q", a.StatusEffects[0].ID)
	}
	if res.Steps[2].Status != StepNoOp {
		t.Error("empty status must be a no-op")
	}
}

func TestSpawnActor(t *testing.T) {
	s := newState()
	spawn(s, "a", domain.FactionEnemy, domain.Axial(4, 5))
	place(s, domain.Axial(3, 6), domain.BaseLava)

	bomb := domain.Actor{
		Subtype: "BOMB",
		Pos:     domain.Axial(5, 5),
		HP:      1,
		StatusEffects: []domain.StatusEffect{
			{ID: "placeholder", Type: domain.StatusFuse, Duration: domain.BombFuse},
		},
	}
	occupied := bomb
	occupied.Pos = domain.Axial(4, 5)
	hazard := bomb
	hazard.Pos = domain.Axial(3, 6)

	res := Apply(s, []domain.Effect{
		domain.SpawnActor{Actor: bomb},
		domain.SpawnActor{Actor: occupied},
		domain.SpawnActor{Actor: hazard},
	})
	if !slices.Equal(statuses(res), []StepStatus{StepApplied, StepNoOp, StepNoOp}) {
		t.Fatalf("steps = %v", statuses(res))
	}

	wantID := utils.DeterministicID(7, "bomb-", 1)
	got := res.State.ActorAt(domain.Axial(5, 5))
	if got == nil || got.ID != wantID {
		t.Fatalf("spawned = %+v, want id %s", got, wantID)
	}
	if got.StatusEffects[0].ID != domain.StatusID(wantID, domain.StatusFuse) {
		t.Errorf("status id = %q", got.StatusEffects[0].ID)
	}
	if got.Type != domain.ActorTypeObject || got.FactionID != domain.FactionNeutral || got.MaxHP != 1 {
		t.Errorf("defaults = %+v", got)
	}
	if res.State.SpawnCounter != 1 {
		t.Errorf("counter = %d", res.State.SpawnCounter)
	}
}

func TestSpawnItem_SpearRoundTrip(t *testing.T) {
	s := newState()
	thrower := spawn(s, domain.PlayerID, domain.FactionPlayer, domain.Axial(4, 8))
	thrower.Carry = &domain.CarryComponent{HasSpear: true}

	res := Apply(s, []domain.Effect{
		domain.SpawnItem{ItemType: domain.ItemSpear, Position: domain.Axial(4, 5), FromActorID: domain.PlayerID},
	})
	p := res.State.Player()
	if p.Carry.HasSpear || len(res.State.Items) != 1 {
		t.Fatalf("spear should leave the hands: carry=%v items=%d", p.Carry.HasSpear, len(res.State.Items))
	}

	res = Apply(res.State, []domain.Effect{
		domain.Displacement{
			Target:      domain.ByID(domain.PlayerID),
			Destination: domain.Axial(4, 5),
			Path:        []domain.Point{domain.Axial(4, 7), domain.Axial(4, 6), domain.Axial(4, 5)},
		},
	})
	p = res.State.Player()
	if !p.Carry.HasSpear || len(res.State.Items) != 0 {
		t.Errorf("spear should be picked up: carry=%v items=%d", p.Carry.HasSpear, len(res.State.Items))
	}
	if len(res.Messages) != 1 || !strings.Contains(res.Messages[0], "picks up") {
		t.Errorf("messages = %v", res.Messages)
	}
}

func TestKineticPush_HardStop(t *testing.T) {
	s := newState()
	spawn(s, "src", domain.FactionPlayer, domain.Axial(4, 8))
	spawn(s, "a", domain.FactionEnemy, domain.Axial(4, 7))
	place(s, domain.Axial(4, 6), domain.BaseWall)

	res := Apply(s, []domain.Effect{
		domain.KineticPush{SourceID: "src", Impact: domain.Axial(4, 7), Direction: 5, Momentum: 2},
	})
	if res.Steps[0].Status != StepBlocked {
		t.Fatalf("status = %v", res.Steps[0].Status)
	}
	a := res.State.Actor("a")
	if a.Pos != domain.Axial(4, 7) || !a.HasStatus(domain.StatusStunned) {
		t.Errorf("chain should stay and be stunned: %+v", a)
	}
	if len(res.Juice) != 1 || res.Juice[0].Name != "hard_stop" {
		t.Errorf("juice = %+v", res.Juice)
	}
}

func TestKineticPush_FollowThrough(t *testing.T) {
	s := newState()
	spawn(s, "src", domain.FactionPlayer, domain.Axial(4, 8))
	spawn(s, "a", domain.FactionEnemy, domain.Axial(4, 7))

	res := Apply(s, []domain.Effect{
		domain.KineticPush{SourceID: "src", Impact: domain.Axial(4, 7), Direction: 5, Momentum: 2, InstigatorFollows: true},
	})
	if res.Steps[0].Status != StepApplied {
		t.Fatalf("status = %v (%s)", res.Steps[0].Status, res.Steps[0].Note)
	}
	if res.State.Actor("a").Pos != domain.Axial(4, 5) || res.State.Actor("src").Pos != domain.Axial(4, 7) {
		t.Errorf("positions: a=%s src=%s", res.State.Actor("a").Pos, res.State.Actor("src").Pos)
	}
}

func TestKineticPush_AnchorNotReached(t *testing.T) {
	s := newState()
	spawn(s, "src", domain.FactionPlayer, domain.Axial(4, 8))
	spawn(s, "e", domain.FactionEnemy, domain.Axial(4, 5))
	anchor := domain.Axial(4, 6)

	res := Apply(s, []domain.Effect{domain.KineticPush{
		SourceID:  "src",
		Impact:    domain.Axial(4, 5),
		Direction: 5,
		Momentum:  2,
		Anchor:    &anchor,
	}})
	if res.Steps[0].Status != StepNoOp {
		t.Errorf("status = %v (%s)", res.Steps[0].Status, res.Steps[0].Note)
	}
	if pos := res.State.Actor("e").Pos; pos != domain.Axial(4, 5) {
		t.Errorf("enemy moved to %s", pos)
	}
}

func TestModifyCooldown(t *testing.T) {
	s := newState()
	a := spawn(s, "a", domain.FactionEnemy, domain.Axial(4, 5))
	a.ActiveSkills = []domain.SkillSlot{{ID: "FIREBALL", CurrentCooldown: 1}}

	res := Apply(s, []domain.Effect{
		domain.ModifyCooldown{ActorID: "a", SkillID: "FIREBALL", Amount: -3},
		domain.ModifyCooldown{ActorID: "a", SkillID: "FIREBALL", Amount: 2, SetExact: false},
		domain.ModifyCooldown{ActorID: "a", SkillID: "JUMP", Amount: 2},
	})
	if got := res.State.Actor("a").Skill("FIREBALL").CurrentCooldown; got != 2 {
		t.Errorf("cooldown = %d", got)
	}
	if res.Steps[2].Status != StepNoOp {
		t.Error("missing skill must be a no-op")
	}

	res = Apply(res.State, []domain.Effect{domain.ModifyCooldown{ActorID: "a", SkillID: "FIREBALL", Amount: 5, SetExact: true}})
	if got := res.State.Actor("a").Skill("FIREBALL").CurrentCooldown; got != 5 {
		t.Errorf("exact cooldown = %d", got)
	}
}

func TestPlaceTileEffect(t *testing.T) {
	s := newState()
	res := Apply(s, []domain.Effect{
		domain.PlaceTileEffect{Target: domain.Axial(4, 5), Effect: domain.TileEffectFire, Duration: 3},
		domain.PlaceTileEffect{Target: domain.Axial(0, 0), Effect: domain.TileEffectFire, Duration: 3},
	})
	if !slices.Equal(statuses(res), []StepStatus{StepApplied, StepNoOp}) {
		t.Errorf("steps = %v", statuses(res))
	}
	if tile := res.State.Tile(domain.Axial(4, 5)); tile == nil || !tile.HasEffect(domain.TileEffectFire) {
		t.Error("fire not placed")
	}
	if s.Tile(domain.Axial(4, 5)) != nil {
		t.Error("input state gained a tile")
	}
}
