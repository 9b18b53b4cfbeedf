package domain

import "testing"

func newActor(hp int) *Actor {
	return &Actor{ID: "footman-1", Type: ActorTypeEnemy, FactionID: FactionEnemy, HP: hp, MaxHP: 3}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name     string
		hp       int
		damage   int
		wantHP   int
		wantDead bool
	}{
		{"scratch", 3, 1, 2, false},
		{"exact kill", 2, 2, 0, true},
		{"overkill clamps", 1, 5, 0, true},
		{"negative heals", 1, -1, 2, false},
		{"heal capped", 2, -4, 3, false},
		{"corpse stays dead", 0, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newActor(tt.hp)
			if dead := a.TakeDamage(tt.damage); dead != tt.wantDead {
				t.Errorf("died = %v, want %v", dead, tt.wantDead)
			}
			if a.HP != tt.wantHP {
				t.Errorf("HP = %d, want %d", a.HP, tt.wantHP)
			}
		})
	}
}

func TestHeal_Corpse(t *testing.T) {
	a := newActor(0)
	a.Heal(2)
	if a.HP != 0 || a.IsAlive() {
		t.Errorf("corpse healed to %d", a.HP)
	}
}

func TestTickStatuses(t *testing.T) {
	a := newActor(3)
	a.StatusEffects = []StatusEffect{
		{ID: StatusID(a.ID, StatusStunned), Type: StatusStunned, Duration: 1},
		{ID: StatusID(a.ID, StatusBurning), Type: StatusBurning, Duration: 2},
		{ID: StatusID(a.ID, StatusStunned), Type: StatusStunned, Duration: 3},
	}
	if len(a.StatusEffects) != 3 {
		t.Fatal("duplicate statuses must stack")
	}

	expired := a.TickStatuses()
	if len(expired) != 1 || expired[0].Duration != 0 || expired[0].ID != "footman-1-stunned" {
		t.Fatalf("expired = %+v", expired)
	}
	if len(a.StatusEffects) != 2 || !a.HasStatus(StatusStunned) {
		t.Fatalf("kept = %+v", a.StatusEffects)
	}

	a.TickStatuses()
	a.TickStatuses()
	if len(a.StatusEffects) != 0 || a.HasStatus(StatusBurning) {
		t.Errorf("statuses left: %+v", a.StatusEffects)
	}
}

func TestTickCooldowns(t *testing.T) {
	a := newActor(3)
	a.ActiveSkills = []SkillSlot{{ID: "FIREBALL", CurrentCooldown: 2}, {ID: "BASIC_ATTACK"}}
	a.TickCooldowns()
	a.TickCooldowns()
	a.TickCooldowns()
	if got := a.Skill("FIREBALL").CurrentCooldown; got != 0 {
		t.Errorf("cooldown = %d", got)
	}
	if a.Skill("BASIC_ATTACK").CurrentCooldown != 0 {
		t.Error("cooldown went negative")
	}
	if a.Skill("JUMP") != nil {
		t.Error("unknown skill slot found")
	}
}

func TestActor_Clone(t *testing.T) {
	a := newActor(3)
	a.StatusEffects = []StatusEffect{{Type: StatusMarked, Duration: 2}}
	a.ActiveSkills = []SkillSlot{{ID: "SHIELD_BASH", ActiveUpgrades: []string{"HEAVY_SHIELD"}}}

	c := a.Clone()
	c.StatusEffects[0].Duration = 9
	c.ActiveSkills[0].ActiveUpgrades[0] = "FOLLOW_THROUGH"
	if a.StatusEffects[0].Duration != 2 || a.ActiveSkills[0].ActiveUpgrades[0] != "HEAVY_SHIELD" {
		t.Error("clone shares memory with the original")
	}
}

func TestTile_AddEffectAndTrait(t *testing.T) {
	tile := NewTile(Axial(4, 5), BaseFloor)
	tile.AddEffect(TileEffect{ID: TileEffectFire, Duration: 2})
	tile.AddEffect(TileEffect{ID: TileEffectFire, Duration: 3})
	tile.AddEffect(TileEffect{ID: TileEffectFire, Duration: 1})
	if len(tile.Effects) != 1 || tile.Effects[0].Duration != 3 {
		t.Errorf("effects = %+v", tile.Effects)
	}
	tile.AddEffect(TileEffect{ID: TileEffectFire})
	if tile.Effects[0].Duration != 0 {
		t.Error("a permanent effect must replace a timed one")
	}

	tile.AddTrait(TraitSlippery)
	tile.AddTrait(TraitSlippery)
	if len(tile.Traits) != 1 {
		t.Errorf("traits = %v", tile.Traits)
	}
	if !tile.HasEffect(TileEffectFire) || tile.HasEffect(TileEffectSmoke) {
		t.Error("HasEffect mismatch")
	}
}

func TestTile_TickEffects(t *testing.T) {
	tile := NewTile(Axial(4, 5), BaseFloor)
	tile.AddEffect(TileEffect{ID: TileEffectFire, Duration: 2})
	tile.AddEffect(TileEffect{ID: TileEffectOil})

	if expired := tile.TickEffects(); len(expired) != 0 {
		t.Fatalf("nothing should expire yet: %+v", expired)
	}
	expired := tile.TickEffects()
	if len(expired) != 1 || expired[0].ID != TileEffectFire {
		t.Fatalf("expired = %+v", expired)
	}
	if tile.HasEffect(TileEffectFire) || !tile.HasEffect(TileEffectOil) {
		t.Errorf("effects = %+v", tile.Effects)
	}
}
