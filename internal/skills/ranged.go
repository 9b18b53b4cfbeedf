package skills

import (
	"fmt"
	"hop-core/internal/domain"
	"hop-core/internal/systems"
)

const (
	SpearThrow domain.SkillID = "SPEAR_THROW"
	Fireball   domain.SkillID = "FIREBALL"
	BombToss   domain.SkillID = "BOMB_TOSS"

	UpgradeScatter = "SCATTER"

	// FireDuration - сколько ходов горит клетка после огненного шара.
	FireDuration = 3
	// BombSubtype - подтип актора-бомбы.
	BombSubtype = "BOMB"
)

func spearThrow() *Definition {
	def := &Definition{
		ID:          SpearThrow,
		Name:        "Spear Throw",
		Description: "Throw the spear along a line. Walk over it to pick it up.",
		Slot:        SlotOffensive,
		Base:        BaseVariables{Range: 3, MinRange: 1, Damage: 2},
	}
	return targeted(def, checkSpear, buildSpear)
}

func checkSpear(ctx *Context, vars BaseVariables, target domain.Point) string {
	if ctx.Actor.Carry == nil || !ctx.Actor.Carry.HasSpear {
		return "You have no spear to throw."
	}
	res := systems.ValidateTarget(ctx.State, ctx.Actor, target, systems.TargetRule{
		MinRange:     vars.MinRange,
		Range:        vars.Range,
		Axial:        true,
		NeedLOS:      true,
		NeedWalkable: true,
	})
	if !res.Valid {
		return res.Message
	}
	if spearFlight(ctx, target).HitWall {
		return "The way is blocked."
	}
	return ""
}

// spearFlight - полет копья до цели; первый актор на пути его останавливает.
func spearFlight(ctx *Context, target domain.Point) systems.RayHit {
	dir, _ := domain.DirectionIndex(ctx.Actor.Pos, target)
	return systems.CastAxialRay(ctx.State, ctx.Actor.Pos, dir, systems.RayOptions{
		MaxDistance:   domain.Distance(ctx.Actor.Pos, target),
		StopAtActors:  true,
		IgnoreActorID: ctx.Actor.ID,
	})
}

func buildSpear(ctx *Context, vars BaseVariables, target domain.Point) Result {
	hit := spearFlight(ctx, target)
	landing := target
	var effs []domain.Effect
	var msgs []string

	path := hit.Points
	if hit.HitActor != nil {
		landing = hit.BlockedAt
		path = append(path, landing)
	}
	effs = append(effs, domain.Juice{Name: "spear", Target: landing, Path: path})

	if hit.HitActor != nil {
		effs = append(effs, domain.Damage{
			Target: domain.ByID(hit.HitActor.ID),
			Amount: vars.Damage,
			Reason: string(SpearThrow),
		})
		msgs = append(msgs, fmt.Sprintf("%s skewers %s.", ctx.Actor.ID, hit.HitActor.ID))
	}
	effs = append(effs, domain.SpawnItem{
		ItemType:    domain.ItemSpear,
		Position:    landing,
		FromActorID: ctx.Actor.ID,
	})
	return Result{Effects: effs, Messages: msgs}
}

func fireball() *Definition {
	def := &Definition{
		ID:          Fireball,
		Name:        "Fireball",
		Description: "Burst of flame that scorches the target and its neighbours.",
		Slot:        SlotOffensive,
		// MinRange 2: взрыв никогда не задевает заклинателя.
		Base: BaseVariables{Range: 3, MinRange: 2, Cooldown: 2, Damage: 1},
	}
	return targeted(def, checkFireball, buildFireball)
}

func checkFireball(ctx *Context, vars BaseVariables, target domain.Point) string {
	return systems.ValidateTarget(ctx.State, ctx.Actor, target, systems.TargetRule{
		MinRange:     vars.MinRange,
		Range:        vars.Range,
		NeedLOS:      true,
		NeedWalkable: true,
	}).Message
}

func buildFireball(ctx *Context, vars BaseVariables, target domain.Point) Result {
	ring := target.Neighbors()
	area := append([]domain.Point{target}, ring[:]...)
	effs := []domain.Effect{domain.Juice{Name: "explosion", Target: target}}

	for _, p := range area {
		if !systems.IsWalkable(ctx.State, p) {
			continue
		}
		effs = append(effs, domain.Damage{Target: domain.AtPoint(p), Amount: vars.Damage, Reason: string(Fireball)})
	}
	for _, p := range area {
		if !systems.IsWalkable(ctx.State, p) {
			continue
		}
		effs = append(effs, domain.PlaceTileEffect{Target: p, Effect: domain.TileEffectFire, Duration: FireDuration})
	}
	return Result{
		Effects:  effs,
		Messages: []string{fmt.Sprintf("%s hurls a fireball at %s.", ctx.Actor.ID, target)},
	}
}

func bombToss() *Definition {
	def := &Definition{
		ID:          BombToss,
		Name:        "Bomb Toss",
		Description: "Lob a bomb onto an empty tile. It explodes when the fuse runs out.",
		Slot:        SlotUtility,
		Base:        BaseVariables{Range: 3, MinRange: 1, Cooldown: 3},
		Upgrades: map[string]Upgrade{
			UpgradeScatter: {
				ID:          UpgradeScatter,
				Name:        "Scatter",
				Description: "The bomb bounces onto a random free tile around the target.",
			},
		},
	}
	return targeted(def, checkBomb, buildBomb)
}

// bombLandable - пустая, проходимая и безопасная клетка.
func bombLandable(state *domain.GameState, p domain.Point) bool {
	return systems.IsPassable(state, p) && state.ActorAt(p) == nil
}

func checkBomb(ctx *Context, vars BaseVariables, target domain.Point) string {
	res := systems.ValidateTarget(ctx.State, ctx.Actor, target, systems.TargetRule{
		MinRange:     vars.MinRange,
		Range:        vars.Range,
		NeedWalkable: true,
		NeedEmpty:    true,
	})
	if !res.Valid {
		return res.Message
	}
	if systems.IsHazardous(ctx.State, target) {
		return "The bomb would be lost there."
	}
	return ""
}

func buildBomb(ctx *Context, vars BaseVariables, target domain.Point) Result {
	landing := target
	if ctx.Has(UpgradeScatter) {
		candidates := []domain.Point{target}
		for _, n := range target.Neighbors() {
			if bombLandable(ctx.State, n) && n != ctx.Actor.Pos {
				candidates = append(candidates, n)
			}
		}
		if p, ok := systems.PickDeterministic(ctx.RNG, candidates); ok {
			landing = p
		}
	}

	return Result{
		Effects: []domain.Effect{
			domain.Juice{Name: "toss", Target: landing},
			domain.SpawnActor{Actor: domain.Actor{
				Type:      domain.ActorTypeObject,
				Subtype:   BombSubtype,
				FactionID: domain.FactionNeutral,
				Pos:       landing,
				HP:        1,
				MaxHP:     1,
			}},
			domain.ApplyStatus{Target: domain.AtPoint(landing), Status: domain.StatusFuse, Duration: domain.BombFuse},
		},
		Messages: []string{fmt.Sprintf("%s tosses a bomb.", ctx.Actor.ID)},
	}
}
