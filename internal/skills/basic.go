package skills

import (
	"fmt"
	"hop-core/internal/domain"
	"hop-core/internal/systems"
)

const (
	BasicMove   domain.SkillID = "BASIC_MOVE"
	BasicAttack domain.SkillID = "BASIC_ATTACK"

	UpgradeFleetFoot  = "FLEET_FOOT"
	UpgradeHeavyHands = "HEAVY_HANDS"
)

func basicMove() *Definition {
	def := &Definition{
		ID:          BasicMove,
		Name:        "Move",
		Description: "Walk to a reachable tile.",
		Slot:        SlotMovement,
		Base:        BaseVariables{Range: 1},
		Upgrades: map[string]Upgrade{
			UpgradeFleetFoot: {ID: UpgradeFleetFoot, Name: "Fleet Foot", Description: "+1 move range.", Modify: addRange(1)},
		},
	}
	return targeted(def, checkMove, buildMove)
}

func checkMove(ctx *Context, vars BaseVariables, target domain.Point) string {
	if ctx.Actor.HasStatus(domain.StatusRooted) {
		return fmt.Sprintf("%s is rooted.", ctx.Actor.ID)
	}
	if !ctx.State.Grid.InBounds(target) {
		return "Target is out of bounds."
	}
	if d := domain.Distance(ctx.Actor.Pos, target); d == 0 || d > vars.Range {
		return "Target is out of range."
	}
	reach := systems.ReachableTiles(ctx.State, ctx.Actor, vars.Range, systems.ReachOptions{})
	if _, ok := systems.FindReachable(reach, target); !ok {
		return "You cannot get there."
	}
	return ""
}

func buildMove(ctx *Context, vars BaseVariables, target domain.Point) Result {
	reach := systems.ReachableTiles(ctx.State, ctx.Actor, vars.Range, systems.ReachOptions{})
	r, _ := systems.FindReachable(reach, target)
	return Result{Effects: []domain.Effect{
		domain.Displacement{
			Target:       domain.ByID(ctx.Actor.ID),
			Destination:  target,
			Path:         r.Path,
			SimulatePath: true,
		},
		domain.Juice{Name: "walk", Target: target, Path: r.Path},
	}}
}

func basicAttack() *Definition {
	def := &Definition{
		ID:          BasicAttack,
		Name:        "Attack",
		Description: "Strike an adjacent enemy.",
		Slot:        SlotOffensive,
		Base:        BaseVariables{Range: 1, MinRange: 1, Damage: 1},
		Upgrades: map[string]Upgrade{
			UpgradeHeavyHands: {ID: UpgradeHeavyHands, Name: "Heavy Hands", Description: "+1 damage.", Modify: addDamage(1)},
		},
	}
	return targeted(def, checkAttack, buildAttack)
}

func attackRule(vars BaseVariables) systems.TargetRule {
	return systems.TargetRule{
		MinRange:  vars.MinRange,
		Range:     vars.Range,
		NeedActor: true,
		NeedEnemy: true,
	}
}

func checkAttack(ctx *Context, vars BaseVariables, target domain.Point) string {
	return systems.ValidateTarget(ctx.State, ctx.Actor, target, attackRule(vars)).Message
}

func buildAttack(ctx *Context, vars BaseVariables, target domain.Point) Result {
	victim := ctx.State.ActorAt(target)
	return Result{
		Effects: []domain.Effect{
			domain.Juice{Name: "strike", Target: target},
			domain.Damage{Target: domain.ByID(victim.ID), Amount: vars.Damage, Reason: string(BasicAttack)},
		},
		Messages: []string{fmt.Sprintf("%s attacked %s.", ctx.Actor.ID, victim.ID)},
	}
}
