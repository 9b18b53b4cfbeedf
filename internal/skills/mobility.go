package skills

import (
	"fmt"
	"hop-core/internal/domain"
	"hop-core/internal/systems"
)

const (
	Dash domain.SkillID = "DASH"
	Jump domain.SkillID = "JUMP"

	UpgradeMomentumStrike  = "MOMENTUM_STRIKE"
	UpgradeStunningLanding = "STUNNING_LANDING"
)

func dash() *Definition {
	def := &Definition{
		ID:          Dash,
		Name:        "Dash",
		Description: "Rush along a straight line.",
		Slot:        SlotMovement,
		Base:        BaseVariables{Range: 4, MinRange: 1},
		Upgrades: map[string]Upgrade{
			UpgradeMomentumStrike: {
				ID:          UpgradeMomentumStrike,
				Name:        "Momentum Strike",
				Description: "Slam into the enemy past the destination, pushing it by the distance travelled.",
			},
		},
	}
	return targeted(def, checkDash, buildDash)
}

func checkDash(ctx *Context, vars BaseVariables, target domain.Point) string {
	if ctx.Actor.HasStatus(domain.StatusRooted) {
		return fmt.Sprintf("%s is rooted.", ctx.Actor.ID)
	}
	res := systems.ValidateTarget(ctx.State, ctx.Actor, target, systems.TargetRule{
		MinRange:     vars.MinRange,
		Range:        vars.Range,
		Axial:        true,
		NeedWalkable: true,
		NeedEmpty:    true,
	})
	if !res.Valid {
		return res.Message
	}

	path, _ := domain.AxialLine(ctx.Actor.Pos, target)
	for _, p := range path {
		if !systems.IsWalkable(ctx.State, p) {
			return "The way is blocked."
		}
		if a := ctx.State.ActorAt(p); a != nil && a.ID != ctx.Actor.ID {
			return "The way is blocked."
		}
	}
	return ""
}

func buildDash(ctx *Context, vars BaseVariables, target domain.Point) Result {
	path, _ := domain.AxialLine(ctx.Actor.Pos, target)
	effs := []domain.Effect{
		domain.Juice{Name: "dash", Target: target, Path: path},
		domain.Displacement{
			Target:       domain.ByID(ctx.Actor.ID),
			Destination:  target,
			Path:         path,
			SimulatePath: true,
		},
	}

	if ctx.Has(UpgradeMomentumStrike) {
		dir, _ := domain.DirectionIndex(ctx.Actor.Pos, target)
		impact := target.Neighbor(dir)
		if victim := ctx.State.ActorAt(impact); victim != nil && !victim.IsAllyOf(ctx.Actor) {
			effs = append(effs, domain.KineticPush{
				SourceID:  ctx.Actor.ID,
				Impact:    impact,
				Direction: dir,
				Momentum:  len(path),
				Anchor:    &target,
			})
		}
	}
	return Result{Effects: effs}
}

func jump() *Definition {
	def := &Definition{
		ID:          Jump,
		Name:        "Jump",
		Description: "Leap over walls and bodies onto an empty tile.",
		Slot:        SlotMovement,
		Base:        BaseVariables{Range: 2, MinRange: 1, Cooldown: 2},
		Upgrades: map[string]Upgrade{
			UpgradeStunningLanding: {
				ID:          UpgradeStunningLanding,
				Name:        "Stunning Landing",
				Description: "Enemies next to the landing tile are stunned.",
			},
		},
	}
	return targeted(def, checkJump, buildJump)
}

func checkJump(ctx *Context, vars BaseVariables, target domain.Point) string {
	if ctx.Actor.HasStatus(domain.StatusRooted) {
		return fmt.Sprintf("%s is rooted.", ctx.Actor.ID)
	}
	return systems.ValidateTarget(ctx.State, ctx.Actor, target, systems.TargetRule{
		MinRange:     vars.MinRange,
		Range:        vars.Range,
		NeedWalkable: true,
		NeedEmpty:    true,
	}).Message
}

func buildJump(ctx *Context, vars BaseVariables, target domain.Point) Result {
	effs := []domain.Effect{
		domain.Juice{Name: "jump", Target: target},
		domain.Displacement{
			Target:          domain.ByID(ctx.Actor.ID),
			Destination:     target,
			IgnoreWalls:     true,
			IgnoreCollision: true,
		},
	}
	if ctx.Has(UpgradeStunningLanding) {
		for _, n := range target.Neighbors() {
			victim := ctx.State.ActorAt(n)
			if victim == nil || victim.ID == ctx.Actor.ID || victim.IsAllyOf(ctx.Actor) {
				continue
			}
			effs = append(effs, domain.ApplyStatus{
				Target:   domain.ByID(victim.ID),
				Status:   domain.StatusStunned,
				Duration: 1,
			})
		}
	}
	return Result{Effects: effs}
}
