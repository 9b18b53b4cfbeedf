package skills

import (
	"fmt"
	"hop-core/internal/domain"
	"hop-core/internal/systems"
)

const (
	ShieldBash domain.SkillID = "SHIELD_BASH"

	UpgradeHeavyShield   = "HEAVY_SHIELD"
	UpgradeFollowThrough = "FOLLOW_THROUGH"
)

func shieldBash() *Definition {
	def := &Definition{
		ID:          ShieldBash,
		Name:        "Shield Bash",
		Description: "Shove an adjacent unit and everyone lined up behind it.",
		Slot:        SlotDefensive,
		Base:        BaseVariables{Range: 1, MinRange: 1, Cooldown: 1, Momentum: 1},
		Upgrades: map[string]Upgrade{
			UpgradeHeavyShield: {ID: UpgradeHeavyShield, Name: "Heavy Shield", Description: "+1 momentum.", Modify: addMomentum(1)},
			UpgradeFollowThrough: {
				ID:          UpgradeFollowThrough,
				Name:        "Follow Through",
				Description: "Step into the tile the target vacated.",
			},
		},
	}
	return targeted(def, checkBash, buildBash)
}

func checkBash(ctx *Context, vars BaseVariables, target domain.Point) string {
	return systems.ValidateTarget(ctx.State, ctx.Actor, target, systems.TargetRule{
		MinRange:  vars.MinRange,
		Range:     vars.Range,
		NeedActor: true,
	}).Message
}

func buildBash(ctx *Context, vars BaseVariables, target domain.Point) Result {
	dir, _ := domain.DirectionIndex(ctx.Actor.Pos, target)
	victim := ctx.State.ActorAt(target)
	return Result{
		Effects: []domain.Effect{
			domain.Juice{Name: "bash", Target: target},
			domain.KineticPush{
				SourceID:          ctx.Actor.ID,
				Impact:            target,
				Direction:         dir,
				Momentum:          vars.Momentum,
				InstigatorFollows: ctx.Has(UpgradeFollowThrough),
			},
		},
		Messages: []string{fmt.Sprintf("%s bashes %s.", ctx.Actor.ID, victim.ID)},
	}
}
