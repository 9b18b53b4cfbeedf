package actions

import (
	"hop-core/internal/engine/handlers"
	"hop-core/internal/skills"
	"hop-core/pkg/api"
	"slices"
)

// HandleSkill применяет умение актора к точке.
func HandleSkill(ctx handlers.Context, p api.SkillPayload) (handlers.Result, error) {
	// 1. Поиск умения в каталоге. Неизвестный ID - битая команда.
	def, err := ctx.Skills.Get(p.SkillID)
	if err != nil {
		return handlers.Result{}, err
	}

	// 2. Апгрейды: закрепленные за слотом + присланные в команде
	var upgrades []string
	if slot := ctx.Actor.Skill(p.SkillID); slot != nil {
		upgrades = append(upgrades, slot.ActiveUpgrades...)
	}
	upgrades = append(upgrades, p.Upgrades...)
	slices.Sort(upgrades)
	upgrades = slices.Compact(upgrades)

	// 3. Исполнение: валидация внутри умения
	out := def.Execute(&skills.Context{
		State:    ctx.State,
		Actor:    ctx.Actor,
		Target:   p.Target,
		Upgrades: upgrades,
		RNG:      ctx.RNG,
	})

	msgType := "COMBAT"
	if !out.ConsumesTurn {
		msgType = "ERROR"
	}
	return handlers.Result{SkillID: def.ID, Outcome: out, MsgType: msgType}, nil
}
