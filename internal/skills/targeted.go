package skills

import (
	"fmt"
	"hop-core/internal/domain"
)

// checkFunc - единый валидатор умения. Возвращает "" для допустимой цели.
// Не трогает RNG и не меняет состояние: его вызывают и Execute, и ValidTargets.
type checkFunc func(ctx *Context, vars BaseVariables, target domain.Point) string

// buildFunc строит эффекты для уже проверенной цели.
type buildFunc func(ctx *Context, vars BaseVariables, target domain.Point) Result

// targeted связывает валидатор и построитель эффектов в Execute и ValidTargets.
// Обе функции проходят через один и тот же check, поэтому не расходятся.
func targeted(def *Definition, check checkFunc, build buildFunc) *Definition {
	def.RequiresTarget = true

	def.Execute = func(ctx *Context) Result {
		// 1. Цель обязательна
		if ctx.Target == nil {
			return Reject(fmt.Sprintf("%s requires a target.", def.Name))
		}

		// 2. Может ли актор вообще применить умение
		if msg := precheck(def, ctx.Actor); msg != "" {
			return Reject(msg)
		}

		// 3. Цель
		vars := def.Vars(ctx.Upgrades)
		if msg := check(ctx, vars, *ctx.Target); msg != "" {
			return Reject(msg)
		}

		// 4. Эффекты
		res := build(ctx, vars, *ctx.Target)
		if vars.Cooldown > 0 {
			res.Effects = append(res.Effects, domain.ModifyCooldown{
				ActorID:  ctx.Actor.ID,
				SkillID:  def.ID,
				Amount:   vars.Cooldown,
				SetExact: true,
			})
		}
		res.ConsumesTurn = true
		return res
	}

	def.ValidTargets = func(state *domain.GameState, actor *domain.Actor, upgrades []string) []domain.Point {
		if state == nil || precheck(def, actor) != "" {
			return nil
		}
		ctx := &Context{State: state, Actor: actor, Upgrades: upgrades}
		vars := def.Vars(upgrades)

		var out []domain.Point
		for _, p := range state.Grid.AllPoints() {
			if check(ctx, vars, p) == "" {
				out = append(out, p)
			}
		}
		return out
	}
	return def
}

// precheck - общие условия: актор жив, знает умение и оно перезарядилось.
func precheck(def *Definition, actor *domain.Actor) string {
	if actor == nil || !actor.IsAlive() {
		return "Nobody to act."
	}
	slot := actor.Skill(def.ID)
	if slot == nil {
		return fmt.Sprintf("%s does not know %s.", actor.ID, def.Name)
	}
	if !slot.Ready() {
		return fmt.Sprintf("%s is on cooldown (%d).", def.Name, slot.CurrentCooldown)
	}
	return ""
}

func addRange(n int) func(BaseVariables) BaseVariables {
	return func(v BaseVariables) BaseVariables {
		v.Range += n
		return v
	}
}

func addDamage(n int) func(BaseVariables) BaseVariables {
	return func(v BaseVariables) BaseVariables {
		v.Damage += n
		return v
	}
}

func addMomentum(n int) func(BaseVariables) BaseVariables {
	return func(v BaseVariables) BaseVariables {
		v.Momentum += n
		return v
	}
}
