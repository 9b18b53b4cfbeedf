package effects

import (
	"hop-core/internal/domain"
)

// applyDamage - цель разрешается по ID или по исходной точке в момент
// применения. Погибший актор сразу убирается из списка живых; следующие
// эффекты с его ID становятся пустыми шагами.
func (in *interpreter) applyDamage(d domain.Damage) (StepStatus, string) {
	a, interrupted := in.resolve(d.Target)
	if interrupted {
		return StepInterrupted, in.trace("damage skipped: %s already interrupted", d.Target.ActorID)
	}
	if a == nil {
		return in.noop("damage target not found")
	}

	if a.TakeDamage(d.Amount) {
		in.message("%s is killed.", a.ID)
		in.kill(a, domain.PendingDeath)
	}
	return StepApplied, ""
}

// applyStatus добавляет запись статуса. Повтор не заменяет, а добавляет
// еще одну запись; истечение разбирает планировщик ходов.
func (in *interpreter) applyStatus(s domain.ApplyStatus) (StepStatus, string) {
	a, interrupted := in.resolve(s.Target)
	if interrupted {
		return StepInterrupted, in.trace("status skipped: %s already interrupted", s.Target.ActorID)
	}
	if a == nil {
		return in.noop("status target not found")
	}
	if s.Status == "" {
		return in.noop("empty status type")
	}

	a.StatusEffects = append(a.StatusEffects, domain.StatusEffect{
		ID:       domain.StatusID(a.ID, s.Status),
		Type:     s.Status,
		Duration: s.Duration,
	})
	return StepApplied, ""
}

// applyModifyCooldown меняет перезарядку или выставляет ее точно.
// Прерванная цепочка не отменяет цену умения: выживший актор получает
// перезарядку, погибший уже убран из списка.
func (in *interpreter) applyModifyCooldown(m domain.ModifyCooldown) (StepStatus, string) {
	a := in.state.Actor(m.ActorID)
	if a == nil {
		if in.interrupted[m.ActorID] {
			return StepInterrupted, in.trace("cooldown skipped: %s already interrupted", m.ActorID)
		}
		return in.noop("cooldown actor not found")
	}
	slot := a.Skill(m.SkillID)
	if slot == nil {
		return in.noop("actor " + a.ID + " has no skill " + string(m.SkillID))
	}

	if m.SetExact {
		slot.CurrentCooldown = m.Amount
	} else {
		slot.CurrentCooldown += m.Amount
	}
	if slot.CurrentCooldown < 0 {
		slot.CurrentCooldown = 0
	}
	return StepApplied, ""
}
