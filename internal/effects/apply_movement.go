package effects

import (
	"hop-core/internal/domain"
	"hop-core/internal/systems"
	"strings"
)

// applyDisplacement перемещает актора. Путь проверяется целиком до любого
// движения: частичного сдвига в сторону стены не бывает.
func (in *interpreter) applyDisplacement(d domain.Displacement) (StepStatus, string) {
	a, interrupted := in.resolve(d.Target)
	if interrupted {
		return StepInterrupted, in.trace("displacement skipped: %s already interrupted", d.Target.ActorID)
	}
	if a == nil {
		return in.noop("displacement target not found")
	}
	if !d.Destination.Valid() {
		return in.noop("displacement destination violates q+r+s=0")
	}
	if a.Pos == d.Destination {
		return in.noop("displacement to current position")
	}

	path := d.Path
	if len(path) == 0 || path[len(path)-1] != d.Destination {
		path = append(append([]domain.Point(nil), path...), d.Destination)
	}

	// 1. Назначение: стена или граница - оглушение на месте, перемещение
	// отбрасывается. Занятая другим живым актором клетка блокирует всегда.
	dest := systems.CheckDestination(in.state, a, d.Destination)
	if dest.IsWall {
		in.stun(a, 1)
		return StepBlocked, in.trace("displacement of %s blocked by wall at %s", a.ID, d.Destination)
	}
	if dest.BlockedBy != nil {
		return StepBlocked, in.trace("displacement of %s blocked by %s at %s", a.ID, dest.BlockedBy.ID, d.Destination)
	}
	// 2. Промежуточные клетки.
	for _, p := range path[:len(path)-1] {
		if !d.IgnoreWalls && !systems.IsWalkable(in.state, p) {
			in.stun(a, 1)
			return StepBlocked, in.trace("displacement of %s blocked by wall at %s", a.ID, p)
		}
		if d.IgnoreCollision {
			continue
		}
		// Союзника можно пройти насквозь, если перемещение не навязано.
		if other := in.state.ActorAt(p); other != nil && other.ID != a.ID && (d.Forced || !other.IsAllyOf(a)) {
			return StepBlocked, in.trace("displacement of %s blocked by %s at %s", a.ID, other.ID, p)
		}
	}

	// 3. Движение. При симуляции пути актор останавливается в первой опасной
	// клетке. Навязанное перемещение симулирует путь всегда.
	final := d.Destination
	if d.SimulatePath || d.Forced {
		for _, p := range path {
			if systems.IsHazardous(in.state, p) {
				final = p
				break
			}
		}
	}
	a.Pos = final

	return in.settle(a, false)
}

// settle - проверки после перемещения: опасная клетка и подбор предметов.
// Опасная клетка всегда обрывает цепочку актора. Жидкость и пропасть
// убивают сразу, огонь обжигает и убивает только при нехватке hp.
// lethal=true делает любую опасную клетку смертельной (звено цепочки тонет).
func (in *interpreter) settle(a *domain.Actor, lethal bool) (StepStatus, string) {
	traits := systems.TraitsAt(in.state, a.Pos)
	if traits.Has(domain.TraitHazardous) {
		if lethal || traits.Has(domain.TraitLiquid) || !traits.Has(domain.TraitFire) {
			in.message("%s sinks at %s.", a.ID, a.Pos)
			in.kill(a, domain.PendingHazardSink)
			in.interrupt(a.ID)
			return StepInterrupted, in.trace("%s sank at %s", a.ID, a.Pos)
		}
		if a.TakeDamage(domain.HazardDamage) {
			in.message("%s burns to death.", a.ID)
			in.kill(a, domain.PendingHazardSink)
			in.interrupt(a.ID)
			return StepInterrupted, in.trace("%s died on hazard at %s", a.ID, a.Pos)
		}
		in.message("%s is scorched.", a.ID)
		in.interrupt(a.ID)
		return StepInterrupted, in.trace("%s stopped by fire at %s", a.ID, a.Pos)
	}

	for _, msg := range systems.PickupItems(in.state, a) {
		in.res.Messages = append(in.res.Messages, msg)
	}
	return StepApplied, ""
}

func (in *interpreter) stun(a *domain.Actor, duration int) {
	a.StatusEffects = append(a.StatusEffects, domain.StatusEffect{
		ID:       domain.StatusID(a.ID, domain.StatusStunned),
		Type:     domain.StatusStunned,
		Duration: duration,
	})
}

// applyKineticPush планирует толчок резолвером и применяет план целиком.
func (in *interpreter) applyKineticPush(k domain.KineticPush) (StepStatus, string) {
	if in.interrupted[k.SourceID] {
		return StepInterrupted, in.trace("kinetic push skipped: source %s interrupted", k.SourceID)
	}
	if k.Anchor != nil {
		if src := in.state.Actor(k.SourceID); src == nil || src.Pos != *k.Anchor {
			return in.noop("kinetic push: source " + k.SourceID + " is not at " + k.Anchor.String())
		}
	}

	plan := systems.ResolveKinetic(in.state, systems.KineticRequest{
		SourceID:          k.SourceID,
		Impact:            k.Impact,
		Direction:         k.Direction,
		Momentum:          k.Momentum,
		InstigatorFollows: k.InstigatorFollows,
	})

	if len(plan.Chain) == 0 {
		return in.noop("kinetic push: no chain at " + k.Impact.String())
	}

	if plan.HardStop {
		for _, id := range plan.Chain {
			if a := in.state.Actor(id); a != nil {
				in.stun(a, 1)
			}
		}
		in.message("The push is stopped dead! %s stunned.", strings.Join(plan.Chain, ", "))
		in.res.Juice = append(in.res.Juice, domain.Juice{Name: "hard_stop", Target: plan.BlockedAt})
		return StepBlocked, in.trace("kinetic hard stop at %s (%s)", plan.BlockedAt, plan.Reason)
	}

	status := StepApplied
	for _, mv := range plan.Moves {
		a := in.state.Actor(mv.ActorID)
		if a == nil {
			in.trace("kinetic move: %s vanished", mv.ActorID)
			continue
		}
		a.Pos = mv.To
		in.res.Juice = append(in.res.Juice, domain.Juice{Name: "knockback", Target: mv.To, Path: mv.Path})
		if st, _ := in.settle(a, mv.Sinks); st == StepInterrupted {
			status = StepInterrupted
		}
	}

	if plan.InstigatorTo != nil {
		src := in.state.Actor(k.SourceID)
		// Повторная проверка перед мутацией: клетка удара должна освободиться.
		if src != nil && in.state.ActorAt(*plan.InstigatorTo) == nil {
			src.Pos = *plan.InstigatorTo
			if st, _ := in.settle(src, false); st == StepInterrupted {
				status = StepInterrupted
			}
		}
	}
	return status, ""
}
