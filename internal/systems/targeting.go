package systems

import (
	"hop-core/internal/domain"
)

// TargetRule описывает требования умения к цели.
type TargetRule struct {
	MinRange int
	Range    int
	// Axial - цель должна лежать на одной оси с актором.
	Axial bool
	// NeedLOS - нужна прямая видимость.
	NeedLOS bool
	// NeedActor / NeedEmpty - в клетке должен быть (или не должен быть) живой актор.
	NeedActor bool
	NeedEmpty bool
	// NeedEnemy - актор в клетке должен быть из другой фракции.
	NeedEnemy bool
	// NeedWalkable - клетка не блокирует движение.
	NeedWalkable bool
}

// ValidationResult - результат проверки цели
type ValidationResult struct {
	Target  *domain.Actor
	Valid   bool
	Message string // Сообщение об ошибке, если Valid == false
}

func invalid(msg string) ValidationResult {
	return ValidationResult{Valid: false, Message: msg}
}

// ValidateTarget проверяет, может ли actor применить умение к точке target.
// Порядок проверок: границы, дистанция, ось, видимость, клетка, занятость.
func ValidateTarget(state *domain.GameState, actor *domain.Actor, target domain.Point, rule TargetRule) ValidationResult {
	// 1. Границы
	if !state.Grid.InBounds(target) {
		return invalid("Target is out of bounds.")
	}

	// 2. Проверка дистанции
	dist := domain.Distance(actor.Pos, target)
	if dist > rule.Range || dist < rule.MinRange {
		return invalid("Target is out of range.")
	}

	// 3. Прямая линия
	if rule.Axial && !domain.IsAxial(actor.Pos, target) {
		return invalid("Target must be in a straight line.")
	}

	// 4. Проверка видимости (Line of Sight)
	if rule.NeedLOS && dist > 0 && !HasLineOfSight(state, actor.Pos, target) {
		return invalid("You cannot see the target.")
	}

	// 5. Клетка
	if rule.NeedWalkable && !IsWalkable(state, target) {
		return invalid("The way is blocked.")
	}

	// 6. Занятость - по живому списку акторов
	occupant := state.ActorAt(target)
	if occupant != nil && occupant.ID == actor.ID {
		occupant = nil
	}
	if rule.NeedActor && occupant == nil {
		return invalid("No target there.")
	}
	if rule.NeedEnemy && occupant != nil && occupant.IsAllyOf(actor) {
		return invalid("You cannot target an ally.")
	}
	if rule.NeedEmpty && occupant != nil {
		return invalid("That tile is occupied.")
	}

	return ValidationResult{Target: occupant, Valid: true}
}
