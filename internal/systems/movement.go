package systems

import (
	"hop-core/internal/domain"
)

// MovementResult - результат проверки клетки назначения
type MovementResult struct {
	Target    domain.Point
	CanEnter  bool
	BlockedBy *domain.Actor // Если врезались в кого-то
	IsWall    bool          // Если врезались в стену или границу
	IsHazard  bool          // Клетка опасна (вход разрешен, но последствия будут)
}

// CheckDestination проверяет, может ли mover встать на клетку. Не меняет состояние мира!
// Коллизии проверяются по живому списку акторов, а не по маске занятости.
func CheckDestination(state *domain.GameState, mover *domain.Actor, target domain.Point) MovementResult {
	res := MovementResult{Target: target}

	// 1. Проверка границ
	if !state.Grid.InBounds(target) {
		res.IsWall = true
		return res
	}

	// 2. Проверка черт клетки
	traits := TraitsAt(state, target)
	if traits.Has(domain.TraitBlocksMovement) {
		res.IsWall = true
		return res
	}
	res.IsHazard = traits.Has(domain.TraitHazardous)

	// 3. Проверка акторов
	if other := state.ActorAt(target); other != nil && (mover == nil || other.ID != mover.ID) {
		res.BlockedBy = other
		return res
	}

	res.CanEnter = true
	return res
}
