package systems

import (
	"fmt"
	"hop-core/internal/domain"
)

// --- PICKUP ---

// PickupItems подбирает предметы под ногами актора после перемещения.
// Возвращает сообщения о подобранном. Подбирать умеют только акторы с CarryComponent.
func PickupItems(state *domain.GameState, actor *domain.Actor) []string {
	if actor == nil || actor.Carry == nil || !actor.IsAlive() {
		return nil
	}

	var msgs []string
	for _, item := range state.ItemsAt(actor.Pos) {
		switch item.Type {
		case domain.ItemSpear:
			if actor.Carry.HasSpear {
				continue
			}
			actor.Carry.HasSpear = true
		default:
			continue
		}
		state.RemoveItem(item.ID)
		msgs = append(msgs, fmt.Sprintf("%s picks up the %s.", actor.ID, item.Type))
	}
	return msgs
}
