package engine

import (
	"fmt"
	"hop-core/internal/domain"
)

// BombDamage - урон взрыва по соседним клеткам.
const BombDamage = 1

// tickTurn - таймеры конца хода. Перезарядки и статусы тикают только у
// того, кто действовал: оглушение с длительностью 1 снимает ровно один
// собственный ход актора. Мировые таймеры (огонь на клетках, фитили и
// статусы объектов) тикают раз за раунд, на ходу игрока.
// Выполняется до эффектов хода, поэтому выставленная в этом ходу
// перезарядка или оглушение доживают до следующего хода целиком.
func tickTurn(state *domain.GameState, actorID string) []domain.Effect {
	var out []domain.Effect
	round := actorID == domain.PlayerID
	if round {
		for _, t := range state.Tiles {
			if t != nil && len(t.Effects) > 0 {
				t.TickEffects()
			}
		}
	}
	for _, a := range state.Actors {
		if a.ID != actorID && !(round && a.Type == domain.ActorTypeObject) {
			continue
		}
		a.TickCooldowns()
		for _, s := range a.TickStatuses() {
			if s.Type == domain.StatusFuse {
				out = append(out, detonate(a)...)
			}
		}
	}
	return out
}

// detonate - взрыв бомбы: сама бомба исчезает, соседи получают урон.
// Соседи разрешаются по точкам в момент применения.
func detonate(bomb *domain.Actor) []domain.Effect {
	effs := []domain.Effect{
		domain.Juice{Name: "explosion", Target: bomb.Pos},
		domain.Message{Text: fmt.Sprintf("%s explodes!", bomb.ID)},
		domain.Damage{Target: domain.ByID(bomb.ID), Amount: bomb.MaxHP, Reason: "FUSE"},
	}
	for _, n := range bomb.Pos.Neighbors() {
		effs = append(effs, domain.Damage{Target: domain.AtPoint(n), Amount: BombDamage, Reason: "BOMB"})
	}
	return effs
}
