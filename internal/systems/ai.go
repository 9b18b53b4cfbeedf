package systems

import (
	"hop-core/internal/domain"
	"hop-core/pkg/logger"
	"hop-core/pkg/utils"

	"github.com/sirupsen/logrus"
)

// CanSense - противник замечает цель: она в радиусе и в поле зрения.
func CanSense(state *domain.GameState, npc, target *domain.Actor, radius int) bool {
	if npc == nil || target == nil || !npc.IsAlive() || !target.IsAlive() {
		return false
	}
	if domain.Distance(npc.Pos, target.Pos) > radius {
		return false
	}
	return VisibleTiles(state, npc.Pos, radius).Has(target.Pos)
}

// ChaseStep выбирает шаг к goal длиной не больше movePoints. Опасные
// клетки обходятся. Шаг, не сокращающий дистанцию, не делается:
// ok == false означает тупик. Ничьи разрешаются генератором, выведенным
// из (Seed, Turn): состояние не меняется, а реплей повторяет выбор.
func ChaseStep(state *domain.GameState, npc *domain.Actor, goal domain.Point, movePoints int) (Reachable, bool) {
	aiLogger := logger.Get().WithFields(logrus.Fields{
		"component": "ai_system",
		"actor_id":  npc.ID,
		"goal":      goal,
	})

	tiles := ReachableTiles(state, npc, movePoints, ReachOptions{AvoidHazards: true})
	current := domain.Distance(npc.Pos, goal)
	occ := RefreshOccupancy(state)

	var candidates []domain.Point
	for _, t := range tiles {
		if domain.Distance(t.Point, goal) >= current {
			continue
		}
		// Свободный бит - клетка свободна; занятый перепроверяется по живому списку
		if occ.IsOccupied(t.Point) && !canStand(state, npc, t.Point) {
			continue
		}
		candidates = append(candidates, t.Point)
	}

	rng := &utils.SeededRNG{Seed: state.RNG.Seed, Counter: uint64(state.Turn)}
	best, ok := ClosestTo(rng, candidates, goal)
	if !ok || !canStand(state, npc, best) {
		aiLogger.Debug("Path is blocked or destination reached.")
		return Reachable{}, false
	}
	step, _ := FindReachable(tiles, best)
	aiLogger.WithField("step", step.Point).Debug("Chase step chosen.")
	return step, true
}

// canStand - клетка проходима и на ней нет другого живого актора.
func canStand(state *domain.GameState, npc *domain.Actor, p domain.Point) bool {
	if !IsWalkable(state, p) {
		return false
	}
	other := state.ActorAt(p)
	return other == nil || other.ID == npc.ID
}
