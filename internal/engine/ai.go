package engine

import (
	"encoding/json"
	"fmt"
	"hop-core/internal/domain"
	"hop-core/internal/skills"
	"hop-core/internal/systems"
	"hop-core/pkg/api"
	"slices"

	"github.com/sirupsen/logrus"
)

// DecideAction - простейший ИИ врага. Порядок: первое готовое умение,
// которое достает игрока, затем шаг навстречу, иначе ожидание.
// Решение не тратит генератор: ход ИИ воспроизводится по ленте сам.
func (g *Game) DecideAction(actorID string) (domain.ReplayAction, error) {
	npc := g.state.Actor(actorID)
	if npc == nil {
		return domain.ReplayAction{}, fmt.Errorf("decide: %w: %q", ErrUnknownActor, actorID)
	}
	aiLogger := g.log.WithFields(logrus.Fields{
		"component": "ai",
		"actor_id":  npc.ID,
	})
	wait := domain.ReplayAction{Token: npc.ID, Action: domain.ActionWait}

	player := g.state.Player()
	if !systems.CanSense(g.state, npc, player, domain.AggroRadius) {
		aiLogger.Debug("Player not sensed. Action: WAIT")
		return wait, nil
	}

	// 1. Атака: умения в порядке слотов
	for _, slot := range npc.ActiveSkills {
		if slot.ID == skills.BasicMove {
			continue
		}
		def, err := g.skills.Get(slot.ID)
		if err != nil || def.ValidTargets == nil {
			continue
		}
		targets := def.ValidTargets(g.state, npc, slot.ActiveUpgrades)
		if target, ok := pickAttackTarget(def.ID, targets, player.Pos); ok {
			aiLogger.WithFields(logrus.Fields{"skill": def.ID, "target": target}).Debug("Action: SKILL")
			return skillAction(npc.ID, def.ID, target)
		}
	}

	// 2. Сближение
	if slot := npc.Skill(skills.BasicMove); slot != nil {
		def, err := g.skills.Get(skills.BasicMove)
		if err != nil {
			return wait, err
		}
		vars := def.Vars(slot.ActiveUpgrades)
		if step, ok := systems.ChaseStep(g.state, npc, player.Pos, vars.Range); ok {
			aiLogger.WithField("target", step.Point).Debug("Action: MOVE")
			return skillAction(npc.ID, skills.BasicMove, step.Point)
		}
	}

	aiLogger.Debug("Nothing to do. Action: WAIT")
	return wait, nil
}

// pickAttackTarget: по игроку напрямую, а бомбой - на соседнюю с ним клетку.
func pickAttackTarget(id domain.SkillID, targets []domain.Point, playerPos domain.Point) (domain.Point, bool) {
	if slices.Contains(targets, playerPos) {
		return playerPos, true
	}
	if id != skills.BombToss {
		return domain.Point{}, false
	}
	for _, t := range targets {
		if t.IsAdjacent(playerPos) {
			return t, true
		}
	}
	return domain.Point{}, false
}

func skillAction(token string, id domain.SkillID, target domain.Point) (domain.ReplayAction, error) {
	payload, err := json.Marshal(api.SkillPayload{SkillID: id, Target: &target})
	if err != nil {
		return domain.ReplayAction{}, err
	}
	return domain.ReplayAction{Token: token, Action: domain.ActionSkill, Payload: payload}, nil
}

// RunEnemyTurns - каждый живой враг по порядку списка делает один ход.
// Ходы идут через ProcessAction и попадают в ленту реплея.
func (g *Game) RunEnemyTurns() ([]ActionResult, error) {
	var ids []string
	for _, a := range g.state.Actors {
		if a.Type == domain.ActorTypeEnemy && a.IsAlive() {
			ids = append(ids, a.ID)
		}
	}

	var out []ActionResult
	for _, id := range ids {
		// Враг мог погибнуть в ходе предыдущего
		if g.state.Actor(id) == nil {
			continue
		}
		act, err := g.DecideAction(id)
		if err != nil {
			return out, err
		}
		res, err := g.ProcessAction(act)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}
