// Package effects - единственная точка мутации игрового состояния.
//
// Умения возвращают список атомарных эффектов; Apply сворачивает этот список
// поверх копии состояния, шаг за шагом. Каждый шаг возвращает явный статус
// (применен / пустой / заблокирован / прерван), поэтому короткое замыкание
// после гибели актора в опасной клетке можно проверить по результату.
package effects

import (
	"fmt"
	"hop-core/internal/domain"
	"hop-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// StepStatus - итог одного шага свертки.
type StepStatus uint8

const (
	// StepApplied - эффект изменил состояние (или передал сообщение).
	StepApplied StepStatus = iota
	// StepNoOp - эффект не на что применить (цель исчезла, данные неполные).
	StepNoOp
	// StepBlocked - эффект отклонен игровым правилом (стена, занятая клетка).
	StepBlocked
	// StepInterrupted - цепочка актора прервана гибелью в опасной клетке.
	StepInterrupted
)

var stepStatusToString = map[StepStatus]string{
	StepApplied:     "APPLIED",
	StepNoOp:        "NOOP",
	StepBlocked:     "BLOCKED",
	StepInterrupted: "INTERRUPTED",
}

func (s StepStatus) String() string {
	if val, ok := stepStatusToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// StepResult - запись об одном шаге.
type StepResult struct {
	Index  int
	Kind   domain.EffectKind
	Status StepStatus
	Note   string
}

// Result - итог применения пакета эффектов.
type Result struct {
	// State - новое состояние. Исходное состояние не меняется.
	State    *domain.GameState
	Messages []string
	// Juice пересылается слою презентации как есть.
	Juice []domain.Juice
	Steps []StepResult
	// Interrupted - хотя бы одна цепочка эффектов была прервана.
	Interrupted       bool
	InterruptedActors []string
	// Trace - внутренняя диагностика (не для игрока).
	Trace []string
}

type interpreter struct {
	state       *domain.GameState
	res         *Result
	interrupted map[string]bool
	log         *logrus.Entry
}

// Apply применяет эффекты последовательно к копии state.
// Никогда не паникует на некорректных данных: такие эффекты становятся
// пустыми шагами с записью в трассе.
func Apply(state *domain.GameState, batch []domain.Effect) Result {
	working := state.Clone()
	res := Result{State: working}
	in := &interpreter{
		state:       working,
		res:         &res,
		interrupted: map[string]bool{},
		log: logger.Get().WithFields(logrus.Fields{
			"component": "effect_interpreter",
			"turn":      working.Turn,
		}),
	}

	for i, eff := range batch {
		status, note := in.step(eff)
		kind := domain.EffectUnknown
		if eff != nil {
			kind = eff.Kind()
		}
		res.Steps = append(res.Steps, StepResult{Index: i, Kind: kind, Status: status, Note: note})
		if status == StepInterrupted {
			res.Interrupted = true
		}
	}

	in.checkInvariants()

	in.log.WithFields(logrus.Fields{
		"effects":     len(batch),
		"messages":    len(res.Messages),
		"interrupted": res.Interrupted,
	}).Debug("Effect batch applied.")
	return res
}

func (in *interpreter) step(eff domain.Effect) (StepStatus, string) {
	switch e := eff.(type) {
	case domain.Displacement:
		return in.applyDisplacement(e)
	case domain.Damage:
		return in.applyDamage(e)
	case domain.ApplyStatus:
		return in.applyStatus(e)
	case domain.SpawnActor:
		return in.applySpawnActor(e)
	case domain.SpawnItem:
		return in.applySpawnItem(e)
	case domain.ModifyCooldown:
		return in.applyModifyCooldown(e)
	case domain.PlaceTileEffect:
		return in.applyTileEffect(e)
	case domain.KineticPush:
		return in.applyKineticPush(e)
	case domain.Message:
		in.res.Messages = append(in.res.Messages, e.Text)
		return StepApplied, ""
	case domain.Juice:
		in.res.Juice = append(in.res.Juice, e)
		return StepApplied, ""
	case nil:
		return in.noop("nil effect")
	default:
		return in.noop(fmt.Sprintf("unsupported effect %T", eff))
	}
}

// trace пишет диагностическую запись: в результат и в лог.
func (in *interpreter) trace(format string, args ...any) string {
	entry := fmt.Sprintf(format, args...)
	in.res.Trace = append(in.res.Trace, entry)
	in.log.Debug(entry)
	return entry
}

func (in *interpreter) noop(reason string) (StepStatus, string) {
	return StepNoOp, in.trace("noop: %s", reason)
}

func (in *interpreter) message(format string, args ...any) {
	in.res.Messages = append(in.res.Messages, fmt.Sprintf(format, args...))
}

// resolve находит актора по ссылке в момент применения.
// ok=false с interrupted=true означает, что цепочка актора уже прервана.
func (in *interpreter) resolve(ref domain.TargetRef) (actor *domain.Actor, interrupted bool) {
	if ref.ActorID != "" {
		if in.interrupted[ref.ActorID] {
			return nil, true
		}
		return in.state.Actor(ref.ActorID), false
	}
	if ref.HasPoint {
		return in.state.ActorAt(ref.Point), false
	}
	return nil, false
}

// interrupt помечает цепочку актора прерванной.
func (in *interpreter) interrupt(id string) {
	if in.interrupted[id] {
		return
	}
	in.interrupted[id] = true
	in.res.InterruptedActors = append(in.res.InterruptedActors, id)
}

// kill убирает актора из списка живых и ставит отложенный переход.
func (in *interpreter) kill(a *domain.Actor, kind domain.PendingKind) {
	a.HP = 0
	in.state.RemoveActor(a.ID)
	in.state.QueuePending(domain.PendingStatus{Kind: kind, ActorID: a.ID, At: a.Pos})
	if a.ID == domain.PlayerID {
		in.state.QueuePending(domain.PendingStatus{Kind: domain.PendingPlayerLost, ActorID: a.ID, At: a.Pos})
	}
	in.log.WithFields(logrus.Fields{
		"actor_id": a.ID,
		"kind":     kind,
		"at":       a.Pos,
	}).Info("Actor removed.")
}

// checkInvariants - диагностика после пакета: два живых актора не делят клетку.
func (in *interpreter) checkInvariants() {
	seen := make(map[domain.Point]string, len(in.state.Actors))
	for _, a := range in.state.Actors {
		if !a.IsAlive() {
			continue
		}
		if other, ok := seen[a.Pos]; ok {
			in.log.WithFields(logrus.Fields{
				"actor_a": other,
				"actor_b": a.ID,
				"at":      a.Pos,
			}).Error("Occupancy invariant violated.")
			in.trace("invariant: %s and %s share %s", other, a.ID, a.Pos)
			continue
		}
		seen[a.Pos] = a.ID
	}
}
