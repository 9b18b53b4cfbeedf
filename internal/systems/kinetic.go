package systems

import (
	"hop-core/internal/domain"
	"hop-core/pkg/logger"
	"slices"

	"github.com/sirupsen/logrus"
)

// KineticRequest - запрос на силовое смещение цепочки.
type KineticRequest struct {
	SourceID  string
	Impact    domain.Point
	Direction int
	Momentum  int
	// InstigatorFollows - инициатор занимает освободившуюся клетку удара.
	InstigatorFollows bool
}

// ChainMove - перемещение одного звена цепочки.
type ChainMove struct {
	ActorID string
	From    domain.Point
	To      domain.Point
	Path    []domain.Point
	// Sinks - звено тонет (погибает) в опасной клетке To.
	Sinks bool
}

// KineticPlan - результат планирования толчка. Сам резолвер состояние
// не меняет: план применяет интерпретатор эффектов.
type KineticPlan struct {
	// Chain - ID звеньев от клетки удара вперед по направлению.
	Chain []string
	// Moves - перемещения в порядке применения (от головы цепочки к хвосту).
	Moves []ChainMove
	// HardStop - хотя бы одно назначение невалидно: никто не двигается,
	// все звенья получают оглушение.
	HardStop  bool
	BlockedAt domain.Point
	Reason    string
	// InstigatorTo - куда встает инициатор, если он следует за толчком.
	InstigatorTo *domain.Point
}

// Причины жесткой остановки
const (
	ReasonWall     = "wall"
	ReasonOccupied = "occupied"
	ReasonNoChain  = "no_chain"
)

// ChainTravel - сколько клеток проходит звено i из n.
// Голова цепочки (самое дальнее звено) проходит momentum клеток, каждое
// следующее звено ближе к удару - на одну меньше, но не меньше одной.
// Так назначения строго упорядочены вдоль оси и не пересекаются.
func ChainTravel(momentum, n, i int) int {
	travel := momentum - (n - 1 - i)
	if travel < 1 {
		travel = 1
	}
	return travel
}

// BuildChain собирает цепочку живых акторов на одной прямой, начиная с клетки удара.
func BuildChain(state *domain.GameState, impact domain.Point, dir int, sourceID string) []*domain.Actor {
	var chain []*domain.Actor
	cur := impact
	for len(chain) < domain.MaxChainLength {
		a := state.ActorAt(cur)
		if a == nil || a.ID == sourceID {
			break
		}
		chain = append(chain, a)
		cur = cur.Neighbor(dir)
	}
	return chain
}

// ResolveKinetic планирует толчок: строит цепочку, вычисляет назначение
// каждого звена и проверяет все назначения одновременно. Частичного
// результата не бывает: либо двигаются все, либо никто (жесткая остановка).
func ResolveKinetic(state *domain.GameState, req KineticRequest) KineticPlan {
	kLogger := logger.Get().WithFields(logrus.Fields{
		"component": "kinetic_resolver",
		"source_id": req.SourceID,
		"impact":    req.Impact,
		"direction": req.Direction,
		"momentum":  req.Momentum,
	})

	var plan KineticPlan
	chain := BuildChain(state, req.Impact, req.Direction, req.SourceID)
	if len(chain) == 0 || req.Momentum <= 0 {
		plan.Reason = ReasonNoChain
		kLogger.Debug("Kinetic push has nothing to move.")
		return plan
	}

	inChain := make(map[string]bool, len(chain))
	for _, a := range chain {
		plan.Chain = append(plan.Chain, a.ID)
		inChain[a.ID] = true
	}

	n := len(chain)
	moves := make([]ChainMove, n)
	for i, member := range chain {
		travel := ChainTravel(req.Momentum, n, i)
		move := ChainMove{ActorID: member.ID, From: member.Pos, To: member.Pos}

		cur := member.Pos
		for step := 0; step < travel; step++ {
			cur = cur.Neighbor(req.Direction)

			if !state.Grid.InBounds(cur) || HasTrait(state, cur, domain.TraitBlocksMovement) {
				return hardStop(kLogger, plan, cur, ReasonWall)
			}
			if other := state.ActorAt(cur); other != nil && !inChain[other.ID] {
				return hardStop(kLogger, plan, cur, ReasonOccupied)
			}

			move.Path = append(move.Path, cur)
			move.To = cur

			// Звено тонет в первой опасной клетке и дальше не движется.
			if IsHazardous(state, cur) {
				move.Sinks = true
				break
			}
		}
		moves[i] = move
	}

	// Применяем от головы к хвосту: каждое назначение к моменту применения уже свободно.
	slices.Reverse(moves)
	plan.Moves = moves

	if req.InstigatorFollows {
		if src := state.Actor(req.SourceID); src != nil && src.IsAlive() {
			impact := req.Impact
			plan.InstigatorTo = &impact
		}
	}

	kLogger.WithFields(logrus.Fields{
		"chain_length": n,
		"follows":      plan.InstigatorTo != nil,
	}).Debug("Kinetic push resolved.")
	return plan
}

func hardStop(l *logrus.Entry, plan KineticPlan, at domain.Point, reason string) KineticPlan {
	plan.HardStop = true
	plan.BlockedAt = at
	plan.Reason = reason
	plan.Moves = nil
	l.WithFields(logrus.Fields{
		"blocked_at": at,
		"reason":     reason,
	}).Debug("Kinetic push hard stop.")
	return plan
}
