package systems

import (
	"hop-core/internal/domain"
	"hop-core/pkg/utils"
	"slices"
)

// Reachable - клетка, до которой можно дойти, и самый дешевый путь к ней.
type Reachable struct {
	Point domain.Point
	Cost  int
	// Path - от старта (не включая) до Point (включая).
	Path []domain.Point
}

// ReachOptions настраивает BFS.
type ReachOptions struct {
	// AvoidHazards - не заходить в опасные клетки (режим ИИ).
	AvoidHazards bool
}

// ReachableTiles - BFS от позиции mover на movePoints шагов.
// Стены непроходимы; клетки чужих фракций непроходимы; через союзника
// пройти можно, но остановиться на нем нельзя. Результат отсортирован по
// (стоимость, q, r), направления перебираются в фиксированном порядке,
// поэтому путь для каждой клетки детерминирован.
func ReachableTiles(state *domain.GameState, mover *domain.Actor, movePoints int, opts ReachOptions) []Reachable {
	if mover == nil || movePoints <= 0 {
		return nil
	}

	origin := mover.Pos
	type node struct {
		p    domain.Point
		cost int
	}

	parent := map[domain.Point]domain.Point{}
	visited := map[domain.Point]int{origin: 0}
	queue := []node{{p: origin, cost: 0}}
	var out []Reachable

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.cost >= movePoints {
			continue
		}

		for _, next := range cur.p.Neighbors() {
			if _, seen := visited[next]; seen {
				continue
			}
			traits := TraitsAt(state, next)
			if traits.Has(domain.TraitBlocksMovement) {
				continue
			}
			if opts.AvoidHazards && traits.Has(domain.TraitHazardous) {
				continue
			}

			occupant := state.ActorAt(next)
			if occupant != nil && occupant.ID != mover.ID && !occupant.IsAllyOf(mover) {
				continue
			}

			visited[next] = cur.cost + 1
			parent[next] = cur.p

			// Опасную клетку можно выбрать целью, но идти сквозь нее дальше нельзя.
			hazard := traits.Has(domain.TraitHazardous)
			if !hazard {
				queue = append(queue, node{p: next, cost: cur.cost + 1})
			}

			if occupant == nil {
				out = append(out, Reachable{
					Point: next,
					Cost:  cur.cost + 1,
					Path:  buildPath(parent, origin, next),
				})
			}
		}
	}

	slices.SortFunc(out, func(a, b Reachable) int {
		if a.Cost != b.Cost {
			return a.Cost - b.Cost
		}
		return domain.ComparePoints(a.Point, b.Point)
	})
	return out
}

func buildPath(parent map[domain.Point]domain.Point, origin, dest domain.Point) []domain.Point {
	var rev []domain.Point
	for cur := dest; cur != origin; cur = parent[cur] {
		rev = append(rev, cur)
	}
	slices.Reverse(rev)
	return rev
}

// FindReachable ищет клетку в результате BFS.
func FindReachable(tiles []Reachable, p domain.Point) (Reachable, bool) {
	for _, r := range tiles {
		if r.Point == p {
			return r, true
		}
	}
	return Reachable{}, false
}

// RayOptions настраивает осевой луч.
type RayOptions struct {
	// MaxDistance <= 0 - без ограничения (до края карты).
	MaxDistance int
	// StopAtActors - актор останавливает луч.
	StopAtActors bool
	// IncludeBlocking - включить клетку, на которой луч остановился.
	IncludeBlocking bool
	// IgnoreActorID - этот актор лучом не замечается (обычно сам стрелок).
	IgnoreActorID string
}

// RayHit - результат осевого луча.
type RayHit struct {
	Points []domain.Point
	// Blocked - луч остановлен стеной, границей или актором.
	Blocked   bool
	BlockedAt domain.Point
	HitActor  *domain.Actor
	HitWall   bool
}

// CastAxialRay шагает из origin по направлению dir, пока не упрется в границу,
// стену или (опционально) актора. Используется для рывков, бросков и
// проекции зон угрозы.
func CastAxialRay(state *domain.GameState, origin domain.Point, dir int, opts RayOptions) RayHit {
	var hit RayHit
	cur := origin
	for step := 1; opts.MaxDistance <= 0 || step <= opts.MaxDistance; step++ {
		cur = cur.Neighbor(dir)

		if !state.Grid.InBounds(cur) || HasTrait(state, cur, domain.TraitBlocksMovement) {
			hit.Blocked = true
			hit.BlockedAt = cur
			hit.HitWall = true
			if opts.IncludeBlocking && state.Grid.InBounds(cur) {
				hit.Points = append(hit.Points, cur)
			}
			return hit
		}

		if opts.StopAtActors {
			if a := state.ActorAt(cur); a != nil && a.ID != opts.IgnoreActorID {
				hit.Blocked = true
				hit.BlockedAt = cur
				hit.HitActor = a
				if opts.IncludeBlocking {
					hit.Points = append(hit.Points, cur)
				}
				return hit
			}
		}

		hit.Points = append(hit.Points, cur)
	}
	return hit
}

// PickDeterministic выбирает одну из равноценных точек.
// Кандидаты сначала канонически сортируются, затем при настоящем выборе
// тратится ровно одно значение генератора: порядок перебора никогда не
// влияет на результат.
func PickDeterministic(rng *utils.SeededRNG, candidates []domain.Point) (domain.Point, bool) {
	if len(candidates) == 0 {
		return domain.Point{}, false
	}
	sorted := slices.Clone(candidates)
	slices.SortFunc(sorted, domain.ComparePoints)
	sorted = slices.Compact(sorted)
	if len(sorted) == 1 || rng == nil {
		return sorted[0], true
	}
	return sorted[rng.Intn(len(sorted))], true
}

// ClosestTo выбирает среди кандидатов ближайшую к goal точку; ничьи
// разрешаются через PickDeterministic.
func ClosestTo(rng *utils.SeededRNG, candidates []domain.Point, goal domain.Point) (domain.Point, bool) {
	if len(candidates) == 0 {
		return domain.Point{}, false
	}
	best := -1
	var ties []domain.Point
	for _, c := range candidates {
		d := domain.Distance(c, goal)
		switch {
		case best < 0 || d < best:
			best = d
			ties = []domain.Point{c}
		case d == best:
			ties = append(ties, c)
		}
	}
	return PickDeterministic(rng, ties)
}
