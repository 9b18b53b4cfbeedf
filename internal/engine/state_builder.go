package engine

import (
	"fmt"
	"hop-core/internal/domain"
	"hop-core/internal/systems"
	"hop-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// BuildState превращает результат генерации в стартовое состояние.
// Структурная порча (битые координаты, клетки вне сетки, два актора в
// одной клетке, повтор ID) - ошибка сразу, а не тихий пропуск.
func BuildState(spec domain.MapSpec) (*domain.GameState, error) {
	grid := spec.Grid
	if grid == (domain.GridConfig{}) {
		grid = domain.DefaultGrid()
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("build state %q: %w", spec.Name, err)
	}

	state := domain.NewGameState(grid)
	state.RNG = domain.RNGState{Seed: spec.Seed}

	// 1. Клетки
	for _, t := range spec.Tiles {
		if t == nil {
			continue
		}
		if !t.Position.Valid() {
			return nil, fmt.Errorf("build state: tile %s: %w", t.Position, domain.ErrInvalidCoordinate)
		}
		if !state.Grid.InBounds(t.Position) {
			return nil, fmt.Errorf("build state: tile %s: %w", t.Position, domain.ErrOutOfBounds)
		}
		if err := state.SetTile(t.Clone()); err != nil {
			return nil, fmt.Errorf("build state: tile %s: %w", t.Position, err)
		}
	}

	// 2. Старые списки координат
	for _, p := range append(append([]domain.Point(nil), spec.Walls...), spec.Hazards...) {
		if !p.Valid() {
			return nil, fmt.Errorf("build state: legacy point %s: %w", p, domain.ErrInvalidCoordinate)
		}
	}
	state.Walls = append(state.Walls, spec.Walls...)
	state.Hazards = append(state.Hazards, spec.Hazards...)

	// 3. Акторы
	for _, a := range spec.Spawns {
		if a == nil {
			continue
		}
		if err := validateSpawn(state, a); err != nil {
			return nil, fmt.Errorf("build state: %w", err)
		}
		c := a.Clone()
		if c.MaxHP < c.HP {
			c.MaxHP = c.HP
		}
		state.AddActor(c)
	}

	// 4. Предметы
	for _, it := range spec.Items {
		if it == nil {
			continue
		}
		if !state.Grid.InBounds(it.Position) {
			return nil, fmt.Errorf("build state: item %s at %s: %w", it.ID, it.Position, domain.ErrOutOfBounds)
		}
		item := *it
		state.Items = append(state.Items, &item)
	}

	logger.Get().WithFields(logrus.Fields{
		"component": "state_builder",
		"arena":     spec.Name,
		"actors":    len(state.Actors),
		"tiles":     len(spec.Tiles),
		"seed":      spec.Seed,
	}).Debug("State built.")
	return state, nil
}

func validateSpawn(state *domain.GameState, a *domain.Actor) error {
	if a.ID == "" {
		return fmt.Errorf("spawn at %s has no id", a.Pos)
	}
	if !a.Pos.Valid() {
		return fmt.Errorf("spawn %s at %s: %w", a.ID, a.Pos, domain.ErrInvalidCoordinate)
	}
	if !state.Grid.InBounds(a.Pos) {
		return fmt.Errorf("spawn %s at %s: %w", a.ID, a.Pos, domain.ErrOutOfBounds)
	}
	if !systems.IsWalkable(state, a.Pos) {
		return fmt.Errorf("spawn %s inside a wall at %s: %w", a.ID, a.Pos, domain.ErrOutOfBounds)
	}
	if a.HP <= 0 {
		return fmt.Errorf("spawn %s is dead on arrival", a.ID)
	}
	if state.Actor(a.ID) != nil {
		return fmt.Errorf("spawn %s: %w", a.ID, domain.ErrDuplicateID)
	}
	if other := state.ActorAt(a.Pos); other != nil {
		return fmt.Errorf("spawn %s at %s shares the tile with %s: %w", a.ID, a.Pos, other.ID, domain.ErrDuplicateOccupant)
	}
	return nil
}
