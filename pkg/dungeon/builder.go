package dungeon

import (
	"errors"
	"fmt"
	"hop-core/internal/domain"
	"slices"
)

// ArenaConfig - параметры арены.
type ArenaConfig struct {
	Name string
	Grid domain.GridConfig
	Seed int64
}

// ArenaBuilder предоставляет fluent API для сборки арен вручную.
// Процедурной генерации тут нет: ядро получает готовый MapSpec.
// Ошибки копятся и возвращаются из Build.
type ArenaBuilder struct {
	cfg     ArenaConfig
	tiles   map[domain.Point]*domain.Tile
	walls   []domain.Point
	hazards []domain.Point
	spawns  []*domain.Actor
	items   []*domain.Item
	counter map[string]int
	errs    []error
}

// NewArena создает новый builder. Пустая сетка заменяется стандартной.
func NewArena(cfg ArenaConfig) *ArenaBuilder {
	if cfg.Grid == (domain.GridConfig{}) {
		cfg.Grid = domain.DefaultGrid()
	}
	return &ArenaBuilder{
		cfg:     cfg,
		tiles:   make(map[domain.Point]*domain.Tile),
		counter: make(map[string]int),
	}
}

func (b *ArenaBuilder) check(p domain.Point, what string) bool {
	if !p.Valid() {
		b.errs = append(b.errs, fmt.Errorf("%s %s: %w", what, p, domain.ErrInvalidCoordinate))
		return false
	}
	if !b.cfg.Grid.InBounds(p) {
		b.errs = append(b.errs, fmt.Errorf("%s %s: %w", what, p, domain.ErrOutOfBounds))
		return false
	}
	return true
}

// WithTile ставит клетку с базовым типом.
func (b *ArenaBuilder) WithTile(p domain.Point, base domain.BaseID) *ArenaBuilder {
	if b.check(p, "tile") {
		b.tiles[p] = domain.NewTile(p, base)
	}
	return b
}

// WithWall ставит стену.
func (b *ArenaBuilder) WithWall(p domain.Point) *ArenaBuilder {
	return b.WithTile(p, domain.BaseWall)
}

// WithLava ставит лаву.
func (b *ArenaBuilder) WithLava(p domain.Point) *ArenaBuilder {
	return b.WithTile(p, domain.BaseLava)
}

// WithLegacyWall добавляет стену в старый статический список координат.
func (b *ArenaBuilder) WithLegacyWall(p domain.Point) *ArenaBuilder {
	if b.check(p, "legacy wall") {
		b.walls = append(b.walls, p)
	}
	return b
}

// WithLegacyHazard добавляет лаву в старый статический список координат.
func (b *ArenaBuilder) WithLegacyHazard(p domain.Point) *ArenaBuilder {
	if b.check(p, "legacy hazard") {
		b.hazards = append(b.hazards, p)
	}
	return b
}

// WithPlayer ставит игрока.
func (b *ArenaBuilder) WithPlayer(p domain.Point) *ArenaBuilder {
	if b.check(p, "player") {
		b.spawns = append(b.spawns, CreatePlayer(p))
	}
	return b
}

// SpawnEnemy ставит актора из шаблона. ID - "<подтип>-<номер>".
func (b *ArenaBuilder) SpawnEnemy(templateName string, p domain.Point) *ArenaBuilder {
	tpl, ok := EnemyTemplates[templateName]
	if !ok {
		b.errs = append(b.errs, fmt.Errorf("unknown template %q", templateName))
		return b
	}
	if !b.check(p, templateName) {
		return b
	}
	prefix := tpl.IDPrefix()
	b.counter[prefix]++
	b.spawns = append(b.spawns, tpl.Spawn(fmt.Sprintf("%s-%d", prefix, b.counter[prefix]), p))
	return b
}

// SpawnItem кладет предмет на пол.
func (b *ArenaBuilder) SpawnItem(itemType string, p domain.Point) *ArenaBuilder {
	if !b.check(p, "item") {
		return b
	}
	b.counter["item"]++
	b.items = append(b.items, &domain.Item{
		ID:       fmt.Sprintf("item-%d", b.counter["item"]),
		Type:     itemType,
		Position: p,
	})
	return b
}

// Build собирает MapSpec. Клетки отсортированы по координатам.
func (b *ArenaBuilder) Build() (domain.MapSpec, error) {
	if err := b.cfg.Grid.Validate(); err != nil {
		b.errs = append(b.errs, err)
	}
	if len(b.errs) > 0 {
		return domain.MapSpec{}, fmt.Errorf("arena %q: %w", b.cfg.Name, errors.Join(b.errs...))
	}

	tiles := make([]*domain.Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		tiles = append(tiles, t)
	}
	slices.SortFunc(tiles, func(x, y *domain.Tile) int {
		return domain.ComparePoints(x.Position, y.Position)
	})

	return domain.MapSpec{
		Name:    b.cfg.Name,
		Grid:    b.cfg.Grid,
		Tiles:   tiles,
		Walls:   slices.Clone(b.walls),
		Hazards: slices.Clone(b.hazards),
		Spawns:  b.spawns,
		Items:   b.items,
		Seed:    b.cfg.Seed,
	}, nil
}
