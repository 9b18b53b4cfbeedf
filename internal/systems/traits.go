package systems

import (
	"hop-core/internal/domain"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// TraitSet - набор черт клетки.
type TraitSet = mapset.Set[domain.Trait]

// TraitLayer - один источник черт в цепочке разрешения.
// Contribute добавляет черты в set; возвращает true, если цепочку
// нужно остановить (например, за границей карты больше нечего уточнять).
type TraitLayer interface {
	Name() string
	Contribute(state *domain.GameState, p domain.Point, set TraitSet) (stop bool)
}

// TraitResolver - приоритетная цепочка слоев. Порядок слоев фиксирован;
// новое представление данных добавляется еще одним слоем.
type TraitResolver struct {
	layers []TraitLayer
}

// NewTraitResolver создает резолвер с заданными слоями в заданном порядке.
func NewTraitResolver(layers ...TraitLayer) *TraitResolver {
	return &TraitResolver{layers: layers}
}

// DefaultResolver: границы -> устаревшие списки -> запись клетки -> эффекты.
var DefaultResolver = NewTraitResolver(
	BoundsLayer{},
	LegacyListLayer{},
	TileRecordLayer{},
	TileEffectLayer{},
)

// Layers возвращает имена слоев (для диагностики).
func (r *TraitResolver) Layers() []string {
	names := make([]string, len(r.layers))
	for i, l := range r.layers {
		names[i] = l.Name()
	}
	return names
}

// TraitsAt вычисляет черты клетки. Без побочных эффектов: одинаковый
// снимок состояния всегда дает одинаковый набор.
func (r *TraitResolver) TraitsAt(state *domain.GameState, p domain.Point) TraitSet {
	set := mapset.New[domain.Trait]()
	for _, layer := range r.layers {
		if layer.Contribute(state, p, set) {
			break
		}
	}
	return set
}

// TraitsAt - разрешение черт резолвером по умолчанию.
func TraitsAt(state *domain.GameState, p domain.Point) TraitSet {
	return DefaultResolver.TraitsAt(state, p)
}

// HasTrait - короткая форма проверки одной черты.
func HasTrait(state *domain.GameState, p domain.Point, t domain.Trait) bool {
	return TraitsAt(state, p).Has(t)
}

// IsWalkable - клетка не блокирует движение. Опасные клетки проходимы:
// игрок может осознанно шагнуть в лаву.
func IsWalkable(state *domain.GameState, p domain.Point) bool {
	return !HasTrait(state, p, domain.TraitBlocksMovement)
}

// IsPassable - проходима и не опасна. Используется ИИ.
func IsPassable(state *domain.GameState, p domain.Point) bool {
	traits := TraitsAt(state, p)
	return !traits.Has(domain.TraitBlocksMovement) && !traits.Has(domain.TraitHazardous)
}

// IsHazardous - клетка опасна для стоящего на ней.
func IsHazardous(state *domain.GameState, p domain.Point) bool {
	return HasTrait(state, p, domain.TraitHazardous)
}

// BlocksSight - клетка перекрывает линию видимости.
func BlocksSight(state *domain.GameState, p domain.Point) bool {
	return HasTrait(state, p, domain.TraitBlocksLOS)
}

// SortedTraits возвращает черты в стабильном порядке (для сравнения и логов).
func SortedTraits(set TraitSet) []domain.Trait {
	out := make([]domain.Trait, 0, set.Size())
	set.Each(func(t domain.Trait) {
		out = append(out, t)
	})
	slices.Sort(out)
	return out
}

func putAll(set TraitSet, traits []domain.Trait) {
	for _, t := range traits {
		set.Put(t)
	}
}

// --- СЛОИ ---

// BoundsLayer: вне играбельной области клетка полностью твердая.
type BoundsLayer struct{}

func (BoundsLayer) Name() string { return "bounds" }

func (BoundsLayer) Contribute(state *domain.GameState, p domain.Point, set TraitSet) bool {
	if state.Grid.InBounds(p) {
		return false
	}
	putAll(set, domain.AllTraits)
	return true
}

// LegacyListLayer: старые плоские списки координат стен и лавы.
type LegacyListLayer struct{}

func (LegacyListLayer) Name() string { return "legacy" }

func (LegacyListLayer) Contribute(state *domain.GameState, p domain.Point, set TraitSet) bool {
	if state.IsLegacyWall(p) {
		putAll(set, domain.BaseTraits(domain.BaseWall))
	}
	if state.IsLegacyHazard(p) {
		putAll(set, domain.BaseTraits(domain.BaseLava))
	}
	return false
}

// TileRecordLayer: базовый тип клетки плюс ее собственные черты.
// Отсутствие записи означает пол: нехватка данных не должна блокировать движение.
type TileRecordLayer struct{}

func (TileRecordLayer) Name() string { return "tile" }

func (TileRecordLayer) Contribute(state *domain.GameState, p domain.Point, set TraitSet) bool {
	tile := state.Tile(p)
	if tile == nil {
		return false
	}
	putAll(set, domain.BaseTraits(tile.BaseID))
	putAll(set, tile.Traits)
	return false
}

// TileEffectLayer: черты, которые подразумевают активные эффекты (огонь, ледяная стена, дым).
type TileEffectLayer struct{}

func (TileEffectLayer) Name() string { return "effects" }

func (TileEffectLayer) Contribute(state *domain.GameState, p domain.Point, set TraitSet) bool {
	tile := state.Tile(p)
	if tile == nil {
		return false
	}
	for _, e := range tile.Effects {
		putAll(set, domain.TileEffectTraits(e.ID))
	}
	return false
}
