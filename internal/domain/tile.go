package domain

import "slices"

// Trait - производная классификация клетки. Не хранится как итог,
// а вычисляется на каждый запрос (см. systems.TraitsAt).
type Trait string

const (
	TraitBlocksMovement Trait = "BLOCKS_MOVEMENT"
	TraitBlocksLOS      Trait = "BLOCKS_LOS"
	TraitHazardous      Trait = "HAZARDOUS"
	TraitAnchor         Trait = "ANCHOR"
	TraitLiquid         Trait = "LIQUID"
	TraitFire           Trait = "FIRE"
	TraitSlippery       Trait = "SLIPPERY"
)

// AllTraits - полный набор, которым описывается "абсолютно твердая" клетка за границей.
var AllTraits = []Trait{
	TraitBlocksMovement,
	TraitBlocksLOS,
	TraitAnchor,
}

// BaseID - базовый тип клетки, заданный генератором.
type BaseID string

const (
	BaseFloor BaseID = "FLOOR"
	BaseWall  BaseID = "WALL"
	BaseLava  BaseID = "LAVA"
	BaseIce   BaseID = "ICE"
	BasePit   BaseID = "PIT"
)

// baseTraits - черты, которые подразумевает базовый тип.
var baseTraits = map[BaseID][]Trait{
	BaseFloor: nil,
	BaseWall:  {TraitBlocksMovement, TraitBlocksLOS, TraitAnchor},
	BaseLava:  {TraitHazardous, TraitLiquid},
	BaseIce:   {TraitSlippery},
	BasePit:   {TraitHazardous},
}

// BaseTraits возвращает черты базового типа. Неизвестный тип считается полом.
func BaseTraits(id BaseID) []Trait {
	return baseTraits[id]
}

// TileEffectID - идентификатор временного эффекта на клетке.
type TileEffectID string

const (
	TileEffectFire    TileEffectID = "FIRE"
	TileEffectIceWall TileEffectID = "ICE_WALL"
	TileEffectSmoke   TileEffectID = "SMOKE"
	TileEffectOil     TileEffectID = "OIL"
)

// tileEffectTraits - что подразумевает активный эффект.
var tileEffectTraits = map[TileEffectID][]Trait{
	TileEffectFire:    {TraitFire, TraitHazardous},
	TileEffectIceWall: {TraitBlocksMovement, TraitBlocksLOS},
	TileEffectSmoke:   {TraitBlocksLOS},
	TileEffectOil:     {TraitSlippery},
}

// TileEffectTraits возвращает черты эффекта.
func TileEffectTraits(id TileEffectID) []Trait {
	return tileEffectTraits[id]
}

// TileEffect - временный эффект на клетке. Duration <= 0 означает "бессрочно".
type TileEffect struct {
	ID       TileEffectID `json:"id" msgpack:"id"`
	Duration int          `json:"duration,omitempty" msgpack:"duration,omitempty"`
}

// Tile - постоянное состояние одной клетки.
type Tile struct {
	Position Point        `json:"position" msgpack:"position"`
	BaseID   BaseID       `json:"baseId" msgpack:"baseId"`
	Traits   []Trait      `json:"traits,omitempty" msgpack:"traits,omitempty"`
	Effects  []TileEffect `json:"effects,omitempty" msgpack:"effects,omitempty"`
}

// NewTile создает клетку заданного базового типа.
func NewTile(p Point, base BaseID) *Tile {
	return &Tile{Position: p, BaseID: base}
}

// AddTrait добавляет собственную черту клетки без дублей.
func (t *Tile) AddTrait(tr Trait) {
	if slices.Contains(t.Traits, tr) {
		return
	}
	t.Traits = append(t.Traits, tr)
}

// HasEffect проверяет наличие активного эффекта.
func (t *Tile) HasEffect(id TileEffectID) bool {
	for _, e := range t.Effects {
		if e.ID == id {
			return true
		}
	}
	return false
}

// AddEffect добавляет эффект. Повторный эффект того же типа продлевает длительность.
func (t *Tile) AddEffect(e TileEffect) {
	for i := range t.Effects {
		if t.Effects[i].ID == e.ID {
			if e.Duration <= 0 || (t.Effects[i].Duration > 0 && e.Duration > t.Effects[i].Duration) {
				t.Effects[i].Duration = e.Duration
			}
			return
		}
	}
	t.Effects = append(t.Effects, e)
}

// TickEffects уменьшает длительность временных эффектов и убирает истекшие.
// Бессрочные эффекты (Duration <= 0) не трогает.
func (t *Tile) TickEffects() []TileEffect {
	var expired []TileEffect
	kept := t.Effects[:0]
	for _, e := range t.Effects {
		if e.Duration > 0 {
			e.Duration--
			if e.Duration == 0 {
				expired = append(expired, e)
				continue
			}
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		kept = nil
	}
	t.Effects = kept
	return expired
}

// Clone возвращает глубокую копию клетки.
func (t *Tile) Clone() *Tile {
	if t == nil {
		return nil
	}
	c := *t
	c.Traits = slices.Clone(t.Traits)
	c.Effects = slices.Clone(t.Effects)
	return &c
}
