package domain

import "slices"

// PendingKind - тип отложенного перехода, который разбирает планировщик ходов.
type PendingKind string

const (
	PendingDeath      PendingKind = "DEATH"
	PendingHazardSink PendingKind = "HAZARD_SINK"
	PendingPlayerLost PendingKind = "PLAYER_LOST"
)

// PendingStatus - отложенный переход состояния (смерть, проигрыш).
// Ядро только ставит его в очередь; разрешает внешний планировщик.
type PendingStatus struct {
	Kind    PendingKind `json:"kind" msgpack:"kind"`
	ActorID string      `json:"actorId" msgpack:"actorId"`
	At      Point       `json:"at" msgpack:"at"`
}

// RNGState - позиция детерминированного генератора внутри состояния.
type RNGState struct {
	Seed    int64  `json:"seed" msgpack:"seed"`
	Counter uint64 `json:"counter" msgpack:"counter"`
}

// GameState - корень игрового состояния.
// Клетки лежат в плотном слайсе (индекс r*W+q), чтобы обход и
// сериализация не зависели от порядка обхода map.
type GameState struct {
	Grid GridConfig `json:"grid" msgpack:"grid"`

	Tiles []*Tile `json:"tiles" msgpack:"tiles"`

	// Устаревшие статические списки координат (стены и лава).
	// Остаются рядом с Tiles: старый контент описан именно так.
	Walls   []Point `json:"walls,omitempty" msgpack:"walls,omitempty"`
	Hazards []Point `json:"hazards,omitempty" msgpack:"hazards,omitempty"`

	// Живые акторы в порядке появления
	Actors []*Actor `json:"actors" msgpack:"actors"`
	Items  []*Item  `json:"items,omitempty" msgpack:"items,omitempty"`

	Turn         int             `json:"turn" msgpack:"turn"`
	RNG          RNGState        `json:"rng" msgpack:"rng"`
	SpawnCounter uint64          `json:"spawnCounter" msgpack:"spawnCounter"`
	Pending      []PendingStatus `json:"pending,omitempty" msgpack:"pending,omitempty"`
}

// NewGameState создает пустое состояние с плотной сеткой клеток.
func NewGameState(grid GridConfig) *GameState {
	return &GameState{
		Grid:   grid,
		Tiles:  make([]*Tile, grid.Cells()),
		Actors: make([]*Actor, 0),
	}
}

// Tile возвращает запись клетки или nil, если записи нет.
func (s *GameState) Tile(p Point) *Tile {
	idx := s.Grid.Index(p)
	if idx < 0 || idx >= len(s.Tiles) {
		return nil
	}
	return s.Tiles[idx]
}

// SetTile записывает клетку. Вне прямоугольника - ошибка данных.
func (s *GameState) SetTile(t *Tile) error {
	idx := s.Grid.Index(t.Position)
	if idx < 0 || idx >= len(s.Tiles) {
		return ErrOutOfBounds
	}
	s.Tiles[idx] = t
	return nil
}

// EnsureTile возвращает клетку, создавая запись пола при отсутствии.
func (s *GameState) EnsureTile(p Point) *Tile {
	if t := s.Tile(p); t != nil {
		return t
	}
	t := NewTile(p, BaseFloor)
	if err := s.SetTile(t); err != nil {
		return nil
	}
	return t
}

// Actor ищет живого актора по ID.
func (s *GameState) Actor(id string) *Actor {
	for _, a := range s.Actors {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// ActorAt - прямой поиск по списку живых акторов. Это источник истины
// для коллизий; битовая маска занятости - только кэш.
func (s *GameState) ActorAt(p Point) *Actor {
	for _, a := range s.Actors {
		if a.Pos == p && a.IsAlive() {
			return a
		}
	}
	return nil
}

// Player возвращает актора игрока, если он жив.
func (s *GameState) Player() *Actor {
	return s.Actor(PlayerID)
}

// AddActor добавляет актора в конец списка живых.
func (s *GameState) AddActor(a *Actor) {
	s.Actors = append(s.Actors, a)
}

// RemoveActor удаляет актора из списка живых, сохраняя порядок остальных.
func (s *GameState) RemoveActor(id string) bool {
	for i, a := range s.Actors {
		if a.ID == id {
			s.Actors = slices.Delete(s.Actors, i, i+1)
			return true
		}
	}
	return false
}

// ItemsAt возвращает предметы на клетке в порядке появления.
func (s *GameState) ItemsAt(p Point) []*Item {
	var out []*Item
	for _, it := range s.Items {
		if it.Position == p {
			out = append(out, it)
		}
	}
	return out
}

// RemoveItem удаляет предмет по ID.
func (s *GameState) RemoveItem(id string) bool {
	for i, it := range s.Items {
		if it.ID == id {
			s.Items = slices.Delete(s.Items, i, i+1)
			return true
		}
	}
	return false
}

// IsLegacyWall - есть ли точка в устаревшем списке стен.
func (s *GameState) IsLegacyWall(p Point) bool {
	return slices.Contains(s.Walls, p)
}

// IsLegacyHazard - есть ли точка в устаревшем списке лавы.
func (s *GameState) IsLegacyHazard(p Point) bool {
	return slices.Contains(s.Hazards, p)
}

// QueuePending ставит отложенный переход в очередь.
func (s *GameState) QueuePending(p PendingStatus) {
	s.Pending = append(s.Pending, p)
}

// Clone - копия состояния на границе вызова умения.
// Интерпретатор свободно мутирует копию; исходное состояние остается валидным
// для тех, кому нужен diff (например, презентации).
func (s *GameState) Clone() *GameState {
	c := *s
	c.Tiles = make([]*Tile, len(s.Tiles))
	for i, t := range s.Tiles {
		c.Tiles[i] = t.Clone()
	}
	c.Walls = slices.Clone(s.Walls)
	c.Hazards = slices.Clone(s.Hazards)
	c.Actors = make([]*Actor, len(s.Actors))
	for i, a := range s.Actors {
		c.Actors[i] = a.Clone()
	}
	c.Items = make([]*Item, len(s.Items))
	for i, it := range s.Items {
		cp := *it
		c.Items[i] = &cp
	}
	c.Pending = slices.Clone(s.Pending)
	return &c
}
