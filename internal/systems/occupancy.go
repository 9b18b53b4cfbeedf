package systems

import (
	"hop-core/internal/domain"
)

// OccupancyMask - плотная битовая маска занятости, один бит на клетку.
// Это кэш для горячих путей (перебор кандидатов ИИ и подсветка целей).
// Проверки перед мутацией состояния всегда повторяются по живому списку
// акторов (GameState.ActorAt): внутри одного пакета эффектов маска может
// отставать на одну мутацию.
type OccupancyMask struct {
	grid domain.GridConfig
	bits []uint64
}

// RefreshOccupancy перестраивает маску: O(клеток + акторов).
// Бит взводится для стен/клеток, перекрывающих обзор, и для живых акторов.
func RefreshOccupancy(state *domain.GameState) *OccupancyMask {
	m := &OccupancyMask{
		grid: state.Grid,
		bits: make([]uint64, (state.Grid.Cells()+63)/64),
	}

	for _, p := range state.Grid.AllPoints() {
		traits := TraitsAt(state, p)
		if traits.Has(domain.TraitBlocksMovement) || traits.Has(domain.TraitBlocksLOS) {
			m.set(p)
		}
	}

	for _, a := range state.Actors {
		if a.IsAlive() {
			m.set(a.Pos)
		}
	}
	return m
}

func (m *OccupancyMask) set(p domain.Point) {
	idx := m.grid.Index(p)
	if idx < 0 {
		return
	}
	m.bits[idx/64] |= 1 << uint(idx%64)
}

// IsOccupied - O(1). Все, что вне играбельной области, считается занятым.
func (m *OccupancyMask) IsOccupied(p domain.Point) bool {
	if !m.grid.InBounds(p) {
		return true
	}
	idx := m.grid.Index(p)
	return m.bits[idx/64]&(1<<uint(idx%64)) != 0
}

// Count возвращает количество занятых клеток (для диагностики).
func (m *OccupancyMask) Count() int {
	n := 0
	for _, w := range m.bits {
		for w != 0 {
			w &= w - 1
			n++
		}
	}
	return n
}

// IsOccupied - функциональная форма, как в описании индекса.
func IsOccupied(m *OccupancyMask, p domain.Point) bool {
	return m.IsOccupied(p)
}
