package systems

import (
	"hop-core/internal/domain"
	"hop-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя гексами.
// Стартовая и конечная клетки не проверяются: можно смотреть на стену, стоя рядом.
// Акторы линию не перекрывают, только черта BLOCKS_LOS.
func HasLineOfSight(state *domain.GameState, p1, p2 domain.Point) bool {
	losLogger := logger.Get().WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "HasLineOfSight",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1 == p2 {
		losLogger.Debug("Check finished: Points are identical. Result: true")
		return true
	}

	line := domain.Line(p1, p2)
	for _, p := range line[1 : len(line)-1] {
		// 1. Проверка границ карты
		if !state.Grid.InBounds(p) {
			losLogger.WithField("blocking_point", p).
				Debug("Check finished: Line is blocked by map BOUNDS. Result: false")
			return false
		}
		// 2. Проверка черт клетки (стена, дым, ледяная стена)
		if BlocksSight(state, p) {
			losLogger.WithField("blocking_point", p).
				Debug("Check finished: Line is blocked by BLOCKS_LOS tile. Result: false")
			return false
		}
	}

	losLogger.Debug("Check finished: No obstructions found. Result: true")
	return true
}
