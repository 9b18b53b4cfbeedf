package systems

import (
	"hop-core/internal/domain"
	"hop-core/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// VisibleSet - видимые клетки.
type VisibleSet = mapset.Set[domain.Point]

// VisibleTiles - клетки в радиусе radius, до которых есть прямая видимость.
// Центр виден всегда, слепой (radius <= 0) видит только его.
func VisibleTiles(state *domain.GameState, origin domain.Point, radius int) VisibleSet {
	fovLogger := logger.Get().WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	visible := mapset.New[domain.Point]()
	visible.Put(origin)
	if radius <= 0 {
		fovLogger.Debug("FOV calculation skipped for blind observer (radius <= 0).")
		return visible
	}

	for _, p := range state.Grid.AllPoints() {
		if p == origin || domain.Distance(origin, p) > radius {
			continue
		}
		if HasLineOfSight(state, origin, p) {
			visible.Put(p)
		}
	}

	fovLogger.WithField("visible_tiles", visible.Size()).Debug("FOV calculation complete.")
	return visible
}
