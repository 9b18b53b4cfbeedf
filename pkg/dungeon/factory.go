package dungeon

import (
	"hop-core/internal/domain"
)

// CreatePlayer создает игрока со стандартным набором умений.
// ID игрока фиксирован: ядро ищет его по domain.PlayerID.
func CreatePlayer(pos domain.Point) *domain.Actor {
	p := Player.Spawn(domain.PlayerID, pos)
	p.Trinity = &domain.TrinityComponent{Body: 1, Mind: 1, Instinct: 1}
	return p
}
