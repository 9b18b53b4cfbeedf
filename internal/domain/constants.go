package domain

// Типы акторов
const (
	ActorTypePlayer    = "PLAYER"
	ActorTypeEnemy     = "ENEMY"
	ActorTypeCompanion = "COMPANION"
	ActorTypeObject    = "OBJECT"
)

// Фракции
const (
	FactionPlayer  = "player"
	FactionEnemy   = "enemy"
	FactionNeutral = "neutral"
)

// PlayerID - идентификатор игрока в любой арене.
const PlayerID = "player"

// Параметры среды
const (
	// HazardDamage - урон от опасной, но не жидкой клетки (огонь, шипы).
	HazardDamage = 1
	// MaxChainLength ограничивает длину цепочки при толчке.
	MaxChainLength = 16
	// BombFuse - сколько ходов тикает бомба.
	BombFuse = 2
	// AggroRadius - с какой дистанции враг замечает игрока.
	AggroRadius = 5
)

// Типы предметов на полу
const (
	ItemSpear = "SPEAR"
	ItemBomb  = "BOMB_PICKUP"
)
