package engine

import (
	"hop-core/internal/domain"
	"time"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. Если состояние пришло без зерна, генератор
	// состояния стартует с него.
	Seed    int64
	Grid    domain.GridConfig
	ShardID uint8
	// AllowCheats включает отладочные команды (ADMIN_SPAWN).
	AllowCheats bool
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return DefaultConfig(time.Now().UnixNano())
}

// DefaultConfig - стандартная сетка 9x11 (ромб) с заданным зерном.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:    seed,
		Grid:    domain.DefaultGrid(),
		ShardID: 0,
	}
}
