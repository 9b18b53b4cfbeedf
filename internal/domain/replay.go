package domain

import "encoding/json"

// ReplayAction - это запись одного действия извне (от игрока или ИИ)
type ReplayAction struct {
	Turn    int             `json:"turn"`
	Token   string          `json:"token"`   // Кто сделал
	Action  ActionType      `json:"action"`  // Что сделал
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// ReplaySession - полная запись партии: зерно, арена и лента действий.
// По ней ядро обязано воспроизвести итоговое состояние байт в байт.
type ReplaySession struct {
	Arena     string         `json:"arena"`
	Seed      int64          `json:"seed"` // Зерно генератора
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}
