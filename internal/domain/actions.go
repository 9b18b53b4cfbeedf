package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionSkill
	ActionWait
	// ActionAdminSpawn - отладочная команда, включается конфигом.
	ActionAdminSpawn
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":  ActionMove,
	"SKILL": ActionSkill,
	"WAIT":  ActionWait,

	"ADMIN_SPAWN": ActionAdminSpawn,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:  "MOVE",
	ActionSkill: "SKILL",
	ActionWait:  "WAIT",

	ActionAdminSpawn: "ADMIN_SPAWN",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// MarshalText позволяет писать действие строкой в JSON-логах реплея.
func (a ActionType) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - обратная операция к MarshalText.
func (a *ActionType) UnmarshalText(b []byte) error {
	*a = ParseAction(string(b))
	return nil
}
