package handlers

import (
	"encoding/json"
	"hop-core/internal/domain"
	"hop-core/internal/skills"
	"hop-core/pkg/utils"
)

// Context передает хендлеру состояние партии.
// Хендлер состояние не мутирует: он возвращает результат умения,
// эффекты которого применяет движок.
type Context struct {
	State  *domain.GameState
	Actor  *domain.Actor // Тот, кто выполняет команду (игрок или ИИ)
	Skills *skills.Registry
	RNG    *utils.SeededRNG
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в логи движка напрямую, он возвращает данные.
type Result struct {
	SkillID domain.SkillID // Пусто для WAIT
	Outcome skills.Result
	MsgType string // Тип лога (INFO, COMBAT, ERROR)
}

// HandlerFunc - это контракт для любой команды (SKILL, MOVE, WAIT).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого ответа (ход не потрачен)
func EmptyResult() Result {
	return Result{MsgType: "INFO"}
}
