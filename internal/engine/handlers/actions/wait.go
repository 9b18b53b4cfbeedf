package actions

import (
	"fmt"
	"hop-core/internal/engine/handlers"
	"hop-core/internal/skills"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	// Пропуск хода тратит ход, но не порождает эффектов
	return handlers.Result{
		Outcome: skills.Result{
			Messages:     []string{fmt.Sprintf("%s waits.", ctx.Actor.ID)},
			ConsumesTurn: true,
		},
		MsgType: "INFO",
	}, nil
}
