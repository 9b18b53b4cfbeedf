package admin

import (
	"errors"
	"fmt"
	"hop-core/internal/domain"
	"hop-core/internal/engine/handlers"
	"hop-core/internal/skills"
	"hop-core/pkg/dungeon"
)

// SpawnPayload: { "template": "FOOTMAN", "target": {"q":3,"r":5,"s":-8} }
type SpawnPayload struct {
	Template string        `json:"template"`
	Target   *domain.Point `json:"target,omitempty"`
}

func (p SpawnPayload) Validate() error {
	if p.Template == "" {
		return errors.New("template is required")
	}
	return nil
}

// HandleSpawn - отладочный спавн из шаблона. Как и умения, состояние не
// трогает: возвращает эффект SpawnActor, ID синтезирует интерпретатор.
func HandleSpawn(ctx handlers.Context, p SpawnPayload) (handlers.Result, error) {
	tpl, ok := dungeon.EnemyTemplates[p.Template]
	if !ok {
		return handlers.Result{}, fmt.Errorf("unknown template %q", p.Template)
	}

	// Без точки - первая соседняя клетка по порядку направлений
	var pos *domain.Point
	if p.Target != nil {
		pos = p.Target
	} else {
		for _, n := range ctx.Actor.Pos.Neighbors() {
			if ctx.State.Grid.InBounds(n) && ctx.State.ActorAt(n) == nil {
				next := n
				pos = &next
				break
			}
		}
	}
	if pos == nil {
		return handlers.Result{
			Outcome: skills.Reject("No room to spawn."),
			MsgType: "ERROR",
		}, nil
	}

	actor := tpl.Spawn("", *pos)
	return handlers.Result{
		Outcome: skills.Result{
			Effects:      []domain.Effect{domain.SpawnActor{Actor: *actor}},
			Messages:     []string{fmt.Sprintf("Spawned %s at %s.", p.Template, pos)},
			ConsumesTurn: true,
		},
		MsgType: "INFO",
	}, nil
}
