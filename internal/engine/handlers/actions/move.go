package actions

import (
	"hop-core/internal/engine/handlers"
	"hop-core/internal/skills"
	"hop-core/pkg/api"
)

// HandleMove - сахар над BASIC_MOVE.
func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	target := p.Target
	res, err := HandleSkill(ctx, api.SkillPayload{SkillID: skills.BasicMove, Target: &target})
	if err != nil {
		return res, err
	}
	if res.Outcome.ConsumesTurn {
		res.MsgType = "INFO"
	}
	return res, nil
}
