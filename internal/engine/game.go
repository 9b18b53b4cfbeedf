package engine

import (
	"fmt"
	"hop-core/internal/domain"
	"hop-core/internal/effects"
	"hop-core/internal/engine/handlers"
	"hop-core/internal/engine/handlers/actions"
	"hop-core/internal/engine/handlers/admin"
	"hop-core/internal/skills"
	"hop-core/pkg/api"
	"hop-core/pkg/logger"
	"hop-core/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
)

// Game - фасад одной партии: принимает действия, прогоняет их через
// умения и интерпретатор эффектов и ведет ленту реплея.
type Game struct {
	cfg      Config
	state    *domain.GameState
	skills   *skills.Registry
	handlers map[domain.ActionType]handlers.HandlerFunc
	replay   *domain.ReplaySession
	logs     []api.LogEntry
	log      *logrus.Entry
}

// ActionResult - итог одного действия.
type ActionResult struct {
	Turn        int
	Consumed    bool
	Messages    []string
	Juice       []domain.Juice
	Interrupted bool
	Steps       []effects.StepResult
	Trace       []string
	Logs        []api.LogEntry
}

// Response - DTO для слоя презентации.
func (r ActionResult) Response(checksum string) api.ActionResponse {
	resp := api.ActionResponse{
		Turn:        r.Turn,
		Consumed:    r.Consumed,
		Logs:        r.Logs,
		Interrupted: r.Interrupted,
		Checksum:    checksum,
	}
	for _, j := range r.Juice {
		resp.Juice = append(resp.Juice, api.NewJuiceView(j))
	}
	return resp
}

// NewGame оборачивает готовое состояние. Состояние принадлежит игре:
// снаружи его нужно читать через State().
func NewGame(cfg Config, state *domain.GameState) (*Game, error) {
	if state == nil {
		return nil, fmt.Errorf("new game: nil state")
	}
	if err := state.Grid.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if cfg.Grid != (domain.GridConfig{}) && cfg.Grid != state.Grid {
		return nil, fmt.Errorf("new game: %w", ErrGridMismatch)
	}
	if state.RNG == (domain.RNGState{}) {
		state.RNG.Seed = cfg.Seed
	}

	g := &Game{
		cfg:      cfg,
		state:    state,
		skills:   skills.Default,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		replay: &domain.ReplaySession{
			Seed:      state.RNG.Seed,
			Timestamp: time.Now().Unix(),
			Actions:   make([]domain.ReplayAction, 0),
		},
		log: logger.Get().WithFields(logrus.Fields{
			"component": "game",
			"shard":     cfg.ShardID,
			"seed":      state.RNG.Seed,
		}),
	}
	g.registerHandlers()
	return g, nil
}

func (g *Game) registerHandlers() {
	g.handlers[domain.ActionSkill] = handlers.WithPayload(actions.HandleSkill)
	g.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	g.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	if g.cfg.AllowCheats {
		g.handlers[domain.ActionAdminSpawn] = handlers.WithPayload(admin.HandleSpawn)
	}
}

// State - текущее состояние партии.
func (g *Game) State() *domain.GameState {
	return g.state
}

// Replay - лента принятых действий.
func (g *Game) Replay() *domain.ReplaySession {
	return g.replay
}

// SetArena подписывает ленту именем арены.
func (g *Game) SetArena(name string) {
	g.replay.Arena = name
}

// ProcessAction - главный метод обработки ввода.
// Ошибка возвращается только для битых команд (неизвестный актор, действие
// или данные). Отказ валидации умения - не ошибка: ход просто не тратится.
func (g *Game) ProcessAction(act domain.ReplayAction) (ActionResult, error) {
	aLogger := g.log.WithFields(logrus.Fields{
		"turn":   g.state.Turn,
		"token":  act.Token,
		"action": act.Action,
	})

	// 1. Кто действует
	actor := g.state.Actor(act.Token)
	if actor == nil {
		return ActionResult{}, fmt.Errorf("process %s: %w: %q", act.Action, ErrUnknownActor, act.Token)
	}

	// 2. Оглушенный актор теряет ход, что бы он ни пытался сделать
	action := act.Action
	if actor.HasStatus(domain.StatusStunned) && action != domain.ActionWait {
		aLogger.Debug("Actor is stunned, action replaced with WAIT.")
		action = domain.ActionWait
	}

	handler, ok := g.handlers[action]
	if !ok {
		return ActionResult{}, fmt.Errorf("process: %w: %s", ErrUnknownAction, act.Action)
	}

	// 3. Генератор продолжает поток из состояния
	rng := &utils.SeededRNG{Seed: g.state.RNG.Seed, Counter: g.state.RNG.Counter}
	ctx := handlers.Context{
		State:  g.state,
		Actor:  actor,
		Skills: g.skills,
		RNG:    rng,
	}

	res, err := handler(ctx, act.Payload)
	if err != nil {
		aLogger.WithError(err).Warn("Action rejected as malformed.")
		return ActionResult{}, fmt.Errorf("process %s: %w", act.Action, err)
	}

	act.Turn = g.state.Turn
	g.replay.Actions = append(g.replay.Actions, act)

	out := ActionResult{Turn: g.state.Turn}

	// 4. Отказ валидации: только сообщения, состояние не меняется
	if !res.Outcome.ConsumesTurn {
		for _, msg := range res.Outcome.Messages {
			out.Logs = append(out.Logs, g.AddLog(msg, res.MsgType))
		}
		out.Messages = res.Outcome.Messages
		return out, nil
	}

	// 5. Конец хода: таймеры, затем эффекты умения и взрывы бомб
	working := g.state.Clone()
	batch := append([]domain.Effect(nil), res.Outcome.Effects...)
	batch = append(batch, tickTurn(working, actor.ID)...)

	applied := effects.Apply(working, batch)
	next := applied.State
	next.RNG.Counter = rng.Counter
	next.Turn++
	g.state = next

	out.Consumed = true
	out.Messages = append(append(out.Messages, res.Outcome.Messages...), applied.Messages...)
	out.Juice = applied.Juice
	out.Interrupted = applied.Interrupted
	out.Steps = applied.Steps
	out.Trace = applied.Trace
	for _, msg := range res.Outcome.Messages {
		out.Logs = append(out.Logs, g.AddLog(msg, res.MsgType))
	}
	for _, msg := range applied.Messages {
		out.Logs = append(out.Logs, g.AddLog(msg, "COMBAT"))
	}
	out.Turn = next.Turn

	aLogger.WithFields(logrus.Fields{
		"skill":       res.SkillID,
		"effects":     len(batch),
		"interrupted": applied.Interrupted,
	}).Debug("Action processed.")
	return out, nil
}
