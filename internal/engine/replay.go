package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hop-core/internal/domain"
	"hop-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Checksum - sha256 снимка состояния в msgpack. Два прогона одной ленты
// с одним зерном обязаны дать одинаковую сумму.
func Checksum(state *domain.GameState) (string, error) {
	data, err := domain.EncodeState(state)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Replay прогоняет ленту действий поверх копии initial.
// Возвращает итоговое состояние и все сообщения по порядку.
func Replay(cfg Config, initial *domain.GameState, session *domain.ReplaySession) (*domain.GameState, []string, error) {
	state := initial.Clone()
	if session.Seed != 0 {
		state.RNG = domain.RNGState{Seed: session.Seed}
	}

	game, err := NewGame(cfg, state)
	if err != nil {
		return nil, nil, err
	}
	game.SetArena(session.Arena)

	rLogger := logger.Get().WithFields(logrus.Fields{
		"component": "replay",
		"arena":     session.Arena,
		"seed":      state.RNG.Seed,
		"actions":   len(session.Actions),
	})
	rLogger.Info("Replay started.")

	var messages []string
	for i, act := range session.Actions {
		res, err := game.ProcessAction(act)
		if err != nil {
			return game.State(), messages, fmt.Errorf("replay action %d: %w", i, err)
		}
		messages = append(messages, res.Messages...)
	}

	rLogger.WithField("turn", game.State().Turn).Info("Replay finished.")
	return game.State(), messages, nil
}
