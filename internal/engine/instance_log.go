package engine

import (
	"fmt"
	"hop-core/pkg/api"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет запись в историю партии и дублирует ее в лог.
// ID записи детерминирован (ход + порядковый номер), чтобы логи реплея совпадали.
func (g *Game) AddLog(text, logType string) api.LogEntry {
	entry := api.LogEntry{
		ID:   fmt.Sprintf("%d_%d", g.state.Turn, len(g.logs)),
		Text: text,
		Type: logType,
		Turn: g.state.Turn,
	}
	g.logs = append(g.logs, entry)
	g.log.WithFields(logrus.Fields{
		"component": "game_log",
		"turn":      g.state.Turn,
		"log_type":  logType,
	}).Info(text)
	return entry
}

// Logs - вся история сообщений партии.
func (g *Game) Logs() []api.LogEntry {
	return g.logs
}
