package main

import (
	"encoding/json"
	"fmt"
	"hop-core/internal/domain"
	"hop-core/internal/engine"
	"hop-core/internal/infrastructure/storage"
	"hop-core/internal/render"
	"hop-core/pkg/api"
	"hop-core/pkg/dungeon"
	"hop-core/pkg/logger"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"
)

// Script - файл команд для прогона без клиента.
type Script struct {
	Commands []api.ClientCommand `json:"commands"`
}

func newGame(cfg engine.Config, arena string) (*engine.Game, error) {
	spec, err := dungeon.Arena(arena, cfg.Seed)
	if err != nil {
		return nil, err
	}
	state, err := engine.BuildState(spec)
	if err != nil {
		return nil, err
	}
	game, err := engine.NewGame(cfg, state)
	if err != nil {
		return nil, err
	}
	game.SetArena(arena)
	return game, nil
}

func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	for i, cmd := range s.Commands {
		if err := cmd.Validate(); err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
	}
	return &s, nil
}

// playScript прогоняет команды по порядку и печатает ответ ядра на каждую.
// С enemies враги отвечают на каждый потраченный ход игрока.
func playScript(game *engine.Game, path string, enemies bool) error {
	script, err := loadScript(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	emit := func(res engine.ActionResult) error {
		sum, err := engine.Checksum(game.State())
		if err != nil {
			return err
		}
		return enc.Encode(res.Response(sum))
	}

	for i, cmd := range script.Commands {
		if game.State().Player() == nil {
			logger.Log.Warnf("Player is gone, %d commands skipped.", len(script.Commands)-i)
			return nil
		}
		res, err := game.ProcessAction(cmd.ReplayAction())
		if err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
		if err := emit(res); err != nil {
			return err
		}
		if !enemies || !res.Consumed || cmd.Token != domain.PlayerID {
			continue
		}
		replies, err := game.RunEnemyTurns()
		if err != nil {
			return fmt.Errorf("enemy turns after command %d: %w", i, err)
		}
		for _, r := range replies {
			if err := emit(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// verifyReplay загружает ленту, собирает ее арену и прогоняет заново.
func verifyReplay(path string) (*domain.GameState, error) {
	session, err := storage.LoadFile(path)
	if err != nil {
		return nil, err
	}
	spec, err := dungeon.Arena(session.Arena, session.Seed)
	if err != nil {
		return nil, err
	}
	initial, err := engine.BuildState(spec)
	if err != nil {
		return nil, err
	}
	// Записанная отладочная команда была разрешена при игре
	cfg := engine.DefaultConfig(session.Seed)
	cfg.AllowCheats = true
	final, messages, err := engine.Replay(cfg, initial, session)
	if err != nil {
		return nil, err
	}
	for _, msg := range messages {
		fmt.Println(msg)
	}
	return final, nil
}

func printSummary(state *domain.GameState, board bool) {
	sum, err := engine.Checksum(state)
	if err != nil {
		logger.Log.Fatalf("Checksum: %v", err)
	}
	fields := logrus.Fields{
		"turn":     state.Turn,
		"actors":   len(state.Actors),
		"checksum": sum,
	}
	if p := state.Player(); p != nil {
		fields["player_hp"] = p.HP
	}
	logger.Log.WithFields(fields).Info("Simulation finished.")
	if board {
		fmt.Print(render.Board(state, true))
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Script))
	schema.Title = "hop-core command script"
	schema.Description = "Commands played by cmd/simulate -script"
	return schema
}

func writeSchema(outPath string) error {
	data, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
