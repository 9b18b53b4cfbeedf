package main

import (
	"flag"
	"fmt"
	"hop-core/internal/engine"
	"hop-core/internal/infrastructure/storage"
	"hop-core/internal/version"
	"hop-core/pkg/dungeon"
	"hop-core/pkg/logger"
	"time"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		seed       int64
		arena      string
		replayPath string
		scriptPath string
		saveDir    string
		schemaPath string
		board      bool
		cheats     bool
		enemies    bool
	)
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&arena, "arena", "training", fmt.Sprintf("Arena to play %v", dungeon.ArenaNames()))
	flag.StringVar(&replayPath, "replay", "", "Path to "+storage.Extension+" replay file to verify")
	flag.StringVar(&scriptPath, "script", "", "Path to JSON list of client commands to play")
	flag.StringVar(&saveDir, "save", "", "Directory to save the played session")
	flag.StringVar(&schemaPath, "schema", "", "Write JSON schema of the command script and exit")
	flag.BoolVar(&board, "board", true, "Print the final board")
	flag.BoolVar(&cheats, "cheats", false, "Allow ADMIN_SPAWN commands")
	flag.BoolVar(&enemies, "ai", true, "Enemies answer every player turn")
	flag.Parse()

	logger.Log.Info(version.String())

	if schemaPath != "" {
		if err := writeSchema(schemaPath); err != nil {
			logger.Log.Fatalf("Failed to write schema: %v", err)
		}
		logger.Log.Infof("Schema written to %s", schemaPath)
		return
	}

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("Mode: Replay Verification")
		final, err := verifyReplay(replayPath)
		if err != nil {
			logger.Log.Fatalf("Replay failed: %v", err)
		}
		printSummary(final, board)
		return
	}

	// Формируем конфиг
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("Using random Master Seed: %d", cfg.Seed)
	}
	cfg.AllowCheats = cheats

	game, err := newGame(cfg, arena)
	if err != nil {
		logger.Log.Fatalf("Failed to build arena: %v", err)
	}

	if scriptPath != "" {
		if err := playScript(game, scriptPath, enemies); err != nil {
			logger.Log.Fatalf("Script failed: %v", err)
		}
	}

	if saveDir != "" {
		svc, err := storage.NewReplayService(saveDir)
		if err != nil {
			logger.Log.Fatalf("Replay storage: %v", err)
		}
		game.Replay().Timestamp = time.Now().Unix()
		if _, err := svc.Save(game.Replay()); err != nil {
			logger.Log.Fatalf("Failed to save replay: %v", err)
		}
	}

	printSummary(game.State(), board)
}
