package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hop-core/internal/domain"
	"io"
	"os"
)

// ErrInvalidReplay - файл не является лентой .hrp.
var ErrInvalidReplay = errors.New("invalid replay file")

// Load читает сессию из файла.
func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	return LoadFile(path)
}

// LoadFile читает сессию без сервиса (для CLI).
func LoadFile(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// Decode - обратная операция к Encode.
func Decode(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidReplay, header.Magic[:])
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalidReplay, header.Version, Version1)
	}
	if header.ActionCount < 0 {
		return nil, fmt.Errorf("%w: negative action count", ErrInvalidReplay)
	}

	arena := make([]byte, header.ArenaLen)
	if _, err := io.ReadFull(r, arena); err != nil {
		return nil, fmt.Errorf("failed to read arena name: %w", err)
	}

	session := &domain.ReplaySession{
		Arena:     string(arena),
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Actions:   make([]domain.ReplayAction, 0, header.ActionCount),
	}

	// 2. Действия
	for i := 0; i < int(header.ActionCount); i++ {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}

		act := domain.ReplayAction{
			Turn:   int(ah.Turn),
			Action: domain.ActionType(ah.ActionType),
		}

		tokenBuf := make([]byte, ah.TokenLen)
		if _, err := io.ReadFull(r, tokenBuf); err != nil {
			return nil, fmt.Errorf("action %d token: %w", i, err)
		}
		act.Token = string(tokenBuf)

		if ah.PayloadLen > 0 {
			act.Payload = make([]byte, ah.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, fmt.Errorf("action %d payload: %w", i, err)
			}
		}

		session.Actions = append(session.Actions, act)
	}

	return session, nil
}
