package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hop-core/internal/domain"
	"hop-core/pkg/logger"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `HOPR` // 4 байта
	Version1    uint32 = 1
	// Extension - расширение файлов реплея.
	Extension = ".hrp"
)

// ReplayFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут только массивы и числа.
// Имя арены идет сразу за заголовком (ArenaLen байт).
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	ArenaLen    uint16  // 2 байта
	ActionCount int32   // 4 байта
}

// ActionHeader - заголовок каждой записи действия.
type ActionHeader struct {
	Turn       int32  // 4
	ActionType uint8  // 1
	TokenLen   uint8  // 1
	PayloadLen uint16 // 2
}

// ReplayService сохраняет и читает ленты действий в каталоге SaveDir.
type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// FileName - имя файла для сессии.
func FileName(session *domain.ReplaySession) string {
	arena := session.Arena
	if arena == "" {
		arena = "custom"
	}
	return fmt.Sprintf("replay_%s_%d_%d%s", arena, session.Seed, session.Timestamp, Extension)
}

// Save пишет сессию во временный файл и атомарно переименовывает его.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	path := filepath.Join(s.SaveDir, FileName(session))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return "", err
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, session); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", err
	}

	logger.Get().WithFields(logrus.Fields{
		"component": "replay_storage",
		"path":      path,
		"actions":   len(session.Actions),
	}).Info("Replay saved.")
	return path, nil
}

// Encode пишет сессию в бинарном формате .hrp.
func Encode(w io.Writer, s *domain.ReplaySession) error {
	arena := []byte(s.Arena)
	if len(arena) > 65535 {
		return fmt.Errorf("arena name too long: %d", len(arena))
	}

	// 1. Глобальный заголовок
	header := ReplayFileHeader{
		Version:     Version1,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		ArenaLen:    uint16(len(arena)),
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(arena); err != nil {
		return fmt.Errorf("failed to write arena name: %w", err)
	}

	// 2. Действия
	for _, act := range s.Actions {
		tokenBytes := []byte(act.Token)
		if len(tokenBytes) > 255 {
			return fmt.Errorf("token too long: %d", len(tokenBytes))
		}

		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		actHeader := ActionHeader{
			Turn:       int32(act.Turn),
			ActionType: uint8(act.Action),
			TokenLen:   uint8(len(tokenBytes)),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}

		// Динамические данные (тело)
		if _, err := w.Write(tokenBytes); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
