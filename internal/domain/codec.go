package domain

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeTile сериализует клетку. Черты не пишутся: они выводятся заново
// из baseId, собственных черт и эффектов при каждом запросе.
func EncodeTile(t *Tile) ([]byte, error) {
	data, err := msgpack.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tile %s: %w", t.Position, err)
	}
	return data, nil
}

// DecodeTile восстанавливает клетку и проверяет координату.
func DecodeTile(data []byte) (*Tile, error) {
	var t Tile
	if err := msgpack.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode tile: %w", err)
	}
	if !t.Position.Valid() {
		return nil, fmt.Errorf("decode tile: %w: %s", ErrInvalidCoordinate, t.Position)
	}
	return &t, nil
}

// EncodeState - снимок состояния в msgpack (для контрольных сумм реплея).
func EncodeState(s *GameState) ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// DecodeState восстанавливает снимок состояния.
func DecodeState(data []byte) (*GameState, error) {
	var s GameState
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if len(s.Tiles) != s.Grid.Cells() {
		return nil, fmt.Errorf("decode state: %w: %d tiles for %dx%d grid",
			ErrInvalidGrid, len(s.Tiles), s.Grid.Width, s.Grid.Height)
	}
	return &s, nil
}
