package domain

import "errors"

// Структурные ошибки. Возникают только при построении/загрузке состояния,
// до начала симуляции: продолжать с такими данными нельзя.
var (
	ErrInvalidCoordinate = errors.New("coordinate violates q+r+s=0")
	ErrInvalidGrid       = errors.New("invalid grid configuration")
	ErrOutOfBounds       = errors.New("point is out of bounds")
	ErrDuplicateOccupant = errors.New("two actors occupy the same tile")
	ErrDuplicateID       = errors.New("duplicate actor id")
	ErrUnknownSkill      = errors.New("unknown skill")
)
