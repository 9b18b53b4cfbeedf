package engine

import "errors"

var (
	ErrUnknownActor  = errors.New("unknown actor")
	ErrUnknownAction = errors.New("unknown action")
	ErrGridMismatch  = errors.New("state grid does not match config")
)
