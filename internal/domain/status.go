package domain

import "fmt"

// StatusType - тип статуса актора.
type StatusType string

const (
	StatusStunned  StatusType = "stunned"
	StatusRooted   StatusType = "rooted"
	StatusBurning  StatusType = "burning"
	StatusMarked   StatusType = "marked"
	StatusShielded StatusType = "shielded"
	StatusFuse     StatusType = "fuse"
)

// StatusEffect - запись статуса. Дубликаты допустимы и стакаются присутствием;
// истечение длительности обрабатывает планировщик ходов.
type StatusEffect struct {
	ID       string     `json:"id" msgpack:"id"`
	Type     StatusType `json:"type" msgpack:"type"`
	Duration int        `json:"duration" msgpack:"duration"`
}

// StatusID синтезирует идентификатор статуса: "<actorId>-<type>".
func StatusID(actorID string, t StatusType) string {
	return fmt.Sprintf("%s-%s", actorID, t)
}
