package domain

// Item - предмет на полу (брошенное копье, подбираемая бомба).
// Предметы не занимают клетку: по ним можно ходить.
type Item struct {
	ID       string `json:"id" msgpack:"id"`
	Type     string `json:"type" msgpack:"type"`
	Position Point  `json:"position" msgpack:"position"`
}
