package api

import (
	"encoding/json"
	"hop-core/internal/domain"
)

// --- ЯДРО -> КЛИЕНТ ---

// ActionResponse - итог одного действия для слоя презентации.
type ActionResponse struct {
	// Turn - номер хода после действия.
	Turn int `json:"turn"`

	// Consumed - действие потратило ход. false означает отказ валидации.
	Consumed bool `json:"consumed"`

	// Logs - сообщения, порожденные действием (умение + интерпретатор).
	Logs []LogEntry `json:"logs,omitempty"`

	// Juice - подсказки для анимаций. Ядро их не интерпретирует.
	Juice []JuiceView `json:"juice,omitempty"`

	// Interrupted - цепочка эффектов оборвалась гибелью в опасной клетке.
	Interrupted bool `json:"interrupted,omitempty"`

	// Checksum - sha256 снимка состояния после действия.
	Checksum string `json:"checksum,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"` // INFO, COMBAT, ERROR
	Turn int    `json:"turn"`
}

// JuiceView - DTO подсказки для анимации.
type JuiceView struct {
	Name   string            `json:"name"`
	Target domain.Point      `json:"target"`
	Path   []domain.Point    `json:"path,omitempty"`
	Params map[string]string `json:"params,omitempty"`
}

// NewJuiceView конвертирует доменную подсказку в DTO.
func NewJuiceView(j domain.Juice) JuiceView {
	return JuiceView{Name: j.Name, Target: j.Target, Path: j.Path, Params: j.Params}
}

// --- КЛИЕНТ -> ЯДРО ---

// ClientCommand - корневой объект любой команды, в том числе записи ленты реплея.
type ClientCommand struct {
	// Token - ID актора, от имени которого выполняется действие.
	Token string `json:"token"`

	// Action - SKILL, MOVE или WAIT.
	Action string `json:"action"`

	// Payload - данные действия, структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// SkillPayload - применение умения к точке.
type SkillPayload struct {
	SkillID  domain.SkillID `json:"skillId"`
	Target   *domain.Point  `json:"target,omitempty"`
	Upgrades []string       `json:"upgrades,omitempty"`
}

// MovePayload - шаг к точке (BASIC_MOVE).
type MovePayload struct {
	Target domain.Point `json:"target"`
}

// ReplayAction переводит команду клиента в запись ленты.
// Номер хода проставляет движок при приеме.
func (c ClientCommand) ReplayAction() domain.ReplayAction {
	return domain.ReplayAction{
		Token:   c.Token,
		Action:  domain.ParseAction(c.Action),
		Payload: c.Payload,
	}
}
