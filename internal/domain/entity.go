package domain

import "slices"

// SkillID - идентификатор умения в реестре.
type SkillID string

// Actor - юнит на поле: игрок, враг, спутник или объект (бомба).
// Компоненты необязательны: nil означает отсутствие свойства.
type Actor struct {
	// Идентификация
	ID        string `json:"id" msgpack:"id"`
	Type      string `json:"type" msgpack:"type"`
	Subtype   string `json:"subtype,omitempty" msgpack:"subtype,omitempty"`
	FactionID string `json:"factionId" msgpack:"factionId"`

	Pos Point `json:"pos" msgpack:"pos"`

	HP    int `json:"hp" msgpack:"hp"`
	MaxHP int `json:"maxHp" msgpack:"maxHp"`

	// Упорядоченный список статусов
	StatusEffects []StatusEffect `json:"statusEffects,omitempty" msgpack:"statusEffects,omitempty"`
	ActiveSkills  []SkillSlot    `json:"activeSkills,omitempty" msgpack:"activeSkills,omitempty"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Trinity   *TrinityComponent   `json:"trinity,omitempty" msgpack:"trinity,omitempty"`
	Companion *CompanionComponent `json:"companion,omitempty" msgpack:"companion,omitempty"`
	Carry     *CarryComponent     `json:"carry,omitempty" msgpack:"carry,omitempty"`
}

// IsAlive - живой ли актор.
func (a *Actor) IsAlive() bool {
	return a != nil && a.HP > 0
}

// IsAllyOf - одна ли фракция.
func (a *Actor) IsAllyOf(other *Actor) bool {
	return a != nil && other != nil && a.FactionID == other.FactionID
}

// HasStatus проверяет наличие статуса данного типа.
func (a *Actor) HasStatus(t StatusType) bool {
	for _, s := range a.StatusEffects {
		if s.Type == t {
			return true
		}
	}
	return false
}

// Skill ищет слот умения по ID.
func (a *Actor) Skill(id SkillID) *SkillSlot {
	for i := range a.ActiveSkills {
		if a.ActiveSkills[i].ID == id {
			return &a.ActiveSkills[i]
		}
	}
	return nil
}

// Clone возвращает глубокую копию актора.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	c := *a
	c.StatusEffects = slices.Clone(a.StatusEffects)
	c.ActiveSkills = make([]SkillSlot, len(a.ActiveSkills))
	for i, s := range a.ActiveSkills {
		s.ActiveUpgrades = slices.Clone(s.ActiveUpgrades)
		c.ActiveSkills[i] = s
	}
	if a.Trinity != nil {
		t := *a.Trinity
		c.Trinity = &t
	}
	if a.Companion != nil {
		comp := *a.Companion
		c.Companion = &comp
	}
	if a.Carry != nil {
		carry := *a.Carry
		c.Carry = &carry
	}
	return &c
}
