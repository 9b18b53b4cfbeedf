package domain

// --- КОМПОНЕНТЫ ---

// SkillSlot - умение, доступное актору, с текущей перезарядкой.
type SkillSlot struct {
	ID              SkillID  `json:"id" msgpack:"id"`
	CurrentCooldown int      `json:"currentCooldown" msgpack:"currentCooldown"`
	ActiveUpgrades  []string `json:"activeUpgrades,omitempty" msgpack:"activeUpgrades,omitempty"`
}

// Ready - можно ли использовать умение сейчас.
func (s SkillSlot) Ready() bool {
	return s.CurrentCooldown <= 0
}

// TrinityComponent - три базовых атрибута (Тело, Разум, Инстинкт).
type TrinityComponent struct {
	Body     int `json:"body" msgpack:"body"`
	Mind     int `json:"mind" msgpack:"mind"`
	Instinct int `json:"instinct" msgpack:"instinct"`
}

// CompanionComponent - данные спутника игрока.
type CompanionComponent struct {
	OwnerID string `json:"ownerId" msgpack:"ownerId"`
	Mode    string `json:"mode,omitempty" msgpack:"mode,omitempty"` // "follow", "guard"
}

// CarryComponent - что актор держит в руках (копье, бомбы).
type CarryComponent struct {
	HasSpear bool `json:"hasSpear" msgpack:"hasSpear"`
}
