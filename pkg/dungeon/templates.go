package dungeon

import (
	"hop-core/internal/domain"
	"hop-core/internal/skills"
	"slices"
	"sort"
	"strings"
)

// ActorTemplate определяет шаблон для создания актора
type ActorTemplate struct {
	Subtype  string
	Type     string
	Faction  string
	HP       int
	Skills   []domain.SkillID
	HasSpear bool
	// Fuse > 0 - актор появляется с тикающим фитилем (бомба).
	Fuse int
}

// Spawn создает актора из шаблона на заданной позиции
func (t ActorTemplate) Spawn(id string, pos domain.Point) *domain.Actor {
	a := &domain.Actor{
		ID:        id,
		Type:      t.Type,
		Subtype:   t.Subtype,
		FactionID: t.Faction,
		Pos:       pos,
		HP:        t.HP,
		MaxHP:     t.HP,
	}
	for _, s := range t.Skills {
		a.ActiveSkills = append(a.ActiveSkills, domain.SkillSlot{ID: s})
	}
	if t.HasSpear {
		a.Carry = &domain.CarryComponent{HasSpear: true}
	}
	if t.Fuse > 0 {
		a.StatusEffects = append(a.StatusEffects, domain.StatusEffect{
			ID:       domain.StatusID(id, domain.StatusFuse),
			Type:     domain.StatusFuse,
			Duration: t.Fuse,
		})
	}
	return a
}

// IDPrefix - префикс идентификаторов актора этого шаблона.
func (t ActorTemplate) IDPrefix() string {
	return strings.ToLower(t.Subtype)
}

// --- ИГРОК ---

var Player = ActorTemplate{
	Subtype:  "HERO",
	Type:     domain.ActorTypePlayer,
	Faction:  domain.FactionPlayer,
	HP:       3,
	HasSpear: true,
	Skills: []domain.SkillID{
		skills.BasicMove,
		skills.BasicAttack,
		skills.Dash,
		skills.ShieldBash,
		skills.SpearThrow,
		skills.Fireball,
		skills.BombToss,
		skills.Jump,
	},
}

// --- ВРАГИ ---

var Footman = ActorTemplate{
	Subtype: "FOOTMAN",
	Type:    domain.ActorTypeEnemy,
	Faction: domain.FactionEnemy,
	HP:      2,
	Skills:  []domain.SkillID{skills.BasicMove, skills.BasicAttack, skills.ShieldBash},
}

var Archer = ActorTemplate{
	Subtype:  "ARCHER",
	Type:     domain.ActorTypeEnemy,
	Faction:  domain.FactionEnemy,
	HP:       1,
	HasSpear: true,
	Skills:   []domain.SkillID{skills.BasicMove, skills.BasicAttack, skills.SpearThrow},
}

var Bomber = ActorTemplate{
	Subtype: "BOMBER",
	Type:    domain.ActorTypeEnemy,
	Faction: domain.FactionEnemy,
	HP:      1,
	Skills:  []domain.SkillID{skills.BasicMove, skills.BombToss},
}

var Bomb = ActorTemplate{
	Subtype: skills.BombSubtype,
	Type:    domain.ActorTypeObject,
	Faction: domain.FactionNeutral,
	HP:      1,
	Fuse:    domain.BombFuse,
}

// EnemyTemplates - шаблоны по имени (арены, отладочный спавн).
var EnemyTemplates = map[string]ActorTemplate{
	"FOOTMAN": Footman,
	"ARCHER":  Archer,
	"BOMBER":  Bomber,
	"BOMB":    Bomb,
}

// TemplateNames - отсортированные имена шаблонов.
func TemplateNames() []string {
	names := make([]string, 0, len(EnemyTemplates))
	for name := range EnemyTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KnowsSkill - есть ли умение в шаблоне.
func (t ActorTemplate) KnowsSkill(id domain.SkillID) bool {
	return slices.Contains(t.Skills, id)
}
