// Package skills - каталог умений. Умение никогда не мутирует состояние:
// оно проверяет цель и возвращает список атомарных эффектов, которые
// применяет интерпретатор из пакета effects.
package skills

import (
	"hop-core/internal/domain"
	"hop-core/pkg/utils"
	"slices"
	"sort"
)

// Slot - категория умения (для UI и ИИ).
type Slot string

const (
	SlotOffensive Slot = "OFFENSIVE"
	SlotDefensive Slot = "DEFENSIVE"
	SlotUtility   Slot = "UTILITY"
	SlotMovement  Slot = "MOVEMENT"
)

// BaseVariables - числовые параметры умения до апгрейдов.
type BaseVariables struct {
	Range    int `json:"range"`
	MinRange int `json:"minRange"`
	Cost     int `json:"cost"`
	Cooldown int `json:"cooldown"`
	Damage   int `json:"damage"`
	Momentum int `json:"momentum"`
}

// Upgrade - чистый модификатор параметров. Поведенческие апгрейды
// (FOLLOW_THROUGH, SCATTER) оставляют Modify пустым и проверяются через Context.Has.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Modify      func(BaseVariables) BaseVariables
}

// Context - все, что нужно умению для исполнения.
type Context struct {
	State  *domain.GameState
	Actor  *domain.Actor
	Target *domain.Point
	// Upgrades - активные апгрейды, переданные вызывающим кодом.
	Upgrades []string
	// RNG нужен только при исполнении; валидация его не трогает.
	RNG *utils.SeededRNG
}

// Has - активен ли апгрейд.
func (c *Context) Has(upgrade string) bool {
	return slices.Contains(c.Upgrades, upgrade)
}

// Result - итог исполнения умения.
// ConsumesTurn=false всегда означает пустой список эффектов.
type Result struct {
	Effects      []domain.Effect
	Messages     []string
	ConsumesTurn bool
}

// Reject - отказ без эффектов.
func Reject(msg string) Result {
	return Result{Messages: []string{msg}}
}

// Definition - описание умения.
type Definition struct {
	ID             domain.SkillID
	Name           string
	Description    string
	Slot           Slot
	Base           BaseVariables
	RequiresTarget bool
	Upgrades       map[string]Upgrade

	// Execute проверяет цель и возвращает эффекты.
	Execute func(ctx *Context) Result
	// ValidTargets - все точки, для которых Execute прошел бы валидацию.
	ValidTargets func(state *domain.GameState, actor *domain.Actor, upgrades []string) []domain.Point
}

// Vars применяет апгрейды к базовым параметрам. Порядок применения -
// по ID апгрейда, неизвестные ID игнорируются.
func (d *Definition) Vars(upgrades []string) BaseVariables {
	vars := d.Base
	ids := make([]string, 0, len(d.Upgrades))
	for id := range d.Upgrades {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		up := d.Upgrades[id]
		if up.Modify == nil || !slices.Contains(upgrades, id) {
			continue
		}
		vars = up.Modify(vars)
	}
	return vars
}
