package skills

import (
	"fmt"
	"hop-core/internal/domain"
	"slices"
	"sync"
)

// Registry - каталог умений по ID.
type Registry struct {
	mu   sync.RWMutex
	defs map[domain.SkillID]*Definition
}

// NewRegistry создает пустой каталог.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[domain.SkillID]*Definition)}
}

// Register добавляет умение. Повторная регистрация ID - ошибка.
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.ID == "" || def.Execute == nil {
		return fmt.Errorf("register skill: incomplete definition")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.ID]; exists {
		return fmt.Errorf("register skill %s: %w", def.ID, domain.ErrDuplicateID)
	}
	r.defs[def.ID] = def
	return nil
}

// Get ищет умение.
func (r *Registry) Get(id domain.SkillID) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("skill %s: %w", id, domain.ErrUnknownSkill)
	}
	return def, nil
}

// MustGet - Get для заведомо известных ID (каталог по умолчанию).
func (r *Registry) MustGet(id domain.SkillID) *Definition {
	def, err := r.Get(id)
	if err != nil {
		panic(err)
	}
	return def
}

// IDs - отсортированный список зарегистрированных умений.
func (r *Registry) IDs() []domain.SkillID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]domain.SkillID, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// NewDefaultRegistry - каталог со всеми встроенными умениями.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range []*Definition{
		basicMove(),
		basicAttack(),
		dash(),
		shieldBash(),
		spearThrow(),
		fireball(),
		bombToss(),
		jump(),
	} {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	return r
}

// Default - общий каталог встроенных умений.
var Default = NewDefaultRegistry()

// Get ищет умение в каталоге по умолчанию.
func Get(id domain.SkillID) (*Definition, error) {
	return Default.Get(id)
}
