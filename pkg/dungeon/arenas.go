package dungeon

import (
	"fmt"
	"hop-core/internal/domain"
	"sort"
)

// arenaFactories - именованные арены для CLI и тестов.
var arenaFactories = map[string]func(seed int64) *ArenaBuilder{
	// Один пехотинец рядом с игроком.
	"training": func(seed int64) *ArenaBuilder {
		return NewArena(ArenaConfig{Name: "training", Seed: seed}).
			WithPlayer(domain.Axial(3, 6)).
			SpawnEnemy("FOOTMAN", domain.Axial(3, 5))
	},
	// Два врага в линию перед стеной: толчок упирается в нее.
	"chain": func(seed int64) *ArenaBuilder {
		return NewArena(ArenaConfig{Name: "chain", Seed: seed}).
			WithPlayer(domain.Axial(3, 6)).
			SpawnEnemy("FOOTMAN", domain.Axial(3, 5)).
			SpawnEnemy("FOOTMAN", domain.Axial(3, 4)).
			WithWall(domain.Axial(3, 3))
	},
	// Лава, стены (в том числе из старого списка) и смешанный отряд.
	"gauntlet": func(seed int64) *ArenaBuilder {
		return NewArena(ArenaConfig{Name: "gauntlet", Seed: seed}).
			WithPlayer(domain.Axial(4, 9)).
			WithWall(domain.Axial(2, 6)).
			WithWall(domain.Axial(6, 4)).
			WithLegacyWall(domain.Axial(4, 5)).
			WithLava(domain.Axial(3, 5)).
			WithLava(domain.Axial(5, 5)).
			WithLegacyHazard(domain.Axial(4, 3)).
			SpawnEnemy("FOOTMAN", domain.Axial(4, 6)).
			SpawnEnemy("FOOTMAN", domain.Axial(5, 3)).
			SpawnEnemy("ARCHER", domain.Axial(4, 2)).
			SpawnEnemy("BOMBER", domain.Axial(6, 2))
	},
}

// Arena собирает именованную арену.
func Arena(name string, seed int64) (domain.MapSpec, error) {
	factory, ok := arenaFactories[name]
	if !ok {
		return domain.MapSpec{}, fmt.Errorf("unknown arena %q (known: %v)", name, ArenaNames())
	}
	return factory(seed).Build()
}

// ArenaNames - отсортированный список арен.
func ArenaNames() []string {
	names := make([]string, 0, len(arenaFactories))
	for name := range arenaFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
