package effects

import (
	"hop-core/internal/domain"
	"hop-core/internal/systems"
	"hop-core/pkg/utils"
	"strings"
)

// applySpawnActor вставляет нового актора с полным ID и набором компонентов
// по умолчанию. Уже вычисленные цели текущего пакета это не меняет: ссылки
// по ID на нового актора в том же пакете невозможны.
func (in *interpreter) applySpawnActor(s domain.SpawnActor) (StepStatus, string) {
	a := s.Actor.Clone()
	if !in.state.Grid.InBounds(a.Pos) || !systems.IsWalkable(in.state, a.Pos) {
		return in.noop("spawn position blocked: " + a.Pos.String())
	}
	if systems.IsHazardous(in.state, a.Pos) {
		return in.noop("spawn position hazardous: " + a.Pos.String())
	}
	if other := in.state.ActorAt(a.Pos); other != nil {
		return in.noop("spawn position occupied by " + other.ID)
	}

	if a.ID == "" {
		in.state.SpawnCounter++
		prefix := strings.ToLower(a.Subtype)
		if prefix == "" {
			prefix = "actor"
		}
		a.ID = utils.DeterministicID(in.state.RNG.Seed, prefix+"-", in.state.SpawnCounter)
		for i := range a.StatusEffects {
			a.StatusEffects[i].ID = domain.StatusID(a.ID, a.StatusEffects[i].Type)
		}
	}
	if in.state.Actor(a.ID) != nil {
		return in.noop("spawn id already in use: " + a.ID)
	}

	// Компоненты по умолчанию
	if a.Type == "" {
		a.Type = domain.ActorTypeObject
	}
	if a.FactionID == "" {
		a.FactionID = domain.FactionNeutral
	}
	if a.MaxHP <= 0 {
		a.MaxHP = a.HP
	}
	if a.MaxHP <= 0 {
		a.MaxHP = 1
	}
	if a.HP <= 0 || a.HP > a.MaxHP {
		a.HP = a.MaxHP
	}

	in.state.AddActor(a)
	in.res.Juice = append(in.res.Juice, domain.Juice{Name: "spawn", Target: a.Pos})
	return StepApplied, ""
}

// applySpawnItem кладет предмет на пол.
func (in *interpreter) applySpawnItem(s domain.SpawnItem) (StepStatus, string) {
	if !in.state.Grid.InBounds(s.Position) || !systems.IsWalkable(in.state, s.Position) {
		return in.noop("item position blocked: " + s.Position.String())
	}
	if s.ItemType == "" {
		return in.noop("empty item type")
	}

	if s.FromActorID != "" {
		if from := in.state.Actor(s.FromActorID); from != nil && from.Carry != nil && s.ItemType == domain.ItemSpear {
			from.Carry.HasSpear = false
		}
	}

	in.state.SpawnCounter++
	item := &domain.Item{
		ID:       utils.DeterministicID(in.state.RNG.Seed, "item-", in.state.SpawnCounter),
		Type:     s.ItemType,
		Position: s.Position,
	}
	in.state.Items = append(in.state.Items, item)

	// Если на клетке стоит носитель - он сразу подбирает предмет.
	if a := in.state.ActorAt(s.Position); a != nil {
		for _, msg := range systems.PickupItems(in.state, a) {
			in.res.Messages = append(in.res.Messages, msg)
		}
	}
	return StepApplied, ""
}

// applyTileEffect оставляет временный эффект на клетке.
func (in *interpreter) applyTileEffect(t domain.PlaceTileEffect) (StepStatus, string) {
	if !in.state.Grid.InBounds(t.Target) {
		return in.noop("tile effect out of bounds: " + t.Target.String())
	}
	tile := in.state.EnsureTile(t.Target)
	if tile == nil {
		return in.noop("tile record unavailable: " + t.Target.String())
	}
	tile.AddEffect(domain.TileEffect{ID: t.Effect, Duration: t.Duration})
	return StepApplied, ""
}
