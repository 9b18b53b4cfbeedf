package domain

// EffectKind - тег атомарного эффекта.
type EffectKind uint8

const (
	EffectUnknown EffectKind = iota
	EffectDisplacement
	EffectDamage
	EffectApplyStatus
	EffectSpawnActor
	EffectSpawnItem
	EffectModifyCooldown
	EffectMessage
	EffectJuice
	EffectPlaceTileEffect
	EffectKineticPush
)

var effectKindToString = map[EffectKind]string{
	EffectDisplacement:    "DISPLACEMENT",
	EffectDamage:          "DAMAGE",
	EffectApplyStatus:     "APPLY_STATUS",
	EffectSpawnActor:      "SPAWN_ACTOR",
	EffectSpawnItem:       "SPAWN_ITEM",
	EffectModifyCooldown:  "MODIFY_COOLDOWN",
	EffectMessage:         "MESSAGE",
	EffectJuice:           "JUICE",
	EffectPlaceTileEffect: "PLACE_TILE_EFFECT",
	EffectKineticPush:     "KINETIC_PUSH",
}

// String реализует интерфейс Stringer (для логов)
func (k EffectKind) String() string {
	if val, ok := effectKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Effect - атомарное намерение. Единственный канал, через который умение
// меняет состояние: умения никогда не мутируют состояние напрямую.
type Effect interface {
	Kind() EffectKind
}

// TargetRef указывает цель эффекта: по ID либо по точке.
// Точка разрешается в момент применения, потому что предыдущие эффекты
// пакета могли сдвинуть актора.
type TargetRef struct {
	ActorID  string `json:"actorId,omitempty"`
	Point    Point  `json:"point"`
	HasPoint bool   `json:"hasPoint,omitempty"`
}

// ByID - ссылка на актора по идентификатору.
func ByID(id string) TargetRef {
	return TargetRef{ActorID: id}
}

// AtPoint - ссылка на того, кто окажется в точке.
func AtPoint(p Point) TargetRef {
	return TargetRef{Point: p, HasPoint: true}
}

// Empty - ссылка не указывает ни на что.
func (t TargetRef) Empty() bool {
	return t.ActorID == "" && !t.HasPoint
}

// Displacement - перемещение актора.
type Displacement struct {
	Target      TargetRef
	Destination Point
	// Path - клетки от старта (не включая) до Destination (включая).
	Path []Point
	// SimulatePath - проверять опасные клетки по пути, а не только в конце.
	SimulatePath bool
	// IgnoreWalls - промежуточные стены не мешают (прыжок). Стена в точке
	// назначения блокирует всегда.
	IgnoreWalls bool
	// IgnoreCollision - промежуточные акторы не мешают. Занятая точка
	// назначения блокирует всегда.
	IgnoreCollision bool
	// Forced - перемещение навязано (толчок): путь симулируется всегда,
	// союзники на пути не пропускают.
	Forced bool
}

func (Displacement) Kind() EffectKind { return EffectDisplacement }

// Damage - урон (отрицательное значение лечит).
type Damage struct {
	Target TargetRef
	Amount int
	Reason string
}

func (Damage) Kind() EffectKind { return EffectDamage }

// ApplyStatus - добавление статуса.
type ApplyStatus struct {
	Target   TargetRef
	Status   StatusType
	Duration int
}

func (ApplyStatus) Kind() EffectKind { return EffectApplyStatus }

// SpawnActor - появление нового актора. Пустой ID будет синтезирован.
type SpawnActor struct {
	Actor Actor
}

func (SpawnActor) Kind() EffectKind { return EffectSpawnActor }

// SpawnItem - появление предмета на полу.
type SpawnItem struct {
	ItemType string
	Position Point
	// FromActorID - актор, из рук которого предмет ушел (брошенное копье).
	FromActorID string
}

func (SpawnItem) Kind() EffectKind { return EffectSpawnItem }

// ModifyCooldown меняет перезарядку умения актора.
type ModifyCooldown struct {
	ActorID  string
	SkillID  SkillID
	Amount   int
	SetExact bool
}

func (ModifyCooldown) Kind() EffectKind { return EffectModifyCooldown }

// Message - текст для игрока.
type Message struct {
	Text string
}

func (Message) Kind() EffectKind { return EffectMessage }

// Juice - подсказка для слоя презентации. Для ядра инертна.
type Juice struct {
	Name   string
	Target Point
	Path   []Point
	Params map[string]string
}

func (Juice) Kind() EffectKind { return EffectJuice }

// PlaceTileEffect оставляет временный эффект на клетке (огонь от огненного шара).
type PlaceTileEffect struct {
	Target   Point
	Effect   TileEffectID
	Duration int
}

func (PlaceTileEffect) Kind() EffectKind { return EffectPlaceTileEffect }

// KineticPush - силовое смещение цепочки; разрешается резолвером толчков.
type KineticPush struct {
	SourceID  string
	Impact    Point
	Direction int
	Momentum  int
	// InstigatorFollows - инициатор занимает освободившуюся клетку удара.
	InstigatorFollows bool
	// Anchor - клетка, где инициатор должен стоять в момент применения.
	// Если он туда не дошел, толчок не происходит.
	Anchor *Point
}

func (KineticPush) Kind() EffectKind { return EffectKineticPush }
