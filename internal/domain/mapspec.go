package domain

// MapSpec - готовый результат генерации уровня, который потребляет ядро.
// Сам рельеф ядро никогда не генерирует.
type MapSpec struct {
	Name    string
	Grid    GridConfig
	Tiles   []*Tile
	Walls   []Point
	Hazards []Point
	Spawns  []*Actor
	Items   []*Item
	Seed    int64
}
