package domain

import "fmt"

// GridShape - форма игровой области.
type GridShape uint8

const (
	// ShapeRect - весь прямоугольник q∈[0,W), r∈[0,H) играбелен.
	ShapeRect GridShape = iota
	// ShapeDiamond - дополнительно обрезается по сумме q + r.
	ShapeDiamond
)

// Размеры арены по умолчанию.
const (
	DefaultGridWidth  = 9
	DefaultGridHeight = 11
)

// GridConfig описывает границы сетки.
type GridConfig struct {
	Width  int       `json:"width" msgpack:"width"`
	Height int       `json:"height" msgpack:"height"`
	Shape  GridShape `json:"shape" msgpack:"shape"`
}

// DefaultGrid - ромбовидная арена 9x11.
func DefaultGrid() GridConfig {
	return GridConfig{Width: DefaultGridWidth, Height: DefaultGridHeight, Shape: ShapeDiamond}
}

// Validate проверяет, что конфигурация сетки пригодна для симуляции.
func (g GridConfig) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	if g.Shape != ShapeRect && g.Shape != ShapeDiamond {
		return fmt.Errorf("%w: unknown shape %d", ErrInvalidGrid, g.Shape)
	}
	return nil
}

// DiamondFloor - минимальная допустимая сумма q + r для ромба.
func (g GridConfig) DiamondFloor() int {
	return g.Width / 2
}

// DiamondCeil - максимальная допустимая сумма q + r для ромба.
func (g GridConfig) DiamondCeil() int {
	return g.Width/2 + g.Height - 1
}

// InRect - полуоткрытая проверка по прямоугольнику хранения.
func (g GridConfig) InRect(p Point) bool {
	return p.Q >= 0 && p.Q < g.Width && p.R >= 0 && p.R < g.Height
}

// InBounds - принадлежность играбельной области.
func (g GridConfig) InBounds(p Point) bool {
	if !p.Valid() || !g.InRect(p) {
		return false
	}
	if g.Shape == ShapeDiamond {
		sum := p.Q + p.R
		if sum < g.DiamondFloor() || sum > g.DiamondCeil() {
			return false
		}
	}
	return true
}

// Index возвращает плотный индекс клетки (r * W + q) или -1 вне прямоугольника.
func (g GridConfig) Index(p Point) int {
	if !g.InRect(p) {
		return -1
	}
	return p.R*g.Width + p.Q
}

// Cells возвращает количество клеток прямоугольника хранения.
func (g GridConfig) Cells() int {
	return g.Width * g.Height
}

// AllPoints перечисляет играбельные точки в каноническом порядке (r, затем q).
func (g GridConfig) AllPoints() []Point {
	points := make([]Point, 0, g.Cells())
	for r := 0; r < g.Height; r++ {
		for q := 0; q < g.Width; q++ {
			p := Axial(q, r)
			if g.InBounds(p) {
				points = append(points, p)
			}
		}
	}
	return points
}
