package domain

import (
	"fmt"
	"math"
)

// Point - кубическая координата гекса (q, r, s).
// Инвариант: q + r + s == 0. Значение неизменяемое, сравнивается через ==.
type Point struct {
	Q int `json:"q" msgpack:"q"`
	R int `json:"r" msgpack:"r"`
	S int `json:"s" msgpack:"s"`
}

// NewPoint создает координату с проверкой инварианта.
// Нарушение инварианта - это структурная ошибка данных, а не игровая ситуация.
func NewPoint(q, r, s int) (Point, error) {
	if q+r+s != 0 {
		return Point{}, fmt.Errorf("%w: (%d,%d,%d)", ErrInvalidCoordinate, q, r, s)
	}
	return Point{Q: q, R: r, S: s}, nil
}

// Axial строит точку из осевых координат, s вычисляется.
func Axial(q, r int) Point {
	return Point{Q: q, R: r, S: -q - r}
}

// Valid проверяет инвариант q + r + s == 0.
func (p Point) Valid() bool {
	return p.Q+p.R+p.S == 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Q, p.R, p.S)
}

// Add возвращает сумму координат.
func (p Point) Add(o Point) Point {
	return Point{Q: p.Q + o.Q, R: p.R + o.R, S: p.S + o.S}
}

// Sub возвращает разность координат.
func (p Point) Sub(o Point) Point {
	return Point{Q: p.Q - o.Q, R: p.R - o.R, S: p.S - o.S}
}

// Scale умножает вектор на k.
func (p Point) Scale(k int) Point {
	return Point{Q: p.Q * k, R: p.R * k, S: p.S * k}
}

// Directions - шесть единичных векторов в фиксированном порядке.
// Порядок важен: BFS и лучи перебирают направления именно так.
var Directions = [6]Point{
	{Q: 1, R: -1, S: 0},
	{Q: 1, R: 0, S: -1},
	{Q: 0, R: 1, S: -1},
	{Q: -1, R: 1, S: 0},
	{Q: -1, R: 0, S: 1},
	{Q: 0, R: -1, S: 1},
}

// Direction возвращает вектор направления по индексу (0..5, по модулю).
func Direction(i int) Point {
	i %= 6
	if i < 0 {
		i += 6
	}
	return Directions[i]
}

// Neighbor возвращает соседа в направлении dir.
func (p Point) Neighbor(dir int) Point {
	return p.Add(Direction(dir))
}

// Neighbors возвращает шесть соседей в порядке Directions.
func (p Point) Neighbors() [6]Point {
	var result [6]Point
	for i, d := range Directions {
		result[i] = p.Add(d)
	}
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance - гекс-дистанция: max(|dq|, |dr|, |ds|).
func Distance(a, b Point) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S - b.S)

	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// DistanceTo - удобная форма Distance.
func (p Point) DistanceTo(other Point) int {
	return Distance(p, other)
}

// IsAdjacent возвращает true для соседних гексов.
func (p Point) IsAdjacent(other Point) bool {
	return Distance(p, other) == 1
}

// IsAxial проверяет, что точки лежат на одной оси (совпадает q, r или s).
// Диагональные цели для прямолинейных умений отклоняются именно этой проверкой.
func IsAxial(a, b Point) bool {
	return a.Q == b.Q || a.R == b.R || a.S == b.S
}

// DirectionIndex возвращает индекс направления от a к b, если точки на одной оси.
func DirectionIndex(a, b Point) (int, bool) {
	if a == b || !IsAxial(a, b) {
		return 0, false
	}
	d := Distance(a, b)
	delta := b.Sub(a)
	unit := Point{Q: delta.Q / d, R: delta.R / d, S: delta.S / d}
	for i, dir := range Directions {
		if dir == unit {
			return i, true
		}
	}
	return 0, false
}

// AxialLine возвращает точки от a (не включая) до b (включая) по прямой оси.
// Для неосевых пар возвращает false.
func AxialLine(a, b Point) ([]Point, bool) {
	dir, ok := DirectionIndex(a, b)
	if !ok {
		return nil, false
	}
	n := Distance(a, b)
	line := make([]Point, 0, n)
	cur := a
	for i := 0; i < n; i++ {
		cur = cur.Neighbor(dir)
		line = append(line, cur)
	}
	return line, true
}

// Line - произвольная гекс-линия (кубическая интерполяция), включая оба конца.
// Используется проверкой прямой видимости.
func Line(a, b Point) []Point {
	n := Distance(a, b)
	if n == 0 {
		return []Point{a}
	}
	// Небольшой сдвиг убирает неоднозначность округления на границе гексов.
	const eps = 1e-6
	aq, ar, as := float64(a.Q)+eps, float64(a.R)+eps, float64(a.S)-2*eps
	bq, br, bs := float64(b.Q)+eps, float64(b.R)+eps, float64(b.S)-2*eps

	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		points = append(points, cubeRound(
			aq+(bq-aq)*t,
			ar+(br-ar)*t,
			as+(bs-as)*t,
		))
	}
	return points
}

func cubeRound(fq, fr, fs float64) Point {
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Point{Q: int(q), R: int(r), S: int(s)}
}

// ComparePoints задает канонический порядок (q, затем r).
// Нужен везде, где результат не должен зависеть от порядка обхода map.
func ComparePoints(a, b Point) int {
	if a.Q != b.Q {
		if a.Q < b.Q {
			return -1
		}
		return 1
	}
	if a.R != b.R {
		if a.R < b.R {
			return -1
		}
		return 1
	}
	return 0
}
