package render

import (
	"hop-core/internal/domain"
	"hop-core/internal/systems"
	"strings"
)

// Палитра доски.
var (
	GlyphVoid    = MakeGlyph(0x000000, ' ')
	GlyphFloor   = MakeGlyph(0x808080, '.')
	GlyphWall    = MakeGlyph(0xC0C0C0, '#')
	GlyphLiquid  = MakeGlyph(0xFF4500, '~')
	GlyphFire    = MakeGlyph(0xFFA500, '^')
	GlyphHazard  = MakeGlyph(0xFF0000, '!')
	GlyphSpear   = MakeGlyph(0xDEB887, '/')
	GlyphItem    = MakeGlyph(0xFFD700, '*')
	GlyphPlayer  = MakeGlyph(0x00FF00, '@')
	GlyphBomb    = MakeGlyph(0xFF00FF, 'b')
	GlyphUnknown = MakeGlyph(0xFFFFFF, '?')
)

// ActorGlyph - актор рисуется первой буквой подтипа.
func ActorGlyph(a *domain.Actor) Glyph {
	switch {
	case a.Type == domain.ActorTypePlayer:
		return GlyphPlayer
	case a.Subtype == "BOMB":
		return GlyphBomb
	case a.Subtype == "":
		return GlyphUnknown
	}
	color := uint32(0xFF5555)
	if a.FactionID == domain.FactionNeutral {
		color = 0xAAAAAA
	}
	return MakeGlyph(color, a.Subtype[0])
}

// TileGlyph - итоговые черты клетки, без акторов и предметов.
func TileGlyph(state *domain.GameState, p domain.Point) Glyph {
	if !state.Grid.InBounds(p) {
		return GlyphVoid
	}
	switch {
	case systems.HasTrait(state, p, domain.TraitBlocksMovement):
		return GlyphWall
	case systems.HasTrait(state, p, domain.TraitLiquid):
		return GlyphLiquid
	case systems.HasTrait(state, p, domain.TraitFire):
		return GlyphFire
	case systems.IsHazardous(state, p):
		return GlyphHazard
	}
	return GlyphFloor
}

// GlyphAt - что видно в точке: актор, затем предмет, затем клетка.
func GlyphAt(state *domain.GameState, p domain.Point) Glyph {
	if a := state.ActorAt(p); a != nil {
		return ActorGlyph(a)
	}
	if items := state.ItemsAt(p); len(items) > 0 {
		if items[0].Type == domain.ItemSpear {
			return GlyphSpear
		}
		return GlyphItem
	}
	return TileGlyph(state, p)
}

// Board рисует прямоугольник хранения построчно по r. Каждая строка
// сдвинута на полклетки, так аксиальные координаты ложатся в шестиугольники.
func Board(state *domain.GameState, color bool) string {
	var sb strings.Builder
	g := state.Grid
	for r := 0; r < g.Height; r++ {
		line := strings.Repeat(" ", r)
		sb.WriteString(line)
		for q := 0; q < g.Width; q++ {
			gl := GlyphAt(state, domain.Axial(q, r))
			if color && gl != GlyphVoid {
				sb.WriteString(gl.ANSI())
			} else {
				sb.WriteByte(gl.Char())
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
