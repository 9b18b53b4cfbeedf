package render

import (
	"fmt"
)

// Glyph - упакованный цветной символ клетки доски.
// Использует 32 бита (uint32):
//
//	[0:8] - символ (1 байт) - маска 0xFF
//	[8:32] - RGB-цвет (3 байта) - маска 0xFFFFFF
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph упаковывает цвет 0xRRGGBB и ASCII символ.
// Лишние старшие биты цвета отбрасываются.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color - 24-битный цвет 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char - символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// String реализует fmt.Stringer: "Glyph{char='A', color=#FFA500}".
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	// Непечатаемые символы - в hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor - цвет строкой, например "#00FF00".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// ANSI - символ в truecolor escape-последовательности терминала.
func (g Glyph) ANSI() string {
	c := g.Color()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%c\x1b[0m", c>>16&0xFF, c>>8&0xFF, c&0xFF, g.Char())
}
