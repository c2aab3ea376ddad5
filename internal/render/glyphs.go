package render

// Level is an abstract activity intensity as shown on the contribution
// calendar, from 0 (blank) to 4 (darkest).
type Level uint8

// MaxLevel is the darkest intensity the calendar can display.
const MaxLevel Level = 4

// GlyphRows and GlyphCols fix the visual footprint of a single character:
// 7 weekday rows (the calendar's fixed height) by 3 week columns.
const (
	GlyphRows = 7
	GlyphCols = 3
)

// GlyphSize is the number of cells in one glyph bitmap.
const GlyphSize = GlyphRows * GlyphCols

// Glyph is the bitmap for one character, stored column-major: the 7 cells of
// the first week column, then the second, then the third.
type Glyph [GlyphSize]Level

// LookupGlyph returns the bitmap for a supported character. The second
// return reports whether the character is renderable at all; callers must
// treat a miss as a hard error, never substitute a fallback glyph.
func LookupGlyph(r rune) (Glyph, bool) {
	g, ok := glyphs[r]
	return g, ok
}

// Supported reports whether every rune of text has a glyph.
func Supported(text string) bool {
	for _, r := range text {
		if _, ok := glyphs[r]; !ok {
			return false
		}
	}
	return true
}

// glyphs maps each supported character to its calendar bitmap. Cells are
// almost always 0 or 4; the colon uses a level-3 cell for its upper dot.
var glyphs = map[rune]Glyph{
	'A': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 4, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'B': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 0, 4, 4, 4, 0, 0,
	},

	'C': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 0, 4, 4, 0,
	},

	'D': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 0, 4, 4, 4, 0, 0,
	},

	'E': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
	},

	'F': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 0, 0,
		0, 4, 0, 0, 0, 0, 0,
	},

	'G': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 0, 4, 4, 4, 0,
	},

	'H': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'I': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
	},

	'J': {
		0, 4, 0, 0, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'K': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 4, 4, 0,
	},

	'L': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
	},

	'M': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 4, 4, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'N': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 4, 4, 4, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'O': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'P': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 0, 0,
		0, 4, 4, 4, 0, 0, 0,
	},

	'Q': {
		0, 4, 4, 4, 4, 0, 0,
		0, 4, 0, 0, 4, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'R': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 4, 4, 0,
	},

	'S': {
		0, 4, 4, 4, 0, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 0, 4, 4, 4, 0,
	},

	'T': {
		0, 4, 0, 0, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 0, 0,
	},

	'U': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'V': {
		0, 4, 4, 4, 4, 0, 0,
		0, 0, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 0, 0,
	},

	'W': {
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 4, 4, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'X': {
		0, 4, 4, 0, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 4, 4, 0,
	},

	'Y': {
		0, 4, 4, 4, 0, 0, 0,
		0, 0, 0, 4, 4, 4, 0,
		0, 4, 4, 4, 0, 0, 0,
	},

	'Z': {
		0, 4, 0, 0, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 4, 0, 0, 4, 0,
	},

	'0': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'1': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
	},

	'2': {
		0, 4, 0, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 4, 4, 0, 4, 0,
	},

	'3': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'4': {
		0, 4, 4, 4, 0, 0, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'5': {
		0, 4, 4, 4, 0, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 0, 4, 4, 4, 0,
	},

	'6': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 0, 4, 4, 4, 0,
	},

	'7': {
		0, 4, 0, 0, 0, 0, 0,
		0, 4, 0, 4, 4, 4, 0,
		0, 4, 4, 0, 0, 0, 0,
	},

	'8': {
		0, 4, 4, 4, 4, 4, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'9': {
		0, 4, 4, 4, 0, 0, 0,
		0, 4, 0, 4, 0, 0, 0,
		0, 4, 4, 4, 4, 4, 0,
	},

	'?': {
		0, 4, 0, 0, 0, 0, 0,
		0, 4, 0, 4, 0, 4, 0,
		0, 0, 4, 0, 0, 0, 0,
	},

	'!': {
		0, 0, 0, 0, 0, 0, 0,
		0, 4, 4, 4, 0, 4, 0,
		0, 0, 0, 0, 0, 0, 0,
	},

	'_': {
		0, 0, 0, 0, 0, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
		0, 0, 0, 0, 0, 4, 0,
	},

	'+': {
		0, 0, 4, 0, 0, 0, 4,
		4, 4, 0, 0, 0, 4, 0,
		0, 0, 0, 0, 0, 0, 0,
	},

	'-': {
		0, 0, 0, 0, 0, 0, 4,
		4, 4, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	},

	'%': {
		0, 4, 0, 0, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 0, 4, 0,
	},

	'(': {
		0, 0, 4, 4, 4, 0, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
	},

	')': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
		0, 0, 4, 4, 4, 0, 0,
	},

	'{': {
		0, 0, 0, 4, 0, 0, 0,
		0, 4, 4, 0, 4, 4, 0,
		0, 4, 0, 0, 0, 4, 0,
	},

	'}': {
		0, 4, 0, 0, 0, 4, 0,
		0, 4, 4, 0, 4, 4, 0,
		0, 0, 0, 4, 0, 0, 0,
	},

	'=': {
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
	},

	'<': {
		0, 0, 0, 4, 0, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
	},

	'>': {
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 4, 0, 4, 0, 0,
		0, 0, 0, 4, 0, 0, 0,
	},

	'^': {
		0, 0, 4, 0, 0, 0, 0,
		4, 0, 0, 0, 0, 0, 0,
		4, 0, 0, 0, 0, 0, 0,
	},

	' ': {
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	},

	':': {
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 3, 0, 4, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	},
}
