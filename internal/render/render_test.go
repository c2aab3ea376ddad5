package render

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anchor is a known Saturday.
var anchor = time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)

func TestLastWeekEnd(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"saturday is its own week end", anchor, anchor},
		{"sunday steps back one day", anchor.AddDate(0, 0, 1), anchor},
		{"wednesday steps back four days", anchor.AddDate(0, 0, 4), anchor},
		{"friday steps back six days", anchor.AddDate(0, 0, 6), anchor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LastWeekEnd(tc.now))
		})
	}
}

func TestRenderSingleCharacter(t *testing.T) {
	m, err := RenderText("A", anchor)
	require.NoError(t, err)

	// 21 glyph cells plus the 7-day spacer column.
	require.Equal(t, GlyphSize+GlyphRows, m.Len())

	dates := m.Dates()
	assert.Equal(t, anchor, dates[len(dates)-1])
	assert.Equal(t, anchor.AddDate(0, 0, -27), dates[0])
	assert.Equal(t, time.Saturday, dates[len(dates)-1].Weekday())

	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i], "dates must be contiguous")
	}
}

func TestRenderCharacterPlacement(t *testing.T) {
	m, err := RenderText("AB", anchor)
	require.NoError(t, err)
	require.Equal(t, 2*(GlyphSize+GlyphRows), m.Len())

	dates := m.Dates()
	glyphA, _ := LookupGlyph('A')
	glyphB, _ := LookupGlyph('B')

	// Oldest dates: A's spacer, then A's cells in stored order; newest 21
	// dates are B. The first character must read leftmost on the calendar.
	for i := 0; i < GlyphRows; i++ {
		l, ok := m.Level(dates[i])
		require.True(t, ok)
		assert.Equal(t, Level(0), l, "spacer day %d", i)
	}
	for i, want := range glyphA {
		l, _ := m.Level(dates[GlyphRows+i])
		assert.Equal(t, want, l, "glyph A cell %d", i)
	}
	for i, want := range glyphB {
		l, _ := m.Level(dates[2*GlyphRows+GlyphSize+i])
		assert.Equal(t, want, l, "glyph B cell %d", i)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, err := RenderText("FORGE", anchor)
	require.NoError(t, err)
	b, err := RenderText("FORGE", anchor)
	require.NoError(t, err)

	if diff := cmp.Diff(a.Levels(), b.Levels()); diff != "" {
		t.Errorf("levels differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(a.Dates(), b.Dates()); diff != "" {
		t.Errorf("dates differ (-first +second):\n%s", diff)
	}
}

func TestRenderUnsupportedCharacter(t *testing.T) {
	m, err := RenderText("H~I", anchor)
	assert.Nil(t, m)

	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, '~', rerr.Rune)
	assert.Contains(t, err.Error(), "'~'")
}

func TestRenderLevels(t *testing.T) {
	levels := []Level{0, 1, 2, 3, 4}
	m, err := RenderLevels(levels, anchor)
	require.NoError(t, err)
	require.Equal(t, len(levels), m.Len())

	dates := m.Dates()
	for i, want := range levels {
		got, ok := m.Level(dates[i])
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, anchor, dates[len(dates)-1])
}

func TestRenderLevelsRejectsInvalidLevel(t *testing.T) {
	_, err := RenderLevels([]Level{0, 5}, anchor)
	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("HELLO WORLD 123!?"))
	assert.False(t, Supported("hello"))
	assert.False(t, Supported("Ö"))
}

func TestScale(t *testing.T) {
	m, err := RenderLevels([]Level{0, 1, 2, 3, 4}, anchor)
	require.NoError(t, err)

	counts := m.Scale([5]int{0, 2, 4, 6, 8})
	require.Len(t, counts, 5)
	assert.Equal(t, 20, counts.Total())

	dates := counts.Dates()
	for i, want := range []int{0, 2, 4, 6, 8} {
		assert.Equal(t, want, counts[dates[i]])
	}
}

func TestScaleIsOrderPreserving(t *testing.T) {
	boundaries := [5]int{0, 3, 6, 9, 12}

	lower, err := RenderLevels([]Level{1, 2, 1}, anchor)
	require.NoError(t, err)
	higher, err := RenderLevels([]Level{1, 3, 1}, anchor)
	require.NoError(t, err)

	a := lower.Scale(boundaries)
	b := higher.Scale(boundaries)
	for _, date := range a.Dates() {
		assert.GreaterOrEqual(t, b[date], a[date])
	}
}

func TestScalePanicsOnInvalidLevel(t *testing.T) {
	m := NewLevelMap()
	m.levels[Date(anchor)] = 7

	require.Panics(t, func() {
		m.Scale([5]int{0, 1, 2, 3, 4})
	})
}

func TestLevelMapString(t *testing.T) {
	m, err := RenderLevels([]Level{0, 1, 2, 3, 4, 0, 0}, anchor)
	require.NoError(t, err)

	assert.Equal(t, " \n-\n=\nH\n#\n \n ", m.String())
}
