// Package render turns text into a date-indexed map of contribution
// calendar intensities. Characters come from a fixed glyph table; each glyph
// occupies three week columns plus one blank spacer column, so a rendered
// character always covers exactly 28 consecutive days.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// spacerDays is the blank week column emitted between characters.
const spacerDays = GlyphRows

// RenderError reports input the renderer cannot handle: an unsupported
// character, or a malformed level sequence.
type RenderError struct {
	Rune   rune
	Reason string
}

func (e *RenderError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("render: %s", e.Reason)
	}
	return fmt.Sprintf("render: character %q cannot be rendered", e.Rune)
}

// LevelMap maps calendar dates to abstract intensity levels. Dates are
// normalized to midnight UTC; iteration over Dates is always ascending.
type LevelMap struct {
	levels map[time.Time]Level
}

// NewLevelMap returns an empty LevelMap.
func NewLevelMap() *LevelMap {
	return &LevelMap{levels: make(map[time.Time]Level)}
}

// Date normalizes t to midnight UTC, the key granularity of a LevelMap.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Set records the level for the date containing t.
func (m *LevelMap) Set(t time.Time, l Level) {
	m.levels[Date(t)] = l
}

// Level returns the level recorded for the date containing t.
func (m *LevelMap) Level(t time.Time) (Level, bool) {
	l, ok := m.levels[Date(t)]
	return l, ok
}

// Len returns the number of dates in the map.
func (m *LevelMap) Len() int {
	return len(m.levels)
}

// Dates returns every date in the map in ascending order.
func (m *LevelMap) Dates() []time.Time {
	dates := make([]time.Time, 0, len(m.levels))
	for d := range m.levels {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Levels returns the stored levels ordered by date, oldest first.
func (m *LevelMap) Levels() []Level {
	dates := m.Dates()
	levels := make([]Level, len(dates))
	for i, d := range dates {
		levels[i] = m.levels[d]
	}
	return levels
}

// levelGlyphs is the textual form of each level, used by String and by the
// art dump format: blank, light, medium, heavy, full.
const levelGlyphs = " -=H#"

// String renders the map the way the calendar will show it: 7 weekday rows,
// one column per week, oldest week on the left.
func (m *LevelMap) String() string {
	rows := make([]strings.Builder, GlyphRows)
	for i, l := range m.Levels() {
		rows[i%GlyphRows].WriteByte(levelGlyphs[l])
	}

	out := make([]string, GlyphRows)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return strings.Join(out, "\n")
}

// CountMap maps calendar dates to concrete commit counts, ready for
// forging.
type CountMap map[time.Time]int

// Dates returns every date in the map in ascending order.
func (c CountMap) Dates() []time.Time {
	dates := make([]time.Time, 0, len(c))
	for d := range c {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Total returns the sum of all commit counts.
func (c CountMap) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Scale substitutes each level through the boundary table, producing the
// concrete commit count per date. Levels outside 0..4 violate the renderer's
// contract and panic.
func (m *LevelMap) Scale(boundaries [5]int) CountMap {
	counts := make(CountMap, len(m.levels))
	for date, level := range m.levels {
		if level > MaxLevel {
			panic(fmt.Sprintf("render: invalid data level %d for %s", level, date.Format("2006.01.02")))
		}
		counts[date] = boundaries[level]
	}
	return counts
}

// LastWeekEnd returns the most recent Saturday on or before now: the newest
// calendar column that is guaranteed to be fully in the past, and the
// default anchor for rendering.
func LastWeekEnd(now time.Time) time.Time {
	back := (int(now.Weekday()) + 1) % 7
	return Date(now).AddDate(0, 0, -back)
}

// RenderText maps text onto calendar dates ending at end.
//
// Characters are processed last to first, and each glyph's cells last to
// first, every step moving the cursor back one day. The dual reversal is
// what makes the finished calendar read left to right: the first character
// lands on the oldest dates. Because glyphs and spacers are exact multiples
// of 7 days, weekday alignment is fixed once by the anchor and never drifts.
func RenderText(text string, end time.Time) (*LevelMap, error) {
	runes := []rune(text)
	m := NewLevelMap()
	date := Date(end)

	for i := len(runes) - 1; i >= 0; i-- {
		glyph, ok := LookupGlyph(runes[i])
		if !ok {
			return nil, &RenderError{Rune: runes[i]}
		}

		for j := GlyphSize - 1; j >= 0; j-- {
			m.Set(date, glyph[j])
			date = date.AddDate(0, 0, -1)
		}

		for j := 0; j < spacerDays; j++ {
			m.Set(date, 0)
			date = date.AddDate(0, 0, -1)
		}
	}

	return m, nil
}

// RenderLevels maps a raw level sequence onto calendar dates ending at end,
// one level per day, the last level landing on end. Used to re-expand a
// previously dumped map.
func RenderLevels(levels []Level, end time.Time) (*LevelMap, error) {
	m := NewLevelMap()
	date := Date(end)

	for i := len(levels) - 1; i >= 0; i-- {
		if levels[i] > MaxLevel {
			return nil, &RenderError{Reason: fmt.Sprintf("invalid data level %d", levels[i])}
		}
		m.Set(date, levels[i])
		date = date.AddDate(0, 0, -1)
	}

	return m, nil
}
