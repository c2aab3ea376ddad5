package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// dateLayout is the date form used by the dated dump format and by commit
// messages.
const dateLayout = "2006.01.02"

// WriteLevels dumps the map as a single line of digits, one level per date,
// oldest first. The line carries no dates; re-expansion anchors the last
// digit via RenderLevels.
func WriteLevels(w io.Writer, m *LevelMap) error {
	var b strings.Builder
	for _, l := range m.Levels() {
		b.WriteByte('0' + byte(l))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteDated dumps the map as one "YYYY.MM.DD:<level>" line per date,
// oldest first.
func WriteDated(w io.Writer, m *LevelMap) error {
	for _, d := range m.Dates() {
		l, _ := m.Level(d)
		if _, err := fmt.Fprintf(w, "%s:%d\n", d.Format(dateLayout), l); err != nil {
			return err
		}
	}
	return nil
}

// ParseLevels parses a digit line produced by WriteLevels.
func ParseLevels(s string) ([]Level, error) {
	s = strings.TrimSpace(s)
	levels := make([]Level, 0, len(s))

	for _, r := range s {
		if r < '0' || r > '0'+rune(MaxLevel) {
			return nil, &RenderError{Reason: fmt.Sprintf("invalid data level character %q", r)}
		}
		levels = append(levels, Level(r-'0'))
	}

	return levels, nil
}

// ParseDated parses the dated dump format back into a LevelMap. Blank lines
// are ignored; anything else must be a "YYYY.MM.DD:<level>" pair.
func ParseDated(r io.Reader) (*LevelMap, error) {
	m := NewLevelMap()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		day, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &RenderError{Reason: fmt.Sprintf("malformed dump line %q", line)}
		}

		date, err := time.ParseInLocation(dateLayout, day, time.UTC)
		if err != nil {
			return nil, &RenderError{Reason: fmt.Sprintf("malformed date %q", day)}
		}

		levels, err := ParseLevels(rest)
		if err != nil {
			return nil, err
		}
		if len(levels) != 1 {
			return nil, &RenderError{Reason: fmt.Sprintf("malformed dump line %q", line)}
		}

		m.Set(date, levels[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

// ParseArt converts a calendar drawing into a level sequence. The drawing
// uses the same characters String emits (" -=H#"), at most 7 rows, read as
// the calendar displays it; the result is column-major, ready for
// RenderLevels. Short rows are padded with blanks.
func ParseArt(s string) ([]Level, error) {
	rows := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(rows) > GlyphRows {
		return nil, &RenderError{Reason: fmt.Sprintf("drawing has %d rows, the calendar only has %d", len(rows), GlyphRows)}
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	levels := make([]Level, 0, width*GlyphRows)
	for col := 0; col < width; col++ {
		for row := 0; row < GlyphRows; row++ {
			var c byte = ' '
			if row < len(rows) && col < len(rows[row]) {
				c = rows[row][col]
			}

			idx := strings.IndexByte(levelGlyphs, c)
			if idx < 0 {
				return nil, &RenderError{Reason: fmt.Sprintf("invalid drawing character %q", c)}
			}
			levels = append(levels, Level(idx))
		}
	}

	return levels, nil
}
