package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsDumpRoundTrip(t *testing.T) {
	m, err := RenderText("HI", anchor)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteLevels(&buf, m))
	assert.Equal(t, m.Len()+1, buf.Len(), "one digit per date plus newline")

	levels, err := ParseLevels(buf.String())
	require.NoError(t, err)

	back, err := RenderLevels(levels, anchor)
	require.NoError(t, err)

	if diff := cmp.Diff(m.Levels(), back.Levels()); diff != "" {
		t.Errorf("round trip changed levels:\n%s", diff)
	}
	if diff := cmp.Diff(m.Dates(), back.Dates()); diff != "" {
		t.Errorf("round trip changed dates:\n%s", diff)
	}
}

func TestDatedDumpRoundTrip(t *testing.T) {
	m, err := RenderText("OK", anchor)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDated(&buf, m))
	assert.True(t, strings.HasPrefix(buf.String(), "2024."))

	back, err := ParseDated(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(m.Levels(), back.Levels()); diff != "" {
		t.Errorf("round trip changed levels:\n%s", diff)
	}
	if diff := cmp.Diff(m.Dates(), back.Dates()); diff != "" {
		t.Errorf("round trip changed dates:\n%s", diff)
	}
}

func TestParseLevelsRejectsInvalidDigits(t *testing.T) {
	_, err := ParseLevels("01234")
	require.NoError(t, err)

	for _, bad := range []string{"015", "0x2", "0 1"} {
		_, err := ParseLevels(bad)
		var rerr *RenderError
		assert.ErrorAs(t, err, &rerr, "input %q", bad)
	}
}

func TestParseDatedRejectsMalformedLines(t *testing.T) {
	for _, bad := range []string{
		"2024.03.16",
		"2024-03-16:2",
		"2024.03.16:9",
		"2024.03.16:12",
	} {
		_, err := ParseDated(strings.NewReader(bad))
		var rerr *RenderError
		assert.ErrorAs(t, err, &rerr, "input %q", bad)
	}
}

func TestParseArt(t *testing.T) {
	levels, err := ParseArt("# \n -")
	require.NoError(t, err)

	// Two columns of seven, short rows padded with blanks.
	require.Len(t, levels, 2*GlyphRows)
	assert.Equal(t, Level(4), levels[0])
	assert.Equal(t, Level(1), levels[GlyphRows+1])
	for _, i := range []int{1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13} {
		assert.Equal(t, Level(0), levels[i], "cell %d", i)
	}
}

func TestParseArtRoundTripsString(t *testing.T) {
	m, err := RenderText("X", anchor)
	require.NoError(t, err)

	levels, err := ParseArt(m.String())
	require.NoError(t, err)

	back, err := RenderLevels(levels, anchor)
	require.NoError(t, err)
	if diff := cmp.Diff(m.Levels(), back.Levels()); diff != "" {
		t.Errorf("art round trip changed levels:\n%s", diff)
	}
}

func TestParseArtRejectsBadInput(t *testing.T) {
	_, err := ParseArt("a\nb")
	var rerr *RenderError
	assert.ErrorAs(t, err, &rerr)

	_, err = ParseArt(strings.Repeat("#\n", 8))
	assert.ErrorAs(t, err, &rerr)
}
