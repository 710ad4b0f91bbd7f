package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbsfont/blockart/internal/parser"
)

func renderText(t *testing.T, rows []string) string {
	t.Helper()
	art, err := Render(rows, nil)
	require.NoError(t, err)
	return art.String()
}

func TestValidateAcceptsOwnRenderings(t *testing.T) {
	bitmaps := [][]string{
		{"1"},
		{"10", "00"},
		{"110", "000"},
		{"100", "001"},
		{"000", "010", "000"},
		{"0110"},
		{"100000", "000000", "000010", "000000"},
	}

	for _, rows := range bitmaps {
		require.NoError(t, Validate(renderText(t, rows), rows, nil), "bitmap %v", rows)
	}
}

func TestValidateAcceptsTrailingNewline(t *testing.T) {
	// Art read back from a file usually carries a terminating newline. It
	// closes the fourth line instead of counting as a fifth.
	rows := []string{"10", "00"}
	require.NoError(t, Validate(renderText(t, rows)+"\n", rows, nil))
}

func TestValidateGates(t *testing.T) {
	rows := []string{"100", "001"}
	good := renderText(t, rows)
	lines := strings.Split(good, "\n")

	tamper := func(lineIdx int, f func(string) string) string {
		out := make([]string, len(lines))
		copy(out, lines)
		out[lineIdx] = f(out[lineIdx])
		return strings.Join(out, "\n")
	}

	tests := []struct {
		name string
		art  string
	}{
		{
			name: "wrong line count",
			art:  strings.Join(lines[:3], "\n"),
		},
		{
			name: "two trailing newlines",
			art:  good + "\n\n",
		},
		{
			name: "wrong top line",
			art:  tamper(0, func(s string) string { return s + "_" }),
		},
		{
			name: "wrong bottom line",
			art:  tamper(3, func(s string) string { return strings.Replace(s, "_", "/", 1) }),
		},
		{
			name: "misaligned body line",
			art:  tamper(1, func(s string) string { return s + "_" }),
		},
		{
			name: "missing slash",
			art:  tamper(1, func(s string) string { return strings.Replace(s, "/", "_", 1) }),
		},
		{
			name: "extra backslash",
			art:  tamper(1, func(s string) string { return strings.Replace(s, "_", `\`, 1) }),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.art, rows, nil)
			require.ErrorIs(t, err, ErrArtValidation)
		})
	}
}

func TestValidateIsAnOracleNotAnEqualityCheck(t *testing.T) {
	// Swapping a '/' and a '\' inside one body line preserves every
	// structural invariant, so the validator must accept the result even
	// though the renderer never produced it.
	rows := []string{"100", "001"}
	good := renderText(t, rows)
	lines := strings.Split(good, "\n")

	body := []byte(lines[1])
	slash := strings.IndexByte(lines[1], '/')
	backslash := strings.IndexByte(lines[1], '\\')
	require.GreaterOrEqual(t, slash, 0)
	require.GreaterOrEqual(t, backslash, 0)
	body[slash], body[backslash] = body[backslash], body[slash]
	lines[1] = string(body)

	require.NoError(t, Validate(strings.Join(lines, "\n"), rows, nil))
}

func TestValidatePropagatesBitmapErrors(t *testing.T) {
	err := Validate("anything", []string{"10", "10"}, nil)
	require.ErrorIs(t, err, parser.ErrInvalidAdjacency)

	err = Validate("anything", []string{"2"}, nil)
	require.ErrorIs(t, err, parser.ErrInvalidBitmap)
}

func TestLongestRun(t *testing.T) {
	tests := []struct {
		s    string
		ch   byte
		want int
	}{
		{"", '_', 0},
		{"___", '_', 3},
		{"_/__/___", '_', 3},
		{"a_a_a", '_', 1},
		{"//\\\\", '/', 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, longestRun(tt.s, tt.ch), "longestRun(%q, %q)", tt.s, tt.ch)
	}
}
