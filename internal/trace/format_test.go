package trace

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width uint
		want  string
	}{
		{
			name:  "longer than width",
			in:    "abcdefgh",
			width: 5,
			want:  "abcde…",
		},
		{
			name:  "shorter than width keeps no marker",
			in:    "abc",
			width: 5,
			want:  "abc",
		},
		{
			name:  "exactly width keeps no marker",
			in:    "abcde",
			width: 5,
			want:  "abcde",
		},
		{
			name:  "empty input",
			in:    "",
			width: 5,
			want:  "",
		},
		{
			name:  "multi-byte runes cut on rune boundary",
			in:    "héllö wörld",
			width: 4,
			want:  "héll…",
		},
		{
			name:  "width one on multi-byte input",
			in:    "日本語",
			width: 1,
			want:  "日…",
		},
		{
			name:  "width zero",
			in:    "ab",
			width: 0,
			want:  "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestFormatEnter(t *testing.T) {
	cfg := Config{SnippetWidth: 5}

	tests := []struct {
		name    string
		rule    string
		depth   uint
		excerpt string
		want    string
	}{
		{
			name:    "top level",
			rule:    "expr",
			depth:   0,
			excerpt: "1+1",
			want:    `-> expr : "1+1"`,
		},
		{
			name:    "nested with truncation",
			rule:    "term",
			depth:   2,
			excerpt: "abcdefgh",
			want:    `    -> term : "abcde…"`,
		},
		{
			name:    "newline in excerpt stays on one line",
			rule:    "term",
			depth:   0,
			excerpt: "a\nb",
			want:    `-> term : "a\nb"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatEnter(cfg, tt.rule, tt.depth, tt.excerpt); got != tt.want {
				t.Errorf("formatEnter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatLeave(t *testing.T) {
	cfg := Config{SnippetWidth: 5}

	tests := []struct {
		name  string
		rule  string
		depth uint
		out   Outcome
		want  string
	}{
		{
			name:  "success shows remaining input",
			rule:  "term",
			depth: 1,
			out:   Success("+1"),
			want:  `  <- term -> "+1"`,
		},
		{
			name:  "success remaining input is truncated",
			rule:  "term",
			depth: 0,
			out:   Success("abcdefgh"),
			want:  `<- term -> "abcde…"`,
		},
		{
			name:  "failure shows the description unquoted",
			rule:  "term",
			depth: 1,
			out:   Failure("expected digit at offset 3"),
			want:  `  <- term -> expected digit at offset 3`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLeave(cfg, tt.rule, tt.depth, tt.out); got != tt.want {
				t.Errorf("formatLeave() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_Color(t *testing.T) {
	plain := Config{SnippetWidth: 5}
	colored := Config{SnippetWidth: 5, Color: true}

	if got := formatEnter(plain, "expr", 0, "x"); strings.Contains(got, "\x1b[") {
		t.Errorf("formatEnter() without color contains escape codes: %q", got)
	}

	line := formatEnter(colored, "expr", 0, "x")
	if !strings.Contains(line, "\x1b[") {
		t.Fatalf("formatEnter() with color has no escape codes: %q", line)
	}
	if !strings.Contains(line, `-> expr : "x"`) {
		t.Errorf("colored line lost its text: %q", line)
	}
}

func TestFormat_PaletteCyclesByDepth(t *testing.T) {
	cfg := Config{SnippetWidth: 5, Color: true}
	cycle := uint(len(palette))

	prefix := func(depth uint) string {
		line := formatEnter(cfg, "r", depth, "")
		i := strings.Index(line, "m")
		if i < 0 {
			t.Fatalf("no escape prefix in %q", line)
		}
		return line[:i+1]
	}

	if p0, pN := prefix(0), prefix(cycle); p0 != pN {
		t.Errorf("depths 0 and %d should share a color: %q vs %q", cycle, p0, pN)
	}
	if p0, p1 := prefix(0), prefix(1); p0 == p1 {
		t.Errorf("depths 0 and 1 should differ in color, both %q", p0)
	}
}
