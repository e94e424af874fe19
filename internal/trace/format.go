package trace

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	indentUnit     = "  "
	forwardMarker  = "-> "
	backwardMarker = "<- "
	ellipsis       = "…"
)

// palette is indexed by depth modulo its length, so the color cycle makes
// nesting legible even where indentation alone is hard to read. Each color
// is force-enabled: the Color flag on the Config is the only gate, and the
// sink is often a buffer rather than a terminal.
var palette = func() []*color.Color {
	cs := []*color.Color{
		color.New(color.FgWhite, color.Bold),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgBlue),
		color.New(color.FgMagenta),
	}
	for _, c := range cs {
		c.EnableColor()
	}
	return cs
}()

// formatEnter renders a forward line:
//
//	<indent>-> <name> : "<excerpt>"
func formatEnter(cfg Config, name string, depth uint, rest string) string {
	var sb strings.Builder
	writeIndent(&sb, depth)
	sb.WriteString(forwardMarker)
	sb.WriteString(name)
	sb.WriteString(" : ")
	sb.WriteString(strconv.Quote(truncate(rest, cfg.SnippetWidth)))
	return colorize(cfg, depth, sb.String())
}

// formatLeave renders a backward line:
//
//	<indent><- <name> -> "<rest>"        on success
//	<indent><- <name> -> <description>   on failure
func formatLeave(cfg Config, name string, depth uint, out Outcome) string {
	var sb strings.Builder
	writeIndent(&sb, depth)
	sb.WriteString(backwardMarker)
	sb.WriteString(name)
	sb.WriteString(" -> ")
	if out.ok {
		sb.WriteString(strconv.Quote(truncate(out.detail, cfg.SnippetWidth)))
	} else {
		sb.WriteString(out.detail)
	}
	return colorize(cfg, depth, sb.String())
}

func writeIndent(sb *strings.Builder, depth uint) {
	for i := uint(0); i < depth; i++ {
		sb.WriteString(indentUnit)
	}
}

func colorize(cfg Config, depth uint, line string) string {
	if !cfg.Color {
		return line
	}
	return palette[int(depth)%len(palette)].Sprint(line)
}

// truncate keeps the first width characters of s and appends an ellipsis,
// but only when s actually exceeds the width. Cutting happens on rune
// boundaries so multi-byte input never renders as mojibake.
func truncate(s string, width uint) string {
	if uint(utf8.RuneCountInString(s)) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width]) + ellipsis
}
