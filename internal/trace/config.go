package trace

import "io"

// DefaultSnippetWidth is used when Config.SnippetWidth is zero.
const DefaultSnippetWidth uint = 48

// Config holds the recording and rendering options for a trace session.
// It is read once by New and never mutated afterwards.
type Config struct {
	Forward      bool      // emit a line when a rule is entered
	Backward     bool      // emit a line when a rule returns, with its outcome
	Color        bool      // colorize lines by depth
	SnippetWidth uint      // max input characters shown per line (0 = default)
	Output       io.Writer // line sink (nil = os.Stdout)
}

// Default returns a Config that prints entry and exit lines without color.
func Default() Config {
	return Config{
		Forward:      true,
		Backward:     true,
		SnippetWidth: DefaultSnippetWidth,
	}
}
