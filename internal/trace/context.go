package trace

import (
	"fmt"
	"io"
	"os"
)

// Context is the shared state of one trace session: the current nesting
// depth and the per-rule invocation histogram. It is passed by reference
// down the whole recursive call chain and must only be used by one logical
// thread of control at a time.
type Context struct {
	cfg    Config
	out    io.Writer
	depth  uint
	order  []string // rule names in first-seen order
	counts map[string]uint64
}

// Entry is the opaque token returned by Enter. It captures the depth at
// entry so Leave can render at the matching level after nested calls have
// moved the shared counter.
type Entry struct {
	name  string
	depth uint
}

// New creates a Context with depth 0 and an empty histogram.
func New(cfg Config) *Context {
	if cfg.SnippetWidth == 0 {
		cfg.SnippetWidth = DefaultSnippetWidth
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	return &Context{
		cfg:    cfg,
		out:    out,
		counts: make(map[string]uint64),
	}
}

// Enter records the invocation of a rule: the histogram count for name is
// incremented and the depth raised. rest is the unconsumed input at the
// call site; it is only looked at when a forward line is rendered.
//
// Every Enter must be matched by exactly one Leave on every exit path of
// the rule. Omitting the Leave is a caller bug: the depth drifts and all
// later lines indent wrong.
func (c *Context) Enter(name, rest string) Entry {
	n := c.counts[name]
	if n == 0 {
		c.order = append(c.order, name)
	}
	c.counts[name] = n + 1

	e := Entry{name: name, depth: c.depth}
	if c.cfg.Forward {
		c.emit(formatEnter(c.cfg, name, e.depth, rest))
	}
	c.depth++
	return e
}

// Leave records the return of the rule that produced e, restoring the depth
// to the value it had at entry. The outcome is reported, never acted on.
func (c *Context) Leave(e Entry, out Outcome) {
	c.depth = e.depth
	if c.cfg.Backward {
		c.emit(formatLeave(c.cfg, e.name, e.depth, out))
	}
}

// Depth returns the current nesting level. It is 0 before the first Enter
// and again after the last matching Leave of a well-formed session.
func (c *Context) Depth() uint {
	return c.depth
}

// Histogram returns a snapshot of the per-rule invocation counts in
// first-seen order. The snapshot is detached from the live state.
func (c *Context) Histogram() []NameCount {
	rows := make([]NameCount, 0, len(c.order))
	for _, name := range c.order {
		rows = append(rows, NameCount{Name: name, Count: c.counts[name]})
	}
	return rows
}

// Reset clears depth and histogram so the Context can serve a new session.
// This is the only way back after an abnormal abort skipped a Leave.
func (c *Context) Reset() {
	c.depth = 0
	c.order = c.order[:0]
	clear(c.counts)
}

// emit writes one line immediately. Writes are best-effort: a broken sink
// must never disturb the parse being observed.
func (c *Context) emit(line string) {
	_, _ = fmt.Fprintln(c.out, line)
}
