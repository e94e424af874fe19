// Package grammar is a deliberately backtracking-heavy expression grammar
// used to exercise and demonstrate the tracer:
//
//	expr  = expr_plus | expr_minus | term
//	plus  = term '+' expr
//	minus = term '-' expr
//	term  = digit | '(' expr ')'
//
// The alternation order makes expr retry from the same position whenever a
// branch fails, which is exactly the behavior the trace output is meant to
// make visible.
package grammar

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"ruletrace/internal/source"
	"ruletrace/internal/trace"
)

type rule = trace.Rule[source.Cursor, string]

// Grammar holds the wrapped rule set for one trace session. Rules are
// stored as fields so the recursive references go through the wrappers and
// every nested invocation is recorded.
type Grammar struct {
	expr  rule
	plus  rule
	minus rule
	term  rule
}

// New wires the rule set to tc. A nil tc yields an un-instrumented grammar.
func New(tc *trace.Context) *Grammar {
	g := &Grammar{}
	g.expr = trace.Wrap(tc, "expr", g.exprRule)
	g.plus = trace.Wrap(tc, "expr_plus", g.plusRule)
	g.minus = trace.Wrap(tc, "expr_minus", g.minusRule)
	g.term = trace.Wrap(tc, "term", g.termRule)
	return g
}

// Parse runs the top-level rule over input and requires it to be consumed
// completely.
func (g *Grammar) Parse(input string) (string, error) {
	rest, v, err := g.expr(source.NewCursor(input))
	if err != nil {
		return "", err
	}
	if !rest.Done() {
		return "", fmt.Errorf("unconsumed input at offset %d: %q", rest.Offset(), rest.Rest())
	}
	return v, nil
}

func (g *Grammar) exprRule(c source.Cursor) (source.Cursor, string, error) {
	return alt(c, g.plus, g.minus, g.term)
}

func (g *Grammar) plusRule(c source.Cursor) (source.Cursor, string, error) {
	return g.binary(c, '+')
}

func (g *Grammar) minusRule(c source.Cursor) (source.Cursor, string, error) {
	return g.binary(c, '-')
}

// binary = term <op> expr. Failures return the original cursor so the
// caller can try the next alternative from the same position.
func (g *Grammar) binary(c source.Cursor, op rune) (source.Cursor, string, error) {
	c1, left, err := g.term(c)
	if err != nil {
		return c, "", err
	}
	c2, ok := c1.Eat(op)
	if !ok {
		return c, "", fmt.Errorf("expected %q at offset %d", op, c1.Offset())
	}
	c3, right, err := g.expr(c2)
	if err != nil {
		return c, "", err
	}
	return c3, left + string(op) + right, nil
}

func (g *Grammar) termRule(c source.Cursor) (source.Cursor, string, error) {
	if c1, ok := c.Eat('('); ok {
		c2, inner, err := g.expr(c1)
		if err != nil {
			return c, "", err
		}
		c3, ok := c2.Eat(')')
		if !ok {
			return c, "", fmt.Errorf("expected %q at offset %d", ')', c2.Offset())
		}
		return c3, "(" + inner + ")", nil
	}

	r, ok := c.Peek()
	if !ok || !unicode.IsDigit(r) {
		return c, "", fmt.Errorf("expected digit at offset %d", c.Offset())
	}
	return c.Advance(utf8.RuneLen(r)), string(r), nil
}

// alt tries the rules in order from the same position and returns the first
// match.
func alt(c source.Cursor, rules ...rule) (source.Cursor, string, error) {
	for _, r := range rules {
		if out, v, err := r(c); err == nil {
			return out, v, nil
		}
	}
	return c, "", errors.New("no alternative matched")
}
