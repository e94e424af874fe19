// Package trace records the call tree of a recursive-descent grammar.
//
// Every instrumented rule reports to one shared Context: entering a rule
// bumps its invocation count and the nesting depth, leaving restores the
// depth and reports the outcome. Rendering is optional; bookkeeping is not.
//
// # Usage
//
//	tc := trace.New(trace.Config{Forward: true, Backward: true})
//	rule := trace.Wrap(tc, "term", term)
//	rest, v, err := rule(source.NewCursor("1+1"))
//	fmt.Print(trace.Summary(tc.Histogram()))
//
// # Protocol
//
// Enter and Leave must be paired on every exit path of the traced rule,
// including failure and backtracking returns. Wrap does this for plain
// rule functions; callers driving Enter/Leave by hand carry the same
// obligation. A computation that aborts without its Leave (a panic, for
// example) leaves the context unbalanced; call Reset before reusing it.
//
// # Sessions
//
// One Context serves one logical call tree at a time. It is shared by
// reference down the whole recursive chain and is not safe for concurrent
// use; trace parallel parses with one Context per session.
package trace
