package trace

// Remainder is the tracer's view of a rule input: anything that can report
// its unconsumed text. source.Cursor satisfies it.
type Remainder interface {
	Rest() string
}

// Rule is a parsing computation over an input C: it returns the input after
// consumption, the parsed value, and an error when it did not match.
type Rule[C Remainder, T any] func(C) (C, T, error)

// Wrap instruments fn under the given name: the returned rule records entry
// before delegating and the outcome after, on both the success and the
// failure return path, and hands fn's result back unchanged. Tracing is
// purely observational.
//
// A nil Context returns fn itself, so un-traced composition costs nothing.
func Wrap[C Remainder, T any](tc *Context, name string, fn Rule[C, T]) Rule[C, T] {
	if tc == nil {
		return fn
	}
	return func(in C) (C, T, error) {
		e := tc.Enter(name, in.Rest())
		out, v, err := fn(in)
		if err != nil {
			tc.Leave(e, Failure(err.Error()))
		} else {
			tc.Leave(e, Success(out.Rest()))
		}
		return out, v, err
	}
}
