package trace

// Outcome describes how a traced rule returned: success with the remaining
// unconsumed input, or failure with a short description. It exists only for
// the duration of the Leave call that reports it.
type Outcome struct {
	ok     bool
	detail string
}

// Success returns the outcome of a rule that matched, leaving rest
// unconsumed.
func Success(rest string) Outcome {
	return Outcome{ok: true, detail: rest}
}

// Failure returns the outcome of a rule that did not match.
func Failure(desc string) Outcome {
	return Outcome{detail: desc}
}

// OK reports whether the rule matched.
func (o Outcome) OK() bool {
	return o.ok
}
