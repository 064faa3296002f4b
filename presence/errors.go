package presence

import "fmt"

// ParseError is raised by Parse on syntactic failure: the input does not
// form a single top-level expression, an unexpected operator was
// encountered, a comparison's operands were not simple names, or the token
// stream ended mid-expression.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse expression: %q", e.Input)
}

// RewriteError is raised by SymbolExpand when a comparison has reserved
// literals (y, m, n) on both sides, e.g. "y = n". Unlike ParseError this is
// never absorbed: it signals a malformed dependency expression, not a
// per-option parse failure the batch pipeline can skip over.
type RewriteError struct {
	Reason string
}

func (e *RewriteError) Error() string {
	return e.Reason
}
