package document

import "fmt"

// ParseError reports an existing file that could not be parsed. It is fatal:
// a malformed file is never rewritten.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TypeMismatchError reports a key that already holds a value of a different
// container kind than the one requested. The existing value is left intact.
type TypeMismatchError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("key %q already holds %s, want %s", e.Key, e.Got, e.Want)
}
