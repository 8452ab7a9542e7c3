package yamldoc

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

// TypeMismatchError reports a key that already holds a node of a different
// kind than the one requested. The existing node is left intact. An empty
// Key refers to the document root.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("document root is a %s, want a %s", e.Got, e.Want)
	}

	return fmt.Sprintf("key %q already holds a %s, want a %s", e.Key, e.Got, e.Want)
}
