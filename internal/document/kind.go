package document

import "github.com/pelletier/go-toml"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies the container kind held at a key.
type Kind int

const (
	// KindValue is any scalar or otherwise non-container value.
	KindValue Kind = iota
	// KindTable is an ordered string-keyed table.
	KindTable
	// KindArray is an ordered sequence of values.
	KindArray
	// KindArrayOfTables is an ordered sequence of tables.
	KindArrayOfTables
)

// kindOf classifies a value fetched from a tree.
func kindOf(v interface{}) Kind {
	switch v.(type) {
	case *toml.Tree:
		return KindTable
	case []*toml.Tree:
		return KindArrayOfTables
	case []interface{}:
		return KindArray
	default:
		return KindValue
	}
}
