package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"

	"github.com/pelletier/go-toml"
)

// File permission for written config files.
const filePerm = 0o644

// Document is an ordered, comment-preserving TOML tree.
type Document struct {
	tree *toml.Tree
}

// New returns an empty document.
func New() *Document {
	return &Document{tree: emptyTree()}
}

// Load reads and parses the TOML file at path. A missing file yields a
// fresh empty document; a malformed existing file yields a *ParseError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &Document{tree: tree}, nil
}

// Root returns the top-level table.
func (d *Document) Root() *Table {
	return &Table{tree: d.tree}
}

// Map returns the document's plain key/value form: tables as nested
// maps, arrays-of-tables as slices of maps.
func (d *Document) Map() map[string]interface{} {
	return d.tree.ToMap()
}

// Marshal serializes the document back to TOML.
func (d *Document) Marshal() ([]byte, error) {
	s, err := d.tree.ToTomlString()
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}

	return []byte(s), nil
}

// WriteFile serializes the document and replaces the file at path.
func (d *Document) WriteFile(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// Equal reports whether both documents hold the same keys and values.
// Comments and formatting are ignored.
func Equal(a, b *Document) bool {
	return reflect.DeepEqual(a.Map(), b.Map())
}

// Store adapts the package to the session store interface.
type Store struct{}

func (Store) Load(path string) (*Document, error) { return Load(path) }

func (Store) Equal(a, b *Document) bool { return Equal(a, b) }

func (Store) Write(path string, doc *Document) error { return doc.WriteFile(path) }

func emptyTree() *toml.Tree {
	tree, err := toml.TreeFromMap(map[string]interface{}{})
	if err != nil {
		// cannot fail on an empty map
		panic(err)
	}

	return tree
}
