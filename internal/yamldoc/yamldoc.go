package yamldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// File permission for written config files.
const filePerm = 0o644

// Document is a comment-preserving YAML node tree rooted at a mapping.
type Document struct {
	root yaml.Node
}

// New returns an empty document holding a single empty mapping.
func New() *Document {
	return &Document{
		root: yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{{
				Kind: yaml.MappingNode,
				Tag:  "!!map",
			}},
		},
	}
}

// Load reads and parses the YAML file at path. A missing or empty file
// yields a fresh empty document; a malformed file yields a *ParseError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := &Document{}
	if err := yaml.Unmarshal(data, &doc.root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if doc.root.Kind == 0 || len(doc.root.Content) == 0 {
		return New(), nil
	}

	return doc, nil
}

// Root returns the top-level mapping, failing with *TypeMismatchError when
// the document root is not a mapping.
func (d *Document) Root() (*Mapping, error) {
	node := d.root.Content[0]
	if node.Kind != yaml.MappingNode {
		return nil, &TypeMismatchError{Key: "", Want: "mapping", Got: kindName(node)}
	}

	return &Mapping{node: node}, nil
}

// Marshal serializes the document with the conventional two-space indent.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(&d.root); err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}

	return buf.Bytes(), nil
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

// Equal reports whether both documents decode to the same plain values.
// Comments and formatting are ignored.
func Equal(a, b *Document) bool {
	av, aerr := a.plain()
	bv, berr := b.plain()
	if aerr != nil || berr != nil {
		return false
	}

	return reflect.DeepEqual(av, bv)
}

func (d *Document) plain() (interface{}, error) {
	var v interface{}
	if err := d.root.Content[0].Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}

// Store adapts the package to the session store interface.
type Store struct{}

func (Store) Load(path string) (*Document, error) { return Load(path) }

func (Store) Equal(a, b *Document) bool { return Equal(a, b) }

func (Store) Write(path string, doc *Document) error { return doc.WriteFile(path) }

// Mapping is a mutable handle on a YAML mapping node.
type Mapping struct {
	node *yaml.Node
}

// Sequence returns the sequence at key, creating an empty one if the key is
// absent. A key holding any other kind fails with *TypeMismatchError.
func (m *Mapping) Sequence(key string) (*Sequence, error) {
	if value := m.value(key); value != nil {
		if value.Kind != yaml.SequenceNode {
			return nil, &TypeMismatchError{Key: key, Want: "sequence", Got: kindName(value)}
		}

		return &Sequence{node: value}, nil
	}

	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valueNode := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	m.node.Content = append(m.node.Content, keyNode, valueNode)

	return &Sequence{node: valueNode}, nil
}

func (m *Mapping) value(key string) *yaml.Node {
	content := m.node.Content
	for i := 0; i+1 < len(content); i += 2 {
		if content[i].Value == key {
			return content[i+1]
		}
	}

	return nil
}

// Sequence is a mutable handle on a YAML sequence node.
type Sequence struct {
	node *yaml.Node
}

// Len returns the number of entries.
func (s *Sequence) Len() int {
	return len(s.node.Content)
}

// Contains reports whether the sequence holds an entry whose decoded plain
// value deeply equals value's.
func (s *Sequence) Contains(value interface{}) (bool, error) {
	want, err := plain(value)
	if err != nil {
		return false, err
	}

	for _, entry := range s.node.Content {
		var got interface{}
		if err := entry.Decode(&got); err != nil {
			return false, fmt.Errorf("decoding sequence entry: %w", err)
		}

		if reflect.DeepEqual(got, want) {
			return true, nil
		}
	}

	return false, nil
}

// Append appends value to the sequence unconditionally.
func (s *Sequence) Append(value interface{}) error {
	node := &yaml.Node{}
	if err := node.Encode(value); err != nil {
		return fmt.Errorf("encoding sequence entry: %w", err)
	}

	s.node.Content = append(s.node.Content, node)

	return nil
}

// AppendIfAbsent appends value only if no structurally equal entry is
// present, reporting whether an append happened.
func (s *Sequence) AppendIfAbsent(value interface{}) (bool, error) {
	ok, err := s.Contains(value)
	if err != nil || ok {
		return false, err
	}

	return true, s.Append(value)
}

// plain reduces value to the decoded form sequence entries are compared in.
func plain(value interface{}) (interface{}, error) {
	var node yaml.Node
	if err := node.Encode(value); err != nil {
		return nil, fmt.Errorf("encoding candidate entry: %w", err)
	}

	var out interface{}
	if err := node.Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding candidate entry: %w", err)
	}

	return out, nil
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}
