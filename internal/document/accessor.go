package document

import (
	"reflect"

	"github.com/pelletier/go-toml"
)

// Table is a mutable handle on a TOML table.
type Table struct {
	tree *toml.Tree
}

// NewTable returns an empty standalone table, typically a candidate entry
// for an array-of-tables.
func NewTable() *Table {
	return &Table{tree: emptyTree()}
}

// Table returns the sub-table at key, creating an empty one if the key is
// absent. A key holding any other kind fails with *TypeMismatchError.
func (t *Table) Table(key string) (*Table, error) {
	existing := t.tree.GetPath([]string{key})
	if existing == nil {
		sub := emptyTree()
		t.tree.SetPath([]string{key}, sub)

		return &Table{tree: sub}, nil
	}

	sub, ok := existing.(*toml.Tree)
	if !ok {
		return nil, &TypeMismatchError{Key: key, Want: KindTable, Got: kindOf(existing)}
	}

	return &Table{tree: sub}, nil
}

// Array returns the array at key, creating an empty one if the key is
// absent. A key holding any other kind fails with *TypeMismatchError.
func (t *Table) Array(key string) (*Array, error) {
	existing := t.tree.GetPath([]string{key})
	if existing == nil {
		t.tree.SetPath([]string{key}, []interface{}{})

		return &Array{parent: t.tree, key: key}, nil
	}

	if _, ok := existing.([]interface{}); !ok {
		return nil, &TypeMismatchError{Key: key, Want: KindArray, Got: kindOf(existing)}
	}

	return &Array{parent: t.tree, key: key}, nil
}

// ArrayOfTables returns the array-of-tables at key, creating an empty one if
// the key is absent. A key holding any other kind fails with
// *TypeMismatchError.
func (t *Table) ArrayOfTables(key string) (*ArrayOfTables, error) {
	existing := t.tree.GetPath([]string{key})
	if existing == nil {
		t.tree.SetPath([]string{key}, []*toml.Tree{})

		return &ArrayOfTables{parent: t.tree, key: key}, nil
	}

	if _, ok := existing.([]*toml.Tree); !ok {
		return nil, &TypeMismatchError{Key: key, Want: KindArrayOfTables, Got: kindOf(existing)}
	}

	return &ArrayOfTables{parent: t.tree, key: key}, nil
}

// SetString assigns a string at key, overwriting any existing value.
func (t *Table) SetString(key, value string) {
	t.tree.SetPath([]string{key}, value)
}

// SetBool assigns a boolean at key, overwriting any existing value.
func (t *Table) SetBool(key string, value bool) {
	t.tree.SetPath([]string{key}, value)
}

// SetStrings assigns a string array at key, overwriting any existing value.
func (t *Table) SetStrings(key string, values ...string) {
	arr := make([]interface{}, 0, len(values))
	for _, v := range values {
		arr = append(arr, v)
	}

	t.tree.SetPath([]string{key}, arr)
}

// GetString returns the string at key and whether the key holds a string.
func (t *Table) GetString(key string) (string, bool) {
	s, ok := t.tree.GetPath([]string{key}).(string)
	return s, ok
}

// GetBool returns the boolean at key and whether the key holds a boolean.
func (t *Table) GetBool(key string) (bool, bool) {
	b, ok := t.tree.GetPath([]string{key}).(bool)
	return b, ok
}

// Keys returns the table's keys.
func (t *Table) Keys() []string {
	return t.tree.Keys()
}

// Array is a mutable handle on an array value inside its parent table.
type Array struct {
	parent *toml.Tree
	key    string
}

// Values returns the array's current elements.
func (a *Array) Values() []interface{} {
	v, _ := a.parent.GetPath([]string{a.key}).([]interface{})
	return v
}

// Contains reports whether the array holds an element equal to value.
func (a *Array) Contains(value interface{}) bool {
	for _, v := range a.Values() {
		if reflect.DeepEqual(v, value) {
			return true
		}
	}

	return false
}

// Append appends value unconditionally.
func (a *Array) Append(value interface{}) {
	a.parent.SetPath([]string{a.key}, append(a.Values(), value))
}

// AppendIfAbsent appends value only if no equal element is present,
// reporting whether an append happened.
func (a *Array) AppendIfAbsent(value interface{}) bool {
	if a.Contains(value) {
		return false
	}

	a.Append(value)

	return true
}

// ArrayOfTables is a mutable handle on an array-of-tables value inside its
// parent table.
type ArrayOfTables struct {
	parent *toml.Tree
	key    string
}

func (a *ArrayOfTables) entries() []*toml.Tree {
	v, _ := a.parent.GetPath([]string{a.key}).([]*toml.Tree)
	return v
}

// Len returns the number of entries.
func (a *ArrayOfTables) Len() int {
	return len(a.entries())
}

// At returns the entry at index i.
func (a *ArrayOfTables) At(i int) *Table {
	return &Table{tree: a.entries()[i]}
}

// Contains reports whether an entry deeply equal to candidate exists.
// Equality is structural over the full table value, not keyed.
func (a *ArrayOfTables) Contains(candidate *Table) bool {
	want := candidate.tree.ToMap()
	for _, entry := range a.entries() {
		if reflect.DeepEqual(entry.ToMap(), want) {
			return true
		}
	}

	return false
}

// Append appends candidate unconditionally.
func (a *ArrayOfTables) Append(candidate *Table) {
	a.parent.SetPath([]string{a.key}, append(a.entries(), candidate.tree))
}

// AppendIfAbsent appends candidate only if no deeply equal entry is present,
// reporting whether an append happened.
func (a *ArrayOfTables) AppendIfAbsent(candidate *Table) bool {
	if a.Contains(candidate) {
		return false
	}

	a.Append(candidate)

	return true
}
