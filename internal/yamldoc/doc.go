// Package yamldoc is the YAML counterpart of package document: a
// comment-preserving node tree with fetch-or-create accessors and
// insert-if-absent sequences, built on gopkg.in/yaml.v3 nodes.
//
// It covers the YAML configs this tool manages (pre-commit hooks); the
// accessor and equality contracts match package document so both plug into
// the same session layer.
package yamldoc
