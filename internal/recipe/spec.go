package recipe

import (
	"fmt"
	"strings"
)

// Index identifies one package index entry.
type Index struct {
	Name string
	URL  string
}

// HookRepo identifies one pre-commit hook repository entry.
type HookRepo struct {
	Repo string
	Rev  string
	Hook string
}

// MalformedSpecError reports a composite flag value that did not split into
// the expected number of fields. It is raised before any file is touched.
type MalformedSpecError struct {
	Spec string
	Want int
	Got  int
}

func (e *MalformedSpecError) Error() string {
	return fmt.Sprintf("spec %q: want %d comma-separated fields, got %d", e.Spec, e.Want, e.Got)
}

// ParseIndexSpecs parses a |-separated list of name,url pairs.
func ParseIndexSpecs(raw string) ([]Index, error) {
	var indexes []Index

	for _, spec := range strings.Split(raw, "|") {
		fields, err := splitSpec(spec, 2)
		if err != nil {
			return nil, err
		}

		indexes = append(indexes, Index{Name: fields[0], URL: fields[1]})
	}

	return indexes, nil
}

// ParseHookSpecs parses a |-separated list of repo,rev,hook triples.
func ParseHookSpecs(raw string) ([]HookRepo, error) {
	var repos []HookRepo

	for _, spec := range strings.Split(raw, "|") {
		fields, err := splitSpec(spec, 3)
		if err != nil {
			return nil, err
		}

		repos = append(repos, HookRepo{Repo: fields[0], Rev: fields[1], Hook: fields[2]})
	}

	return repos, nil
}

func splitSpec(spec string, want int) ([]string, error) {
	fields := strings.Split(spec, ",")
	if len(fields) != want {
		return nil, &MalformedSpecError{Spec: spec, Want: want, Got: len(fields)}
	}

	return fields, nil
}
