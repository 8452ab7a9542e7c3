package recipe

import (
	"conformalize/internal/document"
	"conformalize/internal/session"
)

// Fixed values stamped into the manifest.
const (
	buildBackend    = "uv_build"
	devTestingDep   = "dycw-utilities[test]"
	devDisplayDep   = "rich"
	scriptsClickDep = "click >=8.3.1"
)

// normalizePyproject re-stamps the baseline fields asserted on every touch
// of the manifest: the build backend and the interpreter constraint.
func (c Config) normalizePyproject(doc *document.Document) error {
	root := doc.Root()

	buildSystem, err := root.Table("build-system")
	if err != nil {
		return err
	}

	buildSystem.SetString("build-backend", buildBackend)
	buildSystem.SetStrings("requires", buildBackend)

	project, err := root.Table("project")
	if err != nil {
		return err
	}

	project.SetString("requires-python", ">= "+c.Version)

	return nil
}

// EnsureBuildSystem stamps the baseline build-system and requires-python
// fields and nothing else.
func (c Config) EnsureBuildSystem() error {
	return session.Apply(document.Store{}, c.Pyproject, "[build-system]", c.logger(),
		c.normalizePyproject)
}

// EnsureDevDependencyGroup ensures [dependency-groups] dev lists the
// testing-extras and display dependencies, appending whichever is missing.
func (c Config) EnsureDevDependencyGroup() error {
	return session.Apply(document.Store{}, c.Pyproject, "[dependency-groups.dev]", c.logger(),
		c.normalizePyproject,
		func(doc *document.Document) error {
			groups, err := doc.Root().Table("dependency-groups")
			if err != nil {
				return err
			}

			dev, err := groups.Array("dev")
			if err != nil {
				return err
			}

			dev.AppendIfAbsent(devTestingDep)
			dev.AppendIfAbsent(devDisplayDep)

			return nil
		})
}

// EnsureProjectName sets [project] name, overwriting any existing value.
func (c Config) EnsureProjectName(name string) error {
	return session.Apply(document.Store{}, c.Pyproject, "[project.name]", c.logger(),
		c.normalizePyproject,
		func(doc *document.Document) error {
			project, err := doc.Root().Table("project")
			if err != nil {
				return err
			}

			project.SetString("name", name)

			return nil
		})
}

// EnsureScriptsDependency ensures [project.optional-dependencies] scripts
// lists the pinned CLI dependency, appending it if missing.
func (c Config) EnsureScriptsDependency() error {
	return session.Apply(document.Store{}, c.Pyproject, "[project.optional-dependencies.scripts]", c.logger(),
		c.normalizePyproject,
		func(doc *document.Document) error {
			project, err := doc.Root().Table("project")
			if err != nil {
				return err
			}

			optional, err := project.Table("optional-dependencies")
			if err != nil {
				return err
			}

			scripts, err := optional.Array("scripts")
			if err != nil {
				return err
			}

			scripts.AppendIfAbsent(scriptsClickDep)

			return nil
		})
}

// EnsureIndex ensures [[tool.uv.index]] holds an {explicit, name, url}
// entry for the given index, appending one only when no structurally equal
// entry exists. Two indexes sharing a name but not a URL are distinct.
func (c Config) EnsureIndex(name, url string) error {
	return session.Apply(document.Store{}, c.Pyproject, "[tool.uv.index]", c.logger(),
		c.normalizePyproject,
		func(doc *document.Document) error {
			tool, err := doc.Root().Table("tool")
			if err != nil {
				return err
			}

			uv, err := tool.Table("uv")
			if err != nil {
				return err
			}

			indexes, err := uv.ArrayOfTables("index")
			if err != nil {
				return err
			}

			entry := document.NewTable()
			entry.SetBool("explicit", true)
			entry.SetString("name", name)
			entry.SetString("url", url)

			indexes.AppendIfAbsent(entry)

			return nil
		})
}
