// Package recipe is the catalog of named, idempotent config mutations.
//
// Each recipe runs inside its own scoped-write session against a single
// file: scalar fields are stamped unconditionally (last write wins), while
// collection entries are inserted only when no equal entry exists, so
// re-running any recipe with the same parameters never duplicates content
// and never rewrites an unchanged file.
//
// # Catalog
//
//   - EnsureBuildSystem: build backend and interpreter constraint in the
//     manifest
//   - EnsureDevDependencyGroup: [dependency-groups] dev entries
//   - EnsureProjectName: [project] name
//   - EnsureScriptsDependency: [project.optional-dependencies] scripts entry
//   - EnsureIndex: one [[tool.uv.index]] entry per name/url pair
//   - EnsureRuff: lint and format settings in the ruff config
//   - EnsurePreCommitRepo: one hook repository entry in the pre-commit
//     config
//
// Every manifest recipe additionally re-stamps the baseline build-system
// and requires-python fields on each touch of the file.
package recipe
