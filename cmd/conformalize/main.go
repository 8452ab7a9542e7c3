// Package main provides the CLI entrypoint for conformalize.
//
// conformalize is an idempotent project-scaffolding tool that creates or
// patches structured config files in the working directory:
//   - pyproject.toml: build backend, dependency groups, project metadata,
//     package indexes
//   - ruff.toml: lint and format configuration
//   - .pre-commit-config.yaml: hook repositories
//
// Every file touch is a load-mutate-compare-write session; a file is
// rewritten only when the mutation actually changed something, so repeated
// runs produce no diffs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"conformalize/internal/recipe"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	s, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if s.dryRun {
		logger.Info("dry run; exiting")
		return 0
	}

	logger.Info("running")

	cfg := recipe.Default()
	cfg.Version = s.version
	cfg.Logger = logger

	if err := applyRecipes(cfg, s); err != nil {
		logger.Error("failed", "error", err)
		return 1
	}

	return 0
}

// settings holds the parsed command-line flags.
type settings struct {
	version        string
	pyproject      bool
	devGroup       bool
	projectName    string
	scriptsExtra   bool
	indexSpecs     string
	ruff           bool
	preCommitSpecs string
	dryRun         bool
}

func parseFlags(args []string) (settings, error) {
	var s settings

	flags := pflag.NewFlagSet("conformalize", pflag.ContinueOnError)
	flags.StringVar(&s.version, "version", "3.14", "Python version")
	flags.BoolVar(&s.pyproject, "pyproject", false,
		"set up 'pyproject.toml'")
	flags.BoolVar(&s.devGroup, "pyproject-dependency-groups-dev", false,
		"set up 'pyproject.toml' [dependency-groups.dev]")
	flags.StringVar(&s.projectName, "pyproject-project-name", "",
		"set up 'pyproject.toml' [project.name]")
	flags.BoolVar(&s.scriptsExtra, "pyproject-project-optional-dependencies-scripts", false,
		"set up 'pyproject.toml' [project.optional-dependencies.scripts]")
	flags.StringVar(&s.indexSpecs, "pyproject-tool-uv-indexes", "",
		"set up 'pyproject.toml' [[tool.uv.index]]; '|'-separated 'name,url' pairs")
	flags.BoolVar(&s.ruff, "ruff", false,
		"set up 'ruff.toml'")
	flags.StringVar(&s.preCommitSpecs, "pre-commit-repos", "",
		"set up '.pre-commit-config.yaml' repos; '|'-separated 'repo,rev,hook' triples")
	flags.BoolVar(&s.dryRun, "dry-run", false,
		"log what would run and exit without touching any file")

	if err := flags.Parse(args); err != nil {
		return settings{}, err
	}

	return s, nil
}

// applyRecipes runs the selected recipes strictly in flag-declaration
// order, each inside its own scoped-write session. The first error aborts
// the run; sessions already completed are unaffected.
func applyRecipes(cfg recipe.Config, s settings) error {
	if s.pyproject {
		if err := cfg.EnsureBuildSystem(); err != nil {
			return err
		}
	}

	if s.devGroup {
		if err := cfg.EnsureDevDependencyGroup(); err != nil {
			return err
		}
	}

	if s.projectName != "" {
		if err := cfg.EnsureProjectName(s.projectName); err != nil {
			return err
		}
	}

	if s.scriptsExtra {
		if err := cfg.EnsureScriptsDependency(); err != nil {
			return err
		}
	}

	if s.indexSpecs != "" {
		indexes, err := recipe.ParseIndexSpecs(s.indexSpecs)
		if err != nil {
			return err
		}

		for _, index := range indexes {
			if err := cfg.EnsureIndex(index.Name, index.URL); err != nil {
				return err
			}
		}
	}

	if s.ruff {
		if err := cfg.EnsureRuff(); err != nil {
			return err
		}
	}

	if s.preCommitSpecs != "" {
		repos, err := recipe.ParseHookSpecs(s.preCommitSpecs)
		if err != nil {
			return err
		}

		for _, repo := range repos {
			if err := cfg.EnsurePreCommitRepo(repo); err != nil {
				return err
			}
		}
	}

	return nil
}
