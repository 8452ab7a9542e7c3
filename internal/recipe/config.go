package recipe

import "log/slog"

// Conventional file targets in the working directory.
const (
	PyprojectPath = "pyproject.toml"
	RuffPath      = "ruff.toml"
	PreCommitPath = ".pre-commit-config.yaml"
)

// Config carries the parameters shared by every recipe. Callers thread it
// explicitly through call sites; there is no package-level default.
type Config struct {
	// Version is the Python version stamped into requires-python and the
	// fields derived from it.
	Version string

	// Pyproject, Ruff, and PreCommit are the target file paths.
	Pyproject string
	Ruff      string
	PreCommit string

	// Logger receives one info line per written file. nil falls back to
	// slog.Default().
	Logger *slog.Logger
}

// Default returns a Config with the conventional targets and version.
func Default() Config {
	return Config{
		Version:   "3.14",
		Pyproject: PyprojectPath,
		Ruff:      RuffPath,
		PreCommit: PreCommitPath,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.Default()
}
