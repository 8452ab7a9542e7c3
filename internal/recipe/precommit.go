package recipe

import (
	"conformalize/internal/session"
	"conformalize/internal/yamldoc"
)

type preCommitHook struct {
	ID string `yaml:"id"`
}

type preCommitEntry struct {
	Repo  string          `yaml:"repo"`
	Rev   string          `yaml:"rev"`
	Hooks []preCommitHook `yaml:"hooks"`
}

// EnsurePreCommitRepo ensures the pre-commit config lists the given hook
// repository, appending a {repo, rev, hooks} entry to the top-level repos
// sequence only when no structurally equal entry exists. A repository
// pinned to a different rev is a distinct entry.
func (c Config) EnsurePreCommitRepo(repo HookRepo) error {
	return session.Apply(yamldoc.Store{}, c.PreCommit, "repos", c.logger(),
		func(doc *yamldoc.Document) error {
			root, err := doc.Root()
			if err != nil {
				return err
			}

			repos, err := root.Sequence("repos")
			if err != nil {
				return err
			}

			entry := preCommitEntry{
				Repo:  repo.Repo,
				Rev:   repo.Rev,
				Hooks: []preCommitHook{{ID: repo.Hook}},
			}

			_, err = repos.AppendIfAbsent(entry)

			return err
		})
}
