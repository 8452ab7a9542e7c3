package recipe

import (
	"strings"

	"conformalize/internal/document"
	"conformalize/internal/session"
)

// fixableAll marks every lint rule as auto-fixable.
const fixableAll = "ALL"

// EnsureRuff stamps the lint and format configuration into the ruff config
// file. The session is scoped to the ruff path; the manifest is never
// touched here.
func (c Config) EnsureRuff() error {
	return session.Apply(document.Store{}, c.Ruff, "[lint]", c.logger(),
		func(doc *document.Document) error {
			root := doc.Root()

			root.SetString("target-version", "py"+strings.ReplaceAll(c.Version, ".", ""))
			root.SetBool("fix", true)
			root.SetBool("preview", true)
			root.SetBool("unsafe-fixes", true)

			lint, err := root.Table("lint")
			if err != nil {
				return err
			}

			lint.SetStrings("fixable", fixableAll)

			format, err := root.Table("format")
			if err != nil {
				return err
			}

			format.SetBool("preview", true)
			format.SetBool("docstring-code-format", true)

			return nil
		})
}
