package yamldoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustParse(t *testing.T, content string) *Document {
	t.Helper()

	doc := &Document{}
	require.NoError(t, yaml.Unmarshal([]byte(content), &doc.root))
	require.NotZero(t, doc.root.Kind)

	return doc
}

func TestLoadMissingFileYieldsEmptyDocument(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	root, err := doc.Root()
	require.NoError(t, err)
	require.NotNil(t, root)
}

func TestLoadEmptyFileYieldsEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	_, err = doc.Root()
	require.NoError(t, err)
}

func TestLoadMalformedFileFailsWithParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repos: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestRootRejectsNonMapping(t *testing.T) {
	doc := mustParse(t, "- a\n- b\n")

	_, err := doc.Root()
	require.Error(t, err)

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "mapping", mismatch.Want)
	assert.Equal(t, "sequence", mismatch.Got)
}

func TestSequenceCreatedOnFirstAccess(t *testing.T) {
	doc := New()

	root, err := doc.Root()
	require.NoError(t, err)

	repos, err := root.Sequence("repos")
	require.NoError(t, err)
	assert.Zero(t, repos.Len())

	// The handle is backed by the document.
	again, err := root.Sequence("repos")
	require.NoError(t, err)
	require.NoError(t, again.Append("entry"))
	assert.Equal(t, 1, repos.Len())
}

func TestSequenceRejectsScalarAtKey(t *testing.T) {
	doc := mustParse(t, "repos: nope\n")

	root, err := doc.Root()
	require.NoError(t, err)

	_, err = root.Sequence("repos")
	require.Error(t, err)

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "repos", mismatch.Key)
	assert.Equal(t, "sequence", mismatch.Want)
	assert.Equal(t, "scalar", mismatch.Got)
}

func TestSequenceAppendIfAbsent(t *testing.T) {
	doc := mustParse(t, "repos:\n  - repo: https://example.com/x\n    rev: v1\n")

	root, err := doc.Root()
	require.NoError(t, err)

	repos, err := root.Sequence("repos")
	require.NoError(t, err)

	existing := map[string]interface{}{"repo": "https://example.com/x", "rev": "v1"}
	appended, err := repos.AppendIfAbsent(existing)
	require.NoError(t, err)
	assert.False(t, appended)
	assert.Equal(t, 1, repos.Len())

	other := map[string]interface{}{"repo": "https://example.com/x", "rev": "v2"}
	appended, err = repos.AppendIfAbsent(other)
	require.NoError(t, err)
	assert.True(t, appended)
	assert.Equal(t, 2, repos.Len())
}

func TestEqualIgnoresComments(t *testing.T) {
	a := mustParse(t, "# managed hooks\nname: demo\n")
	b := mustParse(t, "name: demo\n")

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, mustParse(t, "name: other\n")))
}

func TestCommentsSurviveRewrite(t *testing.T) {
	doc := mustParse(t, "# managed hooks\nrepos:\n  - repo: https://example.com/x\n    rev: v1\n")

	root, err := doc.Root()
	require.NoError(t, err)

	repos, err := root.Sequence("repos")
	require.NoError(t, err)
	require.NoError(t, repos.Append(map[string]interface{}{"repo": "https://example.com/y", "rev": "v2"}))

	data, err := doc.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "managed hooks")
	assert.Contains(t, string(data), "https://example.com/y")
}

func TestWriteFileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	doc := New()
	root, err := doc.Root()
	require.NoError(t, err)

	repos, err := root.Sequence("repos")
	require.NoError(t, err)
	require.NoError(t, repos.Append(map[string]interface{}{"repo": "https://example.com/x"}))

	require.NoError(t, doc.WriteFile(path))

	reread, err := Load(path)
	require.NoError(t, err)
	assert.True(t, Equal(doc, reread))
}
