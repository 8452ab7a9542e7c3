package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexSpecs(t *testing.T) {
	indexes, err := ParseIndexSpecs("pypi,https://pypi.org/simple")
	require.NoError(t, err)
	assert.Equal(t, []Index{{Name: "pypi", URL: "https://pypi.org/simple"}}, indexes)

	indexes, err = ParseIndexSpecs("a,http://x|b,http://y")
	require.NoError(t, err)
	assert.Equal(t, []Index{
		{Name: "a", URL: "http://x"},
		{Name: "b", URL: "http://y"},
	}, indexes)
}

func TestParseIndexSpecsMalformed(t *testing.T) {
	_, err := ParseIndexSpecs("onlyonefield")
	require.Error(t, err)

	var malformed *MalformedSpecError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "onlyonefield", malformed.Spec)
	assert.Equal(t, 2, malformed.Want)
	assert.Equal(t, 1, malformed.Got)

	_, err = ParseIndexSpecs("a,b,c")
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 3, malformed.Got)

	// One bad spec poisons the whole list.
	_, err = ParseIndexSpecs("a,http://x|bad")
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "bad", malformed.Spec)
}

func TestParseHookSpecs(t *testing.T) {
	repos, err := ParseHookSpecs("https://example.com/x,v1,fmt|https://example.com/y,v2,lint")
	require.NoError(t, err)
	assert.Equal(t, []HookRepo{
		{Repo: "https://example.com/x", Rev: "v1", Hook: "fmt"},
		{Repo: "https://example.com/y", Rev: "v2", Hook: "lint"},
	}, repos)
}

func TestParseHookSpecsMalformed(t *testing.T) {
	_, err := ParseHookSpecs("https://example.com/x,v1")
	require.Error(t, err)

	var malformed *MalformedSpecError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 3, malformed.Want)
	assert.Equal(t, 2, malformed.Got)
}
