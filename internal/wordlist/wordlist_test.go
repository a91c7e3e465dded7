package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, "11111\tabacus\n11112\tabdomen\n\n11113 zebra\n")

	list, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, list.Len())
	assert.Equal(t, []string{"Abacus", "Abdomen", "Zebra"}, list.Words())
}

func TestLoad_CapitalizesFirstLetterOnly(t *testing.T) {
	path := writeTemp(t, "11111\tmcGuffin\n")

	list, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "McGuffin", list.At(0))
}

func TestLoad_KeepsDuplicates(t *testing.T) {
	path := writeTemp(t, "11111\tzebra\n11112\tzebra\n")

	list, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.txt"))
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTemp(t, "")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyWordlist)
}

func TestLoad_BlankLinesOnly(t *testing.T) {
	path := writeTemp(t, "\n\n   \n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyWordlist)
}

func TestLoad_MalformedLine(t *testing.T) {
	path := writeTemp(t, "11111\tabacus\njustoneword\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDefault(t *testing.T) {
	list, err := Default()
	require.NoError(t, err)

	// The shipped list is in the thousands; entropy per word depends on it.
	assert.Greater(t, list.Len(), 1000)
	assert.True(t, list.Contains("stubbed"))
	assert.True(t, list.Contains("Congress"))
}

func TestWords_ReturnsCopy(t *testing.T) {
	list := New([]string{"alpha", "beta"})

	words := list.Words()
	words[0] = "mutated"

	assert.Equal(t, "Alpha", list.At(0))
}

func TestContains_CaseInsensitive(t *testing.T) {
	list := New([]string{"alpha"})

	assert.True(t, list.Contains("ALPHA"))
	assert.True(t, list.Contains("Alpha"))
	assert.False(t, list.Contains("beta"))
}
