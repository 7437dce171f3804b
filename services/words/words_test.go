package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedListsAreClean(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)

	assert.True(t, d.IsTarget("TERMO"))
	assert.True(t, d.IsTarget("braço"), "accented targets are stored normalized")
	assert.False(t, d.IsTarget("JOGO"), "four letter targets are dropped")
	assert.True(t, d.IsAllowed("tempo"))
	assert.True(t, d.IsAllowed("MANHA"))
	assert.False(t, d.IsAllowed("XXXXX"))

	for _, w := range d.targets {
		assert.Regexp(t, `^[A-Z]{5}$`, w)
	}
}

func TestEmbeddedValidListCoversEverydayWords(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)

	for _, w := range []string{"nosso", "falha", "verbo", "sabor", "saúde", "ações"} {
		assert.True(t, d.IsAllowed(w), w)
	}
	assert.Greater(t, d.Stats().Allowed, 900)
}

func TestRandomTargetComesFromTargets(t *testing.T) {
	d, err := NewDictionary([]string{"TERMO", "TESTE"}, []string{"TEMPO"})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		w, err := d.RandomTarget()
		require.NoError(t, err)
		assert.Contains(t, []string{"TERMO", "TESTE"}, w)
	}
	assert.Equal(t, Stats{Targets: 2, Allowed: 3}, d.Stats())
}

func TestNewDictionaryRejectsEmptyTargets(t *testing.T) {
	_, err := NewDictionary([]string{"JOGO", "ÁRVORE"}, nil)
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TargetsFile), []byte("# comment\nplano\n\nsonho\n"), 0o644))

	d, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Stats().Targets)
	assert.True(t, d.IsAllowed("PLANO"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ValidFile), []byte("vento\n"), 0o644))
	d, err = Load(dir)
	require.NoError(t, err)
	assert.True(t, d.IsAllowed("VENTO"))
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
