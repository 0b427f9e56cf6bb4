package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigReadsEnv(t *testing.T) {
	t.Setenv("CRICLE_SERVER", "http://cricle.test:9000")
	t.Setenv("CRICLE_TOKEN_FILE", "/tmp/cricle-token")

	c := DefaultConfig()
	assert.Equal(t, "http://cricle.test:9000", c.ServerURL)
	assert.Equal(t, "/tmp/cricle-token", c.TokenFile)
	assert.Equal(t, "text", c.Output)
}

func TestSaveAndLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")

	c := &Config{TokenFile: path}
	require.NoError(t, c.SaveToken("p_ABC"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded := &Config{TokenFile: path}
	require.NoError(t, loaded.LoadToken())
	assert.Equal(t, "p_ABC", loaded.Token)
}

func TestLoadTokenKeepsExplicitToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("p_FILE\n"), 0600))

	c := &Config{Token: "p_FLAG", TokenFile: path}
	require.NoError(t, c.LoadToken())
	assert.Equal(t, "p_FLAG", c.Token)
}

func TestLoadTokenMissingFile(t *testing.T) {
	c := &Config{TokenFile: filepath.Join(t.TempDir(), "missing")}
	require.NoError(t, c.LoadToken())
	assert.Empty(t, c.Token)
}
