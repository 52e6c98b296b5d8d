package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points HOME and XDG_CONFIG_HOME at fresh temp dirs so tests
// never see the developer's real config, and returns both paths.
func isolateHome(t *testing.T) (home, configHome string) {
	t.Helper()
	home = t.TempDir()
	configHome = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("CHLOG_STORE", "")
	t.Setenv("CHLOG_STORE_PATH", "")
	t.Setenv("CHLOG_DEFAULT_AUTHOR", "")
	os.Unsetenv("CHLOG_STORE")
	os.Unsetenv("CHLOG_STORE_PATH")
	os.Unsetenv("CHLOG_DEFAULT_AUTHOR")
	return home, configHome
}

func writeUserConfig(t *testing.T, configHome, content string) {
	t.Helper()
	dir := filepath.Join(configHome, "chlog")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.StorePath)
	assert.Empty(t, cfg.DefaultAuthor)
	assert.Zero(t, cfg.MaxVersions)
	assert.False(t, cfg.Plain)
}

func TestLoadUserConfig(t *testing.T) {
	_, configHome := isolateHome(t)
	writeUserConfig(t, configHome, "store_path: /tmp/custom.yaml\ndefault_author: alice\nmax_versions: 5\nplain: true\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.yaml", cfg.StorePath)
	assert.Equal(t, "alice", cfg.DefaultAuthor)
	assert.Equal(t, 5, cfg.MaxVersions)
	assert.True(t, cfg.Plain)
}

func TestLoadLegacyJSONConfig(t *testing.T) {
	home, _ := isolateHome(t)
	dir := filepath.Join(home, ".chlog")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"default_author": "bob", "max_versions": 3}`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.DefaultAuthor)
	assert.Equal(t, 3, cfg.MaxVersions)
}

func TestLoadYAMLShadowsLegacy(t *testing.T) {
	home, configHome := isolateHome(t)
	writeUserConfig(t, configHome, "default_author: alice\n")
	dir := filepath.Join(home, ".chlog")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"default_author": "bob"}`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	// When the YAML file exists the legacy JSON is ignored entirely.
	assert.Equal(t, "alice", cfg.DefaultAuthor)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	_, configHome := isolateHome(t)
	writeUserConfig(t, configHome, "default_author: alice\nstore_path: /tmp/from-file.yaml\n")
	t.Setenv("CHLOG_DEFAULT_AUTHOR", "carol")
	t.Setenv("CHLOG_STORE_PATH", "/tmp/from-env.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "carol", cfg.DefaultAuthor)
	assert.Equal(t, "/tmp/from-env.yaml", cfg.StorePath)
}

func TestLoadStoreEnvWinsOverStorePath(t *testing.T) {
	isolateHome(t)
	t.Setenv("CHLOG_STORE_PATH", "/tmp/path.yaml")
	t.Setenv("CHLOG_STORE", "/tmp/store.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/store.yaml", cfg.StorePath)
}

func TestLoadMalformedUserConfig(t *testing.T) {
	_, configHome := isolateHome(t)
	writeUserConfig(t, configHome, ":\n  - [broken")

	_, err := Load()
	require.Error(t, err)
}
