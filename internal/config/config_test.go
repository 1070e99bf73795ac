package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCurrent_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("VUEDJ_HOME", t.TempDir())

	Load()
	s := Current()

	assert.Equal(t, DefaultNodeBin, s.NodeBin)
	assert.Equal(t, DefaultNpmBin, s.NpmBin)
	assert.Equal(t, DefaultVueBin, s.VueBin)
	assert.Equal(t, DefaultVueMinVersion, s.VueMinVersion)
	assert.Equal(t, DefaultVuePackage, s.VuePackage)
	assert.Equal(t, DefaultVueTemplate, s.VueTemplate)
	assert.False(t, s.Strict)
	assert.Nil(t, s.Env)
}

func TestCurrent_EnvFromConfigFile(t *testing.T) {
	resetViper(t)
	home := t.TempDir()
	t.Setenv("VUEDJ_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("env:\n  NODE_ENV: production\n  npm_config_registry: https://registry.example.com\n"), 0644))

	Load()
	s := Current()

	assert.Equal(t, map[string]string{
		"NODE_ENV":            "production",
		"NPM_CONFIG_REGISTRY": "https://registry.example.com",
	}, s.Env)
}

func TestCurrent_EnvOverride(t *testing.T) {
	resetViper(t)
	t.Setenv("VUEDJ_HOME", t.TempDir())
	t.Setenv("VUEDJ_VUE_MIN_VERSION", "3.0.0")
	t.Setenv("VUEDJ_STRICT", "true")

	Load()
	s := Current()

	assert.Equal(t, "3.0.0", s.VueMinVersion)
	assert.True(t, s.Strict)
}

func TestSet_WritesConfigFile(t *testing.T) {
	resetViper(t)
	home := t.TempDir()
	t.Setenv("VUEDJ_HOME", home)

	Load()
	require.NoError(t, Set(KeyVueTemplate, "webpack-simple"))

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "webpack-simple")

	viper.Reset()
	Load()
	assert.Equal(t, "webpack-simple", Get(KeyVueTemplate))
}
