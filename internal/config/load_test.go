package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	Load("")
	assert.Equal(t, "graph.html", viper.GetString("output"))
	assert.False(t, viper.GetBool("verbose"))
	assert.Empty(t, viper.GetString("log_file"))
}

func TestLoadFromEnv(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("SEQBENCH_OUTPUT", "elsewhere.html")
	Load("")
	assert.Equal(t, "elsewhere.html", viper.GetString("output"))
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: from-file.html\nverbose: true\n"), 0644))

	Load(path)
	assert.Equal(t, "from-file.html", viper.GetString("output"))
	assert.True(t, viper.GetBool("verbose"))
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, "graph.html", viper.GetString("output"))
}
