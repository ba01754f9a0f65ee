package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqbench/internal/suite"
)

func tinySuiteConfig() suite.Config {
	return suite.Config{
		LargeSizes:  []int{2},
		MediumSizes: []int{2},
		SmallSizes:  []int{2},
	}
}

func TestRunCommandWritesReport(t *testing.T) {
	oldConfig := suiteConfig
	suiteConfig = tinySuiteConfig
	defer func() { suiteConfig = oldConfig }()
	defer viper.Reset()

	out := filepath.Join(t.TempDir(), "graph.html")
	viper.Set("output", out)

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"run", "--output", out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "function draw_all(){")
	assert.Contains(t, string(data), "fill_back_8")

	progress := stdout.String()
	assert.Contains(t, progress, "Start fill_back_8")
	assert.Contains(t, progress, "Report written to "+out)
}

func TestRunCommandUnwritableDestination(t *testing.T) {
	oldConfig := suiteConfig
	suiteConfig = tinySuiteConfig
	defer func() { suiteConfig = oldConfig }()
	defer viper.Reset()

	out := filepath.Join(t.TempDir(), "no", "such", "dir", "graph.html")
	viper.Set("output", out)

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"run", "--output", out})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
}

func TestRootCommandHasRunSubcommand(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Use == "run" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestOutputFlagDefault(t *testing.T) {
	f := runCmd.Flags().Lookup("output")
	require.NotNil(t, f)
	assert.Equal(t, "graph.html", f.DefValue)
}
