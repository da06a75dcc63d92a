package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yksanjo/smart-test-generator/internal/domain"
	m "github.com/yksanjo/smart-test-generator/internal/model"
)

func TestViewCmd_DisplaysSavedAnalysis(t *testing.T) {
	dir := t.TempDir()

	analysis := &m.AnalysisResult{
		Files:     []string{"sample.py"},
		Functions: []m.FunctionRecord{{Name: "divide"}},
		EdgeCases: []string{"divide: division - test with zero divisor"},
	}

	path := m.Path(filepath.Join(dir, domain.AnalysisFileName))
	require.NoError(t, analysisStore.SaveAnalysis(path, analysis))

	previous := viper.GetString(outputFlagName)
	viper.Set(outputFlagName, dir)
	defer viper.Set(outputFlagName, previous)

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	rootCmd.SetArgs([]string{"view"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Analysis Summary")
	assert.Contains(t, out.String(), "divide: division - test with zero divisor")
}

func TestViewCmd_MissingAnalysis(t *testing.T) {
	previous := viper.GetString(outputFlagName)
	viper.Set(outputFlagName, t.TempDir())
	defer viper.Set(outputFlagName, previous)

	cmd := newViewCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.Execute())
}
