package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "stg", configBaseName)
	assert.Equal(t, "stg.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "test-type", testTypeFlagName)
	assert.Equal(t, "run-tests", runTestsFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "recursive", recursiveFlagName)
	assert.Equal(t, "report-format", reportFormatFlagName)
	assert.Equal(t, "generate.test_type", testTypeConfigKey)
	assert.Equal(t, "generate.run_tests", runTestsConfigKey)
	assert.Equal(t, "generate.parallel", parallelConfigKey)
	assert.Equal(t, "paths.recursive", recursiveConfigKey)
	assert.Equal(t, "report.format", reportFormatConfigKey)
	assert.Equal(t, "./tests", defaultOutputDir)
	assert.Equal(t, "all", defaultTestType)
	assert.Equal(t, false, defaultRunTests)
	assert.Equal(t, 1, defaultParallel)
	assert.Equal(t, true, defaultRecursive)
	assert.Equal(t, "text", defaultReportFormat)
	assert.Equal(t, "STG", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DEBUG", slog.LevelDebug},
		{"padded", "  error  ", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}
