// Package controller provides output adapters for displaying analysis
// and generation results.
package controller

import (
	"context"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// UI defines the interface for presenting run results to the user.
// Implementations can use different output methods (plain text, styled
// terminal output).
type UI interface {
	// DisplayAnalysis renders the analysis summary tables.
	DisplayAnalysis(ctx context.Context, analysis *m.AnalysisResult) error

	// DisplayGeneratedFiles lists the test files written by the run.
	DisplayGeneratedFiles(ctx context.Context, files []string)

	// DisplayTestResults renders the pytest outcome, if tests were run.
	DisplayTestResults(ctx context.Context, results *m.RunResult)
}
