package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yksanjo/smart-test-generator/internal/analyzer"
	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// JSONRenderer produces the machine-readable report. It keeps counts for
// the structural records and full lists for the findings, plus the
// distinct third-party modules the analyzed code imports.
type JSONRenderer struct{}

type jsonReport struct {
	RunID       string       `json:"run_id"`
	Timestamp   string       `json:"timestamp"`
	Analysis    jsonAnalysis `json:"analysis"`
	Generated   []string     `json:"generated_tests"`
	TestResults *m.RunResult `json:"test_results,omitempty"`
}

type jsonAnalysis struct {
	Files         []string        `json:"files"`
	FunctionCount int             `json:"function_count"`
	ClassCount    int             `json:"class_count"`
	EdgeCases     []string        `json:"edge_cases"`
	FailureModes  []string        `json:"failure_modes"`
	Dependencies  []string        `json:"dependencies"`
	Skipped       []m.SkippedFile `json:"skipped,omitempty"`
}

func (r *JSONRenderer) Render(report *m.RunReport) (string, error) {
	analysis := report.Analysis

	doc := jsonReport{
		RunID:     report.RunID,
		Timestamp: report.GeneratedAt.Format(time.RFC3339),
		Analysis: jsonAnalysis{
			Files:         emptyIfNil(analysis.Files),
			FunctionCount: len(analysis.Functions),
			ClassCount:    len(analysis.Classes),
			EdgeCases:     emptyIfNil(analysis.EdgeCases),
			FailureModes:  emptyIfNil(analysis.FailureModes),
			Dependencies:  emptyIfNil(analyzer.Dependencies(analysis.Imports)),
			Skipped:       analysis.Skipped,
		},
		Generated:   emptyIfNil(report.GeneratedTests),
		TestResults: report.Results,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	return string(data), nil
}

// emptyIfNil keeps absent lists rendering as [] instead of null.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
