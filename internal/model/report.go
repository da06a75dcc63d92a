package model

import "time"

// RunResult represents the outcome of invoking the external test runner.
type RunResult struct {
	Passed      int           `yaml:"passed" json:"passed"`
	Failed      int           `yaml:"failed" json:"failed"`
	Skipped     int           `yaml:"skipped" json:"skipped"`
	Errors      int           `yaml:"errors" json:"errors"`
	Total       int           `yaml:"total" json:"total"`
	Duration    time.Duration `yaml:"duration" json:"duration"`
	FailedTests []string      `yaml:"failed_tests,omitempty" json:"failed_tests,omitempty"`
	TestFiles   []string      `yaml:"test_files,omitempty" json:"test_files,omitempty"`
}

// RunReport is everything the report renderers consume: the analysis, the
// generated file list and, when the runner was invoked, its results.
type RunReport struct {
	RunID          string          `json:"run_id"`
	GeneratedAt    time.Time       `json:"generated_at"`
	Analysis       *AnalysisResult `json:"analysis"`
	GeneratedTests []string        `json:"generated_tests"`
	Results        *RunResult      `json:"test_results,omitempty"`
}
