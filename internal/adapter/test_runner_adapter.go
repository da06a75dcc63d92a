package adapter

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// TestRunnerAdapter abstracts execution of the generated test suite.
type TestRunnerAdapter interface {
	// RunPytest runs pytest over testDir and returns the parsed results.
	// A non-zero pytest exit code is reported through the result counts,
	// not as an error; only failures to launch the runner are errors.
	RunPytest(ctx context.Context, testDir m.Path, testFileCount int) (m.RunResult, error)
}

// PytestRunnerAdapter provides a concrete implementation using os/exec.
type PytestRunnerAdapter struct {
	timeout time.Duration
}

// NewPytestRunnerAdapter constructs a PytestRunnerAdapter with a default
// 5 minute timeout.
func NewPytestRunnerAdapter() *PytestRunnerAdapter {
	return &PytestRunnerAdapter{
		timeout: 5 * time.Minute,
	}
}

// RunPytest runs 'python -m pytest' on testDir.
func (a *PytestRunnerAdapter) RunPytest(ctx context.Context, testDir m.Path, testFileCount int) (m.RunResult, error) {
	result := m.RunResult{}

	if testFileCount == 0 {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "python", "-m", "pytest",
		string(testDir), "-v", "--tb=short", "--no-header", "-q")

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	result.Duration = time.Since(start)

	if runErr == nil {
		result.Passed = testFileCount
		result.Total = testFileCount

		return result, nil
	}

	if _, ok := runErr.(*exec.ExitError); !ok {
		// pytest never ran: missing interpreter, killed by the context.
		result.Errors = testFileCount
		result.FailedTests = append(result.FailedTests, runErr.Error())

		return result, nil
	}

	parsePytestOutput(stdout.String(), &result)

	return result, nil
}

// parsePytestOutput extracts the counts from the pytest summary line and
// the failed test names from the verbose listing. The summary looks like
// "3 passed, 2 failed, 1 error in 0.12s".
func parsePytestOutput(output string, result *m.RunResult) {
	lines := strings.Split(output, "\n")

	for _, line := range lines {
		if !strings.Contains(line, "passed") && !strings.Contains(line, "failed") && !strings.Contains(line, "error") {
			continue
		}

		parts := strings.Fields(line)
		for i, part := range parts {
			if i == 0 {
				continue
			}

			count, err := strconv.Atoi(parts[i-1])
			if err != nil {
				continue
			}

			switch strings.Trim(part, ",") {
			case "passed":
				result.Passed = count
			case "failed":
				result.Failed = count
			case "error", "errors":
				result.Errors = count
			case "skipped":
				result.Skipped = count
			}
		}
	}

	result.Total = result.Passed + result.Failed + result.Errors + result.Skipped

	for _, line := range lines {
		if !strings.Contains(line, "FAILED") && !strings.Contains(line, "ERROR") {
			continue
		}

		if idx := strings.LastIndex(line, "::"); idx >= 0 {
			result.FailedTests = append(result.FailedTests, strings.TrimSpace(line[idx+2:]))
		}
	}
}
