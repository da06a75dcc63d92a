package adapter

import (
	"context"
	"reflect"
	"testing"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

func TestParsePytestOutput_SummaryCounts(t *testing.T) {
	output := `test_functions.py::test_divide_basic PASSED
test_functions.py::test_divide_a_none FAILED
test_classes.py::test_Calculator_init ERROR
2 failed, 3 passed, 1 error, 1 skipped in 0.54s
`

	var result m.RunResult
	parsePytestOutput(output, &result)

	if result.Passed != 3 {
		t.Fatalf("Passed = %d, want 3", result.Passed)
	}

	if result.Failed != 2 {
		t.Fatalf("Failed = %d, want 2", result.Failed)
	}

	if result.Errors != 1 {
		t.Fatalf("Errors = %d, want 1", result.Errors)
	}

	if result.Skipped != 1 {
		t.Fatalf("Skipped = %d, want 1", result.Skipped)
	}

	if result.Total != 7 {
		t.Fatalf("Total = %d, want 7", result.Total)
	}

	want := []string{"test_divide_a_none FAILED", "test_Calculator_init ERROR"}
	if !reflect.DeepEqual(result.FailedTests, want) {
		t.Fatalf("FailedTests = %+v, want %+v", result.FailedTests, want)
	}
}

func TestParsePytestOutput_AllPassed(t *testing.T) {
	output := "5 passed in 0.12s\n"

	var result m.RunResult
	parsePytestOutput(output, &result)

	if result.Passed != 5 || result.Total != 5 {
		t.Fatalf("result = %+v, want 5 passed of 5", result)
	}

	if len(result.FailedTests) != 0 {
		t.Fatalf("FailedTests = %+v, want none", result.FailedTests)
	}
}

func TestParsePytestOutput_NoSummary(t *testing.T) {
	var result m.RunResult
	parsePytestOutput("collected 0 items\n", &result)

	if result.Total != 0 {
		t.Fatalf("Total = %d, want 0", result.Total)
	}
}

func TestPytestRunnerAdapter_NoFiles(t *testing.T) {
	runner := NewPytestRunnerAdapter()

	result, err := runner.RunPytest(context.Background(), m.Path(t.TempDir()), 0)
	if err != nil {
		t.Fatalf("RunPytest() error = %v", err)
	}

	if result.Total != 0 || result.Passed != 0 {
		t.Fatalf("result = %+v, want zero counts", result)
	}
}
