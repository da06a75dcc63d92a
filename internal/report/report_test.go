package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

func sampleReport() *m.RunReport {
	return &m.RunReport{
		RunID:       "run-123",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Analysis: &m.AnalysisResult{
			Files: []string{"service.py"},
			Functions: []m.FunctionRecord{
				{Name: "divide"},
				{Name: "get_user"},
			},
			Classes: []m.ClassRecord{{Name: "Calculator"}},
			Imports: []m.ImportRecord{
				{Module: "requests", Name: "requests", Kind: m.ImportDirect},
				{Module: "typing", Name: "Optional", Kind: m.ImportFrom},
			},
			EdgeCases:    []string{"divide: division - test with zero divisor"},
			FailureModes: []string{"get_user: may return None without indication"},
		},
		GeneratedTests: []string{"tests/test_functions.py", "tests/test_classes.py"},
	}
}

func renderWith(t *testing.T, format Format, report *m.RunReport) string {
	t.Helper()

	renderer, err := NewRenderer(format)
	if err != nil {
		t.Fatalf("NewRenderer(%q) error = %v", format, err)
	}

	out, err := renderer.Render(report)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	return out
}

func TestTextRenderer(t *testing.T) {
	report := sampleReport()
	out := renderWith(t, FormatText, report)

	for _, want := range []string{
		"SMART TEST GENERATOR REPORT",
		"Run ID: run-123",
		"Generated: 2025-06-01T12:00:00Z",
		"CODE ANALYSIS SUMMARY",
		"Files analyzed: 1",
		"Functions found: 2",
		"Classes found: 1",
		"Edge cases detected: 1",
		"Failure modes detected: 1",
		"DETECTED EDGE CASES",
		"  • divide: division - test with zero divisor",
		"DETECTED FAILURE MODES",
		"GENERATED TESTS",
		"Total tests generated: 2",
		"  • tests/test_functions.py",
		"END OF REPORT",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("text report missing %q:\n%s", want, out)
		}
	}

	// No runner results, no results section.
	if strings.Contains(out, "TEST EXECUTION RESULTS") {
		t.Fatal("text report has results section without results")
	}
}

func TestTextRenderer_Results(t *testing.T) {
	report := sampleReport()
	report.Results = &m.RunResult{
		Passed:      3,
		Failed:      1,
		Total:       4,
		FailedTests: []string{"test_divide_basic"},
	}

	out := renderWith(t, FormatText, report)

	for _, want := range []string{
		"TEST EXECUTION RESULTS",
		"Tests passed: 3",
		"Tests failed: 1",
		"Failed Tests:",
		"  ❌ test_divide_basic",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("text report missing %q:\n%s", want, out)
		}
	}
}

func TestTextRenderer_FindingsLimit(t *testing.T) {
	report := sampleReport()

	report.Analysis.EdgeCases = nil
	for i := 0; i < 14; i++ {
		report.Analysis.EdgeCases = append(report.Analysis.EdgeCases,
			fmt.Sprintf("fn%d: empty collection - test with empty list/dict/set", i))
	}

	out := renderWith(t, FormatText, report)

	if !strings.Contains(out, "  ... and 4 more") {
		t.Fatalf("text report missing truncation marker:\n%s", out)
	}

	if strings.Contains(out, "fn10:") {
		t.Fatal("text report lists findings past the limit")
	}
}

func TestJSONRenderer(t *testing.T) {
	out := renderWith(t, FormatJSON, sampleReport())

	var doc struct {
		RunID     string `json:"run_id"`
		Timestamp string `json:"timestamp"`
		Analysis  struct {
			Files         []string `json:"files"`
			FunctionCount int      `json:"function_count"`
			ClassCount    int      `json:"class_count"`
			EdgeCases     []string `json:"edge_cases"`
			Dependencies  []string `json:"dependencies"`
		} `json:"analysis"`
		Generated []string `json:"generated_tests"`
	}

	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, out)
	}

	if doc.RunID != "run-123" {
		t.Fatalf("run_id = %q", doc.RunID)
	}

	if doc.Analysis.FunctionCount != 2 || doc.Analysis.ClassCount != 1 {
		t.Fatalf("counts = %d functions, %d classes", doc.Analysis.FunctionCount, doc.Analysis.ClassCount)
	}

	if len(doc.Analysis.Dependencies) != 2 || doc.Analysis.Dependencies[0] != "requests" {
		t.Fatalf("dependencies = %+v", doc.Analysis.Dependencies)
	}

	if len(doc.Generated) != 2 {
		t.Fatalf("generated_tests = %+v", doc.Generated)
	}
}

func TestJSONRenderer_EmptyListsNotNull(t *testing.T) {
	report := &m.RunReport{
		RunID:       "run-empty",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Analysis:    &m.AnalysisResult{},
	}

	out := renderWith(t, FormatJSON, report)

	if strings.Contains(out, "null") {
		t.Fatalf("JSON report contains null lists:\n%s", out)
	}
}

func TestHTMLRenderer(t *testing.T) {
	report := sampleReport()
	report.Results = &m.RunResult{Passed: 5, Failed: 2, Total: 7}

	out := renderWith(t, FormatHTML, report)

	for _, want := range []string{
		"<title>Smart Test Generator Report</title>",
		"Generated: 2025-06-01T12:00:00Z",
		`<div class="stat-value">1</div>`,
		`<div class="stat-value">2</div>`,
		"<li>📄 tests/test_functions.py</li>",
		`<div class="stat-value test-pass">5</div>`,
		`<div class="stat-value test-fail">2</div>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("html report missing %q:\n%s", want, out)
		}
	}
}

func TestHTMLRenderer_NoResultsSection(t *testing.T) {
	out := renderWith(t, FormatHTML, sampleReport())

	if strings.Contains(out, "Test Results") {
		t.Fatal("html report has results section without results")
	}
}

func TestNewRenderer_Unknown(t *testing.T) {
	if _, err := NewRenderer(Format("pdf")); err == nil {
		t.Fatal("NewRenderer() expected error for unknown format")
	}
}

func TestFileName(t *testing.T) {
	cases := map[Format]string{
		FormatText: "report.txt",
		FormatJSON: "report.json",
		FormatHTML: "report.html",
	}

	for format, want := range cases {
		if got := FileName(format); got != want {
			t.Fatalf("FileName(%q) = %q, want %q", format, got, want)
		}
	}
}
