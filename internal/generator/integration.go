package generator

import (
	"fmt"
	"strings"

	m "github.com/yksanjo/smart-test-generator/internal/model"
	"github.com/yksanjo/smart-test-generator/pkg/orderedset"
)

// knownServiceFragments are module-name fragments that mark an import as
// an external service dependency worth an integration test.
var knownServiceFragments = []string{
	"requests", "urllib", "httpx", "aiohttp",
	"boto3", "botocore",
	"google", "google.cloud",
	"azure", "azure.storage",
	"pymongo", "redis", "sqlalchemy",
	"smtplib", "email",
	"stripe", "paypal",
	"twilio", "slack",
	"pusher", "socketio",
}

// IntegrationGenerator produces pairwise class-interaction tests,
// workflow tests over function-name groups and mock skeletons for
// external service imports.
type IntegrationGenerator struct{}

// NewIntegrationGenerator constructs an IntegrationGenerator.
func NewIntegrationGenerator() *IntegrationGenerator {
	return &IntegrationGenerator{}
}

func (g *IntegrationGenerator) Name() string { return "integration" }

func (g *IntegrationGenerator) Generate(analysis *m.AnalysisResult, outDir m.Path) ([]m.GeneratedTestFile, error) {
	var files []m.GeneratedTestFile

	if len(analysis.Classes) > 0 {
		files = append(files, g.classInteractionTests(analysis.Classes, outDir))
	}

	if len(analysis.Functions) > 0 {
		files = append(files, g.workflowTests(analysis.Functions, outDir))
	}

	if services := ExternalServices(analysis.Imports); len(services) > 0 {
		files = append(files, g.externalServiceTests(services, outDir))
	}

	return files, nil
}

func (g *IntegrationGenerator) classInteractionTests(classes []m.ClassRecord, outDir m.Path) m.GeneratedTestFile {
	lines := []string{
		`"""Integration tests for class interactions."""`,
		"",
		"import pytest",
		"from unittest.mock import Mock, patch, MagicMock",
		"",
	}

	for i, cls := range classes {
		if !publicClass(cls.Name) {
			continue
		}

		for _, other := range classes[i+1:] {
			if !publicClass(other.Name) {
				continue
			}

			lines = append(lines, interactionPair(cls.Name, other.Name)...)
		}
	}

	return m.GeneratedTestFile{Path: testFilePath(outDir, "test_integration_classes.py"), Lines: lines}
}

// interactionPair emits one test in each direction for a class pair.
func interactionPair(class1, class2 string) []string {
	var lines []string

	lines = append(lines, interactionTest(class1, class2)...)
	lines = append(lines, interactionTest(class2, class1)...)

	return lines
}

func interactionTest(user, used string) []string {
	return []string{
		fmt.Sprintf("def test_%s_uses_%s():", user, used),
		fmt.Sprintf(`    """Test %s using %s."""`, user, used),
		"    # Setup",
		fmt.Sprintf("    # %s_instance = %s()", used, used),
		fmt.Sprintf("    # %s_instance = %s(%s_instance)", user, user, used),
		"    ",
		"    # Test interaction",
		"    # Add your assertions",
		"",
	}
}

func (g *IntegrationGenerator) workflowTests(functions []m.FunctionRecord, outDir m.Path) m.GeneratedTestFile {
	lines := []string{
		`"""Integration tests for function workflows."""`,
		"",
		"import pytest",
		"from unittest.mock import Mock, patch, MagicMock",
		"",
	}

	names := make([]string, len(functions))
	for i, fn := range functions {
		names[i] = fn.Name
	}

	lines = append(lines, createProcessValidateWorkflow(names)...)
	lines = append(lines, dataFlowTests(names)...)
	lines = append(lines, errorPropagationTest()...)

	return m.GeneratedTestFile{Path: testFilePath(outDir, "test_integration_workflows.py"), Lines: lines}
}

func createProcessValidateWorkflow(names []string) []string {
	create := firstMatching(names, "create", "init")
	process := firstMatching(names, "process", "transform")
	validate := firstMatching(names, "validate", "check")

	if create == "" || process == "" || validate == "" {
		return nil
	}

	return []string{
		"def test_create_process_validate_workflow():",
		`    """Test complete create -> process -> validate workflow."""`,
		"    # Create",
		fmt.Sprintf("    # data = %s(...)", create),
		"    ",
		"    # Process",
		fmt.Sprintf("    # processed = %s(data)", process),
		"    ",
		"    # Validate",
		fmt.Sprintf("    # result = %s(processed)", validate),
		"    # assert result is not None",
		"",
	}
}

func dataFlowTests(names []string) []string {
	getter := firstMatching(names, "get", "retrieve")
	setter := firstMatching(names, "set", "update")

	if getter == "" || setter == "" {
		return nil
	}

	return []string{
		"def test_data_flow_between_functions():",
		`    """Test data flow between getter and setter functions."""`,
		"    # Set data",
		fmt.Sprintf("    # %s(key, value)", setter),
		"    ",
		"    # Get data",
		fmt.Sprintf("    # result = %s(key)", getter),
		"    # assert result == value",
		"",
	}
}

func errorPropagationTest() []string {
	return []string{
		"def test_error_propagation():",
		`    """Test that errors are properly propagated."""`,
		"    # Test that errors from one function propagate correctly",
		"    # with pytest.raises(Exception):",
		"    #     function1(function2(invalid_input))",
		"",
	}
}

func (g *IntegrationGenerator) externalServiceTests(services []string, outDir m.Path) m.GeneratedTestFile {
	lines := []string{
		`"""Integration tests for external service interactions."""`,
		"",
		"import pytest",
		"from unittest.mock import Mock, patch, MagicMock",
		"",
	}

	for _, service := range services {
		lines = append(lines, externalServiceTest(service)...)
	}

	return m.GeneratedTestFile{Path: testFilePath(outDir, "test_integration_external.py"), Lines: lines}
}

func externalServiceTest(service string) []string {
	return []string{
		fmt.Sprintf("def test_%s_integration():", service),
		fmt.Sprintf(`    """Test integration with %s service."""`, service),
		"    ",
		"    # Mock the external service",
		fmt.Sprintf(`    # with patch("%s") as mock_%s:`, service, service),
		fmt.Sprintf("    #     mock_%s.return_value = ...", service),
		"    ",
		"    # Test the integration",
		"    # Add your assertions",
		"",
		fmt.Sprintf("def test_%s_error_handling():", service),
		fmt.Sprintf(`    """Test %s error handling."""`, service),
		"    ",
		fmt.Sprintf("    # Test error handling for %s failures", service),
		fmt.Sprintf(`    # with patch("%s") as mock_%s:`, service, service),
		fmt.Sprintf(`    #     mock_%s.side_effect = Exception("Service unavailable")`, service),
		"    #     with pytest.raises(Exception):",
		"    #         call_your_function()",
		"",
	}
}

// ExternalServices returns the distinct external service names referenced
// by imports, in first-seen order. The service name is the top-level
// module of the matching import.
func ExternalServices(imports []m.ImportRecord) []string {
	set := orderedset.New()

	for _, imp := range imports {
		lower := strings.ToLower(imp.Module)
		for _, fragment := range knownServiceFragments {
			if strings.Contains(lower, fragment) {
				name, _, _ := strings.Cut(imp.Module, ".")
				set.Add(name)
				break
			}
		}
	}

	return set.Items()
}

// firstMatching returns the first name whose lowercase form contains any
// of the given fragments.
func firstMatching(names []string, fragments ...string) string {
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, fragment := range fragments {
			if strings.Contains(lower, fragment) {
				return name
			}
		}
	}

	return ""
}
