package analyzer

import (
	"fmt"
	"strings"

	m "github.com/yksanjo/smart-test-generator/internal/model"
	"github.com/yksanjo/smart-test-generator/pkg/orderedset"
)

// failureNameRules mirrors the edge-case dispatch with a table of likely
// failure patterns. Templates are exact text; see edgeNameRules.
var failureNameRules = []nameRule{
	{[]string{"get", "find", "search"}, []string{"may return None without indication", "may raise exception when not found"}},
	{[]string{"parse", "load", "read"}, []string{"may raise parsing error on invalid input", "may not handle malformed data"}},
	{[]string{"delete", "remove"}, []string{"may fail silently on non-existent item", "may raise exception when item not found"}},
	{[]string{"validate", "check"}, []string{"may have incomplete validation"}},
}

var (
	unvalidatedCollectionAnnotations = []string{"list", "List", "dict", "Dict", "set", "Set"}
	unvalidatedScalarAnnotations     = []string{"int", "float", "str", "bool"}
	collectionReturnFragments        = []string{"List", "Dict", "Set", "Tuple"}
)

const highComplexityFailure = 15

// FailureModeDetector derives likely failure modes from structural
// records. Like the edge-case detector it is recall-oriented: false
// positives are fine, silence is not.
type FailureModeDetector struct{}

// NewFailureModeDetector constructs a FailureModeDetector.
func NewFailureModeDetector() *FailureModeDetector {
	return &FailureModeDetector{}
}

// Detect returns the deduplicated, first-seen-ordered failure modes for
// the given functions and classes.
func (d *FailureModeDetector) Detect(functions []m.FunctionRecord, classes []m.ClassRecord) []string {
	set := orderedset.New()

	for _, fn := range functions {
		set.AddAll(d.detectFunction(fn))
	}

	for _, cls := range classes {
		set.AddAll(d.detectClass(cls))
	}

	return set.Items()
}

func (d *FailureModeDetector) detectFunction(fn m.FunctionRecord) []string {
	var modes []string

	name := fn.Name
	lower := strings.ToLower(name)

	for _, rule := range failureNameRules {
		if containsAny(lower, rule.keywords) {
			for _, finding := range rule.findings {
				modes = append(modes, fmt.Sprintf("%s: %s", name, finding))
			}
		}
	}

	for _, arg := range fn.Args {
		if contains(unvalidatedCollectionAnnotations, arg.Annotation) {
			modes = append(modes,
				fmt.Sprintf("%s: may not handle empty %s", name, arg.Name),
				fmt.Sprintf("%s: may not handle None %s", name, arg.Name))
		}

		if contains(unvalidatedScalarAnnotations, arg.Annotation) {
			modes = append(modes, fmt.Sprintf("%s: may not validate %s type", name, arg.Name))
		}
	}

	if fn.ReturnType != "" {
		if strings.Contains(fn.ReturnType, "Optional") || strings.Contains(fn.ReturnType, "None") {
			modes = append(modes, fmt.Sprintf("%s: returns Optional - caller may not check for None", name))
		}

		for _, fragment := range collectionReturnFragments {
			if strings.Contains(fn.ReturnType, fragment) {
				modes = append(modes, fmt.Sprintf("%s: may return empty collection", name))
				break
			}
		}
	}

	if fn.IsAsync {
		modes = append(modes,
			fmt.Sprintf("%s: async function - potential race condition", name),
			fmt.Sprintf("%s: async function - missing await points", name))
	}

	if strings.Contains(lower, "recursive") || strings.Contains(strings.ToLower(fn.Body), "recursion") {
		modes = append(modes,
			fmt.Sprintf("%s: recursive function - stack overflow risk", name),
			fmt.Sprintf("%s: recursive function - missing base case risk", name))
	}

	if fn.Complexity > highComplexityFailure {
		modes = append(modes, fmt.Sprintf("%s: high complexity (%d) - hard to test all paths", name, fn.Complexity))
	}

	if fn.HasVarArgs {
		modes = append(modes, fmt.Sprintf("%s: *args - may not validate number of arguments", name))
	}

	if fn.HasKwArgs {
		modes = append(modes, fmt.Sprintf("%s: **kwargs - may not validate unexpected keys", name))
	}

	return modes
}

func (d *FailureModeDetector) detectClass(cls m.ClassRecord) []string {
	name := cls.Name

	modes := []string{
		fmt.Sprintf("%s: __init__ may not validate constructor arguments", name),
	}

	for _, method := range cls.Methods {
		if method.Name == "__init__" {
			modes = append(modes,
				fmt.Sprintf("%s: may not handle invalid initialization state", name),
				fmt.Sprintf("%s: may not handle missing required fields", name))
		}

		if strings.HasPrefix(method.Name, "__get") {
			modes = append(modes, fmt.Sprintf("%s: may raise AttributeError on missing attributes", name))
		}

		if strings.HasPrefix(method.Name, "__set") {
			modes = append(modes, fmt.Sprintf("%s: may not validate assigned values", name))
		}

		if method.Name == "__enter__" || method.Name == "__exit__" {
			modes = append(modes, fmt.Sprintf("%s: context manager - may not handle exceptions properly", name))
		}

		if method.Name == "__str__" || method.Name == "__repr__" {
			modes = append(modes, fmt.Sprintf("%s: may raise exception on malformed instance", name))
		}

		if strings.HasPrefix(method.Name, "__eq__") || strings.HasPrefix(method.Name, "__cmp") {
			modes = append(modes, fmt.Sprintf("%s: comparison may not handle None or different types", name))
		}
	}

	return modes
}
