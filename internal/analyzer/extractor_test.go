package analyzer

import (
	"reflect"
	"testing"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

const extractorFixture = `import os
import numpy as np
from typing import List, Optional
from collections import *

def divide(a: int, b: int) -> float:
    """Divide a by b."""
    return a / b

async def fetch_data(url: str, *args, timeout: int = 5, **kwargs):
    pass

def _helper(x):
    pass

@app.route("/")
def handler(request):
    pass

class Calculator(Base):
    """Does math."""

    precision: int = 2

    def __init__(self, precision: int = 2):
        self.precision = precision

    @staticmethod
    def add(a: int, b: int) -> int:
        return a + b
`

func extractFixture(t *testing.T) m.Extraction {
	t.Helper()

	return Extract(mustParse(t, extractorFixture))
}

func functionByName(t *testing.T, functions []m.FunctionRecord, name string) m.FunctionRecord {
	t.Helper()

	for _, fn := range functions {
		if fn.Name == name {
			return fn
		}
	}

	t.Fatalf("function %q not extracted", name)

	return m.FunctionRecord{}
}

func TestExtract_Function(t *testing.T) {
	ex := extractFixture(t)

	divide := functionByName(t, ex.Functions, "divide")

	wantArgs := []m.ArgumentRecord{
		{Name: "a", Annotation: "int"},
		{Name: "b", Annotation: "int"},
	}
	if !reflect.DeepEqual(divide.Args, wantArgs) {
		t.Fatalf("divide args = %+v, want %+v", divide.Args, wantArgs)
	}

	if divide.ReturnType != "float" {
		t.Fatalf("divide return type = %q, want float", divide.ReturnType)
	}

	if divide.Docstring != "Divide a by b." {
		t.Fatalf("divide docstring = %q", divide.Docstring)
	}

	if divide.Complexity != 1 {
		t.Fatalf("divide complexity = %d, want 1", divide.Complexity)
	}

	if divide.Line != 6 {
		t.Fatalf("divide line = %d, want 6", divide.Line)
	}
}

func TestExtract_AsyncAndVariadic(t *testing.T) {
	ex := extractFixture(t)

	fetch := functionByName(t, ex.Functions, "fetch_data")

	if !fetch.IsAsync {
		t.Fatal("fetch_data should be async")
	}

	if !fetch.HasVarArgs || !fetch.HasKwArgs {
		t.Fatalf("fetch_data varargs/kwargs = %v/%v, want true/true", fetch.HasVarArgs, fetch.HasKwArgs)
	}

	// timeout sits after *args, so it is keyword-only and excluded.
	wantArgs := []m.ArgumentRecord{{Name: "url", Annotation: "str"}}
	if !reflect.DeepEqual(fetch.Args, wantArgs) {
		t.Fatalf("fetch_data args = %+v, want %+v", fetch.Args, wantArgs)
	}

	if fetch.HasDefaults {
		t.Fatal("keyword-only default should not set HasDefaults")
	}
}

func TestExtract_Decorators(t *testing.T) {
	ex := extractFixture(t)

	handler := functionByName(t, ex.Functions, "handler")

	want := []string{`app.route("/")`}
	if !reflect.DeepEqual(handler.Decorators, want) {
		t.Fatalf("handler decorators = %+v, want %+v", handler.Decorators, want)
	}
}

func TestExtract_Class(t *testing.T) {
	ex := extractFixture(t)

	if len(ex.Classes) != 1 {
		t.Fatalf("classes = %d, want 1", len(ex.Classes))
	}

	cls := ex.Classes[0]

	if cls.Name != "Calculator" {
		t.Fatalf("class name = %q", cls.Name)
	}

	if !reflect.DeepEqual(cls.Bases, []string{"Base"}) {
		t.Fatalf("class bases = %+v", cls.Bases)
	}

	if cls.Docstring != "Does math." {
		t.Fatalf("class docstring = %q", cls.Docstring)
	}

	wantAttrs := []m.AttributeRecord{{Name: "precision", Annotation: "int"}}
	if !reflect.DeepEqual(cls.Attributes, wantAttrs) {
		t.Fatalf("class attributes = %+v, want %+v", cls.Attributes, wantAttrs)
	}

	if len(cls.Methods) != 2 {
		t.Fatalf("methods = %d, want 2", len(cls.Methods))
	}

	init := cls.Methods[0]
	if init.Name != "__init__" || !init.HasDefaults {
		t.Fatalf("__init__ = %+v", init)
	}

	add := cls.Methods[1]
	if add.Name != "add" || !add.IsStatic {
		t.Fatalf("add = %+v", add)
	}

	// Methods also appear in the flat function list.
	if got := functionByName(t, ex.Functions, "add"); !got.IsStatic {
		t.Fatal("flat function list lost the staticmethod marker")
	}
}

func TestExtract_Imports(t *testing.T) {
	ex := extractFixture(t)

	want := []m.ImportRecord{
		{Module: "os", Name: "os", Kind: m.ImportDirect},
		{Module: "numpy", Name: "np", Kind: m.ImportDirect},
		{Module: "typing.List", Name: "List", Kind: m.ImportFrom},
		{Module: "typing.Optional", Name: "Optional", Kind: m.ImportFrom},
		{Module: "collections.*", Name: "*", Kind: m.ImportFrom},
	}

	if !reflect.DeepEqual(ex.Imports, want) {
		t.Fatalf("imports = %+v, want %+v", ex.Imports, want)
	}
}

func TestExtract_RelativeImport(t *testing.T) {
	ex := Extract(mustParse(t, "from . import sibling\n"))

	want := []m.ImportRecord{{Module: ".sibling", Name: "sibling", Kind: m.ImportFrom}}
	if !reflect.DeepEqual(ex.Imports, want) {
		t.Fatalf("imports = %+v, want %+v", ex.Imports, want)
	}
}

func TestComplexity_Branches(t *testing.T) {
	src := `def branchy(a, b):
    if a and b:
        return 1
    elif a:
        for i in range(3):
            b += i
    else:
        while b:
            b -= 1
    try:
        return b
    except ValueError:
        return 0
`

	ex := Extract(mustParse(t, src))

	fn := functionByName(t, ex.Functions, "branchy")

	// 1 base + if + boolean_operator + elif + for + while + except.
	if fn.Complexity != 7 {
		t.Fatalf("complexity = %d, want 7", fn.Complexity)
	}
}

func TestExtract_NestedFunction(t *testing.T) {
	src := `def outer():
    def inner():
        pass
    return inner
`

	ex := Extract(mustParse(t, src))

	if len(ex.Functions) != 2 {
		t.Fatalf("functions = %d, want 2", len(ex.Functions))
	}

	functionByName(t, ex.Functions, "inner")
}

func TestDependencies(t *testing.T) {
	ex := extractFixture(t)

	want := []string{"os", "numpy", "typing", "collections"}
	if got := Dependencies(ex.Imports); !reflect.DeepEqual(got, want) {
		t.Fatalf("Dependencies() = %+v, want %+v", got, want)
	}
}
