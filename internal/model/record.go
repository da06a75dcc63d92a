package model

// ImportKind distinguishes plain imports from from-imports.
type ImportKind string

const (
	// ImportDirect represents `import module` statements.
	ImportDirect ImportKind = "import"
	// ImportFrom represents `from module import name` statements.
	ImportFrom ImportKind = "from_import"
)

// ArgumentRecord describes one positional parameter of a function.
// Annotation is the literal source rendering of the declared type
// expression (e.g. "int", "Optional[str]"), never a resolved type.
type ArgumentRecord struct {
	Name       string `yaml:"name" json:"name"`
	Annotation string `yaml:"annotation,omitempty" json:"annotation,omitempty"`
}

// FunctionRecord is the normalized description of a function or method.
// Methods, nested functions and module-level functions share this shape;
// the flags carry the distinctions.
type FunctionRecord struct {
	Name          string           `yaml:"name" json:"name"`
	Args          []ArgumentRecord `yaml:"args,omitempty" json:"args,omitempty"`
	ReturnType    string           `yaml:"return_type,omitempty" json:"return_type,omitempty"`
	Decorators    []string         `yaml:"decorators,omitempty" json:"decorators,omitempty"`
	Docstring     string           `yaml:"docstring,omitempty" json:"docstring,omitempty"`
	Line          int              `yaml:"line" json:"line"`
	Complexity    int              `yaml:"complexity" json:"complexity"`
	IsAsync       bool             `yaml:"is_async,omitempty" json:"is_async,omitempty"`
	HasVarArgs    bool             `yaml:"has_varargs,omitempty" json:"has_varargs,omitempty"`
	HasKwArgs     bool             `yaml:"has_kwargs,omitempty" json:"has_kwargs,omitempty"`
	HasDefaults   bool             `yaml:"has_defaults,omitempty" json:"has_defaults,omitempty"`
	IsStatic      bool             `yaml:"is_static,omitempty" json:"is_static,omitempty"`
	IsClassMethod bool             `yaml:"is_classmethod,omitempty" json:"is_classmethod,omitempty"`
	Body          string           `yaml:"-" json:"-"`
}

// AttributeRecord is a class-level annotated attribute.
type AttributeRecord struct {
	Name       string `yaml:"name" json:"name"`
	Annotation string `yaml:"annotation,omitempty" json:"annotation,omitempty"`
}

// ClassRecord is the normalized description of a class definition.
type ClassRecord struct {
	Name       string            `yaml:"name" json:"name"`
	Bases      []string          `yaml:"bases,omitempty" json:"bases,omitempty"`
	Methods    []FunctionRecord  `yaml:"methods,omitempty" json:"methods,omitempty"`
	Attributes []AttributeRecord `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Docstring  string            `yaml:"docstring,omitempty" json:"docstring,omitempty"`
	Line       int               `yaml:"line" json:"line"`
}

// ImportRecord describes one imported binding.
type ImportRecord struct {
	Module string     `yaml:"module" json:"module"`
	Name   string     `yaml:"name" json:"name"`
	Kind   ImportKind `yaml:"kind" json:"kind"`
}

// Extraction holds the ordered structural records pulled from a single
// syntax tree.
type Extraction struct {
	Functions []FunctionRecord
	Classes   []ClassRecord
	Imports   []ImportRecord
}
