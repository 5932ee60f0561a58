// Package java is a front end for the member resolution engine over a graph
// of Java class models.
package java

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

// ClassModel describes one class, interface, enum, annotation or record.
// Constructors are methods named "<init>".
type ClassModel struct {
	Name             string                 `json:"name" yaml:"name"`
	SimpleName       string                 `json:"simpleName,omitempty" yaml:"simpleName,omitempty"`
	Package          string                 `json:"package,omitempty" yaml:"package,omitempty"`
	SuperClass       string                 `json:"superClass,omitempty" yaml:"superClass,omitempty"`
	Interfaces       []string               `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Visibility       Visibility             `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Kind             ClassKind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	IsFinal          bool                   `json:"final,omitempty" yaml:"final,omitempty"`
	IsAbstract       bool                   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	IsStatic         bool                   `json:"static,omitempty" yaml:"static,omitempty"`
	IsSynthetic      bool                   `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
	EnclosingClass   string                 `json:"enclosingClass,omitempty" yaml:"enclosingClass,omitempty"`
	Annotations      []AnnotationModel      `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	TypeParameters   []TypeParameterModel   `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
	RecordComponents []RecordComponentModel `json:"recordComponents,omitempty" yaml:"recordComponents,omitempty"`
	InnerClasses     []InnerClassModel      `json:"innerClasses,omitempty" yaml:"innerClasses,omitempty"`
	Fields           []FieldModel           `json:"fields,omitempty" yaml:"fields,omitempty"`
	Methods          []MethodModel          `json:"methods,omitempty" yaml:"methods,omitempty"`
}

func (c *ClassModel) IsInterface() bool {
	return c.Kind == ClassKindInterface || c.Kind == ClassKindAnnotation
}

func (c *ClassModel) IsRecord() bool {
	return c.Kind == ClassKindRecord
}

// RecordComponent returns the component with the given name, or nil.
func (c *ClassModel) RecordComponent(name string) *RecordComponentModel {
	for i := range c.RecordComponents {
		if c.RecordComponents[i].Name == name {
			return &c.RecordComponents[i]
		}
	}
	return nil
}

type FieldModel struct {
	Name        string            `json:"name" yaml:"name"`
	Type        TypeModel         `json:"type" yaml:"type"`
	Visibility  Visibility        `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic    bool              `json:"static,omitempty" yaml:"static,omitempty"`
	IsFinal     bool              `json:"final,omitempty" yaml:"final,omitempty"`
	IsVolatile  bool              `json:"volatile,omitempty" yaml:"volatile,omitempty"`
	IsTransient bool              `json:"transient,omitempty" yaml:"transient,omitempty"`
	IsSynthetic bool              `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type MethodModel struct {
	Name           string               `json:"name" yaml:"name"`
	ReturnType     TypeModel            `json:"returnType" yaml:"returnType"`
	Parameters     []ParameterModel     `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Visibility     Visibility           `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic       bool                 `json:"static,omitempty" yaml:"static,omitempty"`
	IsFinal        bool                 `json:"final,omitempty" yaml:"final,omitempty"`
	IsAbstract     bool                 `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	IsDefault      bool                 `json:"default,omitempty" yaml:"default,omitempty"`
	IsSynthetic    bool                 `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
	IsBridge       bool                 `json:"bridge,omitempty" yaml:"bridge,omitempty"`
	Annotations    []AnnotationModel    `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	TypeParameters []TypeParameterModel `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
}

func (m *MethodModel) IsConstructor() bool {
	return m.Name == "<init>"
}

func (m *MethodModel) IsStaticInitializer() bool {
	return m.Name == "<clinit>"
}

type ParameterModel struct {
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Type        TypeModel         `json:"type" yaml:"type"`
	IsFinal     bool              `json:"final,omitempty" yaml:"final,omitempty"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// TypeModel is a type reference. Annotations lists type-use annotations,
// e.g. the NotNull of List<@NotNull String> sits on the String argument.
type TypeModel struct {
	Name          string              `json:"name" yaml:"name"`
	ArrayDepth    int                 `json:"arrayDepth,omitempty" yaml:"arrayDepth,omitempty"`
	TypeArguments []TypeArgumentModel `json:"typeArguments,omitempty" yaml:"typeArguments,omitempty"`
	Annotations   []string            `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

func (t TypeModel) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func (t TypeModel) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}

type TypeArgumentModel struct {
	Type       *TypeModel `json:"type,omitempty" yaml:"type,omitempty"`
	IsWildcard bool       `json:"wildcard,omitempty" yaml:"wildcard,omitempty"`
	BoundKind  string     `json:"boundKind,omitempty" yaml:"boundKind,omitempty"` // "extends", "super", or "" for unbounded
	Bound      *TypeModel `json:"bound,omitempty" yaml:"bound,omitempty"`
}

type TypeParameterModel struct {
	Name   string      `json:"name" yaml:"name"`
	Bounds []TypeModel `json:"bounds,omitempty" yaml:"bounds,omitempty"`
}

type AnnotationModel struct {
	Type   string         `json:"type" yaml:"type"`
	Values map[string]any `json:"values,omitempty" yaml:"values,omitempty"`
}

type RecordComponentModel struct {
	Name        string            `json:"name" yaml:"name"`
	Type        TypeModel         `json:"type" yaml:"type"`
	Annotations []AnnotationModel `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type InnerClassModel struct {
	InnerClass string     `json:"innerClass" yaml:"innerClass"`
	InnerName  string     `json:"innerName,omitempty" yaml:"innerName,omitempty"`
	Visibility Visibility `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	IsStatic   bool       `json:"static,omitempty" yaml:"static,omitempty"`
}
