package element

import "strings"

// Type describes a possibly generic, possibly array type as seen by the
// front end. Annotations holds type-use annotations on this position.
type Type struct {
	Name        string
	ArrayDepth  int
	Arguments   []Type
	Wildcard    bool
	Annotations []string
}

// Named returns the plain, non-generic type with the given name.
func Named(name string) Type {
	return Type{Name: name}
}

func (t Type) String() string {
	var sb strings.Builder
	if t.Wildcard {
		sb.WriteString("?")
		if t.Name != "" {
			sb.WriteString(" extends ")
		}
	}
	sb.WriteString(t.Name)
	if len(t.Arguments) > 0 {
		sb.WriteString("<")
		for i, arg := range t.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteString(">")
	}
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (t Type) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func (t Type) IsArray() bool {
	return t.ArrayDepth > 0
}

func (t Type) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}

func (t Type) IsBoolean() bool {
	return t.ArrayDepth == 0 && (t.Name == "boolean" || t.Name == "java.lang.Boolean")
}

func (t Type) ElementType() Type {
	if t.ArrayDepth == 0 {
		return t
	}
	e := t
	e.ArrayDepth--
	return e
}

// Erasure drops type arguments and annotations.
func (t Type) Erasure() Type {
	return Type{Name: t.Name, ArrayDepth: t.ArrayDepth, Wildcard: t.Wildcard}
}

// Equal compares two types including their type arguments. Type-use
// annotations do not take part in the comparison.
func (t Type) Equal(o Type) bool {
	if t.Name != o.Name || t.ArrayDepth != o.ArrayDepth || t.Wildcard != o.Wildcard {
		return false
	}
	if len(t.Arguments) != len(o.Arguments) {
		return false
	}
	for i := range t.Arguments {
		if !t.Arguments[i].Equal(o.Arguments[i]) {
			return false
		}
	}
	return true
}

// AnnotationCount counts type-use annotations on t and, recursively, on its
// type arguments.
func (t Type) AnnotationCount() int {
	n := len(t.Annotations)
	for _, arg := range t.Arguments {
		n += arg.AnnotationCount()
	}
	return n
}

// TypeSystem answers type compatibility questions for the analyzed model.
type TypeSystem interface {
	// IsAssignable reports whether a value of type from can be assigned to
	// a variable of type to.
	IsAssignable(from, to Type) bool
}
