package java

import "github.com/dhamidi/introspect/element"

var boxes = map[string]string{
	"boolean": "java.lang.Boolean",
	"byte":    "java.lang.Byte",
	"char":    "java.lang.Character",
	"short":   "java.lang.Short",
	"int":     "java.lang.Integer",
	"long":    "java.lang.Long",
	"float":   "java.lang.Float",
	"double":  "java.lang.Double",
}

var unboxes = func() map[string]string {
	m := make(map[string]string, len(boxes))
	for prim, box := range boxes {
		m[box] = prim
	}
	return m
}()

// wideningTargets lists widening primitive conversions.
var wideningTargets = map[string][]string{
	"byte":  {"short", "int", "long", "float", "double"},
	"short": {"int", "long", "float", "double"},
	"char":  {"int", "long", "float", "double"},
	"int":   {"long", "float", "double"},
	"long":  {"float", "double"},
	"float": {"double"},
}

func widens(from, to string) bool {
	if from == to {
		return true
	}
	for _, t := range wideningTargets[from] {
		if t == to {
			return true
		}
	}
	return false
}

// typeOf converts a model type reference to the engine's type.
func typeOf(t TypeModel) element.Type {
	result := element.Type{
		Name:        t.Name,
		ArrayDepth:  t.ArrayDepth,
		Annotations: t.Annotations,
	}
	for _, arg := range t.TypeArguments {
		result.Arguments = append(result.Arguments, typeArgumentOf(arg))
	}
	return result
}

func typeArgumentOf(arg TypeArgumentModel) element.Type {
	if !arg.IsWildcard {
		if arg.Type == nil {
			return element.Type{Wildcard: true}
		}
		return typeOf(*arg.Type)
	}
	wildcard := element.Type{Wildcard: true}
	if arg.Bound != nil && arg.BoundKind == "extends" {
		bound := typeOf(*arg.Bound)
		bound.Wildcard = true
		return bound
	}
	return wildcard
}

// IsAssignable implements element.TypeSystem with Java assignment rules:
// identity, primitive widening, boxing and unboxing, reference widening
// along the class path, array covariance and invariant type arguments
// unless the target uses wildcards. Raw types accept any parameterization.
// Between distinct parameterized types the arguments are compared by
// position.
func (fe *Frontend) IsAssignable(from, to element.Type) bool {
	if from.Equal(to) {
		return true
	}
	if to.Wildcard {
		if to.Name == "" {
			return true
		}
		bound := to
		bound.Wildcard = false
		return fe.IsAssignable(from, bound)
	}
	if from.ArrayDepth != to.ArrayDepth {
		return from.ArrayDepth > to.ArrayDepth && to.Name == objectClass && len(to.Arguments) == 0
	}
	if from.IsArray() {
		fromElem, toElem := from.ElementType(), to.ElementType()
		if fromElem.IsPrimitive() || toElem.IsPrimitive() {
			return fromElem.Name == toElem.Name
		}
		return fe.IsAssignable(fromElem, toElem)
	}

	switch {
	case from.IsPrimitive() && to.IsPrimitive():
		return widens(from.Name, to.Name)
	case from.IsPrimitive():
		return fe.IsAssignable(element.Named(boxes[from.Name]), to)
	case to.IsPrimitive():
		prim, ok := unboxes[from.Name]
		return ok && widens(prim, to.Name)
	}

	if from.Name == "void" || to.Name == "void" {
		return false
	}
	if to.Name == objectClass {
		return true
	}
	if !fe.cp.IsSubtype(from.Name, to.Name) {
		return false
	}
	if len(from.Arguments) == 0 || len(to.Arguments) == 0 {
		return true
	}
	// Supertype arguments are not modeled. Arguments of a subtype map to its
	// supertype position by position, which holds for the collection types;
	// a differing count cannot be mapped and is rejected.
	if len(from.Arguments) != len(to.Arguments) {
		return false
	}
	for i := range to.Arguments {
		target := to.Arguments[i]
		if target.Wildcard {
			if !fe.IsAssignable(from.Arguments[i], target) {
				return false
			}
			continue
		}
		if !from.Arguments[i].Equal(target) {
			return false
		}
	}
	return true
}
