package element

import "fmt"

// SubjectType returns the type a type predicate is evaluated against.
func SubjectType(el Element) (Type, error) {
	switch e := el.(type) {
	case *Constructor:
		return e.Declaring(), nil
	case *Method:
		return e.ReturnType(), nil
	case *Field:
		return e.Type(), nil
	case *Class:
		return e.Type(), nil
	case *Property:
		return e.Type(), nil
	}
	return Type{}, fmt.Errorf("subject type of %T: %w", el, ErrUnknownElement)
}

// IsAccessible reports whether el can be accessed from code in class from.
// A nil from only admits public elements.
func IsAccessible(el Element, from *Class, ts TypeSystem) bool {
	switch el.Visibility() {
	case VisibilityPublic:
		return true
	case VisibilityPrivate:
		return from != nil && from.Type().Name == el.Declaring().Name
	case VisibilityPackage:
		return from != nil && from.Package() == el.Package()
	case VisibilityProtected:
		if from == nil {
			return false
		}
		if from.Package() == el.Package() {
			return true
		}
		return ts != nil && ts.IsAssignable(from.Type().Erasure(), el.Declaring().Erasure())
	}
	return false
}
