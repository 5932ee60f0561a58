package java

import "github.com/dhamidi/introspect/element"

// declaredBySubtype reports whether a is declared by a strict subtype of the
// type declaring b.
func (fe *Frontend) declaredBySubtype(a, b element.Element) bool {
	sub, sup := a.Declaring().Name, b.Declaring().Name
	return sub != sup && fe.cp.IsSubtype(sub, sup)
}

func sameParameters(a, b []element.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Erasure().Equal(b[i].Erasure()) {
			return false
		}
	}
	return true
}

// Hides reports field hiding by name and static method hiding by signature.
func (fe *Frontend) Hides(hider, hidden element.Element) bool {
	if hider.Name() != hidden.Name() {
		return false
	}
	switch h := hider.(type) {
	case *element.Field:
		if _, ok := hidden.(*element.Field); !ok {
			return false
		}
		return fe.declaredBySubtype(hider, hidden)
	case *element.Method:
		other, ok := hidden.(*element.Method)
		if !ok || !h.IsStatic() || !other.IsStatic() {
			return false
		}
		return sameParameters(h.ParameterTypes(), other.ParameterTypes()) && fe.declaredBySubtype(hider, hidden)
	}
	return false
}

// Overrides implements method overriding: same name and parameter erasures,
// both instance methods, the overridden one visible to the overrider. A
// class method also takes precedence over an interface method of the same
// signature reached later in the hierarchy, since both are members of the
// same analyzed class.
func (fe *Frontend) Overrides(overrider, overridden element.Element) bool {
	if overrider.Name() != overridden.Name() {
		return false
	}
	switch o := overrider.(type) {
	case *element.Method:
		other, ok := overridden.(*element.Method)
		if !ok || o.IsStatic() || other.IsStatic() || other.Visibility() == element.VisibilityPrivate {
			return false
		}
		if !sameParameters(o.ParameterTypes(), other.ParameterTypes()) {
			return false
		}
		if other.Visibility() == element.VisibilityPackage && other.Package() != o.Package() {
			return false
		}
		if fe.declaredBySubtype(overrider, overridden) {
			return true
		}
		return !fe.declaredByInterface(overrider) && fe.declaredByInterface(overridden)
	case *element.Property:
		if _, ok := overridden.(*element.Property); !ok {
			return false
		}
		return fe.declaredBySubtype(overrider, overridden)
	}
	return false
}

func (fe *Frontend) declaredByInterface(el element.Element) bool {
	owner := fe.cp.Find(el.Declaring().Name)
	return owner != nil && owner.IsInterface()
}
