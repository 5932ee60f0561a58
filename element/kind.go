package element

// Kind tags a typed element.
type Kind int

const (
	KindType Kind = iota
	KindMethod
	KindConstructor
	KindField
	KindProperty
	// KindMember is the union of methods, constructors and fields.
	KindMember
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindMethod:
		return "method"
	case KindConstructor:
		return "constructor"
	case KindField:
		return "field"
	case KindProperty:
		return "property"
	case KindMember:
		return "member"
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k := KindType; k <= KindMember; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// IsComposite reports whether k names more than one concrete kind.
func (k Kind) IsComposite() bool {
	return k == KindMember
}

// Accepts reports whether an element of concrete kind other satisfies a
// request for k.
func (k Kind) Accepts(other Kind) bool {
	if k == other {
		return true
	}
	if k == KindMember {
		switch other {
		case KindMethod, KindConstructor, KindField:
			return true
		}
	}
	return false
}
