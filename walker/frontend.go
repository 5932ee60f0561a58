package walker

import (
	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/query"
)

// Frontend adapts one type-system model to the walker. Implementations must
// be deterministic: the same inputs always produce equivalent results.
type Frontend interface {
	element.TypeSystem

	// SuperClass returns the direct superclass, or false at the root of the
	// hierarchy or when the superclass cannot be resolved.
	SuperClass(class element.Node) (element.Node, bool)

	// Interfaces returns the directly implemented interfaces in declaration
	// order.
	Interfaces(class element.Node) []element.Node

	// EnclosedMembers returns the raw members declared by class that are
	// candidates for q. Implementations may apply cheap structural filters.
	EnclosedMembers(class element.Node, q query.Query) []element.Node

	// Excluded reports classes whose members are never reported, such as
	// synthetic or framework-internal classes.
	Excluded(class element.Node) bool

	// ToElement converts a raw member to a typed element of the requested
	// kind. It is the only conversion entry point and must not have side
	// effects. Unrecognized nodes yield an error wrapping
	// element.ErrUnknownElement.
	ToElement(member element.Node, kind element.Kind) (element.Element, error)

	// ElementName returns the simple name of a raw member.
	ElementName(member element.Node) string

	// Hides reports whether hider, declared in a more derived type, hides
	// hidden without overriding it.
	Hides(hider, hidden element.Element) bool

	// Overrides reports whether overrider redefines overridden under virtual
	// dispatch.
	Overrides(overrider, overridden element.Element) bool
}
