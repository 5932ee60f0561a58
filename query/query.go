// Package query describes what a hierarchy walk retrieves. A Query is an
// immutable value; every refinement returns a modified copy.
package query

import (
	"slices"

	"github.com/dhamidi/introspect/element"
)

type (
	NamePredicate       func(name string) bool
	AnnotationPredicate func(anns []element.Annotation) bool
	ModifierPredicate   func(mods element.Modifiers) bool
	TypePredicate       func(t element.Type) bool
)

type Query struct {
	kind              element.Kind
	onlyDeclared      bool
	onlyInstance      bool
	onlyStatic        bool
	onlyAbstract      bool
	onlyConcrete      bool
	onlyAccessible    bool
	accessibleFrom    *element.Class
	includeHidden     bool
	includeOverridden bool
	includeDuplicates bool
	names             []NamePredicate
	annotations       []AnnotationPredicate
	modifiers         []ModifierPredicate
	types             []TypePredicate
}

func Of(kind element.Kind) Query { return Query{kind: kind} }

func Types() Query        { return Of(element.KindType) }
func Methods() Query      { return Of(element.KindMethod) }
func Constructors() Query { return Of(element.KindConstructor) }
func Fields() Query       { return Of(element.KindField) }
func Properties() Query   { return Of(element.KindProperty) }
func Members() Query      { return Of(element.KindMember) }

// clone copies q so that appending to a predicate slice never aliases the
// backing array of another query.
func (q Query) clone() Query {
	q.names = slices.Clip(q.names)
	q.annotations = slices.Clip(q.annotations)
	q.modifiers = slices.Clip(q.modifiers)
	q.types = slices.Clip(q.types)
	return q
}

// OnlyDeclared restricts the walk to members declared by the class itself.
func (q Query) OnlyDeclared() Query {
	q = q.clone()
	q.onlyDeclared = true
	return q
}

func (q Query) OnlyInstance() Query {
	q = q.clone()
	q.onlyInstance = true
	q.onlyStatic = false
	return q
}

func (q Query) OnlyStatic() Query {
	q = q.clone()
	q.onlyStatic = true
	q.onlyInstance = false
	return q
}

func (q Query) OnlyAbstract() Query {
	q = q.clone()
	q.onlyAbstract = true
	q.onlyConcrete = false
	return q
}

func (q Query) OnlyConcrete() Query {
	q = q.clone()
	q.onlyConcrete = true
	q.onlyAbstract = false
	return q
}

// OnlyAccessible keeps elements accessible from code in class from. A nil
// class keeps public elements only.
func (q Query) OnlyAccessible(from *element.Class) Query {
	q = q.clone()
	q.onlyAccessible = true
	q.accessibleFrom = from
	return q
}

// IncludeHidden keeps fields and methods hidden by a more derived declaration.
func (q Query) IncludeHidden() Query {
	q = q.clone()
	q.includeHidden = true
	return q
}

// IncludeOverridden keeps methods and properties overridden by a more
// derived declaration.
func (q Query) IncludeOverridden() Query {
	q = q.clone()
	q.includeOverridden = true
	return q
}

// IncludeDuplicates keeps members reached more than once through the
// hierarchy, such as members of an interface implemented twice.
func (q Query) IncludeDuplicates() Query {
	q = q.clone()
	q.includeDuplicates = true
	return q
}

func (q Query) Named(p NamePredicate) Query {
	q = q.clone()
	q.names = append(q.names, p)
	return q
}

func (q Query) NamedExactly(name string) Query {
	return q.Named(func(n string) bool { return n == name })
}

func (q Query) Annotated(p AnnotationPredicate) Query {
	q = q.clone()
	q.annotations = append(q.annotations, p)
	return q
}

func (q Query) AnnotatedWith(name string) Query {
	return q.Annotated(func(anns []element.Annotation) bool {
		return element.HasAnnotation(anns, name)
	})
}

func (q Query) Modifiers(p ModifierPredicate) Query {
	q = q.clone()
	q.modifiers = append(q.modifiers, p)
	return q
}

func (q Query) Typed(p TypePredicate) Query {
	q = q.clone()
	q.types = append(q.types, p)
	return q
}

func (q Query) Kind() element.Kind             { return q.kind }
func (q Query) IsOnlyDeclared() bool           { return q.onlyDeclared }
func (q Query) IsOnlyInstance() bool           { return q.onlyInstance }
func (q Query) IsOnlyStatic() bool             { return q.onlyStatic }
func (q Query) IsOnlyAbstract() bool           { return q.onlyAbstract }
func (q Query) IsOnlyConcrete() bool           { return q.onlyConcrete }
func (q Query) IsOnlyAccessible() bool         { return q.onlyAccessible }
func (q Query) AccessibleFrom() *element.Class { return q.accessibleFrom }
func (q Query) IsIncludeHidden() bool          { return q.includeHidden }
func (q Query) IsIncludeOverridden() bool      { return q.includeOverridden }
func (q Query) IsIncludeDuplicates() bool      { return q.includeDuplicates }
func (q Query) HasTypePredicates() bool        { return len(q.types) > 0 }

// MatchesName applies every name predicate.
func (q Query) MatchesName(name string) bool {
	for _, p := range q.names {
		if !p(name) {
			return false
		}
	}
	return true
}

// MatchesAnnotations applies every annotation predicate.
func (q Query) MatchesAnnotations(anns []element.Annotation) bool {
	for _, p := range q.annotations {
		if !p(anns) {
			return false
		}
	}
	return true
}

// MatchesModifiers applies every modifier predicate.
func (q Query) MatchesModifiers(mods element.Modifiers) bool {
	for _, p := range q.modifiers {
		if !p(mods) {
			return false
		}
	}
	return true
}

// MatchesType applies every type predicate.
func (q Query) MatchesType(t element.Type) bool {
	for _, p := range q.types {
		if !p(t) {
			return false
		}
	}
	return true
}
