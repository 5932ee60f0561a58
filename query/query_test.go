package query

import (
	"strings"
	"testing"

	"github.com/dhamidi/introspect/element"
)

func TestRefinementsCopy(t *testing.T) {
	base := Methods()
	declared := base.OnlyDeclared()
	if base.IsOnlyDeclared() {
		t.Error("OnlyDeclared modified the receiver")
	}
	if !declared.IsOnlyDeclared() || declared.Kind() != element.KindMethod {
		t.Error("OnlyDeclared lost state")
	}
}

func TestPredicatesDoNotAlias(t *testing.T) {
	base := Fields().Named(func(n string) bool { return strings.HasPrefix(n, "a") })
	left := base.NamedExactly("ab")
	right := base.NamedExactly("ac")

	if !left.MatchesName("ab") || left.MatchesName("ac") {
		t.Error("left query matches wrong names")
	}
	if !right.MatchesName("ac") || right.MatchesName("ab") {
		t.Error("right query matches wrong names")
	}
	if !base.MatchesName("ax") {
		t.Error("base query gained a predicate")
	}
}

func TestExclusiveFlags(t *testing.T) {
	q := Members().OnlyStatic().OnlyInstance()
	if q.IsOnlyStatic() || !q.IsOnlyInstance() {
		t.Error("OnlyInstance did not clear OnlyStatic")
	}
	q = q.OnlyAbstract().OnlyConcrete()
	if q.IsOnlyAbstract() || !q.IsOnlyConcrete() {
		t.Error("OnlyConcrete did not clear OnlyAbstract")
	}
}

func TestMatchers(t *testing.T) {
	anns := []element.Annotation{{Type: "a.Keep"}, {Type: "a.Visible"}}

	tests := []struct {
		name string
		q    Query
		want bool
	}{
		{"no predicates", Members(), true},
		{"annotated with both", Members().AnnotatedWith("a.Keep").AnnotatedWith("a.Visible"), true},
		{"annotated with missing", Members().AnnotatedWith("a.Keep").AnnotatedWith("a.Gone"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.MatchesAnnotations(anns); got != tt.want {
				t.Errorf("MatchesAnnotations = %v, want %v", got, tt.want)
			}
		})
	}

	finalOnly := Fields().Modifiers(func(m element.Modifiers) bool { return m.Has(element.ModFinal) })
	if !finalOnly.MatchesModifiers(element.ModFinal|element.ModStatic) || finalOnly.MatchesModifiers(element.ModStatic) {
		t.Error("MatchesModifiers is wrong")
	}

	ints := Methods().Typed(func(typ element.Type) bool { return typ.Name == "int" })
	if !ints.HasTypePredicates() || !ints.MatchesType(element.Named("int")) || ints.MatchesType(element.Named("long")) {
		t.Error("MatchesType is wrong")
	}
	if Methods().HasTypePredicates() {
		t.Error("fresh query reports type predicates")
	}
}

func TestOnlyAccessible(t *testing.T) {
	from := element.NewClass(element.Info{Name: "A"}, element.Named("p.A"), element.ClassKindClass, nil)
	q := Members().OnlyAccessible(from)
	if !q.IsOnlyAccessible() || q.AccessibleFrom() != from {
		t.Error("OnlyAccessible lost the viewing class")
	}
}
