package bean

import (
	"strings"
	"testing"

	"github.com/dhamidi/introspect/element"
)

// hierarchy is a TypeSystem over a subtype table.
type hierarchy map[string][]string

func (h hierarchy) IsAssignable(from, to element.Type) bool {
	if from.Equal(to) {
		return true
	}
	if to.Name == "java.lang.Object" && !from.IsPrimitive() {
		return true
	}
	for _, sup := range h[from.Name] {
		if h.IsAssignable(element.Named(sup), to) {
			return true
		}
	}
	return false
}

var types = hierarchy{
	"java.lang.Integer": {"java.lang.Number"},
	"p.Derived":         {"p.Base"},
}

func newClass(name string) *element.Class {
	return element.NewClass(element.Info{Name: name, Package: "p", Visibility: element.VisibilityPublic}, element.Named(name), element.ClassKindClass, nil)
}

func method(declaring, name, ret string, params ...string) *element.Method {
	info := element.Info{Name: name, Declaring: element.Named(declaring), Package: "p", Visibility: element.VisibilityPublic}
	var ps []element.Parameter
	for i, p := range params {
		ps = append(ps, element.Parameter{Name: "arg" + string(rune('0'+i)), Type: element.Named(p)})
	}
	return element.NewMethod(info, element.Named(ret), ps)
}

func annotated(m *element.Method, anns ...string) *element.Method {
	info := element.Info{
		Name:       m.Name(),
		Declaring:  m.Declaring(),
		Package:    m.Package(),
		Visibility: m.Visibility(),
		Modifiers:  m.Modifiers(),
	}
	for _, a := range anns {
		info.Annotations = append(info.Annotations, element.Annotation{Type: a})
	}
	return element.NewMethod(info, m.ReturnType(), m.Parameters())
}

func static(m *element.Method) *element.Method {
	info := element.Info{Name: m.Name(), Declaring: m.Declaring(), Package: m.Package(), Visibility: m.Visibility(), Modifiers: element.ModStatic}
	return element.NewMethod(info, m.ReturnType(), m.Parameters())
}

func field(declaring, name, typ string, vis element.Visibility, mods element.Modifiers) *element.Field {
	info := element.Info{Name: name, Declaring: element.Named(declaring), Package: "p", Visibility: vis, Modifiers: mods}
	return element.NewField(info, element.Named(typ))
}

func describe(props []*element.Property) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.Name() + ":" + p.Type().String() + ":" + p.ReadAccess().String() + "/" + p.WriteAccess().String()
	}
	return strings.Join(parts, " ")
}

func resolve(cfg Config, in Input) string {
	return describe(NewResolver(cfg, types).Properties(in))
}

func TestGetterSetterFieldRoundTrip(t *testing.T) {
	in := Input{
		Class: newClass("p.Bean"),
		Methods: []*element.Method{
			method("p.Bean", "getX", "int"),
			method("p.Bean", "setX", "void", "int"),
		},
		Fields: []*element.Field{field("p.Bean", "x", "int", element.VisibilityPrivate, 0)},
	}
	props := NewResolver(DefaultConfig(), types).Properties(in)
	if len(props) != 1 {
		t.Fatalf("got %d properties, want 1", len(props))
	}
	p := props[0]
	if p.Name() != "x" || p.ReadAccess() != element.AccessMethod || p.WriteAccess() != element.AccessMethod {
		t.Errorf("property = %s", p)
	}
	if p.Getter() == nil || p.Setter() == nil || p.Field() == nil {
		t.Error("property lost one of its members")
	}
	if p.Declaring().Name != "p.Bean" {
		t.Errorf("declaring = %s", p.Declaring())
	}
}

func TestPublicFieldsWithAnyVisibility(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Visibility = VisibilityAny
	in := Input{
		Class: newClass("p.Point"),
		Fields: []*element.Field{
			field("p.Point", "x", "int", element.VisibilityPrivate, 0),
			field("p.Point", "y", "int", element.VisibilityPrivate, 0),
		},
	}
	if got, want := resolve(cfg, in), "x:int:field/field y:int:field/field"; got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}
	if got := resolve(DefaultConfig(), in); got != "" {
		t.Errorf("private fields became properties under the default policy: %q", got)
	}
}

func TestSetterTieBreak(t *testing.T) {
	tests := []struct {
		name    string
		methods []*element.Method
		want    string
		from    string
	}{
		{
			name: "wider base setter is kept",
			methods: []*element.Method{
				method("p.Base", "setX", "void", "java.lang.Number"),
				method("p.Derived", "setX", "void", "java.lang.Integer"),
			},
			want: "x:java.lang.Number:none/method",
			from: "p.Base",
		},
		{
			name: "wider derived setter replaces",
			methods: []*element.Method{
				method("p.Base", "setX", "void", "java.lang.Integer"),
				method("p.Derived", "setX", "void", "java.lang.Number"),
			},
			want: "x:java.lang.Number:none/method",
			from: "p.Derived",
		},
		{
			name: "equal types prefer the subtype",
			methods: []*element.Method{
				method("p.Base", "setX", "void", "java.lang.String"),
				method("p.Derived", "setX", "void", "java.lang.String"),
			},
			want: "x:java.lang.String:none/method",
			from: "p.Derived",
		},
		{
			name: "same declaring type keeps the first",
			methods: []*element.Method{
				method("p.Base", "setX", "void", "java.lang.String"),
				method("p.Base", "setX", "void", "int"),
			},
			want: "x:java.lang.String:none/method",
			from: "p.Base",
		},
		{
			name: "unrelated declaring types keep the existing",
			methods: []*element.Method{
				method("p.Derived", "setX", "void", "java.lang.String"),
				method("p.Base", "setX", "void", "int"),
			},
			want: "x:java.lang.String:none/method",
			from: "p.Derived",
		},
		{
			name: "subtype setter not accepting the getter type is ignored",
			methods: []*element.Method{
				method("p.Base", "getX", "java.lang.Integer"),
				method("p.Base", "setX", "void", "java.lang.Integer"),
				method("p.Derived", "setX", "void", "java.lang.String"),
			},
			want: "x:java.lang.Integer:method/method",
			from: "p.Base",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := NewResolver(DefaultConfig(), types).Properties(Input{Class: newClass("p.Derived"), Methods: tt.methods})
			if got := describe(props); got != tt.want {
				t.Fatalf("properties = %q, want %q", got, tt.want)
			}
			if got := props[0].Setter().Declaring().Name; got != tt.from {
				t.Errorf("setter from %s, want %s", got, tt.from)
			}
		})
	}
}

func TestAccessorNaming(t *testing.T) {
	in := Input{
		Class: newClass("p.Bean"),
		Methods: []*element.Method{
			method("p.Bean", "isActive", "boolean"),
			method("p.Bean", "isName", "java.lang.String"),
			method("p.Bean", "getURL", "java.lang.String"),
			method("p.Bean", "getter", "int"),
			method("p.Bean", "get", "int"),
			method("p.Bean", "getNothing", "void"),
			method("p.Bean", "isOn", "java.lang.Boolean"),
		},
	}
	want := "active:boolean:method/none URL:java.lang.String:method/none on:java.lang.Boolean:method/none"
	if got := resolve(DefaultConfig(), in); got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}
}

func TestCustomPrefixesAndNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReadPrefixes = []string{""}
	cfg.WritePrefixes = []string{"with"}
	cfg.WriterName = func(m *element.Method) (string, bool) {
		if m.Name() == "withAlias" {
			return "name", true
		}
		return "", false
	}
	in := Input{
		Class: newClass("p.Bean"),
		Methods: []*element.Method{
			method("p.Bean", "name", "java.lang.String"),
			method("p.Bean", "withAlias", "void", "java.lang.String"),
			method("p.Bean", "withSize", "void", "int"),
		},
	}
	want := "name:java.lang.String:method/method size:int:none/method"
	if got := resolve(cfg, in); got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}
}

func TestSetterArity(t *testing.T) {
	in := Input{
		Class: newClass("p.Bean"),
		Methods: []*element.Method{
			method("p.Bean", "setEnabled", "void"),
			method("p.Bean", "setRange", "void", "int", "int"),
		},
	}
	if got := resolve(DefaultConfig(), in); got != "" {
		t.Errorf("default policy accepted %q", got)
	}

	cfg := DefaultConfig()
	cfg.AllowSetterWithZeroArgs = true
	cfg.AllowSetterWithMultipleArgs = true
	if got, want := resolve(cfg, in), "enabled:boolean:none/method range:int:none/method"; got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}
}

func TestMismatchedTypes(t *testing.T) {
	in := Input{
		Class: newClass("p.Bean"),
		Methods: []*element.Method{
			method("p.Bean", "getX", "java.lang.String"),
			method("p.Bean", "setX", "void", "int"),
		},
	}
	if got, want := resolve(DefaultConfig(), in), "x:java.lang.String:method/none"; got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}

	cfg := DefaultConfig()
	cfg.RequireMatchingTypes = false
	if got, want := resolve(cfg, in), "x:int:method/method"; got != want {
		t.Errorf("lenient properties = %q, want %q", got, want)
	}
}

func TestIncompatibleSetterFallsBackToField(t *testing.T) {
	in := Input{
		Class: newClass("p.Derived"),
		Methods: []*element.Method{
			method("p.Base", "getX", "java.lang.Integer"),
			method("p.Base", "setX", "void", "java.lang.Integer"),
			method("p.Derived", "setX", "void", "java.lang.String"),
		},
		Fields: []*element.Field{field("p.Base", "x", "java.lang.Integer", element.VisibilityPublic, 0)},
	}
	if got, want := resolve(DefaultConfig(), in), "x:java.lang.Integer:method/field"; got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}
}

func TestGetterMustMatchTrackedType(t *testing.T) {
	in := Input{
		Class: newClass("p.Bean"),
		Methods: []*element.Method{
			method("p.Bean", "setX", "void", "java.lang.Integer"),
			method("p.Bean", "getX", "java.lang.Number"),
		},
	}
	if got, want := resolve(DefaultConfig(), in), "x:java.lang.Integer:none/method"; got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}
}

func TestFieldFillsMissingSides(t *testing.T) {
	in := Input{
		Class:   newClass("p.Bean"),
		Methods: []*element.Method{method("p.Bean", "getX", "int")},
		Fields: []*element.Field{
			field("p.Bean", "x", "int", element.VisibilityPublic, 0),
			field("p.Bean", "y", "int", element.VisibilityPublic, element.ModFinal),
			field("p.Bean", "z", "int", element.VisibilityPackage, 0),
			field("p.Bean", "hidden", "int", element.VisibilityPrivate, 0),
			field("p.Bean", "COUNT", "int", element.VisibilityPublic, element.ModStatic),
		},
	}
	want := "x:int:method/field y:int:field/none z:int:field/field"
	if got := resolve(DefaultConfig(), in); got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}

	cfg := DefaultConfig()
	cfg.Visibility = VisibilityPublic
	if got, want := resolve(cfg, in), "x:int:method/field y:int:field/none"; got != want {
		t.Errorf("public policy = %q, want %q", got, want)
	}

	in.PropertyFields = []string{"hidden"}
	if got := resolve(cfg, in); !strings.Contains(got, "hidden:int:field/field") {
		t.Errorf("declared property field missing: %q", got)
	}

	cfg.AccessKinds = []element.AccessKind{element.AccessMethod}
	if got, want := resolve(cfg, Input{Class: in.Class, Methods: in.Methods, Fields: in.Fields}), "x:int:method/none"; got != want {
		t.Errorf("method-only policy = %q, want %q", got, want)
	}
}

func TestExclusion(t *testing.T) {
	in := Input{
		Class: newClass("p.Bean"),
		Methods: []*element.Method{
			method("p.Bean", "getA", "int"),
			annotated(method("p.Bean", "getB", "int"), "p.Transient"),
			method("p.Bean", "setB", "void", "int"),
			method("p.Bean", "getC", "int"),
			annotated(method("p.Bean", "setD", "void", "int"), "javax.inject.Inject"),
			static(method("p.Bean", "getE", "int")),
		},
	}

	// The annotated getter drops b although setB is clean.
	cfg := DefaultConfig()
	cfg.ExcludedAnnotations = []string{"p.Transient"}
	cfg.Excludes = []string{"c"}
	if got, want := resolve(cfg, in), "a:int:method/none"; got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}

	cfg = DefaultConfig()
	cfg.Includes = []string{"c", "d"}
	cfg.IncludeRoleMembers = true
	if got, want := resolve(cfg, in), "c:int:method/none d:int:none/method"; got != want {
		t.Errorf("included properties = %q, want %q", got, want)
	}

	cfg = DefaultConfig()
	cfg.AllowStaticProperties = true
	if got := resolve(cfg, in); !strings.Contains(got, "e:int:method/none") {
		t.Errorf("static getter ignored: %q", got)
	}
}

func TestRecordComponents(t *testing.T) {
	info := element.Info{Name: "p.Pair", Package: "p", Visibility: element.VisibilityPublic, Modifiers: element.ModFinal}
	record := element.NewClass(info, element.Named("p.Pair"), element.ClassKindRecord, []string{"left", "right"})
	in := Input{
		Class: record,
		Methods: []*element.Method{
			method("p.Pair", "left", "java.lang.String"),
			method("p.Pair", "right", "int"),
			method("p.Pair", "getLabel", "java.lang.String"),
		},
		Fields: []*element.Field{
			field("p.Pair", "left", "java.lang.String", element.VisibilityPrivate, element.ModFinal),
			field("p.Pair", "right", "int", element.VisibilityPrivate, element.ModFinal),
		},
	}
	want := "left:java.lang.String:method/none right:int:method/none label:java.lang.String:method/none"
	if got := resolve(DefaultConfig(), in); got != want {
		t.Errorf("properties = %q, want %q", got, want)
	}
}

func TestResolveWithFactory(t *testing.T) {
	in := Input{
		Class: newClass("p.Bean"),
		Methods: []*element.Method{
			method("p.Bean", "getB", "int"),
			method("p.Bean", "getA", "int"),
			method("p.Bean", "setB", "void", "int"),
		},
	}
	names := Resolve(NewResolver(DefaultConfig(), types), in, func(rec *Record) string {
		return rec.Name + "=" + rec.ReadAccess.String()
	})
	if got := strings.Join(names, ","); got != "b=method,a=method" {
		t.Errorf("names = %q", got)
	}
}

func TestDecapitalize(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"Foo":    "foo",
		"FooBar": "fooBar",
		"URL":    "URL",
		"X":      "x",
		"x":      "x",
		"ÄBc":    "ÄBc",
		"Äbc":    "äbc",
	}
	for in, want := range tests {
		if got := Decapitalize(in); got != want {
			t.Errorf("Decapitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	if v, err := ParseVisibility(""); err != nil || v != VisibilityDefault {
		t.Errorf("ParseVisibility(\"\") = %v, %v", v, err)
	}
	if _, err := ParseVisibility("protected"); err == nil {
		t.Error("ParseVisibility accepted protected")
	}
	if k, err := ParseAccessKind("field"); err != nil || k != element.AccessField {
		t.Errorf("ParseAccessKind(field) = %v, %v", k, err)
	}
	if _, err := ParseAccessKind("getter"); err == nil {
		t.Error("ParseAccessKind accepted getter")
	}
}
