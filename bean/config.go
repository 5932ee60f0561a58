package bean

import (
	"fmt"

	"github.com/dhamidi/introspect/element"
)

// Visibility is the threshold a field must meet to serve as an accessor.
type Visibility string

const (
	// VisibilityDefault admits public fields and non-private fields declared
	// in the analyzed class's package.
	VisibilityDefault Visibility = "default"
	VisibilityPublic  Visibility = "public"
	VisibilityAny     Visibility = "any"
)

func ParseVisibility(s string) (Visibility, error) {
	switch v := Visibility(s); v {
	case VisibilityDefault, VisibilityPublic, VisibilityAny:
		return v, nil
	case "":
		return VisibilityDefault, nil
	}
	return "", fmt.Errorf("unknown visibility %q (expected default, public or any)", s)
}

func ParseAccessKind(s string) (element.AccessKind, error) {
	switch s {
	case "method":
		return element.AccessMethod, nil
	case "field":
		return element.AccessField, nil
	}
	return element.AccessNone, fmt.Errorf("unknown access kind %q (expected method or field)", s)
}

// NameResolver derives a property name from an accessor method. It reports
// false to fall back to prefix stripping.
type NameResolver func(m *element.Method) (string, bool)

// Config is the policy a Resolver applies.
type Config struct {
	ReadPrefixes []string
	// BooleanReadPrefixes apply only to getters returning boolean or
	// java.lang.Boolean.
	BooleanReadPrefixes []string
	WritePrefixes       []string

	Visibility  Visibility
	AccessKinds []element.AccessKind

	// Includes, when non-empty, names the only properties kept.
	Includes            []string
	Excludes            []string
	ExcludedAnnotations []string

	// RoleAnnotations mark members claimed by injection or lifecycle
	// callbacks. Such members never become accessors unless
	// IncludeRoleMembers is set.
	RoleAnnotations    []string
	IncludeRoleMembers bool

	AllowStaticProperties       bool
	AllowSetterWithZeroArgs     bool
	AllowSetterWithMultipleArgs bool

	// RequireMatchingTypes ignores getters and setters whose types disagree
	// with the type already tracked for the property.
	RequireMatchingTypes bool

	ReaderName NameResolver
	WriterName NameResolver
}

func DefaultConfig() Config {
	return Config{
		ReadPrefixes:        []string{"get"},
		BooleanReadPrefixes: []string{"is"},
		WritePrefixes:       []string{"set"},
		Visibility:          VisibilityDefault,
		AccessKinds:         []element.AccessKind{element.AccessMethod, element.AccessField},
		RoleAnnotations: []string{
			"jakarta.inject.Inject",
			"javax.inject.Inject",
			"jakarta.annotation.PostConstruct",
			"javax.annotation.PostConstruct",
			"jakarta.annotation.PreDestroy",
			"javax.annotation.PreDestroy",
		},
		RequireMatchingTypes: true,
	}
}

func (c Config) allows(kind element.AccessKind) bool {
	for _, k := range c.AccessKinds {
		if k == kind {
			return true
		}
	}
	return false
}
