// Package format renders classes, members and properties for the command
// line.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/java"
)

type Encoder interface {
	EncodeClasses(classes []*java.ClassModel) error
	EncodeElements(elements []element.Element) error
	EncodeProperties(props []*element.Property) error
}

// Names lists the accepted --format values.
var Names = []string{"line", "json"}

func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (expected line or json)", name)
}

func classKind(cm *java.ClassModel) string {
	if cm.Kind == "" {
		return string(java.ClassKindClass)
	}
	return string(cm.Kind)
}
