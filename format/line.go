package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/java"
)

// LineEncoder writes one tab-separated record per line. The first column is
// the record kind.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) write(sb *strings.Builder) error {
	_, err := io.WriteString(e.w, sb.String())
	return err
}

func (e *LineEncoder) EncodeClasses(classes []*java.ClassModel) error {
	var sb strings.Builder
	for _, cm := range classes {
		fmt.Fprintf(&sb, "%s\t%s\t%s\n", classKind(cm), cm.Name, classModifiersStr(cm))
	}
	return e.write(&sb)
}

func classModifiersStr(cm *java.ClassModel) string {
	mods := []string{string(cm.Visibility)}
	if cm.IsStatic {
		mods = append(mods, "static")
	}
	if cm.IsFinal {
		mods = append(mods, "final")
	}
	if cm.IsAbstract {
		mods = append(mods, "abstract")
	}
	if cm.IsSynthetic {
		mods = append(mods, "synthetic")
	}
	return strings.Join(mods, ",")
}

func (e *LineEncoder) EncodeElements(elements []element.Element) error {
	var sb strings.Builder
	for _, el := range elements {
		switch m := el.(type) {
		case *element.Method:
			fmt.Fprintf(&sb, "method\t%s\t%s\t%s\t%s\t%s\t%s\n",
				m.Declaring(),
				m.Name(),
				m.ReturnType(),
				parametersStr(m.Parameters()),
				m.Visibility(),
				m.Modifiers(),
			)
		case *element.Constructor:
			fmt.Fprintf(&sb, "constructor\t%s\t%s\t%s\t%s\n",
				m.Declaring(),
				parametersStr(m.Parameters()),
				m.Visibility(),
				m.Modifiers(),
			)
		case *element.Field:
			fmt.Fprintf(&sb, "field\t%s\t%s\t%s\t%s\t%s\n",
				m.Declaring(),
				m.Name(),
				m.Type(),
				m.Visibility(),
				m.Modifiers(),
			)
		case *element.Class:
			fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\n",
				m.ClassKind(),
				m.Type().Erasure(),
				m.Visibility(),
				m.Modifiers(),
			)
		case *element.Property:
			writePropertyLine(&sb, m)
		}
	}
	return e.write(&sb)
}

func (e *LineEncoder) EncodeProperties(props []*element.Property) error {
	var sb strings.Builder
	for _, p := range props {
		writePropertyLine(&sb, p)
	}
	return e.write(&sb)
}

func writePropertyLine(sb *strings.Builder, p *element.Property) {
	fmt.Fprintf(sb, "property\t%s\t%s\t%s\t%s\n",
		p.Name(),
		p.Type(),
		p.ReadAccess(),
		p.WriteAccess(),
	)
}

func parametersStr(params []element.Parameter) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type.String()
	}
	return strings.Join(parts, ",")
}
