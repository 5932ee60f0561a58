// Package element defines the engine's typed view of a front-end model:
// kind-tagged elements wrapping opaque native nodes.
package element

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownElement reports a native node or element the engine cannot
// classify. Analysis of the affected class must not continue.
var ErrUnknownElement = errors.New("unknown element")

// Node is an opaque handle into the front-end model. Nodes are used as map
// keys and must therefore be comparable, usually pointers.
type Node = any

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPackage   Visibility = "package"
	VisibilityPrivate   Visibility = "private"
)

type Modifiers uint16

const (
	ModStatic Modifiers = 1 << iota
	ModFinal
	ModAbstract
	ModDefault
	ModSynthetic
	ModTransient
	ModVolatile
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{ModStatic, "static"},
	{ModFinal, "final"},
	{ModAbstract, "abstract"},
	{ModDefault, "default"},
	{ModSynthetic, "synthetic"},
	{ModTransient, "transient"},
	{ModVolatile, "volatile"},
}

func (m Modifiers) Has(f Modifiers) bool {
	return m&f == f
}

func (m Modifiers) String() string {
	var names []string
	for _, mn := range modifierNames {
		if m.Has(mn.mod) {
			names = append(names, mn.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

type Annotation struct {
	Type   string
	Values map[string]any
}

// Info carries what every element shares. Front ends fill it in when
// converting a native node.
type Info struct {
	Name        string
	Native      Node
	Declaring   Type
	Package     string
	Visibility  Visibility
	Modifiers   Modifiers
	Annotations []Annotation
}

// Element is a typed element. The set of implementations is closed:
// *Class, *Method, *Constructor, *Field and *Property.
type Element interface {
	Kind() Kind
	Name() string
	Native() Node
	Declaring() Type
	Package() string
	Visibility() Visibility
	Modifiers() Modifiers
	Annotations() []Annotation
	HasAnnotation(name string) bool
	IsStatic() bool
	IsAbstract() bool
	IsFinal() bool

	info() *Info
}

type base struct {
	i Info
}

func (b *base) Name() string              { return b.i.Name }
func (b *base) Native() Node              { return b.i.Native }
func (b *base) Declaring() Type           { return b.i.Declaring }
func (b *base) Package() string           { return b.i.Package }
func (b *base) Visibility() Visibility    { return b.i.Visibility }
func (b *base) Modifiers() Modifiers      { return b.i.Modifiers }
func (b *base) Annotations() []Annotation { return b.i.Annotations }
func (b *base) IsStatic() bool            { return b.i.Modifiers.Has(ModStatic) }
func (b *base) IsAbstract() bool          { return b.i.Modifiers.Has(ModAbstract) }
func (b *base) IsFinal() bool             { return b.i.Modifiers.Has(ModFinal) }
func (b *base) info() *Info               { return &b.i }

func (b *base) HasAnnotation(name string) bool {
	return HasAnnotation(b.i.Annotations, name)
}

// HasAnnotation reports whether anns contains an annotation of the given type.
func HasAnnotation(anns []Annotation, name string) bool {
	for _, a := range anns {
		if a.Type == name {
			return true
		}
	}
	return false
}

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

// Class is a class-like element: class, interface, enum, annotation or record.
type Class struct {
	base
	self       Type
	classKind  ClassKind
	components []string
}

func NewClass(info Info, self Type, kind ClassKind, recordComponents []string) *Class {
	return &Class{base: base{i: info}, self: self, classKind: kind, components: recordComponents}
}

func (c *Class) Kind() Kind                 { return KindType }
func (c *Class) Type() Type                 { return c.self }
func (c *Class) ClassKind() ClassKind       { return c.classKind }
func (c *Class) IsRecord() bool             { return c.classKind == ClassKindRecord }
func (c *Class) IsInterface() bool          { return c.classKind == ClassKindInterface }
func (c *Class) RecordComponents() []string { return c.components }

// IsRecordComponent reports whether name is a component of this record.
func (c *Class) IsRecordComponent(name string) bool {
	for _, n := range c.components {
		if n == name {
			return true
		}
	}
	return false
}

type Parameter struct {
	Name        string
	Type        Type
	Annotations []Annotation
}

type Method struct {
	base
	returnType Type
	params     []Parameter
}

func NewMethod(info Info, returnType Type, params []Parameter) *Method {
	return &Method{base: base{i: info}, returnType: returnType, params: params}
}

func (m *Method) Kind() Kind              { return KindMethod }
func (m *Method) ReturnType() Type        { return m.returnType }
func (m *Method) Parameters() []Parameter { return m.params }
func (m *Method) IsDefault() bool         { return m.i.Modifiers.Has(ModDefault) }
func (m *Method) ParameterTypes() []Type  { return parameterTypes(m.params) }

func (m *Method) String() string {
	return m.returnType.String() + " " + m.i.Name + signature(m.params)
}

type Constructor struct {
	base
	params []Parameter
}

func NewConstructor(info Info, params []Parameter) *Constructor {
	return &Constructor{base: base{i: info}, params: params}
}

func (c *Constructor) Kind() Kind              { return KindConstructor }
func (c *Constructor) Parameters() []Parameter { return c.params }
func (c *Constructor) ParameterTypes() []Type  { return parameterTypes(c.params) }

func (c *Constructor) String() string {
	return c.i.Declaring.String() + signature(c.params)
}

type Field struct {
	base
	typ Type
}

func NewField(info Info, typ Type) *Field {
	return &Field{base: base{i: info}, typ: typ}
}

func (f *Field) Kind() Kind { return KindField }
func (f *Field) Type() Type { return f.typ }

func (f *Field) String() string {
	return f.typ.String() + " " + f.i.Name
}

// Property is a bean property: a read side and a write side, each realized
// through a method or a field.
type Property struct {
	base
	typ    Type
	getter *Method
	setter *Method
	field  *Field
	read   AccessKind
	write  AccessKind
}

func NewProperty(info Info, typ Type, getter, setter *Method, field *Field, read, write AccessKind) *Property {
	return &Property{
		base:   base{i: info},
		typ:    typ,
		getter: getter,
		setter: setter,
		field:  field,
		read:   read,
		write:  write,
	}
}

func (p *Property) Kind() Kind              { return KindProperty }
func (p *Property) Type() Type              { return p.typ }
func (p *Property) Getter() *Method         { return p.getter }
func (p *Property) Setter() *Method         { return p.setter }
func (p *Property) Field() *Field           { return p.field }
func (p *Property) ReadAccess() AccessKind  { return p.read }
func (p *Property) WriteAccess() AccessKind { return p.write }
func (p *Property) IsReadable() bool        { return p.read != AccessNone }
func (p *Property) IsWritable() bool        { return p.write != AccessNone }

func (p *Property) String() string {
	return fmt.Sprintf("%s %s [read=%s write=%s]", p.typ, p.i.Name, p.read, p.write)
}

// AccessKind names how one side of a property is realized.
type AccessKind int

const (
	AccessNone AccessKind = iota
	AccessMethod
	AccessField
)

func (a AccessKind) String() string {
	switch a {
	case AccessMethod:
		return "method"
	case AccessField:
		return "field"
	}
	return "none"
}

func parameterTypes(params []Parameter) []Type {
	types := make([]Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}

func signature(params []Parameter) string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type.String())
		if p.Name != "" {
			sb.WriteString(" " + p.Name)
		}
	}
	sb.WriteString(")")
	return sb.String()
}
