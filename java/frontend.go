package java

import (
	"fmt"

	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/query"
)

// Frontend exposes a ClassPath to the hierarchy walker. Native nodes are
// *ClassModel, *MethodModel, *FieldModel and *RecordComponentModel values
// owned by the class path.
type Frontend struct {
	cp       *ClassPath
	excluded map[string]bool
}

type FrontendOption func(*Frontend)

// WithExcludedClasses never reports members of the named classes, nor of
// their ancestors reached only through them.
func WithExcludedClasses(names ...string) FrontendOption {
	return func(fe *Frontend) {
		for _, name := range names {
			fe.excluded[name] = true
		}
	}
}

func NewFrontend(cp *ClassPath, opts ...FrontendOption) *Frontend {
	fe := &Frontend{cp: cp, excluded: make(map[string]bool)}
	for _, opt := range opts {
		opt(fe)
	}
	return fe
}

func (fe *Frontend) ClassPath() *ClassPath { return fe.cp }

func classModel(node element.Node) *ClassModel {
	cm, _ := node.(*ClassModel)
	return cm
}

func (fe *Frontend) SuperClass(class element.Node) (element.Node, bool) {
	cm := classModel(class)
	if cm == nil || cm.SuperClass == "" {
		return nil, false
	}
	super := fe.cp.Find(cm.SuperClass)
	if super == nil {
		return nil, false
	}
	return super, true
}

func (fe *Frontend) Interfaces(class element.Node) []element.Node {
	cm := classModel(class)
	if cm == nil {
		return nil
	}
	var result []element.Node
	for _, name := range cm.Interfaces {
		if iface := fe.cp.Find(name); iface != nil {
			result = append(result, iface)
		}
	}
	return result
}

func (fe *Frontend) Excluded(class element.Node) bool {
	cm := classModel(class)
	return cm == nil || cm.IsSynthetic || fe.excluded[cm.Name]
}

func (fe *Frontend) EnclosedMembers(class element.Node, q query.Query) []element.Node {
	cm := classModel(class)
	if cm == nil {
		return nil
	}
	staticOK := func(static bool) bool {
		return !(q.IsOnlyStatic() && !static) && !(q.IsOnlyInstance() && static)
	}

	var result []element.Node
	kind := q.Kind()
	if kind == element.KindMethod || kind == element.KindConstructor || kind == element.KindMember {
		for i := range cm.Methods {
			m := &cm.Methods[i]
			if m.IsSynthetic || m.IsBridge || m.IsStaticInitializer() || !staticOK(m.IsStatic) {
				continue
			}
			switch {
			case kind == element.KindMember,
				kind == element.KindConstructor && m.IsConstructor(),
				kind == element.KindMethod && !m.IsConstructor():
				result = append(result, m)
			}
		}
	}
	if kind == element.KindField || kind == element.KindMember {
		for i := range cm.Fields {
			f := &cm.Fields[i]
			if f.IsSynthetic || !staticOK(f.IsStatic) {
				continue
			}
			result = append(result, f)
		}
	}
	if kind == element.KindProperty && cm.IsRecord() && staticOK(false) {
		for i := range cm.RecordComponents {
			rc := &cm.RecordComponents[i]
			if accessor := recordAccessor(cm, rc.Name); accessor != nil {
				result = append(result, accessor)
			} else {
				result = append(result, rc)
			}
		}
	}
	if kind == element.KindType {
		for _, inner := range cm.InnerClasses {
			if nested := fe.cp.Find(inner.InnerClass); nested != nil && staticOK(nested.IsStatic) {
				result = append(result, nested)
			}
		}
	}
	return result
}

// recordAccessor returns the explicitly declared accessor of a record
// component, or nil.
func recordAccessor(cm *ClassModel, component string) *MethodModel {
	for i := range cm.Methods {
		m := &cm.Methods[i]
		if m.Name == component && len(m.Parameters) == 0 && !m.IsStatic {
			return m
		}
	}
	return nil
}

func (fe *Frontend) ElementName(member element.Node) string {
	switch n := member.(type) {
	case *ClassModel:
		return n.SimpleName
	case *MethodModel:
		return n.Name
	case *FieldModel:
		return n.Name
	case *RecordComponentModel:
		return n.Name
	}
	return fmt.Sprintf("%T", member)
}

func (fe *Frontend) ToElement(member element.Node, kind element.Kind) (element.Element, error) {
	switch n := member.(type) {
	case *ClassModel:
		return fe.ClassElement(n), nil
	case *MethodModel:
		owner := fe.cp.Owner(n)
		if owner == nil {
			return nil, fmt.Errorf("method %s has no declaring class: %w", n.Name, element.ErrUnknownElement)
		}
		if n.IsConstructor() {
			return element.NewConstructor(memberInfo(owner, n, n.Name, n.Visibility, methodModifiers(n), n.Annotations), parameters(n.Parameters)), nil
		}
		if kind == element.KindProperty && owner.IsRecord() && len(n.Parameters) == 0 {
			if rc := owner.RecordComponent(n.Name); rc != nil {
				return fe.recordProperty(owner, rc, n), nil
			}
		}
		return methodElement(owner, n), nil
	case *FieldModel:
		owner := fe.cp.Owner(n)
		if owner == nil {
			return nil, fmt.Errorf("field %s has no declaring class: %w", n.Name, element.ErrUnknownElement)
		}
		return element.NewField(memberInfo(owner, n, n.Name, n.Visibility, fieldModifiers(n), n.Annotations), typeOf(n.Type)), nil
	case *RecordComponentModel:
		owner := fe.cp.Owner(n)
		if owner == nil {
			return nil, fmt.Errorf("record component %s has no declaring class: %w", n.Name, element.ErrUnknownElement)
		}
		return fe.recordProperty(owner, n, nil), nil
	}
	return nil, fmt.Errorf("native node %T: %w", member, element.ErrUnknownElement)
}

// ClassElement converts a class model to its typed element.
func (fe *Frontend) ClassElement(cm *ClassModel) *element.Class {
	declaring := cm.Name
	if cm.EnclosingClass != "" {
		declaring = cm.EnclosingClass
	}
	var mods element.Modifiers
	if cm.IsStatic {
		mods |= element.ModStatic
	}
	if cm.IsFinal {
		mods |= element.ModFinal
	}
	if cm.IsAbstract || cm.IsInterface() {
		mods |= element.ModAbstract
	}
	if cm.IsSynthetic {
		mods |= element.ModSynthetic
	}
	var components []string
	for _, rc := range cm.RecordComponents {
		components = append(components, rc.Name)
	}
	self := element.Named(cm.Name)
	for _, tp := range cm.TypeParameters {
		self.Arguments = append(self.Arguments, element.Named(tp.Name))
	}
	info := element.Info{
		Name:        cm.SimpleName,
		Native:      cm,
		Declaring:   element.Named(declaring),
		Package:     cm.Package,
		Visibility:  element.Visibility(cm.Visibility),
		Modifiers:   mods,
		Annotations: annotations(cm.Annotations),
	}
	return element.NewClass(info, self, classKind(cm.Kind), components)
}

func (fe *Frontend) recordProperty(owner *ClassModel, rc *RecordComponentModel, accessor *MethodModel) *element.Property {
	var getter *element.Method
	if accessor != nil {
		getter = methodElement(owner, accessor)
	} else {
		info := memberInfo(owner, rc, rc.Name, VisibilityPublic, 0, rc.Annotations)
		getter = element.NewMethod(info, typeOf(rc.Type), nil)
	}
	var native element.Node = rc
	if accessor != nil {
		native = accessor
	}
	info := memberInfo(owner, native, rc.Name, VisibilityPublic, element.ModFinal, rc.Annotations)
	return element.NewProperty(info, typeOf(rc.Type), getter, nil, nil, element.AccessMethod, element.AccessNone)
}

func methodElement(owner *ClassModel, m *MethodModel) *element.Method {
	info := memberInfo(owner, m, m.Name, m.Visibility, methodModifiers(m), m.Annotations)
	return element.NewMethod(info, typeOf(m.ReturnType), parameters(m.Parameters))
}

func memberInfo(owner *ClassModel, native element.Node, name string, vis Visibility, mods element.Modifiers, anns []AnnotationModel) element.Info {
	return element.Info{
		Name:        name,
		Native:      native,
		Declaring:   element.Named(owner.Name),
		Package:     owner.Package,
		Visibility:  element.Visibility(vis),
		Modifiers:   mods,
		Annotations: annotations(anns),
	}
}

func methodModifiers(m *MethodModel) element.Modifiers {
	var mods element.Modifiers
	if m.IsStatic {
		mods |= element.ModStatic
	}
	if m.IsFinal {
		mods |= element.ModFinal
	}
	if m.IsAbstract {
		mods |= element.ModAbstract
	}
	if m.IsDefault {
		mods |= element.ModDefault
	}
	if m.IsSynthetic {
		mods |= element.ModSynthetic
	}
	return mods
}

func fieldModifiers(f *FieldModel) element.Modifiers {
	var mods element.Modifiers
	if f.IsStatic {
		mods |= element.ModStatic
	}
	if f.IsFinal {
		mods |= element.ModFinal
	}
	if f.IsVolatile {
		mods |= element.ModVolatile
	}
	if f.IsTransient {
		mods |= element.ModTransient
	}
	if f.IsSynthetic {
		mods |= element.ModSynthetic
	}
	return mods
}

func classKind(k ClassKind) element.ClassKind {
	switch k {
	case ClassKindInterface:
		return element.ClassKindInterface
	case ClassKindEnum:
		return element.ClassKindEnum
	case ClassKindAnnotation:
		return element.ClassKindAnnotation
	case ClassKindRecord:
		return element.ClassKindRecord
	}
	return element.ClassKindClass
}

func parameters(params []ParameterModel) []element.Parameter {
	result := make([]element.Parameter, len(params))
	for i, p := range params {
		result[i] = element.Parameter{
			Name:        p.Name,
			Type:        typeOf(p.Type),
			Annotations: annotations(p.Annotations),
		}
	}
	return result
}

func annotations(anns []AnnotationModel) []element.Annotation {
	if len(anns) == 0 {
		return nil
	}
	result := make([]element.Annotation, len(anns))
	for i, a := range anns {
		result[i] = element.Annotation{Type: a.Type, Values: a.Values}
	}
	return result
}
