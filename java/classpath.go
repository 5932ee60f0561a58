package java

import (
	"slices"
	"strings"

	"github.com/dhamidi/introspect/element"
)

const objectClass = "java.lang.Object"

// jdkSupertypes gives direct supertypes of common JDK types that are
// usually not part of a loaded model. Loaded models take precedence.
var jdkSupertypes = map[string][]string{
	"java.lang.Boolean":       {"java.io.Serializable", "java.lang.Comparable"},
	"java.lang.Character":     {"java.io.Serializable", "java.lang.Comparable"},
	"java.lang.Number":        {"java.io.Serializable"},
	"java.lang.Byte":          {"java.lang.Number", "java.lang.Comparable"},
	"java.lang.Short":         {"java.lang.Number", "java.lang.Comparable"},
	"java.lang.Integer":       {"java.lang.Number", "java.lang.Comparable"},
	"java.lang.Long":          {"java.lang.Number", "java.lang.Comparable"},
	"java.lang.Float":         {"java.lang.Number", "java.lang.Comparable"},
	"java.lang.Double":        {"java.lang.Number", "java.lang.Comparable"},
	"java.math.BigInteger":    {"java.lang.Number", "java.lang.Comparable"},
	"java.math.BigDecimal":    {"java.lang.Number", "java.lang.Comparable"},
	"java.lang.String":        {"java.lang.CharSequence", "java.lang.Comparable", "java.io.Serializable"},
	"java.lang.StringBuilder": {"java.lang.CharSequence"},
	"java.util.Collection":    {"java.lang.Iterable"},
	"java.util.List":          {"java.util.Collection"},
	"java.util.Set":           {"java.util.Collection"},
	"java.util.SortedSet":     {"java.util.Set"},
	"java.util.ArrayList":     {"java.util.List"},
	"java.util.LinkedList":    {"java.util.List"},
	"java.util.HashSet":       {"java.util.Set"},
	"java.util.LinkedHashSet": {"java.util.HashSet"},
	"java.util.TreeSet":       {"java.util.SortedSet"},
	"java.util.HashMap":       {"java.util.Map"},
	"java.util.LinkedHashMap": {"java.util.HashMap"},
	"java.util.TreeMap":       {"java.util.SortedMap"},
	"java.util.SortedMap":     {"java.util.Map"},
}

// ClassPath is a registry of class models by fully-qualified name. It also
// remembers the declaring class of every method, field and record component
// so member nodes can be converted on their own.
//
// Member nodes are pointers into the slices of a ClassModel. Do not append
// to those slices after adding a model.
type ClassPath struct {
	classes map[string]*ClassModel
	order   []*ClassModel
	owners  map[element.Node]*ClassModel
}

func NewClassPath(models ...*ClassModel) *ClassPath {
	cp := &ClassPath{
		classes: make(map[string]*ClassModel),
		owners:  make(map[element.Node]*ClassModel),
	}
	cp.Add(models...)
	return cp
}

// Add registers models, replacing any class of the same name.
func (cp *ClassPath) Add(models ...*ClassModel) {
	for _, model := range models {
		if model == nil || model.Name == "" {
			continue
		}
		cp.Remove(model.Name)
		normalize(model)
		cp.classes[model.Name] = model
		cp.order = append(cp.order, model)
		for i := range model.Methods {
			cp.owners[&model.Methods[i]] = model
		}
		for i := range model.Fields {
			cp.owners[&model.Fields[i]] = model
		}
		for i := range model.RecordComponents {
			cp.owners[&model.RecordComponents[i]] = model
		}
	}
}

func (cp *ClassPath) Remove(name string) {
	old, ok := cp.classes[name]
	if !ok {
		return
	}
	delete(cp.classes, name)
	for node, owner := range cp.owners {
		if owner == old {
			delete(cp.owners, node)
		}
	}
	for i, m := range cp.order {
		if m == old {
			cp.order = append(cp.order[:i], cp.order[i+1:]...)
			break
		}
	}
}

func (cp *ClassPath) Find(name string) *ClassModel {
	return cp.classes[name]
}

// Classes returns the registered models in registration order.
func (cp *ClassPath) Classes() []*ClassModel {
	return slices.Clone(cp.order)
}

// Owner returns the class declaring a member node, or nil.
func (cp *ClassPath) Owner(member element.Node) *ClassModel {
	return cp.owners[member]
}

// supertypes returns the direct supertypes of name.
func (cp *ClassPath) supertypes(name string) []string {
	model := cp.Find(name)
	if model == nil {
		return jdkSupertypes[name]
	}
	var result []string
	if model.SuperClass != "" {
		result = append(result, model.SuperClass)
	}
	return append(result, model.Interfaces...)
}

// IsSubtype reports whether sub is sup or transitively extends or
// implements it.
func (cp *ClassPath) IsSubtype(sub, sup string) bool {
	if sub == sup || sup == objectClass {
		return true
	}
	seen := map[string]bool{sub: true}
	queue := []string{sub}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for _, parent := range cp.supertypes(name) {
			if parent == sup {
				return true
			}
			if !seen[parent] {
				seen[parent] = true
				queue = append(queue, parent)
			}
		}
	}
	return false
}

// normalize fills in what a model file may leave implicit.
func normalize(model *ClassModel) {
	if model.Package == "" || model.SimpleName == "" {
		pkg, simpleName := splitClassName(model.Name)
		if model.EnclosingClass != "" {
			pkg, _ = splitClassName(model.EnclosingClass)
			simpleName = strings.TrimPrefix(model.Name, model.EnclosingClass+".")
		}
		if model.Package == "" {
			model.Package = pkg
		}
		if model.SimpleName == "" {
			model.SimpleName = simpleName
		}
	}
	if model.Kind == "" {
		model.Kind = ClassKindClass
	}
	if model.Visibility == "" {
		model.Visibility = VisibilityPackage
	}
	iface := model.IsInterface()
	for i := range model.Methods {
		m := &model.Methods[i]
		if m.ReturnType.Name == "" {
			m.ReturnType.Name = "void"
		}
		if m.Visibility == "" {
			m.Visibility = VisibilityPackage
			if iface {
				m.Visibility = VisibilityPublic
			}
		}
		if iface && !m.IsStatic && !m.IsDefault && m.Visibility != VisibilityPrivate {
			m.IsAbstract = true
		}
	}
	for i := range model.Fields {
		f := &model.Fields[i]
		if iface {
			f.Visibility = VisibilityPublic
			f.IsStatic = true
			f.IsFinal = true
		}
		if f.Visibility == "" {
			f.Visibility = VisibilityPackage
		}
	}
	if model.IsRecord() {
		model.IsFinal = true
		for i := range model.Fields {
			f := &model.Fields[i]
			if !f.IsStatic && model.RecordComponent(f.Name) != nil {
				f.IsFinal = true
				f.Visibility = VisibilityPrivate
			}
		}
	}
}

func splitClassName(fullName string) (pkg, simpleName string) {
	lastDot := strings.LastIndex(fullName, ".")
	if lastDot == -1 {
		return "", fullName
	}
	return fullName[:lastDot], fullName[lastDot+1:]
}
