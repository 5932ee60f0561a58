package format

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/dhamidi/introspect/element"
	"github.com/dhamidi/introspect/java"
)

// JSONEncoder writes one indented JSON array per call.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

type jsonClass struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	SuperClass string   `json:"superClass,omitempty"`
	Interfaces []string `json:"interfaces,omitempty"`
	Visibility string   `json:"visibility"`
}

type jsonElement struct {
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	Declaring   string          `json:"declaring"`
	Type        string          `json:"type,omitempty"`
	Parameters  []jsonParameter `json:"parameters,omitempty"`
	Visibility  string          `json:"visibility"`
	Modifiers   []string        `json:"modifiers,omitempty"`
	Annotations []string        `json:"annotations,omitempty"`
}

type jsonParameter struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type"`
}

type jsonProperty struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Read   string `json:"read"`
	Write  string `json:"write"`
	Getter string `json:"getter,omitempty"`
	Setter string `json:"setter,omitempty"`
	Field  string `json:"field,omitempty"`
}

func (e *JSONEncoder) encode(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = e.w.Write(data)
	return err
}

func (e *JSONEncoder) EncodeClasses(classes []*java.ClassModel) error {
	result := make([]jsonClass, len(classes))
	for i, cm := range classes {
		result[i] = jsonClass{
			Name:       cm.Name,
			Kind:       classKind(cm),
			SuperClass: cm.SuperClass,
			Interfaces: cm.Interfaces,
			Visibility: string(cm.Visibility),
		}
	}
	return e.encode(result)
}

func (e *JSONEncoder) EncodeElements(elements []element.Element) error {
	result := make([]jsonElement, len(elements))
	for i, el := range elements {
		result[i] = buildElement(el)
	}
	return e.encode(result)
}

func buildElement(el element.Element) jsonElement {
	data := jsonElement{
		Kind:       el.Kind().String(),
		Name:       el.Name(),
		Declaring:  el.Declaring().String(),
		Visibility: string(el.Visibility()),
		Modifiers:  modifierList(el.Modifiers()),
	}
	for _, a := range el.Annotations() {
		data.Annotations = append(data.Annotations, a.Type)
	}
	switch m := el.(type) {
	case *element.Method:
		data.Type = m.ReturnType().String()
		data.Parameters = buildParameters(m.Parameters())
	case *element.Constructor:
		data.Parameters = buildParameters(m.Parameters())
	case *element.Field:
		data.Type = m.Type().String()
	case *element.Property:
		data.Type = m.Type().String()
	case *element.Class:
		data.Type = m.Type().String()
	}
	return data
}

func modifierList(mods element.Modifiers) []string {
	if mods == 0 {
		return nil
	}
	return strings.Split(mods.String(), ",")
}

func buildParameters(params []element.Parameter) []jsonParameter {
	if len(params) == 0 {
		return nil
	}
	result := make([]jsonParameter, len(params))
	for i, p := range params {
		result[i] = jsonParameter{Name: p.Name, Type: p.Type.String()}
	}
	return result
}

func (e *JSONEncoder) EncodeProperties(props []*element.Property) error {
	result := make([]jsonProperty, len(props))
	for i, p := range props {
		data := jsonProperty{
			Name:  p.Name(),
			Type:  p.Type().String(),
			Read:  p.ReadAccess().String(),
			Write: p.WriteAccess().String(),
		}
		if g := p.Getter(); g != nil {
			data.Getter = g.Declaring().String() + "." + g.Name()
		}
		if s := p.Setter(); s != nil {
			data.Setter = s.Declaring().String() + "." + s.Name()
		}
		if f := p.Field(); f != nil {
			data.Field = f.Declaring().String() + "." + f.Name()
		}
		result[i] = data
	}
	return e.encode(result)
}
