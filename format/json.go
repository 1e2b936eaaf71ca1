package format

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/isti03/checkthat-generator/java"
)

type JSONEncoder struct {
	w io.Writer
	d *java.Declaration
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(d *java.Declaration) error {
	e.d = d
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(e.buildDeclarationData(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type jsonDeclaration struct {
	Name           string       `json:"name"`
	Package        string       `json:"package,omitempty"`
	Kind           string       `json:"kind"`
	Modifiers      []string     `json:"modifiers,omitempty"`
	TypeParameters []string     `json:"typeParameters,omitempty"`
	Parent         string       `json:"parent,omitempty"`
	Imports        []string     `json:"imports,omitempty"`
	EnumElements   []string     `json:"enumElements,omitempty"`
	Fields         []jsonField  `json:"fields,omitempty"`
	Constructors   []jsonMethod `json:"constructors,omitempty"`
	Accessors      []jsonMethod `json:"accessors,omitempty"`
	Methods        []jsonMethod `json:"methods,omitempty"`
	Synthesized    []jsonMethod `json:"synthesized,omitempty"`
}

type jsonField struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Modifiers    []string `json:"modifiers,omitempty"`
	InitialValue string   `json:"initialValue,omitempty"`
}

type jsonMethod struct {
	Name        string   `json:"name"`
	ReturnType  string   `json:"returnType,omitempty"`
	Parameters  string   `json:"parameters"`
	Modifiers   []string `json:"modifiers,omitempty"`
	Annotations []string `json:"annotations,omitempty"`
	Throws      []string `json:"throws,omitempty"`
	Body        []string `json:"body,omitempty"`
}

func (e *JSONEncoder) buildDeclarationData() jsonDeclaration {
	d := e.d
	synthesized, extra := d.Synthesized(DefaultIndent)
	data := jsonDeclaration{
		Name:           d.Name(),
		Package:        d.Package(),
		Kind:           string(d.Kind),
		Modifiers:      d.Modifiers.Keywords(),
		TypeParameters: d.TypeParameters,
		Parent:         d.ParentInfo,
		Imports:        mergeImports(d.Session().Imports(), extra),
		EnumElements:   d.EnumElements,
		Constructors:   jsonMethods(d.Constructors),
		Accessors:      jsonMethods(d.FieldMethods),
		Methods:        jsonMethods(d.ClassMethods),
		Synthesized:    jsonMethods(synthesized),
	}
	for _, f := range d.Fields {
		data.Fields = append(data.Fields, jsonField{
			Name:         f.Variable.Name,
			Type:         f.Variable.Type,
			Modifiers:    f.Modifiers.Keywords(),
			InitialValue: f.InitialValue,
		})
	}
	return data
}

func jsonMethods(methods []*java.Method) []jsonMethod {
	var result []jsonMethod
	for _, m := range methods {
		result = append(result, jsonMethod{
			Name:        m.Name,
			ReturnType:  m.ReturnType,
			Parameters:  m.Parameters,
			Modifiers:   m.Modifiers.Keywords(),
			Annotations: m.Annotations,
			Throws:      m.Exceptions,
			Body:        m.Body,
		})
	}
	return result
}
