package java

import (
	"strings"

	"github.com/isti03/checkthat-generator/descriptor"
)

// Method is a method or constructor. Constructors, and methods whose
// return type is not known yet, have an empty ReturnType. Parameters
// holds the rendered parameter list.
type Method struct {
	Modifiers   Modifiers
	Annotations []string
	ReturnType  string
	Name        string
	Parameters  string
	Exceptions  []string
	Body        []string
}

func NewMethod(name, returnType, params string) *Method {
	return &Method{Name: name, ReturnType: returnType, Parameters: params}
}

func NewConstructor(className, params string) *Method {
	return &Method{Name: className, Parameters: params}
}

func (m *Method) Mods() *Modifiers   { return &m.Modifiers }
func (m *Method) MemberName() string { return m.Name }

func (m *Method) IsAbstract() bool {
	return m.Modifiers.IsAbstract()
}

// AppendBody adds lines to the body. A multi-line string is split so
// that every line is indented on its own when rendered.
func (m *Method) AppendBody(lines ...string) {
	for _, line := range lines {
		m.Body = append(m.Body, strings.Split(line, "\n")...)
	}
}

func (m *Method) Annotate(annotation string) {
	for _, a := range m.Annotations {
		if a == annotation {
			return
		}
	}
	m.Annotations = append(m.Annotations, annotation)
}

// DefaultReturn is the statement that makes a stub body compile, empty
// when there is no return type or it is void.
func (m *Method) DefaultReturn() string {
	if m.ReturnType == "" || descriptor.IsVoid(m.ReturnType) {
		return ""
	}
	return "return " + descriptor.DefaultValue(m.ReturnType) + ";"
}

// Signature renders everything up to, but excluding, the body. With
// withModifiers false the keywords are left out, as interface members
// require.
func (m *Method) Signature(withModifiers bool) string {
	var parts []string
	if withModifiers {
		if mods := m.Modifiers.String(); mods != "" {
			parts = append(parts, mods)
		}
	}
	if m.ReturnType != "" {
		parts = append(parts, m.ReturnType)
	}
	parts = append(parts, m.Name+"("+m.Parameters+")")
	if len(m.Exceptions) > 0 {
		parts = append(parts, "throws "+strings.Join(m.Exceptions, ", "))
	}
	return strings.Join(parts, " ")
}
