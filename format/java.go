package format

import (
	"io"
	"sort"
	"strings"

	"github.com/isti03/checkthat-generator/java"
)

const DefaultIndent = "    "

type Option func(*JavaEncoder)

// WithIndent sets the unit prepended once per nesting level.
func WithIndent(indent string) Option {
	return func(e *JavaEncoder) {
		e.indent = indent
	}
}

// JavaEncoder renders a declaration as a Java compilation unit.
type JavaEncoder struct {
	w      io.Writer
	d      *java.Declaration
	indent string
}

func NewJavaEncoder(w io.Writer, opts ...Option) *JavaEncoder {
	e := &JavaEncoder{w: w, indent: DefaultIndent}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *JavaEncoder) Encode(d *java.Declaration) error {
	e.d = d
	return write(e.w, e)
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	return []byte(e.render()), nil
}

// Render is the pure form of JavaEncoder: the source text of d.
func Render(d *java.Declaration, opts ...Option) string {
	e := NewJavaEncoder(nil, opts...)
	e.d = d
	return e.render()
}

func (e *JavaEncoder) render() string {
	d := e.d
	synthesized, extraImports := d.Synthesized(e.indent)

	var sections []string
	if pkg := d.Package(); pkg != "" {
		sections = append(sections, "package "+pkg+";")
	}
	if imports := mergeImports(d.Session().Imports(), extraImports); len(imports) > 0 {
		lines := make([]string, len(imports))
		for i, imp := range imports {
			lines[i] = "import " + imp + ";"
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	sections = append(sections, e.classBlock(synthesized))

	return strings.Join(sections, "\n\n") + "\n"
}

func (e *JavaEncoder) header() string {
	d := e.d
	var parts []string
	for _, p := range []string{d.Modifiers.String(), string(d.Kind), d.NameWithTypeParameters(), d.ParentInfo} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ") + " {"
}

func (e *JavaEncoder) classBlock(synthesized []*java.Method) string {
	d := e.d
	var body []string

	if d.EnumElements != nil {
		body = append(body, strings.Join(d.EnumElements, ",\n")+";")
	}

	if len(d.Fields) > 0 {
		lines := make([]string, len(d.Fields))
		for i, f := range d.Fields {
			lines[i] = f.Declaration()
		}
		body = append(body, strings.Join(lines, "\n"))
	}

	var methods []string
	for _, group := range [][]*java.Method{d.Constructors, d.FieldMethods, d.ClassMethods, synthesized} {
		for _, m := range group {
			methods = append(methods, e.method(m))
		}
	}
	if len(methods) > 0 {
		body = append(body, strings.Join(methods, "\n\n"))
	}

	if len(body) == 0 {
		return e.header() + "\n}"
	}
	return e.header() + "\n" + e.indented(strings.Join(body, "\n\n")) + "\n}"
}

func (e *JavaEncoder) method(m *java.Method) string {
	var sb strings.Builder
	for _, a := range m.Annotations {
		sb.WriteString(a)
		sb.WriteByte('\n')
	}
	sb.WriteString(m.Signature(e.d.Kind != java.KindInterface))

	if m.IsAbstract() {
		sb.WriteByte(';')
		return sb.String()
	}

	sb.WriteString(" {\n")
	switch {
	case m.Body != nil:
		sb.WriteString(e.indented(strings.Join(m.Body, "\n")))
		sb.WriteByte('\n')
	case m.DefaultReturn() != "":
		sb.WriteString(e.indented(m.DefaultReturn()))
		sb.WriteByte('\n')
	}
	sb.WriteByte('}')
	return sb.String()
}

// indented prefixes every non-blank line with one indent unit.
func (e *JavaEncoder) indented(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = e.indent + line
		}
	}
	return strings.Join(lines, "\n")
}

func mergeImports(recorded, extra []string) []string {
	seen := make(map[string]bool, len(recorded)+len(extra))
	var result []string
	for _, list := range [][]string{recorded, extra} {
		for _, imp := range list {
			if !seen[imp] {
				seen[imp] = true
				result = append(result, imp)
			}
		}
	}
	sort.Strings(result)
	return result
}
