package java

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/isti03/checkthat-generator/descriptor"
)

// Member is anything a condition can be applied to once it has been
// added: fields and methods.
type Member interface {
	Mods() *Modifiers
	MemberName() string
}

type Field struct {
	Modifiers    Modifiers
	Variable     descriptor.TypedName
	InitialValue string
}

func NewField(v descriptor.TypedName) *Field {
	return &Field{Variable: v}
}

func (f *Field) Mods() *Modifiers   { return &f.Modifiers }
func (f *Field) MemberName() string { return f.Variable.Name }

// Declaration renders the field line, e.g. "private final int x = 5;".
func (f *Field) Declaration() string {
	var sb strings.Builder
	if mods := f.Modifiers.String(); mods != "" {
		sb.WriteString(mods)
		sb.WriteByte(' ')
	}
	sb.WriteString(f.Variable.String())
	if f.InitialValue != "" {
		sb.WriteString(" = ")
		sb.WriteString(f.InitialValue)
	}
	sb.WriteByte(';')
	return sb.String()
}

// Getter returns "public T getX() { return x; }" for the field.
func (f *Field) Getter() *Method {
	m := NewMethod("get"+Capitalize(f.Variable.Name), f.Variable.Type, "")
	m.Modifiers.Visibility = VisibilityPublic
	m.AppendBody("return " + f.Variable.Name + ";")
	return m
}

// Setter returns "public void setX(T x) { this.x = x; }" for the field.
func (f *Field) Setter() *Method {
	m := NewMethod("set"+Capitalize(f.Variable.Name), "void", f.Variable.String())
	m.Modifiers.Visibility = VisibilityPublic
	m.AppendBody("this." + f.Variable.Name + " = " + f.Variable.Name + ";")
	return m
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
