package scaffold

import (
	"strconv"
	"strings"

	"github.com/isti03/checkthat-generator/java"
)

// AddField appends a field from a descriptor such as "x: int" and
// inspects it.
func (b *Builder) AddField(desc string) *Builder {
	return b.do("add field", func() error {
		v, err := b.resolve(desc)
		if err != nil {
			return err
		}
		f := java.NewField(v)
		b.decl.Fields = append(b.decl.Fields, f)
		b.cursor = FieldCursor{Field: f}
		return nil
	})
}

// AddMethod appends a method with an already rendered parameter list,
// usually built with Params, and inspects it.
func (b *Builder) AddMethod(name, params string) *Builder {
	return b.do("add method", func() error {
		m := java.NewMethod(name, "", params)
		b.decl.ClassMethods = append(b.decl.ClassMethods, m)
		b.cursor = MethodCursor{Method: m}
		return nil
	})
}

func (b *Builder) AddMethodWithNoParams(name string) *Builder {
	return b.AddMethod(name, NoParams())
}

func (b *Builder) AddConstructor(params string) *Builder {
	return b.do("add constructor", func() error {
		m := java.NewConstructor(b.decl.Name(), params)
		b.decl.Constructors = append(b.decl.Constructors, m)
		b.cursor = MethodCursor{Method: m}
		return nil
	})
}

func (b *Builder) AddNoArgConstructor() *Builder {
	return b.AddConstructor(NoParams())
}

// ImplementsMethod adds an @Override stub whose signature is not known
// here. The cursor is left alone.
func (b *Builder) ImplementsMethod(name string) *Builder {
	return b.do("implements method", func() error {
		m := java.NewMethod(name, "", "")
		m.Annotate("@Override")
		m.AppendBody("// TODO: correct signature")
		b.decl.ClassMethods = append(b.decl.ClassMethods, m)
		return nil
	})
}

func (b *Builder) SetEnumElements(names ...string) *Builder {
	return b.do("set enum elements", func() error {
		return b.decl.SetEnumElements(names...)
	})
}

func (b *Builder) WithTypeParameters(params ...string) *Builder {
	return b.do("set type parameters", func() error {
		b.decl.TypeParameters = append([]string(nil), params...)
		return nil
	})
}

// SetReturnType sets the return type of the inspected method.
func (b *Builder) SetReturnType(desc string) *Builder {
	return b.do("set return type", func() error {
		m, err := b.inspectedMethod("return type")
		if err != nil {
			return err
		}
		typ, err := b.resolveType(desc)
		if err != nil {
			return err
		}
		m.ReturnType = typ
		return nil
	})
}

func (b *Builder) ReturnsNothing() *Builder {
	return b.SetReturnType("void")
}

func (b *Builder) SetThrows(types ...string) *Builder {
	return b.do("set throws", func() error {
		m, err := b.inspectedMethod("throws clause")
		if err != nil {
			return err
		}
		exceptions := make([]string, 0, len(types))
		for _, desc := range types {
			typ, err := b.resolveType(desc)
			if err != nil {
				return err
			}
			exceptions = append(exceptions, typ)
		}
		m.Exceptions = exceptions
		return nil
	})
}

// SetInitialValue sets the initializer of the inspected field. Integers
// are written as is, strings as a quoted literal.
func (b *Builder) SetInitialValue(value any) *Builder {
	return b.do("set initial value", func() error {
		f, err := b.inspectedField("initial value")
		if err != nil {
			return err
		}
		literal, err := javaLiteral(value)
		if err != nil {
			return err
		}
		f.InitialValue = literal
		return nil
	})
}

func javaLiteral(value any) (string, error) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case string:
		return quote(v), nil
	}
	return "", java.MarkConfiguration(errorf(java.ErrUnsupportedProperty, "initial value of type %T", value))
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`, "\r", `\r`)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

// CallsOtherMethods notes in the inspected method's body which methods it
// is expected to call.
func (b *Builder) CallsOtherMethods(names ...string) *Builder {
	return b.appendTodo("calls other methods", "call "+strings.Join(names, ", "))
}

// WithArbitraryStatement records free text as a TODO comment in the
// inspected method's body.
func (b *Builder) WithArbitraryStatement(parts ...string) *Builder {
	return b.appendTodo("arbitrary statement", strings.Join(parts, ", "))
}

func (b *Builder) appendTodo(op, text string) *Builder {
	return b.do(op, func() error {
		m, err := b.inspectedMethod(op)
		if err != nil {
			return err
		}
		m.AppendBody("// TODO: " + text)
		return nil
	})
}
