package scaffold

import "github.com/isti03/checkthat-generator/java"

// Cursor is the member later property calls apply to: NoMember,
// FieldCursor or MethodCursor.
type Cursor interface {
	Member() java.Member
}

type NoMember struct{}

func (NoMember) Member() java.Member { return nil }

type FieldCursor struct {
	Field *java.Field
}

func (c FieldCursor) Member() java.Member { return c.Field }

type MethodCursor struct {
	Method *java.Method
}

func (c MethodCursor) Member() java.Member { return c.Method }

func (b *Builder) inspectedField(property string) (*java.Field, error) {
	switch c := b.cursor.(type) {
	case FieldCursor:
		return c.Field, nil
	case MethodCursor:
		return nil, java.MarkConfiguration(errorf(java.ErrUnsupportedProperty, "%s on method %s", property, c.Method.Name))
	default:
		return nil, java.MarkConfiguration(errorf(java.ErrNoInspectedMember, "%s", property))
	}
}

func (b *Builder) inspectedMethod(property string) (*java.Method, error) {
	switch c := b.cursor.(type) {
	case MethodCursor:
		return c.Method, nil
	case FieldCursor:
		return nil, java.MarkConfiguration(errorf(java.ErrUnsupportedProperty, "%s on field %s", property, c.Field.Variable.Name))
	default:
		return nil, java.MarkConfiguration(errorf(java.ErrNoInspectedMember, "%s", property))
	}
}

// modifierTarget is the member just created, or the declaration itself.
func (b *Builder) modifierTarget() *java.Modifiers {
	if m := b.cursor.Member(); m != nil {
		return m.Mods()
	}
	return &b.decl.Modifiers
}
