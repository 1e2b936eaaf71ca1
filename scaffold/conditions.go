package scaffold

import "github.com/isti03/checkthat-generator/java"

// ApplyPositive applies conditions to the member just created, or to the
// declaration when there is none, then clears the cursor. Modifier
// conditions go to that target; structural ones always go to the
// declaration.
func (b *Builder) ApplyPositive(conds ...java.Condition) *Builder {
	return b.do("apply", func() error {
		defer b.clearCursor()
		for _, c := range conds {
			if err := b.applyCondition(c); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyQuery is ApplyPositive plus GETTER and SETTER, which need an
// inspected field.
func (b *Builder) ApplyQuery(conds ...java.Condition) *Builder {
	return b.do("apply query", func() error {
		defer b.clearCursor()
		for _, c := range conds {
			var err error
			switch c {
			case java.Getter, java.Setter:
				err = b.addAccessor(c)
			default:
				err = b.applyCondition(c)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ThatIs applies modifier conditions without clearing the cursor, so
// more properties can follow.
func (b *Builder) ThatIs(conds ...java.Condition) *Builder {
	return b.do("that is", func() error {
		target := b.modifierTarget()
		for _, c := range conds {
			if err := target.Apply(c); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveCondition accepts conditions that must not hold. Nothing is
// generated for them, so it has no effect.
func (b *Builder) RemoveCondition(conds ...java.Condition) *Builder { return b }

func (b *Builder) RemoveQuery(conds ...java.Condition) *Builder { return b }

// IsInheritedFrom is accepted for completeness; inheritance of members is
// not modelled.
func (b *Builder) IsInheritedFrom(parent string) *Builder { return b }

func (b *Builder) clearCursor() {
	b.cursor = NoMember{}
}

func (b *Builder) applyCondition(c java.Condition) error {
	if c.IsModifier() {
		return b.modifierTarget().Apply(c)
	}
	switch c {
	case java.DefaultConstructor:
	case java.TextualRepresentation:
		b.decl.ClassMethods = append(b.decl.ClassMethods, java.ToStringMethod())
	case java.EqualityCheck:
		b.decl.HasEqualityCheck = true
	case java.NaturalOrdering:
		if !b.decl.HasOrdering {
			return b.decl.AddNaturalOrdering()
		}
	default:
		return java.MarkConfiguration(errorf(java.ErrUnsupportedCondition, "%s needs a field query", c))
	}
	return nil
}

func (b *Builder) addAccessor(c java.Condition) error {
	f, err := b.inspectedField(c.String())
	if err != nil {
		return err
	}
	if c == java.Getter {
		b.decl.FieldMethods = append(b.decl.FieldMethods, f.Getter())
	} else {
		b.decl.FieldMethods = append(b.decl.FieldMethods, f.Setter())
	}
	return nil
}
