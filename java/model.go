package java

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/isti03/checkthat-generator/descriptor"
)

type Kind string

const (
	KindClass     Kind = "class"
	KindEnum      Kind = "enum"
	KindInterface Kind = "interface"
)

const SourceExtension = ".java"

// Declaration is the class, enum or interface being generated. Its name
// and package are fixed at construction; everything else is filled in
// step by step and may be rendered at any point.
type Declaration struct {
	session     *descriptor.Session
	packagePath []string
	name        string

	Kind           Kind
	Modifiers      Modifiers
	TypeParameters []string
	ParentInfo     string // raw "extends ..." / "implements ..." clause

	EnumElements []string
	Fields       []*Field
	Constructors []*Method
	FieldMethods []*Method
	ClassMethods []*Method

	HasEqualityCheck bool
	HasOrdering      bool
}

// NewDeclaration splits a dotted name such as "shapes.Point" into package
// path and class name.
func NewDeclaration(s *descriptor.Session, qualifiedName string, kind Kind) (*Declaration, error) {
	parts := strings.Split(qualifiedName, ".")
	name := parts[len(parts)-1]
	if name == "" {
		return nil, MarkConfiguration(errors.Newf("declaration name %q has no class name", qualifiedName))
	}
	for _, p := range parts[:len(parts)-1] {
		if p == "" {
			return nil, MarkConfiguration(errors.Newf("declaration name %q has an empty package segment", qualifiedName))
		}
	}
	if s == nil {
		s = descriptor.NewSession()
	}
	return &Declaration{
		session:     s,
		packagePath: parts[:len(parts)-1],
		name:        name,
		Kind:        kind,
	}, nil
}

func (d *Declaration) Name() string {
	return d.name
}

func (d *Declaration) PackagePath() []string {
	return append([]string(nil), d.packagePath...)
}

func (d *Declaration) Package() string {
	return strings.Join(d.packagePath, ".")
}

func (d *Declaration) QualifiedName() string {
	if len(d.packagePath) == 0 {
		return d.name
	}
	return d.Package() + "." + d.name
}

func (d *Declaration) FileName() string {
	return d.name + SourceExtension
}

func (d *Declaration) Session() *descriptor.Session {
	return d.session
}

// NameWithTypeParameters renders "Box<T>" style names for the header.
func (d *Declaration) NameWithTypeParameters() string {
	if len(d.TypeParameters) == 0 {
		return d.name
	}
	return d.name + "<" + strings.Join(d.TypeParameters, ", ") + ">"
}

// AddNaturalOrdering marks the declaration as ordered and merges
// Comparable<Name> into the parent clause.
func (d *Declaration) AddNaturalOrdering() error {
	comparable := "Comparable<" + d.name + ">"
	switch {
	case d.ParentInfo == "":
		d.ParentInfo = "implements " + comparable
	case strings.HasPrefix(d.ParentInfo, "implements"):
		d.ParentInfo += ", " + comparable
	case strings.HasPrefix(d.ParentInfo, "extends"):
		d.ParentInfo += " implements " + comparable
	default:
		return configErrorf(ErrOrderingMerge, "parent clause %q", d.ParentInfo)
	}
	d.HasOrdering = true
	return nil
}

// SetEnumElements fixes the enum constants. They can be set only once.
func (d *Declaration) SetEnumElements(names ...string) error {
	if d.Kind != KindEnum {
		return configErrorf(ErrUnsupportedProperty, "enum elements on %s %s", d.Kind, d.name)
	}
	if d.EnumElements != nil {
		return configErrorf(ErrEnumElementsSet, "enum %s", d.name)
	}
	d.EnumElements = append([]string{}, names...)
	return nil
}
