package java

import (
	"fmt"
	"strings"

	"github.com/isti03/checkthat-generator/descriptor"
)

const (
	importObjects = "java.util.Objects"
	importArrays  = "java.util.Arrays"
)

func overrideMethod(name, returnType, params string) *Method {
	m := NewMethod(name, returnType, params)
	m.Modifiers.Visibility = VisibilityPublic
	m.Annotate("@Override")
	return m
}

// ToStringMethod delegates to the superclass representation.
func ToStringMethod() *Method {
	m := overrideMethod("toString", "String", "")
	m.AppendBody("return super.toString();")
	return m
}

// HashCodeMethod hashes every field in declaration order.
func (d *Declaration) HashCodeMethod() *Method {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Variable.Name
	}
	m := overrideMethod("hashCode", "int", "")
	m.AppendBody("return Objects.hash(" + strings.Join(names, ", ") + ");")
	return m
}

// EqualsMethod compares every field of the same runtime class. indent is
// the unit used for the nested block of the template.
func (d *Declaration) EqualsMethod(indent string) (*Method, []string) {
	var imports []string
	comparisons := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		name := f.Variable.Name
		switch {
		case descriptor.IsPrimitive(f.Variable.Type):
			comparisons = append(comparisons, fmt.Sprintf("%s == t.%s", name, name))
		case descriptor.IsArray(f.Variable.Type):
			comparisons = append(comparisons, fmt.Sprintf("Arrays.equals(%s, t.%s)", name, name))
			imports = appendUnique(imports, importArrays)
		default:
			comparisons = append(comparisons, fmt.Sprintf("%s.equals(t.%s)", name, name))
		}
	}
	cond := "true"
	if len(comparisons) > 0 {
		cond = strings.Join(comparisons, " && ")
	}

	m := overrideMethod("equals", "boolean", "Object that")
	m.AppendBody(
		"if (that != null && getClass().equals(that.getClass())) {",
		fmt.Sprintf("%s%s t = (%s) that;", indent, d.name, d.name),
		fmt.Sprintf("%sreturn %s;", indent, cond),
		"}",
		"return false;",
	)
	return m, imports
}

// CompareToMethod is left as a stub: ordering is domain specific, so only
// the signature and the default return are generated.
func (d *Declaration) CompareToMethod() *Method {
	return overrideMethod("compareTo", "int", d.name+" other")
}

// Synthesized returns the members implied by HasEqualityCheck and
// HasOrdering, in render order, plus the imports they need. The session
// is left untouched.
func (d *Declaration) Synthesized(indent string) ([]*Method, []string) {
	var (
		methods []*Method
		imports []string
	)
	if d.HasEqualityCheck {
		equals, extra := d.EqualsMethod(indent)
		methods = append(methods, d.HashCodeMethod(), equals)
		imports = appendUnique(imports, importObjects)
		for _, imp := range extra {
			imports = appendUnique(imports, imp)
		}
	}
	if d.HasOrdering {
		methods = append(methods, d.CompareToMethod())
	}
	return methods, imports
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}
