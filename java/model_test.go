package java

import (
	"testing"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/isti03/checkthat-generator/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecl(t *testing.T, name string, kind Kind) *Declaration {
	t.Helper()
	d, err := NewDeclaration(descriptor.NewSession(), name, kind)
	require.NoError(t, err)
	return d
}

func field(t *testing.T, d *Declaration, desc string) *Field {
	t.Helper()
	v, err := d.Session().Resolve(desc)
	require.NoError(t, err)
	f := NewField(v)
	d.Fields = append(d.Fields, f)
	return f
}

func TestNewDeclaration(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantPkg   string
		wantQName string
	}{
		{"packaged", "pkg.Point", "Point", "pkg", "pkg.Point"},
		{"nested package", "com.example.shapes.Circle", "Circle", "com.example.shapes", "com.example.shapes.Circle"},
		{"default package", "Main", "Main", "", "Main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecl(t, tt.input, KindClass)
			assert.Equal(t, tt.wantName, d.Name())
			assert.Equal(t, tt.wantPkg, d.Package())
			assert.Equal(t, tt.wantQName, d.QualifiedName())
			assert.Equal(t, tt.wantName+".java", d.FileName())
		})
	}
}

func TestNewDeclarationInvalid(t *testing.T) {
	for _, input := range []string{"", "pkg.", "a..B"} {
		t.Run(input, func(t *testing.T) {
			_, err := NewDeclaration(nil, input, KindClass)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
		})
	}
}

func TestPackagePathIsCopied(t *testing.T) {
	d := newDecl(t, "a.b.C", KindClass)
	path := d.PackagePath()
	path[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, d.PackagePath())
}

func TestAddNaturalOrdering(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		want   string
	}{
		{"no parent", "", "implements Comparable<Point>"},
		{"extends", "extends Base", "extends Base implements Comparable<Point>"},
		{"implements", "implements Shape", "implements Shape, Comparable<Point>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecl(t, "pkg.Point", KindClass)
			d.ParentInfo = tt.parent
			require.NoError(t, d.AddNaturalOrdering())
			assert.Equal(t, tt.want, d.ParentInfo)
			assert.True(t, d.HasOrdering)
		})
	}
}

func TestAddNaturalOrderingBadClause(t *testing.T) {
	d := newDecl(t, "pkg.Point", KindClass)
	d.ParentInfo = "permits Other"
	err := d.AddNaturalOrdering()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOrderingMerge))
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.False(t, errors.Is(err, ErrEnumElementsSet))
	assert.False(t, d.HasOrdering)
}

func TestSetEnumElements(t *testing.T) {
	d := newDecl(t, "pkg.Color", KindEnum)
	require.NoError(t, d.SetEnumElements("RED", "GREEN"))
	assert.Equal(t, []string{"RED", "GREEN"}, d.EnumElements)

	err := d.SetEnumElements("BLUE")
	assert.True(t, errors.Is(err, ErrEnumElementsSet))
	assert.Equal(t, []string{"RED", "GREEN"}, d.EnumElements)

	c := newDecl(t, "pkg.Point", KindClass)
	err = c.SetEnumElements("A")
	assert.True(t, errors.Is(err, ErrUnsupportedProperty))
}

func TestModifiers(t *testing.T) {
	var m Modifiers
	assert.True(t, m.IsZero())
	assert.Equal(t, "", m.String())

	for _, c := range []Condition{NotModifiable, UsableWithoutInstance, VisibleToNone, NotImplemented} {
		require.NoError(t, m.Apply(c))
	}
	assert.Equal(t, "private abstract static final", m.String())

	require.NoError(t, m.Apply(VisibleToPackage))
	require.NoError(t, m.Apply(Modifiable))
	assert.Equal(t, "abstract static", m.String())
	assert.True(t, m.IsAbstract())

	err := m.Apply(Getter)
	assert.True(t, errors.Is(err, ErrUnsupportedCondition))
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		input string
		want  Condition
	}{
		{"VISIBLE_TO_ALL", VisibleToAll},
		{"visible to all", VisibleToAll},
		{"visibleToNone", VisibleToNone},
		{"natural-ordering", NaturalOrdering},
		{"Getter", Getter},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCondition(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCondition("sometimes")
	assert.True(t, errors.Is(err, ErrUnsupportedCondition))
}

func TestConditionTable(t *testing.T) {
	for _, c := range Conditions() {
		parsed, err := ParseCondition(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, "static", UsableWithoutInstance.Modifier())
	assert.True(t, VisibleToSubclasses.IsModifier())
	assert.False(t, EqualityCheck.IsModifier())
	assert.Equal(t, AxisDefaultConstructor, DefaultConstructor.Axis())
}

func TestAccessors(t *testing.T) {
	d := newDecl(t, "pkg.Person", KindClass)
	f := field(t, d, "age: int")

	getter := f.Getter()
	assert.Equal(t, "getAge", getter.Name)
	assert.Equal(t, "int", getter.ReturnType)
	assert.Equal(t, "", getter.Parameters)
	assert.Equal(t, []string{"return age;"}, getter.Body)
	assert.Equal(t, VisibilityPublic, getter.Modifiers.Visibility)

	setter := f.Setter()
	assert.Equal(t, "setAge", setter.Name)
	assert.Equal(t, "void", setter.ReturnType)
	assert.Equal(t, "int age", setter.Parameters)
	assert.Equal(t, []string{"this.age = age;"}, setter.Body)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"age", "Age"},
		{"Age", "Age"},
		{"x", "X"},
		{"ärger", "Ärger"},
		{"ωmega", "Ωmega"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Capitalize(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestAccessorsNonASCIIName(t *testing.T) {
	f := NewField(descriptor.TypedName{Name: "ärger", Type: "int"})
	assert.Equal(t, "getÄrger", f.Getter().Name)
	assert.Equal(t, "setÄrger", f.Setter().Name)
}

func TestFieldDeclaration(t *testing.T) {
	d := newDecl(t, "pkg.Person", KindClass)
	f := field(t, d, "name: String")
	assert.Equal(t, "String name;", f.Declaration())

	f.Modifiers.Visibility = VisibilityPrivate
	f.Modifiers.Modifiability = ModifiabilityFinal
	f.InitialValue = `"x"`
	assert.Equal(t, `private final String name = "x";`, f.Declaration())
}

func TestMethodSignature(t *testing.T) {
	m := NewMethod("read", "int", "byte[] buf")
	m.Exceptions = []string{"IOException"}
	m.Modifiers.Visibility = VisibilityPublic
	assert.Equal(t, "public int read(byte[] buf) throws IOException", m.Signature(true))
	assert.Equal(t, "int read(byte[] buf) throws IOException", m.Signature(false))

	c := NewConstructor("Point", "")
	assert.Equal(t, "Point()", c.Signature(true))
	assert.Equal(t, "", c.DefaultReturn())
}

func TestDefaultReturn(t *testing.T) {
	tests := []struct {
		returnType string
		want       string
	}{
		{"boolean", "return false;"},
		{"long", "return 0;"},
		{"String", "return null;"},
		{"void", ""},
	}
	for _, tt := range tests {
		t.Run(tt.returnType, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMethod("m", tt.returnType, "").DefaultReturn())
		})
	}
}

func TestEqualitySynthesis(t *testing.T) {
	d := newDecl(t, "pkg.Triple", KindClass)
	field(t, d, "a: int")
	field(t, d, "b: String")
	field(t, d, "c: array of int")
	d.HasEqualityCheck = true

	methods, imports := d.Synthesized("    ")
	require.Len(t, methods, 2)

	hash, equals := methods[0], methods[1]
	assert.Equal(t, "hashCode", hash.Name)
	assert.Equal(t, []string{"return Objects.hash(a, b, c);"}, hash.Body)

	assert.Equal(t, "equals", equals.Name)
	assert.Equal(t, "Object that", equals.Parameters)
	assert.Equal(t, []string{"@Override"}, equals.Annotations)
	assert.Equal(t, []string{
		"if (that != null && getClass().equals(that.getClass())) {",
		"    Triple t = (Triple) that;",
		"    return a == t.a && b.equals(t.b) && Arrays.equals(c, t.c);",
		"}",
		"return false;",
	}, equals.Body)

	assert.ElementsMatch(t, []string{"java.util.Objects", "java.util.Arrays"}, imports)
	assert.NotContains(t, d.Session().Imports(), "java.util.Objects")
}

func TestEqualityWithoutFields(t *testing.T) {
	d := newDecl(t, "pkg.Empty", KindClass)
	m, imports := d.EqualsMethod("  ")
	assert.Contains(t, m.Body, "  return true;")
	assert.Empty(t, imports)
}

func TestOrderingSynthesis(t *testing.T) {
	d := newDecl(t, "pkg.Version", KindClass)
	require.NoError(t, d.AddNaturalOrdering())

	methods, imports := d.Synthesized("    ")
	require.Len(t, methods, 1)
	assert.Equal(t, "compareTo", methods[0].Name)
	assert.Equal(t, "Version other", methods[0].Parameters)
	assert.Nil(t, methods[0].Body)
	assert.Equal(t, "return 0;", methods[0].DefaultReturn())
	assert.Empty(t, imports)
}

func TestToStringMethod(t *testing.T) {
	m := ToStringMethod()
	assert.Equal(t, "public String toString()", m.Signature(true))
	assert.Equal(t, []string{"return super.toString();"}, m.Body)
}
