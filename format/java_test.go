package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/isti03/checkthat-generator/descriptor"
	"github.com/isti03/checkthat-generator/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declare(t *testing.T, name string, kind java.Kind) *java.Declaration {
	t.Helper()
	d, err := java.NewDeclaration(descriptor.NewSession(), name, kind)
	require.NoError(t, err)
	return d
}

func addField(t *testing.T, d *java.Declaration, desc string, vis java.Visibility) *java.Field {
	t.Helper()
	v, err := d.Session().Resolve(desc)
	require.NoError(t, err)
	f := java.NewField(v)
	f.Modifiers.Visibility = vis
	d.Fields = append(d.Fields, f)
	return f
}

func TestRenderPointWithEquality(t *testing.T) {
	d := declare(t, "pkg.Point", java.KindClass)
	d.Modifiers.Visibility = java.VisibilityPublic
	addField(t, d, "x: int", java.VisibilityPrivate)
	addField(t, d, "y: int", java.VisibilityPrivate)
	d.HasEqualityCheck = true

	want := `package pkg;

import java.util.Objects;

public class Point {
    private int x;
    private int y;

    @Override
    public int hashCode() {
        return Objects.hash(x, y);
    }

    @Override
    public boolean equals(Object that) {
        if (that != null && getClass().equals(that.getClass())) {
            Point t = (Point) that;
            return x == t.x && y == t.y;
        }
        return false;
    }
}
`
	assert.Equal(t, want, Render(d))
	assert.Empty(t, d.Session().Imports(), "rendering must not record imports")
}

func TestRenderSections(t *testing.T) {
	tests := []struct {
		name     string
		build    func(t *testing.T) *java.Declaration
		expected string
	}{
		{
			name: "empty class in default package",
			build: func(t *testing.T) *java.Declaration {
				return declare(t, "Empty", java.KindClass)
			},
			expected: "class Empty {\n}\n",
		},
		{
			name: "enum constants",
			build: func(t *testing.T) *java.Declaration {
				d := declare(t, "Color", java.KindEnum)
				d.Modifiers.Visibility = java.VisibilityPublic
				require.NoError(t, d.SetEnumElements("RED", "GREEN"))
				return d
			},
			expected: "public enum Color {\n    RED,\n    GREEN;\n}\n",
		},
		{
			name: "interface methods drop modifiers",
			build: func(t *testing.T) *java.Declaration {
				d := declare(t, "geo.Shape", java.KindInterface)
				m := java.NewMethod("area", "double", "")
				m.Modifiers.Visibility = java.VisibilityPublic
				m.Modifiers.Abstractness = java.AbstractnessAbstract
				d.ClassMethods = append(d.ClassMethods, m)
				return d
			},
			expected: "package geo;\n\ninterface Shape {\n    double area();\n}\n",
		},
		{
			name: "generic class with parent and imports",
			build: func(t *testing.T) *java.Declaration {
				d := declare(t, "util.Box", java.KindClass)
				d.TypeParameters = []string{"T"}
				parent, err := d.Session().Parent("java.io.Serializable")
				require.NoError(t, err)
				d.ParentInfo = parent
				addField(t, d, "items: List of T", java.VisibilityPrivate)
				return d
			},
			expected: "package util;\n\nimport java.io.Serializable;\nimport java.util.List;\n\n" +
				"class Box<T> extends Serializable {\n    private List<T> items;\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.build(t)))
		})
	}
}

func TestRenderMethodOrder(t *testing.T) {
	d := declare(t, "pkg.Account", java.KindClass)
	f := addField(t, d, "balance: long", java.VisibilityPrivate)
	d.FieldMethods = append(d.FieldMethods, f.Getter())
	d.ClassMethods = append(d.ClassMethods, java.ToStringMethod())
	d.Constructors = append(d.Constructors, java.NewConstructor("Account", ""))
	require.NoError(t, d.AddNaturalOrdering())

	text := Render(d)
	order := []string{"Account() {", "public long getBalance() {", "public String toString() {", "public int compareTo(Account other) {"}
	last := -1
	for _, marker := range order {
		i := strings.Index(text, marker)
		require.GreaterOrEqual(t, i, 0, "missing %q in:\n%s", marker, text)
		assert.Greater(t, i, last, "%q out of order", marker)
		last = i
	}
	assert.Contains(t, text, "class Account implements Comparable<Account> {")
	assert.Contains(t, text, "    Account() {\n    }")
	assert.Contains(t, text, "        return 0;\n")
}

func TestRenderAbstractIgnoresBody(t *testing.T) {
	d := declare(t, "pkg.Base", java.KindClass)
	d.Modifiers.Abstractness = java.AbstractnessAbstract
	m := java.NewMethod("run", "void", "int times")
	m.AppendBody("// TODO: loop")
	m.Modifiers.Visibility = java.VisibilityProtected
	m.Modifiers.Abstractness = java.AbstractnessAbstract
	d.ClassMethods = append(d.ClassMethods, m)

	assert.Equal(t, "package pkg;\n\nabstract class Base {\n    protected abstract void run(int times);\n}\n", Render(d))
}

func TestRenderIndentAndBlankLines(t *testing.T) {
	d := declare(t, "Main", java.KindClass)
	m := java.NewMethod("main", "void", "String... args")
	m.AppendBody("int a = 1;\n\nint b = 2;")
	d.ClassMethods = append(d.ClassMethods, m)

	want := "class Main {\n\tvoid main(String... args) {\n\t\tint a = 1;\n\n\t\tint b = 2;\n\t}\n}\n"
	assert.Equal(t, want, Render(d, WithIndent("\t")))
}

func TestJavaEncoder(t *testing.T) {
	d := declare(t, "Empty", java.KindClass)
	var buf bytes.Buffer
	require.NoError(t, NewJavaEncoder(&buf).Encode(d))
	assert.Equal(t, Render(d), buf.String())
}

func TestLineEncoder(t *testing.T) {
	d := declare(t, "pkg.Point", java.KindClass)
	addField(t, d, "x: int", java.VisibilityPrivate)
	d.HasEqualityCheck = true

	var buf bytes.Buffer
	require.NoError(t, NewLineEncoder(&buf).Encode(d))
	assert.Equal(t, strings.Join([]string{
		"class\tpkg.Point\t-\t-",
		"field\tx\tint\tprivate",
		"synthesized\thashCode\tint\t\tpublic",
		"synthesized\tequals\tboolean\tObject that\tpublic",
		"",
	}, "\n"), buf.String())
}

func TestJSONEncoder(t *testing.T) {
	d := declare(t, "pkg.Point", java.KindClass)
	addField(t, d, "xs: array of int", "")
	d.HasEqualityCheck = true

	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(d))

	var got struct {
		Name        string   `json:"name"`
		Package     string   `json:"package"`
		Imports     []string `json:"imports"`
		Fields      []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"fields"`
		Synthesized []struct {
			Name string `json:"name"`
		} `json:"synthesized"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Point", got.Name)
	assert.Equal(t, "pkg", got.Package)
	assert.Equal(t, []string{"java.util.Arrays", "java.util.Objects"}, got.Imports)
	require.Len(t, got.Fields, 1)
	assert.Equal(t, "int[]", got.Fields[0].Type)
	require.Len(t, got.Synthesized, 2)
	assert.Equal(t, "equals", got.Synthesized[1].Name)
}

func TestNewEncoder(t *testing.T) {
	for _, name := range []string{"java", "line", "json"} {
		_, err := NewEncoder(name, &bytes.Buffer{})
		assert.NoError(t, err, name)
	}
	_, err := NewEncoder("yaml", &bytes.Buffer{})
	assert.Error(t, err)
}
