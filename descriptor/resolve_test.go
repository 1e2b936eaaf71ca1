package descriptor

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantType string
		imports  []string
	}{
		{
			name:     "plain primitive",
			input:    "x: int",
			wantName: "x",
			wantType: "int",
			imports:  []string{},
		},
		{
			name:     "array",
			input:    "x: array of int",
			wantName: "x",
			wantType: "int[]",
			imports:  []string{},
		},
		{
			name:     "nested array",
			input:    "grid: array of array of char",
			wantName: "grid",
			wantType: "char[][]",
			imports:  []string{},
		},
		{
			name:     "vararg",
			input:    "xs: vararg of String",
			wantName: "xs",
			wantType: "String...",
			imports:  []string{},
		},
		{
			name:     "hash map with nested generic",
			input:    "m: HashMap of String to List of int",
			wantName: "m",
			wantType: "HashMap<String, List<int>>",
			imports:  []string{"java.util.HashMap", "java.util.List"},
		},
		{
			name:     "generic",
			input:    "names: ArrayList of String",
			wantName: "names",
			wantType: "ArrayList<String>",
			imports:  []string{"java.util.ArrayList"},
		},
		{
			name:     "qualified leaf",
			input:    "d: java.time.LocalDate",
			wantName: "d",
			wantType: "LocalDate",
			imports:  []string{"java.time.LocalDate"},
		},
		{
			name:     "qualified generic head",
			input:    "t: java.util.TreeSet of Integer",
			wantName: "t",
			wantType: "TreeSet<Integer>",
			imports:  []string{"java.util.TreeSet"},
		},
		{
			name:     "unknown simple name",
			input:    "p: Point",
			wantName: "p",
			wantType: "Point",
			imports:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			got, err := s.Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.imports, s.Imports())
		})
	}
}

func TestResolveImportsOnce(t *testing.T) {
	s := NewSession()
	for i := 0; i < 2; i++ {
		v, err := s.Resolve("m: HashMap of String to List of int")
		require.NoError(t, err)
		assert.Equal(t, "HashMap<String, List<int>>", v.Type)
	}
	assert.Equal(t, []string{"java.util.HashMap", "java.util.List"}, s.Imports())
}

func TestAnonymousNames(t *testing.T) {
	s := NewSession()

	params, err := s.Params("int", "String")
	require.NoError(t, err)
	assert.Equal(t, "int var1, String var2", params)

	params, err = s.Params("double", "y: int", "boolean")
	require.NoError(t, err)
	assert.Equal(t, "double var1, int y, boolean var2", params)
}

func TestBareDescriptorsShareCounter(t *testing.T) {
	s := NewSession()
	a, err := s.Resolve("int")
	require.NoError(t, err)
	b, err := s.Resolve("int")
	require.NoError(t, err)
	assert.Equal(t, "var1", a.Name)
	assert.Equal(t, "var2", b.Name)

	s.ResetCounter()
	c, err := s.Resolve("long")
	require.NoError(t, err)
	assert.Equal(t, "var1", c.Name)
}

func TestResolveType(t *testing.T) {
	s := NewSession()

	typ, err := s.ResolveType("array of Set of String")
	require.NoError(t, err)
	assert.Equal(t, "Set<String>[]", typ)

	typ, err = s.ResolveType("result: boolean")
	require.NoError(t, err)
	assert.Equal(t, "boolean", typ)

	// no anonymous name was consumed
	v, err := s.Resolve("int")
	require.NoError(t, err)
	assert.Equal(t, "var1", v.Name)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "two separators", input: "a: b: int"},
		{name: "empty name", input: ": int"},
		{name: "empty type", input: "x: "},
		{name: "map without value", input: "m: HashMap of String"},
		{name: "empty generic argument", input: "xs: array of "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession().Resolve(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDescriptor), "got %v", err)
		})
	}
}

func TestClauses(t *testing.T) {
	s := NewSession()

	parent, err := s.Parent("java.io.Reader")
	require.NoError(t, err)
	assert.Equal(t, "extends Reader", parent)

	ifaces, err := s.Interfaces("Runnable", "Comparable of Point")
	require.NoError(t, err)
	assert.Equal(t, "implements Runnable, Comparable<Point>", ifaces)

	assert.Equal(t, []string{"java.io.Reader"}, s.Imports())
}

func TestKnownImports(t *testing.T) {
	s := NewSession(WithKnownImports("com.example.Money"))

	v, err := s.Resolve("price: Money")
	require.NoError(t, err)
	assert.Equal(t, "Money", v.Type)

	_, err = s.Resolve("xs: List of int")
	require.NoError(t, err)

	assert.Equal(t, []string{"com.example.Money"}, s.Imports())
}

func TestReset(t *testing.T) {
	s := NewSession()
	_, err := s.Resolve("List of int")
	require.NoError(t, err)
	require.NotEmpty(t, s.Imports())

	s.Reset()
	assert.Empty(t, s.Imports())
	v, err := s.Resolve("int")
	require.NoError(t, err)
	assert.Equal(t, "var1", v.Name)
}

func TestDefaultValue(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{"boolean", "false"},
		{"int", "0"},
		{"double", "0"},
		{"char", "0"},
		{"String", "null"},
		{"int[]", "null"},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultValue(tt.typ))
		})
	}
}
