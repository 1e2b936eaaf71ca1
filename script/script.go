// Package script reads scaffold scripts: YAML documents listing
// declarations and the builder steps that produce them.
//
//	declarations:
//	  - class: pkg.Point
//	    steps:
//	      - field: "x: int"
//	      - that is: [visible to none]
//	      - field: "y: int"
//	      - query: [equality check]
package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/stoewer/go-strcase"
	"gopkg.in/yaml.v3"
)

// Extension is the suffix of script files picked up by watch and lsp.
const Extension = ".checkthat.yaml"

var kinds = []string{"class", "enum", "interface", "checked_exception", "unchecked_exception"}

type Script struct {
	Name         string
	Declarations []*Declaration
}

type Declaration struct {
	Kind           string
	Name           string
	Parent         string
	ParentInfo     string
	Implements     []string
	TypeParameters []string
	Steps          []Step
	Pos            Position
}

// Step is one builder call. Args holds the scalar arguments in order;
// Value keeps the typed scalar for initial values.
type Step struct {
	Op    string
	Args  []string
	Value any
	Pos   Position
}

type Position struct {
	Line   int
	Column int
}

func positionOf(n *yaml.Node) Position {
	return Position{Line: n.Line, Column: n.Column}
}

// Parse reads a script. name is used in error positions only.
func Parse(name string, data []byte) (*Script, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &PositionError{File: name, Err: errors.Mark(errors.Wrap(err, "parse yaml"), ErrSyntax)}
	}
	s := &Script{Name: name}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return s, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, s.errorf(root, "top level must be a mapping with a declarations list")
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Value != "declarations" {
			return nil, s.errorf(key, "unknown key %q", key.Value)
		}
		if value.Kind != yaml.SequenceNode {
			return nil, s.errorf(value, "declarations must be a list")
		}
		for _, item := range value.Content {
			d, err := s.parseDeclaration(item)
			if err != nil {
				return nil, err
			}
			s.Declarations = append(s.Declarations, d)
		}
	}
	return s, nil
}

func (s *Script) parseDeclaration(n *yaml.Node) (*Declaration, error) {
	if n.Kind != yaml.MappingNode {
		return nil, s.errorf(n, "declaration must be a mapping")
	}
	d := &Declaration{Pos: positionOf(n)}
	var parentKey, parentInfoKey *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		var err error
		switch k := strcase.SnakeCase(key.Value); k {
		case "class", "enum", "interface", "checked_exception", "unchecked_exception":
			if d.Kind != "" {
				return nil, s.errorf(key, "declaration already has kind %s", d.Kind)
			}
			d.Kind = k
			d.Name, err = s.scalar(value)
		case "parent":
			parentKey = key
			d.Parent, err = s.scalar(value)
		case "parent_info":
			parentInfoKey = key
			d.ParentInfo, err = s.scalar(value)
		case "implements":
			d.Implements, err = s.scalars(value)
		case "type_parameters":
			d.TypeParameters, err = s.scalars(value)
		case "steps":
			d.Steps, err = s.parseSteps(value)
		default:
			return nil, s.errorf(key, "unknown declaration key %q", key.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	if d.Kind == "" {
		return nil, s.errorf(n, "declaration needs one of %v", kinds)
	}
	if d.Name == "" {
		return nil, s.errorf(n, "%s has no name", d.Kind)
	}
	if parentKey != nil && d.Kind != "class" {
		return nil, s.errorf(parentKey, "only a class takes a parent, not %s", d.Kind)
	}
	if parentInfoKey != nil && strings.HasSuffix(d.Kind, "_exception") {
		return nil, s.errorf(parentInfoKey, "%s already has its parent clause", d.Kind)
	}
	return d, nil
}

func (s *Script) parseSteps(n *yaml.Node) ([]Step, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, s.errorf(n, "steps must be a list")
	}
	steps := make([]Step, 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			return nil, s.errorf(item, "a step is a single key naming the operation")
		}
		key, value := item.Content[0], item.Content[1]
		op := strcase.SnakeCase(key.Value)
		if _, ok := operations[op]; !ok {
			return nil, s.errorf(key, "unknown operation %q", key.Value)
		}
		step := Step{Op: op, Pos: positionOf(key)}
		args, err := s.scalars(value)
		if err != nil {
			return nil, err
		}
		step.Args = args
		if value.Kind == yaml.ScalarNode {
			step.Value = typedScalar(value)
		}
		if err := operations[op].check(step); err != nil {
			return nil, s.wrap(key, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (s *Script) scalar(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", s.errorf(n, "expected a single value")
	}
	return n.Value, nil
}

// scalars accepts null, a scalar or a list of scalars.
func (s *Script) scalars(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		values := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := s.scalar(item)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}
	return nil, s.errorf(n, "expected a value or a list of values")
}

// typedScalar keeps the YAML type of a scalar so that only integers and
// strings reach the builder as initial values.
func typedScalar(n *yaml.Node) any {
	switch n.Tag {
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return int(i)
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return b
		}
	case "!!null":
		return nil
	}
	return n.Value
}

func (s *Script) errorf(n *yaml.Node, format string, args ...any) error {
	return s.wrap(n, errors.Mark(errors.Newf(format, args...), ErrSyntax))
}

func (s *Script) wrap(n *yaml.Node, err error) error {
	return &PositionError{File: s.Name, Line: n.Line, Column: n.Column, Err: err}
}

func (d *Declaration) String() string {
	return fmt.Sprintf("%s %s", d.Kind, d.Name)
}
