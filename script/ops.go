package script

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/isti03/checkthat-generator/java"
	"github.com/isti03/checkthat-generator/scaffold"
)

type operation struct {
	minArgs    int
	maxArgs    int // -1 for no limit
	conditions bool
	help       string
	run        func(b *scaffold.Builder, s Step, conds []java.Condition) *scaffold.Builder
}

const unlimited = -1

var operations = map[string]operation{
	"field": {1, 1, false, "add a field from a descriptor, e.g. \"x: int\"",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.AddField(s.Args[0])
		}},
	"method": {1, unlimited, false, "add a method: name followed by parameter descriptors",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.AddMethod(s.Args[0], b.Params(s.Args[1:]...))
		}},
	"constructor": {0, unlimited, false, "add a constructor with parameter descriptors",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			if len(s.Args) == 0 {
				return b.AddNoArgConstructor()
			}
			return b.AddConstructor(b.Params(s.Args...))
		}},
	"enum_elements": {1, unlimited, false, "set the enum constants",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.SetEnumElements(s.Args...)
		}},
	"returns": {1, 1, false, "set the return type of the method",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.SetReturnType(s.Args[0])
		}},
	"returns_nothing": {0, 0, false, "make the method void",
		func(b *scaffold.Builder, _ Step, _ []java.Condition) *scaffold.Builder {
			return b.ReturnsNothing()
		}},
	"throws": {1, unlimited, false, "set the exceptions the method declares",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.SetThrows(s.Args...)
		}},
	"initial_value": {1, 1, false, "set the initializer of the field",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.SetInitialValue(s.Value)
		}},
	"apply": {1, unlimited, true, "apply conditions, then stop inspecting the member",
		func(b *scaffold.Builder, _ Step, conds []java.Condition) *scaffold.Builder {
			return b.ApplyPositive(conds...)
		}},
	"query": {1, unlimited, true, "like apply, and GETTER/SETTER on a field",
		func(b *scaffold.Builder, _ Step, conds []java.Condition) *scaffold.Builder {
			return b.ApplyQuery(conds...)
		}},
	"that_is": {1, unlimited, true, "apply modifier conditions and keep inspecting",
		func(b *scaffold.Builder, _ Step, conds []java.Condition) *scaffold.Builder {
			return b.ThatIs(conds...)
		}},
	"remove": {1, unlimited, true, "accepted, has no effect",
		func(b *scaffold.Builder, _ Step, conds []java.Condition) *scaffold.Builder {
			return b.RemoveCondition(conds...)
		}},
	"remove_query": {1, unlimited, true, "accepted, has no effect",
		func(b *scaffold.Builder, _ Step, conds []java.Condition) *scaffold.Builder {
			return b.RemoveQuery(conds...)
		}},
	"inherited_from": {1, 1, false, "accepted, has no effect",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.IsInheritedFrom(s.Args[0])
		}},
	"implements_method": {1, 1, false, "add an @Override stub",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.ImplementsMethod(s.Args[0])
		}},
	"calls": {1, unlimited, false, "note the methods the method calls",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.CallsOtherMethods(s.Args...)
		}},
	"statement": {1, unlimited, false, "add a TODO statement to the method",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.WithArbitraryStatement(s.Args...)
		}},
	"type_parameters": {1, unlimited, false, "set the type parameters",
		func(b *scaffold.Builder, s Step, _ []java.Condition) *scaffold.Builder {
			return b.WithTypeParameters(s.Args...)
		}},
}

func (op operation) check(s Step) error {
	if len(s.Args) < op.minArgs || (op.maxArgs != unlimited && len(s.Args) > op.maxArgs) {
		return errors.Mark(errors.Newf("%s takes %s, got %d", s.Op, op.arity(), len(s.Args)), ErrSyntax)
	}
	if op.conditions {
		if _, err := parseConditions(s.Args); err != nil {
			return errors.Mark(err, ErrSyntax)
		}
		return nil
	}
	if s.Op == "initial_value" {
		switch s.Value.(type) {
		case int, string:
		default:
			return errors.WithHint(
				errors.Mark(errors.Newf("initial value must be an integer or a string, got %v", s.Value), ErrSyntax),
				"quote the value to use it as a Java string literal",
			)
		}
	}
	return nil
}

func (op operation) arity() string {
	switch {
	case op.maxArgs == unlimited:
		return fmt.Sprintf("at least %d arguments", op.minArgs)
	case op.minArgs == op.maxArgs:
		return fmt.Sprintf("%d arguments", op.minArgs)
	}
	return fmt.Sprintf("%d to %d arguments", op.minArgs, op.maxArgs)
}

func parseConditions(names []string) ([]java.Condition, error) {
	conds := make([]java.Condition, 0, len(names))
	for _, name := range names {
		c, err := java.ParseCondition(name)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	return conds, nil
}

// Operations lists the step names with a one-line description, sorted.
func Operations() []OperationInfo {
	infos := make([]OperationInfo, 0, len(operations))
	for name, op := range operations {
		infos = append(infos, OperationInfo{Name: name, Help: op.help, TakesConditions: op.conditions})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

type OperationInfo struct {
	Name            string
	Help            string
	TakesConditions bool
}
