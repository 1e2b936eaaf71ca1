package script

import (
	"github.com/isti03/checkthat-generator/descriptor"
	"github.com/isti03/checkthat-generator/java"
	"github.com/isti03/checkthat-generator/scaffold"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("checkthat.script")

type RunOptions struct {
	Sink         scaffold.Sink
	Indent       string
	KnownImports []string
}

type Result struct {
	Declaration *Declaration
	Builder     *scaffold.Builder
}

// Path is where the declaration lands below the output root.
func (r Result) Path() string { return r.Builder.Path() }

// Text is the final rendering of the declaration.
func (r Result) Text() string {
	if c, ok := r.Builder.Last(); ok {
		return c.Text
	}
	return r.Builder.Text()
}

// Run executes every declaration in order, each in a fresh session. It
// stops at the first failure and returns the results completed so far.
func (s *Script) Run(opts RunOptions) ([]Result, error) {
	var results []Result
	for _, d := range s.Declarations {
		b, err := s.runDeclaration(d, opts)
		if err != nil {
			return results, err
		}
		log.Infof("generated %s (%d commits)", b.Path(), len(b.Commits()))
		results = append(results, Result{Declaration: d, Builder: b})
	}
	return results, nil
}

func (s *Script) runDeclaration(d *Declaration, opts RunOptions) (*scaffold.Builder, error) {
	var sessionOpts []descriptor.Option
	if len(opts.KnownImports) > 0 {
		sessionOpts = append(sessionOpts, descriptor.WithKnownImports(opts.KnownImports...))
	}
	session := descriptor.NewSession(sessionOpts...)

	builderOpts := []scaffold.Option{scaffold.WithParentInfo(d.ParentInfo)}
	if opts.Sink != nil {
		builderOpts = append(builderOpts, scaffold.WithSink(opts.Sink))
	}
	if opts.Indent != "" {
		builderOpts = append(builderOpts, scaffold.WithIndent(opts.Indent))
	}
	if len(d.Implements) > 0 {
		builderOpts = append(builderOpts, scaffold.WithInterfaces(d.Implements...))
	}

	b, err := declare(session, d, builderOpts)
	if err != nil {
		return nil, s.at(d.Pos, err)
	}
	if len(d.TypeParameters) > 0 {
		b.WithTypeParameters(d.TypeParameters...)
	}

	for _, step := range d.Steps {
		op := operations[step.Op]
		var conds []java.Condition
		if op.conditions {
			// validated by Parse
			conds, _ = parseConditions(step.Args)
		}
		if err := op.run(b, step, conds).Err(); err != nil {
			return nil, s.at(step.Pos, err)
		}
	}
	if len(b.Commits()) == 0 {
		if err := b.Commit().Err(); err != nil {
			return nil, s.at(d.Pos, err)
		}
	}
	return b, nil
}

func declare(session *descriptor.Session, d *Declaration, opts []scaffold.Option) (*scaffold.Builder, error) {
	switch d.Kind {
	case "enum":
		return scaffold.DeclareEnum(session, d.Name, opts...)
	case "interface":
		return scaffold.DeclareInterface(session, d.Name, opts...)
	case "checked_exception":
		return scaffold.DeclareCheckedException(session, d.Name, opts...)
	case "unchecked_exception":
		return scaffold.DeclareUncheckedException(session, d.Name, opts...)
	}
	if d.Parent != "" {
		return scaffold.DeclareClassWithParent(session, d.Name, d.Parent, opts...)
	}
	return scaffold.DeclareClass(session, d.Name, opts...)
}

func (s *Script) at(pos Position, err error) error {
	return &PositionError{File: s.Name, Line: pos.Line, Column: pos.Column, Err: err}
}
