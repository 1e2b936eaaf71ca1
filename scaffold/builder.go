// Package scaffold is the fluent protocol for building a Java declaration
// step by step. Every mutating call renders the declaration and, when a
// sink is attached, persists the text; each of these steps is recorded as
// a Commit.
//
//	b, err := scaffold.DeclareClass(nil, "pkg.Point", scaffold.WithSink(tree))
//	b.AddField("x: int").ThatIs(java.VisibleToNone).
//		AddField("y: int").ThatIs(java.VisibleToNone).
//		ApplyQuery(java.EqualityCheck)
//	if err := b.Err(); err != nil { ... }
//
// The first failing call is remembered and every later call becomes a
// no-op, so a chain is checked once at the end.
package scaffold

import (
	"path"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/isti03/checkthat-generator/descriptor"
	"github.com/isti03/checkthat-generator/format"
	"github.com/isti03/checkthat-generator/java"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("checkthat.scaffold")

// Sink stores rendered declarations. project.Tree is the usual one.
type Sink interface {
	Exists(pkg []string, fileName string) (bool, error)
	Persist(pkg []string, fileName, content string) error
}

// Commit is one render of the declaration after a mutating call.
type Commit struct {
	Step int
	Op   string
	Path string
	Text string
}

type Builder struct {
	decl    *java.Declaration
	session *descriptor.Session
	sink    Sink
	indent  string

	parentDesc string
	interfaces []string
	parentInfo string

	cursor  Cursor
	commits []Commit
	err     error
}

type Option func(*Builder)

func WithSink(s Sink) Option {
	return func(b *Builder) {
		b.sink = s
	}
}

func WithIndent(indent string) Option {
	return func(b *Builder) {
		b.indent = indent
	}
}

// WithParentInfo sets the raw parent clause, e.g. "extends Shape".
func WithParentInfo(clause string) Option {
	return func(b *Builder) {
		b.parentInfo = clause
	}
}

// WithParent resolves desc into an "extends" clause.
func WithParent(desc string) Option {
	return func(b *Builder) {
		b.parentDesc = desc
	}
}

// WithInterfaces resolves descs into an "implements" clause.
func WithInterfaces(descs ...string) Option {
	return func(b *Builder) {
		b.interfaces = append(b.interfaces, descs...)
	}
}

func DeclareClass(s *descriptor.Session, name string, opts ...Option) (*Builder, error) {
	return declare(s, name, java.KindClass, opts)
}

func DeclareClassWithParent(s *descriptor.Session, name, parent string, opts ...Option) (*Builder, error) {
	return declare(s, name, java.KindClass, append(opts, WithParent(parent)))
}

func DeclareEnum(s *descriptor.Session, name string, opts ...Option) (*Builder, error) {
	return declare(s, name, java.KindEnum, opts)
}

func DeclareInterface(s *descriptor.Session, name string, opts ...Option) (*Builder, error) {
	return declare(s, name, java.KindInterface, opts)
}

func DeclareCheckedException(s *descriptor.Session, name string, opts ...Option) (*Builder, error) {
	return declare(s, name, java.KindClass, append(opts, WithParentInfo("extends Exception")))
}

func DeclareUncheckedException(s *descriptor.Session, name string, opts ...Option) (*Builder, error) {
	return declare(s, name, java.KindClass, append(opts, WithParentInfo("extends RuntimeException")))
}

func declare(s *descriptor.Session, name string, kind java.Kind, opts []Option) (*Builder, error) {
	if s == nil {
		s = descriptor.NewSession()
	}
	decl, err := java.NewDeclaration(s, name, kind)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		decl:    decl,
		session: s,
		indent:  format.DefaultIndent,
		cursor:  NoMember{},
	}
	for _, opt := range opts {
		opt(b)
	}

	clause, err := b.parentClause()
	if err != nil {
		return nil, err
	}
	decl.ParentInfo = clause

	if b.sink != nil {
		exists, err := b.sink.Exists(decl.PackagePath(), decl.FileName())
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.WithHint(
				errors.Wrapf(java.ErrFileExists, "%s", b.Path()),
				"remove the file or generate into another output directory",
			)
		}
	}
	log.Debugf("declared %s %s", kind, decl.QualifiedName())
	return b, nil
}

func (b *Builder) parentClause() (string, error) {
	var parts []string
	if b.parentInfo != "" {
		parts = append(parts, b.parentInfo)
	}
	if b.parentDesc != "" {
		clause, err := b.session.Parent(b.parentDesc)
		if err != nil {
			return "", java.MarkConfiguration(err)
		}
		parts = append(parts, clause)
	}
	if len(b.interfaces) > 0 {
		clause, err := b.session.Interfaces(b.interfaces...)
		if err != nil {
			return "", java.MarkConfiguration(err)
		}
		parts = append(parts, clause)
	}
	return strings.Join(parts, " "), nil
}

func (b *Builder) Declaration() *java.Declaration { return b.decl }
func (b *Builder) Session() *descriptor.Session   { return b.session }
func (b *Builder) Cursor() Cursor                 { return b.cursor }

// Err returns the first error of the chain.
func (b *Builder) Err() error { return b.err }

// Commits returns every successful commit in order.
func (b *Builder) Commits() []Commit {
	return append([]Commit(nil), b.commits...)
}

// Last returns the latest commit, if any.
func (b *Builder) Last() (Commit, bool) {
	if len(b.commits) == 0 {
		return Commit{}, false
	}
	return b.commits[len(b.commits)-1], true
}

// Path is the slash-separated path of the declaration below the output
// root, e.g. "pkg/Point.java".
func (b *Builder) Path() string {
	return path.Join(append(b.decl.PackagePath(), b.decl.FileName())...)
}

// Text renders the declaration in its current state.
func (b *Builder) Text() string {
	return format.Render(b.decl, format.WithIndent(b.indent))
}

// Commit renders and persists the declaration as it stands, without
// changing it.
func (b *Builder) Commit() *Builder {
	return b.do("commit", func() error { return nil })
}

// do runs a mutating step and commits on success. Nothing runs once the
// chain has failed.
func (b *Builder) do(op string, fn func() error) *Builder {
	if b.err != nil {
		return b
	}
	if err := fn(); err != nil {
		b.err = errors.Wrap(err, op)
		return b
	}
	b.commit(op)
	return b
}

func (b *Builder) commit(op string) {
	c := Commit{
		Step: len(b.commits) + 1,
		Op:   op,
		Path: b.Path(),
		Text: b.Text(),
	}
	if b.sink != nil {
		if err := b.sink.Persist(b.decl.PackagePath(), b.decl.FileName(), c.Text); err != nil {
			if !errors.Is(err, java.ErrPersist) {
				err = errors.Mark(err, java.ErrPersist)
			}
			b.err = errors.Wrapf(err, "%s: persist %s", op, c.Path)
			return
		}
	}
	b.commits = append(b.commits, c)
	log.Debugf("commit %d %s: %s", c.Step, op, c.Path)
}

// fail records err without running a step, for helpers that return text.
func (b *Builder) fail(op string, err error) {
	if b.err == nil {
		b.err = errors.Wrap(err, op)
	}
}

func (b *Builder) resolve(desc string) (descriptor.TypedName, error) {
	v, err := b.session.Resolve(desc)
	return v, java.MarkConfiguration(err)
}

func (b *Builder) resolveType(desc string) (string, error) {
	typ, err := b.session.ResolveType(desc)
	return typ, java.MarkConfiguration(err)
}

func errorf(sentinel error, msg string, args ...any) error {
	return errors.Wrapf(sentinel, msg, args...)
}
