// Package descriptor turns compact type descriptors such as
// "m: HashMap of String to List of int" into Java type expressions.
//
// All resolution happens inside a Session, which owns the set of imports
// the generated file needs and the counter used to name anonymous
// parameters. A Session lives for exactly one generated declaration;
// callers start a new one (or call Reset) before the next.
package descriptor

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultKnownImports is consulted, in order, when a bare type name is
// resolved. The first entry whose simple name matches and which is not
// yet imported gets imported.
var DefaultKnownImports = []string{
	"java.util.List",
	"java.util.ArrayList",
	"java.util.LinkedList",
	"java.util.Map",
	"java.util.HashMap",
	"java.util.Set",
	"java.util.HashSet",
	"java.util.Random",
}

type Session struct {
	imports map[string]struct{}
	known   []string
	counter int
}

type Option func(*Session)

// WithKnownImports replaces DefaultKnownImports for this session.
func WithKnownImports(names ...string) Option {
	return func(s *Session) {
		s.known = append([]string(nil), names...)
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		imports: make(map[string]struct{}),
		known:   DefaultKnownImports,
		counter: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset drops every recorded import and restarts parameter naming.
func (s *Session) Reset() {
	s.imports = make(map[string]struct{})
	s.counter = 1
}

// ResetCounter restarts anonymous naming at var1. It is called at the
// start of every parameter list.
func (s *Session) ResetCounter() {
	s.counter = 1
}

func (s *Session) nextName() string {
	name := fmt.Sprintf("var%d", s.counter)
	s.counter++
	return name
}

func (s *Session) Import(name string) {
	s.imports[name] = struct{}{}
}

func (s *Session) HasImport(name string) bool {
	_, ok := s.imports[name]
	return ok
}

// Imports returns the recorded imports in lexicographic order.
func (s *Session) Imports() []string {
	result := make([]string, 0, len(s.imports))
	for name := range s.imports {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func (s *Session) KnownImports() []string {
	return s.known
}

func simpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
