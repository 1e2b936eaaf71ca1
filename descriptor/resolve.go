package descriptor

import (
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	nameSeparator    = ": "
	genericSeparator = " of "
	mapSeparator     = " to "
)

var ErrInvalidDescriptor = errors.New("invalid type descriptor")

type TypedName struct {
	Name string
	Type string
}

func (t TypedName) String() string {
	return t.Type + " " + t.Name
}

// Resolve parses "name: T" or a bare "T". A bare descriptor is named
// var<N> from the session counter.
func (s *Session) Resolve(desc string) (TypedName, error) {
	parts := strings.Split(desc, nameSeparator)
	switch len(parts) {
	case 1:
		name := s.nextName()
		typ, err := s.resolveType(parts[0])
		if err != nil {
			return TypedName{}, err
		}
		return TypedName{Name: name, Type: typ}, nil
	case 2:
		name := strings.TrimSpace(parts[0])
		if name == "" {
			return TypedName{}, errors.Wrapf(ErrInvalidDescriptor, "%q: empty name", desc)
		}
		typ, err := s.resolveType(parts[1])
		if err != nil {
			return TypedName{}, err
		}
		return TypedName{Name: name, Type: typ}, nil
	default:
		return TypedName{}, errors.WithHint(
			errors.Wrapf(ErrInvalidDescriptor, "%q: more than one %q separator", desc, nameSeparator),
			`use "name: type", for example "x: array of int"`,
		)
	}
}

// ResolveType returns the canonical type of desc without consuming a
// generated name. A "name: " prefix is accepted and ignored.
func (s *Session) ResolveType(desc string) (string, error) {
	parts := strings.Split(desc, nameSeparator)
	if len(parts) > 2 {
		return "", errors.Wrapf(ErrInvalidDescriptor, "%q: more than one %q separator", desc, nameSeparator)
	}
	return s.resolveType(parts[len(parts)-1])
}

// Params renders a parameter list. Anonymous parameters are numbered from
// var1 for every call.
func (s *Session) Params(descs ...string) (string, error) {
	s.ResetCounter()
	params := make([]string, 0, len(descs))
	for _, desc := range descs {
		v, err := s.Resolve(desc)
		if err != nil {
			return "", err
		}
		params = append(params, v.String())
	}
	return strings.Join(params, ", "), nil
}

// Parent renders an "extends" clause for desc.
func (s *Session) Parent(desc string) (string, error) {
	typ, err := s.ResolveType(desc)
	if err != nil {
		return "", err
	}
	return "extends " + typ, nil
}

// Interfaces renders an "implements" clause listing every desc.
func (s *Session) Interfaces(descs ...string) (string, error) {
	types := make([]string, 0, len(descs))
	for _, desc := range descs {
		typ, err := s.ResolveType(desc)
		if err != nil {
			return "", err
		}
		types = append(types, typ)
	}
	return "implements " + strings.Join(types, ", "), nil
}

func (s *Session) resolveType(desc string) (string, error) {
	head, rest, ok := strings.Cut(desc, genericSeparator)
	if !ok {
		leaf := strings.TrimSpace(desc)
		if leaf == "" {
			return "", errors.Wrap(ErrInvalidDescriptor, "empty type")
		}
		return s.importAndSimplify(leaf), nil
	}

	head = s.importAndSimplify(strings.TrimSpace(head))
	switch head {
	case "array":
		elem, err := s.resolveType(rest)
		if err != nil {
			return "", err
		}
		return elem + "[]", nil
	case "vararg":
		elem, err := s.resolveType(rest)
		if err != nil {
			return "", err
		}
		return elem + "...", nil
	case "HashMap":
		k, v, ok := strings.Cut(rest, mapSeparator)
		if !ok {
			return "", errors.WithHint(
				errors.Wrapf(ErrInvalidDescriptor, "%q: missing %q", desc, mapSeparator),
				`write maps as "HashMap of K to V"`,
			)
		}
		key, err := s.resolveType(k)
		if err != nil {
			return "", err
		}
		value, err := s.resolveType(v)
		if err != nil {
			return "", err
		}
		return "HashMap<" + key + ", " + value + ">", nil
	default:
		arg, err := s.resolveType(rest)
		if err != nil {
			return "", err
		}
		return head + "<" + arg + ">", nil
	}
}

func (s *Session) importAndSimplify(typ string) string {
	if strings.Contains(typ, ".") {
		s.Import(typ)
		return simpleName(typ)
	}
	for _, known := range s.known {
		if simpleName(known) == typ && !s.HasImport(known) {
			s.Import(known)
			break
		}
	}
	return typ
}
