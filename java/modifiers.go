package java

import "strings"

type Visibility string

const (
	VisibilityPackage   Visibility = ""
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
)

type Abstractness string

const (
	AbstractnessConcrete Abstractness = ""
	AbstractnessAbstract Abstractness = "abstract"
)

type Staticness string

const (
	StaticnessInstance Staticness = ""
	StaticnessStatic   Staticness = "static"
)

type Modifiability string

const (
	ModifiabilityMutable Modifiability = ""
	ModifiabilityFinal   Modifiability = "final"
)

// Modifiers holds one optional keyword per axis. The zero value has
// every axis unset.
type Modifiers struct {
	Visibility    Visibility
	Abstractness  Abstractness
	Staticness    Staticness
	Modifiability Modifiability
}

// Keywords lists the set keywords in declaration order.
func (m Modifiers) Keywords() []string {
	var result []string
	for _, kw := range []string{
		string(m.Visibility),
		string(m.Abstractness),
		string(m.Staticness),
		string(m.Modifiability),
	} {
		if kw != "" {
			result = append(result, kw)
		}
	}
	return result
}

func (m Modifiers) String() string {
	return strings.Join(m.Keywords(), " ")
}

func (m Modifiers) IsZero() bool {
	return m == Modifiers{}
}

func (m Modifiers) IsAbstract() bool {
	return m.Abstractness == AbstractnessAbstract
}

// Apply writes the keyword of a modifier-axis condition into its slot.
func (m *Modifiers) Apply(c Condition) error {
	switch c {
	case UsableWithoutInstance:
		m.Staticness = StaticnessStatic
	case InstanceLevel:
		m.Staticness = StaticnessInstance
	case Modifiable:
		m.Modifiability = ModifiabilityMutable
	case NotModifiable:
		m.Modifiability = ModifiabilityFinal
	case FullyImplemented:
		m.Abstractness = AbstractnessConcrete
	case NotImplemented:
		m.Abstractness = AbstractnessAbstract
	case VisibleToAll:
		m.Visibility = VisibilityPublic
	case VisibleToPackage:
		m.Visibility = VisibilityPackage
	case VisibleToSubclasses:
		m.Visibility = VisibilityProtected
	case VisibleToNone:
		m.Visibility = VisibilityPrivate
	default:
		return configErrorf(ErrUnsupportedCondition, "%s is not a modifier", c)
	}
	return nil
}
