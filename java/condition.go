package java

import (
	"github.com/cockroachdb/errors"
	"github.com/stoewer/go-strcase"
)

// Condition is a property requested of the declaration or of its most
// recently added member.
type Condition int

const (
	UsableWithoutInstance Condition = iota + 1
	InstanceLevel
	Modifiable
	NotModifiable
	FullyImplemented
	NotImplemented
	VisibleToAll
	VisibleToPackage
	VisibleToSubclasses
	VisibleToNone
	Getter
	Setter
	TextualRepresentation
	DefaultConstructor
	EqualityCheck
	NaturalOrdering
)

type Axis int

const (
	AxisStaticness Axis = iota + 1
	AxisModifiability
	AxisAbstractness
	AxisVisibility
	AxisRequiredMethod
	AxisDefaultConstructor
)

type conditionInfo struct {
	name     string
	axis     Axis
	modifier string
}

var conditionTable = []struct {
	cond Condition
	info conditionInfo
}{
	{UsableWithoutInstance, conditionInfo{"USABLE_WITHOUT_INSTANCE", AxisStaticness, "static"}},
	{InstanceLevel, conditionInfo{"INSTANCE_LEVEL", AxisStaticness, ""}},
	{Modifiable, conditionInfo{"MODIFIABLE", AxisModifiability, ""}},
	{NotModifiable, conditionInfo{"NOT_MODIFIABLE", AxisModifiability, "final"}},
	{FullyImplemented, conditionInfo{"FULLY_IMPLEMENTED", AxisAbstractness, ""}},
	{NotImplemented, conditionInfo{"NOT_IMPLEMENTED", AxisAbstractness, "abstract"}},
	{VisibleToAll, conditionInfo{"VISIBLE_TO_ALL", AxisVisibility, "public"}},
	{VisibleToPackage, conditionInfo{"VISIBLE_TO_PACKAGE", AxisVisibility, ""}},
	{VisibleToSubclasses, conditionInfo{"VISIBLE_TO_SUBCLASSES", AxisVisibility, "protected"}},
	{VisibleToNone, conditionInfo{"VISIBLE_TO_NONE", AxisVisibility, "private"}},
	{Getter, conditionInfo{"GETTER", AxisRequiredMethod, ""}},
	{Setter, conditionInfo{"SETTER", AxisRequiredMethod, ""}},
	{TextualRepresentation, conditionInfo{"TEXTUAL_REPRESENTATION", AxisRequiredMethod, ""}},
	{DefaultConstructor, conditionInfo{"DEFAULT_CONSTRUCTOR", AxisDefaultConstructor, ""}},
	{EqualityCheck, conditionInfo{"EQUALITY_CHECK", AxisRequiredMethod, ""}},
	{NaturalOrdering, conditionInfo{"NATURAL_ORDERING", AxisRequiredMethod, ""}},
}

func (c Condition) info() (conditionInfo, bool) {
	for _, entry := range conditionTable {
		if entry.cond == c {
			return entry.info, true
		}
	}
	return conditionInfo{}, false
}

func (c Condition) String() string {
	if info, ok := c.info(); ok {
		return info.name
	}
	return "UNKNOWN_CONDITION"
}

func (c Condition) Axis() Axis {
	info, _ := c.info()
	return info.axis
}

// Modifier is the keyword the condition writes, empty for conditions that
// clear their axis or have no modifier at all.
func (c Condition) Modifier() string {
	info, _ := c.info()
	return info.modifier
}

func (c Condition) IsModifier() bool {
	switch c.Axis() {
	case AxisStaticness, AxisModifiability, AxisAbstractness, AxisVisibility:
		return true
	}
	return false
}

// Conditions returns every condition in declaration order.
func Conditions() []Condition {
	result := make([]Condition, len(conditionTable))
	for i, entry := range conditionTable {
		result[i] = entry.cond
	}
	return result
}

// ParseCondition accepts "VISIBLE_TO_ALL", "visible to all",
// "visibleToAll" and similar spellings.
func ParseCondition(s string) (Condition, error) {
	name := strcase.UpperSnakeCase(s)
	for _, entry := range conditionTable {
		if entry.info.name == name {
			return entry.cond, nil
		}
	}
	return 0, errors.WithHint(
		configErrorf(ErrUnsupportedCondition, "%q", s),
		"conditions are named like VISIBLE_TO_ALL or \"not modifiable\"",
	)
}
