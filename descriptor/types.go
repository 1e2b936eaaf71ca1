package descriptor

import "strings"

func IsPrimitive(typ string) bool {
	switch typ {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func IsArray(typ string) bool {
	return strings.HasSuffix(typ, "[]")
}

func IsVoid(typ string) bool {
	return typ == "void"
}

// DefaultValue is the literal a stub method returns for typ.
func DefaultValue(typ string) string {
	switch {
	case typ == "boolean":
		return "false"
	case IsPrimitive(typ):
		return "0"
	default:
		return "null"
	}
}
