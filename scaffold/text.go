package scaffold

import (
	"strings"

	"github.com/isti03/checkthat-generator/java"
)

// Params renders a parameter list from descriptors, numbering anonymous
// parameters from var1. A bad descriptor fails the chain and yields "".
func (b *Builder) Params(descs ...string) string {
	if b.err != nil {
		return ""
	}
	params, err := b.session.Params(descs...)
	if err != nil {
		b.fail("params", java.MarkConfiguration(err))
		return ""
	}
	return params
}

func NoParams() string { return "" }

// ArgsSimilarToFields stands in for a parameter list mirroring the
// fields, optionally naming them.
func ArgsSimilarToFields(fields ...string) string {
	if len(fields) == 0 {
		return "/* args similar to fields */"
	}
	return "/* " + strings.Join(fields, ", ") + " */"
}

func ArgsAsInParent() string {
	return "/* args as in parent */"
}

// The helpers below build the free text passed to WithArbitraryStatement.

func TheParent(params ...string) string {
	return "the parent " + strings.Join(params, ", ")
}

func TheOtherConstructor(params ...string) string {
	return "the other constructor " + strings.Join(params, ", ")
}

func With(params ...string) string {
	return "with " + strings.Join(params, ", ")
}

func WithAdditionalArgs(args ...string) string {
	return "with additional args: " + strings.Join(args, ", ")
}

func CreatesEmpty(params ...string) string {
	return "create empty " + strings.Join(params, ", ")
}
