package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/isti03/checkthat-generator/java"
)

// LineEncoder writes one tab-separated line per declaration member, for
// grepping and diffing scaffolds.
type LineEncoder struct {
	w io.Writer
	d *java.Declaration
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(d *java.Declaration) error {
	e.d = d
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	d := e.d

	fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\n", d.Kind, d.QualifiedName(), orDash(d.Modifiers.String()), orDash(d.ParentInfo))

	for _, el := range d.EnumElements {
		fmt.Fprintf(&sb, "constant\t%s\n", el)
	}

	for _, f := range d.Fields {
		fmt.Fprintf(&sb, "field\t%s\t%s\t%s\n",
			f.Variable.Name,
			f.Variable.Type,
			orDash(f.Modifiers.String()),
		)
	}

	e.writeMethods(&sb, "constructor", d.Constructors)
	e.writeMethods(&sb, "accessor", d.FieldMethods)
	e.writeMethods(&sb, "method", d.ClassMethods)
	synthesized, _ := d.Synthesized(DefaultIndent)
	e.writeMethods(&sb, "synthesized", synthesized)

	return []byte(sb.String()), nil
}

func (e *LineEncoder) writeMethods(sb *strings.Builder, kind string, methods []*java.Method) {
	for _, m := range methods {
		fmt.Fprintf(sb, "%s\t%s\t%s\t%s\t%s\n",
			kind,
			m.Name,
			orDash(m.ReturnType),
			m.Parameters,
			orDash(m.Modifiers.String()),
		)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
