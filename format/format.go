package format

import (
	"encoding"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/isti03/checkthat-generator/java"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(d *java.Declaration) error
}

// NewEncoder returns the encoder registered under name: "java", "line"
// or "json".
func NewEncoder(name string, w io.Writer, opts ...Option) (Encoder, error) {
	switch name {
	case "", "java":
		return NewJavaEncoder(w, opts...), nil
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, errors.WithHint(errors.Newf("unknown format %q", name), "use java, line or json")
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
