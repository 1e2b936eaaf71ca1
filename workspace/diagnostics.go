package workspace

import (
	"github.com/cockroachdb/errors"
	"github.com/isti03/checkthat-generator/script"
)

// Diagnostic is a problem in a script. Line and Column are 1-based; zero
// means the error has no position and belongs to the start of the file.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
	Hint    string
}

// Diagnostics reports the error of the last parse or run of path, if any.
func (w *Workspace) Diagnostics(path string) []Diagnostic {
	f := w.GetFile(path)
	if f == nil || f.Err() == nil {
		return nil
	}
	return []Diagnostic{diagnosticOf(f.Err())}
}

func diagnosticOf(err error) Diagnostic {
	d := Diagnostic{Message: err.Error(), Hint: errors.FlattenHints(err)}
	if pe, ok := script.ErrorPosition(err); ok {
		d.Line, d.Column = pe.Line, pe.Column
		d.Message = pe.Err.Error()
	}
	return d
}
