package java

import "github.com/cockroachdb/errors"

// ErrConfiguration marks caller mistakes: the call can never succeed as
// written, so it is not retried. Use errors.Is to classify.
var ErrConfiguration = errors.New("configuration error")

var (
	ErrNoInspectedMember    = errors.New("no inspected member")
	ErrUnsupportedProperty  = errors.New("property not supported here")
	ErrUnsupportedCondition = errors.New("unsupported condition")
	ErrOrderingMerge        = errors.New("cannot merge natural ordering into parent clause")
	ErrEnumElementsSet      = errors.New("enum elements already set")
)

var (
	ErrFileExists = errors.New("declaration file already exists")
	ErrPersist    = errors.New("persist failed")
)

// MarkConfiguration tags err so that errors.Is(err, ErrConfiguration)
// holds, keeping its own identity intact.
func MarkConfiguration(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrConfiguration)
}

func configErrorf(sentinel error, format string, args ...any) error {
	return MarkConfiguration(errors.Wrapf(sentinel, format, args...))
}
