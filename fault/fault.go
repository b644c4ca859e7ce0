package fault

import "fmt"

type faultCode string

const (
	UnknownCode  faultCode = "unknown"
	BadInputCode faultCode = "bad_input"
)

// FieldErrorsMetadata maps a field name to the problems found with it.
type FieldErrorsMetadata map[string][]string

// Fault is an error carrying a code and optional metadata for callers
// that need to react to the kind of failure.
type Fault struct {
	code     faultCode
	message  string
	metadata any
	original error
}

func New(code faultCode, message string) Fault {
	return Fault{
		code:    code,
		message: message,
	}
}

func (f Fault) WithMetadata(metadata any) Fault {
	e := f
	e.metadata = metadata
	return e
}

func (f Fault) WithOriginal(original error) Fault {
	e := f
	e.original = original
	return e
}

func (f Fault) Code() faultCode {
	return f.code
}

func (f Fault) Message() string {
	return f.message
}

func (f Fault) Metadata() any {
	return f.metadata
}

func (f Fault) Original() error {
	return f.original
}

func (f Fault) Unwrap() error {
	return f.original
}

func (f Fault) Error() string {
	if f.original != nil {
		return fmt.Sprintf("%s: %v", f.message, f.original)
	}
	if f.message == "" {
		if md, ok := f.metadata.(FieldErrorsMetadata); ok {
			return fmt.Sprintf("%s: %v", f.code, map[string][]string(md))
		}
		return string(f.code)
	}
	return f.message
}
