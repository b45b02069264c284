package simevents

import (
	"errors"
	"fmt"
	"strings"
)

// Reasons a known event fails to decode. Every *DecodeError wraps exactly one.
var (
	ErrMissingField   = errors.New("missing required field")
	ErrTypeMismatch   = errors.New("field type mismatch")
	ErrInvalidPayload = errors.New("payload is not an object")
)

// DecodeError describes why a payload could not be decoded into its variant.
// It is the only error type the decoder returns for data problems.
type DecodeError struct {
	EventName string
	// Group is the field group that failed, empty for variant-specific fields.
	Group string
	// Field is the offending payload key; nested keys are dotted.
	Field  string
	Reason error
	Detail string
}

func (e *DecodeError) Error() string {
	var b strings.Builder

	if e.EventName != "" {
		fmt.Fprintf(&b, "decode %s: ", e.EventName)
	}

	b.WriteString(e.Reason.Error())

	if e.Field != "" {
		fmt.Fprintf(&b, " %q", e.Field)
	}

	if e.Group != "" {
		fmt.Fprintf(&b, " (%s)", e.Group)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Reason
}

// AsDecodeError extracts a *DecodeError from err's chain.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func missingField(field, detail string) *DecodeError {
	return &DecodeError{Field: field, Reason: ErrMissingField, Detail: detail}
}

func typeMismatch(field string, want string, got any) *DecodeError {
	return &DecodeError{
		Field:  field,
		Reason: ErrTypeMismatch,
		Detail: fmt.Sprintf("want %s, got %T", want, got),
	}
}

// nested prefixes the failing field with the key of the object it was read from.
func nested(prefix string, err error) error {
	de, ok := AsDecodeError(err)
	if !ok {
		return err
	}

	out := *de
	if out.Field == "" {
		out.Field = prefix
	} else {
		out.Field = prefix + "." + out.Field
	}
	return &out
}
