package goerror

import (
	"errors"
	"fmt"
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	// TypeServer represents failures the caller cannot fix (entropy, I/O, misconfiguration).
	TypeServer Type = iota
	// TypeValidation represents malformed or corrupt input.
	TypeValidation
	// TypeUnsupported represents well-formed input this build cannot evaluate.
	TypeUnsupported
	// TypeBusiness represents an expected negative outcome, such as a wrong password.
	TypeBusiness
)

// String returns the string representation of the error type.
func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeUnsupported:
		return "ERROR_TYPE_UNSUPPORTED"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to process exit codes.
type Code int

const (
	// CodeInternal represents an internal or unspecified error.
	CodeInternal Code = iota
	// CodeInvalidFormat indicates a structurally or numerically malformed value.
	CodeInvalidFormat
	// CodeInvalidInput indicates input that failed validation rules.
	CodeInvalidInput
	// CodeUnsupported indicates an algorithm or primitive this build cannot run.
	CodeUnsupported
	// CodeMismatch indicates a password that does not match its stored hash.
	CodeMismatch
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeUnsupported:
		return "ERROR_CODE_UNSUPPORTED"
	case CodeMismatch:
		return "ERROR_CODE_MISMATCH"
	case CodeInternal:
		return "ERROR_CODE_INTERNAL"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a detail message,
// a high-level type, and a stable error code.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

// Error implements the error interface.
//
// When both an underlying error and a message are set the result reads
// "<underlying>: <message>".
func (e *Error) Error() string {
	if e.err != nil && e.msg != "" {
		return e.err.Error() + ": " + e.msg
	}

	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeUnsupported:
		return "Operation not supported"
	case TypeBusiness:
		return "Logical business not meet with requirement"
	case TypeServer:
		return "Internal error"
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the detail message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Fields returns validation errors (field to message map), if any.
func (e *Error) Fields() map[string]string {
	return e.fields
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// ExitCode maps the error code to a process exit status.
func (e *Error) ExitCode() int {
	switch e.code {
	case CodeMismatch:
		return 2
	case CodeInvalidFormat, CodeInvalidInput:
		return 3
	case CodeUnsupported:
		return 4
	case CodeInternal:
		return 1
	default:
		return 1
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error with the provided error.
func NewServer(err error) error {
	return new(err, "", TypeServer, CodeInternal)
}

// NewInvalidFormat creates a validation error for malformed data. err is
// usually a package sentinel so callers can match with errors.Is.
func NewInvalidFormat(err error, msg string) error {
	return new(err, msg, TypeValidation, CodeInvalidFormat)
}

// NewUnsupported creates an error for well-formed input that cannot be evaluated.
func NewUnsupported(err error, msg string) error {
	return new(err, msg, TypeUnsupported, CodeUnsupported)
}

// NewMismatch creates a business error reporting that a credential did not match.
func NewMismatch(msg string) error {
	return new(nil, msg, TypeBusiness, CodeMismatch)
}

// NewInvalidInput creates a validation error for invalid input with a message and underlying error.
func NewInvalidInput(err error, kv ...string) error {
	if err != nil {
		return new(err, "Validation error", TypeValidation, CodeInvalidInput)
	}

	if len(kv)%2 != 0 {
		return new(nil, "Invalid input", TypeValidation, CodeInvalidFormat)
	}

	errCustomValidate := &Error{err: nil, msg: "Validation error", errType: TypeValidation, code: CodeInvalidInput}
	errCustomValidate.fields = make(map[string]string)

	for i := 0; i+1 < len(kv); i += 2 {
		errCustomValidate.fields[kv[i]] = kv[i+1]
	}

	return errCustomValidate
}

// ExitCode returns the exit status for any error. Non-structured errors map to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var ge *Error
	if errors.As(err, &ge) {
		return ge.ExitCode()
	}

	return 1
}
