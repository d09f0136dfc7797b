// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Username errors
	CodeUsernameTooShort     Code = "USERNAME_TOO_SHORT"
	CodeUsernameTooLong      Code = "USERNAME_TOO_LONG"
	CodeUsernameInvalidStart Code = "USERNAME_INVALID_START"
	CodeUsernameInvalidEnd   Code = "USERNAME_INVALID_END"
	CodeUsernameDoubleHyphen Code = "USERNAME_DOUBLE_HYPHEN"
	CodeUsernameInvalidChars Code = "USERNAME_INVALID_CHARS"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// OutOfRange - input size or structure out of bounds
	case CodeUsernameTooShort,
		CodeUsernameTooLong,
		CodeUsernameDoubleHyphen:
		return codes.OutOfRange

	// InvalidArgument - disallowed content
	case CodeUsernameInvalidStart,
		CodeUsernameInvalidEnd,
		CodeUsernameInvalidChars:
		return codes.InvalidArgument

	default:
		return codes.Internal
	}
}
