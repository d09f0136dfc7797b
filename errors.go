package username

import (
	"errors"
	"strconv"

	apperrors "github.com/louisbranch/username/internal/platform/errors"
)

var (
	// ErrRange is the category of errors for a username that is empty, too
	// long or has consecutive hyphens.
	ErrRange = errors.New("username out of range")
	// ErrValidation is the category of errors for a username with a bad first
	// character, last character or any other disallowed character.
	ErrValidation = errors.New("invalid username")
)

var kindCodes = map[Kind]apperrors.Code{
	KindTooShort:     apperrors.CodeUsernameTooShort,
	KindTooLong:      apperrors.CodeUsernameTooLong,
	KindInvalidStart: apperrors.CodeUsernameInvalidStart,
	KindInvalidEnd:   apperrors.CodeUsernameInvalidEnd,
	KindDoubleHyphen: apperrors.CodeUsernameDoubleHyphen,
	KindInvalidChars: apperrors.CodeUsernameInvalidChars,
}

// Code returns the machine-readable error code for the kind.
func (k Kind) Code() apperrors.Code {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return apperrors.CodeUnknown
}

// Category returns ErrRange or ErrValidation.
func (k Kind) Category() error {
	switch k {
	case KindTooShort, KindTooLong, KindDoubleHyphen:
		return ErrRange
	default:
		return ErrValidation
	}
}

func newError(name string, problem Problem) error {
	return apperrors.WrapWithMetadata(
		problem.Kind.Code(),
		problem.Message,
		templateData(name, "Kind", string(problem.Kind)),
		problem.Kind.Category(),
	)
}

// templateData is the metadata passed to localized message templates.
func templateData(name string, extra ...string) map[string]string {
	data := map[string]string{
		"Username":  name,
		"MaxLength": strconv.Itoa(MaxLength),
	}
	for i := 0; i+1 < len(extra); i += 2 {
		data[extra[i]] = extra[i+1]
	}
	return data
}

// KindOf returns the problem kind behind an error from Validate or Normalize.
func KindOf(err error) (Kind, bool) {
	code := apperrors.GetCode(err)
	for kind, candidate := range kindCodes {
		if candidate == code {
			return kind, true
		}
	}
	return "", false
}

// LocalizedMessage renders the message of an error from Validate or Normalize
// in locale, falling back to en-US. Other errors return their own message.
func LocalizedMessage(err error, locale string) string {
	return apperrors.Localize(err, locale)
}

// Status converts an error from Validate or Normalize into a gRPC status
// error: codes.OutOfRange for ErrRange, codes.InvalidArgument for
// ErrValidation, with the localized message attached as details. Unknown
// errors become codes.Internal.
func Status(err error, locale string) error {
	return apperrors.HandleError(err, locale)
}
