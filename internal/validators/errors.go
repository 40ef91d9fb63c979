package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyService       = errors.New("service is required")
	ErrLineBreak          = errors.New("line breaks are not allowed")
	ErrSeparatorInService = errors.New("service must not contain ':'")
	ErrSeparatorInSecret  = errors.New("secret must not contain ':'")
	ErrFieldTooLong       = errors.New("field is too long")
	ErrInvalidLength      = errors.New("invalid password length")
	ErrNoCharacterClasses = errors.New("at least one character class must be enabled")
)
