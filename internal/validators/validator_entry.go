package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field names accepted by [EntryValidator.Validate]. Entry fields and
// password option fields may not be mixed in one call.
const (
	FieldService  = "service"
	FieldUsername = "username"
	FieldSecret   = "secret"
	FieldLength   = "length"
	FieldClasses  = "classes"
)

const (
	// MaxFieldLength bounds every entry field.
	MaxFieldLength = 1024
	// MaxPasswordLength bounds generated passwords.
	MaxPasswordLength = 1024
)

// EntryValidator checks user input before it reaches the vault. The vault
// accepts anything; this is where values that would not survive the
// service:username:secret record format get turned away.
type EntryValidator struct {
}

// NewEntryValidator returns the [Validator] used by the console.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate checks a [models.Entry] or [models.PasswordOptions]. With no
// fields given, every field of the value is checked.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.PasswordOptions:
		return v.validatePasswordOptions(ctx, value, fields...)
	case *models.PasswordOptions:
		return v.validatePasswordOptions(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldUsername, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldService:
			if entry.Service == "" {
				return ErrEmptyService
			}
			if err := checkText(f, entry.Service); err != nil {
				return err
			}
			if strings.Contains(entry.Service, ":") {
				return ErrSeparatorInService
			}
		case FieldUsername:
			if err := checkText(f, entry.Username); err != nil {
				return err
			}
		case FieldSecret:
			if err := checkText(f, entry.Secret); err != nil {
				return err
			}
			if strings.Contains(entry.Secret, ":") {
				return ErrSeparatorInSecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validatePasswordOptions(_ context.Context, opts models.PasswordOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength, FieldClasses}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if opts.Length < 1 || opts.Length > MaxPasswordLength {
				return fmt.Errorf("%w: must be between 1 and %d", ErrInvalidLength, MaxPasswordLength)
			}
		case FieldClasses:
			if !opts.HasClasses() {
				return ErrNoCharacterClasses
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkText(field, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%s: %w", field, ErrLineBreak)
	}
	if len(value) > MaxFieldLength {
		return fmt.Errorf("%s: %w", field, ErrFieldTooLong)
	}
	return nil
}
