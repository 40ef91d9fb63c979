// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validEntry() models.Entry {
	return models.Entry{Service: "mail", Username: "alice@example.com", Secret: "s3cr3t!"}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewEntryValidator(t *testing.T) {
	require.NotNil(t, NewEntryValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewEntryValidator()
	ctx := context.Background()

	e := validEntry()
	assert.NoError(t, v.Validate(ctx, e))
	assert.NoError(t, v.Validate(ctx, &e))

	o := models.DefaultPasswordOptions(16)
	assert.NoError(t, v.Validate(ctx, o))
	assert.NoError(t, v.Validate(ctx, &o))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidate_Entry
// ---------------------------------------------------------------------------

func TestValidate_Entry(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *models.Entry)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Entry) {}},
		{name: "empty username and secret", mutate: func(e *models.Entry) { e.Username, e.Secret = "", "" }},
		{name: "colon in username", mutate: func(e *models.Entry) { e.Username = "a:b" }},
		{name: "empty service", mutate: func(e *models.Entry) { e.Service = "" }, wantErr: ErrEmptyService},
		{name: "newline in service", mutate: func(e *models.Entry) { e.Service = "a\nb" }, wantErr: ErrLineBreak},
		{name: "carriage return in username", mutate: func(e *models.Entry) { e.Username = "a\r" }, wantErr: ErrLineBreak},
		{name: "newline in secret", mutate: func(e *models.Entry) { e.Secret = "\n" }, wantErr: ErrLineBreak},
		{name: "colon in secret", mutate: func(e *models.Entry) { e.Secret = "pa:ss" }, wantErr: ErrSeparatorInSecret},
		{name: "colon in service", mutate: func(e *models.Entry) { e.Service = "https://mail.example" }, wantErr: ErrSeparatorInService},
		{name: "too long", mutate: func(e *models.Entry) { e.Username = strings.Repeat("x", MaxFieldLength+1) }, wantErr: ErrFieldTooLong},
	}

	v := NewEntryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			err := v.Validate(context.Background(), e)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_EntrySelectedFields(t *testing.T) {
	v := NewEntryValidator()
	ctx := context.Background()

	// only the service is known while prompting for it
	partial := models.Entry{Service: "mail"}
	assert.NoError(t, v.Validate(ctx, partial, FieldService))

	bad := models.Entry{Service: "mail", Secret: "a:b"}
	assert.NoError(t, v.Validate(ctx, bad, FieldService, FieldUsername))
	assert.ErrorIs(t, v.Validate(ctx, bad, FieldSecret), ErrSeparatorInSecret)

	assert.ErrorIs(t, v.Validate(ctx, partial, "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_PasswordOptions
// ---------------------------------------------------------------------------

func TestValidate_PasswordOptions(t *testing.T) {
	v := NewEntryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DefaultPasswordOptions(1)))
	assert.NoError(t, v.Validate(ctx, models.DefaultPasswordOptions(MaxPasswordLength)))

	assert.ErrorIs(t, v.Validate(ctx, models.DefaultPasswordOptions(0)), ErrInvalidLength)
	assert.ErrorIs(t, v.Validate(ctx, models.DefaultPasswordOptions(MaxPasswordLength+1)), ErrInvalidLength)
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordOptions{Length: 8}), ErrNoCharacterClasses)

	// length alone may be checked before the classes are chosen
	assert.NoError(t, v.Validate(ctx, models.PasswordOptions{Length: 8}, FieldLength))
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordOptions{Length: 8}, "nope"), ErrUnknownField)
}
