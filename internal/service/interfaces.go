package service

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PasswordGenerator produces random secrets for new vault entries.
type PasswordGenerator interface {
	// Generate returns a password of opts.Length characters drawn uniformly
	// from the union of the enabled character classes. The symbol class
	// never yields ':'.
	Generate(opts models.PasswordOptions) (string, error)
}
