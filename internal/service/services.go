package service

import "github.com/MKhiriev/go-pass-vault/internal/logger"

// Services groups the stateless helpers the console needs besides the vault
// session itself.
type Services struct {
	PasswordGenerator PasswordGenerator
}

// NewServices builds every service. It fails only if the password
// generator cannot be seeded.
func NewServices(log *logger.Logger) (*Services, error) {
	generator, err := NewPasswordGenerator(log)
	if err != nil {
		return nil, err
	}

	return &Services{
		PasswordGenerator: generator,
	}, nil
}
