package service

import "errors"

var (
	// ErrNoCharacterClasses is returned when password generation is requested
	// with every character class disabled. The caller may ask again.
	ErrNoCharacterClasses = errors.New("at least one character class must be enabled")

	// ErrInvalidLength is returned for a requested length below one.
	ErrInvalidLength = errors.New("password length must be positive")
)
