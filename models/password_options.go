package models

// PasswordOptions describes a random password request: the length and which
// character classes may appear. At least one class must be enabled.
type PasswordOptions struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
}

// DefaultPasswordOptions returns lowercase, uppercase, and digits without
// symbols.
func DefaultPasswordOptions(length int) PasswordOptions {
	return PasswordOptions{
		Length: length,
		Lower:  true,
		Upper:  true,
		Digits: true,
	}
}

// HasClasses reports whether at least one character class is enabled.
func (o PasswordOptions) HasClasses() bool {
	return o.Lower || o.Upper || o.Digits || o.Symbols
}
