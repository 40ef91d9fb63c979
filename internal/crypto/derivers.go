package crypto

import "fmt"

// Derivers selects the [KeyDeriver] for a vault: one deriver enrolls new
// passphrases, and every registered deriver can verify fingerprints carrying
// its scheme.
type Derivers struct {
	enroller KeyDeriver
	byScheme map[string]KeyDeriver
}

// NewDerivers registers enroller and others. enroller is also available for
// verification.
func NewDerivers(enroller KeyDeriver, others ...KeyDeriver) *Derivers {
	d := &Derivers{
		enroller: enroller,
		byScheme: make(map[string]KeyDeriver, len(others)+1),
	}
	for _, kd := range append([]KeyDeriver{enroller}, others...) {
		d.byScheme[kd.Scheme()] = kd
	}
	return d
}

// DefaultDerivers registers both bundled schemes and enrolls new vaults with
// the one named by scheme. An empty scheme selects [SchemeDigest].
func DefaultDerivers(scheme string) (*Derivers, error) {
	switch scheme {
	case "", SchemeDigest:
		return NewDerivers(NewDigestDeriver(), NewArgon2Deriver()), nil
	case SchemeArgon2id:
		return NewDerivers(NewArgon2Deriver(), NewDigestDeriver()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// Enroller returns the deriver used for new passphrases.
func (d *Derivers) Enroller() KeyDeriver {
	return d.enroller
}

// Lookup returns the deriver registered for scheme.
func (d *Derivers) Lookup(scheme string) (KeyDeriver, error) {
	kd, ok := d.byScheme[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	return kd, nil
}
