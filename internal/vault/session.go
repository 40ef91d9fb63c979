// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Session owns the master key and the in-memory record set for the lifetime
// of one process. It is not safe for concurrent use.
//
// Persistence happens only in [Session.Close]: the whole record set is
// serialized, encrypted, encoded, and written over the vault file. A session
// that never reaches Close leaves the vault file untouched.
type Session struct {
	storage  store.VaultStorage
	cipher   crypto.StreamCipher
	derivers *crypto.Derivers

	state       State
	fingerprint crypto.Fingerprint
	key         []byte
	entries     []models.Entry

	logger *logger.Logger
}

// Open inspects storage and returns a session in [StateUninitialized] when no
// fingerprint exists, or in [StateLocked] otherwise.
func Open(ctx context.Context, storage store.VaultStorage, cipher crypto.StreamCipher, derivers *crypto.Derivers, log *logger.Logger) (*Session, error) {
	line, found, err := storage.LoadFingerprint(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fingerprint: %w", err)
	}

	s := &Session{
		storage:  storage,
		cipher:   cipher,
		derivers: derivers,
		state:    StateUninitialized,
		logger:   log.WithComponent("vault"),
	}
	if found {
		s.fingerprint = crypto.ParseFingerprint(line)
		s.state = StateLocked
	}

	s.logger.Info().Stringer("state", s.state).Msg("vault session opened")
	return s, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Establish sets the master passphrase of an uninitialised vault. It fails
// with [ErrMismatch] when confirmation differs from passphrase. On success the
// fingerprint file is written (replacing any previous content) and the
// session is unlocked with an empty record set.
func (s *Session) Establish(ctx context.Context, passphrase, confirmation string) error {
	if err := s.require(StateUninitialized); err != nil {
		return err
	}
	if passphrase != confirmation {
		s.logger.Warn().Msg("passphrase confirmation mismatch")
		return ErrMismatch
	}

	enroller := s.derivers.Enroller()
	key, fp, err := enroller.Enroll(passphrase)
	if err != nil {
		return fmt.Errorf("derive master key: %w", err)
	}

	if err = s.storage.SaveFingerprint(ctx, fp.String()); err != nil {
		return fmt.Errorf("save fingerprint: %w", err)
	}

	if _, found, err := s.storage.LoadVault(ctx); err == nil && found {
		s.logger.Warn().Msg("existing vault file will be overwritten on close")
	}

	s.fingerprint = fp
	s.key = key
	s.entries = nil
	s.state = StateUnlocked

	s.logger.Info().Str("scheme", enroller.Scheme()).Msg("master passphrase established")
	return nil
}

// Unlock verifies passphrase against the stored fingerprint and loads the
// record set. On mismatch it fails with [ErrAuthentication] and nothing is
// loaded. A missing vault file is an empty record set; malformed content is
// skipped, never reported.
func (s *Session) Unlock(ctx context.Context, passphrase string) error {
	if err := s.require(StateLocked); err != nil {
		return err
	}

	kd, err := s.derivers.Lookup(s.fingerprint.Scheme)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	key, ok := kd.Verify(passphrase, s.fingerprint)
	if !ok {
		s.logger.Warn().Msg("master passphrase rejected")
		return ErrAuthentication
	}

	token, found, err := s.storage.LoadVault(ctx)
	if err != nil {
		clear(key)
		return fmt.Errorf("load vault: %w", err)
	}

	var entries []models.Entry
	if found {
		entries = UnmarshalEntries(s.cipher.Crypt(codec.Decode(token), key))
	}

	s.key = key
	s.entries = entries
	s.state = StateUnlocked

	s.logger.Info().Int("entries", len(entries)).Msg("vault unlocked")
	return nil
}

// AddEntry appends a new entry. Duplicate services are allowed; nothing is
// overwritten.
func (s *Session) AddEntry(service, username, secret string) error {
	if err := s.require(StateUnlocked); err != nil {
		return err
	}

	s.entries = append(s.entries, models.Entry{
		Service:  service,
		Username: username,
		Secret:   secret,
	})

	s.logger.Debug().Int("entries", len(s.entries)).Msg("entry added")
	return nil
}

// GetEntry returns the first entry whose service equals service exactly
// (case-sensitive, no normalisation), or [ErrNotFound].
func (s *Session) GetEntry(service string) (models.Entry, error) {
	if err := s.require(StateUnlocked); err != nil {
		return models.Entry{}, err
	}

	i := slices.IndexFunc(s.entries, func(e models.Entry) bool {
		return e.Service == service
	})
	if i < 0 {
		return models.Entry{}, ErrNotFound
	}
	return s.entries[i], nil
}

// DeleteEntries removes every entry whose service equals service exactly and
// returns how many were removed. It returns [ErrNotFound] when none matched.
func (s *Session) DeleteEntries(service string) (int, error) {
	if err := s.require(StateUnlocked); err != nil {
		return 0, err
	}

	before := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(e models.Entry) bool {
		return e.Service == service
	})

	removed := before - len(s.entries)
	if removed == 0 {
		return 0, ErrNotFound
	}

	s.logger.Debug().Int("removed", removed).Int("entries", len(s.entries)).Msg("entries deleted")
	return removed, nil
}

// ListServices returns the service names in storage order: load order, with
// added entries at the end and deleted ones gone. The sequence is computed
// when ranged over, so ranging again reflects later changes. It is empty
// unless the session is unlocked.
func (s *Session) ListServices() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.state != StateUnlocked {
			return
		}
		for _, e := range s.entries {
			if !yield(e.Service) {
				return
			}
		}
	}
}

// Len returns the number of entries held in memory.
func (s *Session) Len() int {
	return len(s.entries)
}

// Close persists the record set and ends the session. The vault file is
// always fully rewritten, even when the record set is empty. If writing
// fails the session stays unlocked so the caller may retry.
func (s *Session) Close(ctx context.Context) error {
	if err := s.require(StateUnlocked); err != nil {
		return err
	}

	blob := codec.Encode(s.cipher.Crypt(MarshalEntries(s.entries), s.key))
	if err := s.storage.SaveVault(ctx, blob); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}

	count := len(s.entries)
	clear(s.key)
	s.key = nil
	s.entries = nil
	s.state = StateClosed

	s.logger.Info().Int("entries", count).Msg("vault saved and closed")
	return nil
}

func (s *Session) require(want State) error {
	if s.state == want {
		return nil
	}
	if s.state == StateClosed {
		return ErrClosed
	}
	return fmt.Errorf("%w: vault is %s", ErrInvalidState, s.state)
}
