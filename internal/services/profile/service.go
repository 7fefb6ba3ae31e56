package profile

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"metaweblog/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 8
)

var (
	// ErrWeakPassphrase is returned when the passphrase is too short.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters)",
		minPassphraseLength,
	)
	// ErrIncompleteProfile is returned when a credential needed by every call is missing.
	ErrIncompleteProfile = errors.New("profile needs an app key, username and password")
)

// Service saves and loads the login profile using a backing store.
type Service struct {
	store domain.ProfileStore
}

// New returns a profile service backed by the given store.
func New(s domain.ProfileStore) *Service { return &Service{store: s} }

// Save validates and stores the profile encrypted with passphrase, and
// returns its fingerprint.
func (s *Service) Save(passphrase string, p domain.Profile) (domain.Fingerprint, error) {
	if len([]rune(passphrase)) < minPassphraseLength {
		return "", ErrWeakPassphrase
	}
	c := p.Credentials
	if strings.TrimSpace(c.AppKey) == "" || strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return "", ErrIncompleteProfile
	}
	if err := s.store.SaveProfile(passphrase, p); err != nil {
		return "", err
	}
	return Fingerprint(p), nil
}

// Load decrypts and returns the saved profile.
func (s *Service) Load(passphrase string) (domain.Profile, error) {
	return s.store.LoadProfile(passphrase)
}

// Fingerprint returns a short hex fingerprint of the server and username.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(p domain.Profile) domain.Fingerprint {
	sum := sha256.Sum256([]byte(p.ServerURL + "\x00" + p.Credentials.Username))
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}

// Compile-time assertion that Service implements domain.ProfileService.
var _ domain.ProfileService = (*Service)(nil)
