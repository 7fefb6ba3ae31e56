package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"metaweblog/internal/domain"
	"metaweblog/internal/util/atomicfile"
	"metaweblog/internal/util/memzero"
)

const profileFilename = "profile.json.enc"

// ErrNoProfile is returned by LoadProfile when nothing has been saved yet.
var ErrNoProfile = errors.New("no saved profile")

// ProfileFileStore persists the login profile to disk.
type ProfileFileStore struct {
	dir string
	mu  sync.Mutex

	kdf kdf // tests lower the cost
}

// NewProfileFileStore returns a ProfileFileStore rooted at dir.
func NewProfileFileStore(dir string) *ProfileFileStore {
	return &ProfileFileStore{dir: dir, kdf: defaultKDF()}
}

// SaveProfile encrypts the profile with passphrase and writes it to disk.
func (s *ProfileFileStore) SaveProfile(passphrase string, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	ct, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return atomicfile.WriteFile(s.path(), ct, 0o600)
}

// LoadProfile reads and decrypts the profile.
func (s *ProfileFileStore) LoadProfile(passphrase string) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return domain.Profile{}, ErrNoProfile
	}
	if err != nil {
		return domain.Profile{}, err
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return domain.Profile{}, err
	}
	defer memzero.Zero(pt)

	var profile domain.Profile
	if err := json.Unmarshal(pt, &profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileFileStore) path() string { return filepath.Join(s.dir, profileFilename) }

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
