package interfaces

import domaintypes "metaweblog/internal/domain/types"

// ProfileStore persists the saved login, encrypted under a passphrase.
type ProfileStore interface {
	SaveProfile(passphrase string, profile domaintypes.Profile) error
	LoadProfile(passphrase string) (domaintypes.Profile, error)
}
