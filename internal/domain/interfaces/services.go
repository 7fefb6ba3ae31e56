package interfaces

import (
	"context"

	domaintypes "metaweblog/internal/domain/types"
)

// ProfileService validates, saves and loads the local login profile.
type ProfileService interface {
	Save(passphrase string, profile domaintypes.Profile) (domaintypes.Fingerprint, error)
	Load(passphrase string) (domaintypes.Profile, error)
}

// PublishService renders a Markdown document and submits it as a post.
type PublishService interface {
	Publish(
		ctx context.Context,
		doc domaintypes.Document,
		opts domaintypes.PublishOptions,
	) (string, error)
}
