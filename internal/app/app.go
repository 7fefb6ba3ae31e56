package app

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"metaweblog/internal/client"
	"metaweblog/internal/config"
	"metaweblog/internal/domain"
	"metaweblog/internal/services/profile"
	"metaweblog/internal/services/publish"
	"metaweblog/internal/store"
	"metaweblog/internal/transport"
)

// App bundles the services and clients used by commands.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	Profiles domain.ProfileService
	HTTP     *http.Client
}

// New constructs the dependency graph from cfg.
func New(cfg *config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		Config:   cfg,
		Log:      log,
		Profiles: profile.New(store.NewProfileFileStore(cfg.Home)),
		HTTP:     &http.Client{Timeout: cfg.Timeout},
	}
}

// LoadProfile fills credentials missing from the config with the saved
// profile. It does nothing without a passphrase or a saved profile.
func (a *App) LoadProfile() error {
	if a.Config.Passphrase == "" {
		return nil
	}
	p, err := a.Profiles.Load(a.Config.Passphrase)
	if errors.Is(err, store.ErrNoProfile) {
		a.Log.Debug("no saved profile")
		return nil
	}
	if err != nil {
		return err
	}
	a.Config.Merge(p)
	return nil
}

// Client returns a metaWeblog client for the configured account.
func (a *App) Client() (*client.Client, error) {
	warnings, err := a.Config.Validate()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		a.Log.Warn(w)
	}

	opts := []transport.Option{
		transport.WithHTTPClient(a.HTTP),
		transport.WithRequestDump(a.Config.DumpRequest),
		transport.WithLogger(a.Log.Named("transport")),
	}
	if a.Config.Rate > 0 {
		opts = append(opts, transport.WithLimiter(rate.NewLimiter(rate.Limit(a.Config.Rate), 1)))
	}

	return client.New(client.Config{
		ServerURL:   a.Config.ServerURL,
		Credentials: a.Config.Credentials,
		Logger:      a.Log.Named("client"),
	}, transport.New(opts...)), nil
}

// Publisher returns the publish service bound to the configured account.
func (a *App) Publisher() (*publish.Service, error) {
	c, err := a.Client()
	if err != nil {
		return nil, err
	}
	return publish.New(c, a.Log.Named("publish")), nil
}
