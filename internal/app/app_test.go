package app_test

import (
	"errors"
	"testing"
	"time"

	"metaweblog/internal/app"
	"metaweblog/internal/client"
	"metaweblog/internal/config"
	"metaweblog/internal/domain"
)

func TestClient_RequiresEndpoint(t *testing.T) {
	a := app.New(&config.Config{Home: t.TempDir(), Timeout: time.Second}, nil)
	if _, err := a.Client(); !errors.Is(err, config.ErrNoEndpoint) {
		t.Fatalf("err = %v", err)
	}
}

func TestClient_Endpoint(t *testing.T) {
	a := app.New(&config.Config{
		Home:        t.TempDir(),
		ServerURL:   client.DefaultServerURL,
		Credentials: domain.Credentials{AppKey: "umi", Username: "u", Password: "p", BlogID: "1"},
		Rate:        2,
		Timeout:     time.Second,
	}, nil)
	c, err := a.Client()
	if err != nil {
		t.Fatal(err)
	}
	if c.Endpoint() != "https://rpc.cnblogs.com/metaweblog/umi" {
		t.Fatalf("endpoint = %q", c.Endpoint())
	}
}

func TestLoadProfile_MergesSavedCredentials(t *testing.T) {
	home := t.TempDir()
	saved := domain.Profile{
		ServerURL:   client.DefaultServerURL,
		Credentials: domain.Credentials{AppKey: "umi", Username: "u", Password: "p", BlogID: "9"},
	}

	writer := app.New(&config.Config{Home: home}, nil)
	if _, err := writer.Profiles.Save("passphrase!", saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	cfg := &config.Config{Home: home, ServerURL: client.DefaultServerURL, Passphrase: "passphrase!"}
	cfg.Credentials.BlogID = "flag-blog"
	a := app.New(cfg, nil)
	if err := a.LoadProfile(); err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if cfg.Credentials.AppKey != "umi" || cfg.Credentials.BlogID != "flag-blog" {
		t.Fatalf("credentials = %+v", cfg.Credentials)
	}
}

func TestLoadProfile_NoneSaved(t *testing.T) {
	a := app.New(&config.Config{Home: t.TempDir(), Passphrase: "whatever"}, nil)
	if err := a.LoadProfile(); err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
}
