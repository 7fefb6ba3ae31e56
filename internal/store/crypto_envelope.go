package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"metaweblog/internal/util/memzero"
)

// envelopeVersion is written into every sealed profile. Version 1 uses
// scrypt and XChaCha20-Poly1305 with a random nonce.
const envelopeVersion = 1

// profileAD binds ciphertexts to their purpose.
var profileAD = []byte("metaweblog/profile/v1")

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed profile has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted profile")

// kdf holds the scrypt cost parameters recorded alongside the salt.
type kdf struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

func defaultKDF() kdf { return kdf{N: 1 << 15, R: 8, P: 1} }

func (k kdf) derive(passphrase string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, k.N, k.R, k.P, chacha20poly1305.KeySize)
}

// envelope is the JSON document stored on disk.
type envelope struct {
	Version    int    `json:"version"`
	KDF        kdf    `json:"kdf"`
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// seal encrypts plaintext under a key derived from passphrase.
func seal(passphrase string, plaintext []byte, params kdf) ([]byte, error) {
	env := envelope{
		Version: envelopeVersion,
		KDF:     params,
		Salt:    make([]byte, 16),
		Nonce:   make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(env.Salt); err != nil {
		return nil, err
	}
	if _, err := rand.Read(env.Nonce); err != nil {
		return nil, err
	}

	key, err := params.derive(passphrase, env.Salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	env.Ciphertext = aead.Seal(nil, env.Nonce, plaintext, profileAD)
	return json.Marshal(env)
}

// open reverses seal. Any authentication failure is ErrWrongPassphrase.
func open(passphrase string, data []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("unsupported profile version %d", env.Version)
	}
	if len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, ErrWrongPassphrase
	}

	key, err := env.KDF.derive(passphrase, env.Salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, profileAD)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plaintext, nil
}
