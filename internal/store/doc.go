// Package store provides file-based persistence for the saved login profile.
//
// The profile holds the app key, username, password and blog id for one
// server. It is serialised as JSON, sealed with a key derived from the user's
// passphrase (scrypt + XChaCha20-Poly1305) and written atomically with mode
// 0600 under the configured home directory. Methods are concurrency-safe via
// internal locking.
package store
