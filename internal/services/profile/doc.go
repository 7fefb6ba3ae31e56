// Package profile manages the saved login used by the CLI.
//
// It checks that a profile is complete and that the passphrase meets a
// minimum length before persisting it through domain.ProfileStore, and
// derives a short fingerprint users can compare between machines.
package profile
