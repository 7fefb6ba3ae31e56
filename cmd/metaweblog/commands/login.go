package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// login: save the resolved credentials encrypted with --passphrase.
func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "login",
		Short:       "Save credentials encrypted under the passphrase",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipProfile: ""}, // may replace a profile under another passphrase
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appCtx.Config
			if cfg.Passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			fp, err := appCtx.Profiles.Save(cfg.Passphrase, cfg.Profile())
			if err != nil {
				return err
			}
			fmt.Printf("Profile saved.\nFingerprint: %s\n", fp)
			return nil
		},
	}
}
