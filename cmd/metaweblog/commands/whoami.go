package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"metaweblog/internal/client"
	"metaweblog/internal/services/profile"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the resolved account and endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appCtx.Config
			if _, err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Printf("Username:    %s\n", cfg.Credentials.Username)
			fmt.Printf("Blog id:     %s\n", cfg.Credentials.BlogID)
			fmt.Printf("Endpoint:    %s\n", client.Endpoint(cfg.ServerURL, cfg.Credentials.AppKey))
			fmt.Printf("Fingerprint: %s\n", profile.Fingerprint(cfg.Profile()))
			return nil
		},
	}
}
