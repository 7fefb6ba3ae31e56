package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"metaweblog/internal/app"
	"metaweblog/internal/config"
	"metaweblog/internal/logger"
)

var appCtx *app.App

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"home":         config.KeyHome,
	"passphrase":   config.KeyPassphrase,
	"server":       config.KeyServer,
	"app-key":      config.KeyAppKey,
	"username":     config.KeyUsername,
	"password":     config.KeyPassword,
	"blog-id":      config.KeyBlogID,
	"dump-request": config.KeyDumpRequest,
	"rate":         config.KeyRate,
	"timeout":      config.KeyTimeout,
	"log-level":    config.KeyLogLevel,
	"log-file":     config.KeyLogFile,
}

// skipProfile marks commands that must not decrypt the saved profile first.
const skipProfile = "skip-profile"

// Execute runs the CLI with the process arguments.
func Execute() error {
	root, err := newRootCmd(config.New())
	if err != nil {
		return err
	}
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func newRootCmd(v *viper.Viper) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "metaweblog",
		Short:         "Manage blog posts over the metaWeblog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, skip := cmd.Annotations[skipProfile]
			return setup(v, !skip)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("home", "", "config dir (default ~/.metaweblog)")
	pf.StringP("passphrase", "p", "", "passphrase protecting the saved profile")
	pf.String("server", "", "metaWeblog base URL (default https://rpc.cnblogs.com/metaweblog)")
	pf.String("app-key", "", "application key, appended to the server URL")
	pf.String("username", "", "account username")
	pf.String("password", "", "account password or access token")
	pf.String("blog-id", "", "target blog id")
	pf.String("dump-request", "", "write each encoded request to this file before sending")
	pf.Float64("rate", 0, "max calls per second (0 = unlimited)")
	pf.Duration("timeout", 0, "HTTP timeout (default 30s)")
	pf.String("log-level", "", "debug|info|warn|error")
	pf.String("log-file", "", "also write JSON logs to this rotated file")
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, pf.Lookup(name)); err != nil {
			return nil, err
		}
	}

	root.AddCommand(
		loginCmd(),
		whoamiCmd(),
		blogsCmd(),
		categoriesCmd(),
		newCategoryCmd(),
		recentCmd(),
		getCmd(),
		publishCmd(),
		deleteCmd(),
	)
	return root, nil
}

// setup resolves the config and builds the shared app context. With
// loadProfile the saved profile fills credentials missing from the config.
func setup(v *viper.Viper, loadProfile bool) error {
	home, err := config.ResolveHome(v)
	if err != nil {
		return err
	}
	if err := config.ReadFile(v, home); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	appCtx = app.New(cfg, log)
	if !loadProfile {
		return nil
	}
	return appCtx.LoadProfile()
}
