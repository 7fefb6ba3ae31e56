package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func blogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blogs",
		Short: "List the blogs of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Client()
			if err != nil {
				return err
			}
			blogs, err := c.GetUsersBlogs(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BLOG ID\tNAME\tURL")
			for _, b := range blogs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.BlogID, b.BlogName, b.URL)
			}
			return w.Flush()
		},
	}
}
