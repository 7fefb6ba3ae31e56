package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"metaweblog/internal/client"
	"metaweblog/internal/domain"
)

func recentCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recent posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("-n must be positive")
			}
			c, err := appCtx.Client()
			if err != nil {
				return err
			}
			posts, err := c.GetRecentPosts(cmd.Context(), count)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "POST ID\tDATE\tTITLE")
			for _, p := range posts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.PostID, formatDate(p), p.Title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 20, "number of posts")
	return cmd
}

func getCmd() *cobra.Command {
	var body bool
	cmd := &cobra.Command{
		Use:   "get <postid>",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Client()
			if err != nil {
				return err
			}
			p, err := c.GetPost(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Post id:    %s\n", p.PostID)
			fmt.Printf("Title:      %s\n", p.Title)
			fmt.Printf("Date:       %s\n", formatDate(p))
			fmt.Printf("Link:       %s\n", p.Link)
			fmt.Printf("Categories: %s\n", strings.Join(p.Categories, ", "))
			if p.Keywords != "" {
				fmt.Printf("Keywords:   %s\n", p.Keywords)
			}
			if body {
				fmt.Println()
				fmt.Println(p.Description)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&body, "body", false, "also print the post body")
	return cmd
}

func deleteCmd() *cobra.Command {
	var publish bool
	cmd := &cobra.Command{
		Use:   "delete <postid>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Client()
			if err != nil {
				return err
			}
			ok, err := c.DeletePost(cmd.Context(), args[0], publish)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("server did not confirm deleting %s", args[0])
			}
			fmt.Println("deleted")
			return nil
		},
	}
	cmd.Flags().BoolVar(&publish, "publish", true, "publish the change immediately")
	return cmd
}

func formatDate(p domain.Post) string {
	if !p.HasDate() {
		return "-"
	}
	return p.DateCreated.Format(client.DateLayout)
}
