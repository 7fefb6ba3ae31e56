package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"metaweblog/internal/domain"
	"metaweblog/internal/services/publish"
)

// publish <file.md>: render and create a post, or update --post-id.
func publishCmd() *cobra.Command {
	var (
		opts   domain.PublishOptions
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "publish <file.md>",
		Short: "Render a Markdown file and create or update a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc := domain.Document{Name: args[0], Source: src}

			svc, err := appCtx.Publisher()
			if err != nil {
				return err
			}
			if dryRun {
				post, err := svc.Build(doc, opts)
				if err != nil {
					return err
				}
				fmt.Printf("Title: %s\nCategories: %v\n\n%s\n", post.Title, post.Categories, post.Description)
				return nil
			}

			id, err := svc.Publish(cmd.Context(), doc, opts)
			if errors.Is(err, publish.ErrUnparsedPostID) {
				fmt.Println("Submitted, but the server did not return a post id")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Post id: %s\n", id)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Title, "title", "", "post title (default: first # heading or file name)")
	f.StringSliceVarP(&opts.Categories, "category", "c", nil, "category, repeatable")
	f.StringVar(&opts.Keywords, "tags", "", "comma separated tags")
	f.StringVar(&opts.PostID, "post-id", "", "update this post instead of creating one")
	f.BoolVar(&opts.Publish, "publish", false, "publish instead of saving a draft")
	f.BoolVar(&opts.RawMarkdown, "markdown", false, "send Markdown as-is with the [Markdown] category")
	f.BoolVar(&dryRun, "dry-run", false, "print the post instead of sending it")
	return cmd
}
