package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"metaweblog/internal/domain"
	"metaweblog/internal/weblog"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories of the blog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Client()
			if err != nil {
				return err
			}
			cats, err := c.GetCategories(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tURL")
			for _, cat := range cats {
				fmt.Fprintf(w, "%s\t%s\t%s\n", categoryID(cat.CategoryID), cat.Title, cat.HTMLURL)
			}
			return w.Flush()
		},
	}
}

// categoryID prints 0 as "-". Ids are read from <int> members only, and
// servers that send them as strings (cnblogs) leave them 0.
func categoryID(id int) string {
	if id == 0 {
		return "-"
	}
	return strconv.Itoa(id)
}

// new-category <name>: create a category, optionally under --parent.
func newCategoryCmd() *cobra.Command {
	var category domain.WpCategory
	cmd := &cobra.Command{
		Use:   "new-category <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Client()
			if err != nil {
				return err
			}
			category.Name = args[0]
			id, err := c.NewCategory(cmd.Context(), category)
			if err != nil {
				return err
			}
			if id == weblog.CategoryIDUnparsed {
				fmt.Println("Category created (server did not return an id)")
				return nil
			}
			fmt.Printf("Category created: %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&category.Slug, "slug", "", "category slug")
	cmd.Flags().IntVar(&category.ParentID, "parent", 0, "parent category id (0 = top level)")
	cmd.Flags().StringVar(&category.Description, "description", "", "category description")
	return cmd
}
