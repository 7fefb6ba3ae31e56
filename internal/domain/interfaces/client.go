package interfaces

import (
	"context"

	domaintypes "metaweblog/internal/domain/types"
	"metaweblog/internal/wire"
)

// BlogClient is the typed metaWeblog/Blogger API for one account.
type BlogClient interface {
	NewPost(ctx context.Context, post domaintypes.Post, publish bool) (string, error)
	NewCategory(ctx context.Context, category domaintypes.WpCategory) (int, error)
	GetPost(ctx context.Context, postID string) (domaintypes.Post, error)
	GetRecentPosts(ctx context.Context, count int) ([]domaintypes.Post, error)
	GetCategories(ctx context.Context) ([]domaintypes.CategoryInfo, error)
	GetUsersBlogs(ctx context.Context) ([]domaintypes.BlogInfo, error)
	EditPost(ctx context.Context, postID string, post domaintypes.Post, publish bool) (wire.Value, error)
	DeletePost(ctx context.Context, postID string, publish bool) (bool, error)
}
