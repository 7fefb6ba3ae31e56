package client

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"metaweblog/internal/domain"
	"metaweblog/internal/weblog"
	"metaweblog/internal/wire"
)

// Config holds the account a Client talks to.
type Config struct {
	ServerURL   string // defaults to DefaultServerURL
	Credentials domain.Credentials
	Now         func() time.Time // clock used for unset post dates; defaults to time.Now
	Logger      *zap.Logger
}

// Client is a metaWeblog client for a single account and blog.
type Client struct {
	creds    domain.Credentials
	endpoint string
	caller   domain.Caller
	now      func() time.Time
	log      *zap.Logger
}

// New returns a Client that sends every call through caller.
func New(cfg Config, caller domain.Caller) *Client {
	server := cfg.ServerURL
	if server == "" {
		server = DefaultServerURL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		creds:    cfg.Credentials,
		endpoint: Endpoint(server, cfg.Credentials.AppKey),
		caller:   caller,
		now:      now,
		log:      log,
	}
}

// Endpoint joins the server base path and the app key.
func Endpoint(serverURL, appKey string) string {
	return strings.TrimRight(serverURL, "/") + "/" + appKey
}

// Endpoint returns the URL every call is sent to.
func (c *Client) Endpoint() string { return c.endpoint }

// NewPost creates a post and returns its id, or PostIDUnparsed when the
// server answered with something other than a String.
func (c *Client) NewPost(ctx context.Context, post domain.Post, publish bool) (string, error) {
	post = c.withDate(post)
	args := []wire.Value{
		wire.String(c.creds.BlogID),
		wire.String(c.creds.Username),
		wire.String(c.creds.Password),
		weblog.PostValue(post),
		wire.Bool(publish),
	}

	result, err := c.call(ctx, methodNewPost, args)
	if err != nil {
		return "", err
	}
	return weblog.PostIDResult(result), nil
}

// NewCategory creates a category and returns its id, or
// CategoryIDUnparsed when the result is not an Int.
func (c *Client) NewCategory(ctx context.Context, category domain.WpCategory) (int, error) {
	args := []wire.Value{
		wire.String(c.creds.BlogID),
		wire.String(c.creds.Username),
		wire.String(c.creds.Password),
		weblog.WpCategoryValue(category),
	}

	result, err := c.call(ctx, methodNewCategory, args)
	if err != nil {
		return 0, err
	}
	return weblog.CategoryIDResult(result), nil
}

// GetPost fetches a single post.
func (c *Client) GetPost(ctx context.Context, postID string) (domain.Post, error) {
	args := []wire.Value{
		wire.String(postID),
		wire.String(c.creds.Username),
		wire.String(c.creds.Password),
	}

	result, err := c.call(ctx, methodGetPost, args)
	if err != nil {
		return domain.Post{}, err
	}
	return weblog.PostFrom(result), nil
}

// GetRecentPosts fetches up to count of the most recent posts.
func (c *Client) GetRecentPosts(ctx context.Context, count int) ([]domain.Post, error) {
	args := []wire.Value{
		wire.String(c.creds.BlogID),
		wire.String(c.creds.Username),
		wire.String(c.creds.Password),
		wire.Int(count),
	}

	result, err := c.call(ctx, methodGetRecentPosts, args)
	if err != nil {
		return nil, err
	}
	posts, skipped := weblog.PostsFrom(result)
	c.logSkipped(methodGetRecentPosts, result, skipped)
	return posts, nil
}

// GetCategories lists the categories of the blog.
func (c *Client) GetCategories(ctx context.Context) ([]domain.CategoryInfo, error) {
	args := []wire.Value{
		wire.String(c.creds.BlogID),
		wire.String(c.creds.Username),
		wire.String(c.creds.Password),
	}

	result, err := c.call(ctx, methodGetCategories, args)
	if err != nil {
		return nil, err
	}
	categories, skipped := weblog.CategoriesFrom(result)
	c.logSkipped(methodGetCategories, result, skipped)
	return categories, nil
}

// GetUsersBlogs lists the blogs owned by the account.
func (c *Client) GetUsersBlogs(ctx context.Context) ([]domain.BlogInfo, error) {
	args := []wire.Value{
		wire.String(c.creds.AppKey),
		wire.String(c.creds.Username),
		wire.String(c.creds.Password),
	}

	result, err := c.call(ctx, methodGetUsersBlogs, args)
	if err != nil {
		return nil, err
	}
	blogs, skipped := weblog.BlogsFrom(result)
	c.logSkipped(methodGetUsersBlogs, result, skipped)
	return blogs, nil
}

// EditPost replaces the content of an existing post. The raw result is
// returned for the caller to interpret.
func (c *Client) EditPost(ctx context.Context, postID string, post domain.Post, publish bool) (wire.Value, error) {
	post = c.withDate(post)
	args := []wire.Value{
		wire.String(postID),
		wire.String(c.creds.Username),
		wire.String(c.creds.Password),
		weblog.PostValue(post),
		wire.Bool(publish),
	}

	return c.call(ctx, methodEditPost, args)
}

// DeletePost deletes a post. A non-Bool result reports false.
func (c *Client) DeletePost(ctx context.Context, postID string, publish bool) (bool, error) {
	args := []wire.Value{
		wire.String(c.creds.AppKey),
		wire.String(postID),
		wire.String(c.creds.Username),
		wire.String(c.creds.Password),
		wire.Bool(publish),
	}

	result, err := c.call(ctx, methodDeletePost, args)
	if err != nil {
		return false, err
	}
	return weblog.BoolResult(result), nil
}

func (c *Client) call(ctx context.Context, method string, args []wire.Value) (wire.Value, error) {
	c.log.Debug("rpc call", zap.String("method", method), zap.Int("args", len(args)))
	result, err := c.caller.Call(ctx, c.endpoint, method, args)
	if err != nil {
		c.log.Debug("rpc failed", zap.String("method", method), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// withDate fills an unset creation date with the current local time.
// post is a copy; the caller's value is unaffected.
func (c *Client) withDate(post domain.Post) domain.Post {
	if !post.HasDate() {
		post.DateCreated = c.nowSeconds()
	}
	return post
}

// nowSeconds returns the local wall-clock time with sub-second precision
// dropped.
func (c *Client) nowSeconds() time.Time {
	t := c.now().In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
}

func (c *Client) logSkipped(method string, result wire.Value, skipped int) {
	if k := wire.KindOf(result); k != wire.KindArray {
		c.log.Warn("unexpected result shape", zap.String("method", method), zap.Stringer("kind", k))
		return
	}
	if skipped > 0 {
		c.log.Warn("skipped malformed elements", zap.String("method", method), zap.Int("skipped", skipped))
	}
}

// Compile-time assertion that Client implements domain.BlogClient.
var _ domain.BlogClient = (*Client)(nil)
