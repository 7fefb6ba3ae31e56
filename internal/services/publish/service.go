package publish

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"metaweblog/internal/domain"
	"metaweblog/internal/weblog"
	"metaweblog/internal/wire"
)

// MarkdownCategory asks cnblogs to render the description as Markdown.
const MarkdownCategory = "[Markdown]"

var (
	// ErrUnparsedPostID is returned when newPost succeeded but its result
	// was not a post id.
	ErrUnparsedPostID = errors.New("server did not return a post id")
	// ErrEditRejected is returned when editPost answered false.
	ErrEditRejected = errors.New("server rejected the edit")
	// ErrEmptyDocument is returned for a document without content.
	ErrEmptyDocument = errors.New("document is empty")
)

// Service renders documents and submits them through a BlogClient.
type Service struct {
	client domain.BlogClient
	md     goldmark.Markdown
	policy *bluemonday.Policy
	log    *zap.Logger
}

// New returns a publish service that posts through c.
func New(c domain.BlogClient, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		client: c,
		md:     newMarkdown(),
		policy: newPolicy(),
		log:    log,
	}
}

// Build converts doc into the Post that Publish would send.
func (s *Service) Build(doc domain.Document, opts domain.PublishOptions) (domain.Post, error) {
	if len(doc.Source) == 0 {
		return domain.Post{}, ErrEmptyDocument
	}

	title := opts.Title
	body := doc.Source
	if heading, rest, ok := splitTitle(doc.Source); ok {
		body = rest
		if title == "" {
			title = heading
		}
	}
	if title == "" {
		title = nameTitle(doc.Name)
	}

	categories := slices.Clone(opts.Categories)
	var description string
	if opts.RawMarkdown {
		description = string(body)
		if !slices.Contains(categories, MarkdownCategory) {
			categories = append(categories, MarkdownCategory)
		}
	} else {
		html, err := s.Render(body)
		if err != nil {
			return domain.Post{}, fmt.Errorf("render %s: %w", doc.Name, err)
		}
		description = html
	}

	return domain.Post{
		PostID:      opts.PostID,
		Title:       title,
		Description: description,
		Categories:  categories,
		Keywords:    opts.Keywords,
	}, nil
}

// Publish builds the post and creates it, or edits opts.PostID when set.
// It returns the id of the post.
func (s *Service) Publish(ctx context.Context, doc domain.Document, opts domain.PublishOptions) (string, error) {
	post, err := s.Build(doc, opts)
	if err != nil {
		return "", err
	}

	if opts.PostID != "" {
		res, err := s.client.EditPost(ctx, opts.PostID, post, opts.Publish)
		if err != nil {
			return "", err
		}
		if ok, isBool := wire.AsBool(res); isBool && !ok {
			return "", ErrEditRejected
		}
		s.log.Info("post updated", zap.String("postid", opts.PostID), zap.String("title", post.Title))
		return opts.PostID, nil
	}

	id, err := s.client.NewPost(ctx, post, opts.Publish)
	if err != nil {
		return "", err
	}
	if id == weblog.PostIDUnparsed {
		return id, ErrUnparsedPostID
	}
	s.log.Info("post created", zap.String("postid", id), zap.String("title", post.Title))
	return id, nil
}

// Compile-time assertion that Service implements domain.PublishService.
var _ domain.PublishService = (*Service)(nil)
