package publish_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"metaweblog/internal/domain"
	"metaweblog/internal/services/publish"
	"metaweblog/internal/wire"
)

// stubClient records posts and answers with canned results.
type stubClient struct {
	domain.BlogClient

	newID      string
	editResult wire.Value
	err        error

	lastPost    domain.Post
	lastPostID  string
	lastPublish bool
	edited      bool
}

func (s *stubClient) NewPost(_ context.Context, p domain.Post, publish bool) (string, error) {
	s.lastPost, s.lastPublish = p, publish
	return s.newID, s.err
}

func (s *stubClient) EditPost(_ context.Context, id string, p domain.Post, publish bool) (wire.Value, error) {
	s.edited = true
	s.lastPostID, s.lastPost, s.lastPublish = id, p, publish
	return s.editResult, s.err
}

const article = "# Hello *World*\n\nSome **bold** text.\n\n<script>alert(1)</script>\n\n```go\n# not a title\n```\n"

func TestBuild_TitleFromHeading(t *testing.T) {
	svc := publish.New(&stubClient{}, nil)

	post, err := svc.Build(domain.Document{Name: "notes/hello.md", Source: []byte(article)}, domain.PublishOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if post.Title != "Hello *World*" {
		t.Fatalf("title = %q", post.Title)
	}
	if !strings.Contains(post.Description, "<strong>bold</strong>") {
		t.Fatalf("description not rendered:\n%s", post.Description)
	}
	if strings.Contains(post.Description, "<script>") {
		t.Fatalf("script survived sanitising:\n%s", post.Description)
	}
	if strings.Contains(post.Description, "<h1") {
		t.Fatalf("title heading kept in body:\n%s", post.Description)
	}
	if !strings.Contains(post.Description, "# not a title") {
		t.Fatalf("fenced code lost:\n%s", post.Description)
	}
	if !post.DateCreated.IsZero() {
		t.Fatal("date must be left for the client to fill")
	}
}

func TestBuild_TitleFallbacks(t *testing.T) {
	svc := publish.New(&stubClient{}, nil)
	doc := domain.Document{Name: "drafts/rpc-notes.md", Source: []byte("no heading here\n")}

	post, err := svc.Build(doc, domain.PublishOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if post.Title != "rpc-notes" {
		t.Fatalf("title = %q", post.Title)
	}

	post, err = svc.Build(doc, domain.PublishOptions{Title: "Explicit"})
	if err != nil {
		t.Fatal(err)
	}
	if post.Title != "Explicit" {
		t.Fatalf("title = %q", post.Title)
	}
}

func TestBuild_RawMarkdown(t *testing.T) {
	svc := publish.New(&stubClient{}, nil)
	opts := domain.PublishOptions{Categories: []string{"go"}, RawMarkdown: true}

	post, err := svc.Build(domain.Document{Name: "a.md", Source: []byte(article)}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(post.Description, "Some **bold** text.") {
		t.Fatalf("description = %q", post.Description)
	}
	if !reflect.DeepEqual(post.Categories, []string{"go", publish.MarkdownCategory}) {
		t.Fatalf("categories = %v", post.Categories)
	}
	if !reflect.DeepEqual(opts.Categories, []string{"go"}) {
		t.Fatal("caller's categories were modified")
	}
}

func TestBuild_Empty(t *testing.T) {
	_, err := publish.New(&stubClient{}, nil).Build(domain.Document{Name: "x.md"}, domain.PublishOptions{})
	if !errors.Is(err, publish.ErrEmptyDocument) {
		t.Fatalf("err = %v", err)
	}
}

func TestPublish_New(t *testing.T) {
	c := &stubClient{newID: "16252136"}
	svc := publish.New(c, nil)

	id, err := svc.Publish(context.Background(), domain.Document{Name: "a.md", Source: []byte(article)},
		domain.PublishOptions{Publish: true, Keywords: "go"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if id != "16252136" || c.edited || !c.lastPublish {
		t.Fatalf("id = %q edited = %v publish = %v", id, c.edited, c.lastPublish)
	}
	if c.lastPost.Keywords != "go" {
		t.Fatalf("keywords = %q", c.lastPost.Keywords)
	}
}

func TestPublish_UnparsedID(t *testing.T) {
	svc := publish.New(&stubClient{newID: "-2"}, nil)
	id, err := svc.Publish(context.Background(), domain.Document{Name: "a.md", Source: []byte("x")}, domain.PublishOptions{})
	if !errors.Is(err, publish.ErrUnparsedPostID) || id != "-2" {
		t.Fatalf("id = %q err = %v", id, err)
	}
}

func TestPublish_Edit(t *testing.T) {
	c := &stubClient{editResult: wire.Bool(true)}
	svc := publish.New(c, nil)

	id, err := svc.Publish(context.Background(), domain.Document{Name: "a.md", Source: []byte("x")},
		domain.PublishOptions{PostID: "77"})
	if err != nil {
		t.Fatal(err)
	}
	if id != "77" || !c.edited || c.lastPostID != "77" || c.lastPost.PostID != "77" {
		t.Fatalf("id = %q stub = %+v", id, c)
	}

	c.editResult = wire.Bool(false)
	if _, err := svc.Publish(context.Background(), domain.Document{Name: "a.md", Source: []byte("x")},
		domain.PublishOptions{PostID: "77"}); !errors.Is(err, publish.ErrEditRejected) {
		t.Fatalf("err = %v", err)
	}
}

func TestPublish_TransportError(t *testing.T) {
	boom := errors.New("dial tcp: refused")
	svc := publish.New(&stubClient{err: boom}, nil)
	if _, err := svc.Publish(context.Background(), domain.Document{Name: "a.md", Source: []byte("x")}, domain.PublishOptions{}); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
