package weblog_test

import (
	"reflect"
	"testing"

	"metaweblog/internal/domain"
	"metaweblog/internal/weblog"
	"metaweblog/internal/wire"
)

func TestPostsFrom_MissingTitleKeepsElement(t *testing.T) {
	v := wire.Array{
		wire.Struct{"postid": wire.String("1"), "title": wire.String("one")},
		wire.Struct{"postid": wire.String("2")},
		wire.Struct{"postid": wire.String("3"), "title": wire.String("three")},
	}
	posts, skipped := weblog.PostsFrom(v)
	if skipped != 0 {
		t.Fatalf("skipped = %d", skipped)
	}
	if len(posts) != 3 {
		t.Fatalf("len = %d, want 3", len(posts))
	}
	if posts[1].PostID != "2" || posts[1].Title != "" {
		t.Fatalf("posts[1] = %+v", posts[1])
	}
	if posts[2].Title != "three" {
		t.Fatalf("posts[2] = %+v", posts[2])
	}
}

func TestPostsFrom_SkipsNonStructs(t *testing.T) {
	v := wire.Array{
		wire.Struct{"postid": wire.String("1")},
		wire.String("garbage"),
		wire.Struct{"postid": wire.String("2")},
	}
	posts, skipped := weblog.PostsFrom(v)
	if skipped != 1 || len(posts) != 2 {
		t.Fatalf("posts = %d, skipped = %d", len(posts), skipped)
	}
	if posts[1].PostID != "2" {
		t.Fatalf("posts[1] = %+v", posts[1])
	}
}

func TestListsFrom_NonArrayIsEmpty(t *testing.T) {
	posts, _ := weblog.PostsFrom(wire.Bool(false))
	cats, _ := weblog.CategoriesFrom(wire.Struct{})
	blogs, _ := weblog.BlogsFrom(nil)
	if posts == nil || len(posts) != 0 {
		t.Fatalf("posts = %#v", posts)
	}
	if cats == nil || len(cats) != 0 {
		t.Fatalf("categories = %#v", cats)
	}
	if blogs == nil || len(blogs) != 0 {
		t.Fatalf("blogs = %#v", blogs)
	}
}

func TestCategoriesFrom(t *testing.T) {
	cats, _ := weblog.CategoriesFrom(wire.Array{
		wire.Struct{
			"categoryid":  wire.Int(7),
			"parentid":    wire.Int(2),
			"title":       wire.String("Go"),
			"description": wire.String("golang"),
			"htmlUrl":     wire.String("https://example.com/c/7"),
			"rssUrl":      wire.String("https://example.com/c/7/rss"),
		},
		wire.Struct{"categoryid": wire.String("8"), "title": wire.String("Rust")},
	})
	want := []domain.CategoryInfo{
		{CategoryID: 7, ParentID: 2, Title: "Go", Description: "golang",
			HTMLURL: "https://example.com/c/7", RSSURL: "https://example.com/c/7/rss"},
		{Title: "Rust"},
	}
	if !reflect.DeepEqual(cats, want) {
		t.Fatalf("got %+v\nwant %+v", cats, want)
	}
}

func TestBlogsFrom(t *testing.T) {
	blogs, _ := weblog.BlogsFrom(wire.Array{
		wire.Struct{"blogid": wire.String("123"), "url": wire.String("https://b/"), "blogName": wire.String("umi")},
	})
	want := []domain.BlogInfo{{BlogID: "123", URL: "https://b/", BlogName: "umi"}}
	if !reflect.DeepEqual(blogs, want) {
		t.Fatalf("got %+v", blogs)
	}
}

func TestWpCategoryValue(t *testing.T) {
	s := weblog.WpCategoryValue(domain.WpCategory{Name: "Cates"})
	if len(s) != 1 {
		t.Fatalf("only name expected, got %#v", s)
	}
	s = weblog.WpCategoryValue(domain.WpCategory{Name: "Sub", ParentID: 3, Slug: "sub"})
	if id, _ := wire.AsInt(s["parent_id"]); id != 3 {
		t.Fatalf("parent_id = %#v", s["parent_id"])
	}
}

func TestScalarResults(t *testing.T) {
	if got := weblog.PostIDResult(wire.String("99")); got != "99" {
		t.Fatalf("post id = %q", got)
	}
	if got := weblog.PostIDResult(wire.Int(99)); got != "-2" {
		t.Fatalf("post id fallback = %q", got)
	}
	if got := weblog.CategoryIDResult(wire.Int(5)); got != 5 {
		t.Fatalf("category id = %d", got)
	}
	if got := weblog.CategoryIDResult(wire.String("5")); got != -1 {
		t.Fatalf("category id fallback = %d", got)
	}
	if !weblog.BoolResult(wire.Bool(true)) {
		t.Fatal("bool result lost")
	}
	if weblog.BoolResult(wire.String("true")) {
		t.Fatal("String must fall back to false")
	}
}
