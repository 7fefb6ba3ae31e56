package types

import "time"

// Post is a blog entry as exchanged with metaWeblog.newPost, editPost,
// getPost and getRecentPosts.
//
// The zero Post is the default state. A zero DateCreated means "unset"; the
// client replaces it with the current time before submission.
type Post struct {
	PostID      string
	Title       string
	Description string
	Link        string
	Permalink   string
	// Categories keeps server order. nil means absent, empty means none.
	Categories  []string
	DateCreated time.Time
	UserID      string
	Excerpt     string
	Keywords    string
	Slug        string
	// CustomFields maps custom field keys to values.
	CustomFields map[string]string
}

// HasDate reports whether the creation date has been set.
func (p Post) HasDate() bool { return !p.DateCreated.IsZero() }
