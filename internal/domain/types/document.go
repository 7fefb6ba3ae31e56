package types

// Document is a Markdown source about to be published.
type Document struct {
	// Name is used as the title when nothing better is found.
	Name   string
	Source []byte
}

// PublishOptions controls how a Document becomes a Post.
type PublishOptions struct {
	Title      string
	Categories []string
	Keywords   string
	// PostID, when set, edits that post instead of creating one.
	PostID  string
	Publish bool
	// RawMarkdown sends the source untouched and lets the server render it.
	RawMarkdown bool
}
