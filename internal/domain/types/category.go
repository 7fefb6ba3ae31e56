package types

// CategoryInfo is one entry of metaWeblog.getCategories.
type CategoryInfo struct {
	CategoryID  int
	ParentID    int
	Title       string
	Description string
	HTMLURL     string
	RSSURL      string
}

// WpCategory is the payload of wp.newCategory. The id is assigned by the
// server; ParentID 0 creates a top-level category.
type WpCategory struct {
	Name        string
	Slug        string
	ParentID    int
	Description string
}
