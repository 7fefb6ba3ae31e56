package weblog

// Struct member names used by metaWeblog, Blogger and wp.* methods.
const (
	keyPostID       = "postid"
	keyTitle        = "title"
	keyDescription  = "description"
	keyLink         = "link"
	keyPermalink    = "permalink"
	keyCategories   = "categories"
	keyDateCreated  = "dateCreated"
	keyUserID       = "userid"
	keyExcerpt      = "mt_excerpt"
	keyKeywords     = "mt_keywords"
	keySlug         = "wp_slug"
	keyCustomFields = "custom_fields"

	keyFieldKey   = "key"
	keyFieldValue = "value"

	keyCategoryID = "categoryid"
	keyParentID   = "parentid"
	keyHTMLURL    = "htmlUrl"
	keyRSSURL     = "rssUrl"

	keyName        = "name"
	keyCatSlug     = "slug"
	keyCatParentID = "parent_id"

	keyBlogID   = "blogid"
	keyURL      = "url"
	keyBlogName = "blogName"
)
