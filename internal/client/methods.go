package client

// Remote method names.
const (
	methodDeletePost     = "blogger.deletePost"
	methodEditPost       = "metaWeblog.editPost"
	methodGetCategories  = "metaWeblog.getCategories"
	methodGetPost        = "metaWeblog.getPost"
	methodGetRecentPosts = "metaWeblog.getRecentPosts"
	methodGetUsersBlogs  = "blogger.getUsersBlogs"
	methodNewPost        = "metaWeblog.newPost"
	methodNewCategory    = "wp.newCategory"
)

// DefaultServerURL is the cnblogs metaWeblog base path. The app key is
// appended to form the endpoint.
const DefaultServerURL = "https://rpc.cnblogs.com/metaweblog"

// DateLayout is how post dates are rendered: ISO 8601 without fractional
// seconds or zone offset.
const DateLayout = "2006-01-02T15:04:05"
