package types

// BlogInfo identifies one blog owned by the calling account.
type BlogInfo struct {
	BlogID   string
	URL      string
	BlogName string
}
