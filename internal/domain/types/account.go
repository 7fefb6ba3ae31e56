package types

// Credentials authenticate every call. AppKey also selects the endpoint.
type Credentials struct {
	AppKey   string `json:"app_key"`
	Username string `json:"username"`
	Password string `json:"password"`
	BlogID   string `json:"blog_id"`
}

// Profile is a saved login for a specific server.
type Profile struct {
	ServerURL   string      `json:"server_url"`
	Credentials Credentials `json:"credentials"`
}

// Fingerprint is a short identifier for a profile presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
