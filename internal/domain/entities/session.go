package entities

// Session is the authenticated identity of one dashboard client.
// A session with a token is authenticated; the username is informational.
type Session struct {
	Token    string `yaml:"token"`
	Username string `yaml:"username"`
}

// Authenticated reports whether the session carries a token.
func (it Session) Authenticated() bool {
	return it.Token != ""
}
