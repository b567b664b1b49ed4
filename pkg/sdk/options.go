package faqdex

import "net/http"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	apiKey     string
	sessionID  string
	httpClient *http.Client
}

// WithAPIKey sets the bearer token sent on record management calls.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithSessionID sets the chat session identifier. The server serializes
// turns per session; defaults to "anon" when unset.
func WithSessionID(id string) Option {
	return optionFunc(func(c *clientConfig) {
		c.sessionID = id
	})
}

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}
