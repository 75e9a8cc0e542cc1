package source

import (
	"net/http"
	"time"
)

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithURL overrides the dataset location.
func WithURL(url string) Option {
	return func(l *Loader) {
		if url != "" {
			l.url = url
		}
	}
}

// WithHTTPClient injects a custom HTTP client (tests use httptest clients).
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithTimeout bounds the dataset download. Ignored when a custom client is
// supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		if timeout > 0 {
			l.timeout = timeout
		}
	}
}
