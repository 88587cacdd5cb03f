package interfaces

// -----------------------------------------------------------------------------
// IProxyManager abstracts outbound proxy/user-agent selection.
// -----------------------------------------------------------------------------

type IProxyManager interface {

	// HasProxies reports whether any proxies are configured.
	HasProxies() bool

	// -----------------------------------------------------------------------------

	// GetCurrentProxy returns the active proxy URL, or "" when none.
	GetCurrentProxy() (string, error)

	// -----------------------------------------------------------------------------

	// RotateProxy advances to the next configured proxy.
	RotateProxy()

	// -----------------------------------------------------------------------------

	// GetUserAgent returns a user agent string for the next request.
	GetUserAgent() string
}
