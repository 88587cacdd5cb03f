package interfaces

// -----------------------------------------------------------------------------
// INetworkManager performs outbound HTTP with retries.
// -----------------------------------------------------------------------------

type INetworkManager interface {

	// Get fetches the URL with the given query parameters and returns the
	// response body.
	Get(url string, params map[string]string) ([]byte, error)
}
