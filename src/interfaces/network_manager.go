package interfaces

// -----------------------------------------------------------------------------
// INetworkManager defines the outbound HTTP contract used by the
// webhook push transport.
// -----------------------------------------------------------------------------

type INetworkManager interface {

	// Post sends a body to a URL with retries and returns the response body.
	Post(url string, contentType string, body []byte) ([]byte, error)
}
