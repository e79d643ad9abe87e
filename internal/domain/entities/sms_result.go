package entities

// SMSResult is the classified outcome of a single provider send attempt.
//
// ProviderResponse keeps the raw response body for audit even when the send is
// classified as a failure. Error carries transport-level failures (timeout,
// DNS, refused connection); it is empty when the provider answered at all.
type SMSResult struct {
	OK               bool   `json:"ok"`
	ProviderResponse string `json:"providerResponse,omitempty"`
	Error            string `json:"error,omitempty"`
}
