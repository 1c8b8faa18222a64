package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
)

// ErrInvalidJSON is returned when the upstream answers with a body that is
// not JSON
var ErrInvalidJSON = errors.New("upstream response is not valid JSON")

// ProxyRequest is a request forwarded on behalf of a dashboard client
type ProxyRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte

	// Authorization is forwarded verbatim
	Authorization string

	// UseAPIKey sends the server's API key instead of the caller's credentials
	UseAPIKey bool
}

// ProxyResponse is the upstream answer, returned to the client unchanged
type ProxyResponse struct {
	Status int
	Body   json.RawMessage
}

// Forward relays a request to the upstream service. Upstream error statuses
// are not errors; they are passed back in the response. A transport failure
// or a non-JSON body is.
func (c *Client) Forward(ctx context.Context, pr ProxyRequest) (*ProxyResponse, error) {
	if pr.UseAPIKey && !c.HasAPIKey() {
		return nil, &UpstreamError{Op: "forward " + pr.Path, Err: ErrAPIKeyMissing}
	}

	status, data, err := c.do(ctx, request{
		method:        pr.Method,
		path:          pr.Path,
		query:         pr.Query,
		body:          pr.Body,
		authorization: pr.Authorization,
		useAPIKey:     pr.UseAPIKey,
	})
	if err != nil {
		return nil, &UpstreamError{Op: "forward " + pr.Path, Err: err}
	}

	if !json.Valid(data) {
		return nil, &UpstreamError{Op: "forward " + pr.Path, Err: ErrInvalidJSON}
	}

	return &ProxyResponse{Status: status, Body: data}, nil
}
