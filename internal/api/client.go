package api

import (
	"context"
	"fmt"

	"github.com/imroc/req/v3"
	"go.uber.org/zap"
)

// TokenSource provides the bearer token for authenticated requests.
// The second return value is false when no session is stored.
type TokenSource interface {
	Token() (string, bool)
}

// Client is the single choke point for talking to the remote API. Every call
// is one-shot: no retries, no caching, no client-side timeout. Callers decide
// whether to re-issue a failed request.
type Client struct {
	http   *req.Client
	tokens TokenSource
	log    *zap.Logger
}

// New creates a client against baseURL. tokens may serve an absent token;
// requests are then sent without an Authorization header.
func New(baseURL string, tokens TokenSource, log *zap.Logger) *Client {
	return &Client{
		http: req.C().
			SetBaseURL(baseURL).
			SetCommonContentType("application/json"),
		tokens: tokens,
		log:    log,
	}
}

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

// WithToken returns a copy of the client authenticating with the given token
// instead of the injected source. The login flow uses it to resolve /users/me
// before the session is persisted.
func (c *Client) WithToken(token string) *Client {
	cc := *c
	cc.tokens = staticToken(token)
	return &cc
}

// do issues a single request and decodes the response into out (may be nil
// for endpoints whose body the caller ignores). Non-2xx responses come back
// as *Error; transport failures wrap ErrUnexpected.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	r := c.http.R().SetContext(ctx)

	if token, ok := c.tokens.Token(); ok {
		r.SetHeader("Authorization", "Bearer "+token)
	}
	if len(query) > 0 {
		r.SetQueryParams(query)
	}
	if body != nil {
		r.SetBody(body)
	}

	var apiErr Error
	if out != nil {
		r.SetSuccessResult(out)
	}
	r.SetErrorResult(&apiErr)

	resp, err := r.Send(method, path)
	if err != nil {
		c.log.Warn("request failed before a response was obtained",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrUnexpected, err)
	}

	// Anything outside 2xx is a failure, including a 3xx that survived
	// redirect following.
	if !resp.IsSuccessState() {
		if apiErr.Message == "" {
			// Body was not the structured error shape; keep the HTTP outcome.
			apiErr.Status = resp.Status
			apiErr.Message = fmt.Sprintf("request failed: %s", resp.Status)
		}
		c.log.Info("api rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("code", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return &apiErr
	}

	return nil
}
