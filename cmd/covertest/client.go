package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/corehatch/statecover/pkg/graph"
)

// httpResponse adapts a *http.Response into the explore.Response capability
// so the exploration engine can opportunistically attach its JSON body to
// context without the demo client hand-rolling that itself.
type httpResponse struct {
	body       []byte
	statusCode int
	headers    map[string][]string
}

func (r *httpResponse) Body() []byte                 { return r.body }
func (r *httpResponse) StatusCode() int               { return r.statusCode }
func (r *httpResponse) Headers() map[string][]string { return r.headers }

// demoClient drives a target API generically: it has no knowledge of what
// "auth" or "data" mean, only that the combinatorial plan names a
// dimension and a value to move it to, and that the target exposes one
// PUT endpoint per dimension for setting it. This is deliberately the
// simplest possible wiring a real test author would replace with a
// domain-specific client; it exists so the pipeline has something to run
// against end to end without one.
type demoClient struct {
	baseURL string
	http    *http.Client
}

func newDemoClient(baseURL string, timeout time.Duration) *demoClient {
	return &demoClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// transition returns a graph.ActionFunc that PUTs {dimension: value} to
// baseURL/state/{dimension}, the generic move-this-dimension-to-this-value
// request every demo transition and setup reduces to.
func (c *demoClient) transition(dimension string, value any) graph.ActionFunc {
	return func(ctx graph.Context) (any, error) {
		if c.baseURL == "" {
			return nil, nil
		}

		payload, err := json.Marshal(map[string]any{"value": value})
		if err != nil {
			return nil, fmt.Errorf("demo client: encoding %s=%v: %w", dimension, value, err)
		}

		url := fmt.Sprintf("%s/state/%s", c.baseURL, dimension)
		req, err := http.NewRequestWithContext(context.Background(), http.MethodPut, url, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("demo client: building request for %s: %w", dimension, err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("demo client: %s -> %v: %w", dimension, value, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("demo client: reading response for %s: %w", dimension, err)
		}

		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("demo client: %s -> %v returned %d: %s", dimension, value, resp.StatusCode, body)
		}

		return &httpResponse{body: body, statusCode: resp.StatusCode, headers: resp.Header}, nil
	}
}

// checker returns a generic checker that trusts the last transition's own
// success: since the demo client has no independent way to query "is
// dimension currently value" against an arbitrary API, it treats a
// successful PUT as proof the system accepted the value and lets the
// builder's "_current_combination" bookkeeping do the rest.
func (c *demoClient) checker() func(value any, ctx graph.Context) bool {
	return func(value any, ctx graph.Context) bool {
		if to, ok := ctx["_to_value"]; ok {
			return to == value
		}
		return true
	}
}
