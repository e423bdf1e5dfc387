// Package upstream is the client for the remote warehouse-management REST
// API. Every call is bearer-token authenticated, scoped to an explicit
// company id via the X-Company-ID header, and list responses are normalized
// out of their JSON-LD/Hydra envelope before decoding.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/omniful/wms-dashboard/internal/auth"
	"github.com/omniful/wms-dashboard/internal/hydra"
	"github.com/omniful/wms-dashboard/internal/models"
)

// HeaderCompanyID carries the tenant scope on every request.
const HeaderCompanyID = "X-Company-ID"

// Client for the warehouse-management API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenSource
	breaker    *gobreaker.CircuitBreaker
}

// NewClient creates a client for the given base URL. The token source is
// consulted per request; a missing session aborts before anything is sent.
func NewClient(baseURL string, timeout time.Duration, tokens auth.TokenSource) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "warehouse-api",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// doRequest performs one API call. On 2xx the body is decoded into result
// (when non-nil); non-2xx responses become APIError values and transport
// failures trip the circuit breaker.
func (c *Client) doRequest(ctx context.Context, companyID, method, path string, query url.Values, body, result any) error {
	if companyID == "" {
		return errors.New("company id is required")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("request aborted: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(HeaderCompanyID, companyID)
	req.Header.Set("Accept", "application/ld+json, application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	respAny, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		if resp.StatusCode >= 500 {
			return nil, newAPIError(resp.StatusCode, payload)
		}
		return &response{status: resp.StatusCode, contentType: resp.Header.Get("Content-Type"), body: payload}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: circuit open for %s", ErrUnavailable, c.baseURL)
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp := respAny.(*response)

	if resp.status < 200 || resp.status >= 300 {
		return newAPIError(resp.status, resp.body)
	}
	if result == nil || len(resp.body) == 0 {
		return nil
	}
	if ct := resp.contentType; ct != "" && !strings.Contains(ct, "json") {
		return fmt.Errorf("%w: content type %q", ErrUnexpectedResponse, ct)
	}
	if err := json.Unmarshal(resp.body, result); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

type response struct {
	status      int
	contentType string
	body        []byte
}

// list fetches a collection endpoint and returns the canonical envelope.
func (c *Client) list(ctx context.Context, companyID, path string, query url.Values) (hydra.Collection, error) {
	var col hydra.Collection
	if err := c.doRequest(ctx, companyID, http.MethodGet, path, query, nil, &col); err != nil {
		return hydra.Collection{}, err
	}
	return col, nil
}

func listQuery(f models.ListFilter) url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("itemsPerPage", strconv.Itoa(f.PageSize))
	}
	return q
}
