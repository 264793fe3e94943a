package spacex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dkrasnovs/launchboard/internal/common"
)

// HTTPClient talks to the SpaceX REST API. Launch endpoints live under /v5,
// rocket endpoints under /v4. No retries: every failure is terminal for the
// call and must be re-triggered by the caller.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL (without version
// prefix, e.g. "https://api.spacexdata.com"). A zero timeout means no
// timeout, matching the behavior of the dashboard this replaces.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type queryOptions struct {
	Sort  map[string]string `json:"sort"`
	Limit int               `json:"limit"`
}

type queryRequest struct {
	Query   map[string]any `json:"query"`
	Options queryOptions   `json:"options"`
}

type queryResponse struct {
	Docs []LaunchDoc `json:"docs"`
}

func (c *HTTPClient) QueryLaunches(ctx context.Context, limit int) ([]LaunchDoc, error) {
	body, err := json.Marshal(queryRequest{
		Query: map[string]any{},
		Options: queryOptions{
			Sort:  map[string]string{"date_utc": "desc"},
			Limit: limit,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v5/launches/query", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp queryResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Docs, nil
}

func (c *HTTPClient) ListRockets(ctx context.Context) ([]RocketDoc, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v4/rockets", nil)
	if err != nil {
		return nil, err
	}

	var rockets []RocketDoc
	if err := c.do(req, &rockets); err != nil {
		return nil, err
	}
	return rockets, nil
}

func (c *HTTPClient) GetLaunch(ctx context.Context, id string) (*LaunchDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v5/launches/"+id, nil)
	if err != nil {
		return nil, err
	}

	detail := &LaunchDetail{}
	if err := c.do(req, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (c *HTTPClient) GetRocket(ctx context.Context, id string) (*RocketDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v4/rockets/"+id, nil)
	if err != nil {
		return nil, err
	}

	detail := &RocketDetail{}
	if err := c.do(req, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

// do executes the request and decodes a JSON response into out. Transport
// errors and non-2xx statuses both map to common.ErrFetchFailed.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: %s", common.ErrFetchFailed, resp.Status, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", common.ErrFetchFailed, err)
	}
	return nil
}
