package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	resty "resty.dev/v3"

	"github.com/astroget/nasa-explorer/internal/model"
)

// API paths under the api.nasa.gov base URL.
const (
	apodPath    = "/planetary/apod"
	neoFeedPath = "/neo/rest/v1/feed"
	marsPath    = "/mars-photos/api/v1/rovers/{rover}/photos"
)

// StatusError reports a non-2xx response from the API. The upstream status
// code stays available to callers for exit-code reporting.
type StatusError struct {
	Operation string
	Code      int
	Status    string
}

// Error implements the error interface for StatusError.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %s, check the API key and dates", e.Operation, e.Status)
}

// Client queries the NASA REST API. All operations are synchronous and issue
// a single GET each.
type Client struct {
	http   *resty.Client
	apiKey string
	log    zerolog.Logger
}

// NewClient builds a client for the given base URL. The api_key query
// parameter is attached to every request.
func NewClient(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{http: rc, apiKey: apiKey, log: log}
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// Apod fetches the Astronomy Picture of the Day entry for a date. It returns
// the decoded entry and the upstream status code.
func (c *Client) Apod(ctx context.Context, date string) (*model.APOD, int, error) {
	var out model.APOD
	status, err := c.get(ctx, "apod", apodPath, map[string]string{"date": date}, nil, &out)
	if err != nil {
		return nil, status, err
	}
	return &out, status, nil
}

// NeoFeed fetches the near earth object feed for an inclusive date range.
// The API rejects ranges longer than 7 days; that comes back as a status error.
func (c *Client) NeoFeed(ctx context.Context, startDate, endDate string) (*model.NeoFeed, int, error) {
	params := map[string]string{
		"start_date": startDate,
		"end_date":   endDate,
	}
	var out model.NeoFeed
	status, err := c.get(ctx, "neo feed", neoFeedPath, params, nil, &out)
	if err != nil {
		return nil, status, err
	}
	return &out, status, nil
}

// MarsPhotos fetches the photos a rover took on the given earth date.
func (c *Client) MarsPhotos(ctx context.Context, rover, earthDate string) (*model.MarsPhotos, int, error) {
	params := map[string]string{"earth_date": earthDate}
	path := map[string]string{"rover": rover}
	var out model.MarsPhotos
	status, err := c.get(ctx, "mars photos", marsPath, params, path, &out)
	if err != nil {
		return nil, status, err
	}
	return &out, status, nil
}

// get performs one GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, op, path string, query, pathParams map[string]string, out any) (int, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.apiKey).
		SetQueryParams(query).
		SetPathParams(pathParams)

	c.log.Debug().Str("op", op).Str("path", path).Msg("requesting")

	res, err := req.Get(path)
	if err != nil {
		return 0, fmt.Errorf("%s request: %w", op, err)
	}
	if res.IsError() {
		return res.StatusCode(), &StatusError{Operation: op, Code: res.StatusCode(), Status: res.Status()}
	}
	if err := json.Unmarshal(res.Bytes(), out); err != nil {
		return res.StatusCode(), fmt.Errorf("%s: decoding response: %w", op, err)
	}

	c.log.Debug().Str("op", op).Int("status", res.StatusCode()).Msg("response received")
	return res.StatusCode(), nil
}
