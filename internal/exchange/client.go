package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// maxResponseBytes caps ticker response bodies. Public ticker endpoints
// return a few KB; the all-tickers endpoints a few hundred KB.
const maxResponseBytes = 8 << 20

// Client is the HTTP client shared by every fetcher. Connections are pooled
// with keep-alive so repeated polls against the same venue reuse sockets.
type Client struct {
	http    *http.Client
	timeout time.Duration
}

// ClientConfig holds tuning parameters for the shared client.
type ClientConfig struct {
	Timeout         time.Duration // per-request bound, defaults to 4s
	MaxIdleConns    int
	IdleConnTimeout time.Duration
}

// NewClient builds the shared Client. Zero-valued config fields take
// defaults matching a few-second ticker poll workload.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 4 * time.Second
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 200
	}
	if cfg.IdleConnTimeout <= 0 {
		cfg.IdleConnTimeout = 120 * time.Second
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: 50,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		timeout: cfg.Timeout,
	}
}

// getJSON issues one GET against rawURL with the given query parameters and
// decodes the JSON body into v. Failures are mapped onto the domain error
// taxonomy: 429 → ErrRateLimited, 5xx/network/timeout → ErrUpstream, other
// non-2xx and undecodable bodies → ErrNoQuote.
func (c *Client) getJSON(ctx context.Context, rawURL string, query url.Values, v any) error {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrNoQuote, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "arbscan/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, rawURL)
	case resp.StatusCode >= 500:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d from %s", domain.ErrUpstream, resp.StatusCode, rawURL)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		// Bad symbols come back as 4xx; an expected miss, not an error.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d from %s", domain.ErrNoQuote, resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", domain.ErrUpstream, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decode body: %v", domain.ErrNoQuote, err)
	}
	return nil
}

// jsonFloat unmarshals a price field that venues encode inconsistently as
// either a JSON number or a quoted string.
type jsonFloat float64

func (f *jsonFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = jsonFloat(v)
	return nil
}

// checkPrice validates an extracted value at the fetcher boundary. Anything
// non-finite or non-positive is "no quote", never a zero price.
func checkPrice(v float64) (float64, error) {
	if !domain.ValidPrice(v) {
		return 0, domain.ErrNoQuote
	}
	return v, nil
}
