// Package tzlookup resolves the timezone the clock is displayed in.
//
// Resolution happens once. Callers keep showing UTC until a Resolver
// succeeds and keep UTC for good if it fails.
package tzlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	_ "time/tzdata" // named zones must resolve on hosts without a zoneinfo database

	"golang.org/x/oauth2"

	"github.com/Tiliavir/dial/internal/config"
)

// Resolver yields the display location.
type Resolver interface {
	Resolve(ctx context.Context) (*time.Location, error)
}

// Fixed resolves to a location known up front.
type Fixed struct {
	Location *time.Location
}

func (f Fixed) Resolve(context.Context) (*time.Location, error) {
	if f.Location == nil {
		return time.UTC, nil
	}
	return f.Location, nil
}

// Named resolves an IANA zone name such as "Europe/Berlin".
type Named string

func (n Named) Resolve(context.Context) (*time.Location, error) {
	loc, err := time.LoadLocation(string(n))
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", string(n), err)
	}
	return loc, nil
}

// Client looks the timezone up over HTTP. The endpoint must answer with a
// JSON object carrying a "timezone" field, as ipinfo.io does.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a lookup client. A non-empty token is sent as an OAuth2
// bearer token; a base HTTP client may be supplied in ctx under oauth2.HTTPClient.
func NewClient(ctx context.Context, endpoint, token string, timeout time.Duration) *Client {
	var hc *http.Client
	if token != "" {
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
	} else if base, ok := ctx.Value(oauth2.HTTPClient).(*http.Client); ok {
		copied := *base
		hc = &copied
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = timeout
	return &Client{httpClient: hc, endpoint: endpoint}
}

type lookupResponse struct {
	Timezone string `json:"timezone"`
}

// Resolve fetches the endpoint once and loads the returned zone.
func (c *Client) Resolve(ctx context.Context) (*time.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timezone lookup failed: %w", err)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timezone lookup error %d: %s", resp.StatusCode, string(body))
	}

	var lr lookupResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("decoding timezone response: %w", err)
	}
	if lr.Timezone == "" {
		return nil, fmt.Errorf("timezone lookup returned no timezone")
	}
	return Named(lr.Timezone).Resolve(ctx)
}

// FromConfig picks the resolver for cfg.Mode. An explicit override (from a
// --timezone flag) takes precedence: "utc", "local" or an IANA name.
func FromConfig(ctx context.Context, cfg config.TimezoneConfig, override string) (Resolver, error) {
	mode, name := cfg.Mode, cfg.Name
	switch override {
	case "":
	case config.ModeUTC, config.ModeLocal, config.ModeAuto:
		mode = override
	default:
		mode, name = config.ModeName, override
	}

	switch mode {
	case config.ModeUTC:
		return Fixed{Location: time.UTC}, nil
	case config.ModeLocal:
		return Fixed{Location: time.Local}, nil
	case config.ModeName:
		return Named(name), nil
	case config.ModeAuto:
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = config.DefaultEndpoint
		}
		return NewClient(ctx, endpoint, cfg.Token, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown timezone mode %q", mode)
	}
}
