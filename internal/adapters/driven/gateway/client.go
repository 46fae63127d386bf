package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lineage-cli/internal/logger"
)

// maxBodyBytes bounds the size of a lineage response.
const maxBodyBytes = 32 << 20

// Ensure Gateway implements the interface.
var _ driven.LineageGateway = (*Gateway)(nil)

// Gateway fetches lineage family trees from the lineage tracker service.
type Gateway struct {
	endpoint      *url.URL
	timeout       time.Duration
	tokenProvider driven.TokenProvider
	limiter       *rate.Limiter
	base          http.RoundTripper
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTransport replaces the base HTTP transport. Used by tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(g *Gateway) {
		g.base = rt
	}
}

// New creates a gateway for the given settings.
// tokenProvider may be nil for unauthenticated services.
func New(settings domain.GatewaySettings, tokenProvider driven.TokenProvider, opts ...Option) (*Gateway, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: gateway base url is not configured", domain.ErrInvalidInput)
	}

	endpoint, err := url.Parse(strings.TrimRight(settings.BaseURL, "/") + "/" + strings.TrimLeft(settings.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: gateway url: %w", domain.ErrInvalidInput, err)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("%w: gateway url %q must be absolute", domain.ErrInvalidInput, settings.BaseURL)
	}

	g := &Gateway{
		endpoint:      endpoint,
		timeout:       settings.Timeout,
		tokenProvider: tokenProvider,
		base:          http.DefaultTransport,
	}
	if g.timeout <= 0 {
		g.timeout = domain.DefaultGatewayTimeout
	}
	if settings.RatePerSecond > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(settings.RatePerSecond), 1)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Endpoint returns the family tree endpoint URL.
func (g *Gateway) Endpoint() string {
	return g.endpoint.String()
}

// FetchLineage requests the family tree of a lineage id.
func (g *Gateway) FetchLineage(ctx context.Context, lineageID string) (domain.RawPayload, error) {
	fail := func(status int, err error) (domain.RawPayload, error) {
		return nil, &domain.FetchError{LineageID: lineageID, StatusCode: status, Err: err}
	}

	if _, err := uuid.Parse(lineageID); err != nil {
		return fail(0, fmt.Errorf("%w: lineage id must be a UUID", domain.ErrInvalidInput))
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return fail(0, fmt.Errorf("%w: rate limit wait: %w", domain.ErrFetchFailed, err))
		}
	}

	reqURL := *g.endpoint
	query := reqURL.Query()
	query.Set("uuid", lineageID)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fail(0, fmt.Errorf("%w: create request: %w", domain.ErrFetchFailed, err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client(ctx).Do(req)
	if err != nil {
		logger.Debug("GET %s failed: %v", reqURL.String(), err)
		return fail(0, classifyTransportError(err))
	}
	defer resp.Body.Close()

	logger.Debug("GET %s -> %d", reqURL.String(), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		//nolint:errcheck // Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fail(resp.StatusCode, errorForStatus(resp.StatusCode))
	}

	var payload domain.RawPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("%w: decode response: %w", domain.ErrFetchFailed, err))
	}
	if payload == nil {
		return fail(resp.StatusCode, fmt.Errorf("%w: empty response body", domain.ErrFetchFailed))
	}
	return payload, nil
}

// client builds the HTTP client for one request. Unauthenticated gateways
// use the base transport directly; otherwise an oauth2.Transport attaches
// the bearer credential.
func (g *Gateway) client(ctx context.Context) *http.Client {
	transport := g.base
	if g.tokenProvider != nil && g.tokenProvider.AuthMethod() != domain.AuthMethodNone {
		transport = &oauth2.Transport{
			Source: &providerTokenSource{ctx: ctx, provider: g.tokenProvider},
			Base:   g.base,
		}
	}
	return &http.Client{Transport: transport, Timeout: g.timeout}
}
