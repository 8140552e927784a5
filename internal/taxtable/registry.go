package taxtable

import (
	"fmt"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"paycheck-engine/internal/model"
)

const defaultTimeout = 2 * time.Second

// Registry resolves the table of a tax year. With a URL it fetches
// GET {url}/tax-tables/{year} once per year and caches the result; any
// fetch failure falls back to the compiled-in table.
type Registry struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
	cache   sync.Map
	logger  *zap.Logger
}

type Option func(*Registry)

// WithDial replaces the client's dialer, e.g. with an in-memory listener.
func WithDial(dial fasthttp.DialFunc) Option {
	return func(r *Registry) {
		r.client.Dial = dial
	}
}

func NewRegistry(url string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Registry {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		url:     strings.TrimRight(url, "/"),
		timeout: timeout,
		logger:  logger,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			MaxIdleConnDuration: 90 * time.Second,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the table for year. fallback is true when a configured remote
// service failed and the compiled-in table was used instead.
func (r *Registry) Get(year int) (table *YearTable, fallback bool, err error) {
	if r.url == "" {
		t, ok := Builtin(year)
		if !ok {
			return nil, false, model.Invalid("tax_year", "no tax table for %d", year)
		}
		return t, false, nil
	}

	if cached, ok := r.cache.Load(year); ok {
		return cached.(*YearTable), false, nil
	}

	t, err := r.fetch(year)
	if err == nil {
		r.cache.Store(year, t)
		return t, false, nil
	}

	r.logger.Warn("tax table fetch failed",
		zap.Int("year", year),
		zap.String("url", r.url),
		zap.Error(err))
	if b, ok := Builtin(year); ok {
		return b, true, nil
	}
	return nil, false, fmt.Errorf("%w: no tax table for %d: %v", model.ErrInvalidConfiguration, year, err)
}

func (r *Registry) fetch(year int) (*YearTable, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/tax-tables/%d", r.url, year))
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := r.client.DoTimeout(req, resp, r.timeout); err != nil {
		return nil, fmt.Errorf("get tax table: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("get tax table: status %d", resp.StatusCode())
	}

	var t YearTable
	if err := json.Unmarshal(resp.Body(), &t); err != nil {
		return nil, fmt.Errorf("decode tax table: %w", err)
	}
	if t.Year != year {
		return nil, fmt.Errorf("tax table for %d returned year %d", year, t.Year)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
