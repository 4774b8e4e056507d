package routing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 16 << 20

// NewHTTPClient returns an HTTP client with OpenTelemetry client spans and the given
// per-request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// Metrics holds the upstream call metrics.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the upstream metrics with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Duration of calls to third-party routing services.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "status"},
		),
	}
	if err := reg.Register(m.requestDuration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.requestDuration = are.ExistingCollector.(*prometheus.HistogramVec)
	}
	return m, nil
}

func (m *Metrics) observe(service, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(service, status).Observe(d.Seconds())
}

// upstream executes requests against one service with retries and metrics.
type upstream struct {
	service    string
	client     *http.Client
	maxRetries int
	metrics    *Metrics
	logger     *zap.Logger
	// newBackOff is replaced in tests to avoid real sleeps.
	newBackOff func() backoff.BackOff
}

func newUpstream(service string, client *http.Client, maxRetries int, metrics *Metrics, logger *zap.Logger) *upstream {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &upstream{
		service:    service,
		client:     client,
		maxRetries: max(0, maxRetries),
		metrics:    metrics,
		logger:     logger,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 250 * time.Millisecond
			b.MaxInterval = 5 * time.Second
			return b
		},
	}
}

// fetch sends the request built by newReq until it gets a 2xx answer, a non-retryable
// status or runs out of attempts. 429, 5xx and transport failures are retried.
func (u *upstream) fetch(ctx context.Context, newReq func(context.Context) (*http.Request, error)) ([]byte, error) {
	attempt := 0
	op := func() ([]byte, error) {
		attempt++
		req, err := newReq(ctx)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		start := time.Now()
		resp, err := u.client.Do(req)
		if err != nil {
			u.metrics.observe(u.service, "error", time.Since(start))
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			u.logger.Warn("upstream request failed",
				zap.String("service", u.service), zap.Int("attempt", attempt), zap.Error(err))
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		u.metrics.observe(u.service, strconv.Itoa(resp.StatusCode), time.Since(start))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			serr := &StatusError{Service: u.service, StatusCode: resp.StatusCode, Body: body}
			if !serr.Retryable() {
				return nil, backoff.Permanent(serr)
			}
			u.logger.Warn("upstream returned retryable status",
				zap.String("service", u.service), zap.Int("attempt", attempt), zap.Int("status", resp.StatusCode))
			return nil, serr
		}
		return body, nil
	}

	body, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(u.newBackOff()),
		backoff.WithMaxTries(uint(u.maxRetries+1)),
	)
	if err != nil {
		return nil, u.classify(err)
	}
	return body, nil
}

// classify maps transport and status failures onto the package sentinel errors.
func (u *upstream) classify(err error) error {
	if errors.Is(err, ErrUpstream) {
		return err
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s: %w", u.service, ErrUpstreamTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%s: %w: %v", u.service, ErrUpstream, err)
}
