package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/sealed-vitae/internal/config"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/internal/utils"
	"github.com/MKhiriev/sealed-vitae/models"
)

// cacheBusterParam is appended to every request so that CDNs and browsers
// never serve a stale bundle.
const cacheBusterParam = "t"

const traceIDHeader = "X-Trace-ID"

type httpBundleSource struct {
	client *utils.HTTPClient

	bundleURL string
	publicURL string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPBundleSource constructs an HTTP implementation of [BundleSource].
// Server errors (5xx) and 429 responses are retried cfg.RetryCount times.
func NewHTTPBundleSource(cfg config.Adapter, log *logger.Logger) (BundleSource, error) {
	if err := validateURL(cfg.BundleURL); err != nil {
		return nil, err
	}
	if cfg.PublicURL != "" {
		if err := validateURL(cfg.PublicURL); err != nil {
			return nil, err
		}
	}

	client := utils.NewHTTPClient(
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithRetries(cfg.RetryCount),
		utils.WithHeader("Accept", "application/json"),
	)

	return &httpBundleSource{
		client:    client,
		bundleURL: cfg.BundleURL,
		publicURL: cfg.PublicURL,
		now:       time.Now,
		logger:    log,
	}, nil
}

func (h *httpBundleSource) FetchBundle(ctx context.Context) ([]string, error) {
	var entries []models.BundleEntry
	if err := h.getJSON(ctx, h.bundleURL, &entries); err != nil {
		return nil, fmt.Errorf("fetch bundle: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpBundleSource.FetchBundle").
		Int("payloads", len(entries)).
		Msg("bundle fetched")

	return models.PayloadsFromEntries(entries), nil
}

func (h *httpBundleSource) FetchPublic(ctx context.Context) (models.Record, error) {
	if h.publicURL == "" {
		return models.Record{}, nil
	}

	var record models.Record
	if err := h.getJSON(ctx, h.publicURL, &record); err != nil {
		return models.Record{}, fmt.Errorf("fetch public record: %w", err)
	}

	return record, nil
}

func (h *httpBundleSource) getJSON(ctx context.Context, rawURL string, dst any) error {
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam(cacheBusterParam, strconv.FormatInt(h.now().UnixMilli(), 10))
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		return fmt.Errorf("request %s: %w", rawURL, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}
