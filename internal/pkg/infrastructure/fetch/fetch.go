package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("dcat-mapper/fetch")

var ErrUnexpectedStatus = errors.New("unexpected response status")

//Get retrieves a raw record over http
func Get(ctx context.Context, url string) ([]byte, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-record")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	logger := logging.GetFromContext(ctx)

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("failed to create request: %w", err)
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to send request: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error().Str("url", url).Int("status", resp.StatusCode).Msg("request failed")
		err = fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
		return nil, err
	}

	return body, nil
}

//Load reads a raw record from a http(s) url, a file, or from stdin when the
//location is empty or "-"
func Load(ctx context.Context, location string, stdin io.Reader) ([]byte, error) {
	switch {
	case location == "" || location == "-":
		return io.ReadAll(stdin)
	case strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://"):
		return Get(ctx, location)
	default:
		b, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", location, err)
		}
		return b, nil
	}
}
