package httputil

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingTransport logs every outgoing request at debug level.
type LoggingTransport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.Debug("HTTP request failed",
			"method", req.Method,
			"host", req.URL.Host,
			"path", req.URL.Path,
			"elapsed", elapsed,
			"error", err,
		)
		return nil, err
	}

	logger.Debug("HTTP request",
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"elapsed", elapsed,
	)
	return resp, nil
}

// NewClient returns an http.Client that logs through LoggingTransport.
// No client-level timeout is set; callers bound requests with a context.
func NewClient(logger *slog.Logger) *http.Client {
	return &http.Client{
		Transport: &LoggingTransport{Logger: logger},
	}
}
