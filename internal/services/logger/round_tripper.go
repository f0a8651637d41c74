package logger

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	maxLoggedBody = 512
	// maxReadBody matches the reply cap of the signup client.
	maxReadBody = 64 << 10
)

// RoundTripper logs every outbound call of the signup widget to the subscription API.
type RoundTripper struct {
	Logger *zap.Logger
	Proxy  http.RoundTripper
}

func NewRoundTripper(logger *zap.Logger, proxy http.RoundTripper) *RoundTripper {
	if proxy == nil {
		proxy = http.DefaultTransport
	}
	return &RoundTripper{
		Logger: logger,
		Proxy:  proxy,
	}
}

func (l *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := l.Proxy.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		l.Logger.Warn("waitlist API unreachable",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxReadBody))
	_ = resp.Body.Close()
	if err != nil {
		l.Logger.Error("failed to read waitlist API response",
			zap.String("url", req.URL.String()),
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err),
		)
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	snippet := bodyBytes
	if len(snippet) > maxLoggedBody {
		snippet = snippet[:maxLoggedBody]
	}

	l.Logger.Info("waitlist API call completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.ByteString("body_snippet", snippet),
		zap.Duration("duration", duration),
	)

	return resp, nil
}
