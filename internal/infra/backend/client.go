// Package backend is the HTTP adapter to the HomEat REST backend. Every
// operation issues exactly one request; failures are returned as-is.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"homeat/config"
	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/errors"

	"go.uber.org/fx"
)

// StatusError is returned for every non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s :: %s", e.StatusCode, e.Status, e.Body)
}

// StatusCode extracts the HTTP status of a backend failure.
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}

	return 0, false
}

// Client talks to {baseURL}/api for recipes and images, and to
// {baseURL}/{likeResource} for the like counter.
type Client struct {
	baseURL      string
	likeResource string
	httpClient   *http.Client
	logger       *slog.Logger
}

// Params holds dependencies for Client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the client from the backend config section.
func New(params Params) *Client {
	cfg := params.Config.Backend

	return NewClient(cfg.BaseURL, cfg.LikeResource, &http.Client{Timeout: cfg.Timeout}, params.Logger)
}

// NewClient builds a client against an explicit base URL.
func NewClient(baseURL, likeResource string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		likeResource: strings.Trim(likeResource, "/"),
		httpClient:   httpClient,
		logger:       logger,
	}
}

func (c *Client) apiURL(format string, args ...any) string {
	return c.baseURL + "/api" + fmt.Sprintf(format, args...)
}

// doJSON marshals in (when non-nil) as the request body.
func (c *Client) doJSON(ctx context.Context, method, url string, in, out any) (bool, error) {
	var body io.Reader
	contentType := ""
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return false, errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	return c.do(ctx, method, url, body, contentType, out)
}

// do sends one request. It decodes the response into out only when the
// response is declared as JSON, and reports whether it did.
func (c *Client) do(ctx context.Context, method, url string, body io.Reader, contentType string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrapf(err, "%s %s", method, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		logger.Debug("Backend returned non-success status",
			slog.String("method", method),
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)

		return false, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Body:       string(text),
		}
	}

	if out == nil || !isJSON(resp.Header.Get("Content-Type")) {
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}

		return false, errors.Wrapf(err, "decode %s %s", method, url)
	}

	return true, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// statusText strips the numeric prefix net/http puts in resp.Status.
func statusText(resp *http.Response) string {
	if text, ok := strings.CutPrefix(resp.Status, fmt.Sprintf("%d ", resp.StatusCode)); ok {
		return text
	}
	if resp.Status != "" {
		return resp.Status
	}

	return http.StatusText(resp.StatusCode)
}
