package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/talx-hub/nexus-sdk/internal/config"
	"github.com/talx-hub/nexus-sdk/internal/model"
	"github.com/talx-hub/nexus-sdk/internal/utils/logger"
	"github.com/talx-hub/nexus-sdk/serviceerrs"
)

const MsgResponseTooLarge = "The API response is too large."

type CredentialSource interface {
	Resolve(class model.KeyClass) (config.Target, error)
}

type Request struct {
	Body     any
	Query    url.Values
	KeyClass model.KeyClass
	Method   string
	Path     string
}

type HTTPClient struct {
	client  *http.Client
	creds   CredentialSource
	logger  *slog.Logger
	maxBody int64
}

func New(creds CredentialSource, client *http.Client, log *slog.Logger) *HTTPClient {
	if client == nil {
		client = &http.Client{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &HTTPClient{
		client:  client,
		creds:   creds,
		logger:  log,
		maxBody: model.MaxResponseBody,
	}
}

// Do sends one request and decodes a successful response into out.
// out may be nil when the body is not needed.
func (c *HTTPClient) Do(ctx context.Context, req Request, out any) error {
	target, err := c.creds.Resolve(req.KeyClass)
	if err != nil {
		return err //nolint: wrapcheck // configuration errors are returned as is
	}

	var body io.Reader = http.NoBody
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return serviceerrs.NewValidationError(
				fmt.Sprintf("failed to encode request body: %v", err))
		}
		body = bytes.NewReader(raw)
	}

	tCtx, cancel := context.WithTimeout(ctx, target.Timeout)
	defer cancel()
	request, err := http.NewRequestWithContext(
		tCtx, req.Method, buildURL(target.BaseURL, req.Path, req.Query), body)
	if err != nil {
		return serviceerrs.NewTransportError(
			fmt.Errorf("failed to create the request: %w", err))
	}
	request.Header.Set(model.HeaderSharedSecret, target.APIKey)
	request.Header.Set(model.HeaderContentType, model.MIMEApplicationJSON)

	log := logger.FromContext(ctx, c.logger)
	start := time.Now()
	resp, err := c.client.Do(request)
	if err != nil {
		log.LogAttrs(ctx, slog.LevelDebug, "nexus request failed",
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.Duration("elapsed", time.Since(start)),
		)
		return serviceerrs.NewTransportError(err)
	}
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.LogAttrs(
				ctx,
				slog.LevelError,
				"failed to close the response body",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()
	log.LogAttrs(ctx, slog.LevelDebug, "nexus request completed",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)
	if err != nil {
		return serviceerrs.NewTransportError(
			fmt.Errorf("failed to read the body: %w", err))
	}
	if int64(len(respBody)) > c.maxBody {
		return serviceerrs.NewServerError(MsgResponseTooLarge, resp.StatusCode)
	}

	return handleResponse(resp.StatusCode, respBody, out)
}

func handleResponse(status int, body []byte, out any) error {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return Normalize(status, body)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return serviceerrs.NewServerError("Failed to decode the API response.", status)
	}
	return nil
}

func buildURL(baseURL, path string, query url.Values) string {
	u := strings.TrimSuffix(baseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
