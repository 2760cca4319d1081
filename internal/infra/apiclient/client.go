// Package apiclient is the single entry point to the external order server.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"fieldservice/config"
	deliverycontext "fieldservice/internal/delivery/context"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/entity"
	"fieldservice/internal/domain/service"

	"github.com/pkg/errors"
)

// maxErrorBody bounds how much of a failed response is read for its detail.
const maxErrorBody = 64 << 10

// APIError is a non-2xx answer from the order server.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return http.StatusText(e.StatusCode) + ": " + e.Detail
	}

	return http.StatusText(e.StatusCode)
}

// Client sends every request to the order server. Requests are sent once:
// there is no retry, cache or queue.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.RWMutex
	token string
}

var (
	_ service.AuthGateway  = (*Client)(nil)
	_ service.UserGateway  = (*Client)(nil)
	_ service.OrderGateway = (*Client)(nil)
)

// NewClient creates a client for baseURL, e.g. http://127.0.0.1:8000/api.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid order server base URL %q", baseURL)
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// New creates the client from config and attaches the stored session's bearer, if any.
func New(cfg *config.Config, store service.SessionStore, logger *slog.Logger) (*Client, error) {
	client, err := NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	if err != nil {
		return nil, err
	}

	sess, err := store.Read()
	if err != nil {
		logger.Warn("Failed to read stored session", slog.Any("error", err))
	} else if sess.IsAuthenticated() {
		client.SetAuth(sess.AccessToken)
	}

	return client, nil
}

// BaseURL returns the order server address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetAuth attaches "Authorization: Bearer <token>" to later requests whose
// context carries no token of its own. An empty token detaches it.
func (c *Client) SetAuth(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

// ClearAuth detaches the bearer header.
func (c *Client) ClearAuth() {
	c.SetAuth("")
}

// HasAuth reports whether a bearer header is attached.
func (c *Client) HasAuth() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token != ""
}

// GetJSON decodes the JSON response of GET path into out (out may be nil).
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp, out)
}

// PostJSON sends body as JSON (no body when nil) and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, http.MethodPost, path, reader, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp, out)
}

// PostMultipart sends a multipart/form-data body with text fields and file parts.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string]*entity.Upload, out any) error {
	body, contentType, err := encodeMultipart(fields, files)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, path, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeJSON(resp, out)
}

// GetBlob downloads a binary response. The filename comes from Content-Disposition.
func (c *Client) GetBlob(ctx context.Context, path string) (*entity.Document, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(0, "", errors.Wrap(err, "read response body"))
	}

	return &entity.Document{
		Filename:    filenameFrom(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token := deliverycontext.GetAccessToken(ctx)
	if token == "" {
		c.mu.RLock()
		token = c.token
		c.mu.RUnlock()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Order server unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewUpstreamError(0, "", errors.WithStack(err))
	}

	logger.Debug("Order server request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: readDetail(resp.Body)}

		return nil, domainerrors.NewUpstreamError(apiErr.StatusCode, apiErr.Detail, apiErr)
	}

	return resp, nil
}

func decodeJSON(resp *http.Response, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return domainerrors.NewUpstreamError(0, "", errors.Wrap(err, "decode response body"))
	}

	return nil
}

// readDetail extracts the server's {"detail": ...} message. Validation errors
// come back as {"field": ["message"]} and are flattened.
func readDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}

	if detail, ok := payload["detail"].(string); ok {
		return detail
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		switch v := payload[k].(type) {
		case string:
			parts = append(parts, k+": "+v)
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					parts = append(parts, k+": "+s)
				}
			}
		}
	}

	return strings.Join(parts, "; ")
}

func encodeMultipart(fields map[string]string, files map[string]*entity.Upload) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, name := range sortedKeys(fields) {
		if err := writer.WriteField(name, fields[name]); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", name)
		}
	}

	for _, name := range sortedKeys(files) {
		upload := files[name]
		if upload.IsEmpty() {
			continue
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
			"name":     name,
			"filename": uploadName(name, upload),
		}))
		contentType := upload.ContentType
		if contentType == "" {
			contentType = http.DetectContentType(upload.Data)
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", errors.Wrapf(err, "create file part %s", name)
		}
		if _, err := part.Write(upload.Data); err != nil {
			return nil, "", errors.Wrapf(err, "write file part %s", name)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart body")
	}

	return &buf, writer.FormDataContentType(), nil
}

func uploadName(field string, upload *entity.Upload) string {
	if upload.Filename != "" {
		return upload.Filename
	}

	return field
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func filenameFrom(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}

	return params["filename"]
}
