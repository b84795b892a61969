package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const DefaultBaseURL = "http://localhost:8080/api"

// Config передаётся клиенту явно при создании.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Headers    http.Header
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
	logger     *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := &Client{
		httpClient: httpClient,
		headers:    http.Header{"Content-Type": []string{"application/json"}},
		logger:     logger,
	}
	for k, v := range cfg.Headers {
		c.headers[k] = append([]string(nil), v...)
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	c.SetBaseURL(base)
	return c
}

// SetBaseURL меняет адрес бэкенда; один завершающий слэш отбрасывается.
// Вызывать только при старте, до первых запросов: поле не защищено мьютексом.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimSuffix(url, "/")
}

func (c *Client) BaseURL() string { return c.baseURL }

// RequestOption дополняет заголовки конкретного запроса.
type RequestOption func(h http.Header)

func WithHeader(key, value string) RequestOption {
	return func(h http.Header) { h.Set(key, value) }
}

// Do выполняет запрос к base+endpoint. body кодируется в JSON, ответ декодируется в out.
// На 204 и при out == nil тело ответа не разбирается.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out interface{}, opts ...RequestOption) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("не удалось закодировать тело запроса %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}
	for _, opt := range opts {
		opt(req.Header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("запрос к API не выполнен",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: errorMessage(resp)}
		c.logger.Warn("API вернул ошибку",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return &TransportError{Method: method, Endpoint: endpoint, Err: fmt.Errorf("не удалось разобрать ответ: %w", err)}
	}
	return nil
}

type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorMessage достаёт текст ошибки: поле error, затем message,
// затем текст статуса, затем «HTTP <код>».
func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(resp.Body)
	var payload errorPayload
	if len(bytes.TrimSpace(raw)) > 0 && json.Unmarshal(raw, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	// resp.Status — «503 Service Unavailable»; фраза сервера важнее стандартной.
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))); text != "" {
		return text
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
