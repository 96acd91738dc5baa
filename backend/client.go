package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"storefront/errors"
	"storefront/services/logger"
)

// envelope là khung phản hồi chuẩn của backend: {code, mess, data}
type envelope struct {
	Code int             `json:"code"`
	Mess string          `json:"mess"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Client gọi backend đặt phòng qua HTTP.
// Token của người dùng được chuyển tiếp nguyên vẹn, engine không tự xác thực.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

type ClientOptions struct {
	BaseURL string
	Timeout time.Duration
	Logger  logger.Logger
}

// NewClient tạo client gọi backend
func NewClient(opts ClientOptions) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &Client{
		baseURL: opts.BaseURL,
		http:    &http.Client{Timeout: opts.Timeout},
		logger:  opts.Logger,
	}
}

// do gửi request và giải mã phần data của envelope vào out (nếu out != nil)
func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeBackend, "Không kết nối được máy chủ đặt phòng", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.NewAppError(errors.ErrCodeBackend, "Phản hồi máy chủ không hợp lệ", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewAppError(errors.ErrCodeNotFound, env.Mess, nil)
	}
	if resp.StatusCode != http.StatusOK || env.Code != 1 {
		c.logger.Error("backend %s %s: status=%d code=%d mess=%s", method, path, resp.StatusCode, env.Code, env.Mess)
		return errors.NewAppError(errors.ErrCodeBackend, env.Mess, nil)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.NewAppError(errors.ErrCodeBackend, "Phản hồi máy chủ không hợp lệ", err)
		}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path, token string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, token, in, out)
}

func (c *Client) get(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) put(ctx context.Context, path, token string, in, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, token, in, out)
}
