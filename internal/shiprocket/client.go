package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/CalvinKoushik/ecom-backend/internal/config"
	"github.com/CalvinKoushik/ecom-backend/pkg/errors"
)

type Client struct {
	baseURL    string
	email      string
	password   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Shiprocket REST client
func NewClient(cfg config.ShiprocketConfig, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		email:    cfg.Email,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// LoginRequest is the body of the auth endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse holds the part of the auth response we use
type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the configured credentials for a bearer token
func (c *Client) Login(ctx context.Context) (string, error) {
	status, body, err := c.post(ctx, "/v1/external/auth/login", "", LoginRequest{
		Email:    c.email,
		Password: c.password,
	})
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", fmt.Errorf("login rejected: status %d, body: %s", status, string(body))
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal login response: %w", err)
	}
	if loginResp.Token == "" {
		return "", fmt.Errorf("login response has no token")
	}

	return loginResp.Token, nil
}

// CreateShipment creates an adhoc order and returns the provider's response body
func (c *Client) CreateShipment(ctx context.Context, token string, payload *ShipmentPayload) (json.RawMessage, error) {
	status, body, err := c.post(ctx, "/v1/external/orders/create/adhoc", token, payload)
	if err != nil {
		return nil, &errors.ProviderError{Err: err}
	}
	if status < 200 || status > 299 {
		c.logger.Warn("Shiprocket rejected shipment",
			zap.String("order_id", payload.OrderID),
			zap.Int("status", status),
			zap.ByteString("body", body),
		)
		return nil, &errors.ProviderError{StatusCode: status, Body: body}
	}

	return json.RawMessage(body), nil
}

func (c *Client) post(ctx context.Context, path, token string, payload interface{}) (int, []byte, error) {
	url := c.baseURL + path

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, body, nil
}
