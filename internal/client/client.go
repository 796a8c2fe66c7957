package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/models"
	"github.com/sony/gobreaker"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - клиент API QR-кодов заказов. Повторов не делает.
type Client struct {
	httpClient HTTPClient
	breaker    *gobreaker.CircuitBreaker
}

// NewClient - breaker может быть nil
func NewClient(client HTTPClient, breaker *gobreaker.CircuitBreaker) *Client {
	return &Client{
		httpClient: client,
		breaker:    breaker,
	}
}

// NewHTTPClient - HTTP клиент с ограничением по времени на каждую фазу запроса
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext
	transport.TLSHandshakeTimeout = timeout
	transport.ResponseHeaderTimeout = timeout
	return &http.Client{
		Transport: transport,
		// соединение, отправка и чтение ответа
		Timeout: 3 * timeout,
	}
}

// LookupByToken - получение заказа по токену
func (c *Client) LookupByToken(ctx context.Context, baseURL string, token string) (*models.OrderSnapshot, error) {
	var resp LookupResponse
	err := c.execute(func() error {
		return c.post(ctx, baseURL, EndpointInfoByToken, token, &resp)
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIRejectedError{Message: orDefault(resp.Message, "unknown error")}
	}
	if resp.Order == nil {
		return nil, fmt.Errorf("%w: order is missing", ErrMalformedResponse)
	}
	snapshot := resp.Order.Snapshot()
	return &snapshot, nil
}

// IssueByToken - выдача заказа. false - штатный отказ сервера, не ошибка.
func (c *Client) IssueByToken(ctx context.Context, baseURL string, token string) (bool, error) {
	var resp IssueResponse
	err := c.execute(func() error {
		return c.post(ctx, baseURL, EndpointValidateByToken, token, &resp)
	})
	if err != nil {
		return false, err
	}
	if !resp.Success {
		logger.Warn("Order service rejected issue:", orDefault(resp.Message, "unknown error"))
	}
	return resp.Success, nil
}

// Probe - проверка доступности сервера. Любой код 200..499 означает, что сервер отвечает.
func (c *Client) Probe(ctx context.Context, baseURL string) (int, error) {
	url := strings.TrimRight(baseURL, "/") + apiPrefix + EndpointInfoByToken
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	logger.Info("Probe response:", url, resp.StatusCode)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, &HTTPError{StatusCode: resp.StatusCode}
	}
	return resp.StatusCode, nil
}

func (c *Client) post(ctx context.Context, baseURL string, endpoint string, token string, out interface{}) error {
	body, err := json.Marshal(TokenRequest{Token: token})
	if err != nil {
		return err
	}
	url := strings.TrimRight(baseURL, "/") + apiPrefix + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("POST", url, "token", models.MaskToken(token))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	logger.Info("HTTP response:", endpoint, resp.StatusCode)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}
	logger.Debug("Response body size:", len(data))
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
