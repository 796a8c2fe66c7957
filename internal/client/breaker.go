package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/sony/gobreaker"
)

// NewBreaker - размыкатель для сервиса заказов. threshold == 0 - без размыкателя.
func NewBreaker(name string, threshold uint32, timeout time.Duration) *gobreaker.CircuitBreaker {
	if threshold == 0 {
		return nil
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: timeout, // через timeout пробуем подключиться снова
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: IsServiceAlive,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infof("Circuit Breaker '%s': %s -> %s", name, from, to)
		},
	})
}

// IsServiceAlive - ответ считается признаком живого сервиса, если это не ошибка
// транспорта и не 5xx. Отказы по бизнес-логике сервис не "ломают".
func IsServiceAlive(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode >= http.StatusInternalServerError {
		return false
	}
	return true
}

func (c *Client) execute(call func() error) error {
	if c.breaker == nil {
		return call()
	}
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, call()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &NetworkError{Err: fmt.Errorf("%w: %w", ErrServiceUnavailable, err)}
	}
	return err
}
