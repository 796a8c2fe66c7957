package services

import (
	"context"

	"github.com/denmor86/ya-pickupdesk/internal/models"
)

// OrderClient - доступ к API заказов
type OrderClient interface {
	LookupByToken(ctx context.Context, baseURL string, token string) (*models.OrderSnapshot, error)
	IssueByToken(ctx context.Context, baseURL string, token string) (bool, error)
	Probe(ctx context.Context, baseURL string) (int, error)
}

// BaseURLSource - текущий адрес API. Читается перед каждым запросом.
type BaseURLSource interface {
	BaseURL() string
}

// BaseURLFunc - адаптер функции к BaseURLSource
type BaseURLFunc func() string

func (f BaseURLFunc) BaseURL() string {
	return f()
}
