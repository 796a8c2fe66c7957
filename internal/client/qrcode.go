package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/denmor86/ya-pickupdesk/internal/models"
	"github.com/shopspring/decimal"
)

// Методы API QR-кодов заказов
const (
	EndpointInfoByToken     = "info-by-token"
	EndpointValidateByToken = "validate-by-token"

	apiPrefix = "/api/qrcode/"
)

// TokenRequest - тело запросов по токену
type TokenRequest struct {
	Token string `json:"token"`
}

// LookupResponse - ответ info-by-token
type LookupResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Order   *OrderPayload `json:"order,omitempty"`
}

// IssueResponse - ответ validate-by-token
type IssueResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OrderPayload - заказ в формате API магазина
type OrderPayload struct {
	OrderNumber  FlexString      `json:"orderNumber"`
	UserName     string          `json:"userName"`
	UserPhone    string          `json:"userPhone"`
	FinalAmount  decimal.Decimal `json:"finalAmount"`
	Status       string          `json:"status"`
	DeliveryType string          `json:"deliveryType"`
	Items        []ItemPayload   `json:"items"`
}

// ItemPayload - позиция заказа в формате API
type ItemPayload struct {
	Product  *ProductPayload `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ProductPayload - товар позиции
type ProductPayload struct {
	Name string `json:"name"`
}

// FlexString принимает и строку, и число (номер заказа приходит в обоих видах)
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("order number must be a string or a number: %w", err)
	}
	*s = FlexString(num.String())
	return nil
}

// Snapshot - перевод заказа из формата API в модель с подстановкой значений по умолчанию
func (p *OrderPayload) Snapshot() models.OrderSnapshot {
	snapshot := models.OrderSnapshot{
		OrderNumber:   orDefault(string(p.OrderNumber), "N/A"),
		CustomerName:  orDefault(p.UserName, "N/A"),
		CustomerPhone: strings.TrimSpace(p.UserPhone),
		FinalAmount:   p.FinalAmount,
		Status:        models.OrderStatus(orDefault(p.Status, string(models.OrderStatusUnknown))),
		DeliveryType:  models.DeliveryType(p.DeliveryType),
		Items:         make([]models.OrderItem, 0, len(p.Items)),
	}
	for _, item := range p.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		snapshot.Items = append(snapshot.Items, models.OrderItem{
			ProductName: orDefault(name, "Unknown product"),
			Quantity:    item.Quantity,
			UnitPrice:   item.Price,
		})
	}
	return snapshot
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

var (
	ErrMalformedResponse  = errors.New("malformed response")
	ErrServiceUnavailable = errors.New("order service unavailable")
)

// NetworkError - ошибка транспорта: нет соединения, таймаут, отмена запроса
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout - ошибка вызвана истечением таймаута
func (e *NetworkError) Timeout() bool {
	var timeout interface{ Timeout() bool }
	return errors.As(e.Err, &timeout) && timeout.Timeout()
}

// HTTPError - сервер ответил кодом вне 2xx
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}

// APIRejectedError - сервер ответил success=false
type APIRejectedError struct {
	Message string
}

func (e *APIRejectedError) Error() string {
	return "rejected by order service: " + e.Message
}
