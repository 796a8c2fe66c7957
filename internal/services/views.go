package services

import (
	"github.com/denmor86/ya-pickupdesk/internal/models"
	"github.com/shopspring/decimal"
)

// ItemView - позиция заказа для экрана
type ItemView struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// OrderView - заказ для экрана
type OrderView struct {
	Number        string          `json:"number"`
	Customer      string          `json:"customer"`
	Phone         string          `json:"phone,omitempty"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"status_label"`
	DeliveryType  string          `json:"delivery_type"`
	DeliveryLabel string          `json:"delivery_label"`
	ItemsCount    int             `json:"items_count"`
	Items         []ItemView      `json:"items"`
}

// SessionView - всё, что показывает экран заказа
type SessionView struct {
	ID        string            `json:"id"`
	State     string            `json:"state"`
	Source    string            `json:"source"`
	Token     string            `json:"token"`
	Oversized bool              `json:"oversized,omitempty"`
	Order     *OrderView        `json:"order,omitempty"`
	Issue     IssueAvailability `json:"issue"`
	Error     string            `json:"error,omitempty"`
	Retryable bool              `json:"retryable"`
}

// NewOrderView - представление заказа
func NewOrderView(order *models.OrderSnapshot) *OrderView {
	view := &OrderView{
		Number:        order.OrderNumber,
		Customer:      order.CustomerName,
		Phone:         order.CustomerPhone,
		FinalAmount:   order.FinalAmount,
		Status:        string(order.Status),
		StatusLabel:   order.Status.Label(),
		DeliveryType:  string(order.DeliveryType),
		DeliveryLabel: order.DeliveryType.Label(),
		ItemsCount:    order.ItemsCount(),
		Items:         make([]ItemView, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, ItemView{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total(),
		})
	}
	return view
}

// View - снимок состояния сессии
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		ID:        s.id,
		State:     s.state.String(),
		Source:    s.source.String(),
		Token:     models.MaskToken(s.token),
		Oversized: s.oversized,
	}
	if s.order != nil {
		view.Order = NewOrderView(s.order)
		view.Issue = AvailabilityFor(s.order.Status)
	}
	switch s.state {
	case StateIssued:
		view.Issue = IssueAvailability{Enabled: false, Label: "Order issued"}
	case StateLoading, StateIssuing, StateConfirmPending, StateClosed:
		view.Issue.Enabled = false
	}
	if s.lastErr != nil {
		view.Error = Describe(s.lastErr)
		view.Retryable = s.state == StateLoadFailed || s.state == StateIssueFailed
	}
	return view
}
