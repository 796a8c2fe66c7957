package models

import (
	"github.com/shopspring/decimal"
)

// OrderStatus - статус заказа в системе магазина
type OrderStatus string

// Статусы заказов
const (
	OrderStatusCreated              OrderStatus = "created"
	OrderStatusUnpaid               OrderStatus = "unpaid"
	OrderStatusPaid                 OrderStatus = "paid"
	OrderStatusReadyForPickup       OrderStatus = "ready_for_pickup"
	OrderStatusTransferredToCourier OrderStatus = "transferred_to_courier"
	OrderStatusIssued               OrderStatus = "issued"
	OrderStatusCancelled            OrderStatus = "cancelled"
	OrderStatusUnknown              OrderStatus = "unknown"
)

// Label - человекочитаемое название статуса
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusCreated:
		return "Created"
	case OrderStatusUnpaid:
		return "Unpaid"
	case OrderStatusPaid:
		return "Paid"
	case OrderStatusReadyForPickup:
		return "Ready for pickup"
	case OrderStatusTransferredToCourier:
		return "Transferred to courier"
	case OrderStatusIssued:
		return "Issued"
	case OrderStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown (" + string(s) + ")"
	}
}

// DeliveryType - способ получения заказа
type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

// Label - всё, что не самовывоз, показывается как доставка
func (d DeliveryType) Label() string {
	if d == DeliveryTypePickup {
		return "Pickup"
	}
	return "Delivery"
}

// OrderItem - позиция заказа
type OrderItem struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Total - стоимость позиции
func (i OrderItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderSnapshot - состояние заказа, полученное по токену. Только для чтения.
type OrderSnapshot struct {
	OrderNumber   string          `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
	Status        OrderStatus     `json:"status"`
	DeliveryType  DeliveryType    `json:"delivery_type"`
	Items         []OrderItem     `json:"items"`
}

// ItemsCount - количество позиций в заказе
func (o *OrderSnapshot) ItemsCount() int {
	return len(o.Items)
}
