package models

import "time"

// OrderStatus is a cosmetic label. Nothing moves an order between statuses.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
)

// Order is the receipt checkout hands back. Orders are not stored.
type Order struct {
	ID              int64       `json:"id"`
	Items           []CartItem  `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	OrderDate       time.Time   `json:"orderDate"`
	DeliveryAddress string      `json:"deliveryAddress"`
}
