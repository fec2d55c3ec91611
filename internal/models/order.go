package models

import "time"

// OrderStatus is the closed set of states an order moves through.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// orderTransitions lists the states reachable from each state.
// Delivered and cancelled orders are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  nil,
	OrderCancelled:  nil,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order in state from may move to state to.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem represents a single item within an order.
type OrderItem struct {
	ProductID string  `json:"product" bson:"product"` // weak reference to a Product
	Quantity  int     `json:"qty" bson:"qty"`
	Price     float64 `json:"price" bson:"price"` // Price at the time of order
}

// Order represents a customer order.
type Order struct {
	ID              string         `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	BuyerID         string         `json:"buyer" gorm:"type:varchar(36);index" bson:"buyer"`
	Items           []OrderItem    `json:"items" gorm:"serializer:json" bson:"items"`
	TotalAmount     float64        `json:"totalAmount" bson:"totalAmount"`
	Status          OrderStatus    `json:"status" gorm:"type:varchar(16);default:pending" bson:"status"`
	PaymentMethod   string         `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	ShippingAddress map[string]any `json:"address,omitempty" gorm:"serializer:json" bson:"address,omitempty"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt" bson:"updatedAt"`
}
