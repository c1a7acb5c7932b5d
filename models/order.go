package models

import "time"

const OrderStatusPending = "pending"

type OrderItem struct {
	BookID   string  `bson:"bookId" json:"bookId"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"` // unit price at time of order
}

type ShippingAddress struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
}

type Order struct {
	// UserID always comes from the authenticated caller's token, never
	// from the request body.
	ID              string          `bson:"_id,omitempty" json:"id"`
	UserID          string          `bson:"userId" json:"userId"`
	Items           []OrderItem     `bson:"items" json:"items"`
	TotalAmount     float64         `bson:"totalAmount" json:"totalAmount"`
	Status          string          `bson:"status" json:"status"`
	ShippingAddress ShippingAddress `bson:"shippingAddress" json:"shippingAddress"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
}

// AnnotatedOrder is the admin view: each order resolved against the user
// and book records it references, for display.
type AnnotatedOrder struct {
	Order
	User  *OrderUserView      `json:"user,omitempty"`
	Books []AnnotatedItemView `json:"books,omitempty"`
}

type OrderUserView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AnnotatedItemView struct {
	BookID   string  `json:"bookId"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
