package http

// Request and response bodies for the ordering HTTP API. Plain structs, no
// code generation.

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCustomerRequest is the body of POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateCustomerRequest is the body of PUT /api/v1/customers/:customerId.
type UpdateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Customer is the read model returned by GET /api/v1/customers/:customerId.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string `json:"customer_id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Currency   string `json:"currency"`
}

// AddOrderItemRequest is the body of POST /api/v1/orders/:orderId/items.
type AddOrderItemRequest struct {
	ProductID     string `json:"product_id"`
	PriceAmount   int64  `json:"price_amount"`
	PriceCurrency string `json:"price_currency"`
	Quantity      int    `json:"quantity"`
}

// ShipOrderRequest is the body of POST /api/v1/orders/:orderId/ship.
type ShipOrderRequest struct {
	TrackingRef string `json:"tracking_ref"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:orderId/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderItem is one order line in the Order read model.
type OrderItem struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	PriceAmount int64  `json:"price_amount"`
	Quantity    int    `json:"quantity"`
}

// Order is the read model returned by GET /api/v1/orders/:orderId.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customer_id"`
	Street       string      `json:"street"`
	City         string      `json:"city"`
	Currency     string      `json:"currency"`
	Status       string      `json:"status"`
	TrackingRef  string      `json:"tracking_ref,omitempty"`
	CancelReason string      `json:"cancel_reason,omitempty"`
	TotalAmount  int64       `json:"total_amount"`
	Items        []OrderItem `json:"items"`
}

// OrderSummary is one row of GET /api/v1/orders.
type OrderSummary struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
	Currency   string `json:"currency"`
}
