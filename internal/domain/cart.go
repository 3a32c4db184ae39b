package domain

// CartItem holds one distinct product staged for purchase. There is at most
// one entry per product id; repeated adds accumulate on Quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"` // always >= 1; an item dropping to 0 is removed
}

// Order is constructed at checkout submission and is ephemeral: it drives
// navigation to the confirmation screen and is not retained anywhere.
type Order struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Total         float64    `json:"total"` // sum of quantity*price, rounded to a whole currency unit
	Items         []CartItem `json:"items"`
	PaymentStatus string     `json:"paymentStatus"` // PaymentStatusSuccess or PaymentStatusFailure
}
