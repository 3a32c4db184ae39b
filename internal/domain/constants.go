package domain

// Category filter sentinel. Any other value is matched against product
// categories case-insensitively.
const CategoryAll = "all"

// Payment outcomes. There is no real gateway; orders always settle with
// PaymentStatusSuccess.
const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailure = "failure"
)

// Routes the store navigates to.
const (
	RouteCheckout     = "/checkout"
	RouteOrderSuccess = "/order-success"
)

// Dialog form identifiers.
const (
	FormSignIn = "sign-in"
	FormSignUp = "sign-up"
)
