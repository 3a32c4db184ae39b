package domain

// User is the single-session identity. At most one instance is live at a
// time; a nil user means signed out.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// SignInParams carries the validated sign-in form values. The dialog is
// responsible for field validation before invoking the store; credentials
// are accepted unchecked.
type SignInParams struct {
	Email    string
	Password string
	Checkout bool   // redirect to checkout after signing in
	DialogID string // dialog to close on success
}

// SignUpParams mirrors SignInParams with the extra display name. Password
// confirmation is the form's job, not the store's.
type SignUpParams struct {
	Name     string
	Email    string
	Password string
	Checkout bool
	DialogID string
}
