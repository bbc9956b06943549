package domain

// Webhook is an owner-registered callback URL. Each owner holds at most one;
// re-registering replaces the previous URL.
type Webhook struct {
	OwnerID string
	URL     string
}
