package email

// Provider sends outbound mail. Sends are best-effort side effects: callers
// dispatch them after their transaction commits and only log failures.
type Provider interface {
	Send(email *Email) error

	// Validate checks the provider configuration.
	Validate() error
}
