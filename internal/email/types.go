package email

// Email is one plain-text outbound message.
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Signature is appended to every notification template via {{signature}}.
const Signature = "--\nYCS Business Matching"
