package model

import "time"

// ContactMessage is a contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Locale  string `json:"locale,omitempty"`
}

// ContactReceipt acknowledges a submission. Forwarded is false when no collaborator received it.
type ContactReceipt struct {
	ID         string    `json:"id"`
	Forwarded  bool      `json:"forwarded"`
	ReceivedAt time.Time `json:"received_at"`
}
