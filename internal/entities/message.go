package entities

import "time"

// Message - запись чата по заказу. После создания меняется только флаг Read.
type Message struct {
	ID         string
	OrderID    string
	SenderID   string
	ReceiverID string
	Body       string
	SentAt     time.Time
	Read       bool
}
