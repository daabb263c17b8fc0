package entity

import "time"

// ActivityEntry is one audit-trail row recording a successful mutation.
// Rows are written asynchronously by the activity consumer.
type ActivityEntry struct {
	Id        uint
	EventId   string
	Action    string
	UserId    string
	Payload   map[string]interface{}
	CreatedAt time.Time
}
