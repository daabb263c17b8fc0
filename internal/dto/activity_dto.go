package dto

// ActivityMessage is the payload exchanged on the in-process activity
// topic between the services and the activity consumer.
type ActivityMessage struct {
	EventId string                 `json:"event_id"`
	Action  string                 `json:"action"`
	UserId  string                 `json:"user_id"`
	Data    map[string]interface{} `json:"data"`
}
