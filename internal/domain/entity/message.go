package entity

import "time"

// RemoteMessage is a push message as handed over by the platform.
type RemoteMessage struct {
	MessageID    string               `json:"message_id"`
	From         string               `json:"from,omitempty"`
	SentAt       time.Time            `json:"sent_at"`
	Data         map[string]string    `json:"data"`
	Notification *MessageNotification `json:"notification,omitempty"`
}

// MessageNotification is the display part of a remote message.
type MessageNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Payload returns the data map widened to arbitrary values.
func (m *RemoteMessage) Payload() map[string]any {
	if m == nil {
		return map[string]any{}
	}

	payload := make(map[string]any, len(m.Data))
	for k, v := range m.Data {
		payload[k] = v
	}

	return payload
}
