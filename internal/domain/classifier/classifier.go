// Package classifier turns untyped push payloads into notification events.
package classifier

import (
	"maps"

	"carepush/internal/domain/entity"
)

var kindsByType = map[string]entity.NotificationKind{
	entity.TypeSOSAlert:          entity.KindSOSAlert,
	entity.TypeHealthAlert:       entity.KindHealthAlert,
	entity.TypeCaregiverResponse: entity.KindCaregiverResponse,
	entity.TypeDoctorResponse:    entity.KindDoctorResponse,
}

// Classify maps a payload onto a NotificationEvent. It never fails: a missing or
// unrecognised "type" yields a chat event.
func Classify(payload map[string]any) *entity.NotificationEvent {
	event := &entity.NotificationEvent{
		Kind: entity.KindChat,
		Raw:  maps.Clone(payload),
	}
	if event.Raw == nil {
		event.Raw = map[string]any{}
	}

	if discriminator, ok := payload[entity.FieldType].(string); ok {
		event.Kind = KindOf(discriminator)
	}

	event.SenderID = optionalString(payload, entity.FieldSenderID)
	event.ThreadID = optionalString(payload, entity.FieldThreadID)
	event.SOSSessionID = optionalString(payload, entity.FieldSOSSessionID)
	event.AlertID = optionalString(payload, entity.FieldAlertID)

	return event
}

// KindOf maps a wire discriminator onto a kind, defaulting to chat.
func KindOf(wireType string) entity.NotificationKind {
	if kind, known := kindsByType[wireType]; known {
		return kind
	}

	return entity.KindChat
}

// ClassifyMessage classifies the data payload of a remote message.
func ClassifyMessage(msg *entity.RemoteMessage) *entity.NotificationEvent {
	return Classify(msg.Payload())
}

func optionalString(payload map[string]any, key string) *string {
	value, ok := payload[key].(string)
	if !ok {
		return nil
	}

	return &value
}
