package entity

import (
	"net/url"
)

// NotificationKind classifies an inbound push message.
type NotificationKind string

const (
	KindChat              NotificationKind = "chat"
	KindSOSAlert          NotificationKind = "sosAlert"
	KindHealthAlert       NotificationKind = "healthAlert"
	KindCaregiverResponse NotificationKind = "caregiverResponse"
	KindDoctorResponse    NotificationKind = "doctorResponse"
)

// Wire values of the "type" discriminator.
const (
	TypeSOSAlert          = "sos_alert"
	TypeHealthAlert       = "health_alert"
	TypeCaregiverResponse = "caregiver_response"
	TypeDoctorResponse    = "doctor_response"
	TypeChat              = "chat"
)

// Payload keys read by the classifier.
const (
	FieldType         = "type"
	FieldSenderID     = "sender_id"
	FieldThreadID     = "thread_id"
	FieldSOSSessionID = "sos_session_id"
	FieldAlertID      = "alert_id"
)

// WireType returns the discriminator value used on the wire for the kind.
func (k NotificationKind) WireType() string {
	switch k {
	case KindSOSAlert:
		return TypeSOSAlert
	case KindHealthAlert:
		return TypeHealthAlert
	case KindCaregiverResponse:
		return TypeCaregiverResponse
	case KindDoctorResponse:
		return TypeDoctorResponse
	default:
		return TypeChat
	}
}

// IsAlert reports whether the kind must reach the user urgently.
func (k NotificationKind) IsAlert() bool {
	return k == KindSOSAlert || k == KindHealthAlert
}

// NotificationEvent is the typed view of an inbound push payload.
type NotificationEvent struct {
	Kind         NotificationKind `json:"kind"`
	SenderID     *string          `json:"sender_id"`
	ThreadID     *string          `json:"thread_id"`
	SOSSessionID *string          `json:"sos_session_id"`
	AlertID      *string          `json:"alert_id"`
	Raw          map[string]any   `json:"raw"` // Full original payload, including fields not modelled here.
}

// DeepLink resolves the in-app route a tap on this event should open.
func (e *NotificationEvent) DeepLink() string {
	switch {
	case e.Kind == KindSOSAlert && e.SOSSessionID != nil:
		return "/sos/" + url.PathEscape(*e.SOSSessionID)
	case e.AlertID != nil:
		return "/alerts/" + url.PathEscape(*e.AlertID)
	case e.ThreadID != nil:
		return "/chat/" + url.PathEscape(*e.ThreadID)
	case e.SenderID != nil:
		return "/chat/users/" + url.PathEscape(*e.SenderID)
	default:
		return "/notifications"
	}
}
