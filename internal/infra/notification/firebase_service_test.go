package notification

import (
	"testing"

	"carepush/internal/domain/entity"
	"carepush/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMulticast_SOSIsCritical(t *testing.T) {
	msg := &service.PushMessage{
		Kind:  entity.KindSOSAlert,
		Title: "SOS",
		Body:  "Help needed",
		Data:  map[string]string{entity.FieldSOSSessionID: "s1"},
	}

	m := buildMulticast([]string{"t1", "t2"}, msg)

	assert.Equal(t, []string{"t1", "t2"}, m.Tokens)
	assert.Equal(t, "sos_alert", m.Data[entity.FieldType])
	assert.Equal(t, "s1", m.Data[entity.FieldSOSSessionID])
	require.NotNil(t, m.Android)
	assert.Equal(t, "high", m.Android.Priority)
	require.NotNil(t, m.APNS)
	assert.Equal(t, "10", m.APNS.Headers["apns-priority"])
	require.NotNil(t, m.APNS.Payload.Aps.CriticalSound)
	assert.True(t, m.APNS.Payload.Aps.CriticalSound.Critical)
}

func TestBuildMulticast_HealthAlertHighPriorityWithoutCriticalSound(t *testing.T) {
	m := buildMulticast([]string{"t1"}, &service.PushMessage{Kind: entity.KindHealthAlert, Title: "Heart rate"})

	require.NotNil(t, m.Android)
	assert.Equal(t, "high", m.Android.Priority)
	require.NotNil(t, m.APNS)
	assert.Nil(t, m.APNS.Payload.Aps.CriticalSound)
}

func TestBuildMulticast_ChatUsesDefaults(t *testing.T) {
	msg := &service.PushMessage{Kind: entity.KindChat, Data: map[string]string{entity.FieldThreadID: "th"}}

	m := buildMulticast([]string{"t1"}, msg)

	assert.Nil(t, m.Android)
	assert.Nil(t, m.APNS)
	assert.Nil(t, m.Notification)
	assert.Equal(t, "chat", m.Data[entity.FieldType])
	// caller's data is left untouched
	assert.NotContains(t, msg.Data, entity.FieldType)
}
