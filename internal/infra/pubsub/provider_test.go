package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carepush/config"
	"carepush/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: newTestLogger(),
	}
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantType any
		wantErr  bool
	}{
		{name: "not configured", cfg: nil, wantType: &noopPublisher{}},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantType: &noopPublisher{}},
		{
			name:     "local",
			cfg:      &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"},
			wantType: &localHTTPPublisher{},
		},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "dispatch"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "care"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(newPublisherParams(t, tt.cfg))

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, publisher)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNoopPublisher_PublishDispatchEvent(t *testing.T) {
	publisher := &noopPublisher{logger: newTestLogger()}

	assert.NoError(t, publisher.PublishDispatchEvent(context.Background(), &service.DispatchEvent{DispatchID: "d1"}))
}

func TestLocalHTTPPublisher_PublishDispatchEvent(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	event := &service.DispatchEvent{
		RequestID:    "req-1",
		DispatchID:   "d1",
		TargetUserID: "u1",
		Type:         "sos_alert",
		Title:        "SOS",
		Data:         map[string]string{"sos_session_id": "s1"},
	}

	require.NoError(t, publisher.PublishDispatchEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "d1", received.Message.MessageID)
	assert.Equal(t, "projects/local/subscriptions/dispatch-sub", received.Subscription)
	assert.Equal(t, map[string]string{
		"dispatch_id":    "d1",
		"target_user_id": "u1",
		"type":           "sos_alert",
		"request_id":     "req-1",
	}, received.Message.Attributes)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DispatchEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())

	err := publisher.PublishDispatchEvent(context.Background(), &service.DispatchEvent{DispatchID: "d1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestAttributesOf_OmitsEmptyRequestID(t *testing.T) {
	attributes := attributesOf(&service.DispatchEvent{DispatchID: "d1", TargetUserID: "u1", Type: "chat"})

	assert.NotContains(t, attributes, "request_id")
	assert.Equal(t, "chat", attributes["type"])
}
