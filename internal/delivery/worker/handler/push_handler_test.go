package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carepush/config"
	deliverycontext "carepush/internal/delivery/context"
	"carepush/internal/domain/service"
	mockUC "carepush/internal/mocks/usecase"
	"carepush/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockDispatchUsecase) {
	dispatchUC := mockUC.NewMockDispatchUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	handler := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DispatchUC: dispatchUC,
	})

	return handler, dispatchUC
}

func pushBody(t *testing.T, event *service.DispatchEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/dispatch-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(handler *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = handler.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush_Delivers(t *testing.T) {
	handler, dispatchUC := createTestPushHandler(t)
	event := &service.DispatchEvent{DispatchID: "d1", TargetUserID: "u1", Type: "sos_alert"}

	dispatchUC.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(got *service.DispatchEvent) bool {
			return got.DispatchID == "d1" && got.TargetUserID == "u1" && got.Type == "sos_alert"
		})).
		Run(func(ctx context.Context, _ *service.DispatchEvent) {
			assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&usecase.DispatchReport{DispatchID: "d1", Targets: 2, Sent: 2}, nil).Once()

	rec := servePush(handler, pushBody(t, event, map[string]string{"request_id": "req-attr"}))

	assert.Equal(t, http.StatusOK, rec.Code)

	var report usecase.DispatchReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Sent)
}

func TestPushHandler_HandlePush_RetryableFailure(t *testing.T) {
	handler, dispatchUC := createTestPushHandler(t)

	dispatchUC.EXPECT().Deliver(mock.Anything, mock.Anything).
		Return(nil, usecase.NewRetryableError(errors.New("store offline"))).Once()

	rec := servePush(handler, pushBody(t, &service.DispatchEvent{TargetUserID: "u1"}, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_PermanentFailureIsAcknowledged(t *testing.T) {
	handler, dispatchUC := createTestPushHandler(t)

	dispatchUC.EXPECT().Deliver(mock.Anything, mock.Anything).
		Return(nil, errors.New("dispatch event has no target user")).Once()

	rec := servePush(handler, pushBody(t, &service.DispatchEvent{}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedMessages(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	notBase64 := `{"message":{"data":"%%%","messageId":"m1"}}`
	notJSON := `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `"}}`

	for name, body := range map[string]string{
		"invalid body":   "{",
		"invalid base64": notBase64,
		"invalid event":  notJSON,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, servePush(handler, body).Code)
		})
	}
}

func TestPushHandler_HandlePush_RejectsUnverifiedPush(t *testing.T) {
	handler, _ := createTestPushHandler(t)
	handler.verifyPushAuth = true
	handler.verifier = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := servePush(handler, pushBody(t, &service.DispatchEvent{TargetUserID: "u1"}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		want     bool
	}{
		{name: "google in production", env: "production", provider: "google", want: true},
		{name: "google in develop", env: "develop", provider: "google", want: false},
		{name: "local in production", env: "production", provider: "local", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			handler := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})

			assert.Equal(t, tt.want, handler.verifyPushAuth)
		})
	}
}

func TestVerifyPubSubToken_RequiresBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Error(t, verifyPubSubToken(req))
}

func TestExtractRequestID_Priority(t *testing.T) {
	handler, _ := createTestPushHandler(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-header")

	var msg PubSubMessage
	event := &service.DispatchEvent{RequestID: "req-event"}

	assert.Equal(t, "req-event", handler.extractRequestID(ctx, &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "req-attr"}
	assert.Equal(t, "req-attr", handler.extractRequestID(ctx, &msg, event))

	assert.Equal(t, "req-header", handler.extractRequestID(ctx, &PubSubMessage{}, &service.DispatchEvent{}))
	assert.NotEmpty(t, handler.extractRequestID(context.Background(), &PubSubMessage{}, &service.DispatchEvent{}))
}
