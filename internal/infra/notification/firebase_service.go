package notification

import (
	"context"
	"log/slog"

	"carepush/internal/domain/entity"
	"carepush/internal/domain/service"
	"carepush/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// MaxBatchSize is the multicast limit of FCM.
const MaxBatchSize = 500

const criticalSound = "default"

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token string, msg *service.PushMessage) error {
	message := &messaging.Message{
		Token:        token,
		Notification: notificationOf(msg),
		Data:         dataOf(msg),
		Android:      androidConfigOf(msg.Kind),
		APNS:         apnsConfigOf(msg.Kind),
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	if len(tokens) > MaxBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticast(tokens, msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}

	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}

		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])

			continue
		}

		s.logger.Warn("[FCM] Delivery failed",
			slog.String("token_prefix", entity.TokenPrefix(tokens[idx])),
			slog.Any("error", sendResponse.Error))
	}

	return result, nil
}

func buildMulticast(tokens []string, msg *service.PushMessage) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: notificationOf(msg),
		Data:         dataOf(msg),
		Android:      androidConfigOf(msg.Kind),
		APNS:         apnsConfigOf(msg.Kind),
	}
}

func notificationOf(msg *service.PushMessage) *messaging.Notification {
	if msg.Title == "" && msg.Body == "" {
		return nil
	}

	return &messaging.Notification{Title: msg.Title, Body: msg.Body}
}

// dataOf stamps the wire discriminator so the receiving side classifies the push.
func dataOf(msg *service.PushMessage) map[string]string {
	data := make(map[string]string, len(msg.Data)+1)
	for k, v := range msg.Data {
		data[k] = v
	}
	data[entity.FieldType] = msg.Kind.WireType()

	return data
}

func androidConfigOf(kind entity.NotificationKind) *messaging.AndroidConfig {
	if !kind.IsAlert() {
		return nil
	}

	return &messaging.AndroidConfig{Priority: "high"}
}

func apnsConfigOf(kind entity.NotificationKind) *messaging.APNSConfig {
	if !kind.IsAlert() {
		return nil
	}

	aps := &messaging.Aps{ContentAvailable: true}
	if kind == entity.KindSOSAlert {
		aps.CriticalSound = &messaging.CriticalSound{Critical: true, Name: criticalSound, Volume: 1.0}
	}

	return &messaging.APNSConfig{
		Headers: map[string]string{"apns-priority": "10"},
		Payload: &messaging.APNSPayload{Aps: aps},
	}
}
