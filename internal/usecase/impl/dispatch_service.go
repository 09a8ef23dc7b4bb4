package impl

import (
	"context"
	"log/slog"
	"maps"

	"carepush/config"
	"carepush/internal/domain/classifier"
	"carepush/internal/domain/entity"
	"carepush/internal/domain/repository"
	"carepush/internal/domain/service"
	"carepush/internal/errors"
	"carepush/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	logger          *slog.Logger
	batchSize       int
	publisher       service.EventPublisher
	tokenRepo       repository.TokenRepository
	notificationSvc service.NotificationService
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	cfg *config.Config,
	logger *slog.Logger,
	publisher service.EventPublisher,
	tokenRepo repository.TokenRepository,
	notificationSvc service.NotificationService,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:          logger,
		batchSize:       cfg.Push.BatchSize,
		publisher:       publisher,
		tokenRepo:       tokenRepo,
		notificationSvc: notificationSvc,
	}
}

// Enqueue publishes a dispatch event for the worker
func (s *dispatchService) Enqueue(ctx context.Context, requestID, userID string, req *usecase.DispatchRequest) (string, error) {
	if userID == "" {
		return "", errors.New("target user is required")
	}
	if req == nil {
		return "", errors.New("dispatch request is required")
	}

	event := &service.DispatchEvent{
		RequestID:    requestID,
		DispatchID:   uuid.NewString(),
		TargetUserID: userID,
		Type:         req.Kind.WireType(),
		Title:        req.Title,
		Body:         req.Body,
		Data:         maps.Clone(req.Data),
	}

	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		return "", errors.Wrap(err, "failed to publish dispatch event")
	}

	s.logger.InfoContext(ctx, "[Dispatch] Event queued",
		slog.String("dispatch_id", event.DispatchID),
		slog.String("user_id", userID),
		slog.String("type", event.Type))

	return event.DispatchID, nil
}

// Deliver resolves the target user's tokens, sends them in batches and prunes invalid tokens
func (s *dispatchService) Deliver(ctx context.Context, event *service.DispatchEvent) (*usecase.DispatchReport, error) {
	if event == nil || event.TargetUserID == "" {
		return nil, errors.New("dispatch event has no target user")
	}

	report := &usecase.DispatchReport{DispatchID: event.DispatchID}

	tokens, err := s.tokenRepo.FindTokensByUser(ctx, event.TargetUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.InfoContext(ctx, "[Dispatch] Target user has no token record",
				slog.String("dispatch_id", event.DispatchID),
				slog.String("user_id", event.TargetUserID))

			return report, nil
		}

		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to resolve targets"))
	}

	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token != nil && token.Value != "" {
			values = append(values, token.Value)
		}
	}
	report.Targets = len(values)

	if len(values) == 0 {
		return report, nil
	}

	msg := &service.PushMessage{
		Kind:  classifier.KindOf(event.Type),
		Title: event.Title,
		Body:  event.Body,
		Data:  event.Data,
	}

	var (
		invalidTokens []string
		batches       int
		batchFailures int
	)

	for idx := 0; idx < len(values); idx += s.batchSize {
		end := min(idx+s.batchSize, len(values))
		batch := values[idx:end]
		batches++

		result, sendErr := s.notificationSvc.SendBatchNotification(ctx, batch, msg)
		if sendErr != nil {
			s.logger.ErrorContext(ctx, "[Dispatch] Failed to send batch",
				slog.String("dispatch_id", event.DispatchID),
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr))
			report.Failed += len(batch)
			batchFailures++

			continue
		}

		report.Sent += result.SuccessCount
		report.Failed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	report.Pruned = s.pruneInvalidTokens(ctx, event.TargetUserID, invalidTokens)

	s.logger.InfoContext(ctx, "[Dispatch] Delivery completed",
		slog.String("dispatch_id", event.DispatchID),
		slog.Int("targets", report.Targets),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("pruned", report.Pruned))

	// Nothing reached the gateway: let the queue redeliver.
	if batchFailures == batches {
		return report, usecase.NewRetryableError(errors.Errorf("all %d batches failed", batchFailures))
	}

	return report, nil
}

// pruneInvalidTokens removes tokens the gateway reported as invalid and returns how many were removed
func (s *dispatchService) pruneInvalidTokens(ctx context.Context, userID string, invalidTokens []string) int {
	pruned := 0
	for _, token := range invalidTokens {
		if err := s.tokenRepo.RemoveToken(ctx, userID, token); err != nil {
			s.logger.WarnContext(ctx, "[Dispatch] Failed to prune invalid token",
				slog.String("user_id", userID),
				slog.String("token_prefix", entity.TokenPrefix(token)),
				slog.Any("error", err))

			continue
		}
		pruned++
	}

	return pruned
}
