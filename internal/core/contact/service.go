// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package contact accepts inquiries from visitors to artisans.

An inquiry is validated, optionally throttled per sender and artisan, and
stored with a server-assigned id and timestamp. The artisan id is required
but never checked against the directory.
*/
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/internal/platform/metrics"
	"github.com/taibuivan/sanaa/internal/platform/validate"
)

// Content rules for inquiries.
const (
	MinClientNameLength = 2
	MinMessageLength    = 10
)

// # Service Layer

// Service implements inquiry submission.
type Service struct {
	repository directory.ContactRepository
	cooldown   Cooldown
	window     time.Duration
	metrics    *metrics.Collector
	logger     *slog.Logger
}

// NewService constructs a new [Service].
//
// A nil cooldown or a zero window disables throttling; collector may be nil.
func NewService(
	repository directory.ContactRepository,
	cooldown Cooldown,
	window time.Duration,
	collector *metrics.Collector,
	logger *slog.Logger,
) *Service {
	if cooldown == nil {
		cooldown = NoCooldown{}
	}
	return &Service{
		repository: repository,
		cooldown:   cooldown,
		window:     window,
		metrics:    collector,
		logger:     logger,
	}
}

// Input is an inquiry as submitted by a visitor.
type Input struct {
	ArtisanID   string
	ClientName  string
	ClientEmail string
	ClientPhone *string
	Message     string
}

/*
Submit validates and stores an inquiry.

Description: Every rule is checked so the caller receives all failing fields
at once. When a cooldown window is configured, a second inquiry from the same
email to the same artisan inside the window is refused. A cooldown backend
failure is logged and the inquiry goes through.

Returns:
  - *directory.ContactMessage: the stored inquiry
  - error: VALIDATION_ERROR, RATE_LIMITED or a storage fault
*/
func (service *Service) Submit(ctx context.Context, input Input) (*directory.ContactMessage, error) {
	if err := validateInput(input); err != nil {
		service.metrics.ContactSubmitted(metrics.OutcomeRejected)
		return nil, err
	}

	key, acquired, err := service.acquire(ctx, input)
	if err != nil {
		return nil, err
	}

	message, err := service.repository.CreateContactMessage(ctx, directory.NewContactMessage{
		ArtisanID:   input.ArtisanID,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		Message:     input.Message,
	})
	if err != nil {
		if acquired {
			if releaseErr := service.cooldown.Release(ctx, key); releaseErr != nil {
				service.logger.Warn("contact_cooldown_release_failed", slog.Any("error", releaseErr))
			}
		}
		return nil, fmt.Errorf("contact_service_submit_failed: %w", err)
	}

	service.metrics.ContactSubmitted(metrics.OutcomeCreated)
	service.logger.Info("contact_message_created",
		slog.String("message_id", message.ID),
		slog.String("artisan_id", message.ArtisanID),
	)
	return message, nil
}

// acquire claims the cooldown slot for the inquiry. It reports whether a
// slot was actually taken, so a failed insert can give it back.
func (service *Service) acquire(ctx context.Context, input Input) (string, bool, error) {
	if service.window <= 0 {
		return "", false, nil
	}

	key := CooldownKey(input.ArtisanID, input.ClientEmail)
	allowed, err := service.cooldown.Acquire(ctx, key, service.window)
	if err != nil {
		service.logger.Warn("contact_cooldown_unavailable", slog.Any("error", err))
		return key, false, nil
	}

	if !allowed {
		service.metrics.ContactSubmitted(metrics.OutcomeRateLimited)
		return key, false, apperr.RateLimited(int(service.window.Round(time.Second).Seconds()))
	}
	return key, true, nil
}

func validateInput(input Input) error {
	v := &validate.Validator{}

	v.Required("artisanId", input.ArtisanID)

	v.MinLen("clientName", input.ClientName, MinClientNameLength)

	v.Email("clientEmail", input.ClientEmail)

	v.MinLen("message", input.Message, MinMessageLength)

	return v.Err()
}
