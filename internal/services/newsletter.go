package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

const defaultLocale = "en"

type NewsletterService interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	Contact(ctx context.Context, req *models.ContactRequest) (*models.NotificationResponse, error)
}

type newsletterService struct {
	subscribers   repository.SubscriberRepository
	notifications NotificationService
	contactInbox  string
	htmlPolicy    *bluemonday.Policy
	textPolicy    *bluemonday.Policy
}

func NewNewsletterService(subscribers repository.SubscriberRepository, notifications NotificationService, contactInbox string) NewsletterService {
	return &newsletterService{
		subscribers:   subscribers,
		notifications: notifications,
		contactInbox:  contactInbox,
		htmlPolicy:    bluemonday.UGCPolicy(),
		textPolicy:    bluemonday.StrictPolicy(),
	}
}

// Subscribe is idempotent; the confirmation email goes out only for new addresses.
func (s *newsletterService) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscriber, error) {
	locale := req.Locale
	if locale == "" {
		locale = defaultLocale
	}

	now := time.Now()
	subscriber := &models.Subscriber{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Locale:    locale,
		Status:    models.SubscriberStatusSubscribed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	inserted, err := s.subscribers.Subscribe(ctx, subscriber)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to subscribe").WithError(err)
	}

	if !inserted {
		return subscriber, nil
	}

	_, err = s.notifications.SendEmail(ctx, &models.EmailNotificationRequest{
		To:          subscriber.Email,
		Subject:     "You're subscribed",
		Content:     "Thanks for subscribing to our newsletter. You can unsubscribe at any time.",
		HTMLContent: "<p>Thanks for subscribing to our newsletter.</p><p>You can unsubscribe at any time.</p>",
		Metadata:    map[string]string{"kind": "newsletter_welcome", "locale": locale},
	})
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Newsletter confirmation email failed",
			slog.String("email", subscriber.Email),
			slog.String("error", err.Error()),
		)

		return nil, appErrors.ThirdPartyError("Subscribed, but the confirmation email could not be sent").WithError(err)
	}

	return subscriber, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	removed, err := s.subscribers.Unsubscribe(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return appErrors.DatabaseError("Failed to unsubscribe").WithError(err)
	}

	if !removed {
		return appErrors.NotFoundError("Subscriber not found")
	}

	return nil
}

// Contact forwards a sanitized contact form message to the shop inbox.
func (s *newsletterService) Contact(ctx context.Context, req *models.ContactRequest) (*models.NotificationResponse, error) {
	name := s.textPolicy.Sanitize(req.Name)
	subject := s.textPolicy.Sanitize(req.Subject)
	message := s.htmlPolicy.Sanitize(req.Message)

	if strings.TrimSpace(message) == "" {
		return nil, appErrors.BadRequestError("Message is empty after sanitizing")
	}

	// StrictPolicy escapes entities; the plain text part should read naturally.
	plain := html.UnescapeString(s.textPolicy.Sanitize(req.Message))

	return s.notifications.SendEmail(ctx, &models.EmailNotificationRequest{
		To:          s.contactInbox,
		ReplyTo:     req.Email,
		Subject:     "Contact: " + html.UnescapeString(subject),
		Content:     fmt.Sprintf("From: %s <%s>\n\n%s", html.UnescapeString(name), req.Email, plain),
		HTMLContent: fmt.Sprintf("<p>From: %s &lt;%s&gt;</p>%s", name, html.EscapeString(req.Email), message),
		Metadata:    map[string]string{"kind": "contact"},
	})
}
