package service_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repoMocks "github.com/aaravmahajanofficial/pod-storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	svcMocks "github.com/aaravmahajanofficial/pod-storefront/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const contactInbox = "hello@shop.test"

func newNewsletter(t *testing.T) (service.NewsletterService, *repoMocks.SubscriberRepository, *svcMocks.NotificationService) {
	t.Helper()

	subscribers := repoMocks.NewSubscriberRepository(t)
	notifications := svcMocks.NewNotificationService(t)

	return service.NewNewsletterService(subscribers, notifications, contactInbox), subscribers, notifications
}

func TestSubscribe(t *testing.T) {
	t.Run("Success - New subscriber gets a welcome email", func(t *testing.T) {
		// Arrange
		svc, subscribers, notifications := newNewsletter(t)
		subscribers.On("Subscribe", mock.Anything, mock.MatchedBy(func(s *models.Subscriber) bool {
			return s.Email == "fan@example.com" && s.Locale == "en" && s.Status == models.SubscriberStatusSubscribed
		})).Return(true, nil).Once()
		notifications.On("SendEmail", mock.Anything, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			return req.To == "fan@example.com" && req.Metadata["kind"] == "newsletter_welcome"
		})).Return(&models.NotificationResponse{Status: models.StatusSent}, nil).Once()

		// Act
		subscriber, err := svc.Subscribe(t.Context(), &models.SubscribeRequest{Email: "  Fan@Example.com "})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "fan@example.com", subscriber.Email)
	})

	t.Run("Success - Existing subscriber is not emailed again", func(t *testing.T) {
		svc, subscribers, notifications := newNewsletter(t)
		storedID := uuid.New()
		subscribers.On("Subscribe", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Subscriber).ID = storedID }).
			Return(false, nil).Once()

		subscriber, err := svc.Subscribe(t.Context(), &models.SubscribeRequest{Email: "fan@example.com", Locale: "cs"})

		require.NoError(t, err)
		assert.Equal(t, "cs", subscriber.Locale)
		assert.Equal(t, storedID, subscriber.ID)
		notifications.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Email provider error", func(t *testing.T) {
		svc, subscribers, notifications := newNewsletter(t)
		subscribers.On("Subscribe", mock.Anything, mock.Anything).Return(true, nil).Once()
		notifications.On("SendEmail", mock.Anything, mock.Anything).
			Return(nil, appErrors.ThirdPartyError("Failed to send email")).Once()

		_, err := svc.Subscribe(t.Context(), &models.SubscribeRequest{Email: "fan@example.com"})

		appErr := requireAppError(t, err, http.StatusInternalServerError)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		svc, subscribers, _ := newNewsletter(t)
		subscribers.On("Subscribe", mock.Anything, mock.Anything).Return(false, errors.New("connection refused")).Once()

		_, err := svc.Subscribe(t.Context(), &models.SubscribeRequest{Email: "fan@example.com"})

		appErr := requireAppError(t, err, http.StatusInternalServerError)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Run("Success - Removes the subscriber", func(t *testing.T) {
		svc, subscribers, _ := newNewsletter(t)
		subscribers.On("Unsubscribe", mock.Anything, "fan@example.com").Return(true, nil).Once()

		err := svc.Unsubscribe(t.Context(), "FAN@example.com")

		require.NoError(t, err)
	})

	t.Run("Failure - Unknown address", func(t *testing.T) {
		svc, subscribers, _ := newNewsletter(t)
		subscribers.On("Unsubscribe", mock.Anything, "ghost@example.com").Return(false, nil).Once()

		err := svc.Unsubscribe(t.Context(), "ghost@example.com")

		requireAppError(t, err, http.StatusNotFound)
	})
}

func TestContact(t *testing.T) {
	t.Run("Success - Message is sanitized and sent to the inbox", func(t *testing.T) {
		// Arrange
		svc, _, notifications := newNewsletter(t)

		var sent *models.EmailNotificationRequest
		notifications.On("SendEmail", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*models.EmailNotificationRequest) }).
			Return(&models.NotificationResponse{Status: models.StatusSent, Recipient: contactInbox}, nil).Once()

		// Act
		resp, err := svc.Contact(t.Context(), &models.ContactRequest{
			Name:    "Jane <b>Doe</b>",
			Email:   "jane@example.com",
			Subject: "Wholesale & bulk",
			Message: `<p>Hi there</p><script>alert("x")</script>`,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, contactInbox, resp.Recipient)

		require.NotNil(t, sent)
		assert.Equal(t, contactInbox, sent.To)
		assert.Equal(t, "jane@example.com", sent.ReplyTo)
		assert.Equal(t, "Contact: Wholesale & bulk", sent.Subject)
		assert.Contains(t, sent.HTMLContent, "<p>Hi there</p>")
		assert.NotContains(t, sent.HTMLContent, "<script>")
		assert.NotContains(t, sent.Content, "<p>")
		assert.NotContains(t, sent.Content, "alert")
		assert.True(t, strings.HasPrefix(sent.Content, "From: Jane Doe <jane@example.com>"))
	})

	t.Run("Failure - Message with only markup", func(t *testing.T) {
		svc, _, notifications := newNewsletter(t)

		_, err := svc.Contact(t.Context(), &models.ContactRequest{
			Name:    "Jane",
			Email:   "jane@example.com",
			Subject: "Hi",
			Message: `<script>alert("x")</script>`,
		})

		requireAppError(t, err, http.StatusBadRequest)
		notifications.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})
}
