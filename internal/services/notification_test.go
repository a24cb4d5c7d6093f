package service_test

import (
	"errors"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	repoMocks "github.com/aaravmahajanofficial/pod-storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	sendgridMocks "github.com/aaravmahajanofficial/pod-storefront/pkg/sendgrid/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendEmail(t *testing.T) {
	req := &models.EmailNotificationRequest{
		To:       "jane@example.com",
		Subject:  "Order confirmation",
		Content:  "Thanks for your order",
		Metadata: map[string]string{"kind": "order_confirmation"},
	}

	t.Run("Success - Records and marks the notification as sent", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewNotificationRepository(t)
		email := sendgridMocks.NewEmailService(t)
		svc := service.NewNotificationService(repo, email)

		var created *models.Notification
		repo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Status == models.StatusPending && n.Recipient == "jane@example.com" &&
				string(n.Metadata) == `{"kind":"order_confirmation"}`
		})).Run(func(args mock.Arguments) { created = args.Get(1).(*models.Notification) }).Return(nil).Once()
		email.On("Send", mock.Anything, req).Return(nil).Once()
		repo.On("UpdateNotificationStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), models.StatusSent, "").Return(nil).Once()

		// Act
		resp, err := svc.SendEmail(t.Context(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.StatusSent, resp.Status)
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, models.NotificationTypeEmail, resp.Type)
	})

	t.Run("Failure - Provider error marks the notification as failed", func(t *testing.T) {
		repo := repoMocks.NewNotificationRepository(t)
		email := sendgridMocks.NewEmailService(t)
		svc := service.NewNotificationService(repo, email)

		repo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil).Once()
		email.On("Send", mock.Anything, req).Return(errors.New("failed to send email, status code: 401")).Once()
		repo.On("UpdateNotificationStatus", mock.Anything, mock.Anything, models.StatusFailed, "failed to send email, status code: 401").Return(nil).Once()

		resp, err := svc.SendEmail(t.Context(), req)

		assert.Nil(t, resp)
		appErr := requireAppError(t, err, http.StatusInternalServerError)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
	})

	t.Run("Failure - Record cannot be created", func(t *testing.T) {
		repo := repoMocks.NewNotificationRepository(t)
		email := sendgridMocks.NewEmailService(t)
		svc := service.NewNotificationService(repo, email)

		repo.On("CreateNotification", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

		_, err := svc.SendEmail(t.Context(), req)

		appErr := requireAppError(t, err, http.StatusInternalServerError)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestGetNotification(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := repoMocks.NewNotificationRepository(t)
		svc := service.NewNotificationService(repo, sendgridMocks.NewEmailService(t))
		id := uuid.New()

		repo.On("GetNotificationByID", mock.Anything, id).Return(&models.Notification{ID: id, Status: models.StatusSent}, nil).Once()

		n, err := svc.GetNotification(t.Context(), id)

		require.NoError(t, err)
		assert.Equal(t, id, n.ID)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		repo := repoMocks.NewNotificationRepository(t)
		svc := service.NewNotificationService(repo, sendgridMocks.NewEmailService(t))

		repo.On("GetNotificationByID", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.GetNotification(t.Context(), uuid.New())

		requireAppError(t, err, http.StatusNotFound)
	})
}
