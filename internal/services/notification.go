package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	appErrors "github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/sendgrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error)
	GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

// SendEmail records the notification, sends it and stores the outcome.
func (n *notificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error) {
	var metadataJSON json.RawMessage

	if req.Metadata != nil {
		metadataBytes, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, appErrors.InternalError("Failed to encode notification metadata").WithError(err)
		}

		metadataJSON = metadataBytes
	}

	now := time.Now()

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationTypeEmail,
		Recipient: req.To,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    models.StatusPending,
		Metadata:  metadataJSON,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return nil, appErrors.DatabaseError("Failed to record notification").WithError(err)
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		notification.Status = models.StatusFailed
		notification.ErrorMessage = err.Error()

		_ = n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, notification.ErrorMessage)

		return nil, appErrors.ThirdPartyError("Failed to send email").WithError(err)
	}

	notification.Status = models.StatusSent

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		return nil, appErrors.DatabaseError("Email sent but notification status could not be updated").WithError(err)
	}

	return &models.NotificationResponse{
		ID:        notification.ID,
		Type:      notification.Type,
		Status:    notification.Status,
		Recipient: notification.Recipient,
		CreatedAt: notification.CreatedAt,
	}, nil
}

func (n *notificationService) GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	notification, err := n.repo.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Notification not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to get notification").WithError(err)
	}

	return notification, nil
}
