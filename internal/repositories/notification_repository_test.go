package repository_test

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationRepoTest(t *testing.T) (repository.NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewNotificationRepo(db)
	require.NotNil(t, repo, "NewNotificationRepo should return a non-nil repository")

	return repo, mock
}

func TestNotificationRepository(t *testing.T) {
	ctx := t.Context()

	insertSQL := regexp.QuoteMeta(`
		INSERT INTO notifications (id, type, recipient, subject, content, status, error_message, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`)

	t.Run("CreateNotification", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupNotificationRepoTest(t)
			notification := &models.Notification{
				ID:        uuid.New(),
				Type:      models.NotificationTypeEmail,
				Recipient: "fan@example.com",
				Subject:   "Welcome",
				Content:   "Thanks for subscribing",
				Status:    models.StatusPending,
				Metadata:  json.RawMessage(`{"kind":"newsletter_welcome"}`),
			}

			mock.ExpectExec(insertSQL).
				WithArgs(notification.ID, notification.Type, notification.Recipient, notification.Subject, notification.Content,
					notification.Status, notification.ErrorMessage, []byte(notification.Metadata)).
				WillReturnResult(sqlmock.NewResult(1, 1))

			// Act
			err := repo.CreateNotification(ctx, notification)

			// Assert
			require.NoError(t, err, "CreateNotification should succeed")
			assert.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			repo, mock := setupNotificationRepoTest(t)
			dbError := errors.New("database insertion error")

			mock.ExpectExec(insertSQL).WillReturnError(dbError)

			// Act
			err := repo.CreateNotification(ctx, &models.Notification{ID: uuid.New(), Type: models.NotificationTypeEmail})

			// Assert
			require.Error(t, err, "CreateNotification should return an error")
			assert.ErrorIs(t, err, dbError, "Returned error should wrap the original database error")
			assert.Contains(t, err.Error(), "failed to create notification")
		})
	})

	t.Run("GetNotificationByID", func(t *testing.T) {
		cols := []string{"id", "type", "recipient", "subject", "content", "status", "error_message", "metadata", "created_at", "updated_at"}

		t.Run("Success", func(t *testing.T) {
			repo, mock := setupNotificationRepoTest(t)
			id := uuid.New()
			now := time.Now()

			mock.ExpectQuery(regexp.QuoteMeta(`FROM notifications`)).
				WithArgs(id).
				WillReturnRows(sqlmock.NewRows(cols).AddRow(id.String(), "email", "fan@example.com", "Welcome", "Hi", "sent", "", []byte(`{"a":"b"}`), now, now))

			n, err := repo.GetNotificationByID(ctx, id)

			require.NoError(t, err)
			assert.Equal(t, models.StatusSent, n.Status)
			assert.JSONEq(t, `{"a":"b"}`, string(n.Metadata))
		})

		t.Run("Failure - Not found", func(t *testing.T) {
			repo, mock := setupNotificationRepoTest(t)
			id := uuid.New()

			mock.ExpectQuery(regexp.QuoteMeta(`FROM notifications`)).WithArgs(id).WillReturnRows(sqlmock.NewRows(cols))

			_, err := repo.GetNotificationByID(ctx, id)

			require.ErrorIs(t, err, repository.ErrNotFound)
		})
	})

	t.Run("UpdateNotificationStatus", func(t *testing.T) {
		updateSQL := regexp.QuoteMeta(`UPDATE notifications SET status = $1, error_message = $2, updated_at = NOW()`)

		t.Run("Success", func(t *testing.T) {
			repo, mock := setupNotificationRepoTest(t)
			id := uuid.New()

			mock.ExpectExec(updateSQL).
				WithArgs(models.StatusFailed, "smtp down", id).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.UpdateNotificationStatus(ctx, id, models.StatusFailed, "smtp down"))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - No rows", func(t *testing.T) {
			repo, mock := setupNotificationRepoTest(t)

			mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.UpdateNotificationStatus(ctx, uuid.New(), models.StatusSent, "")

			require.ErrorIs(t, err, repository.ErrNotFound)
		})
	})
}
