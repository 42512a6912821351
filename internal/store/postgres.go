// internal/store/postgres.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"salt-notifier/internal/common/logger"
	"salt-notifier/internal/models"
)

// PostgresStore talks to the backend through its stored-procedure RPC
// surface. The relational schema behind the procedures is owned by the
// backend and treated as opaque here.
type PostgresStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresStore(db *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "store"}),
	}
}

func (s *PostgresStore) ListPending(ctx context.Context, limit int) ([]models.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM get_pending_notifications($1)`, limit)
	if err != nil {
		return nil, fmt.Errorf("get_pending_notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var (
			n              models.Notification
			eventDate      time.Time
			studentName    sql.NullString
			studentEmail   sql.NullString
			moderatorName  sql.NullString
			additionalData []byte
		)

		if err := rows.Scan(
			&n.ID,
			&n.NotificationType,
			&n.RecipientEmail,
			&n.RecipientName,
			&n.EventID,
			&n.EventTitle,
			&eventDate,
			&n.EventLocation,
			&studentName,
			&studentEmail,
			&moderatorName,
			&additionalData,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}

		n.EventDate = eventDate.Format(time.RFC3339)
		n.StudentName = studentName.String
		n.StudentEmail = studentEmail.String
		n.ModeratorName = moderatorName.String

		if len(additionalData) > 0 {
			if err := json.Unmarshal(additionalData, &n.AdditionalData); err != nil {
				// additional_data is optional and partial; a malformed blob
				// must not block the rest of the batch.
				s.logger.Warn("unparseable additional_data", map[string]interface{}{
					"notificationId": n.ID,
					"error":          err.Error(),
				})
			}
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return notifications, nil
}

func (s *PostgresStore) MarkSent(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `SELECT mark_notification_sent($1)`, id); err != nil {
		return fmt.Errorf("mark_notification_sent: %w", err)
	}
	return nil
}

func (s *PostgresStore) MarkFailed(ctx context.Context, id, errText string) error {
	if _, err := s.db.ExecContext(ctx, `SELECT mark_notification_failed($1, $2)`, id, errText); err != nil {
		return fmt.Errorf("mark_notification_failed: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListEventReminders(ctx context.Context) ([]models.EventReminder, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM get_events_needing_reminders()`)
	if err != nil {
		return nil, fmt.Errorf("get_events_needing_reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.EventReminder
	for rows.Next() {
		var (
			r           models.EventReminder
			startDate   time.Time
			endDate     sql.NullTime
			description sql.NullString
		)

		if err := rows.Scan(
			&r.SignupID,
			&r.EventID,
			&r.EventTitle,
			&description,
			&r.EventLocation,
			&startDate,
			&endDate,
			&r.StudentID,
			&r.StudentEmail,
			&r.StudentFirstName,
			&r.StudentLastName,
		); err != nil {
			return nil, fmt.Errorf("scan event reminder: %w", err)
		}

		r.EventDescription = description.String
		r.EventStartDate = startDate.Format(time.RFC3339)
		if endDate.Valid {
			r.EventEndDate = endDate.Time.Format(time.RFC3339)
		}

		reminders = append(reminders, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event reminders: %w", err)
	}

	return reminders, nil
}

func (s *PostgresStore) ListModeratorReminders(ctx context.Context) ([]models.ModeratorReminder, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM get_moderator_event_reminders()`)
	if err != nil {
		return nil, fmt.Errorf("get_moderator_event_reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.ModeratorReminder
	for rows.Next() {
		var (
			r           models.ModeratorReminder
			startDate   time.Time
			endDate     sql.NullTime
			description sql.NullString
			hours       sql.NullFloat64
			studentList []byte
		)

		if err := rows.Scan(
			&r.EventID,
			&r.EventTitle,
			&description,
			&r.EventLocation,
			&startDate,
			&endDate,
			&hours,
			&r.ModeratorID,
			&r.ModeratorEmail,
			&r.ModeratorFirstName,
			&r.ModeratorLastName,
			&r.ApprovedCount,
			&r.PendingCount,
			&studentList,
		); err != nil {
			return nil, fmt.Errorf("scan moderator reminder: %w", err)
		}

		r.EventDescription = description.String
		r.EventStartDate = startDate.Format(time.RFC3339)
		if endDate.Valid {
			r.EventEndDate = endDate.Time.Format(time.RFC3339)
		}
		r.EventHours = hours.Float64

		if len(studentList) > 0 {
			if err := json.Unmarshal(studentList, &r.StudentList); err != nil {
				s.logger.Warn("unparseable student_list", map[string]interface{}{
					"eventId": r.EventID,
					"error":   err.Error(),
				})
			}
		}

		reminders = append(reminders, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moderator reminders: %w", err)
	}

	return reminders, nil
}

func (s *PostgresStore) RecordStudentReminder(ctx context.Context, signupID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO email_reminders (student_event_id, email_type) VALUES ($1, $2)`,
		signupID, "event_reminder",
	)
	if err != nil {
		return fmt.Errorf("insert email_reminders: %w", err)
	}
	return nil
}

func (s *PostgresStore) RecordModeratorReminder(ctx context.Context, r models.ModeratorReminder) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO email_notification_queue
			(notification_type, recipient_email, recipient_name, event_id, event_title, event_date, event_location, status, processed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		models.TypeReminderModerator,
		r.ModeratorEmail,
		r.ModeratorFirstName+" "+r.ModeratorLastName,
		r.EventID,
		r.EventTitle,
		r.EventStartDate,
		r.EventLocation,
		models.StatusSent,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert email_notification_queue: %w", err)
	}
	return nil
}
