package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"salt-notifier/internal/common/logger"
	"salt-notifier/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestLogger(t *testing.T) logger.Logger {
	return logger.NewZapAdapter(zaptest.NewLogger(t))
}

func pendingColumns() []string {
	return []string{
		"id", "notification_type", "recipient_email", "recipient_name",
		"event_id", "event_title", "event_date", "event_location",
		"student_name", "student_email", "moderator_name", "additional_data",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestPostgresStore_ListPending(t *testing.T) {
	eventDate := time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		limit    int
		mock     func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, notifications []models.Notification, err error)
	}{
		{
			name:  "approval notification with additional data",
			limit: 50,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(pendingColumns()).AddRow(
					"notif-1", "approval_student", "student@school.edu", "Jane Smith",
					"event-1", "Food Drive", eventDate, "Main Gym",
					"Jane Smith", "student@school.edu", nil,
					[]byte(`{"event_hours": 2.5, "signup_status": "approved"}`),
				)
				mock.ExpectQuery(`SELECT \* FROM get_pending_notifications\(\$1\)`).
					WithArgs(50).
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, notifications []models.Notification, err error) {
				assert.NoError(t, err)
				assert.Len(t, notifications, 1)

				n := notifications[0]
				assert.Equal(t, "notif-1", n.ID)
				assert.Equal(t, models.TypeApprovalStudent, n.NotificationType)
				assert.Equal(t, "student@school.edu", n.RecipientEmail)
				assert.Equal(t, "2025-06-07T18:00:00Z", n.EventDate)
				assert.Equal(t, "", n.ModeratorName)
				if assert.NotNil(t, n.AdditionalData.EventHours) {
					assert.Equal(t, 2.5, *n.AdditionalData.EventHours)
				}
				assert.Equal(t, "approved", n.AdditionalData.SignupStatus)
			},
		},
		{
			name:  "null additional data",
			limit: 50,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(pendingColumns()).AddRow(
					"notif-2", "signup_moderator", "mod@school.edu", "Mr. Jones",
					"event-1", "Food Drive", eventDate, "Main Gym",
					"Jane Smith", "student@school.edu", "Mr. Jones",
					nil,
				)
				mock.ExpectQuery(`SELECT \* FROM get_pending_notifications\(\$1\)`).
					WithArgs(50).
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, notifications []models.Notification, err error) {
				assert.NoError(t, err)
				assert.Len(t, notifications, 1)
				assert.Nil(t, notifications[0].AdditionalData.EventHours)
				assert.Equal(t, "Mr. Jones", notifications[0].ModeratorName)
			},
		},
		{
			name:  "malformed additional data does not fail the row",
			limit: 50,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(pendingColumns()).AddRow(
					"notif-3", "signup_student", "student@school.edu", "Jane Smith",
					"event-1", "Food Drive", eventDate, "Main Gym",
					nil, nil, nil,
					[]byte(`{not json`),
				)
				mock.ExpectQuery(`SELECT \* FROM get_pending_notifications\(\$1\)`).
					WithArgs(50).
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, notifications []models.Notification, err error) {
				assert.NoError(t, err)
				assert.Len(t, notifications, 1)
				assert.Equal(t, "notif-3", notifications[0].ID)
			},
		},
		{
			name:  "empty batch",
			limit: 50,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM get_pending_notifications\(\$1\)`).
					WithArgs(50).
					WillReturnRows(sqlmock.NewRows(pendingColumns()))
			},
			validate: func(t *testing.T, notifications []models.Notification, err error) {
				assert.NoError(t, err)
				assert.Empty(t, notifications)
			},
		},
		{
			name:  "query error",
			limit: 50,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM get_pending_notifications\(\$1\)`).
					WithArgs(50).
					WillReturnError(errors.New("connection reset"))
			},
			validate: func(t *testing.T, notifications []models.Notification, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "get_pending_notifications")
				assert.Nil(t, notifications)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer db.Close()

			tt.mock(mock)

			s := NewPostgresStore(db, createTestLogger(t))
			notifications, err := s.ListPending(context.Background(), tt.limit)

			tt.validate(t, notifications, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStore_MarkOutcomes(t *testing.T) {
	t.Run("mark sent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer db.Close()

		mock.ExpectExec(`SELECT mark_notification_sent\(\$1\)`).
			WithArgs("notif-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := NewPostgresStore(db, createTestLogger(t))
		assert.NoError(t, s.MarkSent(context.Background(), "notif-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mark failed carries error text", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer db.Close()

		mock.ExpectExec(`SELECT mark_notification_failed\(\$1, \$2\)`).
			WithArgs("notif-1", "provider rejected recipient").
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := NewPostgresStore(db, createTestLogger(t))
		assert.NoError(t, s.MarkFailed(context.Background(), "notif-1", "provider rejected recipient"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mark sent error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer db.Close()

		mock.ExpectExec(`SELECT mark_notification_sent\(\$1\)`).
			WithArgs("notif-1").
			WillReturnError(errors.New("deadlock detected"))

		s := NewPostgresStore(db, createTestLogger(t))
		err = s.MarkSent(context.Background(), "notif-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "mark_notification_sent")
	})
}

func TestPostgresStore_ListEventReminders(t *testing.T) {
	start := time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"signup_id", "event_id", "event_title", "event_description", "event_location",
		"event_start_date", "event_end_date", "student_id", "student_email",
		"student_first_name", "student_last_name",
	}).AddRow(
		"signup-1", "event-1", "Food Drive", "Sort donations", "Main Gym",
		start, end, "student-1", "jane@school.edu", "Jane", "Smith",
	).AddRow(
		"signup-2", "event-1", "Food Drive", nil, "Main Gym",
		start, nil, "student-2", "bob@school.edu", "Bob", "Lee",
	)
	mock.ExpectQuery(`SELECT \* FROM get_events_needing_reminders\(\)`).
		WillReturnRows(rows)

	s := NewPostgresStore(db, createTestLogger(t))
	reminders, err := s.ListEventReminders(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reminders, 2)
	assert.Equal(t, "signup-1", reminders[0].SignupID)
	assert.Equal(t, "2025-06-07T18:00:00Z", reminders[0].EventStartDate)
	assert.Equal(t, "2025-06-07T20:00:00Z", reminders[0].EventEndDate)
	assert.Equal(t, "", reminders[1].EventDescription)
	assert.Equal(t, "", reminders[1].EventEndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListModeratorReminders(t *testing.T) {
	start := time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	studentList := []byte(`[{"name": "Jane Smith", "email": "jane@school.edu", "grade": 11}]`)
	rows := sqlmock.NewRows([]string{
		"event_id", "event_title", "event_description", "event_location",
		"event_start_date", "event_end_date", "event_hours",
		"moderator_id", "moderator_email", "moderator_first_name", "moderator_last_name",
		"approved_count", "pending_count", "student_list",
	}).AddRow(
		"event-1", "Food Drive", "Sort donations", "Main Gym",
		start, nil, 2.5,
		"mod-1", "jones@school.edu", "Pat", "Jones",
		3, 1, studentList,
	)
	mock.ExpectQuery(`SELECT \* FROM get_moderator_event_reminders\(\)`).
		WillReturnRows(rows)

	s := NewPostgresStore(db, createTestLogger(t))
	reminders, err := s.ListModeratorReminders(context.Background())

	assert.NoError(t, err)
	assert.Len(t, reminders, 1)

	r := reminders[0]
	assert.Equal(t, "jones@school.edu", r.ModeratorEmail)
	assert.Equal(t, 2.5, r.EventHours)
	assert.Equal(t, 3, r.ApprovedCount)
	assert.Equal(t, 1, r.PendingCount)
	if assert.Len(t, r.StudentList, 1) {
		assert.Equal(t, "Jane Smith", r.StudentList[0].Name)
		assert.Equal(t, 11, r.StudentList[0].Grade)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_RecordReminders(t *testing.T) {
	t.Run("student reminder audit row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer db.Close()

		mock.ExpectExec(`INSERT INTO email_reminders`).
			WithArgs("signup-1", "event_reminder").
			WillReturnResult(sqlmock.NewResult(1, 1))

		s := NewPostgresStore(db, createTestLogger(t))
		assert.NoError(t, s.RecordStudentReminder(context.Background(), "signup-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("moderator reminder queue row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("failed to create mock: %v", err)
		}
		defer db.Close()

		mock.ExpectExec(`INSERT INTO email_notification_queue`).
			WithArgs(
				models.TypeReminderModerator, "jones@school.edu", "Pat Jones",
				"event-1", "Food Drive", "2025-06-07T18:00:00Z", "Main Gym",
				models.StatusSent, sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		s := NewPostgresStore(db, createTestLogger(t))
		err = s.RecordModeratorReminder(context.Background(), models.ModeratorReminder{
			EventID:            "event-1",
			EventTitle:         "Food Drive",
			EventLocation:      "Main Gym",
			EventStartDate:     "2025-06-07T18:00:00Z",
			ModeratorEmail:     "jones@school.edu",
			ModeratorFirstName: "Pat",
			ModeratorLastName:  "Jones",
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
