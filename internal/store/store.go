// internal/store/store.go
package store

import (
	"context"

	"salt-notifier/internal/models"
)

// NotificationStore is the dispatcher's view of the backend notification
// table. The dispatcher only ever lists pending rows and writes one outcome
// per processed item; the pending -> sent|failed transition itself lives in
// the backend procedures.
type NotificationStore interface {
	ListPending(ctx context.Context, limit int) ([]models.Notification, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id, errText string) error
}

// ReminderStore exposes the backend's computed reminder queries plus the
// write-only audit trail. Audit rows are never read back by this pipeline.
type ReminderStore interface {
	ListEventReminders(ctx context.Context) ([]models.EventReminder, error)
	ListModeratorReminders(ctx context.Context) ([]models.ModeratorReminder, error)
	RecordStudentReminder(ctx context.Context, signupID string) error
	RecordModeratorReminder(ctx context.Context, r models.ModeratorReminder) error
}

// Store is the full backend RPC surface consumed by the dispatcher.
type Store interface {
	NotificationStore
	ReminderStore
}
