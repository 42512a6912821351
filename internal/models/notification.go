// internal/models/notification.go
package models

// Notification types queued by the backend. Reminders to students are computed
// on demand by get_events_needing_reminders and never pass through this table.
const (
	TypeSignupStudent     = "signup_student"
	TypeSignupModerator   = "signup_moderator"
	TypeApprovalStudent   = "approval_student"
	TypeCancelModerator   = "cancel_moderator"
	TypeReminderModerator = "reminder_moderator"
)

// Delivery statuses. The pending -> sent|failed transition is one-way and is
// maintained entirely by the backend via the mark_* procedures.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// AdditionalData is the open, type-specific part of a notification record.
// Every field is optional; which ones are populated depends on the
// notification type.
type AdditionalData struct {
	EventDescription     string   `json:"event_description,omitempty"`
	EventEndDate         string   `json:"event_end_date,omitempty"`
	EventHours           *float64 `json:"event_hours,omitempty"`
	SignupID             string   `json:"signup_id,omitempty"`
	SignupStatus         string   `json:"signup_status,omitempty"`
	CancelledAt          string   `json:"cancelled_at,omitempty"`
	OriginalSignupStatus string   `json:"original_signup_status,omitempty"`
}

// Notification is one pending outbound email as returned by
// get_pending_notifications. Event and actor fields are denormalized
// snapshots taken at notification-creation time and are never re-fetched.
type Notification struct {
	ID               string         `json:"id"`
	NotificationType string         `json:"notification_type"`
	RecipientEmail   string         `json:"recipient_email"`
	RecipientName    string         `json:"recipient_name"`
	EventID          string         `json:"event_id"`
	EventTitle       string         `json:"event_title"`
	EventDate        string         `json:"event_date"`
	EventLocation    string         `json:"event_location"`
	StudentName      string         `json:"student_name"`
	StudentEmail     string         `json:"student_email"`
	ModeratorName    string         `json:"moderator_name"`
	AdditionalData   AdditionalData `json:"additional_data"`
}
