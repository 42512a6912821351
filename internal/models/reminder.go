// internal/models/reminder.go
package models

// EventReminder is one (approved signup, event) pair whose event starts inside
// the 24-hour reminder window, as computed by get_events_needing_reminders.
type EventReminder struct {
	SignupID         string `json:"signup_id"`
	EventID          string `json:"event_id"`
	EventTitle       string `json:"event_title"`
	EventDescription string `json:"event_description"`
	EventLocation    string `json:"event_location"`
	EventStartDate   string `json:"event_start_date"`
	EventEndDate     string `json:"event_end_date"`
	StudentID        string `json:"student_id"`
	StudentEmail     string `json:"student_email"`
	StudentFirstName string `json:"student_first_name"`
	StudentLastName  string `json:"student_last_name"`
}

// RosterStudent is one approved student embedded in a moderator reminder.
type RosterStudent struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Grade int    `json:"grade"`
}

// ModeratorReminder is the once-per-event summary sent to the event moderator
// the day before, as computed by get_moderator_event_reminders.
type ModeratorReminder struct {
	EventID            string          `json:"event_id"`
	EventTitle         string          `json:"event_title"`
	EventDescription   string          `json:"event_description"`
	EventLocation      string          `json:"event_location"`
	EventStartDate     string          `json:"event_start_date"`
	EventEndDate       string          `json:"event_end_date"`
	EventHours         float64         `json:"event_hours"`
	ModeratorID        string          `json:"moderator_id"`
	ModeratorEmail     string          `json:"moderator_email"`
	ModeratorFirstName string          `json:"moderator_first_name"`
	ModeratorLastName  string          `json:"moderator_last_name"`
	ApprovedCount      int             `json:"approved_count"`
	PendingCount       int             `json:"pending_count"`
	StudentList        []RosterStudent `json:"student_list"`
}
