// Package render builds the subject line and HTML body for each kind of
// outgoing email. Templates mirror the school's S.A.L.T. branding.
package render

import (
	"fmt"
	"html/template"
	"strings"

	apperrors "salt-notifier/internal/common/errors"
	"salt-notifier/internal/models"
)

// Renderer holds the parsed email templates. The zero value is not usable;
// construct with New.
type Renderer struct {
	studentSignup     *template.Template
	studentApproval   *template.Template
	moderatorSignup   *template.Template
	cancellation      *template.Template
	studentReminder   *template.Template
	moderatorReminder *template.Template
}

func New() *Renderer {
	return &Renderer{
		studentSignup:     mustParse("student-signup", studentSignupTemplate),
		studentApproval:   mustParse("student-approval", studentApprovalTemplate),
		moderatorSignup:   mustParse("moderator-signup", moderatorSignupTemplate),
		cancellation:      mustParse("cancellation", cancellationTemplate),
		studentReminder:   mustParse("student-reminder", studentReminderTemplate),
		moderatorReminder: mustParse("moderator-reminder", moderatorReminderTemplate),
	}
}

func mustParse(name, text string) *template.Template {
	t := template.Must(template.New(name).Parse(sharedBlocks))
	return template.Must(t.Parse(text))
}

type notificationData struct {
	FirstName     string
	EventTitle    string
	DateStr       string
	TimeStr       string
	Location      string
	Hours         string
	Description   string
	ModeratorName string

	StudentName  string
	StudentEmail string

	CancelledAt    string
	PreviousStatus string
}

type reminderData struct {
	FirstName   string
	EventTitle  string
	DateStr     string
	TimeRange   string
	Location    string
	Description string

	Hours         string
	ApprovedCount int
	PendingCount  int
	Students      []models.RosterStudent
}

// RenderNotification produces the subject and HTML body for a queued
// notification. Unknown notification types are a render failure; the item
// is marked failed rather than sent with a wrong template.
func (r *Renderer) RenderNotification(n models.Notification) (string, string, error) {
	data := notificationData{
		EventTitle:   n.EventTitle,
		DateStr:      formatDate(n.EventDate),
		TimeStr:      formatTime(n.EventDate),
		Location:     n.EventLocation,
		Description:  n.AdditionalData.EventDescription,
		StudentName:  n.StudentName,
		StudentEmail: n.StudentEmail,
	}
	if h := n.AdditionalData.EventHours; h != nil && *h != 0 {
		data.Hours = formatHours(*h)
	}

	var (
		tmpl    *template.Template
		subject string
	)

	switch n.NotificationType {
	case models.TypeSignupStudent:
		tmpl = r.studentSignup
		subject = fmt.Sprintf("Signup Confirmed: %s", n.EventTitle)
		data.FirstName = firstName(n.RecipientName, "Student")
		data.ModeratorName = n.ModeratorName
	case models.TypeApprovalStudent:
		tmpl = r.studentApproval
		subject = fmt.Sprintf("Approved! %s", n.EventTitle)
		data.FirstName = firstName(n.RecipientName, "Student")
	case models.TypeSignupModerator:
		tmpl = r.moderatorSignup
		subject = fmt.Sprintf("New Signup: %s for %s", n.StudentName, n.EventTitle)
		data.FirstName = firstName(n.RecipientName, "Moderator")
	case models.TypeCancelModerator:
		tmpl = r.cancellation
		subject = fmt.Sprintf("Signup Cancelled: %s for %s", n.StudentName, n.EventTitle)
		data.FirstName = firstName(n.RecipientName, "Moderator")
		data.CancelledAt = "Just now"
		if n.AdditionalData.CancelledAt != "" {
			data.CancelledAt = formatDateTime(n.AdditionalData.CancelledAt)
		}
		data.PreviousStatus = n.AdditionalData.OriginalSignupStatus
	default:
		return "", "", apperrors.NewTemplateRenderFailedError(
			n.NotificationType, fmt.Errorf("unknown notification type"))
	}

	html, err := execute(tmpl, data)
	if err != nil {
		return "", "", apperrors.NewTemplateRenderFailedError(n.NotificationType, err)
	}
	return subject, html, nil
}

// RenderStudentReminder produces the 24-hour reminder sent to an approved
// student.
func (r *Renderer) RenderStudentReminder(rem models.EventReminder) (string, string, error) {
	data := reminderData{
		FirstName:   rem.StudentFirstName,
		EventTitle:  rem.EventTitle,
		DateStr:     formatDate(rem.EventStartDate),
		TimeRange:   formatTimeRange(rem.EventStartDate, rem.EventEndDate),
		Location:    rem.EventLocation,
		Description: rem.EventDescription,
	}

	subject := fmt.Sprintf("Reminder: %s - Tomorrow!", rem.EventTitle)
	html, err := execute(r.studentReminder, data)
	if err != nil {
		return "", "", apperrors.NewTemplateRenderFailedError("student_reminder", err)
	}
	return subject, html, nil
}

// RenderModeratorReminder produces the day-before summary sent to the event
// moderator, with signup counts and the approved roster.
func (r *Renderer) RenderModeratorReminder(rem models.ModeratorReminder) (string, string, error) {
	data := reminderData{
		FirstName:     rem.ModeratorFirstName,
		EventTitle:    rem.EventTitle,
		DateStr:       formatDate(rem.EventStartDate),
		TimeRange:     formatTimeRange(rem.EventStartDate, rem.EventEndDate),
		Location:      rem.EventLocation,
		ApprovedCount: rem.ApprovedCount,
		PendingCount:  rem.PendingCount,
		Students:      rem.StudentList,
	}
	if rem.EventHours != 0 {
		data.Hours = formatHours(rem.EventHours)
	}

	subject := fmt.Sprintf("Event Tomorrow: %s - %d students", rem.EventTitle, rem.ApprovedCount)
	html, err := execute(r.moderatorReminder, data)
	if err != nil {
		return "", "", apperrors.NewTemplateRenderFailedError(models.TypeReminderModerator, err)
	}
	return subject, html, nil
}

func execute(tmpl *template.Template, data interface{}) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
