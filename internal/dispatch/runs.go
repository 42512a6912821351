// internal/dispatch/runs.go
package dispatch

import (
	"context"

	apperrors "salt-notifier/internal/common/errors"
	"salt-notifier/internal/common/metrics"
	"salt-notifier/internal/models"
)

// RunSignups processes the pending signup, moderator-alert, and approval
// notifications from the queue.
func (d *Dispatcher) RunSignups(ctx context.Context) (*Summary, error) {
	d.logger.Info("Checking for pending signup notifications", nil)

	notifications, err := d.store.ListPending(ctx, d.config.BatchLimit)
	if err != nil {
		metrics.DispatchRunErrors.WithLabelValues("signups").Inc()
		return nil, apperrors.NewNotificationFetchFailedError(err)
	}

	items := d.notificationItems(notifications,
		models.TypeSignupStudent, models.TypeSignupModerator, models.TypeApprovalStudent)

	summary := d.processBatch(ctx, "signups", items)
	summary.Message = "Signup/approval notifications processed"
	return &summary, nil
}

// RunCancellations processes the pending cancellation notifications.
func (d *Dispatcher) RunCancellations(ctx context.Context) (*Summary, error) {
	d.logger.Info("Checking for pending cancellation notifications", nil)

	notifications, err := d.store.ListPending(ctx, d.config.BatchLimit)
	if err != nil {
		metrics.DispatchRunErrors.WithLabelValues("cancellations").Inc()
		return nil, apperrors.NewNotificationFetchFailedError(err)
	}

	items := d.notificationItems(notifications, models.TypeCancelModerator)

	summary := d.processBatch(ctx, "cancellations", items)
	summary.Message = "Cancellation notifications processed"
	return &summary, nil
}

// RunReminders sends the 24-hour event reminders: first to every approved
// student, then a per-event summary to each moderator. When no student
// reminders are due, the moderator pass is skipped entirely. A moderator
// query failure is logged and drops the moderator pass without failing
// the student results already produced.
func (d *Dispatcher) RunReminders(ctx context.Context) (*ReminderSummary, error) {
	d.logger.Info("Checking for events needing reminders", nil)

	reminders, err := d.store.ListEventReminders(ctx)
	if err != nil {
		metrics.DispatchRunErrors.WithLabelValues("reminders").Inc()
		return nil, apperrors.NewReminderFetchFailedError(err)
	}

	out := &ReminderSummary{Message: "Email reminders processed"}
	if len(reminders) == 0 {
		d.logger.Info("No reminders to send", nil)
		return out, nil
	}

	studentItems := make([]workItem, 0, len(reminders))
	for _, rem := range reminders {
		rem := rem
		studentItems = append(studentItems, workItem{
			base: Result{
				StudentEmail: rem.StudentEmail,
				EventTitle:   rem.EventTitle,
			},
			metricType: "reminder_student",
			recipient:  rem.StudentEmail,
			render: func() (string, string, error) {
				return d.renderer.RenderStudentReminder(rem)
			},
			markSent: func(ctx context.Context) error {
				if err := d.store.RecordStudentReminder(ctx, rem.SignupID); err != nil {
					return apperrors.NewAuditWriteFailedError(err)
				}
				return nil
			},
		})
	}
	out.StudentReminders = d.processBatch(ctx, "student-reminders", studentItems)

	d.logger.Info("Checking for moderator event reminders", nil)

	modReminders, err := d.store.ListModeratorReminders(ctx)
	if err != nil {
		d.logger.WithError(err).Error("Failed to fetch moderator reminders", nil)
		return out, nil
	}

	modItems := make([]workItem, 0, len(modReminders))
	for _, rem := range modReminders {
		rem := rem
		modItems = append(modItems, workItem{
			base: Result{
				ModeratorEmail: rem.ModeratorEmail,
				EventTitle:     rem.EventTitle,
				ApprovedCount:  rem.ApprovedCount,
			},
			metricType: models.TypeReminderModerator,
			recipient:  rem.ModeratorEmail,
			render: func() (string, string, error) {
				return d.renderer.RenderModeratorReminder(rem)
			},
			markSent: func(ctx context.Context) error {
				if err := d.store.RecordModeratorReminder(ctx, rem); err != nil {
					return apperrors.NewAuditWriteFailedError(err)
				}
				return nil
			},
		})
	}
	out.ModeratorReminders = d.processBatch(ctx, "moderator-reminders", modItems)

	return out, nil
}

// notificationItems converts queue rows of the wanted types into work
// items bound to the queue's mark-sent/mark-failed outcome writers.
func (d *Dispatcher) notificationItems(notifications []models.Notification, wantTypes ...string) []workItem {
	wanted := make(map[string]bool, len(wantTypes))
	for _, t := range wantTypes {
		wanted[t] = true
	}

	items := make([]workItem, 0, len(notifications))
	for _, n := range notifications {
		if !wanted[n.NotificationType] {
			continue
		}
		n := n
		items = append(items, workItem{
			base: Result{
				NotificationID: n.ID,
				Type:           n.NotificationType,
				Recipient:      n.RecipientEmail,
			},
			metricType: n.NotificationType,
			recipient:  n.RecipientEmail,
			render: func() (string, string, error) {
				return d.renderer.RenderNotification(n)
			},
			markSent: func(ctx context.Context) error {
				if err := d.store.MarkSent(ctx, n.ID); err != nil {
					return apperrors.NewOutcomeWriteFailedError(n.ID, err)
				}
				return nil
			},
			markFailed: func(ctx context.Context, errText string) error {
				if err := d.store.MarkFailed(ctx, n.ID, errText); err != nil {
					return apperrors.NewOutcomeWriteFailedError(n.ID, err)
				}
				return nil
			},
		})
	}
	return items
}
