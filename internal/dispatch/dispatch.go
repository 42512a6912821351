// Package dispatch runs the notification batch pipeline: fetch pending
// work, render an email per item, send it, and record the outcome. One
// generic batch processor serves all three entry points; each run only
// differs in its query source and outcome writers.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "salt-notifier/internal/common/errors"
	"salt-notifier/internal/common/logger"
	"salt-notifier/internal/common/metrics"
	"salt-notifier/internal/common/observability"
	"salt-notifier/internal/email/render"
	"salt-notifier/internal/email/sender"
	"salt-notifier/internal/store"
)

// Result is the per-item accounting entry appended to a run summary.
// Field population depends on the entry point: queue-backed notifications
// carry notification_id/type/recipient, reminder passes carry the
// student or moderator email plus the event title.
type Result struct {
	Success        bool   `json:"success"`
	NotificationID string `json:"notification_id,omitempty"`
	Type           string `json:"type,omitempty"`
	Recipient      string `json:"recipient,omitempty"`
	StudentEmail   string `json:"student_email,omitempty"`
	ModeratorEmail string `json:"moderator_email,omitempty"`
	EventTitle     string `json:"event_title,omitempty"`
	ApprovedCount  int    `json:"approved_count,omitempty"`
	EmailID        string `json:"email_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Summary reports one batch.
type Summary struct {
	Message    string   `json:"message,omitempty"`
	Total      int      `json:"total"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Results    []Result `json:"results"`
}

// ReminderSummary reports the combined student and moderator reminder run.
type ReminderSummary struct {
	Message            string  `json:"message"`
	StudentReminders   Summary `json:"studentReminders"`
	ModeratorReminders Summary `json:"moderatorReminders"`
}

// Config carries the dispatch-level settings.
type Config struct {
	From       string
	BatchLimit int
}

// Dispatcher owns the pipeline dependencies. It is safe for concurrent
// runs, though outcome-write races on the same row are resolved by the
// backend procedures.
type Dispatcher struct {
	store    store.Store
	sender   sender.Sender
	renderer *render.Renderer
	obs      *observability.Observability
	logger   logger.Logger
	config   Config
}

func New(st store.Store, snd sender.Sender, rnd *render.Renderer, obs *observability.Observability, log logger.Logger, cfg Config) *Dispatcher {
	return &Dispatcher{
		store:    st,
		sender:   snd,
		renderer: rnd,
		obs:      obs,
		logger:   log.WithFields(map[string]interface{}{"component": "dispatch"}),
		config:   cfg,
	}
}

// workItem is one unit of batch work. The closures bind the item to its
// query source: render produces the email, markSent and markFailed write
// the outcome (either may be nil when no such write exists for the path).
type workItem struct {
	base       Result
	metricType string
	recipient  string
	render     func() (subject, html string, err error)
	markSent   func(ctx context.Context) error
	markFailed func(ctx context.Context, errText string) error
}

// processBatch runs every item to completion. A single item's failure, or
// panic, never aborts the batch.
func (d *Dispatcher) processBatch(ctx context.Context, name string, items []workItem) Summary {
	start := time.Now()
	log := d.logger.WithFields(map[string]interface{}{
		"dispatch": name,
		"runId":    uuid.NewString(),
	})

	metrics.DispatchRuns.WithLabelValues(name).Inc()
	log.Info("Processing batch", map[string]interface{}{"count": len(items)})

	summary := Summary{
		Total:   len(items),
		Results: make([]Result, 0, len(items)),
	}

	for _, item := range items {
		result := d.processItem(ctx, log, item)
		if result.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}

	elapsed := time.Since(start)
	metrics.DispatchDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	d.obs.RecordBatchDuration(ctx, elapsed, name)

	log.Info("Batch complete", map[string]interface{}{
		"total":      summary.Total,
		"successful": summary.Successful,
		"failed":     summary.Failed,
		"durationMs": elapsed.Milliseconds(),
	})

	return summary
}

func (d *Dispatcher) processItem(ctx context.Context, log logger.Logger, item workItem) (result Result) {
	result = item.base

	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic while processing item", map[string]interface{}{
				"recipient": item.recipient,
				"panic":     fmt.Sprintf("%v", r),
			})
			result.Success = false
			result.Error = fmt.Sprintf("panic: %v", r)
			d.recordFailure(ctx, item.metricType)
		}
	}()

	subject, html, err := item.render()
	if err != nil {
		log.WithError(err).Error("Template rendering failed", map[string]interface{}{
			"recipient": item.recipient,
		})
		result.Error = err.Error()
		d.recordFailure(ctx, item.metricType)
		return result
	}

	sendResult, err := d.sender.Send(ctx, sender.Message{
		From:    d.config.From,
		To:      []string{item.recipient},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		sendErr := apperrors.NewEmailSendFailedError(item.recipient, err)
		log.WithError(sendErr).Error("Email delivery failed", map[string]interface{}{
			"recipient": item.recipient,
		})
		result.Error = err.Error()
		d.recordFailure(ctx, item.metricType)
		return result
	}

	if !sendResult.OK {
		errText := string(sendResult.Raw)
		log.Error("Provider rejected email", map[string]interface{}{
			"recipient": item.recipient,
			"response":  errText,
		})
		if item.markFailed != nil {
			if markErr := item.markFailed(ctx, errText); markErr != nil {
				log.WithError(markErr).Error("Failed to record failure outcome", nil)
			}
		}
		result.Error = errText
		d.recordFailure(ctx, item.metricType)
		return result
	}

	log.Info("Email sent", map[string]interface{}{
		"recipient": item.recipient,
		"type":      item.metricType,
		"emailId":   sendResult.ID,
	})

	// The outcome write happens after the send; a write failure here is
	// logged only and leaves the item counted as successful, so the store
	// can briefly disagree with what was actually delivered.
	if item.markSent != nil {
		if markErr := item.markSent(ctx); markErr != nil {
			log.WithError(markErr).Error("Failed to record sent outcome", nil)
		}
	}

	result.Success = true
	result.EmailID = sendResult.ID
	metrics.EmailsSent.WithLabelValues(item.metricType).Inc()
	d.obs.RecordItemProcessed(ctx, "sent")
	return result
}

func (d *Dispatcher) recordFailure(ctx context.Context, metricType string) {
	metrics.EmailsFailed.WithLabelValues(metricType).Inc()
	d.obs.RecordItemProcessed(ctx, "failed")
}
